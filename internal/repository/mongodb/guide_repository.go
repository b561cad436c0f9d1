package mongodb

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/travelspot-service/internal/domain"
	"github.com/travelspot-service/internal/domain/repository"
)

const guideCollection = "guides"

// MongoDB error code for "collection already exists".
const codeNamespaceExists = 48

type guideRepository struct {
	coll   *mongo.Collection
	logger *zap.Logger
}

func NewGuideRepository(db *Mongo) repository.GuideRepository {
	return &guideRepository{
		coll:   db.Database().Collection(guideCollection),
		logger: db.logger,
	}
}

func guideSchema() bson.M {
	return bson.M{
		"bsonType": "object",
		"required": []string{"name", "age", "gender", "location", "mobile", "email"},
		"properties": bson.M{
			"name":     bson.M{"bsonType": "string"},
			"age":      bson.M{"bsonType": "number", "minimum": 18, "maximum": 100},
			"gender":   bson.M{"enum": bson.A{"Male", "Female", "Other"}},
			"location": bson.M{"bsonType": "string"},
			"mobile":   bson.M{"bsonType": "string"},
			"email":    bson.M{"bsonType": "string"},
		},
	}
}

// EnsureGuideSchema installs the $jsonSchema validator on the guides
// collection. Age range and gender enum are deliberately enforced here
// rather than in application code, so violations come back as write errors.
func EnsureGuideSchema(ctx context.Context, db *Mongo) error {
	validator := bson.M{"$jsonSchema": guideSchema()}

	err := db.Database().CreateCollection(ctx, guideCollection,
		options.CreateCollection().SetValidator(validator))
	if err == nil {
		db.logger.Info("Guide collection created with schema validator")
		return nil
	}

	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) && cmdErr.Code == codeNamespaceExists {
		res := db.Database().RunCommand(ctx, bson.D{
			{Key: "collMod", Value: guideCollection},
			{Key: "validator", Value: validator},
		})
		if err := res.Err(); err != nil {
			return fmt.Errorf("failed to update guide schema validator: %w", err)
		}
		return nil
	}

	return fmt.Errorf("failed to create guide collection: %w", err)
}

func (r *guideRepository) Insert(ctx context.Context, guide *domain.Guide) (*domain.Guide, error) {
	guide.Name = strings.TrimSpace(guide.Name)
	guide.Location = strings.TrimSpace(guide.Location)
	guide.Mobile = strings.TrimSpace(guide.Mobile)
	guide.Email = strings.ToLower(strings.TrimSpace(guide.Email))
	guide.CreatedAt = time.Now().UTC()

	res, err := r.coll.InsertOne(ctx, guide)
	if err != nil {
		return nil, fmt.Errorf("failed to insert guide: %w", err)
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	guide.ID = id

	r.logger.Debug("Guide inserted",
		zap.String("id", id.Hex()),
		zap.String("name", guide.Name),
	)
	return guide, nil
}

func (r *guideRepository) FindAll(ctx context.Context) ([]*domain.Guide, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list guides: %w", err)
	}
	defer cur.Close(ctx)

	var guides []*domain.Guide
	if err := cur.All(ctx, &guides); err != nil {
		return nil, fmt.Errorf("failed to decode guides: %w", err)
	}
	return guides, nil
}
