package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/travelspot-service/internal/domain"
	"github.com/travelspot-service/internal/domain/repository"
)

const spotCollection = "touristinfos"

type spotRepository struct {
	coll   *mongo.Collection
	logger *zap.Logger
}

func NewSpotRepository(db *Mongo) repository.SpotRepository {
	return &spotRepository{
		coll:   db.Database().Collection(spotCollection),
		logger: db.logger,
	}
}

// EnsureSpotIndexes builds the 2dsphere index the proximity query depends on
// and the weighted text index over name/additionalNotes. Must run after the
// repair pass: a single malformed location document can break index builds.
func EnsureSpotIndexes(ctx context.Context, db *Mongo) error {
	coll := db.Database().Collection(spotCollection)

	models := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "location", Value: "2dsphere"}},
		},
		{
			Keys: bson.D{
				{Key: "name", Value: "text"},
				{Key: "additionalNotes", Value: "text"},
			},
			Options: options.Index().SetWeights(bson.D{
				{Key: "name", Value: 10},
				{Key: "additionalNotes", Value: 2},
			}),
		},
	}

	if _, err := coll.Indexes().CreateMany(ctx, models); err != nil {
		return fmt.Errorf("failed to create spot indexes: %w", err)
	}

	db.logger.Info("Spot indexes created",
		zap.String("collection", spotCollection),
	)
	return nil
}

func (r *spotRepository) Insert(ctx context.Context, spot *domain.Spot) (*domain.Spot, error) {
	now := time.Now().UTC()
	spot.CreatedAt = now
	spot.UpdatedAt = now
	if spot.Interests == nil {
		spot.Interests = []string{}
	}

	res, err := r.coll.InsertOne(ctx, spot)
	if err != nil {
		return nil, fmt.Errorf("failed to insert spot: %w", err)
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	spot.ID = id

	r.logger.Debug("Spot inserted",
		zap.String("id", id.Hex()),
		zap.String("name", spot.Name),
	)
	return spot, nil
}

func (r *spotRepository) FindNearby(ctx context.Context, lat, lon, radiusKm float64, limit int64) ([]*domain.Spot, error) {
	filter := bson.M{
		"location": bson.M{
			"$near": bson.M{
				"$geometry": bson.M{
					"type":        "Point",
					"coordinates": bson.A{lon, lat},
				},
				"$maxDistance": radiusKm * 1000,
			},
		},
	}

	cur, err := r.coll.Find(ctx, filter, options.Find().SetLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("geospatial query failed: %w", err)
	}
	defer cur.Close(ctx)

	var spots []*domain.Spot
	if err := cur.All(ctx, &spots); err != nil {
		return nil, fmt.Errorf("failed to decode nearby spots: %w", err)
	}
	return spots, nil
}

func (r *spotRepository) FindSample(ctx context.Context, limit int64) ([]*domain.Spot, error) {
	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("sample query failed: %w", err)
	}
	defer cur.Close(ctx)

	// Decode one by one: the fallback runs exactly when the collection may
	// still hold malformed documents.
	var spots []*domain.Spot
	for cur.Next(ctx) {
		var spot domain.Spot
		if err := cur.Decode(&spot); err != nil {
			r.logger.Warn("Skipping undecodable spot document", zap.Error(err))
			continue
		}
		spots = append(spots, &spot)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("sample cursor failed: %w", err)
	}
	return spots, nil
}

// invalidSpotDoc captures just enough of an offending document to decide
// between re-geocoding and deletion.
type invalidSpotDoc struct {
	ID       primitive.ObjectID `bson:"_id"`
	Location bson.RawValue      `bson:"location"`
}

func (r *spotRepository) FindInvalidLocations(ctx context.Context) ([]*domain.InvalidSpot, error) {
	filter := bson.M{
		"$or": bson.A{
			bson.M{"location.type": bson.M{"$exists": false}},
			bson.M{"location.coordinates": bson.M{"$exists": false}},
			bson.M{"location": bson.M{"$type": "string"}},
		},
	}

	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("invalid-document scan failed: %w", err)
	}
	defer cur.Close(ctx)

	var invalid []*domain.InvalidSpot
	for cur.Next(ctx) {
		var doc invalidSpotDoc
		if err := cur.Decode(&doc); err != nil {
			r.logger.Warn("Skipping undecodable invalid document", zap.Error(err))
			continue
		}

		rec := &domain.InvalidSpot{ID: doc.ID}
		if doc.Location.Type == bson.TypeString {
			rec.LegacyAddress = doc.Location.StringValue()
			rec.HasLegacyAddress = true
		}
		invalid = append(invalid, rec)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("invalid-document cursor failed: %w", err)
	}
	return invalid, nil
}

func (r *spotRepository) UpdateLocation(ctx context.Context, id primitive.ObjectID, point domain.GeoPoint) error {
	update := bson.M{
		"$set": bson.M{
			"location":  point,
			"updatedAt": time.Now().UTC(),
		},
	}
	if _, err := r.coll.UpdateByID(ctx, id, update); err != nil {
		return fmt.Errorf("failed to update spot location: %w", err)
	}
	return nil
}

func (r *spotRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	if _, err := r.coll.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("failed to delete spot: %w", err)
	}
	return nil
}
