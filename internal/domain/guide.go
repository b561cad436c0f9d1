package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Gender values accepted for a guide registration. The range and enum rules
// for guides live in the collection schema, not in application code.
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

// Guide is a person offering guiding services. Independent of Spot; the two
// aggregates only share the hosting process.
type Guide struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Age       int                `bson:"age"`
	Gender    Gender             `bson:"gender"`
	Location  string             `bson:"location"`
	Mobile    string             `bson:"mobile"`
	Email     string             `bson:"email"`
	CreatedAt time.Time          `bson:"createdAt"`
}
