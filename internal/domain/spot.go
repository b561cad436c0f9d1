package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TransportMode is the transport preference attached to a spot submission.
type TransportMode string

const (
	TransportTrain  TransportMode = "train"
	TransportFlight TransportMode = "flight"
	TransportCar    TransportMode = "car"
	TransportOthers TransportMode = "others"
)

func (m TransportMode) Valid() bool {
	switch m {
	case TransportTrain, TransportFlight, TransportCar, TransportOthers:
		return true
	}
	return false
}

// TimeOfDay is the preferred visiting time for a spot.
type TimeOfDay string

const (
	TimeMorning   TimeOfDay = "morning"
	TimeAfternoon TimeOfDay = "afternoon"
	TimeEvening   TimeOfDay = "evening"
)

func (t TimeOfDay) Valid() bool {
	switch t {
	case TimeMorning, TimeAfternoon, TimeEvening:
		return true
	}
	return false
}

// Spot is a user-submitted point of interest. Location is always a geocoded
// GeoJSON point; submissions whose address cannot be resolved are never
// persisted.
type Spot struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty"`
	Name               string             `bson:"name"`
	Location           GeoPoint           `bson:"location"`
	PreferredTransport TransportMode      `bson:"preferredTransport"`
	OtherTransport     string             `bson:"otherTransport"`
	PreferredTime      TimeOfDay          `bson:"preferredTime"`
	Interests          []string           `bson:"interests"`
	AdditionalNotes    string             `bson:"additionalNotes"`
	CreatedAt          time.Time          `bson:"createdAt"`
	UpdatedAt          time.Time          `bson:"updatedAt"`
}

// InvalidSpot describes a stored document that violates the location
// invariant. LegacyAddress holds the original free-text address when the
// stored location is a bare string; such documents can be re-geocoded,
// anything else is discarded by the repair pass.
type InvalidSpot struct {
	ID               primitive.ObjectID
	LegacyAddress    string
	HasLegacyAddress bool
}
