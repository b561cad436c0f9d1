package dto

// SubmitSpotRequest is the POST /api/tourist-info payload. Location is the
// free-text address as typed by the user; it is geocoded before anything is
// stored.
type SubmitSpotRequest struct {
	Name               string   `json:"name" validate:"required"`
	Location           string   `json:"location" validate:"required"`
	PreferredTransport string   `json:"preferredTransport" validate:"required,oneof=train flight car others"`
	OtherTransport     string   `json:"otherTransport" validate:"required_if=PreferredTransport others"`
	PreferredTime      string   `json:"preferredTime" validate:"required,oneof=morning afternoon evening"`
	Interests          []string `json:"interests"`
	AdditionalNotes    string   `json:"additionalNotes"`
}

// NearbyRequest carries the GET /api/user-spots query. Pointers distinguish
// "missing" from zero, so the equator and the prime meridian stay queryable.
type NearbyRequest struct {
	Latitude  *float64 `query:"latitude"`
	Longitude *float64 `query:"longitude"`
	RadiusKm  float64  `query:"radius"`
}

// RegisterGuideRequest is the POST /api/guides payload. Only presence is
// validated here; the age range and gender enum are store-schema rules.
type RegisterGuideRequest struct {
	Name     string `json:"name" validate:"required"`
	Age      int    `json:"age" validate:"required"`
	Gender   string `json:"gender" validate:"required"`
	Location string `json:"location" validate:"required"`
	Mobile   string `json:"mobile" validate:"required"`
	Email    string `json:"email" validate:"required"`
}
