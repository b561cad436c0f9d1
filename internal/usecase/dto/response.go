package dto

import (
	"time"

	"github.com/travelspot-service/internal/domain"
)

// SpotResponse is the wire shape of a persisted spot: the internal identifier
// surfaces as id, nothing else internal leaks.
type SpotResponse struct {
	ID                 string          `json:"id"`
	Name               string          `json:"name"`
	Location           domain.GeoPoint `json:"location"`
	PreferredTransport string          `json:"preferredTransport"`
	OtherTransport     string          `json:"otherTransport"`
	PreferredTime      string          `json:"preferredTime"`
	Interests          []string        `json:"interests"`
	AdditionalNotes    string          `json:"additionalNotes"`
	CreatedAt          time.Time       `json:"createdAt"`
	UpdatedAt          time.Time       `json:"updatedAt"`
}

func NewSpotResponse(s *domain.Spot) *SpotResponse {
	interests := s.Interests
	if interests == nil {
		interests = []string{}
	}
	return &SpotResponse{
		ID:                 s.ID.Hex(),
		Name:               s.Name,
		Location:           s.Location,
		PreferredTransport: string(s.PreferredTransport),
		OtherTransport:     s.OtherTransport,
		PreferredTime:      string(s.PreferredTime),
		Interests:          interests,
		AdditionalNotes:    s.AdditionalNotes,
		CreatedAt:          s.CreatedAt,
		UpdatedAt:          s.UpdatedAt,
	}
}

func NewSpotResponses(spots []*domain.Spot) []*SpotResponse {
	out := make([]*SpotResponse, 0, len(spots))
	for _, s := range spots {
		out = append(out, NewSpotResponse(s))
	}
	return out
}

// NearbyResult tags proximity results with their precision. Degraded results
// come from the unfiltered fallback and carry no distance guarantee.
type NearbyResult struct {
	Spots          []*SpotResponse
	Degraded       bool
	DegradedReason string
}

// GuideResponse is the wire shape of a registered guide.
type GuideResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Age       int       `json:"age"`
	Gender    string    `json:"gender"`
	Location  string    `json:"location"`
	Mobile    string    `json:"mobile"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

func NewGuideResponse(g *domain.Guide) *GuideResponse {
	return &GuideResponse{
		ID:        g.ID.Hex(),
		Name:      g.Name,
		Age:       g.Age,
		Gender:    string(g.Gender),
		Location:  g.Location,
		Mobile:    g.Mobile,
		Email:     g.Email,
		CreatedAt: g.CreatedAt,
	}
}

func NewGuideResponses(guides []*domain.Guide) []*GuideResponse {
	out := make([]*GuideResponse, 0, len(guides))
	for _, g := range guides {
		out = append(out, NewGuideResponse(g))
	}
	return out
}
