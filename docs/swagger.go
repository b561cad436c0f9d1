// Package docs TravelSpot API.
//
// REST API backing the TravelSpot travel-discovery frontend. Persists
// user-submitted tourist spots with geocoded GeoJSON locations, answers
// nearby-spot queries off a 2dsphere index, and manages guide
// registrations.
//
// Endpoints:
// - POST /api/tourist-info: submit a spot (address is geocoded before storage)
// - GET /api/user-spots: spots near a coordinate, capped at 50
// - POST /api/guides, GET /api/guides: guide registration
// - GET /api/health: database connectivity probe
//
//	Schemes: http, https
//	BasePath: /api
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
//
// swagger:meta
package docs
