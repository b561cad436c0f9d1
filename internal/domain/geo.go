package domain

import (
	"errors"
	"math"
)

// ErrAddressNotFound is returned by geocoders when the provider has no match
// for an address. It signals "cannot place this submission", not a fault.
var ErrAddressNotFound = errors.New("address not found")

// GeoPoint is a GeoJSON point, longitude first. Every persisted spot holds
// one; the 2dsphere index depends on this shape.
type GeoPoint struct {
	Type        string    `json:"type" bson:"type"`
	Coordinates []float64 `json:"coordinates" bson:"coordinates"`
}

// NewPoint builds a GeoJSON point from a longitude/latitude pair.
func NewPoint(lon, lat float64) GeoPoint {
	return GeoPoint{
		Type:        "Point",
		Coordinates: []float64{lon, lat},
	}
}

func (p GeoPoint) Lon() float64 {
	return p.Coordinates[0]
}

func (p GeoPoint) Lat() float64 {
	return p.Coordinates[1]
}

// Valid reports whether the point satisfies the location invariant:
// type "Point" and exactly two finite coordinates.
func (p GeoPoint) Valid() bool {
	if p.Type != "Point" || len(p.Coordinates) != 2 {
		return false
	}
	for _, c := range p.Coordinates {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return p.Coordinates[0] >= -180 && p.Coordinates[0] <= 180 &&
		p.Coordinates[1] >= -90 && p.Coordinates[1] <= 90
}
