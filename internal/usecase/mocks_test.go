package usecase_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/travelspot-service/internal/domain"
)

// MockSpotRepository is a mock of SpotRepository
type MockSpotRepository struct {
	mock.Mock
}

func (m *MockSpotRepository) Insert(ctx context.Context, spot *domain.Spot) (*domain.Spot, error) {
	args := m.Called(ctx, spot)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Spot), args.Error(1)
}

func (m *MockSpotRepository) FindNearby(ctx context.Context, lat, lon, radiusKm float64, limit int64) ([]*domain.Spot, error) {
	args := m.Called(ctx, lat, lon, radiusKm, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Spot), args.Error(1)
}

func (m *MockSpotRepository) FindSample(ctx context.Context, limit int64) ([]*domain.Spot, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Spot), args.Error(1)
}

func (m *MockSpotRepository) FindInvalidLocations(ctx context.Context) ([]*domain.InvalidSpot, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.InvalidSpot), args.Error(1)
}

func (m *MockSpotRepository) UpdateLocation(ctx context.Context, id primitive.ObjectID, point domain.GeoPoint) error {
	args := m.Called(ctx, id, point)
	return args.Error(0)
}

func (m *MockSpotRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockGuideRepository is a mock of GuideRepository
type MockGuideRepository struct {
	mock.Mock
}

func (m *MockGuideRepository) Insert(ctx context.Context, guide *domain.Guide) (*domain.Guide, error) {
	args := m.Called(ctx, guide)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Guide), args.Error(1)
}

func (m *MockGuideRepository) FindAll(ctx context.Context) ([]*domain.Guide, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Guide), args.Error(1)
}

// MockGeocoder is a mock of Geocoder
type MockGeocoder struct {
	mock.Mock
}

func (m *MockGeocoder) Geocode(ctx context.Context, address string) (*domain.GeoPoint, error) {
	args := m.Called(ctx, address)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GeoPoint), args.Error(1)
}

// MockCacheRepository is a mock of CacheRepository
type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) GetGeocode(ctx context.Context, address string) (*domain.GeoPoint, error) {
	args := m.Called(ctx, address)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GeoPoint), args.Error(1)
}

func (m *MockCacheRepository) SetGeocode(ctx context.Context, address string, point domain.GeoPoint, ttl time.Duration) error {
	args := m.Called(ctx, address, point, ttl)
	return args.Error(0)
}

func ptrFloat64(v float64) *float64 {
	return &v
}
