package nominatim

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/travelspot-service/internal/config"
	"github.com/travelspot-service/internal/domain"
	"github.com/travelspot-service/internal/domain/repository"
)

type client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	logger     *zap.Logger
}

// NewClient creates a geocoding client for the Nominatim search API.
func NewClient(cfg *config.GeocoderConfig, logger *zap.Logger) repository.Geocoder {
	return &client{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.RequestTimeout) * time.Second,
		},
		baseURL:   cfg.BaseURL,
		userAgent: cfg.UserAgent,
		logger:    logger,
	}
}

// searchResult is the subset of a Nominatim match we consume. Coordinates
// arrive as strings on the wire.
type searchResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// Geocode resolves an address to a point, taking the first provider match.
// Zero matches map to domain.ErrAddressNotFound.
func (c *client) Geocode(ctx context.Context, address string) (*domain.GeoPoint, error) {
	if strings.TrimSpace(address) == "" {
		return nil, fmt.Errorf("address cannot be empty")
	}

	query := url.Values{}
	query.Set("q", address)
	query.Set("format", "json")
	query.Set("limit", "1")

	reqURL := fmt.Sprintf("%s/search?%s", c.baseURL, query.Encode())

	c.logger.Debug("Calling Nominatim search API",
		zap.String("address", address),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		c.logger.Error("Failed to create request", zap.Error(err))
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	// Nominatim's usage policy requires an identifying User-Agent.
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to execute request", zap.Error(err))
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("Nominatim API returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)),
		)
		return nil, fmt.Errorf("nominatim API error: status %d, body: %s", resp.StatusCode, string(body))
	}

	var results []searchResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		c.logger.Error("Failed to decode response", zap.Error(err))
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if len(results) == 0 {
		c.logger.Debug("No geocoding match", zap.String("address", address))
		return nil, domain.ErrAddressNotFound
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid latitude %q: %w", results[0].Lat, err)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid longitude %q: %w", results[0].Lon, err)
	}

	point := domain.NewPoint(lon, lat)
	if !point.Valid() {
		return nil, fmt.Errorf("nominatim returned out-of-range coordinates [%f, %f]", lon, lat)
	}

	c.logger.Debug("Address geocoded",
		zap.String("address", address),
		zap.String("match", results[0].DisplayName),
		zap.Float64("lon", lon),
		zap.Float64("lat", lat),
	)
	return &point, nil
}
