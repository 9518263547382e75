// Package geocoding resolves addresses and postal codes through an OpenStreetMap Nominatim endpoint.
package geocoding

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"locator/config"
	"locator/internal/domain/entity"
	"locator/internal/domain/service"
	"locator/internal/errors"
)

// maxResponseBytes caps how much of a provider response is decoded.
const maxResponseBytes = 1 << 20

// nominatimPlace is the subset of a /search result the client reads.
// Nominatim encodes coordinates as strings.
type nominatimPlace struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// NominatimClient implements service.Geocoder.
type NominatimClient struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
}

// NewNominatimClient builds a client from the geocoding configuration.
func NewNominatimClient(cfg *config.Config) service.Geocoder {
	return newNominatimClient(cfg.Geocoding.BaseURL, cfg.Geocoding.UserAgent, cfg.Geocoding.Timeout)
}

func newNominatimClient(baseURL, userAgent string, timeout time.Duration) *NominatimClient {
	return &NominatimClient{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		userAgent:  userAgent,
	}
}

// Geocode asks for the single best match of query.
func (c *NominatimClient) Geocode(ctx context.Context, query string) (entity.Coordinates, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return entity.Coordinates{}, errors.Wrap(err, "failed to create geocode request")
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return entity.Coordinates{}, errors.Wrap(err, "geocode request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return entity.Coordinates{}, errors.Errorf("geocode provider returned HTTP %d", resp.StatusCode)
	}

	var places []nominatimPlace
	if err := json.NewDecoder(http.MaxBytesReader(nil, resp.Body, maxResponseBytes)).Decode(&places); err != nil {
		return entity.Coordinates{}, errors.Wrap(err, "failed to decode geocode response")
	}

	if len(places) == 0 {
		return entity.Coordinates{}, service.ErrGeocodeNoMatch
	}

	return places[0].coordinates()
}

func (p nominatimPlace) coordinates() (entity.Coordinates, error) {
	lat, err := strconv.ParseFloat(p.Lat, 64)
	if err != nil {
		return entity.Coordinates{}, errors.Wrapf(err, "invalid latitude %q", p.Lat)
	}

	lon, err := strconv.ParseFloat(p.Lon, 64)
	if err != nil {
		return entity.Coordinates{}, errors.Wrapf(err, "invalid longitude %q", p.Lon)
	}

	coords := entity.Coordinates{Latitude: lat, Longitude: lon}
	if !coords.Valid() {
		return entity.Coordinates{}, errors.Errorf("coordinates out of range: %v,%v", lat, lon)
	}

	return coords, nil
}
