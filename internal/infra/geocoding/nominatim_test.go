package geocoding

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"locator/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNominatimClient_Geocode(t *testing.T) {
	var gotQuery, gotAgent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		assert.Equal(t, "1", r.URL.Query().Get("limit"))
		gotQuery = r.URL.Query().Get("q")
		gotAgent = r.Header.Get("User-Agent")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"lat":"40.7484","lon":"-73.9857","display_name":"Empire State Building"}]`))
	}))
	defer srv.Close()

	client := newNominatimClient(srv.URL+"/", "store_locator_service", time.Second)

	coords, err := client.Geocode(context.Background(), "350 5th Ave, New York, NY, 10118, USA")
	require.NoError(t, err)
	assert.InDelta(t, 40.7484, coords.Latitude, 1e-9)
	assert.InDelta(t, -73.9857, coords.Longitude, 1e-9)
	assert.Equal(t, "350 5th Ave, New York, NY, 10118, USA", gotQuery)
	assert.Equal(t, "store_locator_service", gotAgent)
}

func TestNominatimClient_Geocode_Errors(t *testing.T) {
	testCases := []struct {
		name      string
		status    int
		body      string
		noMatch   bool
		expectErr bool
	}{
		{name: "empty result", status: http.StatusOK, body: `[]`, noMatch: true, expectErr: true},
		{name: "server error", status: http.StatusBadGateway, body: ``, expectErr: true},
		{name: "malformed json", status: http.StatusOK, body: `{"oops"`, expectErr: true},
		{name: "bad coordinate", status: http.StatusOK, body: `[{"lat":"north","lon":"1"}]`, expectErr: true},
		{name: "out of range", status: http.StatusOK, body: `[{"lat":"95","lon":"1"}]`, expectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			_, err := newNominatimClient(srv.URL, "ua", time.Second).Geocode(context.Background(), "x")
			require.Error(t, err)
			if tc.noMatch {
				assert.ErrorIs(t, err, service.ErrGeocodeNoMatch)
			} else {
				assert.NotErrorIs(t, err, service.ErrGeocodeNoMatch)
			}
		})
	}
}

func TestNominatimClient_Geocode_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	_, err := newNominatimClient(srv.URL, "ua", 20*time.Millisecond).Geocode(context.Background(), "x")
	require.Error(t, err)
	assert.NotErrorIs(t, err, service.ErrGeocodeNoMatch)
}
