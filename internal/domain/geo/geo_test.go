package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	boston    = [2]float64{42.3601, -71.0589}
	cambridge = [2]float64{42.3736, -71.1097}
	nyc       = [2]float64{40.7128, -74.0060}
	la        = [2]float64{34.0522, -118.2437}
)

func TestDistance_KnownPairs(t *testing.T) {
	tests := []struct {
		name        string
		a, b        [2]float64
		expectedMin float64
		expectedMax float64
	}{
		{name: "Boston to Cambridge", a: boston, b: cambridge, expectedMin: 2.5, expectedMax: 4.5},
		{name: "NYC to LA", a: nyc, b: la, expectedMin: 2400, expectedMax: 2500},
		{name: "cross equator one degree each side", a: [2]float64{1, 0}, b: [2]float64{-1, 0}, expectedMin: 137, expectedMax: 140},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dist := Distance(tt.a[0], tt.a[1], tt.b[0], tt.b[1])
			assert.GreaterOrEqual(t, dist, tt.expectedMin)
			assert.LessOrEqual(t, dist, tt.expectedMax)
		})
	}
}

func TestDistance_UsesMeanEarthRadius(t *testing.T) {
	// One degree of arc on a 3959 mile sphere.
	want := 3959.0 * math.Pi / 180

	assert.InDelta(t, want, Distance(0, 0, 0, 1), 1e-6)
	assert.InDelta(t, want, Distance(10, 20, 11, 20), 1e-6)
}

func TestDistance_IdentityAndSymmetry(t *testing.T) {
	points := [][2]float64{boston, cambridge, nyc, la, {0, 0}, {89.9, 179.9}, {-45, -170}}

	for _, p := range points {
		assert.Zero(t, Distance(p[0], p[1], p[0], p[1]))
	}

	for _, a := range points {
		for _, b := range points {
			assert.InDelta(t, Distance(a[0], a[1], b[0], b[1]), Distance(b[0], b[1], a[0], a[1]), 1e-9)
		}
	}
}

func TestCalculateBoundingBox_EnclosesCenter(t *testing.T) {
	tests := []struct {
		name     string
		lat, lon float64
		radius   float64
	}{
		{name: "boston", lat: boston[0], lon: boston[1], radius: 10},
		{name: "equator", lat: 0, lon: 0, radius: 100},
		{name: "near north pole", lat: 89, lon: 10, radius: 10},
		{name: "near south pole", lat: -89.5, lon: -20, radius: 50},
		{name: "tiny radius", lat: 35, lon: 139, radius: 0.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			box := CalculateBoundingBox(tt.lat, tt.lon, tt.radius)

			assert.Less(t, box.MinLat, tt.lat)
			assert.Greater(t, box.MaxLat, tt.lat)
			assert.Less(t, box.MinLon, tt.lon)
			assert.Greater(t, box.MaxLon, tt.lon)
			assert.GreaterOrEqual(t, box.MinLat, -90.0)
			assert.LessOrEqual(t, box.MaxLat, 90.0)
		})
	}
}

func TestCalculateBoundingBox_ClampsLatitude(t *testing.T) {
	box := CalculateBoundingBox(89.95, 0, 10)

	assert.Equal(t, 90.0, box.MaxLat)
	assert.Less(t, box.MinLat, 89.95)
}

func TestCalculateBoundingBox_PoleFallback(t *testing.T) {
	box := CalculateBoundingBox(90, 0, 10)

	// r / 3959 * 360 / 2π degrees either side.
	assert.InDelta(t, 0.1447, box.MaxLon, 1e-4)
	assert.InDelta(t, -0.1447, box.MinLon, 1e-4)
	assert.Equal(t, 90.0, box.MaxLat)
}

func TestCalculateBoundingBox_DoesNotWrapLongitude(t *testing.T) {
	box := CalculateBoundingBox(0, 179.9, 20)

	assert.Greater(t, box.MaxLon, 180.0)
}

func TestCalculateBoundingBox_EnclosesRadius(t *testing.T) {
	lat, lon, radius := 40.0, -100.0, 25.0
	box := CalculateBoundingBox(lat, lon, radius)

	// Points on the circle along the axes must sit inside the rectangle.
	assert.LessOrEqual(t, Distance(lat, lon, box.MaxLat, lon), radius+0.5)
	assert.True(t, box.Contains(lat+0.3, lon))
	assert.True(t, box.Contains(lat, lon-0.4))
	assert.False(t, box.Contains(lat+1, lon))
}

func TestBoundingBox_LongitudeRanges(t *testing.T) {
	tests := []struct {
		name string
		box  BoundingBox
		want []LonRange
	}{
		{
			name: "no wrap",
			box:  BoundingBox{MinLat: 0, MaxLat: 1, MinLon: 10, MaxLon: 11},
			want: []LonRange{{Min: 10, Max: 11}},
		},
		{
			name: "wraps east",
			box:  BoundingBox{MinLat: 0, MaxLat: 1, MinLon: 179.5, MaxLon: 180.5},
			want: []LonRange{{Min: 179.5, Max: 180}, {Min: -180, Max: -179.5}},
		},
		{
			name: "wraps west",
			box:  BoundingBox{MinLat: 0, MaxLat: 1, MinLon: -180.25, MaxLon: -179.75},
			want: []LonRange{{Min: 179.75, Max: 180}, {Min: -180, Max: -179.75}},
		},
		{
			name: "touches pole",
			box:  BoundingBox{MinLat: 89.8, MaxLat: 90, MinLon: -5, MaxLon: 5},
			want: []LonRange{{Min: -180, Max: 180}},
		},
		{
			name: "full circle",
			box:  BoundingBox{MinLat: 0, MaxLat: 1, MinLon: -200, MaxLon: 200},
			want: []LonRange{{Min: -180, Max: 180}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.box.LongitudeRanges())
		})
	}
}

func TestBoundingBox_ContainsAcrossAntimeridian(t *testing.T) {
	box := CalculateBoundingBox(-17.7, 179.95, 10)

	assert.True(t, box.Contains(-17.7, -179.98))
	assert.True(t, box.Contains(-17.7, 179.9))
	assert.False(t, box.Contains(-17.7, 0))
}
