// Package geo provides the great-circle distance and bounding-box math used to
// pre-filter and rank stores around a search point.
package geo

import (
	"math"

	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
)

const (
	// milesPerDegreeLat is the fixed length of one degree of latitude.
	milesPerDegreeLat = 69.0

	// earthRadiusMiles is the mean Earth radius used for distances and the polar fallback.
	earthRadiusMiles = 3959.0

	poleCosThreshold = 1e-6
)

// Distance returns the haversine great-circle distance between two points in miles on a
// sphere of the mean Earth radius. Identical points yield exactly 0 and the result is symmetric.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	// orb measures on its equatorial radius; haversine scales linearly with the radius.
	meters := orbgeo.DistanceHaversine(orb.Point{lon1, lat1}, orb.Point{lon2, lat2})

	return meters / orb.EarthRadius * earthRadiusMiles
}

// BoundingBox is an axis-aligned latitude/longitude rectangle in degrees.
type BoundingBox struct {
	MinLat float64 `json:"min_lat"`
	MaxLat float64 `json:"max_lat"`
	MinLon float64 `json:"min_lon"`
	MaxLon float64 `json:"max_lon"`
}

// CalculateBoundingBox approximates the rectangle enclosing a circle of radiusMiles
// around (lat, lon). Latitude is clamped to [-90, 90]; longitude is returned unwrapped
// and may fall outside [-180, 180] near the antimeridian (see LongitudeRanges).
func CalculateBoundingBox(lat, lon, radiusMiles float64) BoundingBox {
	latDelta := radiusMiles / milesPerDegreeLat

	var lonDelta float64
	if cosLat := math.Cos(lat * math.Pi / 180); math.Abs(cosLat) < poleCosThreshold {
		lonDelta = radiusMiles / earthRadiusMiles * 360 / (2 * math.Pi)
	} else {
		lonDelta = radiusMiles / (milesPerDegreeLat * cosLat)
	}

	return BoundingBox{
		MinLat: math.Max(lat-latDelta, -90),
		MaxLat: math.Min(lat+latDelta, 90),
		MinLon: lon - lonDelta,
		MaxLon: lon + lonDelta,
	}
}

// LonRange is a closed longitude interval within [-180, 180].
type LonRange struct {
	Min float64
	Max float64
}

// LongitudeRanges normalises the box's longitude span into at most two intervals
// inside [-180, 180], splitting at the antimeridian. A box that reaches a pole or
// spans the full circle covers every longitude.
func (b BoundingBox) LongitudeRanges() []LonRange {
	full := []LonRange{{Min: -180, Max: 180}}

	if b.MaxLat >= 90 || b.MinLat <= -90 || b.MaxLon-b.MinLon >= 360 {
		return full
	}

	switch {
	case b.MinLon < -180:
		return []LonRange{{Min: b.MinLon + 360, Max: 180}, {Min: -180, Max: b.MaxLon}}
	case b.MaxLon > 180:
		return []LonRange{{Min: b.MinLon, Max: 180}, {Min: -180, Max: b.MaxLon - 360}}
	default:
		return []LonRange{{Min: b.MinLon, Max: b.MaxLon}}
	}
}

// Contains reports whether the point falls inside the box, honouring antimeridian wrap.
func (b BoundingBox) Contains(lat, lon float64) bool {
	if lat < b.MinLat || lat > b.MaxLat {
		return false
	}

	for _, r := range b.LongitudeRanges() {
		if lon >= r.Min && lon <= r.Max {
			return true
		}
	}

	return false
}
