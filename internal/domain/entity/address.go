// Package entity contains the core business objects of the project.
package entity

import "strings"

// DefaultCountry is applied to stores created without an explicit country.
const DefaultCountry = "USA"

// Coordinates is a WGS84 latitude/longitude pair in degrees.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Valid reports whether both components lie within their geographic ranges.
func (c Coordinates) Valid() bool {
	return c.Latitude >= -90 && c.Latitude <= 90 && c.Longitude >= -180 && c.Longitude <= 180
}

// Address is the postal address of a physical store.
type Address struct {
	Street     string // Street line, e.g. "123 Main St".
	City       string
	State      string
	PostalCode string
	Country    string
}

// IsComplete reports whether the address carries enough parts to be geocoded on its own.
func (a Address) IsComplete() bool {
	return a.Street != "" && a.City != "" && a.State != "" && a.PostalCode != ""
}

// GeocodeQuery joins the non-empty components into a single free-text lookup string.
func (a Address) GeocodeQuery() string {
	parts := make([]string, 0, 5)
	for _, part := range []string{a.Street, a.City, a.State, a.PostalCode, a.Country} {
		if part = strings.TrimSpace(part); part != "" {
			parts = append(parts, part)
		}
	}

	return strings.Join(parts, ", ")
}
