package entity

import (
	"slices"
	"strings"

	"github.com/google/uuid"
)

// ServiceTag is an offering a store can provide, e.g. "pharmacy". Tags are unique by
// name, created on first reference and never deleted.
type ServiceTag struct {
	ID   uuid.UUID
	Name string
}

// ParseServices splits a pipe-delimited list, trimming entries and dropping empty ones.
func ParseServices(raw string) []string {
	services := []string{}
	for _, part := range strings.Split(raw, "|") {
		if part = strings.TrimSpace(part); part != "" {
			services = append(services, part)
		}
	}

	return services
}

// NormalizeServiceNames trims, drops empties and removes duplicates while keeping first-seen order.
func NormalizeServiceNames(names []string) []string {
	normalized := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" || slices.Contains(normalized, name) {
			continue
		}
		normalized = append(normalized, name)
	}

	return normalized
}
