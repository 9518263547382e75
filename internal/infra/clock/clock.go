// Package clock provides the wall clock used outside tests.
package clock

import (
	"time"

	"locator/internal/domain/service"
)

type systemClock struct{}

// NewSystemClock returns a clock backed by time.Now.
func NewSystemClock() service.Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now()
}
