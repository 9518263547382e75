package service

import "time"

// Clock supplies the current time, letting open-now evaluation run against fixed instants in tests.
type Clock interface {
	Now() time.Time
}
