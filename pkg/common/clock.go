package common

import "time"

// Clock provides the current time so reconciliation passes can be replayed
// deterministically in tests.
type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func (RealClock) Now() time.Time {
	return time.Now()
}
