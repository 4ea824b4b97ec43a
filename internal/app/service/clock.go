package service

import (
	"time"

	"github.com/Chikimuras/ezlife/internal/core/period"
	"github.com/Chikimuras/ezlife/internal/core/ports"
)

// SystemClock reads the wall clock in a fixed location, so "today" follows
// the configured timezone rather than the host's.
type SystemClock struct {
	Location *time.Location
}

func (c SystemClock) Now() time.Time {
	if c.Location == nil {
		return time.Now()
	}
	return time.Now().In(c.Location)
}

var _ ports.Clock = SystemClock{}

func today(clock ports.Clock) time.Time {
	return period.Date(clock.Now())
}
