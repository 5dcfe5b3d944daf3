package calltable

import (
	"time"

	"github.com/rickb777/date/v2/timespan"
)

// Window is the validity span of a registration.
type Window = timespan.TimeSpan

// WindowBetween builds a Window covering [from, to).
func WindowBetween(from, to time.Time) Window {
	return timespan.BetweenTimes(from, to)
}

// WindowFor builds a Window of duration d starting at from.
func WindowFor(from time.Time, d time.Duration) Window {
	return timespan.BetweenTimes(from, from.Add(d))
}
