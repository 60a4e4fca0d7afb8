package kernel

import "time"

// Clock supplies the current time to domain operations that stamp records.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock in UTC.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

// FixedClock always returns the same instant. Useful for deterministic tests and replays.
type FixedClock time.Time

func (c FixedClock) Now() time.Time {
	return time.Time(c)
}
