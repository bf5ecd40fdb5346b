package service

import "time"

// Clock supplies the current local wall-clock instant.
type Clock interface {
	Now() time.Time
}

// SystemClock reads time.Now.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// NewSystemClock returns the process clock.
func NewSystemClock() Clock {
	return SystemClock{}
}
