package engine

import "time"

// TimeProvider supplies the clock used for cooldowns and elapsed-time scoring
type TimeProvider interface {
	Now() time.Time
}

// MonotonicTimeProvider reads the system clock, including its monotonic component
type MonotonicTimeProvider struct{}

// NewMonotonicTimeProvider creates a system clock provider
func NewMonotonicTimeProvider() *MonotonicTimeProvider {
	return &MonotonicTimeProvider{}
}

// Now returns time.Now()
func (p *MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}
