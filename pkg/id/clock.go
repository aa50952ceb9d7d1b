package id

import "time"

// Clock yields the current time in whole milliseconds since the Unix epoch.
type Clock interface {
	NowMs() uint64
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() uint64

// NowMs calls f.
func (f ClockFunc) NowMs() uint64 { return f() }

// SystemClock reads the wall clock.
type SystemClock struct{}

// NowMs returns the wall clock in milliseconds, clamped to 0 when the clock
// reports a time before the epoch.
func (SystemClock) NowMs() uint64 { return Millis(time.Now()) }

// FixedClock returns a Clock that always reports ms.
func FixedClock(ms uint64) Clock {
	return ClockFunc(func() uint64 { return ms })
}

// Millis converts t to milliseconds since the epoch. Times before the epoch
// clamp to 0.
func Millis(t time.Time) uint64 {
	ms := t.UnixMilli()
	if ms < 0 {
		return 0
	}
	return uint64(ms)
}

// CheckClock returns ErrClockBeforeEpoch if t is before the epoch. Processes
// call it once at startup; generation itself clamps instead of failing.
func CheckClock(t time.Time) error {
	if t.Before(time.Unix(0, 0)) {
		return ErrClockBeforeEpoch
	}
	return nil
}
