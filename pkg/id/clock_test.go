package id

import (
	"testing"
	"time"
)

func TestMillis(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want uint64
	}{
		{"epoch", time.Unix(0, 0), 0},
		{"known", time.UnixMilli(1469918176385), 1469918176385},
		{"sub-millisecond truncated", time.Unix(1, 999_999), 1000},
		{"before epoch clamps", time.Unix(-10, 0), 0},
		{"far past clamps", time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Millis(tt.in); got != tt.want {
				t.Errorf("Millis(%v) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestCheckClock(t *testing.T) {
	if err := CheckClock(time.Now()); err != nil {
		t.Errorf("CheckClock(now) = %v", err)
	}
	if err := CheckClock(time.Unix(0, 0)); err != nil {
		t.Errorf("CheckClock(epoch) = %v", err)
	}
	if err := CheckClock(time.Unix(-1, 0)); err != ErrClockBeforeEpoch {
		t.Errorf("CheckClock(before epoch) = %v, want ErrClockBeforeEpoch", err)
	}
}

func TestPreEpochClockDoesNotFail(t *testing.T) {
	g := NewGenerator(WithClock(ClockFunc(func() uint64 { return Millis(time.Unix(-100, 0)) })))
	v := g.New()
	if v.Timestamp() != 0 {
		t.Errorf("Timestamp() = %d, want clamped 0", v.Timestamp())
	}
}

func TestSystemClock(t *testing.T) {
	before := time.Now().UnixMilli()
	got := SystemClock{}.NowMs()
	after := time.Now().UnixMilli()
	if int64(got) < before || int64(got) > after {
		t.Errorf("NowMs() = %d, want within [%d, %d]", got, before, after)
	}
}

func TestFixedClock(t *testing.T) {
	c := FixedClock(42)
	if c.NowMs() != 42 || c.NowMs() != 42 {
		t.Error("FixedClock drifted")
	}
}
