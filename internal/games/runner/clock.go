package runner

import "time"

// Clock supplies wall-clock time in milliseconds.
type Clock interface {
	NowMillis() int64
}

// Random supplies the randomness used when the cake respawns.
// *math/rand.Rand satisfies it.
type Random interface {
	Float64() float64
	Intn(n int) int
}

// SystemClock reads the real wall clock.
type SystemClock struct{}

// NowMillis returns the current Unix time in milliseconds.
func (SystemClock) NowMillis() int64 {
	return time.Now().UnixMilli()
}
