// Package sprite provides wall-clock driven frame animation.
package sprite

import "time"

// Animation loops over an ordered set of frames once per cycle.
// Frame selection depends only on elapsed time, never on a frame counter,
// so skipped or irregular ticks still show the right frame.
type Animation[T any] struct {
	frames   []T
	duration int64 // cycle length in milliseconds
}

// New creates an animation cycling through frames every duration.
// Durations shorter than a millisecond are raised to one millisecond.
func New[T any](frames []T, duration time.Duration) *Animation[T] {
	ms := duration.Milliseconds()
	if ms < 1 {
		ms = 1
	}
	return &Animation[T]{
		frames:   frames,
		duration: ms,
	}
}

// Index returns the frame index for elapsedMs:
// floor((elapsedMs mod duration) / duration * N), clamped to [0, N-1].
// Negative times wrap into the cycle like positive ones.
// Returns -1 for an animation without frames.
func (a *Animation[T]) Index(elapsedMs int64) int {
	n := len(a.frames)
	if n == 0 {
		return -1
	}

	mod := elapsedMs % a.duration
	if mod < 0 {
		mod += a.duration
	}
	idx := int(float64(mod) / float64(a.duration) * float64(n))
	if idx < 0 {
		return 0
	}
	if idx > n-1 {
		return n - 1
	}
	return idx
}

// Frame returns the frame shown at elapsedMs, or the zero value if the
// animation has no frames.
func (a *Animation[T]) Frame(elapsedMs int64) T {
	idx := a.Index(elapsedMs)
	if idx < 0 {
		var zero T
		return zero
	}
	return a.frames[idx]
}
