package emotion

import "sync/atomic"

// Source supplies the most recent flags. Load must never block.
type Source interface {
	Load() Flags
}

// Sink accepts new flags. Publish is fire-and-forget and overwrites the
// previous value.
type Sink interface {
	Publish(Flags)
}

// Signal is a latest-value cell shared between a detector and the game loop.
// Writers replace the whole value atomically; readers always see a complete
// snapshot. There is no queue: only the last published flags survive.
type Signal struct {
	latest atomic.Pointer[Flags]
}

// NewSignal creates a signal holding the all-false default.
func NewSignal() *Signal {
	return &Signal{}
}

// Publish replaces the current flags.
func (s *Signal) Publish(f Flags) {
	s.latest.Store(&f)
}

// Load returns the current flags, or the zero Flags before the first Publish.
func (s *Signal) Load() Flags {
	if p := s.latest.Load(); p != nil {
		return *p
	}
	return Flags{}
}

var (
	_ Source = (*Signal)(nil)
	_ Sink   = (*Signal)(nil)
)
