// Package emotion turns face detector output into the flags that drive the
// runner, and hands the latest flags from producers to the game loop.
package emotion

import (
	"errors"
	"fmt"
	"math"
)

// Threshold is the probability a channel must exceed to count as true.
// A value exactly at the threshold is false.
const Threshold = 0.5

// ErrInvalidSample is returned for probabilities outside [0, 1] or NaN.
var ErrInvalidSample = errors.New("emotion: invalid sample")

// Flags is one immutable snapshot of the player's expression.
// The zero value (not smiling, both eyes closed) is the default before any
// detection result arrives.
type Flags struct {
	Smile        bool `json:"smile"`
	LeftEyeOpen  bool `json:"left_eye_open"`
	RightEyeOpen bool `json:"right_eye_open"`
}

// BothEyesOpen reports whether neither eye is closed.
func (f Flags) BothEyesOpen() bool {
	return f.LeftEyeOpen && f.RightEyeOpen
}

// String renders the flags for the HUD, e.g. "smile eyes:o-".
func (f Flags) String() string {
	mouth := "plain"
	if f.Smile {
		mouth = "smile"
	}
	return fmt.Sprintf("%s eyes:%c%c", mouth, eye(f.LeftEyeOpen), eye(f.RightEyeOpen))
}

func eye(open bool) rune {
	if open {
		return 'o'
	}
	return '-'
}

// Probabilities is raw detector output, each channel in [0, 1].
// It is also the wire format accepted by the feed.
type Probabilities struct {
	Smile        float64 `json:"smile" msgpack:"smile"`
	LeftEyeOpen  float64 `json:"left_eye_open" msgpack:"left_eye_open"`
	RightEyeOpen float64 `json:"right_eye_open" msgpack:"right_eye_open"`
}

// Validate rejects channels outside [0, 1].
func (p Probabilities) Validate() error {
	channels := [...]struct {
		name string
		v    float64
	}{
		{"smile", p.Smile},
		{"left_eye_open", p.LeftEyeOpen},
		{"right_eye_open", p.RightEyeOpen},
	}
	for _, c := range channels {
		if math.IsNaN(c.v) || c.v < 0 || c.v > 1 {
			return fmt.Errorf("%w: %s=%v", ErrInvalidSample, c.name, c.v)
		}
	}
	return nil
}

// Estimate thresholds each channel independently. There is no smoothing or
// hysteresis: every sample maps to flags on its own.
func Estimate(p Probabilities) Flags {
	return Flags{
		Smile:        p.Smile > Threshold,
		LeftEyeOpen:  p.LeftEyeOpen > Threshold,
		RightEyeOpen: p.RightEyeOpen > Threshold,
	}
}
