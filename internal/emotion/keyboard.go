package emotion

// Keyboard stands in for the face detector when playing in a terminal.
// Each key flips one raw channel between its extremes and publishes the
// estimate, so keyboard play goes through the same mapping as a detector.
// It is driven from the UI loop only.
type Keyboard struct {
	sink  Sink
	probs Probabilities
}

// NewKeyboard creates a keyboard producer. The simulated face starts neutral
// with both eyes open; nothing is published until Publish or a toggle.
func NewKeyboard(sink Sink) *Keyboard {
	return &Keyboard{
		sink: sink,
		probs: Probabilities{
			Smile:        0,
			LeftEyeOpen:  1,
			RightEyeOpen: 1,
		},
	}
}

// ToggleSmile flips the smile channel and publishes.
func (k *Keyboard) ToggleSmile() Flags {
	k.probs.Smile = flip(k.probs.Smile)
	return k.publish()
}

// ToggleLeftEye flips the left eye channel and publishes.
func (k *Keyboard) ToggleLeftEye() Flags {
	k.probs.LeftEyeOpen = flip(k.probs.LeftEyeOpen)
	return k.publish()
}

// ToggleRightEye flips the right eye channel and publishes.
func (k *Keyboard) ToggleRightEye() Flags {
	k.probs.RightEyeOpen = flip(k.probs.RightEyeOpen)
	return k.publish()
}

// Publish sends the simulated face without changing it.
func (k *Keyboard) Publish() Flags {
	return k.publish()
}

func (k *Keyboard) publish() Flags {
	f := Estimate(k.probs)
	k.sink.Publish(f)
	return f
}

func flip(v float64) float64 {
	if v > Threshold {
		return 0
	}
	return 1
}
