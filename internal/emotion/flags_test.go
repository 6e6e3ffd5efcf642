package emotion

import (
	"errors"
	"math"
	"testing"
)

func TestEstimate(t *testing.T) {
	tests := []struct {
		name     string
		in       Probabilities
		expected Flags
	}{
		{"all low", Probabilities{0.1, 0.2, 0.3}, Flags{}},
		{"all high", Probabilities{0.9, 0.8, 0.7}, Flags{Smile: true, LeftEyeOpen: true, RightEyeOpen: true}},
		{"exactly at threshold is false", Probabilities{0.5, 0.5, 0.5}, Flags{}},
		{"just above threshold", Probabilities{0.5001, 0.5001, 0.5001}, Flags{Smile: true, LeftEyeOpen: true, RightEyeOpen: true}},
		{"wink", Probabilities{0.9, 0.1, 0.95}, Flags{Smile: true, LeftEyeOpen: false, RightEyeOpen: true}},
		{"extremes", Probabilities{0, 1, 0}, Flags{LeftEyeOpen: true}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Estimate(tc.in); got != tc.expected {
				t.Errorf("Estimate(%+v) = %+v, expected %+v", tc.in, got, tc.expected)
			}
		})
	}
}

func TestProbabilitiesValidate(t *testing.T) {
	tests := []struct {
		name  string
		in    Probabilities
		valid bool
	}{
		{"zeros", Probabilities{}, true},
		{"ones", Probabilities{1, 1, 1}, true},
		{"negative", Probabilities{-0.1, 0.5, 0.5}, false},
		{"above one", Probabilities{0.5, 1.01, 0.5}, false},
		{"nan", Probabilities{0.5, 0.5, math.NaN()}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.in.Validate()
			if tc.valid && err != nil {
				t.Errorf("Validate() = %v, expected nil", err)
			}
			if !tc.valid && !errors.Is(err, ErrInvalidSample) {
				t.Errorf("Validate() = %v, expected ErrInvalidSample", err)
			}
		})
	}
}

func TestFlagsBothEyesOpen(t *testing.T) {
	if !(Flags{LeftEyeOpen: true, RightEyeOpen: true}).BothEyesOpen() {
		t.Error("both open should report true")
	}
	if (Flags{LeftEyeOpen: true}).BothEyesOpen() {
		t.Error("one closed eye should report false")
	}
}

func TestFlagsString(t *testing.T) {
	f := Flags{Smile: true, LeftEyeOpen: true}
	if got := f.String(); got != "smile eyes:o-" {
		t.Errorf("String() = %q, expected %q", got, "smile eyes:o-")
	}
	if got := (Flags{}).String(); got != "plain eyes:--" {
		t.Errorf("String() = %q, expected %q", got, "plain eyes:--")
	}
}
