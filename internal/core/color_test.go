package core

import "testing"

func TestParseColor(t *testing.T) {
	tests := []struct {
		name  string
		want  Color
		found bool
	}{
		{"", ColorDefault, true},
		{"green", ColorGreen, true},
		{" Bright_Yellow ", ColorBrightYellow, true},
		{"orange", ColorOrange, true},
		{"ultraviolet", ColorDefault, false},
	}

	for _, tc := range tests {
		got, ok := ParseColor(tc.name)
		if ok != tc.found || got != tc.want {
			t.Errorf("ParseColor(%q) = (%d, %v), expected (%d, %v)", tc.name, got, ok, tc.want, tc.found)
		}
	}
}
