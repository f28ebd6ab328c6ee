package core

import "testing"

func TestActionString(t *testing.T) {
	tests := []struct {
		action   Action
		expected string
	}{
		{ActionNone, "None"},
		{ActionRotate, "Rotate"},
		{ActionLeft, "Left"},
		{ActionRight, "Right"},
		{ActionQuit, "Quit"},
		{Action(99), "Unknown"},
	}

	for _, tc := range tests {
		if got := tc.action.String(); got != tc.expected {
			t.Errorf("Action(%d).String() = %q, expected %q", int(tc.action), got, tc.expected)
		}
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		name    string
		want    Color
		wantErr bool
	}{
		{"", ColorDefault, false},
		{"default", ColorDefault, false},
		{"cyan", ColorCyan, false},
		{"bright_red", ColorBrightRed, false},
		{"gray", ColorGray, false},
		{"purple", ColorDefault, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseColor(tc.name)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseColor(%q) error = %v, wantErr %v", tc.name, err, tc.wantErr)
			}
			if got != tc.want {
				t.Errorf("ParseColor(%q) = %v, want %v", tc.name, got, tc.want)
			}
		})
	}
}

func TestColorStringRoundTrip(t *testing.T) {
	for c := ColorDefault; c <= ColorGray; c++ {
		parsed, err := ParseColor(c.String())
		if err != nil {
			t.Fatalf("ParseColor(%q) failed: %v", c.String(), err)
		}
		if parsed != c {
			t.Errorf("ParseColor(%q) = %v, want %v", c.String(), parsed, c)
		}
	}
}
