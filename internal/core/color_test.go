package core

import "testing"

func TestParseColor(t *testing.T) {
	tests := []struct {
		in       string
		expected Color
		wantErr  bool
	}{
		{"white", ColorWhite, false},
		{"Bright_White", ColorBrightWhite, false},
		{"bright-green", ColorBrightGreen, false},
		{"bright green", ColorBrightGreen, false},
		{" grey ", ColorGray, false},
		{"black", ColorBlack, false},
		{"chartreuse", ColorDefault, true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseColor(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseColor(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			}
			if got != tc.expected {
				t.Errorf("ParseColor(%q) = %v, expected %v", tc.in, got, tc.expected)
			}
		})
	}
}

func TestColorStringRoundTrip(t *testing.T) {
	for c := range colorNames {
		parsed, err := ParseColor(c.String())
		if err != nil || parsed != c {
			t.Errorf("ParseColor(%q) = %v, %v", c.String(), parsed, err)
		}
	}
}
