package text

import "testing"

func TestEmojis(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{"no emoji", "no emoji here", 0},
		{"mixed ranges", "launch \U0001F680 day ☀", 2},
		{"repeated emoji counted per occurrence", "\U0001F600\U0001F600", 2},
		{"empty string", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Emojis(tt.input)
			if len(result) != tt.expected {
				t.Errorf("Emojis(%q) = %v, expected %d entries", tt.input, result, tt.expected)
			}
		})
	}
}
