package text

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected string
	}{
		{
			name:     "plain prose",
			body:     "Plain text.\nSecond line.",
			expected: "plain text second line",
		},
		{
			name:     "image and emphasis markup",
			body:     "![photo](https://files/img.png)\n**Bold** start and *emphasis* here",
			expected: "bold start and emphasis here",
		},
		{
			name:     "headers blockquotes and rules",
			body:     "## My Header\n> quoted words\n---\nEnd.",
			expected: "my header quoted words end",
		},
		{
			name:     "links code and numbers",
			body:     "[link text](https://example.com) and `code` plus 42 numbers",
			expected: "link text and plus numbers",
		},
		{
			name:     "image-only body has no prose",
			body:     "![a](https://files/a.png)",
			expected: "",
		},
		{
			name:     "empty body",
			body:     "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Normalize(tt.body)
			if result != tt.expected {
				t.Errorf("Normalize(%q) = %q, expected %q", tt.body, result, tt.expected)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	body := "## Header\n**Bold** text with [a link](https://x.y) and 3 numbers."
	once := Normalize(body)
	twice := Normalize(once)
	if once != twice {
		t.Errorf("Normalize is not idempotent: %q != %q", once, twice)
	}
}

func TestCleanTitle(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		expected string
	}{
		{
			name:     "decorations stripped",
			title:    "José's Guide — Top #1 Moments, $3.50 Deals!",
			expected: "Guide Top Moments, Deals",
		},
		{
			name:     "plain title untouched",
			title:    "A Quiet Walk Through the Forest",
			expected: "A Quiet Walk Through the Forest",
		},
		{
			name:     "empty title",
			title:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CleanTitle(tt.title)
			if result != tt.expected {
				t.Errorf("CleanTitle(%q) = %q, expected %q", tt.title, result, tt.expected)
			}
		})
	}
}

func TestUppercaseRatio(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
	}{
		{"ABCd", 0.75},
		{"abc", 0},
		{"", 0},
	}

	for _, tt := range tests {
		result := UppercaseRatio(tt.input)
		if result != tt.expected {
			t.Errorf("UppercaseRatio(%q) = %v, expected %v", tt.input, result, tt.expected)
		}
	}
}

func TestCountMentions(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected int
	}{
		{
			name:     "two mentions",
			body:     "thanks to @alice and @bob-dev today",
			expected: 2,
		},
		{
			name:     "url handle is not a mention",
			body:     "see https://hive.blog/@alice for details",
			expected: 0,
		},
		{
			name:     "handle too short",
			body:     "ping @ab please",
			expected: 0,
		},
		{
			name:     "no mentions",
			body:     "nothing to see here",
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CountMentions(tt.body)
			if result != tt.expected {
				t.Errorf("CountMentions(%q) = %d, expected %d", tt.body, result, tt.expected)
			}
		})
	}
}

func TestCountImages(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		count     int
		sequences int
	}{
		{
			name:  "single image",
			body:  "text ![a](https://x/a.png) more",
			count: 1,
		},
		{
			name:      "back to back pair",
			body:      "![a](https://x/a.png) ![b](https://x/b.png)",
			count:     2,
			sequences: 1,
		},
		{
			name: "no images",
			body: "no images at all",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			count, sequences := CountImages(tt.body)
			if count != tt.count || sequences != tt.sequences {
				t.Errorf("CountImages(%q) = (%d, %d), expected (%d, %d)",
					tt.body, count, sequences, tt.count, tt.sequences)
			}
		})
	}
}

func TestRemoveAccents(t *testing.T) {
	result := RemoveAccents("Café São Paulo")
	if result != "Cafe Sao Paulo" {
		t.Errorf("RemoveAccents = %q, expected %q", result, "Cafe Sao Paulo")
	}
}
