// Package lang provides language-confidence detection for post text.
//
// The analyzers only ever read the English entry; a detector that errors
// or cannot classify a span is treated as zero confidence, never as a
// fatal condition.
package lang

import "context"

// Detector estimates per-language confidence for a span of text. Keys of
// the returned map are lowercase ISO 639-1 codes ("en", "es", ...), values
// lie in [0,1].
type Detector interface {
	Confidences(ctx context.Context, text string) (map[string]float64, error)
}

// EnglishConfidence returns the detector's English confidence for text.
// Detector failures and absent entries both map to 0.
func EnglishConfidence(ctx context.Context, d Detector, text string) float64 {
	if d == nil || text == "" {
		return 0
	}
	confidences, err := d.Confidences(ctx, text)
	if err != nil {
		return 0
	}
	return confidences["en"]
}
