package lang

import (
	"context"
	"strings"

	"github.com/pemistahl/lingua-go"
)

// LinguaDetector classifies text locally with the lingua n-gram models.
// Building the detector loads the models once; reuse a single instance.
type LinguaDetector struct {
	detector lingua.LanguageDetector
}

// NewLinguaDetector builds a detector over all supported languages.
func NewLinguaDetector() *LinguaDetector {
	return &LinguaDetector{
		detector: lingua.NewLanguageDetectorBuilder().
			FromAllLanguages().
			Build(),
	}
}

// Confidences returns per-language confidence values for text.
func (d *LinguaDetector) Confidences(_ context.Context, text string) (map[string]float64, error) {
	values := d.detector.ComputeLanguageConfidenceValues(text)
	confidences := make(map[string]float64, len(values))
	for _, v := range values {
		code := strings.ToLower(v.Language().IsoCode639_1().String())
		confidences[code] = v.Value()
	}
	return confidences, nil
}
