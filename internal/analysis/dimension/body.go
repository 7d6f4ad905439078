package dimension

import (
	"context"
	"strings"

	"github.com/rmaniego/hive-scrutineer/internal/lang"
	"github.com/rmaniego/hive-scrutineer/internal/models"
)

// Body scores body substance from normalized text. Length is a hard gate
// (under 400 estimated-English words scores 0) and English density is the
// multiplier: score = (over400 + over800) * density / 2.
func Body(ctx context.Context, normalized string, detector lang.Detector, verbose bool) models.BodyResult {
	words := WordCount(normalized)

	var score, english float64
	var over400, over800 bool
	if words > 0 {
		confidence := lang.EnglishConfidence(ctx, detector, normalized)
		english = confidence * float64(words)
		over400 = english > 400
		over800 = english > 800

		gates := 0
		if over400 {
			gates++
		}
		if over800 {
			gates++
		}
		score = float64(gates) * (english / float64(words)) / 2
	}

	result := models.BodyResult{Score: score}
	if verbose {
		result.Detail = &models.BodyDetail{
			Words:   words,
			English: english,
			Over400: over400,
			Over800: over800,
		}
	}
	return result
}

// WordCount counts space-separated tokens in normalized text.
func WordCount(normalized string) int {
	if normalized == "" {
		return 0
	}
	return len(strings.Split(normalized, " "))
}
