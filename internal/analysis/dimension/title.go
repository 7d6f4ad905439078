// Package dimension implements the independent per-dimension analyzers.
// Each analyzer takes normalized inputs plus configuration thresholds and
// returns a score in [0,1], with diagnostic detail attached only when
// verbose is set.
package dimension

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/rmaniego/hive-scrutineer/internal/lang"
	"github.com/rmaniego/hive-scrutineer/internal/models"
	"github.com/rmaniego/hive-scrutineer/internal/text"
)

const (
	titleMinBytes = 20
	titleMaxBytes = 80
)

// Title scores a raw post title. Titles outside [20,80] bytes after
// decoration stripping score 0 regardless of content, emoji-laden titles
// have zero readability, and mostly-uppercase titles take a 0.5 penalty.
// A keyword hit (any extracted bigram appearing in the lowercased title)
// adds a 0.5 bonus before the /10 normalization.
func Title(ctx context.Context, rawTitle string, keywords map[string]int, detector lang.Detector, verbose bool) models.TitleResult {
	cleaned := text.CleanTitle(rawTitle)
	length := len(cleaned)

	belowMin := length < titleMinBytes
	aboveMax := length > titleMaxBytes
	emojis := text.Emojis(rawTitle)

	var score, uppercase, readability, keywordHit float64
	if length > 0 && len(emojis) == 0 {
		uppercase = text.UppercaseRatio(cleaned)
		adjust := 1.0
		if uppercase > 0.5 {
			adjust = 0.5
		}

		confidence := lang.EnglishConfidence(ctx, detector, cleaned)
		englishChars := confidence * float64(utf8.RuneCountInString(cleaned))
		readability = englishChars / float64(utf8.RuneCountInString(rawTitle)) * adjust

		lowered := strings.ToLower(rawTitle)
		for keyword := range keywords {
			if strings.Contains(lowered, keyword) {
				keywordHit = 0.5
				break
			}
		}

		if !belowMin && !aboveMax {
			score = (readability*9.5 + keywordHit) / 10
		}
	}

	result := models.TitleResult{Score: score}
	if verbose {
		result.Detail = &models.TitleDetail{
			Title:       rawTitle,
			Cleaned:     cleaned,
			BelowMin:    belowMin,
			AboveMax:    aboveMax,
			Uppercase:   uppercase,
			Readability: readability,
			KeywordHit:  keywordHit,
			Keywords:    keywords,
			Emojis:      emojis,
		}
	}
	return result
}
