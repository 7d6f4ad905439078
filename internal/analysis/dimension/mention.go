package dimension

import (
	"github.com/rmaniego/hive-scrutineer/internal/models"
	"github.com/rmaniego/hive-scrutineer/internal/text"
)

// Mentions scores @handle density in a raw body against the configured
// limit: 1 within the limit, limit/count beyond it.
func Mentions(body string, limit int, verbose bool) models.MentionResult {
	count := text.CountMentions(body)

	score := 1.0
	if count > limit {
		if limit > 0 {
			score = float64(limit) / float64(count)
		} else {
			score = 0
		}
	}

	result := models.MentionResult{Score: score}
	if verbose {
		result.Detail = &models.MentionDetail{
			Limit: limit,
			Count: count,
		}
	}
	return result
}
