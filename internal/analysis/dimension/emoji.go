package dimension

import (
	"github.com/rmaniego/hive-scrutineer/internal/models"
	"github.com/rmaniego/hive-scrutineer/internal/text"
)

// Emojis scores emoji density in a raw body. Within the limit scores 1;
// over the limit scores limit/count, except that a zero limit with any
// emoji present is a hard fail.
func Emojis(body string, limit int, verbose bool) models.EmojiResult {
	emojis := text.Emojis(body)
	count := len(emojis)

	score := 1.0
	if count > limit {
		if limit > 0 {
			score = float64(limit) / float64(count)
		} else {
			score = 0
		}
	}

	result := models.EmojiResult{Score: score}
	if verbose {
		result.Detail = &models.EmojiDetail{
			Limit:  limit,
			Count:  count,
			Emojis: emojis,
		}
	}
	return result
}
