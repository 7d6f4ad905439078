package dimension

import (
	"github.com/rmaniego/hive-scrutineer/internal/models"
)

// TagCount scores the number of declared category tags against the
// configured limit. A zero limit with any tags present is a hard fail
// rather than a zero-boundary division.
func TagCount(tags []string, limit int, verbose bool) models.TagResult {
	count := len(tags)

	var score float64
	switch {
	case limit > 0 && count > limit:
		score = float64(limit) / float64(count)
	case count <= limit:
		score = 1
	}

	result := models.TagResult{Score: score}
	if verbose {
		result.Detail = &models.TagDetail{
			Limit: limit,
			Count: count,
		}
	}
	return result
}
