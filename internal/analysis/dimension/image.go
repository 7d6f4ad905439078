package dimension

import (
	"math"

	"github.com/rmaniego/hive-scrutineer/internal/models"
	"github.com/rmaniego/hive-scrutineer/internal/text"
)

// Images scores the image-to-text ratio of a raw body. Divisor candidates
// 1..3 model "one image per N*133 words"; the best candidate wins. A body
// with no images scores 0, and back-to-back image sequences drag the score
// toward 1/sequences to penalize image dumps.
func Images(body string, wordCount int, verbose bool) models.ImageResult {
	count, sequences := text.CountImages(body)

	var score float64
	if count > 0 {
		for divisor := 1; divisor <= 3; divisor++ {
			ideal := 400.0 / float64(divisor)
			deviation := math.Abs(float64(wordCount)/float64(count) - ideal)
			if deviation <= ideal {
				if candidate := 1 - deviation/ideal; candidate > score {
					score = candidate
				}
			}
		}
		if sequences > 0 {
			score = (score + 1/float64(sequences)) / 2
		}
	}

	result := models.ImageResult{Score: score}
	if verbose {
		result.Detail = &models.ImageDetail{
			Count:     count,
			Sequences: sequences,
		}
	}
	return result
}
