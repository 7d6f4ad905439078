package text

import (
	"regexp"
	"sort"
	"strings"
)

// DefaultMinOccurrence is the frequency floor below which extracted
// keywords and bigrams are discarded.
const DefaultMinOccurrence = 4

var (
	reToken       = regexp.MustCompile(`\w+`)
	reBigramToken = regexp.MustCompile(`\w\S+`)
)

// Keywords counts single-word keywords in normalized text. Tokens on the
// stop list are dropped and only entries occurring at least minOccurrence
// times are kept.
func Keywords(normalized string, minOccurrence int) map[string]int {
	if minOccurrence <= 0 {
		minOccurrence = DefaultMinOccurrence
	}

	counts := make(map[string]int)
	for _, token := range reToken.FindAllString(strings.ToLower(normalized), -1) {
		if IsStopword(token) {
			continue
		}
		counts[token]++
	}

	for token, count := range counts {
		if count < minOccurrence {
			delete(counts, token)
		}
	}
	return counts
}

// Bigrams counts adjacent two-word sequences in normalized text. Bigram
// source tokens are at least two characters long; stop words are removed
// before the window slides, so a bigram may span a dropped stop word.
func Bigrams(normalized string, minOccurrence int) map[string]int {
	if minOccurrence <= 0 {
		minOccurrence = DefaultMinOccurrence
	}

	tokens := reBigramToken.FindAllString(strings.ToLower(normalized), -1)
	filtered := tokens[:0]
	for _, token := range tokens {
		if !IsStopword(token) {
			filtered = append(filtered, token)
		}
	}

	counts := make(map[string]int)
	for i := 0; i+1 < len(filtered); i++ {
		counts[filtered[i]+" "+filtered[i+1]]++
	}

	for bigram, count := range counts {
		if count < minOccurrence {
			delete(counts, bigram)
		}
	}
	return counts
}

// TopBigrams ranks a bigram count map descending by frequency, breaking
// ties by reverse-lexicographic bigram string, and returns at most n
// entries.
func TopBigrams(bigrams map[string]int, n int) []string {
	ranked := make([]string, 0, len(bigrams))
	for bigram := range bigrams {
		ranked = append(ranked, bigram)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if bigrams[ranked[i]] != bigrams[ranked[j]] {
			return bigrams[ranked[i]] > bigrams[ranked[j]]
		}
		return ranked[i] > ranked[j]
	})
	if n > 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
