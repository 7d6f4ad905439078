package text

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	reDash        = regexp.MustCompile(`(-|\x{2013}|\x{2014})`)
	reRank        = regexp.MustCompile(`#\d+`)
	reDollars     = regexp.MustCompile(`\$[\d,.]+`)
	rePossessive  = regexp.MustCompile(`\b\w+'s\b`)
	reMultiSpace  = regexp.MustCompile(`\s{2,}`)
	reUppercase   = regexp.MustCompile(`[A-Z]`)
	reCleanTitle  = regexp.MustCompile(`[^\w',\- ]+`)
	reDelimiters  = regexp.MustCompile(`[\n.]`)
	reImage       = regexp.MustCompile(`!\[[^\]]*\]\([^)]+\)`)
	reImagePair   = regexp.MustCompile(`!\[[^\]]*\]\([^)]+\)\s*!\[[^\]]*\]\([^)]+\)`)
	reServiceMark = regexp.MustCompile(`\[//\]:#[ ]+\(![\w .]+\)`)
	reAsterisks   = regexp.MustCompile(`\*+`)
	reTildes      = regexp.MustCompile(`~+`)
	reUnderscores = regexp.MustCompile(`_+`)
	reHeaders     = regexp.MustCompile(`##+`)
	reCodeMarks   = regexp.MustCompile("`+\\w*[ ]*")
	reTableSep    = regexp.MustCompile(`\|[-:]+\|[-:]+\|`)
	rePipes       = regexp.MustCompile(`[ :]*\|[ :]*`)
	reHTMLTags    = regexp.MustCompile(`</?[a-zA-Z]+[1-6]?[^>]+>`)
	reLinkTarget  = regexp.MustCompile(`\]\([^)]+\)`)
	reBlockquotes = regexp.MustCompile(`>[ ]?`)
	reRules       = regexp.MustCompile(`---+`)
	reBrackets    = regexp.MustCompile(`[([{}\])]`)
	reMentions    = regexp.MustCompile(`[^\w/]@[\w\-.]{3,16}[^\w/]`)
	reNumbers     = regexp.MustCompile(`\d+\.?\d*`)
	rePunctuation = regexp.MustCompile(`[.,!?]`)
)

// Normalize strips markup from a raw post body and returns a canonical
// lowercase token stream for the analyzers. The substitution order is
// significant: later patterns assume earlier ones already collapsed, so
// image markup goes first and whitespace collapsing goes last. An empty
// result means the body had no scorable prose at all.
func Normalize(body string) string {
	cleaned := reImage.ReplaceAllString(body, "")
	cleaned = strings.ToLower(cleaned)
	cleaned = reDelimiters.ReplaceAllString(cleaned, " ")

	cleaned = reServiceMark.ReplaceAllString(cleaned, "")
	cleaned = reAsterisks.ReplaceAllString(cleaned, "")
	cleaned = reTildes.ReplaceAllString(cleaned, "")
	cleaned = reUnderscores.ReplaceAllString(cleaned, "")
	cleaned = reHeaders.ReplaceAllString(cleaned, "")
	cleaned = reCodeMarks.ReplaceAllString(cleaned, "")
	cleaned = reTableSep.ReplaceAllString(cleaned, "")
	cleaned = rePipes.ReplaceAllString(cleaned, "")
	cleaned = reHTMLTags.ReplaceAllString(cleaned, "")
	cleaned = reLinkTarget.ReplaceAllString(cleaned, "")
	cleaned = reBlockquotes.ReplaceAllString(cleaned, "")
	cleaned = reRules.ReplaceAllString(cleaned, "")
	cleaned = reBrackets.ReplaceAllString(cleaned, "")
	cleaned = reMentions.ReplaceAllString(cleaned, " ")
	cleaned = reDash.ReplaceAllString(cleaned, " ")
	cleaned = rePunctuation.ReplaceAllString(cleaned, " ")
	cleaned = reNumbers.ReplaceAllString(cleaned, " ")
	cleaned = reMultiSpace.ReplaceAllString(cleaned, " ")

	return strings.TrimSpace(cleaned)
}

// CleanTitle strips decorative punctuation from a post title: dashes, rank
// markers ("#1"), dollar amounts, possessive 's and anything outside word
// characters, commas and hyphens. Accents are folded first so accented
// letters survive the ASCII character class.
func CleanTitle(title string) string {
	cleaned := RemoveAccents(title)
	cleaned = reDash.ReplaceAllString(cleaned, " ")
	cleaned = reRank.ReplaceAllString(cleaned, " ")
	cleaned = reDollars.ReplaceAllString(cleaned, " ")
	cleaned = rePossessive.ReplaceAllString(cleaned, "")
	cleaned = reCleanTitle.ReplaceAllString(cleaned, " ")
	cleaned = reMultiSpace.ReplaceAllString(cleaned, " ")
	return strings.TrimSpace(cleaned)
}

// UppercaseRatio returns the share of uppercase ASCII letters relative to
// the byte length of s. Returns 0 for an empty string.
func UppercaseRatio(s string) float64 {
	if len(s) == 0 {
		return 0
	}
	return float64(len(reUppercase.FindAllString(s, -1))) / float64(len(s))
}

// CountMentions counts @handle occurrences in a raw body. Handles are 3-16
// characters of letters, digits, hyphen or dot, bounded by non-word
// characters so URLs ("/@user") don't count.
func CountMentions(body string) int {
	return len(reMentions.FindAllString(body, -1))
}

// CountImages returns the number of embedded image tags in a raw body and
// the number of back-to-back image pairs (galleries/image dumps).
func CountImages(body string) (count, sequences int) {
	count = len(reImage.FindAllString(body, -1))
	sequences = len(reImagePair.FindAllString(body, -1))
	return count, sequences
}

// RemoveAccents folds accented characters to their base form.
func RemoveAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, _ := transform.String(t, s)
	return result
}
