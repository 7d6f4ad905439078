package text

import "github.com/rivo/uniseg"

// Emojis returns every emoji grapheme cluster in s, in order of
// appearance. Repeated emojis are returned once per occurrence so callers
// can count density.
func Emojis(s string) []string {
	var ret []string
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		// check if this grapheme cluster starts with an emoji rune
		firstRune := gr.Runes()[0]
		if (firstRune >= 0x1F000 && firstRune <= 0x1FFFF) ||
			(firstRune >= 0x2600 && firstRune <= 0x27BF) ||
			(firstRune >= 0x2B00 && firstRune <= 0x2BFF) {
			ret = append(ret, gr.Str())
		}
	}
	return ret
}
