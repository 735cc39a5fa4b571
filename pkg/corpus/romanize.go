package corpus

import "strings"

// Revised-Romanization jamo tables for composed Hangul syllables
// (U+AC00..U+D7A3).
const (
	hangulBase = 0xAC00
	hangulLast = 0xD7A3
)

var choRoma = []string{
	"g", "kk", "n", "d", "tt", "r", "m", "b", "pp", "s", "ss", "",
	"j", "jj", "ch", "k", "t", "p", "h",
}

var jungRoma = []string{
	"a", "ae", "ya", "yae", "eo", "e", "yeo", "ye", "o", "wa", "wae", "oe",
	"yo", "u", "wo", "we", "wi", "yu", "eu", "ui", "i",
}

var jongRoma = []string{
	"", "k", "k", "ks", "n", "nj", "nh", "t", "l", "lk", "lm", "lp", "lt",
	"lp", "lh", "m", "p", "ps", "t", "t", "ng", "t", "t", "k", "t", "p", "t", "h",
}

// RomanizeSyllable converts a single composed Hangul syllable to Latin
// letters. Non-Hangul runes pass through unchanged.
func RomanizeSyllable(r rune) string {
	if r < hangulBase || r > hangulLast {
		return string(r)
	}
	index := int(r - hangulBase)
	cho := index / 588
	jung := (index % 588) / 28
	jong := index % 28
	return choRoma[cho] + jungRoma[jung] + jongRoma[jong]
}

// RomanizeText romanizes a Hangul string, capitalizing the first letter.
func RomanizeText(text string) string {
	var b strings.Builder
	for _, r := range text {
		b.WriteString(RomanizeSyllable(r))
	}
	out := b.String()
	if out == "" {
		return out
	}
	return strings.ToUpper(out[:1]) + out[1:]
}
