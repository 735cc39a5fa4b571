package namegen

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"naeilum-be/internal/apperr"
)

// MaxSeedLength bounds the raw input accepted by Normalize.
const MaxSeedLength = 100

// NormalizedSeed carries the canonical derivation key for a user-supplied
// name plus a display-safe echo of what was typed. The key is only ever used
// to derive recommendations within one session.
type NormalizedSeed struct {
	Key     string
	Display string
}

// Normalize trims and canonicalizes a raw name so that "Wilson Smith",
// "wilson smith" and "WILSON  SMITH" all derive the same key. Diacritics are
// decomposed and stripped, and everything outside [a-z0-9] is dropped.
func Normalize(raw string) (NormalizedSeed, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || len([]rune(trimmed)) > MaxSeedLength {
		return NormalizedSeed{}, apperr.ErrInvalidSeed
	}

	// The transform chain keeps internal buffers, so build it per call.
	stripMarks := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(stripMarks, trimmed)
	if err != nil {
		folded = trimmed
	}

	var b strings.Builder
	for _, r := range strings.ToLower(folded) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}

	return NormalizedSeed{Key: b.String(), Display: trimmed}, nil
}
