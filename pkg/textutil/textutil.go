package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// dashReplacer unifies en dash, em dash and the Unicode minus sign into the
// ASCII hyphen before the non-ASCII filter would otherwise drop them.
var dashReplacer = strings.NewReplacer(
	"–", "-", // en dash
	"—", "-", // em dash
	"−", "-", // minus sign
)

// Canonicalize normalizes text into its canonical ASCII form: diacritics
// stripped via NFKD decomposition, dash variants unified, whitespace runs
// collapsed to a single space, leading/trailing whitespace trimmed. Case is
// preserved. Canonicalize is idempotent and returns "" for empty input.
func Canonicalize(text string) string {
	if text == "" {
		return ""
	}

	text = dashReplacer.Replace(text)

	// Decompose and drop combining marks, then anything left without an
	// ASCII equivalent.
	stripper := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))
	if decomposed, _, err := transform.String(stripper, text); err == nil {
		text = decomposed
	}

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if r < unicode.MaxASCII {
			b.WriteRune(r)
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}

// Fold returns the case-folded canonical form used for deduplication and
// lookup keys.
func Fold(text string) string {
	return strings.ToLower(Canonicalize(text))
}
