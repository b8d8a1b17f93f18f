package dataset

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalizer transforms a wordform before lookup.
type Normalizer func(string) string

var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizeLowercaseASCII lowercases and strips accents (Châteaux -> chateaux).
func NormalizeLowercaseASCII(s string) string {
	result, _, _ := transform.String(stripAccents, strings.ToLower(s))
	return result
}

// NormalizeLowercaseUTF8 lowercases but preserves accents.
func NormalizeLowercaseUTF8(s string) string {
	return strings.ToLower(s)
}

// NormalizeNone returns the wordform unchanged. Wordform keys are
// case-sensitive, so this is the default for exported datasets.
func NormalizeNone(s string) string {
	return s
}

// GetNormalizer returns the normalizer for the given mode.
// Default is none.
func GetNormalizer(mode string) Normalizer {
	switch mode {
	case "lowercase_ascii":
		return NormalizeLowercaseASCII
	case "lowercase_utf8":
		return NormalizeLowercaseUTF8
	default:
		return NormalizeNone
	}
}
