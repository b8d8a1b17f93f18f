// Package nouns normalizes raw Wikidata noun query results into the
// wordform-keyed dataset shape consumed by the exporters.
package nouns

// RawNoun is one row from a Wikidata noun query. Fields are pointers
// because the query omits keys it has no binding for, and the merge
// rules branch on key presence, not on emptiness.
type RawNoun struct {
	Singular *string `json:"singular,omitempty"`
	Plural   *string `json:"plural,omitempty"`
	Gender   *string `json:"gender,omitempty"`
}

// IsPlural is the sentinel stored in Entry.Plural when the entry itself
// is a plural-only form with no distinct plural of its own.
const IsPlural = "isPlural"

// Entry is the normalized record for one wordform.
type Entry struct {
	// Plural is the plural spelling of this wordform, or IsPlural when
	// the wordform is itself a plural, or empty when unknown.
	Plural string `json:"plural"`
	// Form holds the grammatical annotations: "M", "F", "PL", "", or a
	// slash-joined combination like "F/M".
	Form string `json:"form"`
}
