package nouns

// Wikidata entity IDs for grammatical genders.
const (
	qMasculine = "Q499327"
	qFeminine  = "Q1775415"
)

// MapGender maps a raw Wikidata gender value, either a label or an
// entity ID, to its one-letter annotation. Unknown genders map to the
// empty string; some nouns carry genders that are not valid as an
// attribute and those contribute no annotation.
func MapGender(raw string) string {
	switch raw {
	case "masculine", qMasculine:
		return "M"
	case "feminine", qFeminine:
		return "F"
	default:
		return ""
	}
}
