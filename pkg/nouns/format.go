package nouns

import "sort"

// Format consolidates a raw noun record sequence into a wordform-keyed
// map. Duplicate and partial records (singular-only, plural-only,
// gender-only repeats) are merged: the first record for a singular
// creates its entry and registers its plural, later records for the
// same singular can only contribute additional gender annotations.
//
// The upstream query emits two degenerate shapes that need care: a
// plural spelled identically to its singular (the entry gets a "/PL"
// annotation instead of a second key), and repeated singular rows with
// conflicting genders (both annotations are kept).
//
// The pass never deletes an entry, so every singular and plural value
// seen in the input ends up as exactly one key. A second pass runs
// OrderAnnotations over every form.
func Format(records []RawNoun) map[string]*Entry {
	formatted := make(map[string]*Entry)

	for _, rec := range records {
		switch {
		case rec.Singular != nil:
			sing := *rec.Singular
			if entry, ok := formatted[sing]; !ok {
				entry = &Entry{}
				formatted[sing] = entry

				if rec.Gender != nil {
					entry.Form = MapGender(*rec.Gender)
				}
				if rec.Plural != nil {
					pl := *rec.Plural
					entry.Plural = pl

					if _, ok := formatted[pl]; !ok {
						formatted[pl] = &Entry{Plural: IsPlural, Form: "PL"}
					} else {
						// Plural is spelled like the singular.
						entry.Form += "/PL"
					}
				}
			} else if rec.Gender != nil && entry.Form != *rec.Gender {
				entry.Form += "/" + MapGender(*rec.Gender)
			}

		case rec.Plural != nil:
			// Plural-only noun.
			pl := *rec.Plural
			if _, ok := formatted[pl]; !ok {
				formatted[pl] = &Entry{Plural: IsPlural, Form: "PL"}
			}

		default:
			// Neither singular nor plural: nothing to merge.
		}
	}

	for _, entry := range formatted {
		entry.Form = OrderAnnotations(entry.Form)
	}

	return formatted
}

// SortedKeys returns the wordforms of a formatted map in lexicographic
// order, the order every serialization of the dataset uses.
func SortedKeys(formatted map[string]*Entry) []string {
	keys := make([]string, 0, len(formatted))
	for k := range formatted {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
