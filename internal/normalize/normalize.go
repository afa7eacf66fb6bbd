// Package normalize collapses the many surface forms of an ingredient name
// (case, punctuation, plural, alias, typo) onto a single canonical key used
// as the ingredient library's lookup key, and resolves free-text quantity
// units to grams.
package normalize

import (
	"strings"
)

var pluralSuffixes = []string{"ies", "es", "s"}

// Tables holds the closed alias and unit lookup tables as loaded once at
// startup (spec.md §9: "Large closed tables ... keep as configuration
// data, not code"). Both maps are treated as immutable after construction.
type Tables struct {
	// Aliases maps a normalized surface form to its canonical normalized form,
	// e.g. "idly" -> "idli".
	Aliases map[string]string
	// UnitGrams maps a lowercased unit name to the number of grams one unit
	// resolves to, e.g. "cup" -> 240.
	UnitGrams map[string]float64
}

// NewTables constructs a Tables from already-loaded maps (see
// internal/infrastructure/config for the viper-backed loader).
func NewTables(aliases map[string]string, unitGrams map[string]float64) Tables {
	return Tables{Aliases: aliases, UnitGrams: unitGrams}
}

// Normalize runs the deterministic pipeline from spec.md §4.5:
//  1. lowercase
//  2. replace non-alphanumeric runs with a single space
//  3. collapse whitespace, trim
//  4. apply the alias table
//  5. if no alias hit but the result ends in a known plural suffix, retry
//     the alias table on the singular stem
//
// Normalize is idempotent: Normalize(Normalize(x)) == Normalize(x).
func (t Tables) Normalize(s string) string {
	lowered := strings.ToLower(s)

	var b strings.Builder
	b.Grow(len(lowered))
	lastWasSpace := false
	for _, r := range lowered {
		isAlnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if isAlnum {
			b.WriteRune(r)
			lastWasSpace = false
		} else if !lastWasSpace {
			b.WriteRune(' ')
			lastWasSpace = true
		}
	}
	collapsed := strings.TrimSpace(b.String())
	collapsed = strings.Join(strings.Fields(collapsed), " ")

	if canonical, ok := t.Aliases[collapsed]; ok {
		return canonical
	}

	if stem, ok := stripPluralSuffix(collapsed); ok {
		if canonical, ok := t.Aliases[strings.TrimSpace(stem)]; ok {
			return canonical
		}
	}

	return collapsed
}

// stripPluralSuffix removes a trailing plural suffix ("ies", "es", "s")
// when the resulting stem is at least 3 characters long.
func stripPluralSuffix(s string) (string, bool) {
	for _, suffix := range pluralSuffixes {
		if strings.HasSuffix(s, suffix) {
			stem := strings.TrimSuffix(s, suffix)
			if len(stem) >= 3 {
				return stem, true
			}
		}
	}
	return "", false
}

// ResolveGrams converts a quantity in the given free-text unit to grams,
// using the closed unit table from spec.md §4.6. Unknown units return
// ok=false so the caller can reject the observation rather than learn from it.
func (t Tables) ResolveGrams(quantity float64, unit string) (grams float64, ok bool) {
	perUnit, known := t.UnitGrams[strings.ToLower(strings.TrimSpace(unit))]
	if !known {
		return 0, false
	}
	return quantity * perUnit, true
}

// DefaultUnitGrams returns the documented heuristic unit table from spec.md §4.6.
func DefaultUnitGrams() map[string]float64 {
	return map[string]float64{
		"g":       1,
		"gram":    1,
		"grams":   1,
		"kg":      1000,
		"oz":      28.3495,
		"lb":      453.592,
		"ml":      1, // water-density heuristic
		"l":       1000,
		"cup":     240,
		"tbsp":    15,
		"tsp":     5,
		"piece":   50,  // documented heuristic
		"serving": 100, // documented heuristic
	}
}

// DefaultAliases returns a small seed alias table; production deployments
// load the full table from configs/ingredient_aliases.yaml via viper.
func DefaultAliases() map[string]string {
	return map[string]string{
		"idly":    "idli",
		"curd":    "yoghurt",
		"brinjal": "eggplant",
	}
}
