package normalize

import (
	"math/rand"
	"testing"
)

func testTables() Tables {
	return NewTables(DefaultAliases(), DefaultUnitGrams())
}

func TestNormalize_Idempotent(t *testing.T) {
	tables := testTables()
	samples := []string{
		"Idly", "IDLY!!", "  Brinjal's  ", "Curds", "Chutneys",
		"", "   ", "a-b_c 123", "Eggplant", "curd",
	}
	for _, s := range samples {
		once := tables.Normalize(s)
		twice := tables.Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: once=%q twice=%q", s, once, twice)
		}
	}
}

func TestNormalize_IdempotenceFuzz(t *testing.T) {
	tables := testTables()
	letters := "abcdefghijklmnopqrstuvwxyzABCDEFG 0123-_'.,!"
	for i := 0; i < 300; i++ {
		n := rand.Intn(20)
		b := make([]byte, n)
		for j := range b {
			b[j] = letters[rand.Intn(len(letters))]
		}
		s := string(b)
		once := tables.Normalize(s)
		twice := tables.Normalize(once)
		if once != twice {
			t.Fatalf("Normalize not idempotent for %q: once=%q twice=%q", s, once, twice)
		}
	}
}

func TestNormalize_AliasCollapse(t *testing.T) {
	tables := testTables()
	if got := tables.Normalize("Idly"); got != "idli" {
		t.Errorf("expected alias collapse to idli, got %q", got)
	}
	if got := tables.Normalize("idli"); got != "idli" {
		t.Errorf("expected idli to normalize to itself, got %q", got)
	}
}

func TestNormalize_PluralStemsRetryAlias(t *testing.T) {
	tables := Tables{
		Aliases:   map[string]string{"tomato": "tomato"},
		UnitGrams: DefaultUnitGrams(),
	}
	if got := tables.Normalize("Tomatoes"); got != "tomato" {
		t.Errorf("expected plural stem retry to find tomato, got %q", got)
	}
}

func TestResolveGrams_KnownAndUnknownUnits(t *testing.T) {
	tables := testTables()
	grams, ok := tables.ResolveGrams(2, "cup")
	if !ok || grams != 480 {
		t.Errorf("expected 480g for 2 cups, got %v ok=%v", grams, ok)
	}
	_, ok = tables.ResolveGrams(1, "bushel")
	if ok {
		t.Error("expected unknown unit to be rejected")
	}
}

func TestFuzzyMatch_ExactShortCircuit(t *testing.T) {
	candidates := []Candidate{{Key: "a", NormalizedName: "idli"}, {Key: "b", NormalizedName: "idly"}}
	got, ok := FuzzyMatch("idli", candidates, 2)
	if !ok || got.Key != "a" {
		t.Fatalf("expected exact match on idli, got %+v ok=%v", got, ok)
	}
}

func TestFuzzyMatch_BoundedByMaxDistance(t *testing.T) {
	candidates := []Candidate{{Key: "a", NormalizedName: "chutney"}}
	if _, ok := FuzzyMatch("completelydifferentword", candidates, 2); ok {
		t.Fatal("expected no match beyond max distance")
	}
	got, ok := FuzzyMatch("chutny", candidates, 2)
	if !ok || got.Key != "a" {
		t.Fatalf("expected fuzzy match within distance 2, got %+v ok=%v", got, ok)
	}
}

func TestFuzzyMatch_NeverExceedsBoundFuzz(t *testing.T) {
	names := []string{"chutney", "idli", "eggplant", "yoghurt", "basmati rice", "paneer"}
	candidates := make([]Candidate, len(names))
	for i, n := range names {
		candidates[i] = Candidate{Key: n, NormalizedName: n}
	}
	letters := "abcdefghijklmnopqrstuvwxyz "
	for i := 0; i < 200; i++ {
		n := rand.Intn(15)
		b := make([]byte, n)
		for j := range b {
			b[j] = letters[rand.Intn(len(letters))]
		}
		query := string(b)
		got, ok := FuzzyMatch(query, candidates, 2)
		if ok && levenshtein(query, got.NormalizedName) > 2 {
			t.Fatalf("match %q -> %q exceeds max distance", query, got.NormalizedName)
		}
	}
}
