// Package prediction implements the read-only path over the ingredient
// library: turn an ingredient-name query into a scaled nutrition prediction,
// or a ranked autocomplete list (spec.md §4.7).
package prediction

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/kjanat/poo-tracker/backend/internal/domain/ingredientlibrary"
	"github.com/kjanat/poo-tracker/backend/internal/normalize"
)

// ErrNotFound is returned when neither an exact nor a fuzzy match exists.
var ErrNotFound = errors.New("no matching ingredient in library")

const defaultMaxEditDistance = 2

// Result is a scaled nutrition prediction for a requested quantity.
type Result struct {
	Entry      *ingredientlibrary.Entry
	Quantity   float64
	Unit       string
	Calories   float64
	ProteinG   float64
	FatG       float64
	CarbsG     float64
	Confidence float64
	SampleSize int
	Matched    string // "exact" or "fuzzy"
}

// Service is Prediction & Suggestion.
type Service struct {
	repo            ingredientlibrary.Repository
	tables          normalize.Tables
	maxEditDistance int
}

// NewService constructs the Prediction & Suggestion service.
func NewService(repo ingredientlibrary.Repository, tables normalize.Tables, maxEditDistance int) *Service {
	if maxEditDistance <= 0 {
		maxEditDistance = defaultMaxEditDistance
	}
	return &Service{repo: repo, tables: tables, maxEditDistance: maxEditDistance}
}

// Predict resolves query against the owner's library (exact, then fuzzy) and
// scales the result to the requested quantity/unit. When quantity/unit are
// left empty, the entry's own typical_quantity/typical_unit are used.
func (s *Service) Predict(ctx context.Context, ownerID, query string, quantity float64, unit string) (*Result, error) {
	normalized := s.tables.Normalize(query)

	entry, matched, err := s.lookup(ctx, ownerID, normalized)
	if err != nil {
		return nil, err
	}

	if quantity <= 0 {
		quantity = entry.TypicalQuantity
		unit = entry.TypicalUnit
	}

	grams, ok := s.tables.ResolveGrams(quantity, unit)
	if !ok {
		grams, ok = s.tables.ResolveGrams(entry.TypicalQuantity, entry.TypicalUnit)
		if !ok {
			grams = 100
		}
		quantity = entry.TypicalQuantity
		unit = entry.TypicalUnit
	}
	scale := grams / 100

	return &Result{
		Entry:      entry,
		Quantity:   quantity,
		Unit:       unit,
		Calories:   entry.AvgCaloriesPer100g * scale,
		ProteinG:   entry.AvgProteinPer100g * scale,
		FatG:       entry.AvgFatPer100g * scale,
		CarbsG:     entry.AvgCarbsPer100g * scale,
		Confidence: entry.Confidence,
		SampleSize: entry.SampleSize,
		Matched:    matched,
	}, nil
}

func (s *Service) lookup(ctx context.Context, ownerID, normalizedQuery string) (*ingredientlibrary.Entry, string, error) {
	entry, err := s.repo.GetByNormalizedName(ctx, ownerID, normalizedQuery)
	if err == nil {
		return entry, "exact", nil
	}
	if !errors.Is(err, ingredientlibrary.ErrNotFound) {
		return nil, "", fmt.Errorf("failed to look up library entry: %w", err)
	}

	candidates, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to list library for fuzzy match: %w", err)
	}
	fuzzyCandidates := make([]normalize.Candidate, 0, len(candidates))
	byNormalizedName := make(map[string]*ingredientlibrary.Entry, len(candidates))
	for _, c := range candidates {
		fuzzyCandidates = append(fuzzyCandidates, normalize.Candidate{Key: c.ID, NormalizedName: c.NormalizedName})
		byNormalizedName[c.NormalizedName] = c
	}

	match, found := normalize.FuzzyMatch(normalizedQuery, fuzzyCandidates, s.maxEditDistance)
	if !found {
		return nil, "", ErrNotFound
	}
	return byNormalizedName[match.NormalizedName], "fuzzy", nil
}

// Autocomplete returns up to limit entries whose display name contains query
// as a case-insensitive substring, ranked by confidence descending.
func (s *Service) Autocomplete(ctx context.Context, ownerID, query string, limit int) ([]*ingredientlibrary.Entry, error) {
	if limit <= 0 {
		limit = 5
	}
	entries, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list library for autocomplete: %w", err)
	}

	lowerQuery := strings.ToLower(query)
	var matches []*ingredientlibrary.Entry
	for _, e := range entries {
		if strings.Contains(strings.ToLower(e.DisplayName), lowerQuery) {
			matches = append(matches, e)
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Confidence > matches[j].Confidence
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches, nil
}
