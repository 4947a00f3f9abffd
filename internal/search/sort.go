package search

import (
	"sort"
	"strings"

	"github.com/duskwarden/hemosearch/internal/cardmodel"
	"github.com/duskwarden/hemosearch/internal/numbers"
	"github.com/duskwarden/hemosearch/internal/query"
)

// applySort orders matched in place per q.Sort. It is only
// ever called on a top-level query's results: subqueries always carry
// SortNone and so hit the first branch as a no-op.
func applySort(q *query.Query, matched []cardmodel.Card) {
	switch q.Sort.Kind {
	case query.SortNone:
		return
	case query.SortFuzzy:
		if q.Name != "" {
			sortByFuzzy(matched, q.Name)
		} else {
			sortByName(matched)
		}
	case query.SortAlphabet:
		sortByText(matched, q.Sort.TextField, q.Sort.Order)
	case query.SortNumeric:
		sortByNumber(matched, q.Sort.NumberField, q.Sort.Order)
	}
}

// sortByFuzzy orders by weighted similarity to name descending, ties
// broken by name ascending.
func sortByFuzzy(cards []cardmodel.Card, name string) {
	scores := make([]float64, len(cards))
	for i := range cards {
		scores[i] = WeightedSimilarity(&cards[i], name)
	}
	sort.SliceStable(cards, func(i, j int) bool {
		if scores[i] != scores[j] {
			return scores[i] > scores[j]
		}
		return strings.ToLower(cards[i].Name) < strings.ToLower(cards[j].Name)
	})
}

func sortByName(cards []cardmodel.Card) {
	sort.SliceStable(cards, func(i, j int) bool {
		return strings.ToLower(cards[i].Name) < strings.ToLower(cards[j].Name)
	})
}

func sortByText(cards []cardmodel.Card, field cardmodel.Text, order query.Ordering) {
	sort.SliceStable(cards, func(i, j int) bool {
		a, aok := cards[i].GetText(field)
		b, bok := cards[j].GetText(field)
		if order == query.Descending {
			return textLess(b, bok, a, aok)
		}
		return textLess(a, aok, b, bok)
	})
}

// textLess treats an absent field as sorting before any present one,
// mirroring OrdLess's absent-sorts-less rule for the text-field case.
func textLess(a string, aok bool, b string, bok bool) bool {
	if !aok {
		return bok
	}
	if !bok {
		return false
	}
	return strings.ToLower(a) < strings.ToLower(b)
}

func sortByNumber(cards []cardmodel.Card, field cardmodel.Number, order query.Ordering) {
	sort.SliceStable(cards, func(i, j int) bool {
		a, aok := cards[i].GetNumber(field)
		b, bok := cards[j].GetNumber(field)
		var ap, bp *numbers.MaybeImprecise
		if aok {
			ap = &a
		}
		if bok {
			bp = &b
		}
		if order == query.Descending {
			return numbers.OrdLess(bp, ap)
		}
		return numbers.OrdLess(ap, bp)
	})
}
