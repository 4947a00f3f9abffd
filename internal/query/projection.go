package query

import (
	"github.com/duskwarden/hemosearch/internal/cardmodel"
	"github.com/duskwarden/hemosearch/internal/numbers"
)

// FromCardID projects a partial CardID record into a Query that matches
// cards satisfying every field the CardID specifies: a substring check per
// name/type/description, an exact Kin match, a HasKw per keyword, a
// Has(Functions,...) per function, and a numeric comparison per
// cost/flip_cost/health/power/defense slot that's set (see
// numberEqualityRestriction). Devoured-by resolution uses it to turn a
// devours keyword's target into a query over the catalog.
func FromCardID(id *cardmodel.CardID) *Query {
	q := &Query{Sort: Sort{Kind: SortNone}}

	if id.Name != nil {
		q.Restrictions = append(q.Restrictions, QueryRestriction{
			Kind:      RTextComparison,
			Text:      cardmodel.TextName,
			TextField: TextComparison{Kind: Contains, Text: *id.Name},
		})
	}
	if id.Type != nil {
		q.Restrictions = append(q.Restrictions, QueryRestriction{
			Kind:      RTextComparison,
			Text:      cardmodel.TextType,
			TextField: TextComparison{Kind: Contains, Text: *id.Type},
		})
	}
	if id.Description != nil {
		q.Restrictions = append(q.Restrictions, QueryRestriction{
			Kind:      RTextComparison,
			Text:      cardmodel.TextDescription,
			TextField: TextComparison{Kind: Contains, Text: *id.Description},
		})
	}
	if id.Kin != nil {
		q.Restrictions = append(q.Restrictions, QueryRestriction{
			Kind: RKin,
			Kin:  cardmodel.KinComparison{Kind: cardmodel.KinEqual, Kin: *id.Kin},
		})
	}
	for _, kw := range id.Keywords {
		q.Restrictions = append(q.Restrictions, QueryRestriction{
			Kind:      RHasKw,
			TextField: TextComparison{Kind: Contains, Text: kw.Name},
		})
	}
	for _, fn := range id.Functions {
		q.Restrictions = append(q.Restrictions, QueryRestriction{
			Kind:      RHas,
			Array:     cardmodel.ArrayFunctions,
			TextField: TextComparison{Kind: Contains, Text: fn},
		})
	}

	if id.Cost != nil {
		q.Restrictions = append(q.Restrictions, numberEqualityRestriction(cardmodel.NumberCost, id.Cost))
	}
	if id.FlipCost != nil {
		q.Restrictions = append(q.Restrictions, numberEqualityRestriction(cardmodel.NumberFlipCost, id.FlipCost))
	}
	if id.Health != nil {
		q.Restrictions = append(q.Restrictions, numberEqualityRestriction(cardmodel.NumberHealth, id.Health))
	}
	if id.Power != nil {
		q.Restrictions = append(q.Restrictions, numberEqualityRestriction(cardmodel.NumberPower, id.Power))
	}
	if id.Defense != nil {
		q.Restrictions = append(q.Restrictions, numberEqualityRestriction(cardmodel.NumberDefense, id.Defense))
	}

	return q
}

// numberEqualityRestriction builds the NumberComparison a CardID's numeric
// slot projects to: a precise value pins an exact Equal bound, while an
// already-imprecise slot (e.g. ">3") carries its own comparator through
// unchanged.
func numberEqualityRestriction(field cardmodel.Number, slot *numbers.MaybeImprecise) QueryRestriction {
	return QueryRestriction{Kind: RNumberComparison, NumberField: field, Comparison: slot.AsComparison()}
}
