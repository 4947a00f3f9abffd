// Package search implements the ternary query evaluator: it walks a parsed
// query.Query against a cardmodel.Reader (a Card or a CardID acting as a
// cross-reference target), folds restrictions under three-valued logic, and
// resolves "devours"/"devouredby" cross-card subqueries through a
// per-search Cache. Fuzzy ranking and sort live alongside it (fuzzy.go,
// sort.go), and Search and SearchWithCache (search.go) are the package's
// entry points.
package search

import (
	"strings"

	"github.com/duskwarden/hemosearch/internal/cardmodel"
	"github.com/duskwarden/hemosearch/internal/numbers"
	"github.com/duskwarden/hemosearch/internal/query"
)

// Eval evaluates q against c under three-valued logic. all and cache are
// threaded through for Devours/DevouredBy subquery resolution; cache must
// be scoped to a single top-level Search call.
func Eval(c cardmodel.Reader, q *query.Query, all []cardmodel.Card, cache *Cache) numbers.Ternary {
	result := numbers.True
	for _, r := range q.Restrictions {
		result = result.And(evalRestriction(c, r, all, cache))
	}
	return result
}

func evalRestriction(c cardmodel.Reader, r query.QueryRestriction, all []cardmodel.Card, cache *Cache) numbers.Ternary {
	switch r.Kind {
	case query.RFuzzy:
		return numbers.FromBool(fuzzyMatches(c, r.FuzzyText))

	case query.RNumberComparison:
		slot, ok := c.GetNumber(r.NumberField)
		if !ok {
			return numbers.Void
		}
		return slot.Compare(r.Comparison.Op, r.Comparison.N)

	case query.RTextComparison:
		text, ok := c.GetText(r.Text)
		if !ok {
			return numbers.Void
		}
		return numbers.FromBool(matchesTextComparison(text, r.TextField))

	case query.RHas:
		arr, ok := c.GetArray(r.Array)
		if !ok {
			return numbers.Void
		}
		for _, elem := range arr {
			if matchesTextComparison(elem, r.TextField) {
				return numbers.True
			}
		}
		return numbers.False

	case query.RHasKw:
		kws, ok := c.GetKeywords()
		if !ok {
			return numbers.Void
		}
		for _, kw := range kws {
			if matchesTextComparison(kw.Name, r.TextField) {
				return numbers.True
			}
		}
		return numbers.False

	case query.RKin:
		kin, ok := c.GetKin()
		if !ok {
			return numbers.Void
		}
		return numbers.FromBool(r.Kin.Matches(&kin))

	case query.RNot:
		return Eval(c, r.Sub, all, cache).Not()

	case query.RLenientNot:
		return Eval(c, r.Sub, all, cache).LenientNot()

	case query.RGroup:
		return Eval(c, r.Sub, all, cache)

	case query.ROr:
		return Eval(c, r.Left, all, cache).Or(Eval(c, r.Right, all, cache))

	case query.RXor:
		return Eval(c, r.Left, all, cache).Xor(Eval(c, r.Right, all, cache))

	case query.RDevours:
		return evalDevours(c, r.Sub, all, cache)

	case query.RDevouredBy:
		return evalDevouredBy(c, r.Sub, all, cache)

	default:
		return numbers.Void
	}
}

// fuzzyMatches is the Fuzzy(s) restriction: True iff s (ascii-cleaned)
// appears in any of the card's ascii-cleaned name/type/description/kin
// name/keyword names. Never Void.
func fuzzyMatches(c cardmodel.Reader, needle string) bool {
	cleanNeedle := asciiClean(needle)
	if cleanNeedle == "" {
		return true
	}
	if name, ok := c.GetText(cardmodel.TextName); ok && strings.Contains(asciiClean(name), cleanNeedle) {
		return true
	}
	if typ, ok := c.GetText(cardmodel.TextType); ok && strings.Contains(asciiClean(typ), cleanNeedle) {
		return true
	}
	if desc, ok := c.GetText(cardmodel.TextDescription); ok && strings.Contains(asciiClean(desc), cleanNeedle) {
		return true
	}
	if kin, ok := c.GetKin(); ok && strings.Contains(asciiClean(kin.Name()), cleanNeedle) {
		return true
	}
	if kws, ok := c.GetKeywords(); ok {
		for _, kw := range kws {
			if strings.Contains(asciiClean(kw.Name), cleanNeedle) {
				return true
			}
		}
	}
	return false
}

// matchesTextComparison applies a TextComparison to one field value:
// Contains/EqualTo run over ascii-cleaned text, while HasMatch runs the
// compiled regex against the merely-lowercased value, without the
// ascii-fold Contains/EqualTo get.
func matchesTextComparison(value string, cmp query.TextComparison) bool {
	switch cmp.Kind {
	case query.Contains:
		return strings.Contains(asciiClean(value), asciiClean(cmp.Text))
	case query.EqualTo:
		return asciiClean(value) == asciiClean(cmp.Text)
	case query.HasMatch:
		if cmp.Regex == nil {
			return false
		}
		return cmp.Regex.MatchString(strings.ToLower(value))
	default:
		return false
	}
}

// evalDevours implements Devours(q): True iff some "devours" keyword
// carries an embedded CardID and q matches against that CardID (used as a
// Reader in its own right, not against c itself). A card with no keywords
// field at all (only possible for a CardID reader) evaluates to Void; one
// with keywords but no matching devours keyword evaluates to False.
func evalDevours(c cardmodel.Reader, sub *query.Query, all []cardmodel.Card, cache *Cache) numbers.Ternary {
	kws, ok := c.GetKeywords()
	if !ok {
		return numbers.Void
	}
	for _, kw := range kws {
		if kw.Name != "devours" || kw.Data == nil || kw.Data.Kind != cardmodel.KeywordDataCardID {
			continue
		}
		if Eval(kw.Data.CardID, sub, all, cache) == numbers.True {
			return numbers.True
		}
	}
	return numbers.False
}
