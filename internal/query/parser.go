package query

import (
	"strings"

	"github.com/duskwarden/hemosearch/internal/cardmodel"
	"github.com/duskwarden/hemosearch/internal/numbers"
)

// Parse parses a full query string into a Query AST. This is the only
// entry point that honors a trailing top-level `SORT <field>
// <ascending|descending>` clause (see parseTrailingSort); subqueries never
// see it, since it's re-derived from the raw token stream before
// parseTokens runs.
func Parse(s string) (*Query, error) {
	toks, err := tokenize(s)
	if err != nil {
		return nil, err
	}
	toks, sortOverride, err := extractTrailingSort(toks)
	if err != nil {
		return nil, err
	}
	q, err := parseTokens(toks)
	if err != nil {
		return nil, err
	}
	if sortOverride != nil {
		q.Sort = *sortOverride
	}
	return q, nil
}

// extractTrailingSort looks for three trailing bareword tokens "SORT
// <field> <ascending|descending>" and, if found, strips them from the
// token stream and returns the Sort they describe. Nested tokens (inside
// quotes, parens, or regex) never reach this function as bareword tokens in
// the first place, so this cannot misfire on, say, a quoted string
// containing the word SORT.
func extractTrailingSort(toks []token) ([]token, *Sort, error) {
	n := len(toks)
	if n < 3 {
		return toks, nil, nil
	}
	a, b, c := toks[n-3], toks[n-2], toks[n-1]
	if a.kind != tkWord || a.word != "SORT" || b.kind != tkWord || c.kind != tkWord {
		return toks, nil, nil
	}
	var order Ordering
	switch c.word {
	case "ascending":
		order = Ascending
	case "descending":
		order = Descending
	default:
		return toks, nil, newErr(ErrInvalidOrdering, c.word)
	}
	field, ok := resolveField(b.word)
	if !ok {
		return toks, nil, newErr(ErrNotSortable, b.word)
	}
	var s Sort
	switch field.kind {
	case fkNumber:
		s = Sort{Kind: SortNumeric, NumberField: field.num, Order: order}
	case fkText:
		s = Sort{Kind: SortAlphabet, TextField: field.txt, Order: order}
	default:
		return toks, nil, newErr(ErrNotSortable, b.word)
	}
	return toks[:n-3], &s, nil
}

// parseTokens walks a raw token stream into a Query. Defaults to
// SortFuzzy; the caller forces SortNone on every recursively parsed
// subquery (Not, LenientNot, Group, Or, Xor, Devours, DevouredBy), since
// only the outermost query's sort is ever applied.
func parseTokens(toks []token) (*Query, error) {
	q := &Query{Sort: Sort{Kind: SortFuzzy}}
	var nameWords []string

	for _, t := range toks {
		switch t.kind {
		case tkWord:
			nameWords = append(nameWords, t.word)

		case tkNot, tkLenientNot:
			sub, err := parseTokens(t.sub)
			if err != nil {
				return nil, err
			}
			sub.Sort = Sort{Kind: SortNone}
			kind := RNot
			if t.kind == tkLenientNot {
				kind = RLenientNot
			}
			q.Restrictions = append(q.Restrictions, QueryRestriction{Kind: kind, Sub: sub})

		case tkGroup:
			sub, err := parseTokens(t.sub)
			if err != nil {
				return nil, err
			}
			sub.Sort = Sort{Kind: SortNone}
			q.Restrictions = append(q.Restrictions, QueryRestriction{Kind: RGroup, Sub: sub})

		case tkOr, tkXor:
			if len(t.sub) == 0 || !t.hasRight || len(t.right) == 0 {
				return nil, newErr(ErrInvalidOr, "missing operand")
			}
			left, err := parseTokens(t.sub)
			if err != nil {
				return nil, err
			}
			left.Sort = Sort{Kind: SortNone}
			right, err := parseTokens(t.right)
			if err != nil {
				return nil, err
			}
			right.Sort = Sort{Kind: SortNone}
			kind := ROr
			if t.kind == tkXor {
				kind = RXor
			}
			q.Restrictions = append(q.Restrictions, QueryRestriction{Kind: kind, Left: left, Right: right})

		case tkSuperParam:
			if t.param == "" {
				return nil, newErr(ErrAttemptedEmptyParamName, "")
			}
			devours, ok := resolveSuperParam(t.param)
			if !ok {
				return nil, newErr(ErrUnknownSubQueryParam, t.param)
			}
			sub, err := parseTokens(t.sub)
			if err != nil {
				return nil, err
			}
			sub.Sort = Sort{Kind: SortNone}
			kind := RDevouredBy
			if devours {
				kind = RDevours
			}
			q.Restrictions = append(q.Restrictions, QueryRestriction{Kind: kind, Sub: sub})

		case tkParam:
			if t.param == "" {
				return nil, newErr(ErrAttemptedEmptyParamName, "")
			}
			field, ok := resolveField(t.param)
			if !ok {
				return nil, newErr(ErrUnknownStringParam, t.param)
			}
			r, err := buildParamRestriction(field, t.value)
			if err != nil {
				return nil, err
			}
			if r == nil {
				// sort param: applies to the query itself, not a restriction.
				s, err := sortFromFieldName(t.value, field.kind == fkSortDesc)
				if err != nil {
					return nil, err
				}
				q.Sort = s
				continue
			}
			q.Restrictions = append(q.Restrictions, *r)

		case tkRegexParam:
			if t.param == "" {
				return nil, newErr(ErrAttemptedEmptyParamName, "")
			}
			field, ok := resolveField(t.param)
			if !ok {
				return nil, newErr(ErrUnknownStringParam, t.param)
			}
			switch field.kind {
			case fkText:
				q.Restrictions = append(q.Restrictions, QueryRestriction{
					Kind:      RTextComparison,
					Text:      field.txt,
					TextField: TextComparison{Kind: HasMatch, Regex: t.regex},
				})
			case fkKin:
				q.Restrictions = append(q.Restrictions, QueryRestriction{
					Kind: RKin,
					Kin:  cardmodel.KinComparison{Kind: cardmodel.KinRegexMatch, Regex: t.regex},
				})
			default:
				return nil, newErr(ErrNonRegexable, t.param)
			}
		}
	}

	if len(nameWords) > 0 {
		name := strings.Join(nameWords, " ")
		q.Name = name
		q.Restrictions = append(q.Restrictions, QueryRestriction{Kind: RFuzzy, FuzzyText: name})
	}

	return q, nil
}

// buildParamRestriction builds the restriction a plain (non-regex) param
// token resolves to. Returns (nil, nil) for a sort param, which the caller
// applies to the query's Sort field instead of pushing a restriction.
func buildParamRestriction(field resolvedField, value string) (*QueryRestriction, error) {
	switch field.kind {
	case fkNumber:
		cmp, err := numbers.ParseComparison(value)
		if err != nil {
			return nil, newErr(ErrInvalidComparisonString, value)
		}
		return &QueryRestriction{Kind: RNumberComparison, NumberField: field.num, Comparison: cmp}, nil
	case fkText:
		return &QueryRestriction{
			Kind:      RTextComparison,
			Text:      field.txt,
			TextField: TextComparison{Kind: Contains, Text: value},
		}, nil
	case fkArray:
		return &QueryRestriction{
			Kind:      RHas,
			Array:     field.arr,
			TextField: TextComparison{Kind: Contains, Text: value},
		}, nil
	case fkKeyword:
		return &QueryRestriction{
			Kind:      RHasKw,
			TextField: TextComparison{Kind: Contains, Text: value},
		}, nil
	case fkKin:
		return &QueryRestriction{
			Kind: RKin,
			Kin:  cardmodel.KinComparison{Kind: cardmodel.KinTextContains, Text: value},
		}, nil
	case fkSortAsc, fkSortDesc:
		return nil, nil
	default:
		return nil, newErr(ErrUnknownStringParam, "")
	}
}

func sortFromFieldName(name string, descending bool) (Sort, error) {
	field, ok := resolveField(name)
	if !ok {
		return Sort{}, newErr(ErrNotSortable, name)
	}
	order := Ascending
	if descending {
		order = Descending
	}
	switch field.kind {
	case fkNumber:
		return Sort{Kind: SortNumeric, NumberField: field.num, Order: order}, nil
	case fkText:
		return Sort{Kind: SortAlphabet, TextField: field.txt, Order: order}, nil
	default:
		return Sort{}, newErr(ErrNotSortable, name)
	}
}
