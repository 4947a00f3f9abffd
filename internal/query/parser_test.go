package query

import (
	"testing"

	"github.com/duskwarden/hemosearch/internal/cardmodel"
	"github.com/duskwarden/hemosearch/internal/numbers"
)

func mustParse(t *testing.T, s string) *Query {
	t.Helper()
	q, err := Parse(s)
	if err != nil {
		t.Fatalf("Parse(%q) = %v", s, err)
	}
	return q
}

func TestParseBarewordIsFuzzyAndDefaultsToFuzzySort(t *testing.T) {
	q := mustParse(t, "infected fly")
	if q.Name != "infected fly" {
		t.Fatalf("name = %q, want %q", q.Name, "infected fly")
	}
	if len(q.Restrictions) != 1 || q.Restrictions[0].Kind != RFuzzy || q.Restrictions[0].FuzzyText != "infected fly" {
		t.Fatalf("restrictions = %+v", q.Restrictions)
	}
	if q.Sort.Kind != SortFuzzy {
		t.Fatalf("sort = %+v, want SortFuzzy", q.Sort)
	}
}

func TestParseNoNameDefaultsAlphabeticalAscending(t *testing.T) {
	q := mustParse(t, "c>3")
	if q.Name != "" {
		t.Fatalf("name = %q, want empty", q.Name)
	}
	// Without a bareword name the parser still starts from SortFuzzy;
	// the alphabetical fallback is applied by the sorter, not the parser.
	if len(q.Restrictions) != 1 || q.Restrictions[0].Kind != RNumberComparison {
		t.Fatalf("restrictions = %+v", q.Restrictions)
	}
}

func TestParseNumberComparison(t *testing.T) {
	q := mustParse(t, "cost>=3")
	r := q.Restrictions[0]
	if r.Kind != RNumberComparison || r.NumberField != cardmodel.NumberCost {
		t.Fatalf("got %+v", r)
	}
	if r.Comparison.Op != numbers.GreaterThanOrEqual || r.Comparison.N != 3 {
		t.Fatalf("comparison = %+v", r.Comparison)
	}
}

func TestParseInvalidComparisonStringIsError(t *testing.T) {
	_, err := Parse("cost>=abc")
	if err == nil {
		t.Fatalf("expected error")
	}
	qe, ok := err.(*Error)
	if !ok || qe.Kind != ErrInvalidComparisonString {
		t.Fatalf("got %v, want ErrInvalidComparisonString", err)
	}
}

func TestParseTextParamContains(t *testing.T) {
	q := mustParse(t, `n:"infected fly"`)
	r := q.Restrictions[0]
	if r.Kind != RTextComparison || r.Text != cardmodel.TextName {
		t.Fatalf("got %+v", r)
	}
	if r.TextField.Kind != Contains || r.TextField.Text != "infected fly" {
		t.Fatalf("text comparison = %+v", r.TextField)
	}
}

func TestParseArrayParam(t *testing.T) {
	q := mustParse(t, "function:ramp")
	r := q.Restrictions[0]
	if r.Kind != RHas || r.Array != cardmodel.ArrayFunctions {
		t.Fatalf("got %+v", r)
	}
	if r.TextField.Kind != Contains || r.TextField.Text != "ramp" {
		t.Fatalf("text comparison = %+v", r.TextField)
	}
}

func TestParseKeywordParam(t *testing.T) {
	q := mustParse(t, "kw:devours")
	r := q.Restrictions[0]
	if r.Kind != RHasKw || r.TextField.Text != "devours" {
		t.Fatalf("got %+v", r)
	}
}

func TestParseRegexOnTextField(t *testing.T) {
	q := mustParse(t, `name:/^dr\. /`)
	r := q.Restrictions[0]
	if r.Kind != RTextComparison || r.TextField.Kind != HasMatch || r.TextField.Regex == nil {
		t.Fatalf("got %+v", r)
	}
}

func TestParseRegexOnNonTextFieldIsError(t *testing.T) {
	_, err := Parse(`cost:/3/`)
	if err == nil {
		t.Fatalf("expected error")
	}
	qe, ok := err.(*Error)
	if !ok || qe.Kind != ErrNonRegexable {
		t.Fatalf("got %v, want ErrNonRegexable", err)
	}
}

func TestParseUnknownFieldIsError(t *testing.T) {
	_, err := Parse("bogus:3")
	if err == nil {
		t.Fatalf("expected error")
	}
	qe, ok := err.(*Error)
	if !ok || qe.Kind != ErrUnknownStringParam {
		t.Fatalf("got %v, want ErrUnknownStringParam", err)
	}
}

func TestParseSuperParamDevours(t *testing.T) {
	q := mustParse(t, `dev:(n:"infected fly")`)
	r := q.Restrictions[0]
	if r.Kind != RDevours {
		t.Fatalf("got %+v", r)
	}
	if r.Sub.Sort.Kind != SortNone {
		t.Fatalf("subquery sort = %+v, want SortNone", r.Sub.Sort)
	}
}

func TestParseSuperParamDevouredBy(t *testing.T) {
	q := mustParse(t, `dby:(n:"infected host")`)
	r := q.Restrictions[0]
	if r.Kind != RDevouredBy {
		t.Fatalf("got %+v", r)
	}
}

func TestParseUnknownSuperParamIsError(t *testing.T) {
	_, err := Parse(`bogus:(n:fly)`)
	if err == nil {
		t.Fatalf("expected error")
	}
	qe, ok := err.(*Error)
	if !ok || qe.Kind != ErrUnknownSubQueryParam {
		t.Fatalf("got %v, want ErrUnknownSubQueryParam", err)
	}
}

func TestParseGroupForcesSortNone(t *testing.T) {
	q := mustParse(t, `(n:fly t:creature)`)
	r := q.Restrictions[0]
	if r.Kind != RGroup {
		t.Fatalf("got %+v", r)
	}
	if r.Sub.Sort.Kind != SortNone {
		t.Fatalf("group subquery sort = %+v, want SortNone", r.Sub.Sort)
	}
	if len(r.Sub.Restrictions) != 2 {
		t.Fatalf("group restrictions = %+v", r.Sub.Restrictions)
	}
}

func TestParseOrBuildsBothSides(t *testing.T) {
	q := mustParse(t, "n:fly OR n:host")
	r := q.Restrictions[0]
	if r.Kind != ROr {
		t.Fatalf("got %+v", r)
	}
	if r.Left == nil || r.Right == nil {
		t.Fatalf("or sides: left=%v right=%v", r.Left, r.Right)
	}
	if r.Left.Sort.Kind != SortNone || r.Right.Sort.Kind != SortNone {
		t.Fatalf("or sides should force SortNone: %+v %+v", r.Left.Sort, r.Right.Sort)
	}
}

func TestParseXorBuildsBothSides(t *testing.T) {
	q := mustParse(t, "n:fly XOR t:creature")
	r := q.Restrictions[0]
	if r.Kind != RXor {
		t.Fatalf("got %+v", r)
	}
}

func TestParseOrMissingRightIsError(t *testing.T) {
	_, err := Parse("n:fly OR")
	if err == nil {
		t.Fatalf("expected error")
	}
	qe, ok := err.(*Error)
	if !ok || qe.Kind != ErrInvalidOr {
		t.Fatalf("got %v, want ErrInvalidOr", err)
	}
}

func TestParseNotWrapsSingleRestriction(t *testing.T) {
	q := mustParse(t, "-t:command")
	r := q.Restrictions[0]
	if r.Kind != RNot {
		t.Fatalf("got %+v", r)
	}
	if r.Sub.Restrictions[0].Kind != RTextComparison {
		t.Fatalf("inner = %+v", r.Sub.Restrictions[0])
	}
}

func TestParseLenientNotWrapsSingleRestriction(t *testing.T) {
	q := mustParse(t, "--t:command")
	r := q.Restrictions[0]
	if r.Kind != RLenientNot {
		t.Fatalf("got %+v", r)
	}
}

func TestParseTrailingSortClause(t *testing.T) {
	q := mustParse(t, "SORT cost descending")
	if q.Sort.Kind != SortNumeric || q.Sort.NumberField != cardmodel.NumberCost || q.Sort.Order != Descending {
		t.Fatalf("sort = %+v", q.Sort)
	}
	if len(q.Restrictions) != 0 {
		t.Fatalf("restrictions should be empty, got %+v", q.Restrictions)
	}
}

func TestParseTrailingSortAscendingTextField(t *testing.T) {
	q := mustParse(t, "t:creature SORT name ascending")
	if q.Sort.Kind != SortAlphabet || q.Sort.TextField != cardmodel.TextName || q.Sort.Order != Ascending {
		t.Fatalf("sort = %+v", q.Sort)
	}
	if len(q.Restrictions) != 1 {
		t.Fatalf("restrictions = %+v, want the t:creature restriction preserved", q.Restrictions)
	}
}

func TestParseTrailingSortInvalidOrderingIsError(t *testing.T) {
	_, err := Parse("SORT cost sideways")
	if err == nil {
		t.Fatalf("expected error")
	}
	qe, ok := err.(*Error)
	if !ok || qe.Kind != ErrInvalidOrdering {
		t.Fatalf("got %v, want ErrInvalidOrdering", err)
	}
}

func TestParseTrailingSortUnsortableFieldIsError(t *testing.T) {
	_, err := Parse("SORT keyword ascending")
	if err == nil {
		t.Fatalf("expected error")
	}
	qe, ok := err.(*Error)
	if !ok || qe.Kind != ErrNotSortable {
		t.Fatalf("got %v, want ErrNotSortable", err)
	}
}

func TestParseInlineSortParam(t *testing.T) {
	q := mustParse(t, "so:cost")
	if q.Sort.Kind != SortNumeric || q.Sort.NumberField != cardmodel.NumberCost || q.Sort.Order != Ascending {
		t.Fatalf("sort = %+v", q.Sort)
	}
	if len(q.Restrictions) != 0 {
		t.Fatalf("sort params should not add a restriction, got %+v", q.Restrictions)
	}
}

func TestParseInlineSortDescParam(t *testing.T) {
	q := mustParse(t, "sod:cost")
	if q.Sort.Kind != SortNumeric || q.Sort.Order != Descending {
		t.Fatalf("sort = %+v", q.Sort)
	}
}

func TestParseEmptyParamNameIsError(t *testing.T) {
	_, err := Parse(`:"fly"`)
	if err == nil {
		t.Fatalf("expected error")
	}
	qe, ok := err.(*Error)
	if !ok || qe.Kind != ErrAttemptedEmptyParamName {
		t.Fatalf("got %v, want ErrAttemptedEmptyParamName", err)
	}
}

func TestFieldAliasesResolveToSameField(t *testing.T) {
	aliases := []string{"health", "h", "hp"}
	for _, alias := range aliases {
		q := mustParse(t, alias+":3")
		r := q.Restrictions[0]
		if r.Kind != RNumberComparison || r.NumberField != cardmodel.NumberHealth {
			t.Fatalf("alias %q resolved to %+v, want NumberHealth", alias, r)
		}
	}
}

func TestParseMultipleRestrictionsCombineWithAnd(t *testing.T) {
	q := mustParse(t, "t:creature c=5")
	if len(q.Restrictions) != 2 {
		t.Fatalf("restrictions = %+v, want 2", q.Restrictions)
	}
}
