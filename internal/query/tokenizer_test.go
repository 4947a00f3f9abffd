package query

import "testing"

func TestTokenizeWord(t *testing.T) {
	toks, err := tokenize("fly")
	if err != nil {
		t.Fatalf("tokenize: %v", err)
	}
	if len(toks) != 1 || toks[0].kind != tkWord || toks[0].word != "fly" {
		t.Fatalf("got %+v", toks)
	}
}

func TestTokenizeParam(t *testing.T) {
	toks, err := tokenize("cost:3")
	if err != nil {
		t.Fatalf("tokenize: %v", err)
	}
	if len(toks) != 1 || toks[0].kind != tkParam || toks[0].param != "cost" || toks[0].value != "3" {
		t.Fatalf("got %+v", toks)
	}
}

func TestTokenizeParamOperator(t *testing.T) {
	toks, err := tokenize("c>=3")
	if err != nil {
		t.Fatalf("tokenize: %v", err)
	}
	if len(toks) != 1 || toks[0].kind != tkParam || toks[0].param != "c" || toks[0].value != ">=3" {
		t.Fatalf("got %+v", toks)
	}
}

func TestTokenizeQuotedParam(t *testing.T) {
	toks, err := tokenize(`n:"infected fly"`)
	if err != nil {
		t.Fatalf("tokenize: %v", err)
	}
	if len(toks) != 1 || toks[0].kind != tkParam || toks[0].value != "infected fly" {
		t.Fatalf("got %+v", toks)
	}
}

func TestTokenizeUnterminatedStringIsError(t *testing.T) {
	_, err := tokenize(`n:"infected fly`)
	if err == nil {
		t.Fatalf("expected unclosed-string error")
	}
	qe, ok := err.(*Error)
	if !ok || qe.Kind != ErrUnclosedString {
		t.Fatalf("got %v, want ErrUnclosedString", err)
	}
}

func TestTokenizeRegexParam(t *testing.T) {
	toks, err := tokenize(`name:/^dr\. /`)
	if err != nil {
		t.Fatalf("tokenize: %v", err)
	}
	if len(toks) != 1 || toks[0].kind != tkRegexParam || toks[0].regex == nil {
		t.Fatalf("got %+v", toks)
	}
	if !toks[0].regex.MatchString("dr. malevolence") {
		t.Fatalf("regex did not match expected string")
	}
}

func TestTokenizeInvalidRegexIsError(t *testing.T) {
	_, err := tokenize(`name:/(/`)
	if err == nil {
		t.Fatalf("expected regex compile error")
	}
	qe, ok := err.(*Error)
	if !ok || qe.Kind != ErrRegex {
		t.Fatalf("got %v, want ErrRegex", err)
	}
}

func TestTokenizeUnclosedRegexIsError(t *testing.T) {
	_, err := tokenize(`name:/unclosed`)
	if err == nil {
		t.Fatalf("expected unclosed-regex error")
	}
	qe, ok := err.(*Error)
	if !ok || qe.Kind != ErrUnclosedRegex {
		t.Fatalf("got %v, want ErrUnclosedRegex", err)
	}
}

func TestTokenizeSuperParam(t *testing.T) {
	toks, err := tokenize(`dby:(n:"infected host")`)
	if err != nil {
		t.Fatalf("tokenize: %v", err)
	}
	if len(toks) != 1 || toks[0].kind != tkSuperParam || toks[0].param != "dby" {
		t.Fatalf("got %+v", toks)
	}
	if len(toks[0].sub) != 1 || toks[0].sub[0].kind != tkParam {
		t.Fatalf("subtokens = %+v", toks[0].sub)
	}
}

func TestTokenizeSuperParamNestedParens(t *testing.T) {
	toks, err := tokenize(`dev:(n:"a (b) c")`)
	if err != nil {
		t.Fatalf("tokenize: %v", err)
	}
	if len(toks) != 1 || toks[0].kind != tkSuperParam {
		t.Fatalf("got %+v", toks)
	}
	if toks[0].sub[0].value != "a (b) c" {
		t.Fatalf("got value %q", toks[0].sub[0].value)
	}
}

func TestTokenizeUnclosedSuperParamIsError(t *testing.T) {
	_, err := tokenize(`dby:(n:fly`)
	if err == nil {
		t.Fatalf("expected unclosed subquery error")
	}
	qe, ok := err.(*Error)
	if !ok || qe.Kind != ErrUnclosedSubquery {
		t.Fatalf("got %v, want ErrUnclosedSubquery", err)
	}
}

func TestTokenizeGroup(t *testing.T) {
	toks, err := tokenize(`(n:fly t:creature)`)
	if err != nil {
		t.Fatalf("tokenize: %v", err)
	}
	if len(toks) != 1 || toks[0].kind != tkGroup || len(toks[0].sub) != 2 {
		t.Fatalf("got %+v", toks)
	}
}

func TestTokenizeUnclosedGroupIsError(t *testing.T) {
	_, err := tokenize(`(n:fly`)
	if err == nil {
		t.Fatalf("expected unclosed subquery error")
	}
	qe, ok := err.(*Error)
	if !ok || qe.Kind != ErrUnclosedSubquery {
		t.Fatalf("got %v, want ErrUnclosedSubquery", err)
	}
}

func TestTokenizeSinglePolarityIsNot(t *testing.T) {
	toks, err := tokenize("-fly")
	if err != nil {
		t.Fatalf("tokenize: %v", err)
	}
	if len(toks) != 1 || toks[0].kind != tkNot {
		t.Fatalf("got %+v", toks)
	}
	if toks[0].sub[0].kind != tkWord || toks[0].sub[0].word != "fly" {
		t.Fatalf("inner token = %+v", toks[0].sub[0])
	}
}

func TestTokenizeDoublePolarityIsLenientNot(t *testing.T) {
	toks, err := tokenize("--fly")
	if err != nil {
		t.Fatalf("tokenize: %v", err)
	}
	if len(toks) != 1 || toks[0].kind != tkLenientNot {
		t.Fatalf("got %+v", toks)
	}
}

func TestTokenizeTriplePolarityIsError(t *testing.T) {
	_, err := tokenize("---fly")
	if err == nil {
		t.Fatalf("expected polarity error")
	}
	qe, ok := err.(*Error)
	if !ok || qe.Kind != ErrInvalidPolarity {
		t.Fatalf("got %v, want ErrInvalidPolarity", err)
	}
}

func TestTokenizeOrFillsRightSlot(t *testing.T) {
	toks, err := tokenize("n:fly OR n:host")
	if err != nil {
		t.Fatalf("tokenize: %v", err)
	}
	if len(toks) != 1 || toks[0].kind != tkOr {
		t.Fatalf("got %+v", toks)
	}
	if !toks[0].hasRight || len(toks[0].right) != 1 {
		t.Fatalf("right slot unfilled: %+v", toks[0])
	}
}

func TestTokenizeOrWithNoLeftIsError(t *testing.T) {
	_, err := tokenize("OR n:host")
	if err == nil {
		t.Fatalf("expected invalid-or error")
	}
	qe, ok := err.(*Error)
	if !ok || qe.Kind != ErrInvalidOr {
		t.Fatalf("got %v, want ErrInvalidOr", err)
	}
}

func TestTokenizeXorWithNoLeftIsError(t *testing.T) {
	_, err := tokenize("XOR n:host")
	if err == nil {
		t.Fatalf("expected invalid-or error")
	}
	qe, ok := err.(*Error)
	if !ok || qe.Kind != ErrInvalidOr {
		t.Fatalf("got %v, want ErrInvalidOr", err)
	}
}

func TestTokenizeMultiWordName(t *testing.T) {
	toks, err := tokenize("infected fly")
	if err != nil {
		t.Fatalf("tokenize: %v", err)
	}
	if len(toks) != 2 || toks[0].word != "infected" || toks[1].word != "fly" {
		t.Fatalf("got %+v", toks)
	}
}
