package numbers

import "testing"

func TestParseComparison(t *testing.T) {
	tests := []struct {
		in   string
		want Comparison
	}{
		{"3", Comparison{Equal, 3}},
		{">=2", Comparison{GreaterThanOrEqual, 2}},
		{"<=5", Comparison{LowerThanOrEqual, 5}},
		{">1", Comparison{GreaterThan, 1}},
		{"<9", Comparison{LowerThan, 9}},
		{"=4", Comparison{Equal, 4}},
		{"!=7", Comparison{NotEqual, 7}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseComparison(tt.in)
			if err != nil {
				t.Fatalf("ParseComparison(%q) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseComparison(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseComparisonInvalid(t *testing.T) {
	for _, in := range []string{"abc", ">=", "<=x", ""} {
		if _, err := ParseComparison(in); err == nil {
			t.Errorf("ParseComparison(%q) expected error, got nil", in)
		}
	}
}

func TestPreciseCompare(t *testing.T) {
	m := Precise(Const(3))
	cases := []struct {
		op   CompareOp
		k    uint64
		want Ternary
	}{
		{GreaterThan, 2, True},
		{GreaterThan, 3, False},
		{GreaterThanOrEqual, 3, True},
		{LowerThan, 4, True},
		{LowerThanOrEqual, 3, True},
		{Equal, 3, True},
		{Equal, 4, False},
		{NotEqual, 3, False},
		{NotEqual, 4, True},
	}
	for _, c := range cases {
		if got := m.Compare(c.op, c.k); got != c.want {
			t.Errorf("Compare(%v,%d) = %v, want %v", c.op, c.k, got, c.want)
		}
	}
}

func TestPreciseVarAssumesZero(t *testing.T) {
	m := Precise(Var('x'))
	if got := m.Compare(Equal, 0); got != True {
		t.Errorf("Var compared to 0 = %v, want True", got)
	}
	if got := m.Compare(GreaterThan, 0); got != False {
		t.Errorf("Var > 0 = %v, want False", got)
	}
}

func TestImpreciseGreaterThanCompare(t *testing.T) {
	// card cost is ">=2"; does cost>1 hold?
	m := Imprecise(Comparison{GreaterThanOrEqual, 2})
	if got := m.Compare(GreaterThan, 1); got != True {
		t.Errorf("GTE(2).Compare(GT,1) = %v, want True", got)
	}
	// card cost is "<=1"; does cost>3 hold? No, the interval [0,1] can't exceed 3.
	m2 := Imprecise(Comparison{LowerThanOrEqual, 1})
	if got := m2.Compare(GreaterThan, 3); got != False {
		t.Errorf("LTE(1).Compare(GT,3) = %v, want False", got)
	}
}

func TestImpreciseLowerThanZeroEdge(t *testing.T) {
	// card cost is ">5"; does cost<0 hold? Never - nothing is below 0.
	m := Imprecise(Comparison{GreaterThan, 5})
	if got := m.Compare(LowerThan, 0); got != False {
		t.Errorf("GT(5).Compare(LT,0) = %v, want False", got)
	}
}

func TestCompareSlotVoidWhenAbsent(t *testing.T) {
	if got := CompareSlot(nil, Equal, 3); got != Void {
		t.Errorf("CompareSlot(nil,...) = %v, want Void", got)
	}
}

func TestNumericSlotRejectsNonLetterVariable(t *testing.T) {
	var m MaybeImprecise
	if err := m.UnmarshalJSON([]byte(`"%"`)); err == nil {
		t.Errorf("expected error for non-letter variable string")
	}
}

func TestMaybeImpreciseJSONRoundTrip(t *testing.T) {
	cases := []MaybeImprecise{
		Precise(Const(4)),
		Precise(Var('x')),
		Imprecise(Comparison{GreaterThanOrEqual, 2}),
		Imprecise(Comparison{NotEqual, 5}),
	}
	for _, m := range cases {
		data, err := m.MarshalJSON()
		if err != nil {
			t.Fatalf("MarshalJSON(%v) error: %v", m, err)
		}
		var back MaybeImprecise
		if err := back.UnmarshalJSON(data); err != nil {
			t.Fatalf("UnmarshalJSON(%s) error: %v", data, err)
		}
		if back.String() != m.String() {
			t.Errorf("round trip %v -> %s -> %v, want same rendering", m, data, back)
		}
	}
}
