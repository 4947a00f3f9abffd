package numbers

import (
	"encoding/json"
	"fmt"
	"unicode"
)

// MaybeImprecise is a card's numeric slot: either a precise value (a
// constant or a card variable) or an imprecise bound ("at least 3", "not
// 2"). Precise() and Imprecise() construct the two cases.
type MaybeImprecise struct {
	precise bool
	value   MaybeVar   // valid when precise
	cmp     Comparison // valid when !precise
}

// Precise wraps a concrete value (constant or variable).
func Precise(v MaybeVar) MaybeImprecise { return MaybeImprecise{precise: true, value: v} }

// Imprecise wraps a bound.
func Imprecise(c Comparison) MaybeImprecise { return MaybeImprecise{cmp: c} }

// AsComparison normalizes a precise value into an equivalent Equal bound,
// so comparison code can treat both cases uniformly where convenient.
func (m MaybeImprecise) AsComparison() Comparison {
	if m.precise {
		return Comparison{Op: Equal, N: m.value.Assume()}
	}
	return m.cmp
}

func (m MaybeImprecise) String() string {
	if m.precise {
		return m.value.String()
	}
	return m.cmp.String()
}

func (m MaybeImprecise) MarshalJSON() ([]byte, error) {
	if m.precise {
		return json.Marshal(m.value)
	}
	return json.Marshal(m.cmp.String())
}

func (m *MaybeImprecise) UnmarshalJSON(data []byte) error {
	var n uint64
	if err := json.Unmarshal(data, &n); err == nil {
		*m = Precise(Const(n))
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if c, err := ParseComparison(s); err == nil {
			*m = Imprecise(c)
			return nil
		}
		if len(s) > 0 {
			r := []rune(s)[0]
			if !unicode.IsLetter(r) {
				return fmt.Errorf("invalid numeric slot %q: not a number, comparator, or variable letter", s)
			}
			*m = Precise(Var(r))
			return nil
		}
		*m = Precise(Const(0))
		return nil
	}
	return fmt.Errorf("invalid numeric slot: %s", string(data))
}

// Compare evaluates `slot <op> k` under the interval-aware comparison
// table: a precise slot compares its assumed value directly; an imprecise
// slot is True iff the interval its bound describes contains a value
// satisfying the tested operator (Equal asks for intersection with {k}).
func (m MaybeImprecise) Compare(op CompareOp, k uint64) Ternary {
	switch op {
	case GreaterThan:
		return FromBool(m.gt(k))
	case GreaterThanOrEqual:
		return FromBool(m.gtEq(k))
	case LowerThan:
		return FromBool(m.lt(k))
	case LowerThanOrEqual:
		return FromBool(m.ltEq(k))
	case Equal:
		return FromBool(m.eq(k))
	case NotEqual:
		return FromBool(m.ne(k))
	default:
		return Void
	}
}

func (m MaybeImprecise) gt(k uint64) bool {
	if m.precise {
		return m.value.Assume() > k
	}
	switch m.cmp.Op {
	case GreaterThan, GreaterThanOrEqual, NotEqual:
		return true
	case LowerThan:
		// comparison < k+1, i.e. the bound allows values as low as
		// comparison-1; rewritten without subtraction to avoid underflow.
		return m.cmp.N > k+1
	default: // LowerThanOrEqual, Equal
		return m.cmp.N > k
	}
}

func (m MaybeImprecise) gtEq(k uint64) bool {
	if m.precise {
		return m.value.Assume() >= k
	}
	switch m.cmp.Op {
	case Equal:
		return m.cmp.N >= k
	case GreaterThan, GreaterThanOrEqual, NotEqual:
		return true
	case LowerThanOrEqual:
		return m.cmp.N >= k
	default: // LowerThan
		return m.cmp.N > k
	}
}

func (m MaybeImprecise) lt(k uint64) bool {
	if m.precise {
		return m.value.Assume() < k
	}
	switch m.cmp.Op {
	case GreaterThan:
		if k == 0 {
			return false
		}
		return m.cmp.N+1 < k
	case GreaterThanOrEqual, Equal:
		return m.cmp.N < k
	default: // LowerThan, LowerThanOrEqual, NotEqual
		// these intervals all contain 0, which is below any k > 0
		return k > 0
	}
}

func (m MaybeImprecise) ltEq(k uint64) bool {
	if m.precise {
		return m.value.Assume() <= k
	}
	switch m.cmp.Op {
	case Equal:
		return m.cmp.N <= k
	case GreaterThanOrEqual:
		return m.cmp.N <= k
	case GreaterThan:
		return m.cmp.N < k
	default: // LowerThan, LowerThanOrEqual, NotEqual
		return true
	}
}

func (m MaybeImprecise) eq(k uint64) bool {
	if m.precise {
		return k == m.value.Assume()
	}
	switch m.cmp.Op {
	case Equal:
		return k == m.cmp.N
	case GreaterThan:
		return k > m.cmp.N
	case GreaterThanOrEqual:
		return k >= m.cmp.N
	case LowerThan:
		return k < m.cmp.N
	case LowerThanOrEqual:
		return k <= m.cmp.N
	default: // NotEqual
		return k != m.cmp.N
	}
}

func (m MaybeImprecise) ne(k uint64) bool {
	if m.precise {
		return k != m.value.Assume()
	}
	if m.cmp.Op == Equal {
		return k != m.cmp.N
	}
	return true
}

// CompareSlot evaluates an optional numeric slot against an operator/bound,
// returning Void when the slot is absent (nil).
func CompareSlot(slot *MaybeImprecise, op CompareOp, k uint64) Ternary {
	if slot == nil {
		return Void
	}
	return slot.Compare(op, k)
}

// OrdLess is the total order used for numeric sorting: an absent slot
// (nil) sorts less than any present one; two present slots compare by
// their numeric component, an imprecise slot's bound value standing in
// for a genuine partial order over overlapping intervals.
func OrdLess(a, b *MaybeImprecise) bool {
	av, aok := ordKey(a)
	bv, bok := ordKey(b)
	if !aok {
		return bok
	}
	if !bok {
		return false
	}
	return av < bv
}

func ordKey(m *MaybeImprecise) (uint64, bool) {
	if m == nil {
		return 0, false
	}
	if m.precise {
		return m.value.Assume(), true
	}
	return m.cmp.N, true
}
