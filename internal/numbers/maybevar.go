package numbers

import (
	"encoding/json"
	"fmt"
	"unicode"
)

// MaybeVar is either a fixed constant or a per-card variable (a single
// letter standing in for a value the card doesn't pin down, e.g. a card
// whose cost is "X"). Variables are assumed to be 0 whenever a numeric
// comparison needs a concrete value.
type MaybeVar struct {
	isVar    bool
	constVal uint64
	varChar  rune
}

// Const builds a fixed-value MaybeVar.
func Const(n uint64) MaybeVar { return MaybeVar{constVal: n} }

// Var builds a variable MaybeVar standing in for the given letter.
func Var(ch rune) MaybeVar { return MaybeVar{isVar: true, varChar: ch} }

// Assume returns the value to use in comparisons: the constant itself, or 0
// for a variable.
func (v MaybeVar) Assume() uint64 {
	if v.isVar {
		return 0
	}
	return v.constVal
}

// IsVar reports whether this is a variable slot, and if so which letter.
func (v MaybeVar) IsVar() (rune, bool) {
	return v.varChar, v.isVar
}

func (v MaybeVar) String() string {
	if v.isVar {
		return string(v.varChar)
	}
	return fmt.Sprintf("%d", v.constVal)
}

// MarshalJSON emits a bare number for a constant and a single-character
// string for a variable, mirroring the compact wire form the rest of the
// card JSON uses for numeric slots.
func (v MaybeVar) MarshalJSON() ([]byte, error) {
	if v.isVar {
		return json.Marshal(string(v.varChar))
	}
	return json.Marshal(v.constVal)
}

// UnmarshalJSON accepts either a JSON number (-> Const) or a single-letter
// JSON string (-> Var). A non-letter variable character is rejected; any
// other shape falls back to Const(0) rather than erroring.
func (v *MaybeVar) UnmarshalJSON(data []byte) error {
	var n uint64
	if err := json.Unmarshal(data, &n); err == nil {
		*v = Const(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil && len(s) > 0 {
		r := []rune(s)[0]
		if !unicode.IsLetter(r) {
			return fmt.Errorf("variable must be a letter, got %q", s)
		}
		*v = Var(r)
		return nil
	}
	*v = Const(0)
	return nil
}
