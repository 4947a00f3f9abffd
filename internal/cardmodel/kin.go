package cardmodel

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// KinFamily is the top level of the Kin hierarchy: some kins are leaves
// (Undead, Reptile, ...), others carry an optional child narrowing them
// further (Insect may or may not specify Ant vs Bee).
type KinFamily int

const (
	KinSorcery KinFamily = iota
	KinTheir
	KinInsect
	KinPiezan
	KinMachine
	KinUndead
	KinReptile
	KinAssassin
	KinCultOfNa
)

type InsectKin int

const (
	InsectAnt InsectKin = iota
	InsectBee
)

func (k InsectKin) Name() string {
	if k == InsectAnt {
		return "ant"
	}
	return "bee"
}

type PiezanKin int

const (
	PiezanRedKingdom PiezanKin = iota
	PiezanBlueKingdom
	PiezanBlackKingdom
	PiezanGreenKingdom
)

func (k PiezanKin) Name() string {
	switch k {
	case PiezanRedKingdom:
		return "red kingdom"
	case PiezanBlueKingdom:
		return "blue kingdom"
	case PiezanBlackKingdom:
		return "black kingdom"
	default:
		return "green kingdom"
	}
}

type MachineKin int

const (
	MachineBlight MachineKin = iota
)

func (k MachineKin) Name() string { return "blight" }

// Kin is the hierarchical card-tribe sum type: a top-level family, plus an
// optional child narrowing it (only meaningful for Insect/Piezan/Machine).
// The child is stored by value so two equal kins compare equal with ==.
type Kin struct {
	Family   KinFamily
	hasChild bool
	child    int
}

func Sorcery() Kin  { return Kin{Family: KinSorcery} }
func Their() Kin    { return Kin{Family: KinTheir} }
func Undead() Kin   { return Kin{Family: KinUndead} }
func Reptile() Kin  { return Kin{Family: KinReptile} }
func Assassin() Kin { return Kin{Family: KinAssassin} }
func CultOfNa() Kin { return Kin{Family: KinCultOfNa} }

func Insect(child *InsectKin) Kin {
	k := Kin{Family: KinInsect}
	if child != nil {
		k.hasChild, k.child = true, int(*child)
	}
	return k
}

func Piezan(child *PiezanKin) Kin {
	k := Kin{Family: KinPiezan}
	if child != nil {
		k.hasChild, k.child = true, int(*child)
	}
	return k
}

func Machine(child *MachineKin) Kin {
	k := Kin{Family: KinMachine}
	if child != nil {
		k.hasChild, k.child = true, int(*child)
	}
	return k
}

// Name returns the canonical lowercase name of this kin, prefixed with its
// family when a child is set ("insect ant"). This is the display/fuzzy
// form; the JSON wire form is tableName.
func (k Kin) Name() string {
	if !k.hasChild {
		return k.tableName()
	}
	switch k.Family {
	case KinInsect:
		return "insect " + InsectKin(k.child).Name()
	case KinPiezan:
		return "piezan " + PiezanKin(k.child).Name()
	case KinMachine:
		return "machine " + MachineKin(k.child).Name()
	default:
		return ""
	}
}

func (k Kin) String() string { return k.Name() }

// IsSameOrChild reports whether other is k itself or a strict narrowing of
// k (e.g. Insect().IsSameOrChild(Insect(Ant)) is true, but not the reverse).
// Sorcery and Their never relate to anything but themselves.
func (k Kin) IsSameOrChild(other Kin) bool {
	if k.Family != other.Family {
		return false
	}
	switch k.Family {
	case KinInsect, KinPiezan, KinMachine:
		return !k.hasChild || (other.hasChild && k.child == other.child)
	default:
		return true
	}
}

// Equalness returns 1.0 for an exact match, 0.5 when one is a parent/child
// of the other, and 0.0 otherwise.
func (k Kin) Equalness(other Kin) float64 {
	if k == other {
		return 1.0
	}
	if k.IsSameOrChild(other) || other.IsSameOrChild(k) {
		return 0.5
	}
	return 0.0
}

// KinFromString resolves a curated table of names/aliases (including
// historical spellings like "cult of nä") into a Kin.
func KinFromString(s string) (Kin, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sorcery":
		return Sorcery(), true
	case "their", "they":
		return Their(), true
	case "undead":
		return Undead(), true
	case "reptile":
		return Reptile(), true
	case "assassin":
		return Assassin(), true
	case "cult of na", "cult of nä":
		return CultOfNa(), true
	case "insect":
		return Insect(nil), true
	case "ant":
		c := InsectAnt
		return Insect(&c), true
	case "bee":
		c := InsectBee
		return Insect(&c), true
	case "piezan":
		return Piezan(nil), true
	case "red kingdom":
		c := PiezanRedKingdom
		return Piezan(&c), true
	case "blue kingdom":
		c := PiezanBlueKingdom
		return Piezan(&c), true
	case "black kingdom":
		c := PiezanBlackKingdom
		return Piezan(&c), true
	case "green kingdom":
		c := PiezanGreenKingdom
		return Piezan(&c), true
	case "machine":
		return Machine(nil), true
	case "blight":
		c := MachineBlight
		return Machine(&c), true
	default:
		return Kin{}, false
	}
}

// tableName is the curated wire string KinFromString resolves: a child kin
// serializes as the child's own name ("ant", not "insect ant"), a childless
// family as the family name.
func (k Kin) tableName() string {
	if k.hasChild {
		switch k.Family {
		case KinInsect:
			return InsectKin(k.child).Name()
		case KinPiezan:
			return PiezanKin(k.child).Name()
		case KinMachine:
			return MachineKin(k.child).Name()
		}
	}
	switch k.Family {
	case KinSorcery:
		return "sorcery"
	case KinTheir:
		return "their"
	case KinUndead:
		return "undead"
	case KinReptile:
		return "reptile"
	case KinAssassin:
		return "assassin"
	case KinCultOfNa:
		return "cult of na"
	case KinInsect:
		return "insect"
	case KinPiezan:
		return "piezan"
	case KinMachine:
		return "machine"
	default:
		return ""
	}
}

func (k Kin) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.tableName())
}

func (k *Kin) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, ok := KinFromString(s)
	if !ok {
		return fmt.Errorf("unrecognized kin %q", s)
	}
	*k = parsed
	return nil
}

// KinComparisonKind selects how a `kin:` query restriction matches against
// a card's kin.
type KinComparisonKind int

const (
	KinEqual KinComparisonKind = iota
	KinSimilar
	KinTextContains
	KinTextEqual
	KinRegexMatch
)

// KinComparison is the closed set of kin-matching modes a query restriction
// can carry.
type KinComparison struct {
	Kind  KinComparisonKind
	Kin   Kin
	Text  string
	Regex *regexp.Regexp
}

func (c KinComparison) String() string {
	switch c.Kind {
	case KinEqual:
		return "Equal(" + c.Kin.Name() + ")"
	case KinSimilar:
		return "Similar(" + c.Kin.Name() + ")"
	case KinTextContains:
		return "TextContains(" + c.Text + ")"
	case KinTextEqual:
		return "TextEqual(" + c.Text + ")"
	case KinRegexMatch:
		if c.Regex == nil {
			return "RegexMatch(nil)"
		}
		return "RegexMatch(/" + c.Regex.String() + "/)"
	default:
		return "?"
	}
}

// Matches reports whether the given (possibly absent) card kin satisfies
// this comparison.
func (c KinComparison) Matches(k *Kin) bool {
	switch c.Kind {
	case KinEqual:
		return k != nil && *k == c.Kin
	case KinSimilar:
		return k != nil && (k.IsSameOrChild(c.Kin) || c.Kin.IsSameOrChild(*k))
	case KinTextContains:
		return k != nil && strings.Contains(k.Name(), strings.ToLower(c.Text))
	case KinTextEqual:
		return k != nil && k.Name() == strings.ToLower(c.Text)
	case KinRegexMatch:
		return k != nil && c.Regex != nil && c.Regex.MatchString(k.Name())
	default:
		return false
	}
}
