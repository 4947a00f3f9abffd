package cardmodel

import (
	"strings"

	"github.com/duskwarden/hemosearch/internal/numbers"
)

// Number enumerates a card's queryable numeric fields.
type Number int

const (
	NumberCost Number = iota
	NumberFlipCost
	NumberHealth
	NumberPower
	NumberDefense
)

func (n Number) String() string {
	switch n {
	case NumberCost:
		return "cost"
	case NumberFlipCost:
		return "flip_cost"
	case NumberHealth:
		return "health"
	case NumberPower:
		return "power"
	case NumberDefense:
		return "defense"
	default:
		return "unknown"
	}
}

// Text enumerates a card's queryable plain-text fields.
type Text int

const (
	TextID Text = iota
	TextName
	TextType
	TextDescription
	TextFlavorText
)

func (t Text) String() string {
	switch t {
	case TextID:
		return "id"
	case TextName:
		return "name"
	case TextType:
		return "type"
	case TextDescription:
		return "description"
	case TextFlavorText:
		return "flavor_text"
	default:
		return "unknown"
	}
}

// Array enumerates a card's queryable string-array fields. Historically
// this also covered kins and artists; it now scopes to functions.
type Array int

const (
	ArrayFunctions Array = iota
)

func (a Array) String() string { return "functions" }

// Reader is the read-capability abstraction both Card and CardID implement:
// a partial-record view over a card's queryable properties. CardID's
// unspecified fields read back as absent (ok=false); Card's fields are
// always present except for an unset flip cost or kin and the command-type
// carve-out on health/power/defense.
type Reader interface {
	GetNumber(Number) (numbers.MaybeImprecise, bool)
	GetText(Text) (string, bool)
	GetArray(Array) ([]string, bool)
	GetKeywords() ([]Keyword, bool)
	GetKin() (Kin, bool)
}

// isCommandType reports whether a card's type string carries the "command"
// substring (case-insensitively), which suppresses health/power/defense
// (commands aren't creatures and don't have combat stats).
func isCommandType(typ string) bool {
	return strings.Contains(strings.ToLower(typ), "command")
}
