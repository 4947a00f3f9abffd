package cardmodel

import "github.com/duskwarden/hemosearch/internal/numbers"

// CardID is a partial card record: every field is optional, used both to
// describe "the card this keyword/rich-text reference points at" and as
// the seed for projecting a query that finds cards matching it (see
// internal/query's CardID-to-query projection). Unlike Card, CardID's
// health/power/defense have no command-type carve-out of their own — they
// simply read back as absent when unset, same as any other field.
type CardID struct {
	Name        *string                 `json:"name,omitempty"`
	Type        *string                 `json:"type,omitempty"`
	Description *string                 `json:"description,omitempty"`
	Kin         *Kin                    `json:"kin,omitempty"`
	Cost        *numbers.MaybeImprecise `json:"cost,omitempty"`
	FlipCost    *numbers.MaybeImprecise `json:"flip_cost,omitempty"`
	Health      *numbers.MaybeImprecise `json:"health,omitempty"`
	Power       *numbers.MaybeImprecise `json:"power,omitempty"`
	Defense     *numbers.MaybeImprecise `json:"defense,omitempty"`
	Keywords    []Keyword               `json:"keywords,omitempty"`
	Abilities   []string                `json:"abilities,omitempty"`
	Functions   []string                `json:"functions,omitempty"`
}

func (c *CardID) GetNumber(n Number) (numbers.MaybeImprecise, bool) {
	var slot *numbers.MaybeImprecise
	switch n {
	case NumberCost:
		slot = c.Cost
	case NumberFlipCost:
		slot = c.FlipCost
	case NumberHealth:
		slot = c.Health
	case NumberPower:
		slot = c.Power
	case NumberDefense:
		slot = c.Defense
	}
	if slot == nil {
		return numbers.MaybeImprecise{}, false
	}
	return *slot, true
}

func (c *CardID) GetText(t Text) (string, bool) {
	var slot *string
	switch t {
	case TextName:
		slot = c.Name
	case TextType:
		slot = c.Type
	case TextDescription:
		slot = c.Description
	}
	if slot == nil {
		return "", false
	}
	return *slot, true
}

func (c *CardID) GetArray(a Array) ([]string, bool) {
	switch a {
	case ArrayFunctions:
		if c.Functions == nil {
			return nil, false
		}
		return c.Functions, true
	default:
		return nil, false
	}
}

func (c *CardID) GetKeywords() ([]Keyword, bool) {
	if c.Keywords == nil {
		return nil, false
	}
	return c.Keywords, true
}

func (c *CardID) GetKin() (Kin, bool) {
	if c.Kin == nil {
		return Kin{}, false
	}
	return *c.Kin, true
}
