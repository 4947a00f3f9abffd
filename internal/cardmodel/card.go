package cardmodel

import (
	"github.com/duskwarden/hemosearch/internal/numbers"
)

// Card is a fully realized catalog entry. Every queryable field is present
// except flip cost and kin, which read back as absent when unset, and
// health/power/defense, which read back as absent for command-type cards
// (commands aren't creatures and have no combat stats).
type Card struct {
	ID          string                  `json:"id"`
	Name        string                  `json:"name"`
	Description RichString              `json:"description"`
	Type        string                  `json:"type"`
	Cost        numbers.MaybeImprecise  `json:"cost"`
	Health      numbers.MaybeImprecise  `json:"health"`
	Defense     numbers.MaybeImprecise  `json:"defense"`
	Power       numbers.MaybeImprecise  `json:"power"`
	FlipCost    *numbers.MaybeImprecise `json:"flip_cost,omitempty"`
	Keywords    []Keyword               `json:"keywords,omitempty"`
	Kin         *Kin                    `json:"kin,omitempty"`
	Abilities   []string                `json:"abilities,omitempty"`
	Artists     []string                `json:"artists,omitempty"`
	Set         string                  `json:"set"`
	Legality    map[string]string       `json:"legality,omitempty"`
	Other       []string                `json:"other,omitempty"`
	Functions   []string                `json:"functions,omitempty"`
	FlavorText  string                  `json:"flavor_text,omitempty"`
	Images      []string                `json:"images,omitempty"`
}

func (c *Card) GetNumber(n Number) (numbers.MaybeImprecise, bool) {
	switch n {
	case NumberCost:
		return c.Cost, true
	case NumberFlipCost:
		if c.FlipCost == nil {
			return numbers.MaybeImprecise{}, false
		}
		return *c.FlipCost, true
	case NumberHealth:
		if isCommandType(c.Type) {
			return numbers.MaybeImprecise{}, false
		}
		return c.Health, true
	case NumberPower:
		if isCommandType(c.Type) {
			return numbers.MaybeImprecise{}, false
		}
		return c.Power, true
	case NumberDefense:
		if isCommandType(c.Type) {
			return numbers.MaybeImprecise{}, false
		}
		return c.Defense, true
	default:
		return numbers.MaybeImprecise{}, false
	}
}

func (c *Card) GetText(t Text) (string, bool) {
	switch t {
	case TextID:
		return c.ID, true
	case TextName:
		return c.Name, true
	case TextType:
		return c.Type, true
	case TextDescription:
		return c.Description.PlainText(), true
	case TextFlavorText:
		return c.FlavorText, true
	default:
		return "", false
	}
}

func (c *Card) GetArray(a Array) ([]string, bool) {
	switch a {
	case ArrayFunctions:
		return c.Functions, true
	default:
		return nil, false
	}
}

func (c *Card) GetKeywords() ([]Keyword, bool) { return c.Keywords, true }

func (c *Card) GetKin() (Kin, bool) {
	if c.Kin == nil {
		return Kin{}, false
	}
	return *c.Kin, true
}

// CardSearchResult is a page of search results: the matching cards plus
// whether more results exist beyond this page.
type CardSearchResult struct {
	Cards      []Card `json:"cards"`
	TotalCount int    `json:"total_count"`
	HasMore    bool   `json:"has_more"`
}
