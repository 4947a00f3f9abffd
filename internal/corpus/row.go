package corpus

import (
	"encoding/json"
	"time"

	"github.com/duskwarden/hemosearch/internal/cardmodel"
)

// row is the GORM-persisted shape of a cardmodel.Card: the handful of
// fields worth their own indexed column, plus the rest of the card
// (keywords, kin, rich description, legality, flip cost, and so on)
// flattened into one JSON document.
type row struct {
	ID        string    `gorm:"primaryKey"`
	Name      string    `gorm:"not null;index"`
	Type      string    `gorm:"index"`
	Set       string    `gorm:"index"`
	Document  string    `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (row) TableName() string { return "cards" }

func toRow(c *cardmodel.Card) (row, error) {
	doc, err := json.Marshal(c)
	if err != nil {
		return row{}, err
	}
	return row{
		ID:       c.ID,
		Name:     c.Name,
		Type:     c.Type,
		Set:      c.Set,
		Document: string(doc),
	}, nil
}

func fromRow(r *row) (cardmodel.Card, error) {
	var c cardmodel.Card
	if err := json.Unmarshal([]byte(r.Document), &c); err != nil {
		return cardmodel.Card{}, err
	}
	// The indexed columns are authoritative over whatever the document
	// carried, in case a manual row edit ever touches them directly.
	c.ID, c.Name, c.Type, c.Set = r.ID, r.Name, r.Type, r.Set
	return c, nil
}
