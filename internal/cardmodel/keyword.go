package cardmodel

import (
	"bytes"
	"encoding/json"
	"errors"
)

// KeywordDataKind discriminates what a keyword's extra payload is: nothing,
// a plain explanatory string, or a full nested card identity (for keywords
// that are themselves miniature cards, e.g. a granted ability).
type KeywordDataKind int

const (
	KeywordDataNone KeywordDataKind = iota
	KeywordDataCardID
	KeywordDataText
)

// KeywordData is a keyword's optional payload.
type KeywordData struct {
	Kind   KeywordDataKind
	CardID *CardID
	Text   string
}

func (d KeywordData) MarshalJSON() ([]byte, error) {
	switch d.Kind {
	case KeywordDataCardID:
		return json.Marshal(struct {
			Type string  `json:"type"`
			Data *CardID `json:"data"`
		}{"CardID", d.CardID})
	case KeywordDataText:
		return json.Marshal(struct {
			Type string `json:"type"`
			Data string `json:"data"`
		}{"String", d.Text})
	default:
		return json.Marshal(nil)
	}
}

func (d *KeywordData) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*d = KeywordData{Kind: KeywordDataNone}
		return nil
	}
	var raw struct {
		Type string          `json:"type"`
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch raw.Type {
	case "CardID":
		var c CardID
		if err := json.Unmarshal(raw.Data, &c); err != nil {
			return err
		}
		*d = KeywordData{Kind: KeywordDataCardID, CardID: &c}
	case "String":
		var s string
		if err := json.Unmarshal(raw.Data, &s); err != nil {
			return err
		}
		*d = KeywordData{Kind: KeywordDataText, Text: s}
	default:
		return errors.New("unrecognized keyword data type " + raw.Type)
	}
	return nil
}

// Keyword is a named game term a card carries, optionally with a payload
// explaining it further.
type Keyword struct {
	Name string       `json:"name"`
	Data *KeywordData `json:"data,omitempty"`
}
