package core

import (
	"encoding/json"
	"strings"
)

// DraftValue is the raw amount field of a Draft. Clients send it either as a
// JSON string ("45.90") or as a bare number (45.9); both decode to the same
// textual form and go through ParseAmount unchanged.
type DraftValue string

func (v *DraftValue) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*v = DraftValue(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*v = DraftValue(n.String())
	return nil
}

// Draft is the raw transaction input produced by the UI layer or by the
// free-text parser. ParseDraft coerces and validates the fields into
// Transaction fields.
type Draft struct {
	Desc     string     `json:"desc"`
	Type     string     `json:"type"`
	Category string     `json:"cat"`
	Value    DraftValue `json:"value"`
	Date     string     `json:"date"`
}

// ParseDraft turns a Draft into an unidentified Transaction (ID zero).
// The first failing field wins; the order matches the form layout.
func ParseDraft(d Draft) (Transaction, error) {
	typ, err := ParseTxType(d.Type)
	if err != nil {
		return Transaction{}, err
	}
	desc := strings.TrimSpace(d.Desc)
	if desc == "" {
		return Transaction{}, ErrEmptyDescription
	}
	amount, err := ParseAmount(string(d.Value))
	if err != nil {
		return Transaction{}, err
	}
	date, err := ParseDate(d.Date)
	if err != nil {
		return Transaction{}, err
	}
	tx := Transaction{
		Type:     typ,
		Desc:     desc,
		Category: strings.TrimSpace(d.Category),
		Amount:   amount,
		Date:     date,
	}
	if err := tx.Validate(); err != nil {
		return Transaction{}, err
	}
	return tx, nil
}

// Patch is a partial transaction edit. Nil fields are left untouched.
type Patch struct {
	Desc     *string
	Type     *TxType
	Category *string
	Value    *string
	Date     *string
}

// Apply merges the patch into a copy of tx. The result is not validated;
// callers validate the merged record before storing it.
func (p Patch) Apply(tx Transaction) (Transaction, error) {
	if p.Desc != nil {
		tx.Desc = strings.TrimSpace(*p.Desc)
	}
	if p.Type != nil {
		tx.Type = *p.Type
	}
	if p.Category != nil {
		tx.Category = strings.TrimSpace(*p.Category)
	}
	if p.Value != nil {
		amount, err := ParseAmount(*p.Value)
		if err != nil {
			return Transaction{}, err
		}
		tx.Amount = amount
	}
	if p.Date != nil {
		date, err := ParseDate(*p.Date)
		if err != nil {
			return Transaction{}, err
		}
		tx.Date = date
	}
	return tx, nil
}
