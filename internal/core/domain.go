package core

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	// Income and Expense are the only transaction types. The wire values
	// ("receita"/"despesa") are kept stable because persisted snapshots and
	// API clients depend on them.
	Income  TxType = "receita"
	Expense TxType = "despesa"
)

type (
	TxType string

	// Date is a calendar date with no time component and no timezone.
	Date struct {
		time.Time
	}

	// Transaction is a single dated, typed, valued financial record. Amount
	// is always positive; the sign of its contribution to any total is
	// derived from Type.
	Transaction struct {
		ID       int64  `json:"id"`
		Type     TxType `json:"type"`
		Desc     string `json:"desc"`
		Category string `json:"cat"`
		Amount   Money  `json:"value_cents"`
		Date     Date   `json:"date"`
	}
)

var (
	ErrInvalidType      = errors.New("invalid transaction type")
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrInvalidDate      = errors.New("invalid date")
	ErrEmptyDescription = errors.New("empty description")
	ErrDescriptionSize  = errors.New("description too long (max 200 characters)")
)

// ParseTxType validates a wire-format transaction type.
func ParseTxType(s string) (TxType, error) {
	switch TxType(strings.TrimSpace(s)) {
	case Income:
		return Income, nil
	case Expense:
		return Expense, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidType, s)
	}
}

func (t TxType) Valid() bool {
	return t == Income || t == Expense
}

// NewDate creates a Date from year, month, day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a "YYYY-MM-DD" string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(s))
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return Date{Time: t}, nil
}

// Today returns the current local calendar date.
func Today() Date {
	now := time.Now()
	return NewDate(now.Year(), now.Month(), now.Day())
}

func (d Date) Validate() error {
	if d.IsZero() {
		return ErrInvalidDate
	}
	return nil
}

func (d Date) String() string {
	return d.Format("2006-01-02")
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Year returns the calendar year.
func (d Date) Year() int {
	return d.Time.Year()
}

// Month returns the calendar month.
func (d Date) Month() time.Month {
	return d.Time.Month()
}

// Day returns the day of the month.
func (d Date) Day() int {
	return d.Time.Day()
}

func (tx Transaction) Validate() error {
	if !tx.Type.Valid() {
		return ErrInvalidType
	}
	if len(strings.TrimSpace(tx.Desc)) == 0 {
		return ErrEmptyDescription
	}
	if len(tx.Desc) > 200 {
		return ErrDescriptionSize
	}
	if err := tx.Amount.Validate(); err != nil {
		return err
	}
	return tx.Date.Validate()
}

// Signed returns the transaction's contribution to a net total in cents:
// positive for income, negative for expense.
func (tx Transaction) Signed() int64 {
	if tx.Type == Expense {
		return -tx.Amount.Cents
	}
	return tx.Amount.Cents
}
