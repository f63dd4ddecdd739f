package core

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseTxType(t *testing.T) {
	cases := []struct {
		in   string
		want TxType
		ok   bool
	}{
		{"receita", Income, true},
		{"despesa", Expense, true},
		{" receita ", Income, true},
		{"", "", false},
		{"transfer", "", false},
	}
	for i, tc := range cases {
		got, err := ParseTxType(tc.in)
		if tc.ok && (err != nil || got != tc.want) {
			t.Fatalf("case %d: got %q, %v", i, got, err)
		}
		if !tc.ok && err == nil {
			t.Fatalf("case %d: expected error", i)
		}
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-06-01")
	if err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if d.Year() != 2024 || d.Month() != time.June || d.Day() != 1 {
		t.Fatalf("unexpected date %v", d)
	}
	for _, bad := range []string{"", "2024-13-01", "01/06/2024", "2024-06-01T00:00:00Z"} {
		if _, err := ParseDate(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}

func TestTransactionValidate(t *testing.T) {
	good := Transaction{
		Type:     Income,
		Desc:     "Salário",
		Category: "Renda",
		Amount:   Money{Cents: 520000},
		Date:     NewDate(2024, time.June, 1),
	}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	bads := []Transaction{
		{Type: "other", Desc: "a", Amount: Money{Cents: 1}, Date: NewDate(2024, time.June, 1)},
		{Type: Income, Desc: "  ", Amount: Money{Cents: 1}, Date: NewDate(2024, time.June, 1)},
		{Type: Income, Desc: "a", Amount: Money{Cents: 0}, Date: NewDate(2024, time.June, 1)},
		{Type: Income, Desc: "a", Amount: Money{Cents: 1}, Date: Date{}},
	}
	for i, tx := range bads {
		if err := tx.Validate(); err == nil {
			t.Fatalf("case %d: expected error", i)
		}
	}
}

func TestTransactionSigned(t *testing.T) {
	in := Transaction{Type: Income, Amount: Money{Cents: 500}}
	out := Transaction{Type: Expense, Amount: Money{Cents: 300}}
	if in.Signed() != 500 {
		t.Fatalf("income signed = %d", in.Signed())
	}
	if out.Signed() != -300 {
		t.Fatalf("expense signed = %d", out.Signed())
	}
}

func TestParseDraft(t *testing.T) {
	tx, err := ParseDraft(Draft{
		Desc: "Supermercado", Type: "despesa", Category: "Alimentação",
		Value: "420", Date: "2024-06-03",
	})
	if err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if tx.Amount.Cents != 42000 || tx.Type != Expense {
		t.Fatalf("unexpected transaction %+v", tx)
	}

	bads := []Draft{
		{Desc: "", Type: "despesa", Value: "10", Date: "2024-06-03"},
		{Desc: "a", Type: "despesa", Value: "0", Date: "2024-06-03"},
		{Desc: "a", Type: "despesa", Value: "-5", Date: "2024-06-03"},
		{Desc: "a", Type: "despesa", Value: "abc", Date: "2024-06-03"},
		{Desc: "a", Type: "despesa", Value: "10", Date: ""},
		{Desc: "a", Type: "", Value: "10", Date: "2024-06-03"},
	}
	for i, d := range bads {
		if _, err := ParseDraft(d); err == nil {
			t.Fatalf("case %d: expected error", i)
		}
	}
}

func TestDraftValueDecodesStringsAndNumbers(t *testing.T) {
	cases := []struct {
		in    string
		value DraftValue
		ok    bool
	}{
		{`{"value":"45.90"}`, "45.90", true},
		{`{"value":45.9}`, "45.9", true},
		{`{"value":5000}`, "5000", true},
		{`{"value":true}`, "", false},
		{`{"value":["45"]}`, "", false},
	}
	for i, tc := range cases {
		var d Draft
		err := json.Unmarshal([]byte(tc.in), &d)
		if tc.ok {
			if err != nil {
				t.Fatalf("case %d: expected ok, got %v", i, err)
			}
			if d.Value != tc.value {
				t.Fatalf("case %d: got %q, want %q", i, d.Value, tc.value)
			}
			continue
		}
		if err == nil {
			t.Fatalf("case %d: expected error", i)
		}
	}
}

func TestPatchApply(t *testing.T) {
	base := Transaction{
		ID: 7, Type: Expense, Desc: "Uber", Category: "Transporte",
		Amount: Money{Cents: 8500}, Date: NewDate(2024, time.June, 6),
	}
	val := "300"
	merged, err := Patch{Value: &val}.Apply(base)
	if err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if merged.Amount.Cents != 30000 || merged.Desc != "Uber" || merged.ID != 7 {
		t.Fatalf("unexpected merge %+v", merged)
	}

	badVal := "zero"
	if _, err := (Patch{Value: &badVal}).Apply(base); err == nil {
		t.Fatal("expected error for non-numeric value")
	}
}
