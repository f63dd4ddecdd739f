// Package report derives read-only summary views from a ledger snapshot.
// Every function here is pure: the same transaction slice and parameters
// always produce the same output, regardless of slice ordering.
package report

import (
	"sort"
	"time"

	"github.com/wosadvpro-arch/finance-buddy/internal/core"
)

// MonthTotal is one row of the yearly overview. Net may be negative.
type MonthTotal struct {
	Month   time.Month `json:"month"`
	Income  int64      `json:"income_cents"`
	Expense int64      `json:"expense_cents"`
	Net     int64      `json:"net_cents"`
}

// DayFlow is one row of the daily cash-flow view: a day of the month that
// had at least one transaction, plus the running balance up to that day.
type DayFlow struct {
	Day     int   `json:"day"`
	Inflow  int64 `json:"inflow_cents"`
	Outflow int64 `json:"outflow_cents"`
	Balance int64 `json:"balance_cents"`
}

// CategoryTotal is one row of the per-category breakdown. Share is the
// fraction of the type's grand total, in [0, 1].
type CategoryTotal struct {
	Name  string  `json:"name"`
	Total int64   `json:"total_cents"`
	Share float64 `json:"share"`
}

// MonthlyAggregate buckets the given year's transactions by calendar month.
// It always returns exactly 12 entries; months without activity are all-zero
// rows, and transactions outside the year are excluded entirely.
func MonthlyAggregate(txs []core.Transaction, year int) [12]MonthTotal {
	var out [12]MonthTotal
	for i := range out {
		out[i].Month = time.Month(i + 1)
	}
	for _, tx := range txs {
		if tx.Date.Year() != year {
			continue
		}
		row := &out[int(tx.Date.Month())-1]
		switch tx.Type {
		case core.Income:
			row.Income += tx.Amount.Cents
		case core.Expense:
			row.Expense += tx.Amount.Cents
		}
	}
	for i := range out {
		out[i].Net = out[i].Income - out[i].Expense
	}
	return out
}

// DailyCashFlow computes per-day inflow/outflow for one month plus a running
// balance scanned in day order starting from zero. Only days with activity
// appear; a month without transactions yields an empty slice, which the
// caller renders as an explicit "no data" state. The balance is not clamped
// and may go negative. Unlike MonthlyAggregate, quiet days are never
// synthesized as zero rows.
func DailyCashFlow(txs []core.Transaction, year int, month time.Month) []DayFlow {
	byDay := make(map[int]*DayFlow)
	for _, tx := range txs {
		if tx.Date.Year() != year || tx.Date.Month() != month {
			continue
		}
		day := tx.Date.Day()
		row, ok := byDay[day]
		if !ok {
			row = &DayFlow{Day: day}
			byDay[day] = row
		}
		switch tx.Type {
		case core.Income:
			row.Inflow += tx.Amount.Cents
		case core.Expense:
			row.Outflow += tx.Amount.Cents
		}
	}
	if len(byDay) == 0 {
		return []DayFlow{}
	}
	out := make([]DayFlow, 0, len(byDay))
	for _, row := range byDay {
		out = append(out, *row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day < out[j].Day })
	var balance int64
	for i := range out {
		balance += out[i].Inflow - out[i].Outflow
		out[i].Balance = balance
	}
	return out
}

// CategoryTotals sums amounts of the given type grouped by category label,
// sorted descending by total. Ties keep first-seen category order. When the
// type has no transactions the result is empty and no shares are computed.
func CategoryTotals(txs []core.Transaction, typ core.TxType) []CategoryTotal {
	order := make(map[string]int)
	var out []CategoryTotal
	var grand int64
	for _, tx := range txs {
		if tx.Type != typ {
			continue
		}
		idx, ok := order[tx.Category]
		if !ok {
			idx = len(out)
			order[tx.Category] = idx
			out = append(out, CategoryTotal{Name: tx.Category})
		}
		out[idx].Total += tx.Amount.Cents
		grand += tx.Amount.Cents
	}
	if grand == 0 {
		return []CategoryTotal{}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Total > out[j].Total })
	for i := range out {
		out[i].Share = float64(out[i].Total) / float64(grand)
	}
	return out
}
