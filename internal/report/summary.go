package report

import (
	"strconv"
	"time"
)

// Ratio is a health indicator that may be undefined. Dividing by a zero
// income yields Defined == false, never NaN or Inf; the UI shows a dash.
type Ratio struct {
	Value   float64 `json:"value"`
	Defined bool    `json:"defined"`
}

func (r Ratio) String() string {
	if !r.Defined {
		return "—"
	}
	return strconv.FormatFloat(r.Value*100, 'f', 1, 64) + "%"
}

// ExpenseRatio is despesas/receitas, undefined when income is zero.
func ExpenseRatio(incomeCents, expenseCents int64) Ratio {
	if incomeCents == 0 {
		return Ratio{}
	}
	return Ratio{Value: float64(expenseCents) / float64(incomeCents), Defined: true}
}

// SavingsRate is saldo/receitas, undefined when income is zero. It holds for
// any expense value including zero.
func SavingsRate(incomeCents, expenseCents int64) Ratio {
	if incomeCents == 0 {
		return Ratio{}
	}
	return Ratio{Value: float64(incomeCents-expenseCents) / float64(incomeCents), Defined: true}
}

// PeriodTotal sums a multi-month comparison set.
type PeriodTotal struct {
	Months       []time.Month `json:"months"`
	Income       int64        `json:"income_cents"`
	Expense      int64        `json:"expense_cents"`
	Net          int64        `json:"net_cents"`
	BestMonth    time.Month   `json:"best_month"`
	ExpenseRatio Ratio        `json:"expense_ratio"`
	SavingsRate  Ratio        `json:"savings_rate"`
}

// PeriodSummary folds the selected months of a yearly aggregate into one
// comparison row. BestMonth is the selected month with the highest net;
// the first one wins on ties.
func PeriodSummary(agg [12]MonthTotal, months []time.Month) PeriodTotal {
	out := PeriodTotal{Months: append([]time.Month(nil), months...)}
	first := true
	var bestNet int64
	for _, m := range months {
		if m < time.January || m > time.December {
			continue
		}
		row := agg[int(m)-1]
		out.Income += row.Income
		out.Expense += row.Expense
		if first || row.Net > bestNet {
			out.BestMonth = m
			bestNet = row.Net
			first = false
		}
	}
	out.Net = out.Income - out.Expense
	out.ExpenseRatio = ExpenseRatio(out.Income, out.Expense)
	out.SavingsRate = SavingsRate(out.Income, out.Expense)
	return out
}
