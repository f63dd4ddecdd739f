package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wosadvpro-arch/finance-buddy/internal/core"
)

func tx(id int64, typ core.TxType, cat string, cents int64, date string) core.Transaction {
	d, err := core.ParseDate(date)
	if err != nil {
		panic(err)
	}
	return core.Transaction{ID: id, Type: typ, Desc: "tx", Category: cat, Amount: core.Money{Cents: cents}, Date: d}
}

func juneSample() []core.Transaction {
	return []core.Transaction{
		tx(1, core.Income, "Renda", 500000, "2024-06-01"),
		tx(2, core.Expense, "Moradia", 180000, "2024-06-02"),
		tx(3, core.Expense, "Alimentação", 40000, "2024-06-03"),
	}
}

func TestMonthlyAggregateAlwaysTwelveEntries(t *testing.T) {
	agg := MonthlyAggregate(nil, 2024)
	require.Len(t, agg[:], 12)
	for i, row := range agg {
		assert.Equal(t, time.Month(i+1), row.Month)
		assert.Zero(t, row.Income)
		assert.Zero(t, row.Expense)
		assert.Zero(t, row.Net)
	}
}

func TestMonthlyAggregateScenario(t *testing.T) {
	agg := MonthlyAggregate(juneSample(), 2024)
	june := agg[5]
	assert.EqualValues(t, 500000, june.Income)
	assert.EqualValues(t, 220000, june.Expense)
	assert.EqualValues(t, 280000, june.Net)
}

func TestMonthlyAggregateExcludesOtherYears(t *testing.T) {
	txs := append(juneSample(),
		tx(4, core.Income, "Renda", 999900, "2023-06-01"),
		tx(5, core.Expense, "Lazer", 5000, "2025-01-15"),
	)
	agg := MonthlyAggregate(txs, 2024)
	var income, expense int64
	for _, row := range agg {
		income += row.Income
		expense += row.Expense
	}
	assert.EqualValues(t, 500000, income)
	assert.EqualValues(t, 220000, expense)
}

func TestMonthlyAggregateTotalsMatchLedgerSums(t *testing.T) {
	txs := []core.Transaction{
		tx(1, core.Income, "Renda", 420000, "2024-01-10"),
		tx(2, core.Income, "Renda Extra", 100000, "2024-03-05"),
		tx(3, core.Expense, "Moradia", 310000, "2024-01-02"),
		tx(4, core.Expense, "Transporte", 8500, "2024-07-21"),
		tx(5, core.Income, "Investimentos", 38000, "2024-12-31"),
	}
	agg := MonthlyAggregate(txs, 2024)
	var income, expense int64
	for _, row := range agg {
		income += row.Income
		expense += row.Expense
	}
	assert.EqualValues(t, 420000+100000+38000, income)
	assert.EqualValues(t, 310000+8500, expense)
}

func TestDailyCashFlowScenario(t *testing.T) {
	flow := DailyCashFlow(juneSample(), 2024, time.June)
	require.Len(t, flow, 3)

	assert.Equal(t, []DayFlow{
		{Day: 1, Inflow: 500000, Outflow: 0, Balance: 500000},
		{Day: 2, Inflow: 0, Outflow: 180000, Balance: 320000},
		{Day: 3, Inflow: 0, Outflow: 40000, Balance: 280000},
	}, flow)
}

func TestDailyCashFlowEmptyMonthIsEmptySequence(t *testing.T) {
	flow := DailyCashFlow(juneSample(), 2024, time.July)
	require.NotNil(t, flow)
	assert.Len(t, flow, 0)
}

func TestDailyCashFlowOmitsQuietDays(t *testing.T) {
	// Activity on days 1 and 15 only: exactly two rows, never zero-filled;
	// the deliberate asymmetry with the always-dense monthly view.
	txs := []core.Transaction{
		tx(1, core.Income, "Renda", 100000, "2024-06-01"),
		tx(2, core.Expense, "Lazer", 25000, "2024-06-15"),
	}
	flow := DailyCashFlow(txs, 2024, time.June)
	require.Len(t, flow, 2)
	assert.Equal(t, 1, flow[0].Day)
	assert.Equal(t, 15, flow[1].Day)

	agg := MonthlyAggregate(txs, 2024)
	assert.Len(t, agg[:], 12)
}

func TestDailyCashFlowRunningBalanceIsPrefixSum(t *testing.T) {
	txs := []core.Transaction{
		tx(1, core.Expense, "Moradia", 180000, "2024-06-02"),
		tx(2, core.Income, "Renda", 500000, "2024-06-01"),
		tx(3, core.Expense, "Mercado", 700000, "2024-06-10"),
		tx(4, core.Income, "Extra", 30000, "2024-06-10"),
	}
	flow := DailyCashFlow(txs, 2024, time.June)
	var prev int64
	for i, row := range flow {
		assert.Equal(t, prev+row.Inflow-row.Outflow, row.Balance, "row %d", i)
		prev = row.Balance
	}
	// May legitimately go negative, never clamped.
	assert.EqualValues(t, -350000, flow[len(flow)-1].Balance)
}

func TestDailyCashFlowGroupsSameDay(t *testing.T) {
	txs := []core.Transaction{
		tx(1, core.Expense, "Bar", 4500, "2024-06-07"),
		tx(2, core.Expense, "Cinema", 3000, "2024-06-07"),
		tx(3, core.Income, "Renda", 10000, "2024-06-07"),
	}
	flow := DailyCashFlow(txs, 2024, time.June)
	require.Len(t, flow, 1)
	assert.EqualValues(t, 10000, flow[0].Inflow)
	assert.EqualValues(t, 7500, flow[0].Outflow)
	assert.EqualValues(t, 2500, flow[0].Balance)
}

func TestCategoryTotalsSortedDescending(t *testing.T) {
	txs := []core.Transaction{
		tx(1, core.Expense, "Transporte", 8500, "2024-06-06"),
		tx(2, core.Expense, "Moradia", 180000, "2024-06-02"),
		tx(3, core.Expense, "Alimentação", 42000, "2024-06-03"),
		tx(4, core.Expense, "Transporte", 2000, "2024-06-09"),
		tx(5, core.Income, "Renda", 520000, "2024-06-01"),
	}
	totals := CategoryTotals(txs, core.Expense)
	require.Len(t, totals, 3)
	assert.Equal(t, "Moradia", totals[0].Name)
	assert.Equal(t, "Alimentação", totals[1].Name)
	assert.Equal(t, "Transporte", totals[2].Name)
	for i := 1; i < len(totals); i++ {
		assert.GreaterOrEqual(t, totals[i-1].Total, totals[i].Total)
	}

	var shares float64
	for _, ct := range totals {
		shares += ct.Share
	}
	assert.InDelta(t, 1.0, shares, 1e-9)
}

func TestCategoryTotalsTiesKeepFirstSeenOrder(t *testing.T) {
	txs := []core.Transaction{
		tx(1, core.Expense, "Lazer", 5000, "2024-06-01"),
		tx(2, core.Expense, "Saúde", 5000, "2024-06-02"),
	}
	totals := CategoryTotals(txs, core.Expense)
	require.Len(t, totals, 2)
	assert.Equal(t, "Lazer", totals[0].Name)
	assert.Equal(t, "Saúde", totals[1].Name)
}

func TestCategoryTotalsEmptyInput(t *testing.T) {
	totals := CategoryTotals(nil, core.Expense)
	require.NotNil(t, totals)
	assert.Len(t, totals, 0)

	// Only income present: expense breakdown stays empty, no zero division.
	totals = CategoryTotals([]core.Transaction{
		tx(1, core.Income, "Renda", 100, "2024-06-01"),
	}, core.Expense)
	assert.Len(t, totals, 0)
}

func TestRatiosUndefinedOnZeroIncome(t *testing.T) {
	for _, expense := range []int64{0, 100, 999999} {
		assert.False(t, ExpenseRatio(0, expense).Defined, "expense=%d", expense)
		assert.False(t, SavingsRate(0, expense).Defined, "expense=%d", expense)
	}
	assert.Equal(t, "—", ExpenseRatio(0, 100).String())

	r := ExpenseRatio(500000, 220000)
	require.True(t, r.Defined)
	assert.InDelta(t, 0.44, r.Value, 1e-9)

	s := SavingsRate(500000, 220000)
	require.True(t, s.Defined)
	assert.InDelta(t, 0.56, s.Value, 1e-9)
}

func TestPeriodSummary(t *testing.T) {
	txs := []core.Transaction{
		tx(1, core.Income, "Renda", 420000, "2024-01-10"),
		tx(2, core.Expense, "Moradia", 310000, "2024-01-02"),
		tx(3, core.Income, "Renda", 510000, "2024-03-05"),
		tx(4, core.Expense, "Moradia", 340000, "2024-03-09"),
		tx(5, core.Income, "Renda", 380000, "2024-02-01"),
		tx(6, core.Expense, "Moradia", 290000, "2024-02-02"),
	}
	agg := MonthlyAggregate(txs, 2024)
	sum := PeriodSummary(agg, []time.Month{time.January, time.March})
	assert.EqualValues(t, 930000, sum.Income)
	assert.EqualValues(t, 650000, sum.Expense)
	assert.EqualValues(t, 280000, sum.Net)
	assert.Equal(t, time.March, sum.BestMonth)
	assert.True(t, sum.ExpenseRatio.Defined)

	empty := PeriodSummary(MonthlyAggregate(nil, 2024), []time.Month{time.May})
	assert.False(t, empty.ExpenseRatio.Defined)
	assert.False(t, empty.SavingsRate.Defined)
}
