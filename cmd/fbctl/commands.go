package main

import (
	gocontext "context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/wosadvpro-arch/finance-buddy/internal/core"
	"github.com/wosadvpro-arch/finance-buddy/internal/report"
	"github.com/wosadvpro-arch/finance-buddy/internal/session"
	"github.com/wosadvpro-arch/finance-buddy/internal/storage"
)

type addCmd struct {
	Desc  string `arg:"" required:"" help:"Description."`
	Value string `arg:"" required:"" help:"Amount, e.g. 45.90 or 45,90."`
	Type  string `default:"despesa" help:"Transaction type [receita|despesa]."`
	Cat   string `help:"Category label."`
	Date  string `help:"Date as YYYY-MM-DD (default: today)."`
}

func (a *addCmd) Run(c *context) error {
	return withLedger(c, func(ctx gocontext.Context, m *session.Manager) error {
		date := a.Date
		if date == "" {
			date = core.Today().String()
		}
		tx, err := m.Add(ctx, core.Draft{
			Desc:     a.Desc,
			Type:     a.Type,
			Category: a.Cat,
			Value:    core.DraftValue(a.Value),
			Date:     date,
		})
		if err != nil {
			return err
		}
		fmt.Printf("recorded #%d %s %s %s\n", tx.ID, tx.Date, tx.Desc, tx.Amount)
		return nil
	})
}

type listCmd struct{}

func (l *listCmd) Run(c *context) error {
	return withLedger(c, func(ctx gocontext.Context, m *session.Manager) error {
		txs := m.Transactions()
		if len(txs) == 0 {
			fmt.Println("no transactions")
			return nil
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tDATE\tTYPE\tCATEGORY\tAMOUNT\tDESCRIPTION")
		for _, tx := range txs {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
				tx.ID, tx.Date, tx.Type, tx.Category, tx.Amount, tx.Desc)
		}
		return w.Flush()
	})
}

type removeCmd struct {
	ID int64 `arg:"" required:"" help:"Transaction id."`
}

func (r *removeCmd) Run(c *context) error {
	return withLedger(c, func(ctx gocontext.Context, m *session.Manager) error {
		removed, err := m.Remove(ctx, r.ID)
		if err != nil {
			return err
		}
		if !removed {
			fmt.Printf("no transaction #%d\n", r.ID)
			return nil
		}
		fmt.Printf("removed #%d\n", r.ID)
		return nil
	})
}

type monthlyCmd struct {
	Year int `help:"Calendar year (default: current)."`
}

func (m *monthlyCmd) Run(c *context) error {
	return withLedger(c, func(ctx gocontext.Context, mgr *session.Manager) error {
		agg := report.MonthlyAggregate(mgr.Transactions(), yearOrNow(m.Year))
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "MONTH\tINCOME\tEXPENSE\tNET")
		for _, row := range agg {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				row.Month, cents(row.Income), cents(row.Expense), cents(row.Net))
		}
		return w.Flush()
	})
}

type cashflowCmd struct {
	Month int `arg:"" required:"" help:"Calendar month (1-12)."`
	Year  int `help:"Calendar year (default: current)."`
}

func (cf *cashflowCmd) Run(c *context) error {
	if cf.Month < 1 || cf.Month > 12 {
		return fmt.Errorf("month must be between 1 and 12, got %d", cf.Month)
	}
	return withLedger(c, func(ctx gocontext.Context, m *session.Manager) error {
		rows := report.DailyCashFlow(m.Transactions(), yearOrNow(cf.Year), time.Month(cf.Month))
		if len(rows) == 0 {
			fmt.Println("no activity")
			return nil
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "DAY\tIN\tOUT\tBALANCE")
		for _, row := range rows {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\n",
				row.Day, cents(row.Inflow), cents(row.Outflow), cents(row.Balance))
		}
		return w.Flush()
	})
}

type categoriesCmd struct {
	Type string `default:"despesa" help:"Transaction type [receita|despesa]."`
}

func (cc *categoriesCmd) Run(c *context) error {
	typ, err := core.ParseTxType(cc.Type)
	if err != nil {
		return err
	}
	return withLedger(c, func(ctx gocontext.Context, m *session.Manager) error {
		rows := report.CategoryTotals(m.Transactions(), typ)
		if len(rows) == 0 {
			fmt.Println("no activity")
			return nil
		}
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "CATEGORY\tTOTAL\tSHARE")
		for _, row := range rows {
			fmt.Fprintf(w, "%s\t%s\t%.1f%%\n", row.Name, cents(row.Total), row.Share*100)
		}
		return w.Flush()
	})
}

type summaryCmd struct {
	Months []int `help:"Calendar months to fold (1-12, default: all)."`
	Year   int   `help:"Calendar year (default: current)."`
}

func (s *summaryCmd) Run(c *context) error {
	months := make([]time.Month, 0, 12)
	if len(s.Months) == 0 {
		for m := time.January; m <= time.December; m++ {
			months = append(months, m)
		}
	} else {
		for _, m := range s.Months {
			if m < 1 || m > 12 {
				return fmt.Errorf("month must be between 1 and 12, got %d", m)
			}
			months = append(months, time.Month(m))
		}
	}
	return withLedger(c, func(ctx gocontext.Context, m *session.Manager) error {
		agg := report.MonthlyAggregate(m.Transactions(), yearOrNow(s.Year))
		sum := report.PeriodSummary(agg, months)
		fmt.Printf("income:        %s\n", cents(sum.Income))
		fmt.Printf("expense:       %s\n", cents(sum.Expense))
		fmt.Printf("net:           %s\n", cents(sum.Net))
		fmt.Printf("best month:    %s\n", sum.BestMonth)
		fmt.Printf("expense ratio: %s\n", sum.ExpenseRatio)
		fmt.Printf("savings rate:  %s\n", sum.SavingsRate)
		return nil
	})
}

// withLedger opens the database, switches to the account's ledger and runs fn.
func withLedger(c *context, fn func(gocontext.Context, *session.Manager) error) error {
	db, err := storage.NewSQLite(c.DB)
	if err != nil {
		return err
	}
	defer db.Close()

	ctx := gocontext.Background()
	m := session.NewManager(db, nil)
	if err := m.Switch(ctx, c.Account); err != nil {
		return err
	}
	return fn(ctx, m)
}

func yearOrNow(year int) int {
	if year == 0 {
		return time.Now().Year()
	}
	return year
}

func cents(v int64) string {
	return core.Money{Cents: v}.String()
}
