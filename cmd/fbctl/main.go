/*Basic command structure*/
package main

import (
	"github.com/alecthomas/kong"
)

// context holds global options
type context struct {
	Account string `required:"" help:"Account email whose ledger to operate on."`
	DB      string `name:"db" default:"./data/financebuddy.db" help:"SQLite database path."`
}

// cli commands / args available
var cli struct {
	Ctx context `embed:""`

	Add        addCmd        `cmd:"" help:"Record a transaction."`
	List       listCmd       `cmd:"" help:"List the ledger's transactions."`
	Remove     removeCmd     `cmd:"" help:"Remove a transaction by id."`
	Monthly    monthlyCmd    `cmd:"" help:"Show the 12-month income/expense overview."`
	Cashflow   cashflowCmd   `cmd:"" help:"Show the daily cash flow of one month."`
	Categories categoriesCmd `cmd:"" help:"Show per-category totals."`
	Summary    summaryCmd    `cmd:"" help:"Summarize a set of months."`
}

func main() {
	ctx := kong.Parse(&cli)
	err := ctx.Run(&cli.Ctx)
	ctx.FatalIfErrorf(err)
}
