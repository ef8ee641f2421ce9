package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/kmahajan/bahikhata"
	"github.com/kmahajan/bahikhata/renderer"
)

type addCmd struct {
	date        string
	particulars string
	debit       string
	credit      string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add a transaction to the ledger" }
func (*addCmd) Usage() string {
	return `bahikhata add -date <date> -particulars <text> (-debit <amount> | -credit <amount>)

  Validates and appends a transaction. Exactly one of -debit or -credit
  must carry a positive amount.

Usage Examples:
$ bahikhata add -date today -particulars "RENT PAYMENT" -debit 25000
$ bahikhata add -date 18.04.2025 -particulars "SALARY CREDIT" -credit 50000
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "date", bahikhata.Today().String(), "Transaction date. Accepts ISO, DD.MM.YYYY or 'today'.")
	f.StringVar(&c.particulars, "particulars", "", "Transaction description.")
	f.StringVar(&c.debit, "debit", "", "Debit amount (money out).")
	f.StringVar(&c.credit, "credit", "", "Credit amount (money in).")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	tx, err := ledger.Add(bahikhata.Entry{
		Date:        c.date,
		Particulars: c.particulars,
		Debit:       c.debit,
		Credit:      c.credit,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	if err := SaveLedger(ledger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Added %s (id %s)\n", renderer.Transaction(tx), tx.ID)
	return subcommands.ExitSuccess
}
