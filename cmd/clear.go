package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type clearCmd struct {
	yes bool
}

func (*clearCmd) Name() string     { return "clear" }
func (*clearCmd) Synopsis() string { return "delete every transaction in the ledger" }
func (*clearCmd) Usage() string {
	return `bahikhata clear [-y]

  Removes all transactions. The account holder and location are kept.
  This cannot be undone; export a backup first if in doubt.
`
}

func (c *clearCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.yes, "y", false, "Do not ask for confirmation.")
}

func (c *clearCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if ledger.Len() == 0 {
		fmt.Println("Ledger is already empty.")
		return subcommands.ExitSuccess
	}

	if !c.yes && !confirm(fmt.Sprintf("Delete all %d transactions?", ledger.Len())) {
		fmt.Println("Kept.")
		return subcommands.ExitSuccess
	}

	ledger.Clear()

	if err := SaveLedger(ledger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Println("Cleared.")
	return subcommands.ExitSuccess
}
