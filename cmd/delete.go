package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/kmahajan/bahikhata/renderer"
)

type deleteCmd struct {
	yes bool
}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "delete a transaction by its id" }
func (*deleteCmd) Usage() string {
	return `bahikhata delete [-y] <id>

  Removes the transaction with the given id, after confirmation.
`
}

func (c *deleteCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.yes, "y", false, "Do not ask for confirmation.")
}

func (c *deleteCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one transaction id.")
		return subcommands.ExitUsageError
	}
	id := f.Arg(0)

	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if !c.yes {
		var found bool
		for _, tx := range ledger.Transactions() {
			if tx.ID == id {
				found = true
				if !confirm(fmt.Sprintf("Delete %s?", renderer.Transaction(tx))) {
					fmt.Println("Kept.")
					return subcommands.ExitSuccess
				}
				break
			}
		}
		if !found {
			fmt.Fprintf(os.Stderr, "Error: no transaction with id %q.\n", id)
			return subcommands.ExitFailure
		}
	}

	if !ledger.Delete(id) {
		fmt.Fprintf(os.Stderr, "Error: no transaction with id %q.\n", id)
		return subcommands.ExitFailure
	}

	if err := SaveLedger(ledger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Println("Deleted.")
	return subcommands.ExitSuccess
}
