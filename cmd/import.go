package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/kmahajan/bahikhata"
)

type importCmd struct {
	yes bool
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "replace the ledger with a JSON backup" }
func (*importCmd) Usage() string {
	return `bahikhata import [-y] <file>

  Reads a backup document and replaces the current ledger with its
  content. A file that is not a usable backup is rejected and the current
  ledger is left untouched. Transaction ids are regenerated.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.yes, "y", false, "Do not ask for confirmation.")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one backup file.")
		return subcommands.ExitUsageError
	}

	in, err := os.Open(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening backup file: %v\n", err)
		return subcommands.ExitFailure
	}
	defer in.Close()

	imported, err := bahikhata.Import(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	current, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if current.Len() > 0 && !c.yes {
		if !confirm(fmt.Sprintf("Replace the current %d transactions with the %d imported ones?", current.Len(), imported.Len())) {
			fmt.Println("Kept.")
			return subcommands.ExitSuccess
		}
	}

	if err := SaveLedger(imported); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Imported %d transactions for %s\n", imported.Len(), imported.Account().Title())
	return subcommands.ExitSuccess
}
