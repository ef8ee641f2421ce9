package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/kmahajan/bahikhata"
)

type sampleCmd struct {
	yes bool
}

func (*sampleCmd) Name() string     { return "sample" }
func (*sampleCmd) Synopsis() string { return "replace the ledger with the demo statement" }
func (*sampleCmd) Usage() string {
	return `bahikhata sample [-y]

  Replaces the current ledger with the built-in demo statement, useful to
  try the other commands on realistic data.
`
}

func (c *sampleCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.yes, "y", false, "Do not ask for confirmation.")
}

func (c *sampleCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	current, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if current.Len() > 0 && !c.yes {
		if !confirm(fmt.Sprintf("Replace the current %d transactions with the sample?", current.Len())) {
			fmt.Println("Kept.")
			return subcommands.ExitSuccess
		}
	}

	ledger := bahikhata.SampleLedger()
	if err := SaveLedger(ledger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Loaded sample statement for %s with %d transactions.\n", ledger.Account().Title(), ledger.Len())
	return subcommands.ExitSuccess
}
