package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type accountCmd struct {
	holder   string
	location string
}

func (*accountCmd) Name() string     { return "account" }
func (*accountCmd) Synopsis() string { return "set the account holder name and location" }
func (*accountCmd) Usage() string {
	return `bahikhata account [-holder <name>] [-location <place>]

  Sets the account holder and location shown on the statement heading.
  A flag left out keeps the current value.
`
}

func (c *accountCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.holder, "holder", "", "Account holder full name.")
	f.StringVar(&c.location, "location", "", "Account location (city or place).")
}

func (c *accountCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.holder == "" && c.location == "" {
		fmt.Fprintln(os.Stderr, "Error: nothing to set, pass -holder or -location.")
		return subcommands.ExitUsageError
	}

	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	ledger.SetAccount(c.holder, c.location)

	if err := SaveLedger(ledger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Account set to %s\n", ledger.Account().Title())
	return subcommands.ExitSuccess
}
