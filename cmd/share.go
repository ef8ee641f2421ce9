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

type shareCmd struct {
	url bool
}

func (*shareCmd) Name() string     { return "share" }
func (*shareCmd) Synopsis() string { return "produce a shareable statement summary" }
func (*shareCmd) Usage() string {
	return `bahikhata share [-url]

  Prints a message-sized statement summary: account, totals, balance
  status and the last five transactions. With -url, prints a wa.me link
  carrying the message instead.
`
}

func (c *shareCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.url, "url", false, "Print a wa.me link instead of the plain text.")
}

func (c *shareCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if ledger.Len() == 0 {
		fmt.Fprintln(os.Stderr, "Error: no transactions to share, add some first.")
		return subcommands.ExitFailure
	}

	s := bahikhata.Statement(ledger)
	if c.url {
		fmt.Println(renderer.ShareURL(s))
	} else {
		fmt.Print(renderer.ShareText(s))
	}
	return subcommands.ExitSuccess
}
