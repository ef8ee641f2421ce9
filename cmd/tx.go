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

type txCmd struct {
	head int
	tail int
	ids  bool
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "display the account statement" }
func (*txCmd) Usage() string {
	return `bahikhata tx [-head <n> | -tail <n>] [-ids]

  Renders the statement: transactions sorted by date with the running
  balance. Use -head or -tail to limit the rows shown.
`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.head, "head", 0, "Show only the first N rows.")
	f.IntVar(&c.tail, "tail", 0, "Show only the last N rows.")
	f.BoolVar(&c.ids, "ids", false, "Also list transaction ids, for delete.")
}

func (c *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.head > 0 && c.tail > 0 {
		fmt.Fprintln(os.Stderr, "Error: -head and -tail flags cannot be used together.")
		return subcommands.ExitUsageError
	}

	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	s := bahikhata.Statement(ledger)
	if c.head > 0 && len(s.Rows) > c.head {
		s.Rows = s.Rows[:c.head]
	}
	if c.tail > 0 && len(s.Rows) > c.tail {
		s.Rows = s.Rows[len(s.Rows)-c.tail:]
	}

	printMarkdown(renderer.StatementMarkdown(s))

	if c.ids {
		for _, tx := range ledger.Transactions() {
			fmt.Printf("%s  %s\n", tx.ID, renderer.Transaction(tx))
		}
	}
	return subcommands.ExitSuccess
}
