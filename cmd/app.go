// Package cmd implements the CLI application to keep an account statement.
package cmd

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/kmahajan/bahikhata"
)

// Commands lists every subcommand. A main package registers them all and
// executes the user-selected one.
var Commands = []subcommands.Command{
	&accountCmd{},
	&addCmd{},
	&deleteCmd{},
	&clearCmd{},
	&txCmd{},
	&summaryCmd{},
	&sampleCmd{},
	&exportCmd{},
	&importCmd{},
	&shareCmd{},
	&assistCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var ledgerFile = flag.String("ledger-file", "ledger.json", "Path to the ledger file (JSON backup format)")

// DecodeLedger loads the app ledger file. A missing file is not an error,
// the app starts with an empty ledger.
func DecodeLedger() (*bahikhata.Ledger, error) {
	f, err := os.Open(*ledgerFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("warning, ledger file does not exist, starting with an empty ledger")
		return bahikhata.NewLedger(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot open ledger file %q: %w", *ledgerFile, err)
	}
	defer f.Close()

	l, err := bahikhata.DecodeLedger(f)
	if err != nil {
		return nil, fmt.Errorf("cannot decode ledger file %q: %w", *ledgerFile, err)
	}
	return l, nil
}

// SaveLedger writes the ledger back to the app ledger file.
func SaveLedger(l *bahikhata.Ledger) error {
	f, err := os.Create(*ledgerFile)
	if err != nil {
		return fmt.Errorf("cannot write ledger file %q: %w", *ledgerFile, err)
	}
	defer f.Close()

	if err := bahikhata.Export(f, l); err != nil {
		return fmt.Errorf("cannot save ledger file %q: %w", *ledgerFile, err)
	}
	return nil
}

// printMarkdown renders markdown for the terminal. When rendering fails the
// raw markdown is still readable, so print it as-is.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

// confirm asks the user a yes/no question on the terminal. Anything but an
// explicit yes declines.
func confirm(prompt string) bool {
	fmt.Printf("%s [y/N]: ", prompt)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
