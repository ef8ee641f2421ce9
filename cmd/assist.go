package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/google/subcommands"
	"github.com/kmahajan/bahikhata"
	"github.com/kmahajan/bahikhata/extract"
	"github.com/kmahajan/bahikhata/renderer"
)

type assistCmd struct{}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "turn free text into ledger entries" }
func (*assistCmd) Usage() string {
	return `bahikhata assist

  Starts a prompt loop. Each line, such as a voice transcript, is turned
  into entry fields with Gemini (set GEMINI_API_KEY) or, when the API is
  unavailable, with local pattern matching. Fields accumulate in a
  pending entry; say "add entry" to append it to the ledger, "clear
  form" to discard it. Type quit to leave.
`
}

func (*assistCmd) SetFlags(_ *flag.FlagSet) {}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	svc := &extract.Service{Fallback: &extract.Fallback{}}
	if remote, err := extract.NewGemini(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "warning: Gemini unavailable, using local patterns only:", err)
	} else {
		svc.Remote = remote
	}

	session := &assistSession{ledger: ledger, service: svc}

	fmt.Println("Describe a transaction, or say 'add entry', 'clear form', 'load sample'. Type quit to leave.")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			break
		}
		// Extraction runs off the loop so a slow API call does not block
		// the next line; the guard discards a result that a later line
		// has already superseded.
		ticket := session.guard.Begin()
		session.wg.Add(1)
		go session.process(ctx, line, ticket)
	}
	session.wg.Wait()
	return subcommands.ExitSuccess
}

// assistSession is the state of one assist loop: the ledger, the pending
// entry being filled, and the guard that orders concurrent extractions.
type assistSession struct {
	service *extract.Service
	guard   extract.Guard
	wg      sync.WaitGroup

	mu      sync.Mutex
	ledger  *bahikhata.Ledger
	pending bahikhata.Entry
}

func (s *assistSession) process(ctx context.Context, line string, ticket uint64) {
	defer s.wg.Done()

	rec, err := s.service.Extract(ctx, line)
	if err != nil {
		fmt.Println("Could not extract anything from that, try being more specific.")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.guard.Current(ticket) {
		return
	}

	changed := false
	if rec.AccountHolder != "" || rec.Location != "" {
		s.ledger.SetAccount(rec.AccountHolder, rec.Location)
		changed = true
	}
	rec.Merge(&s.pending)
	if fields := rec.Fields(); len(fields) > 0 {
		fmt.Printf("Applied: %s\n", strings.Join(fields, ", "))
	}

	switch rec.Action {
	case extract.ActionAddEntry:
		tx, err := s.ledger.Add(s.pending)
		if err != nil {
			fmt.Printf("Entry not added: %v\n", err)
			return
		}
		s.pending = bahikhata.Entry{}
		changed = true
		fmt.Printf("Added %s\n", renderer.Transaction(tx))
	case extract.ActionClearForm:
		s.pending = bahikhata.Entry{}
		fmt.Println("Form cleared.")
	case extract.ActionLoadSample:
		// Replacing real entries needs a confirmation prompt, which cannot
		// interleave with the read loop; the sample command has one.
		if s.ledger.Len() > 0 {
			fmt.Println("Ledger is not empty, use the sample command to replace it.")
			return
		}
		s.ledger = bahikhata.SampleLedger()
		changed = true
		fmt.Printf("Loaded sample statement with %d transactions.\n", s.ledger.Len())
	}

	if !changed {
		return
	}
	if err := SaveLedger(s.ledger); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
}
