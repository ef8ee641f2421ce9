package extract

import (
	"sync"
	"testing"
)

func TestGuardLatestWins(t *testing.T) {
	var g Guard

	first := g.Begin()
	second := g.Begin()

	// The slow first extraction finishes after the second started; its
	// result must be discarded.
	if g.Current(first) {
		t.Error("superseded ticket still reported current")
	}
	if !g.Current(second) {
		t.Error("latest ticket not reported current")
	}
}

func TestGuardConcurrent(t *testing.T) {
	var g Guard
	var wg sync.WaitGroup

	const n = 100
	tickets := make([]uint64, n)
	for i := range tickets {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			tickets[i] = g.Begin()
		}(i)
	}
	wg.Wait()

	seen := make(map[uint64]bool)
	current := 0
	for _, ticket := range tickets {
		if seen[ticket] {
			t.Fatalf("ticket %d issued twice", ticket)
		}
		seen[ticket] = true
		if g.Current(ticket) {
			current++
		}
	}
	if current != 1 {
		t.Errorf("%d tickets report current, want exactly 1", current)
	}
}
