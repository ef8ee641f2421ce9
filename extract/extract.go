// Package extract turns free text, such as a voice transcript, into a
// structured statement entry, using the Gemini API with a local regex
// fallback.
//
// The package only produces Records; applying a record to a ledger goes
// through the same validation and operations as manual entry, so the
// mapping logic stays testable without any interactive surface.
package extract

import (
	"context"
	"fmt"
	"log"

	"github.com/kmahajan/bahikhata"
)

// Action is an optional command carried by an extraction record.
type Action string

const (
	// ActionNone means the record only carries entry fields.
	ActionNone Action = ""
	// ActionAddEntry asks to submit the entry ("add entry", "submit").
	ActionAddEntry Action = "add_entry"
	// ActionClearForm asks to discard the pending entry fields.
	ActionClearForm Action = "clear_form"
	// ActionLoadSample asks to load the demo statement.
	ActionLoadSample Action = "load_sample"
)

// ParseAction maps the remote model's action strings onto an Action.
// "submit" is an alias for add_entry; anything unknown maps to none.
func ParseAction(s string) Action {
	switch s {
	case "add_entry", "submit":
		return ActionAddEntry
	case "clear_form":
		return ActionClearForm
	case "load_sample":
		return ActionLoadSample
	default:
		return ActionNone
	}
}

// Record is a partial statement entry extracted from free text. All fields
// are optional; empty means the text did not mention it.
type Record struct {
	AccountHolder string
	Location      string
	Date          string // ISO YYYY-MM-DD, already resolved ("today" handled by the extractor)
	Particulars   string
	DebitAmount   string
	CreditAmount  string
	Action        Action
}

// IsEmpty reports whether the record carries nothing actionable.
func (r Record) IsEmpty() bool {
	return r == Record{}
}

// Fields lists the names of the fields the record carries, for reporting
// what an extraction applied.
func (r Record) Fields() []string {
	var fields []string
	if r.AccountHolder != "" {
		fields = append(fields, "account holder")
	}
	if r.Location != "" {
		fields = append(fields, "location")
	}
	if r.Date != "" {
		fields = append(fields, "date")
	}
	if r.Particulars != "" {
		fields = append(fields, "particulars")
	}
	if r.DebitAmount != "" {
		fields = append(fields, "debit")
	}
	if r.CreditAmount != "" {
		fields = append(fields, "credit")
	}
	if r.Action != ActionNone {
		fields = append(fields, "action")
	}
	return fields
}

// Merge overlays the record onto a pending entry form. A debit clears a
// pending credit and vice versa: the two legs are mutually exclusive and the
// newest amount wins, the way the entry form behaves.
func (r Record) Merge(e *bahikhata.Entry) {
	if r.Date != "" {
		e.Date = r.Date
	}
	if r.Particulars != "" {
		e.Particulars = r.Particulars
	}
	if r.DebitAmount != "" {
		e.Debit = r.DebitAmount
		e.Credit = ""
	} else if r.CreditAmount != "" {
		e.Credit = r.CreditAmount
		e.Debit = ""
	}
}

// Failure reports that the remote extraction could not produce a usable
// record. It is recoverable: the caller falls back to pattern matching.
type Failure struct {
	Err error
}

func (f *Failure) Error() string { return fmt.Sprintf("extraction failed: %v", f.Err) }
func (f *Failure) Unwrap() error { return f.Err }

// Extractor maps free text to a partial statement entry.
type Extractor interface {
	Extract(ctx context.Context, text string) (Record, error)
}

// Service chains the remote extractor with the local fallback: a remote
// failure falls through exactly once to the fallback, with no retry of the
// remote call.
type Service struct {
	Remote   Extractor
	Fallback Extractor
}

// NewService builds the default chain: Gemini with the regex fallback.
func NewService(remote Extractor) *Service {
	return &Service{Remote: remote, Fallback: &Fallback{}}
}

// Extract runs the chain. It only errors when the fallback itself finds
// nothing actionable.
func (s *Service) Extract(ctx context.Context, text string) (Record, error) {
	if s.Remote != nil {
		rec, err := s.Remote.Extract(ctx, text)
		if err == nil {
			return rec, nil
		}
		log.Println("warning: remote extraction failed, using local patterns:", err)
	}
	return s.Fallback.Extract(ctx, text)
}
