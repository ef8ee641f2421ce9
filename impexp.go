package bahikhata

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"
)

// this file contains functions to handle the backup format.
// It should remain human readable, single file and be easy to re-import.

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// BackupVersion is written into every backup file.
const BackupVersion = "1.0"

// ImportFormatError reports a backup file whose shape is not usable. It is
// recoverable: the importing side keeps its existing data untouched.
type ImportFormatError struct {
	Reason string
}

func (e *ImportFormatError) Error() string {
	return fmt.Sprintf("not a usable backup file: %s", e.Reason)
}

// Export writes the ledger to 'w' in the backup format: a single JSON
// document with the account, the transaction sequence in insertion order,
// the export timestamp and the format version.
func Export(w io.Writer, l *Ledger) error {
	var b jsonObjectWriter
	b.Optional("account", l.account)
	b.Append("transactions", l.transactions)
	b.Append("exportDate", time.Now().Format(time.RFC3339))
	b.Append("version", BackupVersion)

	data, err := b.MarshalJSON()
	if err != nil {
		return fmt.Errorf("cannot marshal backup: %w", err)
	}

	// Re-indent for the human reader; the backup is meant to be inspectable.
	var indented json.RawMessage = data
	out, err := json.MarshalIndent(indented, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot format backup: %w", err)
	}
	if _, err := w.Write(append(out, '\n')); err != nil {
		return fmt.Errorf("cannot write backup: %w", err)
	}
	return nil
}

// DecodeLedger reads a ledger file from 'r'. The ledger file shares the
// backup format, but unlike Import the transaction IDs are kept: the working
// ledger must keep stable IDs across loads, or delete-by-ID breaks.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("cannot read ledger: %w", err)
	}

	var probe struct {
		Account      Account       `json:"account"`
		Transactions []Transaction `json:"transactions"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("cannot parse ledger: %w", err)
	}

	l := NewLedger()
	l.account = probe.Account
	l.transactions = append(l.transactions, probe.Transactions...)
	return l, nil
}

// Import reads a backup document from 'r' and returns a fresh ledger.
//
// The document must carry a "transactions" array; any other shape is
// rejected with an *ImportFormatError and the caller's existing ledger is
// left alone (Import never touches one). Transaction IDs are reminted on
// import, only the statement values round-trip.
func Import(r io.Reader) (*Ledger, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("cannot read backup: %w", err)
	}

	var probe struct {
		Account      Account         `json:"account"`
		Transactions json.RawMessage `json:"transactions"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, &ImportFormatError{Reason: fmt.Sprintf("not a JSON object: %v", err)}
	}
	// An explicit null is as absent as a missing key.
	if len(probe.Transactions) == 0 || bytes.Equal(bytes.TrimSpace(probe.Transactions), []byte("null")) {
		return nil, &ImportFormatError{Reason: "missing transactions list"}
	}

	var txs []Transaction
	if err := json.Unmarshal(probe.Transactions, &txs); err != nil {
		return nil, &ImportFormatError{Reason: fmt.Sprintf("transactions is not a list of transactions: %v", err)}
	}

	l := NewLedger()
	l.account = probe.Account
	for _, tx := range txs {
		l.transactions = append(l.transactions, newTransaction(tx.Date, tx.Particulars, tx.Debit, tx.Credit))
	}
	return l, nil
}
