// Package bahikhata provides the types and functions to keep a simple
// debit/credit account statement, in the tradition of the Indian bahi-khata
// account book. It is designed to be local-first and auditable: the ledger
// is an in-memory record owned by the caller, and the only persistence is
// an explicit, human-readable JSON backup.
//
// The core functionalities include:
//   - Ledger Management: Recording debit/credit transactions against a named
//     account, with validation (a transaction has exactly one positive leg)
//     and explicit delete/clear operations.
//   - Statement Computation: Totals and a date-ordered running balance,
//     recomputed on demand from the full transaction sequence.
//   - Indian Number Formatting: Amounts rendered with the South Asian digit
//     grouping (1,23,45,678.00) and the ₹ glyph.
//   - Data Persistence: Encoding and decoding of the backup format, a single
//     JSON document that round-trips the whole account.
//
// This package serves as the foundational logic for the `bahikhata`
// command-line tool; the AI entry extraction lives in the extract
// subpackage and feeds the same operations as manual entry.
package bahikhata
