package extract

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/kmahajan/bahikhata"
)

// cleanModelJSON strips Markdown fences and surrounding prose from a model
// response, keeping only the first {...} object.
func cleanModelJSON(raw string) string {
	s := strings.TrimSpace(raw)

	if strings.HasPrefix(s, "```") {
		// Drop the first line (``` or ```json).
		if idx := strings.Index(s, "\n"); idx != -1 {
			s = s[idx+1:]
		} else {
			return s
		}
		s = strings.TrimSpace(s)
	}
	if idx := strings.LastIndex(s, "```"); idx != -1 {
		s = s[:idx]
	}
	s = strings.TrimSpace(s)

	// Models sometimes wrap the object in prose anyway; keep only from the
	// first '{' to the last '}'.
	if start := strings.Index(s, "{"); start != -1 {
		if end := strings.LastIndex(s, "}"); end != -1 && end > start {
			s = strings.TrimSpace(s[start : end+1])
		}
	}
	return s
}

// jstring pulls a string field out of a decoded JSON object. Missing fields,
// explicit nulls and non-strings all come back empty; numbers are rendered
// the way the model sent them.
func jstring(jobj any, path string) string {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return ""
	}
	switch v := jval.(type) {
	case string:
		if strings.EqualFold(strings.TrimSpace(v), "null") {
			return ""
		}
		return strings.TrimSpace(v)
	case json.Number:
		return v.String()
	case float64:
		// Default decoding path; keep integral amounts free of a trailing .0.
		if v == float64(int64(v)) {
			return fmt.Sprintf("%d", int64(v))
		}
		return fmt.Sprintf("%g", v)
	default:
		return ""
	}
}

// parseModelResponse decodes a model reply into a Record. The date is
// renormalized through ParseDate so whatever separator or "today" alias the
// model used comes out as ISO; an unparseable date is dropped rather than
// passed through.
func parseModelResponse(raw string, today bahikhata.Date) (Record, error) {
	clean := cleanModelJSON(raw)

	var jobj any
	if err := json.Unmarshal([]byte(clean), &jobj); err != nil {
		return Record{}, fmt.Errorf("no valid JSON in model response: %w", err)
	}

	rec := Record{
		AccountHolder: jstring(jobj, "$.accountHolder"),
		Location:      jstring(jobj, "$.location"),
		Particulars:   jstring(jobj, "$.particulars"),
		DebitAmount:   jstring(jobj, "$.debitAmount"),
		CreditAmount:  jstring(jobj, "$.creditAmount"),
		Action:        ParseAction(jstring(jobj, "$.action")),
	}

	if d := jstring(jobj, "$.date"); d != "" {
		if strings.Contains(strings.ToLower(d), "today") {
			rec.Date = today.String()
		} else if day, err := bahikhata.ParseDate(d); err == nil {
			rec.Date = day.String()
		}
	}

	// One leg only, debit wins when the model ignored the instruction.
	if rec.DebitAmount != "" {
		rec.CreditAmount = ""
	}
	return rec, nil
}
