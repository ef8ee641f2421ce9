package extract

import (
	"testing"
	"time"

	"github.com/kmahajan/bahikhata"
)

var testToday = bahikhata.NewDate(2025, time.September, 19)

func TestParseModelResponse(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Record
	}{
		{
			name: "plain object",
			raw:  `{"accountHolder":"Kritima Mahajan","location":"Gurdaspur","date":"2025-09-20","particulars":"Bill payment","debitAmount":"5000","creditAmount":null,"action":null}`,
			want: Record{
				AccountHolder: "Kritima Mahajan",
				Location:      "Gurdaspur",
				Date:          "2025-09-20",
				Particulars:   "Bill payment",
				DebitAmount:   "5000",
			},
		},
		{
			name: "fenced json",
			raw:  "```json\n{\"creditAmount\":\"3000\",\"action\":\"add_entry\"}\n```",
			want: Record{CreditAmount: "3000", Action: ActionAddEntry},
		},
		{
			name: "prose around the object",
			raw:  "Here is the extraction:\n{\"particulars\":\"ATM withdrawal\"}\nHope this helps!",
			want: Record{Particulars: "ATM withdrawal"},
		},
		{
			name: "numeric amounts",
			raw:  `{"debitAmount":5000,"creditAmount":null}`,
			want: Record{DebitAmount: "5000"},
		},
		{
			name: "fractional numeric amount",
			raw:  `{"creditAmount":250.5}`,
			want: Record{CreditAmount: "250.5"},
		},
		{
			name: "today resolves to the current date",
			raw:  `{"date":"today"}`,
			want: Record{Date: "2025-09-19"},
		},
		{
			name: "unparseable date is dropped",
			raw:  `{"date":"someday soon","particulars":"X"}`,
			want: Record{Particulars: "X"},
		},
		{
			name: "display date renormalizes to ISO",
			raw:  `{"date":"19.09.2025"}`,
			want: Record{Date: "2025-09-19"},
		},
		{
			name: "submit aliases add_entry",
			raw:  `{"action":"submit"}`,
			want: Record{Action: ActionAddEntry},
		},
		{
			name: "both legs keeps the debit",
			raw:  `{"debitAmount":"100","creditAmount":"200"}`,
			want: Record{DebitAmount: "100"},
		},
		{
			name: "null strings read as absent",
			raw:  `{"accountHolder":"null","location":null}`,
			want: Record{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseModelResponse(tt.raw, testToday)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseModelResponseNotJSON(t *testing.T) {
	if _, err := parseModelResponse("I could not extract anything.", testToday); err == nil {
		t.Error("expected an error for a response without JSON")
	}
}

func TestCleanModelJSON(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{`{"a":1}`, `{"a":1}`},
		{"```json\n{\"a\":1}\n```", `{"a":1}`},
		{"```\n{\"a\":1}\n```", `{"a":1}`},
		{"noise {\"a\":1} noise", `{"a":1}`},
	}
	for _, tt := range tests {
		if got := cleanModelJSON(tt.raw); got != tt.want {
			t.Errorf("cleanModelJSON(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}
