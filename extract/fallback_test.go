package extract

import (
	"context"
	"testing"
)

func TestFallbackExtract(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Record
	}{
		{
			name: "name and location",
			text: "My name is Kritima Mahajan location Gurdaspur",
			want: Record{AccountHolder: "Kritima Mahajan", Location: "Gurdaspur"},
		},
		{
			name: "debit with rupees",
			text: "Debit 5000 rupees",
			want: Record{DebitAmount: "5000"},
		},
		{
			name: "spent amount",
			text: "spent rs. 250.50",
			want: Record{DebitAmount: "250.50"},
		},
		{
			name: "credit",
			text: "Received 10000 rs",
			want: Record{CreditAmount: "10000"},
		},
		{
			name: "salary is a credit",
			text: "salary 50000",
			want: Record{CreditAmount: "50000", Particulars: "50000"},
		},
		{
			name: "particulars",
			text: "atm withdrawal 500",
			want: Record{DebitAmount: "500", Particulars: "500"},
		},
		{
			name: "add entry action",
			text: "please add entry",
			want: Record{Action: ActionAddEntry},
		},
		{
			name: "submit action",
			text: "submit",
			want: Record{Action: ActionAddEntry},
		},
		{
			name: "clear form action",
			text: "clear form",
			want: Record{Action: ActionClearForm},
		},
		{
			name: "load sample action",
			text: "load sample data",
			want: Record{Action: ActionLoadSample},
		},
	}

	f := &Fallback{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := f.Extract(context.Background(), tt.text)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Extract(%q) = %+v, want %+v", tt.text, got, tt.want)
			}
		})
	}
}

func TestFallbackDebitClearsCredit(t *testing.T) {
	f := &Fallback{}
	got, err := f.Extract(context.Background(), "debit 5000")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.DebitAmount != "5000" || got.CreditAmount != "" {
		t.Errorf("got %+v, want debit only", got)
	}
}

func TestFallbackNothingMatches(t *testing.T) {
	f := &Fallback{}
	if _, err := f.Extract(context.Background(), "hello there"); err == nil {
		t.Error("expected an error when nothing matches")
	}
}
