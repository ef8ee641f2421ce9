package bahikhata

// sampleRows is the demo statement shipped with the tool, a year and a half
// of bills and cheque payments.
var sampleRows = []struct {
	date        string
	particulars string
	debit       float64
	credit      float64
}{
	{"04.12.2023", "TO BILL NO-1085", 37000.00, 0},
	{"21.12.2023", "TO BILL NO-1176", 27750.00, 0},
	{"03.01.2024", "TO BILL NO-1234", 101000.00, 0},
	{"08.01.2024", "BY CHQ/CASH", 0, 50000.00},
	{"23.02.2024", "BY CHQ/CASH", 0, 45000.00},
	{"22.04.2024", "BY CHQ/CASH", 0, 40000.00},
	{"25.05.2024", "BY CHQ/CASH", 0, 16500.00},
	{"25.05.2024", "TO BILL NO-172", 17000.00, 0},
	{"25.05.2024", "BY RETURNED", 0, 13875.00},
	{"31.05.2024", "TO BILL NO-201", 29750.00, 0},
	{"12.06.2024", "TO BILL NO-252", 28500.00, 0},
	{"16.07.2024", "TO BILL NO-404", 20900.00, 0},
	{"09.08.2024", "TO BILL NO-501", 23800.00, 0},
	{"16.08.2024", "BY CHQ/CASH", 0, 50000.00},
	{"28.08.2024", "TO BILL NO-555", 41500.00, 0},
	{"31.08.2024", "TO BILL NO-567", 57500.00, 0},
	{"01.09.2024", "BY DISCOUNT", 0, 375.00},
	{"19.10.2024", "BY CHQ/CASH", 0, 50000.00},
	{"25.10.2024", "TO BILL NO-754", 49550.00, 0},
	{"03.12.2024", "BY CHQ/CASH", 0, 50000.00},
	{"06.12.2024", "TO BILL NO-938", 86450.00, 0},
	{"13.12.2024", "TO BILL NO-983", 17000.00, 0},
	{"20.12.2024", "TO BILL NO-1009", 29750.00, 0},
	{"21.12.2024", "TO BILL NO-1019", 900.00, 0},
	{"21.12.2024", "BY RETURNED", 0, 46250.00},
	{"21.12.2024", "BY CHQ/CASH", 0, 35000.00},
	{"01.01.2025", "TO BILL NO-1072", 56100.00, 0},
	{"07.01.2025", "BY CHQ/CASH", 0, 50000.00},
	{"10.01.2025", "TO BILL NO-1136", 18700.00, 0},
	{"14.01.2025", "TO BILL NO-1154", 10500.00, 0},
	{"28.02.2025", "BY CHQ/CASH", 0, 40000.00},
	{"18.04.2025", "TO BILL NO-54", 30240.00, 0},
	{"18.04.2025", "TO BILL NO-55", 3900.00, 0},
	{"18.04.2025", "TO BILL NO-56", 15356.00, 0},
}

// SampleLedger builds the demo ledger. It is a fresh ledger each call;
// replacing the user's current one is the caller's decision.
func SampleLedger() *Ledger {
	l := NewLedger()
	l.SetAccount("YOGESH JI", "GURDASPURIA")
	for _, row := range sampleRows {
		tx := newTransaction(MustParseDate(row.date), row.particulars, A(row.debit), A(row.credit))
		l.transactions = append(l.transactions, tx)
	}
	return l
}
