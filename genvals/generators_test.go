package genvals

import (
	"strings"
	"testing"

	"github.com/zeptools/billgen/templates"
)

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func TestGeneratorShapes(t *testing.T) {
	for range 50 {
		if got := PlayoBookingID(); len(got) != 6 || got != strings.ToUpper(got) {
			t.Fatalf("booking id %q: want 6 uppercase letters", got)
		}

		txn := ShellTxnID()
		parts := strings.Split(txn, "_")
		if len(parts) != 4 {
			t.Fatalf("shell txn id %q: want 4 segments", txn)
		}
		wantLens := []int{1, 5, 8, 4}
		for i, p := range parts {
			if len(p) != wantLens[i] || !allDigits(p) {
				t.Fatalf("shell txn id %q: segment %d = %q, want %d digits", txn, i, p, wantLens[i])
			}
		}
		if parts[0] != "2" {
			t.Fatalf("shell txn id %q: want leading 2", txn)
		}

		for _, got := range []string{AirtelReceiptNo(), AirtelOrderNo()} {
			if len(got) != 18 || !allDigits(got) || !strings.HasPrefix(got, "73") {
				t.Fatalf("receipt/order no %q: want 18 digits with 73 prefix", got)
			}
		}

		if got := PhonePeTxnID(); len(got) != 12 || !allDigits(got) {
			t.Fatalf("payment txn id %q: want 12 digits", got)
		}
		if got := UTRNumber(); len(got) != 14 || !strings.HasPrefix(got, "TR") {
			t.Fatalf("utr %q: want TR + 12 alphanumerics", got)
		}
		if got := AccountNumber(); len(got) != 12 || !allDigits(got) {
			t.Fatalf("account number %q: want 12 digits", got)
		}
		if got := BillNumber(); !strings.HasPrefix(got, "INV-") {
			t.Fatalf("bill number %q: want INV- prefix", got)
		}
	}
}

func TestGenerateDispatch(t *testing.T) {
	if _, ok := Generate(templates.GenNone); ok {
		t.Fatal("GenNone must not dispatch")
	}
	for _, id := range []templates.GeneratorID{
		templates.GenBillNumber,
		templates.GenAccountNumber,
		templates.GenPlayoBookingID,
		templates.GenShellTxnID,
		templates.GenAirtelReceiptNo,
		templates.GenAirtelOrderNo,
		templates.GenPhonePeTxnID,
		templates.GenUTRNumber,
	} {
		got, ok := Generate(id)
		if !ok || got == "" {
			t.Fatalf("Generate(%v) = %q, %v", id, got, ok)
		}
	}
}
