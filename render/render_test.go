package render

import (
	"reflect"
	"strings"
	"testing"

	"github.com/zeptools/billgen/formstate"
	"github.com/zeptools/billgen/templates"
)

func findBlock(t *testing.T, doc *Document, kind BlockKind, text string) Block {
	t.Helper()
	for _, b := range doc.Blocks {
		if b.Kind == kind && (text == "" || b.Text == text || b.Label == text) {
			return b
		}
	}
	t.Fatalf("no block kind=%d text=%q in %s document", kind, text, doc.TemplateID)
	return Block{}
}

func TestPreviewUnknownTemplate(t *testing.T) {
	doc := Preview("nope", formstate.Values{})
	if doc.Title != "Template not found" {
		t.Fatalf("title = %q, want not-found notice", doc.Title)
	}
	if len(doc.Blocks) == 0 {
		t.Fatal("not-found document has no blocks")
	}
}

func TestPreviewDeterministic(t *testing.T) {
	values := formstate.Values{"quantity": "10", "ratePerLitre": "100"}
	a := Preview("petrol", values)
	b := Preview("petrol", values)
	if len(a.Blocks) != len(b.Blocks) {
		t.Fatalf("block counts differ: %d vs %d", len(a.Blocks), len(b.Blocks))
	}
	if !reflect.DeepEqual(a, b) {
		t.Fatal("identical inputs rendered different documents")
	}
}

func TestFuelSubtotalAndTotal(t *testing.T) {
	values := formstate.Values{
		"quantity":     "42",
		"ratePerLitre": "129.39",
		"discount":     "150",
		"discountText": "Get ₹150/- off on fueling petrol above ₹5000",
	}
	doc := petrolDocument(values)

	item := findBlock(t, doc, BlockItem, "")
	if item.Amount != "INR 5434.38" {
		t.Fatalf("subtotal = %q, want INR 5434.38", item.Amount)
	}
	total := findBlock(t, doc, BlockTotal, "Total Paid")
	if total.Amount != "INR 5284.38" {
		t.Fatalf("total = %q, want INR 5284.38", total.Amount)
	}
}

func TestFuelTotalOverride(t *testing.T) {
	doc := petrolDocument(formstate.Values{
		"quantity":     "42",
		"ratePerLitre": "129.39",
		"totalAmount":  "5000",
	})
	total := findBlock(t, doc, BlockTotal, "Total Paid")
	if total.Amount != "INR 5000" {
		t.Fatalf("total = %q, want explicit override INR 5000", total.Amount)
	}
}

func TestFuelZeroDiscountHidesRow(t *testing.T) {
	doc := petrolDocument(formstate.Values{
		"quantity":     "10",
		"ratePerLitre": "100",
		"discount":     "0",
	})
	for _, b := range doc.Blocks {
		if b.Negative {
			t.Fatalf("discount row rendered for zero discount: %+v", b)
		}
	}
}

func TestDriverSubLayoutSwitch(t *testing.T) {
	salary := driverDocument(formstate.Values{"receiptType": templates.DriverReceiptSalary})
	if salary.Dark || salary.ExactBounds {
		t.Fatal("salary receipt must render as a plain light page")
	}
	if salary.Title != "Driver Salary Receipt" {
		t.Fatalf("salary title = %q", salary.Title)
	}

	pp := driverDocument(formstate.Values{"receiptType": templates.DriverReceiptPhonePe, "salaryAmount": "25000"})
	if !pp.Dark || !pp.ExactBounds {
		t.Fatal("payment-app variant must render dark and content-sized")
	}
	item := findBlock(t, pp, BlockItem, "")
	if item.Amount != "₹25,000" {
		t.Fatalf("amount = %q, want en-IN grouped ₹25,000", item.Amount)
	}
}

func TestDriverSignatureToggle(t *testing.T) {
	hasSignature := func(values formstate.Values) bool {
		doc := driverDocument(values)
		for _, b := range doc.Blocks {
			if b.Kind == BlockNote && b.Text == "Signature of Driver" {
				return true
			}
		}
		return false
	}
	if !hasSignature(formstate.Values{"showSignature": "true"}) {
		t.Fatal("signature line missing when toggle on")
	}
	if hasSignature(formstate.Values{"showSignature": "false"}) {
		t.Fatal("signature line present when toggle off")
	}
}

func TestDriverPlaceholders(t *testing.T) {
	doc := driverDocument(formstate.Values{})
	para := doc.Blocks[1]
	if para.Kind != BlockParagraph {
		t.Fatalf("block 1 kind = %d, want paragraph", para.Kind)
	}
	var joined strings.Builder
	for _, s := range para.Spans {
		joined.WriteString(s.Text)
	}
	if !strings.Contains(joined.String(), "₹"+Placeholder) {
		t.Fatalf("empty amount not rendered as placeholder: %q", joined.String())
	}
}

func TestDateRedisplayStyles(t *testing.T) {
	tests := []struct {
		name string
		fn   func(string) string
		in   string
		want string
	}{
		{"dayMonYear", dayMonYear, "10/02/2026", "10 Feb 2026"},
		{"dayMonYear strips zero day", dayMonYear, "05/02/2026", "5 Feb 2026"},
		{"dayMONYear pads day", dayMONYear, "2/01/2026", "02 JAN 2026"},
		{"dashDate", dashDate, "15/01/2026", "15-01-2026"},
		{"slashDate", slashDate, "15/01/2026", "15/01/2026"},
		{"dayMonYear empty", dayMonYear, "", Placeholder},
		{"dayMONYear empty", dayMONYear, "", Placeholder},
		{"dashDate empty", dashDate, "", Placeholder},
		{"slashDate empty", slashDate, "", Placeholder},
		{"dayMonYear passthrough", dayMonYear, "February 2026", "February 2026"},
		{"dayMonYear day out of range", dayMonYear, "45/01/2026", "45/01/2026"},
		{"dayMONYear month out of range", dayMONYear, "10/13/2026", "10/13/2026"},
	}
	for _, tc := range tests {
		if got := tc.fn(tc.in); got != tc.want {
			t.Errorf("%s(%q) = %q, want %q", tc.name, tc.in, got, tc.want)
		}
	}
}

func TestGroupINR(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "0"},
		{"25000", "25,000"},
		{"123456", "1,23,456"},
		{"1234567", "12,34,567"},
		{"999", "999"},
		{"2456.64", "2,456.64"},
		{"-4500", "-4,500"},
		{"24999.999", "25,000"},
		{"0.996", "1"},
		{"25000.5", "25,000.5"},
		{"25000.50", "25,000.5"},
	}
	for _, tc := range tests {
		if got := groupINR(tc.in); got != tc.want {
			t.Errorf("groupINR(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestPlayoDocument(t *testing.T) {
	doc := playoDocument(formstate.Values{
		"customerName": "Ram",
		"sportType":    "Football",
		"slotDate":     "15/01/2026",
		"bookingDate":  "2/01/2026",
		"bookingTime":  "18:25 PM",
		"totalAmount":  "2456.64",
	})
	total := findBlock(t, doc, BlockTotal, "Total Amount Paid")
	if total.Amount != "₹2456.64" {
		t.Fatalf("total = %q", total.Amount)
	}
	footer := doc.Blocks[len(doc.Blocks)-1]
	if footer.Text != "Booked on 02 JAN 2026, 18:25 PM" {
		t.Fatalf("footer = %q", footer.Text)
	}
}

func TestAirtelPaidAmountRepeats(t *testing.T) {
	doc := airtelDocument(formstate.Values{"paidAmount": "6133.64", "fixedLineNumber": "08041724476"})
	var hits int
	for _, b := range doc.Blocks {
		if b.Kind == BlockRow && b.Value == "₹ 6133.64" {
			hits++
		}
	}
	if hits != 2 {
		t.Fatalf("paid amount rendered %d times, want 2 (paid amount row and fixed-line row)", hits)
	}
}

func TestBuildersCoverCatalog(t *testing.T) {
	for _, id := range templates.IDs() {
		doc := Preview(id, formstate.Values{})
		if doc.Title == "Template not found" {
			t.Errorf("no builder registered for catalog template %q", id)
		}
	}
}
