package render

import (
	"github.com/zeptools/billgen/formstate"
	"github.com/zeptools/billgen/templates"
)

// driverDocument selects one of two sub-layouts based on the receipt
// type value. The payment-app variant is rendered dark and sized to
// its content instead of a full page.
func driverDocument(values formstate.Values) *Document {
	if values["receiptType"] == templates.DriverReceiptPhonePe {
		return phonePeDocument(values)
	}
	return salaryReceiptDocument(values)
}

func salaryReceiptDocument(values formstate.Values) *Document {
	amount := orPlaceholder(values["salaryAmount"])
	driver := orPlaceholder(values["driverName"])
	month := orPlaceholder(values["month"])
	employee := orPlaceholder(values["employeeName"])
	receiptDate := dayMonYear(values["receiptDate"])

	blocks := []Block{
		{Kind: BlockTitle, Text: "Driver Salary Receipt"},
		paragraph(
			Span{Text: "This is to certify that I have paid "},
			Span{Text: "₹" + amount, Bold: true},
			Span{Text: " to driver, "},
			Span{Text: "Mr. " + driver, Bold: true},
			Span{Text: " for the month of "},
			Span{Text: month, Bold: true},
			Span{Text: ". I also declare that the driver is exclusively utilised for official purpose only. Please reimburse the above amount. I further declare that what is stated above is correct and true."},
		),
		{Kind: BlockSpacer},
		row("Employee Name", employee),
		row("Date", receiptDate),
		{Kind: BlockSectionTitle, Text: "Receipt Acknowledgment"},
		row("Date of receipt", receiptDate),
		row("For the month of", month),
		row("Name of the driver", driver),
		row("Vehicle number", orPlaceholder(values["vehicleNumber"])),
		{Kind: BlockSpacer},
		paragraph(
			Span{Text: "Received a sum of "},
			Span{Text: "₹" + amount, Bold: true},
			Span{Text: " only for the month of "},
			Span{Text: month, Bold: true},
			Span{Text: " from Mr "},
			Span{Text: employee, Bold: true},
			Span{Text: "."},
		),
		{Kind: BlockSpacer},
		note("Affix Revenue Stamp"),
	}
	if values.Bool("showSignature") {
		blocks = append(blocks,
			Block{Kind: BlockDivider},
			note("Signature of Driver"),
		)
	}
	return &Document{
		TemplateID:  "driver",
		Title:       "Driver Salary Receipt",
		PageWidthPx: 595,
		Blocks:      blocks,
	}
}

func phonePeDocument(values formstate.Values) *Document {
	name := orDefault(values["driverName"], "Sabarish A")
	amount := "₹" + groupINR(values["salaryAmount"])

	return &Document{
		TemplateID:  "driver",
		Title:       "PhonePe Payment",
		ExactBounds: true,
		Dark:        true,
		PageWidthPx: 420,
		Blocks: []Block{
			{Kind: BlockTitle, Text: "Transaction Successful"},
			note(orDefault(values["paymentDateTime"], "10:12 am on 10 Apr 2025")),
			{Kind: BlockSectionTitle, Text: "Paid to"},
			{Kind: BlockItem, Text: name, Detail: orDefault(values["recipientPhone"], "+919176657929"), Amount: amount},
			row("Banking Name :", name),
			{Kind: BlockDivider},
			{Kind: BlockSectionTitle, Text: "Payment Details"},
			row("Transaction ID", orDefault(values["transactionId"], "238291039476")),
			{Kind: BlockSectionTitle, Text: "Debited from"},
			{
				Kind:   BlockItem,
				Text:   orDefault(values["bankAccount"], "XXXXXX8331"),
				Detail: "UTR: " + orDefault(values["utr"], "TRa8Djsl90Fdbq"),
				Amount: amount,
			},
			{Kind: BlockDivider},
			note("Send Again · View History · Split Expense · Share Receipt"),
			note("Contact PhonePe Support"),
			note("Powered by UPI | Yes Bank"),
		},
	}
}
