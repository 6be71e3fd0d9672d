package render

import "github.com/zeptools/billgen/formstate"

func airtelDocument(values formstate.Values) *Document {
	paid := "₹ " + orDefault(values["paidAmount"], "0.00")

	return &Document{
		TemplateID:  "airtel",
		Title:       "Payment Receipt",
		PageWidthPx: 595,
		Blocks: []Block{
			{Kind: BlockTitle, Text: "Bharti Airtel Limited"},
			note("payment receipt"),
			paragraph(Span{Text: "Thank you for choosing airtel service. Here is the payment receipt."}),
			row("Receipt No.", orPlaceholder(values["receiptNo"])),
			row("Customer Name", orPlaceholder(values["customerName"])),
			row("Customer Number", orPlaceholder(values["customerNumber"])),
			row("Order Number", orPlaceholder(values["orderNumber"])),
			row("Line of Business", orPlaceholder(values["lineOfBusiness"])),
			row("Payment type", orPlaceholder(values["paymentType"])),
			row("Payment date & time", slashDate(values["paymentDate"])+"  "+orPlaceholder(values["paymentTime"])),
			row("Payment mode", orPlaceholder(values["paymentMode"])),
			row("Paid amount", paid),
			row("FIXED_LINE "+orPlaceholder(values["fixedLineNumber"]), paid),
			{Kind: BlockSectionTitle, Text: "Terms and Conditions"},
			note("Payment posting to your account is subject to credit settlement by your bank and will get the same posted within next 2-working days (maximum)."),
			note("The above amount is inclusive of applicable Taxes."),
			note("All claims subject to exclusive jurisdiction of Delhi courts only."),
			note("If you found any discrepancy, please reach out to us through:"),
			note("Airtel Thanks App > Help > Billing & Payments related issue > Payments related > Payment not posted"),
			note("This is a system-generated receipt and does not require signature. Any unauthorized use, disclosure, dissemination or copying of this receipt is strictly prohibited and may be unlawful."),
			{Kind: BlockDivider},
			note("Regd. Office: Bharti Airtel Ltd, Plot No. 16, Udyog Vihar Phase - IV, Gurgaon, Haryana. 122 015"),
			note("GSTN: 06AAACB2894G1ZR | PAN: AAACB2894G"),
		},
	}
}
