package render

import "github.com/zeptools/billgen/formstate"

func playoDocument(values formstate.Values) *Document {
	money := func(id string) string { return "₹" + orDefault(values[id], "0") }

	return &Document{
		TemplateID:  "playo",
		Title:       "Booking Confirmed",
		PageWidthPx: 595,
		Blocks: []Block{
			{Kind: BlockTitle, Text: "Booking Confirmed"},
			paragraph(Span{Text: "Hey " + orPlaceholder(values["customerName"]) + ","}),
			paragraph(
				Span{Text: "Your booking for "},
				Span{Text: orPlaceholder(values["sportType"]), Bold: true},
				Span{Text: " at "},
				Span{Text: orPlaceholder(values["venueName"]) + ", " + orPlaceholder(values["venueCity"]), Bold: true},
				Span{Text: " has been confirmed. Please find booking details in Playo app."},
			),
			note("Note: An activity also has been created for this booking, kindly check in the \"My Calendar\" section in the app."),
			{Kind: BlockSectionTitle, Text: "Booking Details"},
			row("Booking ID:", orPlaceholder(values["bookingId"])),
			row("Sport:", orPlaceholder(values["sportType"])),
			row("Court:", orPlaceholder(values["court"])),
			row("Slot:", orPlaceholder(values["slotTime"])+" on "+dashDate(values["slotDate"])),
			{Kind: BlockSectionTitle, Text: "Payment"},
			{Kind: BlockTotal, Label: "Total Amount Paid", Amount: money("totalAmount")},
			row("Court Price:", money("courtPrice")),
			row("Convenience Fee:", money("convenienceFee")),
			{Kind: BlockRow, Label: "Discount / Karma availed:", Value: "- " + money("discount"), Negative: true},
			row("Fitness Cover:", "₹0.0"),
			{Kind: BlockDivider},
			{Kind: BlockTotal, Label: "Advance Paid", Amount: money("advancePaid")},
			row("Paid Online", money("advancePaid")),
			{Kind: BlockDivider},
			{Kind: BlockTotal, Label: "Payable at the venue:", Amount: money("payableAtVenue")},
			note("Booked on " + dayMONYear(values["bookingDate"]) + ", " + orPlaceholder(values["bookingTime"])),
		},
	}
}
