package render

import (
	"fmt"

	"github.com/zeptools/billgen/formstate"
)

// fuelSubtotal - quantity times rate, two decimals. Unparseable values
// count as zero.
func fuelSubtotal(values formstate.Values) float64 {
	return parseAmount(values["quantity"]) * parseAmount(values["ratePerLitre"])
}

func petrolDocument(values formstate.Values) *Document {
	subtotal := fuelSubtotal(values)

	total := values["totalAmount"]
	if total == "" {
		total = fmt.Sprintf("%.2f", subtotal-parseAmount(values["discount"]))
	}

	blocks := []Block{
		{Kind: BlockTitle, Text: "Transaction details"},
		paragraph(Span{Text: slashDate(values["transactionDate"]) + ", " + orPlaceholder(values["transactionTime"])}),
		paragraph(Span{Text: orPlaceholder(values["location"])}),
		note(orPlaceholder(values["transactionId"])),
		{Kind: BlockSectionTitle, Text: "Purchased items"},
		{
			Kind:   BlockItem,
			Text:   orDefault(values["fuelCode"], "02") + " - " + orDefault(values["fuelType"], "V-PowerUNL"),
			Detail: orDefault(values["quantity"], "0") + " x INR " + orDefault(values["ratePerLitre"], "0"),
			Amount: "INR " + fmt.Sprintf("%.2f", subtotal),
		},
	}
	if parseAmount(values["discount"]) > 0 {
		blocks = append(blocks, Block{
			Kind:     BlockRow,
			Label:    orDefault(values["discountText"], "Discount"),
			Value:    "- INR " + money2(values["discount"]),
			Negative: true,
		})
	}
	blocks = append(blocks,
		Block{Kind: BlockTotal, Label: "Total Paid", Amount: "INR " + total},
		row("Points earned", "+ "+orDefault(values["pointsEarned"], "0")),
	)
	if parseAmount(values["bonusPoints"]) > 0 {
		blocks = append(blocks, row("Points earned (bonus)", "+ "+values["bonusPoints"]))
	}
	blocks = append(blocks,
		Block{Kind: BlockDivider},
		note("Thank you for visiting Shell"),
		note("For full details please refer to your receipt"),
	)

	return &Document{
		TemplateID:  "petrol",
		Title:       "Transaction details",
		PageWidthPx: 595,
		Blocks:      blocks,
	}
}
