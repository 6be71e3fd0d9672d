// Package genvals produces the synthetic identifiers and date presets that
// pre-fill template fields. Every generator is deterministic in shape and
// non-deterministic in value; uniqueness is probabilistic, not guaranteed.
package genvals

import (
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"github.com/zeptools/billgen/templates"
)

const (
	upperChars    = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	alphanumChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

func randomString(chars string, n int) string {
	var b strings.Builder
	b.Grow(n)
	for range n {
		b.WriteByte(chars[rand.IntN(len(chars))])
	}
	return b.String()
}

func randomDigits(n int) string {
	var b strings.Builder
	b.Grow(n)
	for range n {
		b.WriteByte(byte('0' + rand.IntN(10)))
	}
	return b.String()
}

// BillNumber - e.g. "INV-MB2K3J4A-X9QF"
func BillNumber() string {
	ts := strings.ToUpper(strconv.FormatInt(time.Now().UnixMilli(), 36))
	return "INV-" + ts + "-" + randomString("ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789", 4)
}

// AccountNumber - 12 random digits
func AccountNumber() string {
	return randomDigits(12)
}

// PlayoBookingID - 6 uppercase letters
func PlayoBookingID() string {
	return randomString(upperChars, 6)
}

// ShellTxnID - "2_<5 digits>_<8 digits>_<4 digits>"
func ShellTxnID() string {
	return "2_" + randomDigits(5) + "_" + randomDigits(8) + "_" + randomDigits(4)
}

// AirtelReceiptNo - 18 digits with the "73" prefix
func AirtelReceiptNo() string {
	return "73" + randomDigits(16)
}

// AirtelOrderNo - 18 digits with the "73" prefix
func AirtelOrderNo() string {
	return "73" + randomDigits(16)
}

// PhonePeTxnID - 12 digits
func PhonePeTxnID() string {
	return randomDigits(12)
}

// UTRNumber - "TR" + 12 alphanumerics, e.g. "TRa8Djsl90Fdbq"
func UTRNumber() string {
	return "TR" + randomString(alphanumChars, 12)
}

// generatorTable - static dispatch from GeneratorID to its func.
var generatorTable = map[templates.GeneratorID]func() string{
	templates.GenBillNumber:      BillNumber,
	templates.GenAccountNumber:   AccountNumber,
	templates.GenPlayoBookingID:  PlayoBookingID,
	templates.GenShellTxnID:      ShellTxnID,
	templates.GenAirtelReceiptNo: AirtelReceiptNo,
	templates.GenAirtelOrderNo:   AirtelOrderNo,
	templates.GenPhonePeTxnID:    PhonePeTxnID,
	templates.GenUTRNumber:       UTRNumber,
}

// Generate runs the generator bound to id. ok=false for GenNone or an
// id outside the table.
func Generate(id templates.GeneratorID) (string, bool) {
	fn, ok := generatorTable[id]
	if !ok {
		return "", false
	}
	return fn(), true
}
