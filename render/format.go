package render

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/zeptools/billgen/genvals"
)

// Placeholder - unfilled fields render as a glyph run, never blank, so
// the preview always looks populated.
const Placeholder = "________"

func orPlaceholder(v string) string {
	if v == "" {
		return Placeholder
	}
	return v
}

func orDefault(v string, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

// splitSlashDate parses the DD/MM/YYYY textual input form.
func splitSlashDate(v string) (day int, month int, year string, ok bool) {
	parts := strings.Split(v, "/")
	if len(parts) != 3 {
		return 0, 0, "", false
	}
	d, errD := strconv.Atoi(parts[0])
	m, errM := strconv.Atoi(parts[1])
	if errD != nil || errM != nil || d < 1 || d > 31 || m < 1 || m > 12 {
		return 0, 0, "", false
	}
	return d, m, parts[2], true
}

// dayMonYear - "10 Feb 2026" style. Missing dates become the
// placeholder; unparseable input passes through untouched.
func dayMonYear(v string) string {
	if v == "" {
		return Placeholder
	}
	d, m, y, ok := splitSlashDate(v)
	if !ok {
		return v
	}
	return fmt.Sprintf("%d %s %s", d, genvals.MonthName(time.Month(m))[:3], y)
}

// dayMONYear - "02 JAN 2026" style used by the booking footer.
func dayMONYear(v string) string {
	if v == "" {
		return Placeholder
	}
	d, m, y, ok := splitSlashDate(v)
	if !ok {
		return v
	}
	return fmt.Sprintf("%02d %s %s", d, strings.ToUpper(genvals.MonthName(time.Month(m))[:3]), y)
}

// dashDate - "DD-MM-YYYY" redisplay of a slash date.
func dashDate(v string) string {
	if v == "" {
		return Placeholder
	}
	parts := strings.Split(v, "/")
	if len(parts) != 3 {
		return v
	}
	return parts[0] + "-" + parts[1] + "-" + parts[2]
}

// slashDate passes a well-formed slash date through, placeholder when
// missing.
func slashDate(v string) string {
	if v == "" {
		return Placeholder
	}
	return v
}

// money2 renders an amount with two decimals. Non-numeric input yields 0.00.
func money2(v string) string {
	f, _ := strconv.ParseFloat(strings.TrimSpace(v), 64)
	return fmt.Sprintf("%.2f", f)
}

func parseAmount(v string) float64 {
	f, _ := strconv.ParseFloat(strings.TrimSpace(v), 64)
	return f
}

// groupINR adds en-IN style thousands separators: last three digits,
// then groups of two (12,34,567). The amount is rounded to paise once
// up front so decimals that carry into the rupees (24999.999) group
// correctly; trailing zero paise are not shown (25000.5 -> 25,000.5).
func groupINR(v string) string {
	if v == "" {
		return "0"
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return v
	}
	neg := f < 0
	if neg {
		f = -f
	}
	paise := int64(math.Round(f * 100))
	whole := strconv.FormatInt(paise/100, 10)
	frac := ""
	if r := paise % 100; r != 0 {
		frac = strings.TrimRight(fmt.Sprintf(".%02d", r), "0")
	}
	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	n := len(whole)
	if n <= 3 {
		b.WriteString(whole)
	} else {
		head := whole[:n-3]
		// group the head by twos from the right
		for i := 0; i < len(head); i++ {
			if i > 0 && (len(head)-i)%2 == 0 {
				b.WriteByte(',')
			}
			b.WriteByte(head[i])
		}
		b.WriteByte(',')
		b.WriteString(whole[n-3:])
	}
	b.WriteString(frac)
	return b.String()
}
