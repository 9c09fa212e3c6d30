// Package bahttext renders a monetary amount as Thai baht words,
// the way BAHTTEXT does in spreadsheets: integer baht, two-digit
// satang, "ถ้วน" when the satang part is zero.
package bahttext

import (
	"strings"

	"github.com/shopspring/decimal"
)

var digits = []string{"ศูนย์", "หนึ่ง", "สอง", "สาม", "สี่", "ห้า", "หก", "เจ็ด", "แปด", "เก้า"}

var positions = []string{"", "สิบ", "ร้อย", "พัน", "หมื่น", "แสน"}

// Words renders amount as Thai baht words. The amount is rounded to
// two decimals (half up) before conversion.
func Words(amount decimal.Decimal) string {
	amount = amount.Round(2)

	var b strings.Builder
	if amount.IsNegative() {
		b.WriteString("ลบ")
		amount = amount.Abs()
	}

	baht := amount.Truncate(0)
	satang := amount.Sub(baht).Mul(decimal.NewFromInt(100)).Round(0).IntPart()

	b.WriteString(groupWords(baht.String()))
	b.WriteString("บาท")

	if satang == 0 {
		b.WriteString("ถ้วน")
		return b.String()
	}

	b.WriteString(groupWords(decimal.NewFromInt(satang).String()))
	b.WriteString("สตางค์")
	return b.String()
}

// groupWords converts a non-negative integer in decimal string form,
// recursing per million so arbitrarily large amounts read correctly.
func groupWords(s string) string {
	if s == "" || s == "0" {
		return digits[0]
	}

	if len(s) > 6 {
		head := s[:len(s)-6]
		tail := strings.TrimLeft(s[len(s)-6:], "0")
		out := groupWords(head) + "ล้าน"
		if tail != "" {
			out += groupWords(tail)
		}
		return out
	}

	var b strings.Builder
	n := len(s)
	for i, r := range s {
		d := int(r - '0')
		pos := n - i - 1
		if d == 0 {
			continue
		}
		switch {
		case pos == 1 && d == 2:
			b.WriteString("ยี่")
		case pos == 1 && d == 1:
			// สิบ, not หนึ่งสิบ
		case pos == 0 && d == 1 && n > 1:
			b.WriteString("เอ็ด")
			continue
		default:
			b.WriteString(digits[d])
		}
		b.WriteString(positions[pos])
	}
	return b.String()
}
