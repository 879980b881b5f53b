// Package format renders money, timestamps and opaque hex values for the dashboard.
package format

import (
	"math/big"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// TimestampLayout is the en-US short date-time pattern with a 24-hour clock.
const TimestampLayout = "01/02/06, 15:04:05"

// Ellipsis joins the head and tail of a truncated value.
const Ellipsis = "..."

// Currency renders d with two decimal places behind symbol. No grouping is applied.
func Currency(symbol string, d decimal.Decimal) string {
	return symbol + d.StringFixed(2)
}

// Timestamp renders t in TimestampLayout.
func Timestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}

// Ends keeps the first head and last tail runes of s joined by Ellipsis.
// Both ends clamp to the string, so inputs shorter than head+tail overlap.
func Ends(s string, head, tail int) string {
	rs := []rune(s)
	h := rs
	if head < len(h) {
		h = h[:max(head, 0)]
	}
	t := rs
	if tail < len(t) {
		t = t[len(t)-max(tail, 0):]
	}
	return string(h) + Ellipsis + string(t)
}

// HexBigInt renders v as 0x plus the first and last 8 digits of its
// unpadded base-16 encoding.
func HexBigInt(v *big.Int) string {
	if v == nil {
		v = new(big.Int)
	}
	return "0x" + Ends(v.Text(16), 8, 8)
}

// StateRoot renders the first and last 10 characters of root verbatim.
func StateRoot(root string) string {
	return Ends(root, 10, 10)
}

// NewPrinter returns a printer for locale, falling back to American English
// when the tag cannot be parsed.
func NewPrinter(locale string) *message.Printer {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.AmericanEnglish
	}
	return message.NewPrinter(tag)
}

// Grouped renders n with the thousands separators of p's locale.
func Grouped(p *message.Printer, n int64) string {
	if p == nil {
		p = message.NewPrinter(language.AmericanEnglish)
	}
	return p.Sprintf("%d", n)
}
