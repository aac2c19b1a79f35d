package money

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Places is the number of decimals every persisted monetary value carries.
const Places = 2

var hundred = decimal.NewFromInt(100)

// Round rounds half away from zero to two decimals.
func Round(d decimal.Decimal) decimal.Decimal {
	return d.Round(Places)
}

// Percent returns d * pct / 100.
func Percent(d, pct decimal.Decimal) decimal.Decimal {
	return d.Mul(pct).Div(hundred)
}

// Sum adds values without intermediate rounding.
func Sum(values ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}

// Lang maps an invoice language code ("en", "nl", "de") to a language tag.
func Lang(code string) language.Tag {
	switch strings.ToLower(strings.TrimSpace(code)) {
	case "nl":
		return language.Dutch
	case "de":
		return language.German
	default:
		return language.English
	}
}

// Number formats d with two fixed decimals and locale grouping.
func Number(tag language.Tag, d decimal.Decimal) string {
	p := message.NewPrinter(tag)
	return p.Sprintf("%v", number.Decimal(Round(d).InexactFloat64(), number.MinFractionDigits(Places), number.MaxFractionDigits(Places)))
}

// Currency formats d as a euro amount, e.g. "€1.234,56" or "- €12,00".
func Currency(tag language.Tag, d decimal.Decimal) string {
	if d.IsNegative() {
		return "- €" + Number(tag, d.Abs())
	}
	return "€" + Number(tag, d)
}

// PercentString formats a percentage without trailing zeros, e.g. "21%".
func PercentString(d decimal.Decimal) string {
	return Round(d).String() + "%"
}

// NLDate formats t as dd-mm-yyyy; the zero time formats as "".
func NLDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("02-01-2006")
}
