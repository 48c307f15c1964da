package quote

import (
	"math"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// EscapeHTML converts markup-significant characters to entities. Every
// caller-controlled field passes through here before template insertion.
func EscapeHTML(s string) string {
	if s == "" {
		return ""
	}
	return htmlEscaper.Replace(s)
}

// FormatAmount renders a monetary value with en-US grouping and exactly two
// decimals, rounding up to the next cent. Unparseable input (formula
// placeholders such as "0.034*GRT*2") is returned HTML-escaped unchanged so
// the document still renders with the formula visible.
func FormatAmount(v Flex) string {
	n, ok := v.Num()
	if !ok {
		return EscapeHTML(v.Raw())
	}
	return formatMoney(n)
}

// formatMoney applies the ceiling rule: the displayed value is never less
// than the computed charge.
func formatMoney(n float64) string {
	rounded := math.Ceil(n*100) / 100
	return humanize.FormatFloat("#,###.##", rounded)
}

// formatWholeUSD renders "USD1,300" style labels for banded fee descriptions.
func formatWholeUSD(n float64) string {
	return "USD" + humanize.Comma(int64(n))
}

// formatScalar renders a numeric option (hours, miles) the way a plain
// number interpolates into text: shortest decimal form, no grouping.
func formatScalar(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}
