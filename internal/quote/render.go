package quote

import "regexp"

// placeholderRe matches {{identifier}} tokens, tolerating inner whitespace.
// Malformed tokens (mismatched braces) simply fail to match and pass
// through untouched; template well-formedness is a content concern.
var placeholderRe = regexp.MustCompile(`\{\{\s*([A-Za-z0-9_]+)\s*\}\}`)

// Render substitutes the quote data into the template. Every scalar field
// is HTML-escaped; the two row sections arrive pre-rendered. Tokens with no
// mapped value render an em-dash rather than leaking the raw placeholder.
func Render(template string, in Input, t Tariff) string {
	aa := BuildSectionA(in, t)
	bb := BuildSectionB(in, t)

	totalARaw := in.TotalA.Or(aa.Total)
	totalBRaw := in.TotalB.Or(bb.Total)
	var totalANum, totalBNum float64
	var totalAOK, totalBOK bool
	if totalARaw != "" {
		totalANum, totalAOK = String(totalARaw).Num()
	}
	if totalBRaw != "" {
		totalBNum, totalBOK = String(totalBRaw).Num()
	}

	var grand float64
	grandOK := true
	switch {
	case totalAOK && totalBOK:
		grand = totalANum + totalBNum
	case totalAOK:
		grand = totalANum
	case totalBOK:
		grand = totalBNum
	default:
		grandOK = false
	}
	grandTotal := in.GrandTotal.Raw()
	if !in.GrandTotal.Defined() || grandTotal == "" {
		grandTotal = ""
		if grandOK && grand != 0 {
			grandTotal = formatMoney(grand)
		}
	}

	eta := in.ETA
	if eta == "" {
		eta = t.ETAFallback
	}

	replacements := map[string]string{
		"to_shipowner":     EscapeHTML(in.ToShipowner),
		"date":             EscapeHTML(in.Date),
		"ref":              EscapeHTML(in.Ref),
		"mv":               EscapeHTML(in.MV),
		"dwt":              EscapeHTML(in.DWT.Raw()),
		"grt":              EscapeHTML(in.GRT.Raw()),
		"loa":              EscapeHTML(in.LOA.Raw()),
		"eta":              EscapeHTML(eta),
		"cargo_qty_mt":     EscapeHTML(in.CargoQtyMT.Raw()),
		"cargo_name_upper": EscapeHTML(in.CargoName),
		"cargo_type":       EscapeHTML(in.CargoType),
		"port_upper":       EscapeHTML(in.Port),
		"loading_term":     EscapeHTML(in.LoadingTerm),
		"at_anchorage":     EscapeHTML(in.AtAnchorage),
		"at_berth":         EscapeHTML(in.AtBerth),
		"total_a":          EscapeHTML(totalARaw),
		"total_b":          EscapeHTML(totalBRaw),
		"grand_total":      EscapeHTML(grandTotal),
		"bank_name":        EscapeHTML(in.BankName),
		"bank_address":     EscapeHTML(in.BankAddress),
		"beneficiary":      EscapeHTML(in.Beneficiary),
		"usd_account":      EscapeHTML(in.USDAccount),
		"swift":            EscapeHTML(in.SWIFT),
		"AA_ROWS":          aa.HTML,
		"BB_ROWS":          bb.HTML,
	}

	return placeholderRe.ReplaceAllStringFunc(template, func(token string) string {
		key := placeholderRe.FindStringSubmatch(token)[1]
		value, ok := replacements[key]
		if !ok {
			return "—"
		}
		return value
	})
}
