package quote

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Section bundles one invoice section: the logical rows, the rendered table
// body, and the formatted subtotal. Total is empty when the subtotal is
// unknown or zero.
type Section struct {
	Rows  []Row
	HTML  string
	Total string
}

const aaRowTpl = `
      <tr>
        <td class="col-no">%s</td>
        <td class="col-item"><span class="bold">%s</span></td>
        <td class="col-details">%s</td>
        <td class="col-add">%s</td>
        <td class="col-remark">%s</td>
        <td class="col-amount">%s</td>
      </tr>`

const aaMergedRowTpl = `
      <tr>
        <td class="col-no">%s</td>
        <td class="col-item" colspan="2"><span class="bold">%s</span></td>
        <td class="col-add">%s</td>
        <td class="col-remark">%s</td>
        <td class="col-amount">%s</td>
      </tr>`

// BuildSectionA computes the port disbursement line items for the given
// schedule. When the caller supplies explicit rows they render verbatim
// (amount formatting only) and all auto-computation is skipped.
func BuildSectionA(in Input, t Tariff) Section {
	if len(in.SectionA) > 0 {
		return finishSection(in.SectionA, func(r Row, i int) string { return renderRowA(t, r, i) })
	}

	grtDisplay := "GRT"
	if in.GRT.Defined() {
		grtDisplay = EscapeHTML(in.GRT.Raw())
	}
	grt, grtOK := in.GRT.Num()

	berthHours := numOrDefault(in.BerthHours, 96)
	berthHoursText := formatScalar(berthHours) + " hrs"
	berthDays := "0.0"
	if berthHours > 0 {
		berthDays = strconv.FormatFloat(math.Ceil(berthHours/24), 'f', 1, 64)
	}
	berthRemark := "abt. " + berthDays + " days"

	anchHours := numOrDefault(in.AnchorageHours, 24)
	anchHoursText := formatScalar(anchHours) + " hrs"
	anchDays := "0.0"
	if anchHours > 0 {
		anchDays = strconv.FormatFloat(math.Ceil(anchHours/24), 'f', 1, 64)
	}
	anchRemark := ""
	if anchHours != 0 {
		anchRemark = "abt. " + anchDays + " days"
	}

	tonnage := chargeOrFormula(grtOK, t.TonnageRate*grt*2,
		fmt.Sprintf("%v*%s*2", t.TonnageRate, grtDisplay))
	navigation := chargeOrFormula(grtOK, t.NavigationRate*grt*2,
		fmt.Sprintf("%v*%s*2", t.NavigationRate, grtDisplay))

	location := in.mooringLocation()

	loa, loaOK := in.LOA.Num()
	tug := String("")
	if loaOK {
		if band, ok := t.Tug.Lookup(loa); ok && !band.None {
			tug = String(formatMoney(band.Amount))
		}
	}

	mooringTable := t.MooringBerth
	if t.LocationAware && location == "anchorage" {
		mooringTable = t.MooringAnchorage
	}
	moor := String("")
	if grtOK {
		if band, ok := mooringTable.Lookup(grt); ok && !band.None {
			moor = String(formatMoney(band.Amount))
		}
	}

	berthDue := chargeOrFormula(grtOK, t.BerthDueRate*berthHours*grt,
		fmt.Sprintf("%v*%s*%s", t.BerthDueRate, grtDisplay, formatScalar(berthHours)))
	buoyDue := chargeOrFormula(grtOK, t.BuoyDueRate*anchHours*grt,
		fmt.Sprintf("%v*%s*%s", t.BuoyDueRate, grtDisplay, formatScalar(anchHours)))
	anchorageFees := chargeOrFormula(grtOK, t.AnchorageRate*anchHours*grt,
		fmt.Sprintf("%v*%s*%s", t.AnchorageRate, grtDisplay, formatScalar(anchHours)))

	garbageRate := t.GarbageBerthRate
	garbageDetails := t.GarbageBerthDetails
	if t.LocationAware && location == "anchorage" {
		garbageRate = t.GarbageAnchorageRate
		garbageDetails = t.GarbageAnchorageDetails
	}
	garbage := String(formatMoney(garbageRate * math.Ceil((berthHours/24)/2)))

	rows := make([]Row, 0, 16)
	seq := 0
	numbered := func(r Row) {
		if t.RowNumbers {
			seq++
			if !r.No.Defined() {
				r.No = String(strconv.Itoa(seq))
			}
		}
		rows = append(rows, r)
	}
	unnumbered := func(r Row) {
		if t.RowNumbers {
			r.No = String("")
		}
		rows = append(rows, r)
	}
	plain := func(r Row) { rows = append(rows, r) }

	numbered(Row{Item: "Tonnage", Details: t.TonnageDetails, Amount: tonnage})
	numbered(Row{Item: "Navigation due", Details: t.NavigationDetails, Amount: navigation})

	if t.PilotageTiered {
		thirdMiles := numOrDefault(in.PilotageThirdMiles, t.PilotageThirdMilesDflt)
		tier1 := chargeOrFormula(grtOK, t.PilotageTier1Rate*grt*2*t.PilotageTier1Miles,
			fmt.Sprintf("%v*%s*2*%s", t.PilotageTier1Rate, grtDisplay, formatScalar(t.PilotageTier1Miles)))
		tier2 := chargeOrFormula(grtOK, t.PilotageTier2Rate*grt*2*t.PilotageTier2Miles,
			fmt.Sprintf("%v*%s*2*%s", t.PilotageTier2Rate, grtDisplay, formatScalar(t.PilotageTier2Miles)))
		tier3 := chargeOrFormula(grtOK, t.PilotageTier3Rate*grt*2*thirdMiles,
			fmt.Sprintf("%v*%s*2*%s", t.PilotageTier3Rate, grtDisplay, formatScalar(thirdMiles)))
		numbered(Row{
			Item:    "Pilotage",
			Details: t.PilotageTier1Details,
			Add:     formatScalar(t.PilotageTier1Miles) + " miles",
			Remark:  "1st " + formatScalar(t.PilotageTier1Miles) + " miles",
			Amount:  tier1,
		})
		unnumbered(Row{
			Details: t.PilotageTier2Details,
			Add:     formatScalar(t.PilotageTier2Miles) + " miles",
			Remark:  "2nd " + formatScalar(t.PilotageTier2Miles) + " miles",
			Amount:  tier2,
		})
		unnumbered(Row{
			Details: t.PilotageTier3Details,
			Add:     formatScalar(thirdMiles) + " miles",
			Remark:  "3rd " + formatScalar(thirdMiles) + " miles",
			Amount:  tier3,
		})
	} else {
		pilotage := chargeOrFormula(grtOK, t.PilotageFlatRate*grt*2,
			fmt.Sprintf("%v*%s*2", t.PilotageFlatRate, grtDisplay))
		numbered(Row{Item: "Pilotage", Details: t.PilotageFlatDetails, Amount: pilotage})
	}

	numbered(Row{Item: "Tug assistance charge", Details: "(in & out)", Amount: tug})
	numbered(Row{Item: "Moor / Unmooring", Amount: moor})

	if t.LocationAware && location == "anchorage" {
		numbered(Row{
			Item:    "Buoy due",
			Details: fmt.Sprintf("USD %v / GRT / hour x", t.BuoyDueRate),
			Add:     anchHoursText,
			Remark:  anchRemark,
			Amount:  buoyDue,
		})
	} else {
		numbered(Row{
			Item:    "Berth due",
			Details: fmt.Sprintf("USD %v / GRT / hour x", t.BerthDueRate),
			Add:     berthHoursText,
			Remark:  berthRemark,
			Amount:  berthDue,
		})
	}

	numbered(Row{
		Item:    "Anchorage fees if any",
		Details: fmt.Sprintf("USD %v / GRT / hour x", t.AnchorageRate),
		Add:     anchHoursText,
		Remark:  anchRemark,
		Amount:  anchorageFees,
	})

	numbered(Row{Item: "Quarantine fee", Details: t.QuarantineDetails, Amount: String(formatMoney(t.QuarantineFee))})

	if strings.ToLower(in.LoadingTerm) == "export" {
		plain(Row{
			Item:    "Ocean Frt Tax",
			Details: "Total Frt x 2% tax rate",
			Remark:  "PLS ADVISE",
			Amount:  String("PLS ADVISE"),
		})
	}

	if v, ok := positiveNum(in.TransportQuarantine); ok {
		plain(Row{
			Item:             "Transport for entry quarantine formality",
			Amount:           Number(v),
			MergeItemDetails: true,
		})
	}

	if v, ok := positiveNum(in.BoatHire); ok {
		plain(Row{
			Item:             "Boat-hire for entry quarantine",
			Amount:           Number(v),
			MergeItemDetails: t.MergeBoatHireRow,
		})
	}

	if v, ok := positiveNum(in.TallyFee); ok {
		plain(Row{Item: "Ship's side tally fee", Amount: Number(v)})
	}

	plain(Row{Item: "Clearance fees", Details: t.ClearanceDetails, Amount: String(formatMoney(t.ClearanceFee))})
	plain(Row{Item: "Garbage removal fee", Details: garbageDetails, Amount: garbage})

	return finishSection(rows, func(r Row, i int) string { return renderRowA(t, r, i) })
}

func renderRowA(t Tariff, row Row, index int) string {
	no := strconv.Itoa(index + 1)
	if t.RowNumbers && row.No.Defined() {
		no = EscapeHTML(row.No.Raw())
	}
	if row.MergeItemDetails {
		return fmt.Sprintf(aaMergedRowTpl,
			no, EscapeHTML(row.Item), EscapeHTML(row.Add), EscapeHTML(row.Remark), FormatAmount(row.Amount))
	}
	return fmt.Sprintf(aaRowTpl,
		no, EscapeHTML(row.Item), EscapeHTML(row.Details), EscapeHTML(row.Add), EscapeHTML(row.Remark), FormatAmount(row.Amount))
}

// finishSection sums the numeric row amounts (placeholder amounts are
// excluded) and joins the rendered rows.
func finishSection(rows []Row, render func(Row, int) string) Section {
	var sum float64
	parts := make([]string, len(rows))
	for i, r := range rows {
		if n, ok := r.Amount.Num(); ok {
			sum += n
		}
		parts[i] = render(r, i)
	}
	sec := Section{Rows: rows, HTML: strings.Join(parts, "\n")}
	if sum != 0 {
		sec.Total = formatMoney(sum)
	}
	return sec
}

// chargeOrFormula formats the computed charge, or falls back to the formula
// text when the keying figure is unknown.
func chargeOrFormula(ok bool, value float64, formula string) Flex {
	if !ok {
		return String(formula)
	}
	return String(formatMoney(value))
}

func numOrDefault(f Flex, def float64) float64 {
	if v, ok := f.Num(); ok {
		return v
	}
	return def
}

func positiveNum(f Flex) (float64, bool) {
	v, ok := f.Num()
	if !ok || v <= 0 {
		return 0, false
	}
	return v, true
}
