package quote

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
)

const bbRowTpl = `
      <tr>
        <td class="col-no">%d</td>
        <td class="col-details"><span class="bold">%s</span></td>
        <td class="col-amount">%s</td>
      </tr>`

const bbColspanRowTpl = `
      <tr>
        <td class="col-no">%d</td>
        <td class="col-details" colspan="4"><span class="bold">%s</span></td>
        <td class="col-amount">%s</td>
      </tr>`

// cargoHandlingRate matches the cargo description against the known
// categories and returns the per-tonne rate. Matching is case-insensitive
// substring containment; unknown cargo reports ok=false.
func cargoHandlingRate(name string) (float64, bool) {
	normalized := strings.ToUpper(name)
	switch {
	case strings.Contains(normalized, "BAG"):
		return 0.06, true
	case strings.Contains(normalized, "EQUIP"):
		return 0.1, true
	case strings.Contains(normalized, "BULK"):
		return 0.05, true
	}
	return 0, false
}

// BuildSectionB computes the agency fee (banded by GRT), the cargo handling
// fee (rate by cargo type times quantity) and the optional launch-service
// transport line. When the caller supplies rows, only named rows with blank
// amounts or details are back-filled; fully specified rows are untouched.
func BuildSectionB(in Input, t Tariff) Section {
	cargoKey := in.CargoType
	if cargoKey == "" {
		cargoKey = in.CargoName
	}
	cargoRate, cargoRateOK := cargoHandlingRate(cargoKey)
	cargoQty, cargoQtyOK := in.CargoQtyMT.Num()

	cargoAmount := Flex{}
	if cargoRateOK && cargoQtyOK {
		cargoAmount = Number(cargoRate * cargoQty)
	}

	transportLS, transportLSOK := in.TransportLS.Num()

	agencyAmount := Flex{}
	agencyDetail := ""
	if grt, ok := in.GRT.Num(); ok {
		if band, found := agencyFeeTable.Lookup(grt); found && !band.None {
			agencyAmount = Number(band.Amount)
			parts := []string{}
			if band.Label != "" {
				parts = append(parts, "On GRT: "+band.Label)
			}
			parts = append(parts, formatWholeUSD(band.Amount))
			agencyDetail = strings.Join(parts, ": ")
		}
	}

	cargoRateText := ""
	if cargoRateOK {
		cargoRateText = fmt.Sprintf("USD%.2f/mt", cargoRate)
	}
	cargoQtyText := ""
	if cargoQtyOK {
		cargoQtyText = humanize.CommafWithDigits(cargoQty, 3) + "mts"
	}
	cargoDetail := ""
	if cargoRateText != "" || cargoQtyText != "" {
		factors := []string{}
		if cargoRateText != "" {
			factors = append(factors, cargoRateText)
		}
		if cargoQtyText != "" {
			factors = append(factors, cargoQtyText)
		}
		cargoDetail = "On cargo: " + strings.Join(factors, " x ")
	}

	if len(in.SectionB) == 0 {
		rows := make([]Row, 0, 3)
		if agencyAmount.Defined() || agencyDetail != "" {
			rows = append(rows, Row{Details: agencyDetail, Amount: agencyAmount})
		}
		if cargoRateText != "" || cargoQtyText != "" {
			rows = append(rows, Row{Details: cargoDetail, Amount: cargoAmount})
		}
		if transportLSOK && transportLS > 0 {
			rows = append(rows, Row{Item: "Transport/Communication in L/S", Amount: Number(transportLS)})
		}
		return finishSection(rows, func(r Row, i int) string { return renderRowB(t, r, i) })
	}

	adjusted := make([]Row, len(in.SectionB))
	for i, row := range in.SectionB {
		item := strings.ToLower(row.Item)
		blankAmount := !row.Amount.Defined() || row.Amount.Raw() == ""
		switch {
		case strings.Contains(item, "agency fee on cargo") && blankAmount:
			if cargoDetail != "" {
				row.Details = cargoDetail
			}
			if cargoAmount.Defined() {
				row.Amount = cargoAmount
			}
		case strings.Contains(item, "agency fee on grt") && row.Details == "":
			if agencyDetail != "" {
				row.Details = agencyDetail
			}
		case strings.Contains(item, "transport") && blankAmount && transportLSOK && transportLS > 0:
			row.Amount = Number(transportLS)
		}
		adjusted[i] = row
	}
	return finishSection(adjusted, func(r Row, i int) string { return renderRowB(t, r, i) })
}

func renderRowB(t Tariff, row Row, index int) string {
	itemHTML := ""
	if row.Item != "" {
		itemHTML = `<span class="bold">` + EscapeHTML(row.Item) + `</span>`
	}
	detailsHTML := EscapeHTML(row.Details)
	detailText := itemHTML
	if itemHTML != "" && detailsHTML != "" {
		detailText = itemHTML + ": " + detailsHTML
	} else if detailsHTML != "" {
		detailText = detailsHTML
	}
	tpl := bbRowTpl
	if t.SectionBColspan {
		tpl = bbColspanRowTpl
	}
	return fmt.Sprintf(tpl, index+1, detailText, FormatAmount(row.Amount))
}
