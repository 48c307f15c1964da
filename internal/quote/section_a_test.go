package quote

import (
	"strings"
	"testing"
)

func findRow(rows []Row, item string) (Row, bool) {
	for _, r := range rows {
		if r.Item == item {
			return r, true
		}
	}
	return Row{}, false
}

func TestSectionAQuyNhonWorkedExample(t *testing.T) {
	in := Input{
		GRT:            Number(10000),
		LOA:            Number(150),
		BerthHours:     Number(96),
		AnchorageHours: Number(24),
		AtBerth:        "x",
		LoadingTerm:    "import",
	}
	sec := BuildSectionA(in, QNTariff())

	if len(sec.Rows) != 10 {
		t.Fatalf("expected 10 rows, got %d", len(sec.Rows))
	}
	wantAmounts := map[string]string{
		"Tonnage":               "680.00",
		"Navigation due":        "1,160.00",
		"Pilotage":              "68.00",
		"Tug assistance charge": "6,792.00",
		"Moor / Unmooring":      "120.00",
		"Berth due":             "2,976.00",
		"Anchorage fees if any": "120.00",
		"Quarantine fee":        "220.00",
		"Clearance fees":        "100.00",
		"Garbage removal fee":   "34.00",
	}
	for item, want := range wantAmounts {
		row, ok := findRow(sec.Rows, item)
		if !ok {
			t.Fatalf("missing row %q", item)
		}
		if got := FormatAmount(row.Amount); got != want {
			t.Fatalf("row %q amount = %q, want %q", item, got, want)
		}
	}
	if sec.Total != "12,270.00" {
		t.Fatalf("subtotal = %q, want 12,270.00", sec.Total)
	}
}

func TestSectionABerthAndBuoyAreMutuallyExclusive(t *testing.T) {
	berth := BuildSectionA(Input{GRT: Number(12000), AtBerth: "x"}, HCMTariff())
	if _, ok := findRow(berth.Rows, "Buoy due"); ok {
		t.Fatal("berth mooring must not produce a buoy due row")
	}
	if _, ok := findRow(berth.Rows, "Berth due"); !ok {
		t.Fatal("berth mooring must produce a berth due row")
	}

	anch := BuildSectionA(Input{GRT: Number(12000), AtAnchorage: "x"}, HCMTariff())
	if _, ok := findRow(anch.Rows, "Berth due"); ok {
		t.Fatal("anchorage mooring must not produce a berth due row")
	}
	row, ok := findRow(anch.Rows, "Buoy due")
	if !ok {
		t.Fatal("anchorage mooring must produce a buoy due row")
	}
	// 0.0013 * 24 hrs * 12000 GRT
	if got := FormatAmount(row.Amount); got != "374.40" {
		t.Fatalf("buoy due = %q, want 374.40", got)
	}
}

func TestSectionAHCMPilotageTiers(t *testing.T) {
	sec := BuildSectionA(Input{GRT: Number(10000), AtBerth: "x"}, HCMTariff())
	row, ok := findRow(sec.Rows, "Pilotage")
	if !ok {
		t.Fatal("missing pilotage row")
	}
	if got := FormatAmount(row.Amount); got != "680.00" {
		t.Fatalf("first tier = %q, want 680.00", got)
	}
	var tiers []Row
	for _, r := range sec.Rows {
		if strings.Contains(r.Remark, "miles") {
			tiers = append(tiers, r)
		}
	}
	if len(tiers) != 3 {
		t.Fatalf("expected 3 pilotage tiers, got %d", len(tiers))
	}
	if got := FormatAmount(tiers[1].Amount); got != "880.00" {
		t.Fatalf("second tier = %q, want 880.00", got)
	}
	if got := FormatAmount(tiers[2].Amount); got != "510.00" {
		t.Fatalf("third tier (default 17 miles) = %q, want 510.00", got)
	}
	if tiers[1].No.Raw() != "" || !tiers[1].No.Defined() {
		t.Fatal("continuation tiers must print a blank sequence number")
	}
}

func TestSectionAExportAddsAdvisoryRow(t *testing.T) {
	export := BuildSectionA(Input{GRT: Number(5000), LoadingTerm: "export"}, QNTariff())
	row, ok := findRow(export.Rows, "Ocean Frt Tax")
	if !ok {
		t.Fatal("export freight tax row missing")
	}
	if row.Amount.Raw() != "PLS ADVISE" || row.Remark != "PLS ADVISE" {
		t.Fatalf("advisory row malformed: %+v", row)
	}
	if _, numeric := row.Amount.Num(); numeric {
		t.Fatal("advisory amount must not contribute to the subtotal")
	}

	imported := BuildSectionA(Input{GRT: Number(5000), LoadingTerm: "import"}, QNTariff())
	if _, ok := findRow(imported.Rows, "Ocean Frt Tax"); ok {
		t.Fatal("import must not produce the freight tax row")
	}
}

func TestSectionAOptionalServiceRows(t *testing.T) {
	in := Input{
		GRT:                 Number(8000),
		TransportQuarantine: Number(80),
		BoatHire:            Number(120),
		TallyFee:            String("0"),
	}
	sec := BuildSectionA(in, QNTariff())
	if _, ok := findRow(sec.Rows, "Transport for entry quarantine formality"); !ok {
		t.Fatal("transport-for-quarantine row missing")
	}
	if _, ok := findRow(sec.Rows, "Boat-hire for entry quarantine"); !ok {
		t.Fatal("boat-hire row missing")
	}
	if _, ok := findRow(sec.Rows, "Ship's side tally fee"); ok {
		t.Fatal("zero tally fee must not produce a row")
	}
}

func TestSectionAMissingGRTRendersFormulas(t *testing.T) {
	sec := BuildSectionA(Input{LOA: Number(100)}, QNTariff())
	row, ok := findRow(sec.Rows, "Tonnage")
	if !ok {
		t.Fatal("missing tonnage row")
	}
	if row.Amount.Raw() != "0.034*GRT*2" {
		t.Fatalf("tonnage placeholder = %q", row.Amount.Raw())
	}
	nav, _ := findRow(sec.Rows, "Navigation due")
	if nav.Amount.Raw() != "0.058*GRT*2" {
		t.Fatalf("navigation placeholder = %q", nav.Amount.Raw())
	}
	berth, _ := findRow(sec.Rows, "Berth due")
	if berth.Amount.Raw() != "0.0031*GRT*96" {
		t.Fatalf("berth placeholder = %q", berth.Amount.Raw())
	}
}

func TestSectionAOverridePassthrough(t *testing.T) {
	in := Input{
		GRT: Number(10000), // would produce ten auto rows
		SectionA: []Row{
			{No: String("1"), Item: "Lump sum", Amount: Number(1500)},
			{Item: "Note", Amount: String("PLS ADVISE")},
		},
	}
	sec := BuildSectionA(in, QNTariff())
	if len(sec.Rows) != 2 {
		t.Fatalf("override must render exactly the supplied rows, got %d", len(sec.Rows))
	}
	if sec.Total != "1,500.00" {
		t.Fatalf("override subtotal = %q, want 1,500.00", sec.Total)
	}
}

func TestSectionAGarbageRemoval(t *testing.T) {
	// ceil((96/24)/2) = 2 units.
	berth := BuildSectionA(Input{GRT: Number(9000), BerthHours: Number(96), AtBerth: "x"}, HCMTariff())
	row, _ := findRow(berth.Rows, "Garbage removal fee")
	if got := FormatAmount(row.Amount); got != "70.00" {
		t.Fatalf("berth garbage = %q, want 70.00", got)
	}
	anch := BuildSectionA(Input{GRT: Number(9000), BerthHours: Number(96), AtAnchorage: "x"}, HCMTariff())
	row, _ = findRow(anch.Rows, "Garbage removal fee")
	if got := FormatAmount(row.Amount); got != "110.00" {
		t.Fatalf("anchorage garbage = %q, want 110.00", got)
	}
}
