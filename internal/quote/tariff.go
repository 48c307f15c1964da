package quote

import "strings"

// Variant selects which port fee schedule prices the quote.
type Variant string

const (
	// VariantHCM is the Ho Chi Minh schedule.
	VariantHCM Variant = "hcm"
	// VariantQN is the Quy Nhon schedule.
	VariantQN Variant = "qn"
)

// ParseVariant maps user input onto a known schedule.
func ParseVariant(s string) (Variant, bool) {
	switch Variant(strings.ToLower(strings.TrimSpace(s))) {
	case VariantHCM:
		return VariantHCM, true
	case VariantQN:
		return VariantQN, true
	}
	return "", false
}

// Tariff holds one schedule's rate tables and formula constants. The two
// schedules share the row-builder shape; everything that differs between
// them lives here so each tariff's numbers stay auditable in one place.
type Tariff struct {
	Variant Variant

	// Tonnage due is 0.034/GRT x2 in both schedules.
	TonnageRate    float64
	TonnageDetails string

	NavigationRate    float64
	NavigationDetails string

	// PilotageTiered selects the three-tier mileage formula; otherwise the
	// flat in-and-out rate applies.
	PilotageTiered          bool
	PilotageFlatRate        float64
	PilotageFlatDetails     string
	PilotageTier1Rate       float64
	PilotageTier1Miles      float64
	PilotageTier2Rate       float64
	PilotageTier2Miles      float64
	PilotageTier3Rate       float64
	PilotageThirdMilesDflt  float64
	PilotageTier1Details    string
	PilotageTier2Details    string
	PilotageTier3Details    string

	Tug Table

	// MooringAnchorage is nil when the schedule ignores the mooring
	// location (QN charges one moor/unmoor table and always a berth due).
	MooringBerth     Table
	MooringAnchorage Table
	LocationAware    bool

	BerthDueRate  float64
	BuoyDueRate   float64
	AnchorageRate float64

	QuarantineFee     float64
	QuarantineDetails string

	ClearanceFee     float64
	ClearanceDetails string

	GarbageBerthRate        float64
	GarbageAnchorageRate    float64
	GarbageBerthDetails     string
	GarbageAnchorageDetails string

	// Presentation quirks preserved from the issued invoices.
	MergeBoatHireRow bool
	RowNumbers       bool
	SectionBColspan  bool
	ETAFallback      string
}

// TariffFor returns the schedule for the given variant.
func TariffFor(v Variant) (Tariff, bool) {
	switch v {
	case VariantHCM:
		return HCMTariff(), true
	case VariantQN:
		return QNTariff(), true
	}
	return Tariff{}, false
}

// agencyFeeTable bands the Section B agency fee by GRT. Both schedules use
// the same brackets; vessels at or under 1,000 GRT attract no fee.
var agencyFeeTable = Table{
	{Upper: 1000, Inclusive: true, None: true},
	{Upper: 3000, Inclusive: true, Amount: 500, Label: "1,001-3,000"},
	{Upper: 6000, Inclusive: true, Amount: 600, Label: "3,001-6,000"},
	{Upper: 10000, Inclusive: true, Amount: 700, Label: "6,001-10,000"},
	{Upper: 15000, Inclusive: true, Amount: 850, Label: "10,001-15,000"},
	{Upper: 25000, Inclusive: true, Amount: 1000, Label: "15,001-25,000"},
	{Upper: 50000, Inclusive: true, Amount: 1150, Label: "25,001-50,000"},
	{Upper: open, Inclusive: true, Amount: 1300, Label: ">50,000"},
}

// HCMTariff is the Ho Chi Minh schedule: tiered pilotage mileage, separate
// berth/anchorage mooring tables, and a buoy due for anchorage calls.
func HCMTariff() Tariff {
	return Tariff{
		Variant: VariantHCM,

		TonnageRate:    0.034,
		TonnageDetails: "USD 0.034 / GRT x 2 (out)",

		NavigationRate:    0.1,
		NavigationDetails: "USD 0.1 / GRT x 2 (in + out)",

		PilotageTiered:         true,
		PilotageTier1Rate:      0.0034,
		PilotageTier1Miles:     10,
		PilotageTier2Rate:      0.0022,
		PilotageTier2Miles:     20,
		PilotageTier3Rate:      0.0015,
		PilotageThirdMilesDflt: 17,
		PilotageTier1Details:   "USD0.0034 / GRT (in+out)",
		PilotageTier2Details:   "USD0.0022 / GRT (in+out)",
		PilotageTier3Details:   "USD0.0015 / GRT (in+out)",

		Tug: Table{
			{Upper: 80, None: true},
			{Upper: 95, Amount: 510},
			{Upper: 120, Amount: 1020},
			{Upper: 145, Amount: 1490},
			{Upper: 160, Amount: 1960},
			{Upper: 175, Amount: 2180},
			{Upper: 190, Amount: 2400},
			{Upper: 205, Amount: 2600},
			{Upper: open, Inclusive: true, Amount: 2800},
		},

		MooringBerth: Table{
			{Upper: 4000, Inclusive: true, Amount: 74},
			{Upper: 10000, Amount: 110},
			{Upper: 15000, Amount: 144},
			{Upper: 20000, Amount: 180},
			{Upper: open, Inclusive: true, Amount: 220},
		},
		MooringAnchorage: Table{
			{Upper: 4000, Inclusive: true, Amount: 180},
			{Upper: 10000, Amount: 240},
			{Upper: 15000, Amount: 330},
			{Upper: 20000, Amount: 380},
			{Upper: open, Inclusive: true, Amount: 440},
		},
		LocationAware: true,

		BerthDueRate:  0.0031,
		BuoyDueRate:   0.0013,
		AnchorageRate: 0.0005,

		QuarantineFee:     95,
		QuarantineDetails: "(out)",

		ClearanceFee:     50,
		ClearanceDetails: "(outward clearance)",

		GarbageBerthRate:        35,
		GarbageAnchorageRate:    55,
		GarbageBerthDetails:     "USD 35/cbm/2 days/time",
		GarbageAnchorageDetails: "USD 55/cbm/2 days/time",

		MergeBoatHireRow: true,
		RowNumbers:       true,
		SectionBColspan:  true,
		ETAFallback:      "TBN",
	}
}

// QNTariff is the Quy Nhon schedule: flat pilotage, a single moor/unmoor
// table, and no anchorage branch.
func QNTariff() Tariff {
	return Tariff{
		Variant: VariantQN,

		TonnageRate:    0.034,
		TonnageDetails: "USD 0.034 / GRT x 2 (out)",

		NavigationRate:    0.058,
		NavigationDetails: "USD 0.058 / GRT x 2 (in + out)",

		PilotageFlatRate:    0.0034,
		PilotageFlatDetails: "USD0.0034 / GRT x 2 (in & out)",

		Tug: Table{
			{Upper: 80, Amount: 1154},
			{Upper: 90, Amount: 2308},
			{Upper: 135, Amount: 3956},
			{Upper: 175, Amount: 6792},
			{Upper: open, Inclusive: true, Amount: 9916},
		},

		MooringBerth: Table{
			{Upper: 500, Amount: 32},
			{Upper: 1000, Inclusive: true, Amount: 50},
			{Upper: 4000, Inclusive: true, Amount: 66},
			{Upper: 10000, Inclusive: true, Amount: 120},
			{Upper: 15000, Inclusive: true, Amount: 140},
			{Upper: open, Inclusive: true, Amount: 180},
		},

		BerthDueRate:  0.0031,
		AnchorageRate: 0.0005,

		QuarantineFee:     220,
		QuarantineDetails: "(In+Out)",

		ClearanceFee:     100,
		ClearanceDetails: "(In/Outward clearance)",

		GarbageBerthRate:    17,
		GarbageBerthDetails: "USD17/cbm/2 days/time",
	}
}
