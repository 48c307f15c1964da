package quote

import "strings"

// Input carries the vessel, cargo and port particulars for one quote. All
// fields are optional; anything required by the business flow is enforced
// upstream of the engine. Field names match the template placeholder tokens
// on the wire.
type Input struct {
	ToShipowner string `json:"to_shipowner,omitempty"`
	Date        string `json:"date,omitempty"`
	Ref         string `json:"ref,omitempty"`
	MV          string `json:"mv,omitempty"`
	DWT         Flex   `json:"dwt,omitempty"`
	GRT         Flex   `json:"grt,omitempty"`
	LOA         Flex   `json:"loa,omitempty"`
	ETA         string `json:"eta,omitempty"`

	CargoQtyMT Flex   `json:"cargo_qty_mt,omitempty"`
	CargoName  string `json:"cargo_name_upper,omitempty"`
	CargoType  string `json:"cargo_type,omitempty"`

	Port string `json:"port_upper,omitempty"`
	// LoadingTerm is the freight-tax type; "export" adds the ocean freight
	// tax advisory row.
	LoadingTerm string `json:"loading_term,omitempty"`
	AtAnchorage string `json:"at_anchorage,omitempty"`
	AtBerth     string `json:"at_berth,omitempty"`

	TotalA     Flex `json:"total_a,omitempty"`
	TotalB     Flex `json:"total_b,omitempty"`
	GrandTotal Flex `json:"grand_total,omitempty"`

	BankName    string `json:"bank_name,omitempty"`
	BankAddress string `json:"bank_address,omitempty"`
	Beneficiary string `json:"beneficiary,omitempty"`
	USDAccount  string `json:"usd_account,omitempty"`
	SWIFT       string `json:"swift,omitempty"`

	BerthHours          Flex `json:"berth_hours,omitempty"`
	AnchorageHours      Flex `json:"anchorage_hours,omitempty"`
	TransportQuarantine Flex `json:"transport_quarantine,omitempty"`
	TransportLS         Flex `json:"transport_ls,omitempty"`
	BoatHire            Flex `json:"boat_hire_entry,omitempty"`
	TallyFee            Flex `json:"tally_fee,omitempty"`
	PilotageThirdMiles  Flex `json:"pilotage_third_miles,omitempty"`

	// SectionA and SectionB override auto-computation when supplied:
	// Section A rows render verbatim; Section B back-fills blank named rows.
	SectionA []Row `json:"AA_ROWS,omitempty"`
	SectionB []Row `json:"BB_ROWS,omitempty"`
}

// Row is one invoice line. A row whose Amount holds unparseable text (a
// formula placeholder) renders verbatim and contributes nothing to the
// subtotal.
type Row struct {
	// No overrides the printed sequence number: absent means number by
	// position, an empty string prints a blank cell (continuation rows).
	No               Flex   `json:"no,omitempty"`
	Item             string `json:"item,omitempty"`
	Details          string `json:"details,omitempty"`
	Add              string `json:"add,omitempty"`
	Remark           string `json:"remark,omitempty"`
	Amount           Flex   `json:"amount,omitempty"`
	MergeItemDetails bool   `json:"mergeItemDetails,omitempty"`
}

// mooringLocation normalizes the moored-at flags into berth or anchorage.
// Any non-blank at_anchorage marker means the vessel works at anchorage.
func (in Input) mooringLocation() string {
	if strings.TrimSpace(in.AtAnchorage) != "" {
		return "anchorage"
	}
	return "berth"
}
