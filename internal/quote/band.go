package quote

import "math"

// Band is one row of an ordered fee schedule. Upper is the band's upper
// bound; Inclusive controls whether a value equal to the bound still falls
// in this band. None marks bands that charge nothing (e.g. agency fee below
// 1,000 GRT).
type Band struct {
	Upper     float64
	Inclusive bool
	Amount    float64
	Label     string
	None      bool
}

// Table is an ascending list of bands. The final band is open-ended.
type Table []Band

// open caps the last band of every table.
var open = math.Inf(1)

// Lookup scans the table in order and returns the first band that admits v.
// Tables always terminate with an open-ended band, so a match is guaranteed
// for any finite input.
func (t Table) Lookup(v float64) (Band, bool) {
	for _, b := range t {
		if v < b.Upper || (b.Inclusive && v == b.Upper) {
			return b, true
		}
	}
	return Band{}, false
}
