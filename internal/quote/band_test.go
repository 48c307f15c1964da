package quote

import "testing"

func TestTugBandEdges(t *testing.T) {
	hcm := HCMTariff().Tug
	if band, ok := hcm.Lookup(79.9); !ok || !band.None {
		t.Fatal("vessels under 80m have no tug charge")
	}
	cases := []struct {
		loa  float64
		want float64
	}{
		{80, 510},
		{94.9, 510},
		{95, 1020},
		{205, 2800},
		{400, 2800},
	}
	for _, tc := range cases {
		band, ok := hcm.Lookup(tc.loa)
		if !ok || band.Amount != tc.want {
			t.Fatalf("LOA %v: got (%+v, %v), want %v", tc.loa, band, ok, tc.want)
		}
	}
}

func TestMooringBandEdges(t *testing.T) {
	qn := QNTariff().MooringBerth
	cases := []struct {
		grt  float64
		want float64
	}{
		{499, 32},
		{500, 50},
		{1000, 50},
		{1001, 66},
		{10000, 120},
		{15001, 180},
	}
	for _, tc := range cases {
		band, ok := qn.Lookup(tc.grt)
		if !ok || band.Amount != tc.want {
			t.Fatalf("GRT %v: got (%+v, %v), want %v", tc.grt, band, ok, tc.want)
		}
	}
}
