package leaf

import "testing"

func TestFireTruthTable(t *testing.T) {
	cases := []struct {
		center, neighbor                    bool
		wantCorr, wantCenter, wantNeighbor bool
	}{
		{false, false, false, false, false},
		{true, false, false, true, false},
		{false, true, false, false, true},
		{true, true, true, false, false},
	}
	for _, c := range cases {
		corr, co, no := Fire(c.center, c.neighbor)
		if corr != c.wantCorr || co != c.wantCenter || no != c.wantNeighbor {
			t.Errorf("Fire(%v,%v) = (%v,%v,%v), want (%v,%v,%v)",
				c.center, c.neighbor, corr, co, no, c.wantCorr, c.wantCenter, c.wantNeighbor)
		}
	}
}

// TestFireIdempotent is property P1: re-firing leaf on its own output
// never fires again and never changes the output further.
func TestFireIdempotent(t *testing.T) {
	for _, center := range []bool{false, true} {
		for _, neighbor := range []bool{false, true} {
			_, co, no := Fire(center, neighbor)
			corr2, co2, no2 := Fire(co, no)
			if corr2 {
				t.Errorf("Fire(%v,%v) output still fires when re-fed", co, no)
			}
			if co2 != co || no2 != no {
				t.Errorf("Fire not idempotent for (%v,%v)", center, neighbor)
			}
		}
	}
}

func TestFireClearance(t *testing.T) {
	// I3: once fired, both sides are cleared.
	_, co, no := Fire(true, true)
	if co || no {
		t.Errorf("firing leaf must clear both inputs")
	}
}
