package geometry

// build constructs the full Geometry Catalog for distance d: R = d+1
// syndrome rows, C = (d-1)/2 syndrome columns per row, d data-qubit
// rows/columns.
func build(d int) *Catalog {
	r := d + 1
	c := (d - 1) / 2
	cat := &Catalog{D: d, R: r, C: c}

	inData := func(i, j int) bool { return i >= 0 && i < d && j >= 0 && j < d }
	inGrid := func(i, j int) bool { return i >= 0 && i < r && j >= 0 && j < c }

	// Stages 2-5: bulk, same-round. Domain is every odd center row i,
	// every column j; each stage probes one diagonal neighbor and
	// passes through (contributes no pair) when the neighbor or the
	// resulting data-qubit position falls outside the lattice.
	for i := 1; i < r; i += 2 {
		for j := 0; j < c; j++ {
			// Stage 2: top-right.
			if ni, nj := i-1, j; inGrid(ni, nj) {
				if dqi, dqj := i-1, 2*j+1; inData(dqi, dqj) {
					cat.Stage2 = append(cat.Stage2, Pair{i, j, ni, nj, dqi, dqj})
				}
			}
			// Stage 3: bottom-right.
			if ni, nj := i+1, j; inGrid(ni, nj) {
				if dqi, dqj := i, 2*j+1; inData(dqi, dqj) {
					cat.Stage3 = append(cat.Stage3, Pair{i, j, ni, nj, dqi, dqj})
				}
			}
			// Stage 4: bottom-left.
			if ni, nj := i+1, j-1; inGrid(ni, nj) {
				if dqi, dqj := i, 2*j; inData(dqi, dqj) {
					cat.Stage4 = append(cat.Stage4, Pair{i, j, ni, nj, dqi, dqj})
				}
			}
			// Stage 5: top-left.
			if ni, nj := i-1, j-1; inGrid(ni, nj) {
				if dqi, dqj := i-1, 2*j; inData(dqi, dqj) {
					cat.Stage5 = append(cat.Stage5, Pair{i, j, ni, nj, dqi, dqj})
				}
			}
		}
	}

	// Stages 6-7: spacetime diagonals, cross-round. Center sits on the
	// previous round's side; neighbor sits on the current round's side,
	// one row "ahead". Domain excludes row 0 (no previous-round side can
	// sit above the lattice top) and, symmetrically, the column that
	// would push the neighbor off the lattice for that row's checkerboard
	// parity.
	for i := 1; i < r; i++ {
		for j := 0; j < c; j++ {
			parity := i % 2
			// Stage 6: top-right. Excluded: last column of even rows.
			if !(parity == 0 && j == c-1) {
				ni, nj := i-1, j
				if inGrid(ni, nj) {
					dqi, dqj := i-1, 2*(j+1)-parity
					if inData(dqi, dqj) {
						cat.Stage6 = append(cat.Stage6, Pair{i, j, ni, nj, dqi, dqj})
					}
				}
			}
			// Stage 7: top-left. Excluded: first column of odd rows
			// (and, by the same bound, first column of any row, since
			// the neighbor column would be negative).
			ni, nj := i-1, j-1
			if inGrid(ni, nj) {
				dqi, dqj := i-1, 2*(j+1)-parity-1
				if inData(dqi, dqj) {
					cat.Stage7 = append(cat.Stage7, Pair{i, j, ni, nj, dqi, dqj})
				}
			}
		}
	}

	// Stage 8: hook, cross-round, row distance 2, width 2. Checked
	// bidirectionally by the stage kernel itself (see stage/hook.go) —
	// the catalog only enumerates candidate row/column sites.
	for i := 2; i < r; i++ {
		for j := 0; j < c; j++ {
			dqi1, dqj1 := i-1, 2*j+1
			dqi2, dqj2 := i-2, 2*j+1
			if inData(dqi1, dqj1) && inData(dqi2, dqj2) {
				cat.Stage8 = append(cat.Stage8, HookSite{i, j, dqi1, dqj1, dqi2, dqj2})
			}
		}
	}

	// Stage 9: edge/boundary. Restricted to the two genuine lattice
	// boundary rows — row 0 (always even, since R = d+1 is even) and
	// row R-1 = d (always odd, since d is odd) — paired against the
	// artificial always-1 boundary ancilla. See DESIGN.md for why this
	// is narrower than a literal "every even/odd row" reading.
	for j := 0; j < c; j++ {
		if j == c-1 {
			if dqi, dqj := 0, d-1; inData(dqi, dqj) {
				cat.Boundary = append(cat.Boundary, BoundarySite{0, j, dqi, dqj})
			}
		}
		if j == 0 {
			if dqi, dqj := r-2, 0; inData(dqi, dqj) {
				cat.Boundary = append(cat.Boundary, BoundarySite{r - 1, j, dqi, dqj})
			}
		}
	}

	return cat
}
