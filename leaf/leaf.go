// Package leaf implements the predecoder's single reusable primitive:
// an AND-then-XOR-clear gate applied across adjacency pairs by every
// stage kernel.
package leaf

// Fire evaluates the leaf primitive on one (center, neighbor) ancilla
// pair. correction is set exactly when both inputs are set — the single
// event both can jointly explain. centerOut/neighborOut are the inputs
// with correction XORed out: when correction fires, both clear to false;
// otherwise both pass through unchanged.
func Fire(center, neighbor bool) (correction, centerOut, neighborOut bool) {
	correction = center && neighbor
	centerOut = center != correction
	neighborOut = neighbor != correction
	return
}
