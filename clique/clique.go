// Package clique implements the Clique variant: the same streaming
// Decoder facade as pinball, but resolved with a simpler local-clique
// tie-breaking rule instead of the 9-stage fixed pipeline. A flipped
// detector with exactly one eligible flipped neighbor pairs with it and
// corrects; zero or several eligible neighbors are left unresolved and
// surface as residual.
package clique

import (
	"sort"

	"github.com/aknapen/pinball/geometry"
	"github.com/aknapen/pinball/leaf"
	"github.com/aknapen/pinball/predecoder"
	"github.com/aknapen/pinball/syndrome"
)

type site struct {
	round, row, col int
}

type edge struct {
	a, b site
	dqs  [][2]int
}

func (e edge) other(s site) (site, bool) {
	switch s {
	case e.a:
		return e.b, true
	case e.b:
		return e.a, true
	default:
		return site{}, false
	}
}

// Clique adapts the single-pass local-clique resolver to the
// predecoder.Decoder facade.
type Clique struct {
	cat *geometry.Catalog

	rounds  []*syndrome.Round
	counter int

	blockCorrection *syndrome.DataMask
	residual        *syndrome.Round
}

// New builds a Clique decoder for the given code distance.
func New(codeDistance int) (*Clique, error) {
	cat, err := geometry.ForDistance(codeDistance)
	if err != nil {
		return nil, err
	}
	c := &Clique{cat: cat}
	c.Reset()
	return c, nil
}

// Reset clears all per-block state, starting a fresh block.
func (c *Clique) Reset() {
	c.rounds = make([]*syndrome.Round, 0, c.cat.D)
	c.counter = 0
	c.blockCorrection = syndrome.NewDataMask(c.cat.D)
	c.residual = syndrome.NewRound(c.cat.R, c.cat.C)
}

// Decode buffers one syndrome measurement round. The block is resolved
// in full once the final round (index d-1) arrives, matching the
// "simpler ... rule" framing of a single-pass, block-level decoder.
func (c *Clique) Decode(round *syndrome.Round, roundIndex int) error {
	if roundIndex != c.counter {
		return predecoder.ErrRoundOutOfOrder
	}
	if round.Rows != c.cat.R || round.Cols != c.cat.C {
		return predecoder.ErrRoundShape
	}
	c.rounds = append(c.rounds, round.Clone())
	c.counter++
	if roundIndex == c.cat.D-1 {
		c.resolve()
	}
	return nil
}

func (c *Clique) BlockCorrection() *syndrome.DataMask { return c.blockCorrection.Clone() }

func (c *Clique) ComplexFlag() bool { return c.residual.AnySet() }

func (c *Clique) Residual() *syndrome.Round { return c.residual.Clone() }

// buildEdges enumerates every adjacency the Pinball pipeline's stages
// 1-8 recognize, reused here as an undirected tie-breaking graph: same-
// round bulk diagonals (stages 2-5), cross-round same-position
// detectors (stage 1), cross-round spacetime diagonals (stages 6-7),
// and the bidirectional cross-round hook (stage 8). Stage 9's boundary
// bookkeeping is Pinball-only and has no Clique equivalent.
func (c *Clique) buildEdges() []edge {
	cat := c.cat
	var edges []edge

	for r := 0; r < len(c.rounds); r++ {
		for _, p := range [][]geometry.Pair{cat.Stage2, cat.Stage3, cat.Stage4, cat.Stage5} {
			for _, pair := range p {
				edges = append(edges, edge{
					a:   site{r, pair.CenterRow, pair.CenterCol},
					b:   site{r, pair.NeighborRow, pair.NeighborCol},
					dqs: [][2]int{{pair.DQRow, pair.DQCol}},
				})
			}
		}
	}

	for r := 1; r < len(c.rounds); r++ {
		for i := 0; i < cat.R; i++ {
			for j := 0; j < cat.C; j++ {
				edges = append(edges, edge{a: site{r, i, j}, b: site{r - 1, i, j}})
			}
		}
		for _, p := range [][]geometry.Pair{cat.Stage6, cat.Stage7} {
			for _, pair := range p {
				edges = append(edges, edge{
					a:   site{r - 1, pair.CenterRow, pair.CenterCol},
					b:   site{r, pair.NeighborRow, pair.NeighborCol},
					dqs: [][2]int{{pair.DQRow, pair.DQCol}},
				})
			}
		}
		for _, h := range cat.Stage8 {
			dqs := [][2]int{{h.DQRow1, h.DQCol1}, {h.DQRow2, h.DQCol2}}
			lower := h.Row - 2
			edges = append(edges,
				edge{a: site{r, h.Row, h.Col}, b: site{r - 1, lower, h.Col}, dqs: dqs},
				edge{a: site{r - 1, h.Row, h.Col}, b: site{r, lower, h.Col}, dqs: dqs},
			)
		}
	}
	return edges
}

// resolve runs the single-pass local-clique tie-break over the whole
// buffered block.
func (c *Clique) resolve() {
	flipped := map[site]bool{}
	for r, round := range c.rounds {
		for i := 0; i < c.cat.R; i++ {
			for j := 0; j < c.cat.C; j++ {
				if round.Get(i, j) {
					flipped[site{r, i, j}] = true
				}
			}
		}
	}

	adjacency := map[site][]edge{}
	for _, e := range c.buildEdges() {
		adjacency[e.a] = append(adjacency[e.a], e)
		adjacency[e.b] = append(adjacency[e.b], e)
	}

	var sites []site
	for s := range flipped {
		sites = append(sites, s)
	}
	sort.Slice(sites, func(i, j int) bool {
		if sites[i].round != sites[j].round {
			return sites[i].round < sites[j].round
		}
		if sites[i].row != sites[j].row {
			return sites[i].row < sites[j].row
		}
		return sites[i].col < sites[j].col
	})

	consumed := map[site]bool{}
	for _, s := range sites {
		if consumed[s] {
			continue
		}
		var eligible []edge
		for _, e := range adjacency[s] {
			other, ok := e.other(s)
			if !ok || !flipped[other] || consumed[other] {
				continue
			}
			eligible = append(eligible, e)
		}
		if len(eligible) != 1 {
			continue
		}
		e := eligible[0]
		other, _ := e.other(s)

		correction, _, _ := leaf.Fire(true, true)
		if !correction {
			continue
		}
		consumed[s] = true
		consumed[other] = true
		for _, dq := range e.dqs {
			c.blockCorrection.Flip(dq[0], dq[1])
		}
	}

	for _, s := range sites {
		if !consumed[s] {
			c.residual.Set(s.row, s.col, true)
		}
	}
}

func init() {
	predecoder.Register(predecoder.Clique, func(codeDistance int) (predecoder.Decoder, error) {
		return New(codeDistance)
	})
}
