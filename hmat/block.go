package hmat

import (
	"fmt"
	"sync"
)

// BlockKind classifies a leaf block. The values are the mattype codes
// consumed by the downstream visualizer.
type BlockKind int

const (
	RK    BlockKind = 1 // low-rank-admissible
	Dense BlockKind = 2 // inadmissible, kept dense
)

func (k BlockKind) String() string {
	switch k {
	case RK:
		return "Rk"
	case Dense:
		return "Dense"
	}
	return fmt.Sprintf("BlockKind(%d)", int(k))
}

// Block is a leaf sub-block of the N x N interaction matrix, identified
// by its row and column cluster arena ids.
type Block struct {
	Row, Col int
	Kind     BlockKind
	Cost     float64
}

// Admissible applies the standard admissibility condition
// min(diam R, diam C) <= eta * dist(R, C). The diagonal (r == c) is
// never admissible.
func (t *ClusterTree) Admissible(r, c int, eta float64) bool {
	if r == c {
		return false
	}
	rb, cb := t.Clusters[r].Box, t.Clusters[c].Box
	diam := rb.Diameter()
	if d := cb.Diameter(); d < diam {
		diam = d
	}
	return diam <= eta*rb.Distance(cb)
}

// BuildBlocks recursively partitions the interaction matrix starting
// from (root, root): an admissible pair becomes an Rk leaf, a pair with
// either side a leaf cluster becomes a dense leaf, anything else recurses
// into the four child combinations. The returned leaves tile the full
// N x N index space. Costs are attached from the rank model.
func (t *ClusterTree) BuildBlocks(eta float64, model RankModel, maxThreads int) ([]Block, error) {
	if eta <= 0 {
		return nil, fmt.Errorf("admissibility parameter must be positive, got %g", eta)
	}
	if t.Root < 0 {
		return nil, nil
	}
	spawnDepth := 0
	for w := 1; w < maxThreads; w *= 2 {
		spawnDepth++
	}
	return t.buildBlocks(t.Root, t.Root, eta, model, spawnDepth), nil
}

func (t *ClusterTree) buildBlocks(row, col int, eta float64, model RankModel, spawn int) []Block {
	rc, cc := t.Clusters[row], t.Clusters[col]
	if t.Admissible(row, col, eta) {
		return []Block{t.newLeaf(row, col, RK, model)}
	}
	if rc.IsLeaf() || cc.IsLeaf() {
		return []Block{t.newLeaf(row, col, Dense, model)}
	}

	quads := [4][2]int{
		{rc.Left, cc.Left},
		{rc.Left, cc.Right},
		{rc.Right, cc.Left},
		{rc.Right, cc.Right},
	}
	var results [4][]Block
	if spawn > 0 {
		var wg sync.WaitGroup
		for i, q := range quads {
			wg.Add(1)
			go func(i, row, col int) {
				defer wg.Done()
				results[i] = t.buildBlocks(row, col, eta, model, spawn-2)
			}(i, q[0], q[1])
		}
		wg.Wait()
	} else {
		for i, q := range quads {
			results[i] = t.buildBlocks(q[0], q[1], eta, model, 0)
		}
	}
	// merge in child order so the block list is thread-count independent
	var blocks []Block
	for _, r := range results {
		blocks = append(blocks, r...)
	}
	return blocks
}

func (t *ClusterTree) newLeaf(row, col int, kind BlockKind, model RankModel) Block {
	return Block{
		Row:  row,
		Col:  col,
		Kind: kind,
		Cost: BlockCost(kind, t.Clusters[row].Size(), t.Clusters[col].Size(), model),
	}
}
