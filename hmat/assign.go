package hmat

import (
	"fmt"
	"log"
	"sort"
)

// Worker is one addressable computation slot in the fixed pool
type Worker struct {
	Proc, Thread int
}

// Assignment maps every leaf block to exactly one worker. Blocks are
// held in canonical order (row start, then column start) so emission is
// independent of scheduling decisions.
type Assignment struct {
	Tree    *ClusterTree
	Blocks  []Block
	Workers []Worker  // proc-major, thread-minor
	Owner   []int     // Blocks[i] -> index into Workers
	Load    []float64 // cumulative cost per worker

	Procs, Threads int
}

// Assign distributes the leaf blocks across procs x threads workers by
// LPT (longest processing time first): blocks sorted by descending cost
// each go to the currently least-loaded worker. Deterministic: cost ties
// break on canonical block order, load ties on lowest worker id.
func Assign(tree *ClusterTree, blocks []Block, procs, threads int) (*Assignment, error) {
	if procs < 1 || threads < 1 {
		return nil, fmt.Errorf("invalid worker pool: %d procs x %d threads (both must be >= 1)", procs, threads)
	}

	a := &Assignment{
		Tree:    tree,
		Blocks:  append([]Block{}, blocks...),
		Workers: make([]Worker, procs*threads),
		Procs:   procs,
		Threads: threads,
	}
	for p := 0; p < procs; p++ {
		for th := 0; th < threads; th++ {
			a.Workers[p*threads+th] = Worker{Proc: p, Thread: th}
		}
	}
	a.Owner = make([]int, len(a.Blocks))
	a.Load = make([]float64, len(a.Workers))

	sort.Slice(a.Blocks, func(i, j int) bool {
		return a.blockLess(a.Blocks[i], a.Blocks[j])
	})

	// LPT order over the canonical list
	order := make([]int, len(a.Blocks))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return a.Blocks[order[i]].Cost > a.Blocks[order[j]].Cost
	})

	for _, bi := range order {
		w := 0
		for k := 1; k < len(a.Load); k++ {
			if a.Load[k] < a.Load[w] {
				w = k
			}
		}
		a.Owner[bi] = w
		a.Load[w] += a.Blocks[bi].Cost
	}
	return a, nil
}

// blockLess is the canonical block ordering: row cluster start index,
// then column cluster start index
func (a *Assignment) blockLess(x, y Block) bool {
	xr, yr := a.Tree.Clusters[x.Row].Begin, a.Tree.Clusters[y.Row].Begin
	if xr != yr {
		return xr < yr
	}
	return a.Tree.Clusters[x.Col].Begin < a.Tree.Clusters[y.Col].Begin
}

// TotalCost sums the cost of all blocks
func (a *Assignment) TotalCost() (total float64) {
	for _, b := range a.Blocks {
		total += b.Cost
	}
	return
}

// MaxLoad returns the largest per-worker cumulative cost
func (a *Assignment) MaxLoad() (maxLoad float64) {
	for _, l := range a.Load {
		if l > maxLoad {
			maxLoad = l
		}
	}
	return
}

// PrintSummary reports per-worker load balance
func (a *Assignment) PrintSummary() {
	var (
		nRk, nDense int
	)
	for _, b := range a.Blocks {
		if b.Kind == RK {
			nRk++
		} else {
			nDense++
		}
	}
	log.Printf("Assigned %d leaf blocks (%d Rk, %d dense) to %d procs x %d threads",
		len(a.Blocks), nRk, nDense, a.Procs, a.Threads)
	if len(a.Blocks) == 0 {
		return
	}
	counts := make([]int, len(a.Workers))
	for _, w := range a.Owner {
		counts[w]++
	}
	avg := a.TotalCost() / float64(len(a.Workers))
	for i, w := range a.Workers {
		imbalance := 0.
		if avg > 0 {
			imbalance = a.Load[i] / avg
		}
		log.Printf("  proc %d thread %d: %d blocks, cost %.0f (%.2fx mean)",
			w.Proc, w.Thread, counts[i], a.Load[i], imbalance)
	}
}
