package hmat

import (
	"runtime"
	"sort"
	"sync"

	"github.com/notargets/hmat/utils"
)

// Cluster is one node of the cluster tree: a contiguous range
// [Begin, End) of permuted element positions plus its bounding box.
// Children are arena indices, -1 for leaves.
type Cluster struct {
	Begin, End  int
	Left, Right int
	Depth       int
	Box         BBox
}

func (c Cluster) Size() int {
	return c.End - c.Begin
}

func (c Cluster) IsLeaf() bool {
	return c.Left < 0
}

// ClusterTree is a binary spatial hierarchy over element centroids,
// stored as an arena of Cluster records. Perm maps a permuted position
// to the original element index.
type ClusterTree struct {
	Clusters []Cluster
	Root     int // -1 for an empty tree
	Perm     []int

	MinClusterSize int
	points         [][]float64 // original-index-ordered centroids, read-only
}

const (
	// below this range size the bounding box scan runs serially
	boundsParallelCutoff = 4096
	// goroutine spawn stops below this subtree size
	spawnCutoff = 1024
)

// NewClusterTree builds the tree over the given element centroids.
// minClusterSize is the maximum leaf size; maxThreads limits goroutine
// spawning during construction (0 means GOMAXPROCS). The result is
// identical for any thread count.
func NewClusterTree(points [][]float64, minClusterSize, maxThreads int) *ClusterTree {
	if maxThreads <= 0 {
		maxThreads = runtime.GOMAXPROCS(0)
	}
	t := &ClusterTree{
		Root:           -1,
		MinClusterSize: minClusterSize,
		points:         points,
	}
	n := len(points)
	if n == 0 {
		return t
	}
	t.Perm = make([]int, n)
	for i := range t.Perm {
		t.Perm[i] = i
	}
	spawnDepth := 0
	for w := 1; w < maxThreads; w *= 2 {
		spawnDepth++
	}
	t.Clusters = t.buildSubtree(t.Perm, 0, 0, spawnDepth)
	t.Root = 0
	return t
}

// buildSubtree returns the subtree arena for the elements in ord, which
// occupies positions [begin, begin+len(ord)) of the global permutation.
// Index 0 of the returned slice is the subtree root; child indices are
// relative to the slice and shifted when the parent merges.
func (t *ClusterTree) buildSubtree(ord []int, begin, depth, spawn int) []Cluster {
	box := t.boundsOf(ord)
	node := Cluster{
		Begin: begin,
		End:   begin + len(ord),
		Left:  -1,
		Right: -1,
		Depth: depth,
		Box:   box,
	}
	axis, extent := box.LongestAxis()
	if len(ord) <= t.MinClusterSize || extent == 0 {
		// at minimum size, or degenerate (zero extent): forced leaf
		return []Cluster{node}
	}

	// Reorder by the chosen coordinate; ties broken by original element
	// index so the permutation is reproducible.
	pts := t.points
	sort.Slice(ord, func(i, j int) bool {
		ci, cj := pts[ord[i]][axis], pts[ord[j]][axis]
		if ci == cj {
			return ord[i] < ord[j]
		}
		return ci < cj
	})
	mid := (len(ord) + 1) / 2

	var left, right []Cluster
	if spawn > 0 {
		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			left = t.buildSubtree(ord[:mid], begin, depth+1, spawn-1)
		}()
		right = t.buildSubtree(ord[mid:], begin+mid, depth+1, spawn-1)
		wg.Wait()
	} else {
		left = t.buildSubtree(ord[:mid], begin, depth+1, 0)
		right = t.buildSubtree(ord[mid:], begin+mid, depth+1, 0)
	}

	nodes := make([]Cluster, 0, 1+len(left)+len(right))
	node.Left = 1
	node.Right = 1 + len(left)
	nodes = append(nodes, node)
	nodes = appendShifted(nodes, left, 1)
	nodes = appendShifted(nodes, right, 1+len(left))
	return nodes
}

func appendShifted(dst, src []Cluster, offset int) []Cluster {
	for _, c := range src {
		if c.Left >= 0 {
			c.Left += offset
			c.Right += offset
		}
		dst = append(dst, c)
	}
	return dst
}

// boundsOf computes the bounding box of the centroids listed in ord,
// chunked across goroutines for large ranges. Min/max reduction is
// order-independent, so the result does not depend on the chunking.
func (t *ClusterTree) boundsOf(ord []int) BBox {
	if len(ord) < boundsParallelCutoff {
		box := EmptyBBox()
		for _, id := range ord {
			box.Extend(t.points[id])
		}
		return box
	}
	nw := runtime.GOMAXPROCS(0)
	ib := utils.NewIndexBuckets(nw, len(ord))
	boxes := make([]BBox, nw)
	var wg sync.WaitGroup
	for n := 0; n < nw; n++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			kMin, kMax := ib.GetBucketRange(n)
			box := EmptyBBox()
			for k := kMin; k < kMax; k++ {
				box.Extend(t.points[ord[k]])
			}
			boxes[n] = box
		}(n)
	}
	wg.Wait()
	box := EmptyBBox()
	for _, b := range boxes {
		box.Union(b)
	}
	return box
}

// NumLeaves counts leaf clusters
func (t *ClusterTree) NumLeaves() (n int) {
	for _, c := range t.Clusters {
		if c.IsLeaf() {
			n++
		}
	}
	return
}
