package hmat

import (
	"fmt"
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// spiralPoints generates a deterministic, irregular 3D point set
func spiralPoints(n int) (pts [][]float64) {
	pts = make([][]float64, n)
	for i := 0; i < n; i++ {
		t := float64(i) * 0.7
		pts[i] = []float64{
			math.Cos(t) * (1 + 0.1*t),
			math.Sin(t) * (1 + 0.1*t),
			0.05 * t,
		}
	}
	return
}

func TestClusterTree_Partition(t *testing.T) {
	for _, n := range []int{1, 2, 3, 7, 33, 100, 257} {
		for _, minSize := range []int{1, 4, 16} {
			tree := NewClusterTree(spiralPoints(n), minSize, 0)
			require.Equal(t, 0, tree.Root)
			root := tree.Clusters[tree.Root]
			assert.Equal(t, 0, root.Begin)
			assert.Equal(t, n, root.End)

			// Perm is a permutation of 0..n-1
			perm := append([]int{}, tree.Perm...)
			sort.Ints(perm)
			for i, p := range perm {
				assert.Equal(t, i, p)
			}

			for id, c := range tree.Clusters {
				if c.IsLeaf() {
					assert.True(t, c.Size() <= minSize || c.Box.Diameter() == 0,
						"leaf %d of size %d exceeds min size %d", id, c.Size(), minSize)
					continue
				}
				// children partition the parent range with no gap or overlap
				l, r := tree.Clusters[c.Left], tree.Clusters[c.Right]
				assert.Equal(t, c.Begin, l.Begin)
				assert.Equal(t, l.End, r.Begin)
				assert.Equal(t, c.End, r.End)
				assert.True(t, math.Abs(float64(l.Size()-r.Size())) <= 1)
				assert.Equal(t, c.Depth+1, l.Depth)
				assert.Equal(t, c.Depth+1, r.Depth)
			}
		}
	}
}

func TestClusterTree_EmptyMesh(t *testing.T) {
	tree := NewClusterTree(nil, 32, 0)
	assert.Equal(t, -1, tree.Root)
	assert.Empty(t, tree.Clusters)

	blocks, err := tree.BuildBlocks(1.0, DefaultRankModel(), 0)
	require.NoError(t, err)
	assert.Empty(t, blocks)
}

func TestClusterTree_Determinism(t *testing.T) {
	pts := spiralPoints(500)
	ref := NewClusterTree(pts, 8, 1)
	for _, threads := range []int{2, 4, 16} {
		tree := NewClusterTree(pts, 8, threads)
		assert.Equal(t, ref.Perm, tree.Perm, "permutation depends on thread count %d", threads)
		assert.Equal(t, ref.Clusters, tree.Clusters, "arena depends on thread count %d", threads)
	}
}

func TestClusterTree_DegenerateCluster(t *testing.T) {
	// all elements at the same position: no axis to split, forced leaf
	pts := make([][]float64, 100)
	for i := range pts {
		pts[i] = []float64{1, 2, 3}
	}
	tree := NewClusterTree(pts, 10, 0)
	require.Equal(t, 1, len(tree.Clusters))
	root := tree.Clusters[tree.Root]
	assert.True(t, root.IsLeaf())
	assert.Equal(t, 100, root.Size())
	assert.Equal(t, 0., root.Box.Diameter())
}

func TestClusterTree_SplitAxisAndTies(t *testing.T) {
	// 4 elements in two well-separated pairs along x
	pts := [][]float64{
		{0, 0, 0}, {0, 1, 0}, {10, 0, 0}, {10, 1, 0},
	}
	tree := NewClusterTree(pts, 2, 0)
	require.Equal(t, 3, len(tree.Clusters))
	root := tree.Clusters[tree.Root]
	require.False(t, root.IsLeaf())
	left, right := tree.Clusters[root.Left], tree.Clusters[root.Right]
	assert.Equal(t, 2, left.Size())
	assert.Equal(t, 2, right.Size())
	// split along x; equal-x ties keep original element order
	assert.Equal(t, []int{0, 1, 2, 3}, tree.Perm)
	assert.Equal(t, 0., left.Box.Lo[0])
	assert.Equal(t, 10., right.Box.Lo[0])
}

func TestBBox(t *testing.T) {
	a := EmptyBBox()
	a.Extend([]float64{0, 0, 0})
	a.Extend([]float64{1, 2, 0.5})
	assert.Equal(t, 2., a.Diameter())
	axis, extent := a.LongestAxis()
	assert.Equal(t, 1, axis)
	assert.Equal(t, 2., extent)

	b := EmptyBBox()
	b.Extend([]float64{5, 0, 0})
	b.Extend([]float64{6, 2, 0})
	assert.Equal(t, 4., a.Distance(b))
	assert.Equal(t, 4., b.Distance(a))

	// touching and overlapping boxes have zero distance
	c := EmptyBBox()
	c.Extend([]float64{1, 0, 0})
	c.Extend([]float64{3, 1, 0})
	assert.Equal(t, 0., a.Distance(c))
	assert.Equal(t, 0., a.Distance(a))
}

func ExampleNewClusterTree() {
	pts := [][]float64{
		{0, 0, 0}, {0, 1, 0}, {10, 0, 0}, {10, 1, 0},
	}
	tree := NewClusterTree(pts, 2, 1)
	for id, c := range tree.Clusters {
		fmt.Printf("cluster %d: [%d,%d) depth %d leaf=%v\n",
			id, c.Begin, c.End, c.Depth, c.IsLeaf())
	}
	// Output:
	// cluster 0: [0,4) depth 0 leaf=false
	// cluster 1: [0,2) depth 1 leaf=true
	// cluster 2: [2,4) depth 1 leaf=true
}
