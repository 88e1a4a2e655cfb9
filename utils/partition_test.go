package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndexBuckets(t *testing.T) {
	getHisto := func(K, Np int) (histo map[int]int) {
		ib := NewIndexBuckets(Np, K)
		histo = make(map[int]int)
		for np := 0; np < ib.ParallelDegree; np++ {
			histo[ib.GetBucketDimension(np)]++
		}
		return
	}
	getTotal := func(histo map[int]int) (total int) {
		for key, count := range histo {
			total += key * count
		}
		return
	}
	assert.Equal(t, map[int]int{0: 30, 1: 2}, getHisto(2, 32))
	assert.Equal(t, map[int]int{1: 32}, getHisto(32, 32))
	assert.Equal(t, map[int]int{8: 32}, getHisto(256, 32))
	assert.Equal(t, map[int]int{8: 1, 9: 31}, getHisto(287, 32))
	for n := 1; n < 3000; n++ {
		var (
			keys   [2]float64
			keyNum int
		)
		histo := getHisto(n, 16)
		for key := range histo {
			keys[keyNum] = float64(key)
			keyNum++
		}
		if keyNum == 2 {
			assert.Equal(t, 1., math.Abs(keys[0]-keys[1])) // Maximum imbalance of 1
		}
		assert.Equal(t, n, getTotal(histo))
	}
	// Buckets are contiguous and cover the full range
	ib := NewIndexBuckets(7, 100)
	last := 0
	for n := 0; n < ib.ParallelDegree; n++ {
		kMin, kMax := ib.GetBucketRange(n)
		assert.Equal(t, last, kMin)
		assert.True(t, kMax >= kMin)
		last = kMax
	}
	assert.Equal(t, 100, last)
}
