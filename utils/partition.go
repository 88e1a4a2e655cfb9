package utils

// IndexBuckets splits the index range [0, MaxIndex) into ParallelDegree
// near-equal contiguous buckets with a maximum imbalance of one item.
// Used to hand disjoint element ranges to worker goroutines.
type IndexBuckets struct {
	MaxIndex       int
	ParallelDegree int
	Buckets        [][2]int // begin, end index of each bucket
}

func NewIndexBuckets(parallelDegree, maxIndex int) (ib *IndexBuckets) {
	ib = &IndexBuckets{
		MaxIndex:       maxIndex,
		ParallelDegree: parallelDegree,
		Buckets:        make([][2]int, parallelDegree),
	}
	for n := 0; n < parallelDegree; n++ {
		ib.Buckets[n] = ib.split1D(n)
	}
	return
}

func (ib *IndexBuckets) split1D(bucketNum int) (bucket [2]int) {
	var (
		nPart            = ib.MaxIndex / ib.ParallelDegree
		startAdd, endAdd int
		remainder        = ib.MaxIndex % ib.ParallelDegree
	)
	if remainder != 0 { // spread the remainder over the first buckets evenly
		if bucketNum+1 > remainder {
			startAdd = remainder
			endAdd = 0
		} else {
			startAdd = bucketNum
			endAdd = 1
		}
	}
	bucket[0] = bucketNum*nPart + startAdd
	bucket[1] = bucket[0] + nPart + endAdd
	return
}

func (ib *IndexBuckets) GetBucketRange(bucketNum int) (kMin, kMax int) {
	kMin, kMax = ib.Buckets[bucketNum][0], ib.Buckets[bucketNum][1]
	return
}

func (ib *IndexBuckets) GetBucketDimension(bucketNum int) (kMax int) {
	k1, k2 := ib.GetBucketRange(bucketNum)
	kMax = k2 - k1
	return
}
