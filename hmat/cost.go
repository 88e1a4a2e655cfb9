package hmat

// RankModel estimates the rank of a low-rank-admissible block. The
// engine never computes a numerical rank; this is a cost-model input.
// When Func is nil a constant Rank is used. Estimates are always capped
// at min(rows, cols).
type RankModel struct {
	Rank int
	Func func(rows, cols int) int
}

// DefaultRankModel is a typical constant-rank estimate for BEM kernels
func DefaultRankModel() RankModel {
	return RankModel{Rank: 16}
}

// EstimateRank returns the modeled rank for an rows x cols block
func (rm RankModel) EstimateRank(rows, cols int) (k int) {
	k = rm.Rank
	if rm.Func != nil {
		k = rm.Func(rows, cols)
	}
	if m := min(rows, cols); k > m {
		k = m
	}
	if k < 1 {
		k = 1
	}
	return
}

// BlockCost estimates the storage/compute cost of a leaf block:
// rows*cols for dense blocks, k*(rows+cols) for Rk blocks.
func BlockCost(kind BlockKind, rows, cols int, model RankModel) float64 {
	if kind == Dense {
		return float64(rows) * float64(cols)
	}
	k := model.EstimateRank(rows, cols)
	return float64(k) * float64(rows+cols)
}
