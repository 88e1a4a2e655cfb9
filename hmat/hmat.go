// Package hmat builds the leaf-block layout of a hierarchical matrix
// over a set of interacting mesh elements and balances the blocks
// across a fixed pool of processes and threads. It decides which blocks
// are low-rank-admissible and what they would cost; it performs no
// numerical compression.
package hmat

import "fmt"

// Config is the full parameter surface of the layout engine
type Config struct {
	MinClusterSize int
	Eta            float64
	Model          RankModel
	Procs, Threads int
	MaxThreads     int // construction parallelism, 0 = GOMAXPROCS
}

func DefaultConfig() Config {
	return Config{
		MinClusterSize: 32,
		Eta:            1.0,
		Model:          DefaultRankModel(),
		Procs:          1,
		Threads:        1,
	}
}

// Validate rejects fatal configurations before any construction runs
func (cfg Config) Validate() error {
	if cfg.MinClusterSize < 1 {
		return fmt.Errorf("minimum cluster size must be >= 1, got %d", cfg.MinClusterSize)
	}
	if cfg.Eta <= 0 {
		return fmt.Errorf("admissibility parameter must be positive, got %g", cfg.Eta)
	}
	if cfg.Procs < 1 || cfg.Threads < 1 {
		return fmt.Errorf("invalid worker pool: %d procs x %d threads (both must be >= 1)", cfg.Procs, cfg.Threads)
	}
	return nil
}

// BuildLayout runs the full pipeline: cluster tree, block partition,
// cost estimation and worker assignment. An empty point set yields an
// assignment with no blocks. The result is a pure function of (points,
// config) and does not depend on MaxThreads.
func BuildLayout(points [][]float64, cfg Config) (*Assignment, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	tree := NewClusterTree(points, cfg.MinClusterSize, cfg.MaxThreads)
	blocks, err := tree.BuildBlocks(cfg.Eta, cfg.Model, cfg.MaxThreads)
	if err != nil {
		return nil, err
	}
	return Assign(tree, blocks, cfg.Procs, cfg.Threads)
}
