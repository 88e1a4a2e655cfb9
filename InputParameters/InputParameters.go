package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"

	"github.com/notargets/hmat/hmat"
)

// Parameters obtained from the YAML input file
type FillParameters struct {
	Title          string  `yaml:"Title"`
	MinClusterSize int     `yaml:"MinClusterSize"`
	Eta            float64 `yaml:"Eta"`
	Rank           int     `yaml:"Rank"`
	Procs          int     `yaml:"Procs"`
	Threads        int     `yaml:"Threads"`
}

func DefaultFillParameters() *FillParameters {
	cfg := hmat.DefaultConfig()
	return &FillParameters{
		Title:          "H-matrix array filling",
		MinClusterSize: cfg.MinClusterSize,
		Eta:            cfg.Eta,
		Rank:           cfg.Model.Rank,
		Procs:          cfg.Procs,
		Threads:        cfg.Threads,
	}
}

func (fp *FillParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, fp)
}

func (fp *FillParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", fp.Title)
	fmt.Printf("[%d]\t\t\t= MinClusterSize\n", fp.MinClusterSize)
	fmt.Printf("%8.5f\t\t= Eta\n", fp.Eta)
	fmt.Printf("[%d]\t\t\t= Rank\n", fp.Rank)
	fmt.Printf("[%d x %d]\t\t= Procs x Threads\n", fp.Procs, fp.Threads)
}

// Config converts the parameters into an engine configuration,
// rejecting fatal values before any construction runs
func (fp *FillParameters) Config() (cfg hmat.Config, err error) {
	cfg = hmat.Config{
		MinClusterSize: fp.MinClusterSize,
		Eta:            fp.Eta,
		Model:          hmat.RankModel{Rank: fp.Rank},
		Procs:          fp.Procs,
		Threads:        fp.Threads,
	}
	err = cfg.Validate()
	return
}
