/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"io/ioutil"
	"os"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/notargets/hmat/InputParameters"
	"github.com/notargets/hmat/hmat"
	"github.com/notargets/hmat/mesh"
)

type ModelFill struct {
	MeshFile   string
	ParamsFile string
	Prefix     string
	Profile    bool
}

// FillCmd represents the fill command
var FillCmd = &cobra.Command{
	Use:   "fill",
	Short: "Build the H-matrix leaf-block layout and worker assignment",
	Long: `
Clusters the mesh elements into a spatial hierarchy, classifies block
pairs as Rk or dense, estimates block costs and balances the leaf blocks
across the configured process x thread worker pool. Writes one record
file per process for the block visualizer.

hmat fill -F mesh.txt -o blocks_`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err error
		)
		mf := &ModelFill{}
		if mf.MeshFile, err = cmd.Flags().GetString("meshFile"); err != nil {
			panic(err)
		}
		if mf.ParamsFile, err = cmd.Flags().GetString("inputParametersFile"); err != nil {
			panic(err)
		}
		mf.Prefix, _ = cmd.Flags().GetString("output")
		mf.Profile, _ = cmd.Flags().GetBool("profile")

		fp := processFillInput(cmd, mf)
		RunFill(mf, fp)
	},
}

func processFillInput(cmd *cobra.Command, mf *ModelFill) (fp *InputParameters.FillParameters) {
	var (
		err error
	)
	if len(mf.MeshFile) == 0 {
		err = fmt.Errorf("must supply a mesh file (-F, --meshFile) in text (.txt) or binary (.bin) format")
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	fp = InputParameters.DefaultFillParameters()
	if len(mf.ParamsFile) != 0 {
		var data []byte
		if data, err = ioutil.ReadFile(mf.ParamsFile); err != nil {
			panic(err)
		}
		if err = fp.Parse(data); err != nil {
			panic(err)
		}
	}
	// command line flags override the parameters file
	if cmd.Flags().Changed("minClusterSize") {
		fp.MinClusterSize, _ = cmd.Flags().GetInt("minClusterSize")
	}
	if cmd.Flags().Changed("eta") {
		fp.Eta, _ = cmd.Flags().GetFloat64("eta")
	}
	if cmd.Flags().Changed("rank") {
		fp.Rank, _ = cmd.Flags().GetInt("rank")
	}
	if cmd.Flags().Changed("procs") {
		fp.Procs, _ = cmd.Flags().GetInt("procs")
	}
	if cmd.Flags().Changed("threads") {
		fp.Threads, _ = cmd.Flags().GetInt("threads")
	}
	return
}

func RunFill(mf *ModelFill, fp *InputParameters.FillParameters) {
	if mf.Profile {
		defer profile.Start(profile.CPUProfile).Stop()
	}
	fp.Print()
	cfg, err := fp.Config()
	if err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	msh, err := mesh.ReadMeshFile(mf.MeshFile)
	if err != nil {
		panic(err)
	}
	fmt.Printf("Read %d vertices, %d faces from %s\n",
		msh.NumVertices, msh.NumFaces, mf.MeshFile)

	layout, err := hmat.BuildLayout(msh.Centroids, cfg)
	if err != nil {
		panic(err)
	}
	layout.PrintSummary()
	if err = layout.WriteRecordFiles(mf.Prefix); err != nil {
		panic(err)
	}
	fmt.Printf("Wrote %d record files with prefix %s\n", cfg.Procs, mf.Prefix)
}

func init() {
	rootCmd.AddCommand(FillCmd)
	fp := InputParameters.DefaultFillParameters()
	FillCmd.Flags().StringP("meshFile", "F", "", "Mesh file to read in text (.txt) or binary (.bin) format")
	FillCmd.Flags().StringP("inputParametersFile", "I", "", "YAML file for fill parameters like:\n\t- MinClusterSize\n\t- Eta")
	FillCmd.Flags().StringP("output", "o", "blocks_", "Record file prefix, one file per process: prefix0000, prefix0001, ...")
	FillCmd.Flags().Int("minClusterSize", fp.MinClusterSize, "minimum leaf cluster size")
	FillCmd.Flags().Float64("eta", fp.Eta, "admissibility parameter")
	FillCmd.Flags().Int("rank", fp.Rank, "estimated rank of Rk blocks (capped at min block dimension)")
	FillCmd.Flags().IntP("procs", "p", fp.Procs, "number of processes in the worker pool")
	FillCmd.Flags().IntP("threads", "t", fp.Threads, "number of threads per process in the worker pool")
	FillCmd.Flags().Bool("profile", false, "write a CPU profile for the run")
}
