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
	"os"

	"github.com/spf13/cobra"

	"github.com/notargets/hmat/mesh"
)

// GenmeshCmd represents the genmesh command
var GenmeshCmd = &cobra.Command{
	Use:   "genmesh",
	Short: "Generate meshes by duplication or plate triangulation",
	Long: `
Generates test meshes: duplicates a base mesh into a cuboid or pyramid
arrangement, or triangulates a rectangular plate.

hmat genmesh -F base.txt -o big.bin --mode cuboid --nx 4 --ny 4 --nz 2
hmat genmesh -o plate.txt --mode plate --nx 20 --ny 20`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err error
			out *mesh.Mesh
		)
		mode, _ := cmd.Flags().GetString("mode")
		inFile, _ := cmd.Flags().GetString("meshFile")
		outFile, _ := cmd.Flags().GetString("output")
		nx, _ := cmd.Flags().GetInt("nx")
		ny, _ := cmd.Flags().GetInt("ny")
		nz, _ := cmd.Flags().GetInt("nz")
		levels, _ := cmd.Flags().GetInt("levels")
		dx, _ := cmd.Flags().GetFloat64("dx")
		dy, _ := cmd.Flags().GetFloat64("dy")
		dz, _ := cmd.Flags().GetFloat64("dz")
		width, _ := cmd.Flags().GetFloat64("width")
		height, _ := cmd.Flags().GetFloat64("height")
		if len(outFile) == 0 {
			fmt.Printf("error: must supply an output mesh file (-o, --output)\n")
			os.Exit(1)
		}

		switch mode {
		case "cuboid", "pyramid":
			if len(inFile) == 0 {
				fmt.Printf("error: must supply a base mesh file (-F, --meshFile) for duplication\n")
				os.Exit(1)
			}
			var base *mesh.Mesh
			if base, err = mesh.ReadMeshFile(inFile); err != nil {
				panic(err)
			}
			if mode == "cuboid" {
				out, err = mesh.DuplicateCuboid(base, nx, ny, nz, dx, dy, dz)
			} else {
				out, err = mesh.DuplicatePyramid(base, levels, dx, dy, dz)
			}
		case "plate":
			out, err = mesh.GeneratePlate(nx, ny, width, height)
		default:
			err = fmt.Errorf("unknown mode %q, want cuboid, pyramid or plate", mode)
		}
		if err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		if err = mesh.WriteMeshFile(out, outFile); err != nil {
			panic(err)
		}
		fmt.Printf("Wrote %d vertices, %d faces to %s\n",
			out.NumVertices, out.NumFaces, outFile)
	},
}

func init() {
	rootCmd.AddCommand(GenmeshCmd)
	GenmeshCmd.Flags().StringP("meshFile", "F", "", "Base mesh file for duplication modes")
	GenmeshCmd.Flags().StringP("output", "o", "", "Output mesh file (.txt, .bin or .vtk)")
	GenmeshCmd.Flags().String("mode", "cuboid", "generation mode: cuboid, pyramid or plate")
	GenmeshCmd.Flags().Int("nx", 2, "copies along x (cuboid) or grid points along x (plate)")
	GenmeshCmd.Flags().Int("ny", 2, "copies along y (cuboid) or grid points along y (plate)")
	GenmeshCmd.Flags().Int("nz", 1, "copies along z (cuboid)")
	GenmeshCmd.Flags().Int("levels", 3, "pyramid levels")
	GenmeshCmd.Flags().Float64("dx", 1, "copy spacing along x")
	GenmeshCmd.Flags().Float64("dy", 1, "copy spacing along y")
	GenmeshCmd.Flags().Float64("dz", 1, "copy spacing along z")
	GenmeshCmd.Flags().Float64("width", 1, "plate width")
	GenmeshCmd.Flags().Float64("height", 1, "plate height")
}
