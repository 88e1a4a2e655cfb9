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

// ConvertCmd represents the convert command
var ConvertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a mesh between text, binary and VTK formats",
	Long: `
Reads a mesh in any supported input format and writes it in the format
implied by the output file extension (.txt, .bin, .vtk).

hmat convert -F mesh.txt -o mesh.bin`,
	Run: func(cmd *cobra.Command, args []string) {
		inFile, _ := cmd.Flags().GetString("meshFile")
		outFile, _ := cmd.Flags().GetString("output")
		if len(inFile) == 0 || len(outFile) == 0 {
			fmt.Printf("error: must supply input (-F) and output (-o) mesh files\n")
			os.Exit(1)
		}
		msh, err := mesh.ReadMeshFile(inFile)
		if err != nil {
			panic(err)
		}
		if err = mesh.WriteMeshFile(msh, outFile); err != nil {
			panic(err)
		}
		fmt.Printf("Converted %s (%d vertices, %d faces) to %s\n",
			inFile, msh.NumVertices, msh.NumFaces, outFile)
	},
}

func init() {
	rootCmd.AddCommand(ConvertCmd)
	ConvertCmd.Flags().StringP("meshFile", "F", "", "Input mesh file (.txt, .dat or .bin)")
	ConvertCmd.Flags().StringP("output", "o", "", "Output mesh file (.txt, .bin or .vtk)")
}
