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
	"time"

	"github.com/notargets/avs/chart2d"
	utils2 "github.com/notargets/avs/utils"
	"github.com/spf13/cobra"

	"github.com/notargets/hmat/hmat"
)

// PlotCmd represents the plot command
var PlotCmd = &cobra.Command{
	Use:   "plot",
	Short: "Draw the leaf-block layout from record files",
	Long: `
Reads per-process leaf-block record files and draws the block layout as
rectangles in element-index space, colored by owning thread, with Rk
blocks drawn dashed and dense blocks solid.

hmat plot -o blocks_ -p 2`,
	Run: func(cmd *cobra.Command, args []string) {
		prefix, _ := cmd.Flags().GetString("output")
		procs, _ := cmd.Flags().GetInt("procs")
		recs, procOf, err := hmat.ReadRecordFiles(prefix, procs)
		if err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		if len(recs) == 0 {
			fmt.Printf("no records found under prefix %s\n", prefix)
			return
		}
		plotRecords(recs, procOf)
	},
}

func plotRecords(recs []hmat.Record, procOf []int) {
	var (
		n, maxThr int
	)
	for _, rec := range recs {
		if rec.X1+1 > n {
			n = rec.X1 + 1
		}
		if rec.Y1+1 > n {
			n = rec.Y1 + 1
		}
		if rec.Thr > maxThr {
			maxThr = rec.Thr
		}
	}
	// one color per (proc, thread) worker
	nWorkers := (procOf[len(procOf)-1] + 1) * (maxThr + 1)
	chart := chart2d.NewChart2D(1280, 1280, 0, float32(n), 0, float32(n))
	colorMap := utils2.NewColorMap(0, float32(nWorkers), 1)
	go chart.Plot()
	for i, rec := range recs {
		// inclusive index rectangle, drawn as a closed outline
		x0, y0 := float64(rec.X0), float64(rec.Y0)
		x1, y1 := float64(rec.X1+1), float64(rec.Y1+1)
		xs := []float64{x0, x1, x1, x0, x0}
		ys := []float64{y0, y0, y1, y1, y0}
		lineType := chart2d.Solid
		if rec.MatType == hmat.RK {
			lineType = chart2d.Dashed
		}
		worker := procOf[i]*(maxThr+1) + rec.Thr
		name := fmt.Sprintf("block%d", i)
		if err := chart.AddSeries(name, xs, ys,
			chart2d.NoGlyph, lineType,
			colorMap.GetRGB(float32(worker))); err != nil {
			panic("unable to add graph series")
		}
	}
	for {
		time.Sleep(time.Second)
	}
}

func init() {
	rootCmd.AddCommand(PlotCmd)
	PlotCmd.Flags().StringP("output", "o", "blocks_", "Record file prefix written by hmat fill")
	PlotCmd.Flags().IntP("procs", "p", 1, "number of per-process record files to read")
}
