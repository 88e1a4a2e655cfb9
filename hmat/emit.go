package hmat

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// WriteRecords writes one line per leaf block owned by the given
// process, in canonical block order:
//
//	thr, x0, y0, x1, y1, mattype
//
// where (x0, y0)-(x1, y1) is the inclusive index rectangle of the block
// in element-index space and mattype is 1 for Rk, 2 for dense.
func (a *Assignment) WriteRecords(w io.Writer, proc int) error {
	for i, b := range a.Blocks {
		worker := a.Workers[a.Owner[i]]
		if worker.Proc != proc {
			continue
		}
		row, col := a.Tree.Clusters[b.Row], a.Tree.Clusters[b.Col]
		if row.Size() == 0 || col.Size() == 0 {
			continue
		}
		_, err := fmt.Fprintf(w, "%d, %d, %d, %d, %d, %d\n",
			worker.Thread, row.Begin, col.Begin, row.End-1, col.End-1, int(b.Kind))
		if err != nil {
			return err
		}
	}
	return nil
}

// WriteRecordFiles writes one record file per process. The visualizer
// locates them by the shared prefix plus a zero-padded 4-digit process
// number, e.g. prefix0000, prefix0001, ...
func (a *Assignment) WriteRecordFiles(prefix string) error {
	for p := 0; p < a.Procs; p++ {
		if err := a.writeRecordFile(prefix, p); err != nil {
			return err
		}
	}
	return nil
}

func (a *Assignment) writeRecordFile(prefix string, proc int) error {
	file, err := os.Create(RecordFileName(prefix, proc))
	if err != nil {
		return err
	}
	defer file.Close()
	w := bufio.NewWriter(file)
	if err = a.WriteRecords(w, proc); err != nil {
		return err
	}
	return w.Flush()
}

// RecordFileName is the per-process naming convention shared with the
// external visualizer
func RecordFileName(prefix string, proc int) string {
	return fmt.Sprintf("%s%04d", prefix, proc)
}
