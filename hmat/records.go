package hmat

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// Record is one emitted leaf-block line as consumed by the visualizer
type Record struct {
	Thr            int
	X0, Y0, X1, Y1 int
	MatType        BlockKind
}

// ReadRecords parses leaf-block records from one output stream
func ReadRecords(r io.Reader) (recs []Record, err error) {
	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		if len(line) == 0 {
			continue
		}
		var rec Record
		var mt int
		n, err := fmt.Sscanf(line, "%d, %d, %d, %d, %d, %d",
			&rec.Thr, &rec.X0, &rec.Y0, &rec.X1, &rec.Y1, &mt)
		if err != nil || n != 6 {
			return nil, fmt.Errorf("record line %d: malformed: %q", lineNum, line)
		}
		rec.MatType = BlockKind(mt)
		if rec.MatType != RK && rec.MatType != Dense {
			return nil, fmt.Errorf("record line %d: bad mattype %d", lineNum, mt)
		}
		recs = append(recs, rec)
	}
	return recs, scanner.Err()
}

// ReadRecordFiles reads the per-process record files for procs processes
// sharing a prefix. The process id is recovered from the file position.
func ReadRecordFiles(prefix string, procs int) (recs []Record, procOf []int, err error) {
	for p := 0; p < procs; p++ {
		file, err := os.Open(RecordFileName(prefix, p))
		if err != nil {
			return nil, nil, err
		}
		procRecs, err := ReadRecords(file)
		file.Close()
		if err != nil {
			return nil, nil, err
		}
		recs = append(recs, procRecs...)
		for range procRecs {
			procOf = append(procOf, p)
		}
	}
	return recs, procOf, nil
}
