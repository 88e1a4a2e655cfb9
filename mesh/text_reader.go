package mesh

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ReadText reads the text polygon format:
//
//	nvertices
//	x y z                (nvertices lines)
//	nfaces
//	nodes_per_face       (must be 3)
//	n_if_values
//	n_df_values
//	v1 v2 v3 [if...] [df...]   (nfaces lines)
//
// Face indices may be 0- or 1-based; 1-based files are detected by the
// largest index reaching nvertices and shifted down.
func ReadText(filename string) (*Mesh, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	msh := NewMesh()
	scanner := bufio.NewScanner(file)

	nvert, err := readCount(scanner, "vertex count")
	if err != nil {
		return nil, err
	}
	msh.NumVertices = nvert
	msh.Vertices = make([][]float64, nvert)
	for i := 0; i < nvert; i++ {
		fields, err := readFields(scanner, "vertex")
		if err != nil {
			return nil, err
		}
		if len(fields) < 3 {
			return nil, fmt.Errorf("vertex line %d: need 3 coordinates, got %d", i+1, len(fields))
		}
		v := make([]float64, 3)
		for d := 0; d < 3; d++ {
			if v[d], err = strconv.ParseFloat(fields[d], 64); err != nil {
				return nil, fmt.Errorf("vertex line %d: %v", i+1, err)
			}
		}
		msh.Vertices[i] = v
	}

	nface, err := readCount(scanner, "face count")
	if err != nil {
		return nil, err
	}
	nodesPerFace, err := readCount(scanner, "nodes per face")
	if err != nil {
		return nil, err
	}
	if nodesPerFace != 3 {
		return nil, fmt.Errorf("only triangular faces are supported, got %d nodes per face", nodesPerFace)
	}
	nIF, err := readCount(scanner, "integer value count")
	if err != nil {
		return nil, err
	}
	nDF, err := readCount(scanner, "float value count")
	if err != nil {
		return nil, err
	}

	msh.NumFaces = nface
	msh.Faces = make([][]int, nface)
	if nIF > 0 {
		msh.IFValues = make([][]int64, nface)
	}
	if nDF > 0 {
		msh.DFValues = make([][]float64, nface)
	}
	maxIndex := 0
	for i := 0; i < nface; i++ {
		fields, err := readFields(scanner, "face")
		if err != nil {
			return nil, err
		}
		if len(fields) < 3+nIF+nDF {
			return nil, fmt.Errorf("face line %d: need %d fields, got %d", i+1, 3+nIF+nDF, len(fields))
		}
		face := make([]int, 3)
		for d := 0; d < 3; d++ {
			if face[d], err = strconv.Atoi(fields[d]); err != nil {
				return nil, fmt.Errorf("face line %d: %v", i+1, err)
			}
			if face[d] > maxIndex {
				maxIndex = face[d]
			}
		}
		msh.Faces[i] = face
		if nIF > 0 {
			vals := make([]int64, nIF)
			for d := 0; d < nIF; d++ {
				if vals[d], err = strconv.ParseInt(fields[3+d], 10, 64); err != nil {
					return nil, fmt.Errorf("face line %d: %v", i+1, err)
				}
			}
			msh.IFValues[i] = vals
		}
		if nDF > 0 {
			vals := make([]float64, nDF)
			for d := 0; d < nDF; d++ {
				if vals[d], err = strconv.ParseFloat(fields[3+nIF+d], 64); err != nil {
					return nil, fmt.Errorf("face line %d: %v", i+1, err)
				}
			}
			msh.DFValues[i] = vals
		}
	}

	if maxIndex >= nvert { // 1-based indexing detected
		for _, face := range msh.Faces {
			for d := range face {
				face[d]--
			}
		}
	}
	for i, face := range msh.Faces {
		for _, v := range face {
			if v < 0 || v >= nvert {
				return nil, fmt.Errorf("face %d references vertex %d out of range [0,%d)", i, v, nvert)
			}
		}
	}
	msh.BuildCentroids()
	return msh, nil
}

func readFields(scanner *bufio.Scanner, what string) ([]string, error) {
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		return strings.Fields(line), nil
	}
	return nil, fmt.Errorf("unexpected EOF reading %s", what)
}

func readCount(scanner *bufio.Scanner, what string) (int, error) {
	fields, err := readFields(scanner, what)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, fmt.Errorf("bad %s: %v", what, err)
	}
	if n < 0 {
		return 0, fmt.Errorf("negative %s: %d", what, n)
	}
	return n, nil
}
