package mesh

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"os"
	"strings"
)

// Binary polygon format, little-endian after an ASCII preamble line:
//
//	"BI_BINARY\n"
//	int64   nvertices
//	float64 xyz * nvertices
//	int64   nfaces
//	int64   nodes_per_face (3)
//	int64   n_if_values
//	int64   n_df_values
//	int64   v0 v1 v2 * nfaces
//	float64 centroid xyz * nfaces
//	int32   face2node * 3 * nfaces
//	int64   if values * nfaces   (if any)
//	float64 df values * nfaces   (if any)
const binaryPreamble = "BI_BINARY"

// ReadBinary reads the binary polygon format
func ReadBinary(filename string) (*Mesh, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := bufio.NewReader(file)
	preamble, err := r.ReadString('\n')
	if err != nil {
		return nil, fmt.Errorf("reading preamble: %v", err)
	}
	if strings.TrimSpace(preamble) != binaryPreamble {
		return nil, fmt.Errorf("invalid binary file format: %q", strings.TrimSpace(preamble))
	}

	var nvert int64
	if err = binary.Read(r, binary.LittleEndian, &nvert); err != nil {
		return nil, fmt.Errorf("reading vertex count: %v", err)
	}
	if nvert < 0 {
		return nil, fmt.Errorf("negative vertex count: %d", nvert)
	}
	msh := NewMesh()
	msh.NumVertices = int(nvert)
	coords := make([]float64, 3*nvert)
	if err = binary.Read(r, binary.LittleEndian, coords); err != nil {
		return nil, fmt.Errorf("reading vertices: %v", err)
	}
	msh.Vertices = make([][]float64, nvert)
	for i := int64(0); i < nvert; i++ {
		msh.Vertices[i] = coords[3*i : 3*i+3 : 3*i+3]
	}

	var nface, nodesPerFace, nIF, nDF int64
	for _, p := range []*int64{&nface, &nodesPerFace, &nIF, &nDF} {
		if err = binary.Read(r, binary.LittleEndian, p); err != nil {
			return nil, fmt.Errorf("reading face header: %v", err)
		}
	}
	if nodesPerFace != 3 {
		return nil, fmt.Errorf("only triangular faces are supported, got %d nodes per face", nodesPerFace)
	}
	if nface < 0 || nIF < 0 || nDF < 0 {
		return nil, fmt.Errorf("negative face header counts: %d, %d, %d", nface, nIF, nDF)
	}

	msh.NumFaces = int(nface)
	conn := make([]int64, 3*nface)
	if err = binary.Read(r, binary.LittleEndian, conn); err != nil {
		return nil, fmt.Errorf("reading faces: %v", err)
	}
	msh.Faces = make([][]int, nface)
	for i := int64(0); i < nface; i++ {
		face := make([]int, 3)
		for d := int64(0); d < 3; d++ {
			v := conn[3*i+d]
			if v < 0 || v >= nvert {
				return nil, fmt.Errorf("face %d references vertex %d out of range [0,%d)", i, v, nvert)
			}
			face[d] = int(v)
		}
		msh.Faces[i] = face
	}

	// Stored centroids are authoritative for downstream consumers
	cents := make([]float64, 3*nface)
	if err = binary.Read(r, binary.LittleEndian, cents); err != nil {
		return nil, fmt.Errorf("reading centroids: %v", err)
	}
	msh.Centroids = make([][]float64, nface)
	for i := int64(0); i < nface; i++ {
		msh.Centroids[i] = cents[3*i : 3*i+3 : 3*i+3]
	}

	face2node := make([]int32, 3*nface)
	if err = binary.Read(r, binary.LittleEndian, face2node); err != nil {
		return nil, fmt.Errorf("reading face2node: %v", err)
	}

	if nIF > 0 {
		vals := make([]int64, nIF*nface)
		if err = binary.Read(r, binary.LittleEndian, vals); err != nil {
			return nil, fmt.Errorf("reading integer face values: %v", err)
		}
		msh.IFValues = make([][]int64, nface)
		for i := int64(0); i < nface; i++ {
			msh.IFValues[i] = vals[nIF*i : nIF*i+nIF : nIF*i+nIF]
		}
	}
	if nDF > 0 {
		vals := make([]float64, nDF*nface)
		if err = binary.Read(r, binary.LittleEndian, vals); err != nil {
			return nil, fmt.Errorf("reading float face values: %v", err)
		}
		msh.DFValues = make([][]float64, nface)
		for i := int64(0); i < nface; i++ {
			msh.DFValues[i] = vals[nDF*i : nDF*i+nDF : nDF*i+nDF]
		}
	}
	return msh, nil
}

// WriteBinary writes the binary polygon format
func WriteBinary(msh *Mesh, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	if msh.Centroids == nil {
		msh.BuildCentroids()
	}
	w := bufio.NewWriter(file)
	if _, err = w.WriteString(binaryPreamble + "\n"); err != nil {
		return err
	}

	write := func(data interface{}) {
		if err == nil {
			err = binary.Write(w, binary.LittleEndian, data)
		}
	}
	write(int64(msh.NumVertices))
	coords := make([]float64, 0, 3*msh.NumVertices)
	for _, v := range msh.Vertices {
		coords = append(coords, v[0], v[1], v[2])
	}
	write(coords)

	write(int64(msh.NumFaces))
	write(int64(3))
	write(int64(msh.NIF()))
	write(int64(msh.NDF()))

	conn := make([]int64, 0, 3*msh.NumFaces)
	face2node := make([]int32, 0, 3*msh.NumFaces)
	for _, f := range msh.Faces {
		conn = append(conn, int64(f[0]), int64(f[1]), int64(f[2]))
		face2node = append(face2node, int32(f[0]), int32(f[1]), int32(f[2]))
	}
	write(conn)
	cents := make([]float64, 0, 3*msh.NumFaces)
	for _, c := range msh.Centroids {
		cents = append(cents, c[0], c[1], c[2])
	}
	write(cents)
	write(face2node)

	if msh.NIF() > 0 {
		vals := make([]int64, 0, msh.NIF()*msh.NumFaces)
		for _, row := range msh.IFValues {
			vals = append(vals, row...)
		}
		write(vals)
	}
	if msh.NDF() > 0 {
		vals := make([]float64, 0, msh.NDF()*msh.NumFaces)
		for _, row := range msh.DFValues {
			vals = append(vals, row...)
		}
		write(vals)
	}
	if err != nil {
		return err
	}
	return w.Flush()
}
