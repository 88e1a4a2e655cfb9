package mesh

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Mesh is a triangulated BEM surface: vertex coordinates plus triangle
// faces, with optional per-face integer and float parameter columns as
// carried by the polygon interchange formats.
type Mesh struct {
	Vertices [][]float64 // Vertex coordinates [nvertices][3]
	Faces    [][]int     // Face to vertex connectivity [nfaces][3]

	// Optional per-face data columns
	IFValues [][]int64   // [nfaces][nIF]
	DFValues [][]float64 // [nfaces][nDF]

	// Derived, built by BuildCentroids
	Centroids [][]float64 // Face centroids [nfaces][3]

	NumVertices int
	NumFaces    int
}

func NewMesh() *Mesh {
	return &Mesh{}
}

// NIF returns the number of per-face integer parameter columns
func (m *Mesh) NIF() int {
	if len(m.IFValues) == 0 {
		return 0
	}
	return len(m.IFValues[0])
}

// NDF returns the number of per-face float parameter columns
func (m *Mesh) NDF() int {
	if len(m.DFValues) == 0 {
		return 0
	}
	return len(m.DFValues[0])
}

// BuildCentroids computes the centroid of every face
func (m *Mesh) BuildCentroids() {
	m.Centroids = make([][]float64, m.NumFaces)
	for i, face := range m.Faces {
		c := make([]float64, 3)
		for _, v := range face {
			c[0] += m.Vertices[v][0]
			c[1] += m.Vertices[v][1]
			c[2] += m.Vertices[v][2]
		}
		nv := float64(len(face))
		c[0], c[1], c[2] = c[0]/nv, c[1]/nv, c[2]/nv
		m.Centroids[i] = c
	}
}

// Bounds returns the axis-aligned bounding box of all vertices
func (m *Mesh) Bounds() (lo, hi [3]float64) {
	if m.NumVertices == 0 {
		return
	}
	axis := make([]float64, m.NumVertices)
	for d := 0; d < 3; d++ {
		for i, v := range m.Vertices {
			axis[i] = v[d]
		}
		lo[d] = floats.Min(axis)
		hi[d] = floats.Max(axis)
	}
	return
}

// Translate returns a translated deep copy of the mesh
func (m *Mesh) Translate(dx, dy, dz float64) (out *Mesh) {
	out = NewMesh()
	out.NumVertices = m.NumVertices
	out.NumFaces = m.NumFaces
	out.Vertices = make([][]float64, m.NumVertices)
	for i, v := range m.Vertices {
		out.Vertices[i] = []float64{v[0] + dx, v[1] + dy, v[2] + dz}
	}
	out.Faces = make([][]int, m.NumFaces)
	for i, f := range m.Faces {
		out.Faces[i] = append([]int{}, f...)
	}
	out.IFValues = copyRows(m.IFValues)
	out.DFValues = copyRowsF(m.DFValues)
	return
}

// Append merges other into m, offsetting the appended face connectivity
func (m *Mesh) Append(other *Mesh) error {
	if m.NumFaces > 0 && (m.NIF() != other.NIF() || m.NDF() != other.NDF()) {
		return fmt.Errorf("mismatched per-face value columns: (%d,%d) vs (%d,%d)",
			m.NIF(), m.NDF(), other.NIF(), other.NDF())
	}
	offset := m.NumVertices
	for _, v := range other.Vertices {
		m.Vertices = append(m.Vertices, append([]float64{}, v...))
	}
	for _, f := range other.Faces {
		face := make([]int, len(f))
		for i, v := range f {
			face[i] = v + offset
		}
		m.Faces = append(m.Faces, face)
	}
	m.IFValues = append(m.IFValues, copyRows(other.IFValues)...)
	m.DFValues = append(m.DFValues, copyRowsF(other.DFValues)...)
	m.NumVertices += other.NumVertices
	m.NumFaces += other.NumFaces
	return nil
}

func copyRows(rows [][]int64) (out [][]int64) {
	if rows == nil {
		return nil
	}
	out = make([][]int64, len(rows))
	for i, r := range rows {
		out[i] = append([]int64{}, r...)
	}
	return
}

func copyRowsF(rows [][]float64) (out [][]float64) {
	if rows == nil {
		return nil
	}
	out = make([][]float64, len(rows))
	for i, r := range rows {
		out[i] = append([]float64{}, r...)
	}
	return
}
