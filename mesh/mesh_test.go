package mesh

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// twoTriangleMesh is a small mesh with per-face value columns
func twoTriangleMesh() *Mesh {
	msh := NewMesh()
	msh.Vertices = [][]float64{
		{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {1, 1, 0.5},
	}
	msh.Faces = [][]int{
		{0, 1, 2}, {1, 3, 2},
	}
	msh.IFValues = [][]int64{{1, 10}, {2, 20}}
	msh.DFValues = [][]float64{{0.5}, {0.25}}
	msh.NumVertices = 4
	msh.NumFaces = 2
	msh.BuildCentroids()
	return msh
}

func assertMeshEqual(t *testing.T, want, got *Mesh) {
	require.Equal(t, want.NumVertices, got.NumVertices)
	require.Equal(t, want.NumFaces, got.NumFaces)
	assert.Equal(t, want.Vertices, got.Vertices)
	assert.Equal(t, want.Faces, got.Faces)
	assert.Equal(t, want.IFValues, got.IFValues)
	assert.Equal(t, want.DFValues, got.DFValues)
}

func TestMesh_Centroids(t *testing.T) {
	msh := twoTriangleMesh()
	require.Equal(t, 2, len(msh.Centroids))
	assert.InDeltaSlice(t, []float64{1. / 3., 1. / 3., 0}, msh.Centroids[0], 1e-15)
	assert.InDeltaSlice(t, []float64{2. / 3., 2. / 3., 0.5 / 3.}, msh.Centroids[1], 1e-15)
}

func TestMesh_Bounds(t *testing.T) {
	msh := twoTriangleMesh()
	lo, hi := msh.Bounds()
	assert.Equal(t, [3]float64{0, 0, 0}, lo)
	assert.Equal(t, [3]float64{1, 1, 0.5}, hi)
}

func TestTextRoundTrip(t *testing.T) {
	msh := twoTriangleMesh()
	fname := filepath.Join(t.TempDir(), "mesh.txt")
	require.NoError(t, WriteText(msh, fname))
	back, err := ReadText(fname)
	require.NoError(t, err)
	assertMeshEqual(t, msh, back)
	assert.Equal(t, msh.Centroids[0], back.Centroids[0])
}

func TestReadText_OneBasedIndexing(t *testing.T) {
	content := strings.Join([]string{
		"3",
		"0 0 0",
		"1 0 0",
		"0 1 0",
		"1",
		"3",
		"0",
		"0",
		"1 2 3", // largest index equals the vertex count: 1-based
		"",
	}, "\n")
	fname := filepath.Join(t.TempDir(), "based.txt")
	require.NoError(t, os.WriteFile(fname, []byte(content), 0644))
	msh, err := ReadText(fname)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 1, 2}}, msh.Faces)
}

func TestReadText_Malformed(t *testing.T) {
	dir := t.TempDir()
	cases := map[string]string{
		"truncated":    "3\n0 0 0\n",
		"quad face":    "3\n0 0 0\n1 0 0\n0 1 0\n1\n4\n0\n0\n0 1 2\n",
		"out of range": "3\n0 0 0\n1 0 0\n0 1 0\n1\n3\n0\n0\n0 1 5\n",
		"bad count":    "x\n",
	}
	for name, content := range cases {
		fname := filepath.Join(dir, strings.ReplaceAll(name, " ", "_")+".txt")
		require.NoError(t, os.WriteFile(fname, []byte(content), 0644))
		_, err := ReadText(fname)
		assert.Error(t, err, name)
	}
}

func TestBinaryRoundTrip(t *testing.T) {
	msh := twoTriangleMesh()
	fname := filepath.Join(t.TempDir(), "mesh.bin")
	require.NoError(t, WriteBinary(msh, fname))

	// preamble is an ASCII line
	data, err := os.ReadFile(fname)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "BI_BINARY\n"))

	back, err := ReadBinary(fname)
	require.NoError(t, err)
	assertMeshEqual(t, msh, back)
	assert.Equal(t, msh.Centroids, back.Centroids)
}

func TestReadBinary_BadPreamble(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "bad.bin")
	require.NoError(t, os.WriteFile(fname, []byte("NOT_BINARY\n"), 0644))
	_, err := ReadBinary(fname)
	assert.Error(t, err)
}

func TestMeshFileDispatch(t *testing.T) {
	msh := twoTriangleMesh()
	dir := t.TempDir()
	for _, name := range []string{"m.txt", "m.dat", "m.bin"} {
		fname := filepath.Join(dir, name)
		require.NoError(t, WriteMeshFile(msh, fname))
		back, err := ReadMeshFile(fname)
		require.NoError(t, err, name)
		assertMeshEqual(t, msh, back)
	}
	_, err := ReadMeshFile(filepath.Join(dir, "m.stl"))
	assert.Error(t, err)
}

func TestWriteVTK(t *testing.T) {
	msh := twoTriangleMesh()
	fname := filepath.Join(t.TempDir(), "mesh.vtk")
	require.NoError(t, WriteVTK(msh, fname))
	data, err := os.ReadFile(fname)
	require.NoError(t, err)
	text := string(data)
	assert.Contains(t, text, "# vtk DataFile Version 3.0")
	assert.Contains(t, text, "POINTS 4 double")
	assert.Contains(t, text, "POLYGONS 2 8")
	assert.Contains(t, text, "CELL_DATA 2")
}
