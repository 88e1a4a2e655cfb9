package mesh

import (
	"fmt"

	"github.com/pradeep-pyro/triangle"
)

// GeneratePlate builds a rectangular plate mesh in the z=0 plane by
// Delaunay triangulation of an nx x ny point grid spanning width x height
func GeneratePlate(nx, ny int, width, height float64) (*Mesh, error) {
	pts, err := PlateGridPoints(nx, ny, width, height)
	if err != nil {
		return nil, err
	}
	tris := triangle.Delaunay(pts)

	msh := NewMesh()
	msh.NumVertices = len(pts)
	msh.Vertices = make([][]float64, len(pts))
	for i, p := range pts {
		msh.Vertices[i] = []float64{p[0], p[1], 0}
	}
	msh.NumFaces = len(tris)
	msh.Faces = make([][]int, len(tris))
	for i, tri := range tris {
		msh.Faces[i] = []int{int(tri[0]), int(tri[1]), int(tri[2])}
	}
	msh.BuildCentroids()
	return msh, nil
}

// PlateGridPoints lays out the regular grid fed to the triangulator
func PlateGridPoints(nx, ny int, width, height float64) ([][2]float64, error) {
	if nx < 2 || ny < 2 {
		return nil, fmt.Errorf("plate grid must be at least 2 x 2, got %d x %d", nx, ny)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("plate dimensions must be positive, got %g x %g", width, height)
	}
	pts := make([][2]float64, 0, nx*ny)
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			pts = append(pts, [2]float64{
				width * float64(i) / float64(nx-1),
				height * float64(j) / float64(ny-1),
			})
		}
	}
	return pts, nil
}
