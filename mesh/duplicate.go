package mesh

import "fmt"

// DuplicateCuboid tiles nx x ny x nz translated copies of the base mesh
// on a regular grid with spacing (dx, dy, dz)
func DuplicateCuboid(base *Mesh, nx, ny, nz int, dx, dy, dz float64) (*Mesh, error) {
	if nx < 1 || ny < 1 || nz < 1 {
		return nil, fmt.Errorf("cuboid counts must be >= 1, got %d x %d x %d", nx, ny, nz)
	}
	out := NewMesh()
	for k := 0; k < nz; k++ {
		for j := 0; j < ny; j++ {
			for i := 0; i < nx; i++ {
				copyMesh := base.Translate(float64(i)*dx, float64(j)*dy, float64(k)*dz)
				if err := out.Append(copyMesh); err != nil {
					return nil, err
				}
			}
		}
	}
	out.BuildCentroids()
	return out, nil
}

// DuplicatePyramid stacks levels of copies: the bottom level is an
// n x n grid, each level above shrinks by one per side and is centered
// over the level below, spaced dz apart vertically.
func DuplicatePyramid(base *Mesh, levels int, dx, dy, dz float64) (*Mesh, error) {
	if levels < 1 {
		return nil, fmt.Errorf("pyramid levels must be >= 1, got %d", levels)
	}
	out := NewMesh()
	for level := 0; level < levels; level++ {
		n := levels - level
		// center each level over the base grid
		shift := float64(level) / 2
		for j := 0; j < n; j++ {
			for i := 0; i < n; i++ {
				copyMesh := base.Translate(
					(float64(i)+shift)*dx,
					(float64(j)+shift)*dy,
					float64(level)*dz)
				if err := out.Append(copyMesh); err != nil {
					return nil, err
				}
			}
		}
	}
	out.BuildCentroids()
	return out, nil
}
