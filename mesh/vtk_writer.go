package mesh

import (
	"bufio"
	"fmt"
	"os"
)

// WriteVTK writes the mesh as a legacy-VTK polydata file for inspection
// in paraview or similar tools. Per-face float values become CELL_DATA.
func WriteVTK(msh *Mesh, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	fmt.Fprintf(w, "# vtk DataFile Version 3.0\n")
	fmt.Fprintf(w, "BEM surface mesh\n")
	fmt.Fprintf(w, "ASCII\n")
	fmt.Fprintf(w, "DATASET POLYDATA\n")

	fmt.Fprintf(w, "POINTS %d double\n", msh.NumVertices)
	for _, v := range msh.Vertices {
		fmt.Fprintf(w, "%.17g %.17g %.17g\n", v[0], v[1], v[2])
	}

	fmt.Fprintf(w, "POLYGONS %d %d\n", msh.NumFaces, 4*msh.NumFaces)
	for _, f := range msh.Faces {
		fmt.Fprintf(w, "3 %d %d %d\n", f[0], f[1], f[2])
	}

	if msh.NDF() > 0 {
		fmt.Fprintf(w, "CELL_DATA %d\n", msh.NumFaces)
		for d := 0; d < msh.NDF(); d++ {
			fmt.Fprintf(w, "SCALARS dfvalue%d double 1\n", d)
			fmt.Fprintf(w, "LOOKUP_TABLE default\n")
			for _, row := range msh.DFValues {
				fmt.Fprintf(w, "%.17g\n", row[d])
			}
		}
	}
	return w.Flush()
}
