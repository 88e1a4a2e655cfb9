package mesh

import (
	"bufio"
	"fmt"
	"os"
)

// WriteText writes the text polygon format read by ReadText, 0-based
func WriteText(msh *Mesh, filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	fmt.Fprintf(w, "%d\n", msh.NumVertices)
	for _, v := range msh.Vertices {
		fmt.Fprintf(w, "%.17g %.17g %.17g\n", v[0], v[1], v[2])
	}
	fmt.Fprintf(w, "%d\n", msh.NumFaces)
	fmt.Fprintf(w, "3\n")
	fmt.Fprintf(w, "%d\n", msh.NIF())
	fmt.Fprintf(w, "%d\n", msh.NDF())
	for i, f := range msh.Faces {
		fmt.Fprintf(w, "%d %d %d", f[0], f[1], f[2])
		if msh.NIF() > 0 {
			for _, val := range msh.IFValues[i] {
				fmt.Fprintf(w, " %d", val)
			}
		}
		if msh.NDF() > 0 {
			for _, val := range msh.DFValues[i] {
				fmt.Fprintf(w, " %.17g", val)
			}
		}
		fmt.Fprintf(w, "\n")
	}
	return w.Flush()
}
