package mesh

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ReadMeshFile reads a mesh file based on extension
func ReadMeshFile(filename string) (*Mesh, error) {
	ext := strings.ToLower(filepath.Ext(filename))

	switch ext {
	case ".txt", ".dat":
		return ReadText(filename)
	case ".bin":
		return ReadBinary(filename)
	default:
		return nil, fmt.Errorf("unsupported mesh format: %s", ext)
	}
}

// WriteMeshFile writes a mesh file based on extension
func WriteMeshFile(msh *Mesh, filename string) error {
	ext := strings.ToLower(filepath.Ext(filename))

	switch ext {
	case ".txt", ".dat":
		return WriteText(msh, filename)
	case ".bin":
		return WriteBinary(msh, filename)
	case ".vtk":
		return WriteVTK(msh, filename)
	default:
		return fmt.Errorf("unsupported mesh format: %s", ext)
	}
}
