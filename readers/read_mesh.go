package readers

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/notargets/meshgeom/mesh"
)

// ReadMeshFile reads a mesh file based on extension
func ReadMeshFile(filename string) (*mesh.Mesh, error) {
	ext := strings.ToLower(filepath.Ext(filename))

	switch ext {
	case ".msh":
		return ReadGmsh(filename)
	case ".su2":
		return ReadSU2(filename)
	default:
		return nil, fmt.Errorf("unsupported mesh format: %s", ext)
	}
}

// keepHighestDim drops everything below the highest cell dimension found,
// e.g. the boundary line elements a surface mesh file carries
func keepHighestDim(cells [][]int, types []mesh.CellType, tags []int) ([][]int, []mesh.CellType, []int) {
	maxDim := 0
	for _, ct := range types {
		if ct.Dim() > maxDim {
			maxDim = ct.Dim()
		}
	}
	var (
		outCells [][]int
		outTypes []mesh.CellType
		outTags  []int
	)
	for i, ct := range types {
		if ct.Dim() == maxDim {
			outCells = append(outCells, cells[i])
			outTypes = append(outTypes, ct)
			outTags = append(outTags, tags[i])
		}
	}
	return outCells, outTypes, outTags
}
