package readers

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/notargets/meshgeom/mesh"
)

// SU2/VTK element type codes
const (
	su2Line     = 3
	su2Triangle = 5
	su2Quad     = 9
	su2Tet      = 10
	su2Hex      = 12
)

func su2CellType(code int) (mesh.CellType, error) {
	switch code {
	case su2Line:
		return mesh.Line, nil
	case su2Triangle:
		return mesh.Triangle, nil
	case su2Quad:
		return mesh.Quad, nil
	case su2Tet:
		return mesh.Tet, nil
	case su2Hex:
		return mesh.Hex, nil
	default:
		return 0, fmt.Errorf("unsupported SU2 element type: %d", code)
	}
}

// ReadSU2 reads an SU2 native format file. Boundary marker sections are
// skipped; only the volume (or surface) element section is kept.
func ReadSU2(filename string) (*mesh.Mesh, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var (
		ndime    int
		vertices [][]float64
		cells    [][]int
		types    []mesh.CellType
		tags     []int
	)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == "" {
			continue
		}
		// Text after % is a comment
		if idx := strings.Index(line, "%"); idx >= 0 {
			line = strings.TrimSpace(line[:idx])
			if line == "" {
				continue
			}
		}

		switch {
		case strings.HasPrefix(line, "NDIME="):
			fmt.Sscanf(line, "NDIME=%d", &ndime)
			if ndime != 2 && ndime != 3 {
				return nil, fmt.Errorf("unsupported dimension: NDIME=%d", ndime)
			}

		case strings.HasPrefix(line, "NPOIN="):
			if ndime == 0 {
				return nil, fmt.Errorf("NPOIN section before NDIME")
			}
			var npoin int
			fmt.Sscanf(line, "NPOIN=%d", &npoin)
			vertices = make([][]float64, npoin)
			for i := 0; i < npoin; i++ {
				if !scanner.Scan() {
					return nil, fmt.Errorf("unexpected EOF reading nodes")
				}
				fields := strings.Fields(scanner.Text())
				if len(fields) < ndime {
					return nil, fmt.Errorf("invalid node line: expected at least %d coordinates", ndime)
				}
				coords := make([]float64, ndime)
				for j := 0; j < ndime; j++ {
					coords[j], err = strconv.ParseFloat(fields[j], 64)
					if err != nil {
						return nil, fmt.Errorf("invalid coordinate: %v", err)
					}
				}
				// Node ID is implicit (0-based) based on order; legacy
				// files carry an explicit trailing ID which is ignored
				vertices[i] = coords
			}

		case strings.HasPrefix(line, "NELEM="):
			var nelem int
			fmt.Sscanf(line, "NELEM=%d", &nelem)
			cells = make([][]int, 0, nelem)
			types = make([]mesh.CellType, 0, nelem)
			tags = make([]int, 0, nelem)
			for i := 0; i < nelem; i++ {
				if !scanner.Scan() {
					return nil, fmt.Errorf("unexpected EOF reading elements")
				}
				fields := strings.Fields(scanner.Text())
				if len(fields) < 1 {
					return nil, fmt.Errorf("empty element line")
				}
				code, err := strconv.Atoi(fields[0])
				if err != nil {
					return nil, fmt.Errorf("invalid element type: %v", err)
				}
				ct, err := su2CellType(code)
				if err != nil {
					return nil, err
				}
				nv := ct.NumVerts()
				if len(fields) < 1+nv {
					return nil, fmt.Errorf("element %d: expected %d vertices for %s", i, nv, ct)
				}
				conn := make([]int, nv)
				for j := 0; j < nv; j++ {
					conn[j], err = strconv.Atoi(fields[1+j])
					if err != nil {
						return nil, fmt.Errorf("invalid vertex index: %v", err)
					}
				}
				cells = append(cells, conn)
				types = append(types, ct)
				tags = append(tags, 0)
			}

		case strings.HasPrefix(line, "NMARK="):
			// Boundary markers are not used for point location
		}
	}
	if err = scanner.Err(); err != nil {
		return nil, err
	}
	if len(vertices) == 0 {
		return nil, fmt.Errorf("%s: no NPOIN section found", filename)
	}
	if len(cells) == 0 {
		return nil, fmt.Errorf("%s: no NELEM section found", filename)
	}

	cells, types, tags = keepHighestDim(cells, types, tags)
	msh, err := mesh.NewMixedMesh(vertices, cells, types)
	if err != nil {
		return nil, fmt.Errorf("%s: %v", filename, err)
	}
	copy(msh.CellTags, tags)
	return msh, nil
}
