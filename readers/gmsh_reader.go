package readers

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/notargets/meshgeom/mesh"
)

// Gmsh legacy element type codes
const (
	gmshLine     = 1
	gmshTriangle = 2
	gmshQuad     = 3
	gmshTet      = 4
	gmshHex      = 5
)

func gmshCellType(code int) (mesh.CellType, error) {
	switch code {
	case gmshLine:
		return mesh.Line, nil
	case gmshTriangle:
		return mesh.Triangle, nil
	case gmshQuad:
		return mesh.Quad, nil
	case gmshTet:
		return mesh.Tet, nil
	case gmshHex:
		return mesh.Hex, nil
	default:
		return 0, fmt.Errorf("unsupported Gmsh element type: %d", code)
	}
}

// ReadGmsh reads a Gmsh 2.2 ASCII file. Node IDs may be non contiguous and
// are remapped to 0-based order of appearance. The first element tag, the
// physical group, is kept as the cell tag.
func ReadGmsh(filename string) (*mesh.Mesh, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var (
		vertices [][]float64
		nodeMap  = make(map[int]int) // file node ID -> vertex index
		cells    [][]int
		types    []mesh.CellType
		tags     []int
		anyZ     bool
	)

	scanner := bufio.NewScanner(file)
	readLine := func() (string, error) {
		if !scanner.Scan() {
			return "", fmt.Errorf("unexpected EOF in %s", filename)
		}
		return strings.TrimSpace(scanner.Text()), nil
	}

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "$MeshFormat":
			header, err := readLine()
			if err != nil {
				return nil, err
			}
			fields := strings.Fields(header)
			if len(fields) < 3 {
				return nil, fmt.Errorf("malformed $MeshFormat header: %q", header)
			}
			if fields[0] != "2.2" || fields[1] != "0" {
				return nil, fmt.Errorf("unsupported Gmsh format: version %s, only 2.2 ASCII is supported",
					fields[0])
			}

		case "$Nodes":
			countLine, err := readLine()
			if err != nil {
				return nil, err
			}
			nnodes, err := strconv.Atoi(countLine)
			if err != nil {
				return nil, fmt.Errorf("invalid node count: %v", err)
			}
			vertices = make([][]float64, 0, nnodes)
			for i := 0; i < nnodes; i++ {
				nodeLine, err := readLine()
				if err != nil {
					return nil, err
				}
				fields := strings.Fields(nodeLine)
				if len(fields) != 4 {
					return nil, fmt.Errorf("invalid node line: %q", nodeLine)
				}
				id, err := strconv.Atoi(fields[0])
				if err != nil {
					return nil, fmt.Errorf("invalid node ID: %v", err)
				}
				coords := make([]float64, 3)
				for j := 0; j < 3; j++ {
					coords[j], err = strconv.ParseFloat(fields[1+j], 64)
					if err != nil {
						return nil, fmt.Errorf("invalid coordinate: %v", err)
					}
				}
				if coords[2] != 0 {
					anyZ = true
				}
				nodeMap[id] = len(vertices)
				vertices = append(vertices, coords)
			}

		case "$Elements":
			countLine, err := readLine()
			if err != nil {
				return nil, err
			}
			nelem, err := strconv.Atoi(countLine)
			if err != nil {
				return nil, fmt.Errorf("invalid element count: %v", err)
			}
			cells = make([][]int, 0, nelem)
			types = make([]mesh.CellType, 0, nelem)
			tags = make([]int, 0, nelem)
			for i := 0; i < nelem; i++ {
				elemLine, err := readLine()
				if err != nil {
					return nil, err
				}
				fields := strings.Fields(elemLine)
				if len(fields) < 3 {
					return nil, fmt.Errorf("invalid element line: %q", elemLine)
				}
				code, err := strconv.Atoi(fields[1])
				if err != nil {
					return nil, fmt.Errorf("invalid element type: %v", err)
				}
				ct, err := gmshCellType(code)
				if err != nil {
					return nil, err
				}
				ntags, err := strconv.Atoi(fields[2])
				if err != nil {
					return nil, fmt.Errorf("invalid tag count: %v", err)
				}
				nv := ct.NumVerts()
				if len(fields) != 3+ntags+nv {
					return nil, fmt.Errorf("element %s: expected %d vertices for %s",
						fields[0], nv, ct)
				}
				tag := 0
				if ntags > 0 {
					if tag, err = strconv.Atoi(fields[3]); err != nil {
						return nil, fmt.Errorf("invalid element tag: %v", err)
					}
				}
				conn := make([]int, nv)
				for j := 0; j < nv; j++ {
					id, err := strconv.Atoi(fields[3+ntags+j])
					if err != nil {
						return nil, fmt.Errorf("invalid vertex ID: %v", err)
					}
					idx, ok := nodeMap[id]
					if !ok {
						return nil, fmt.Errorf("element references unknown node %d", id)
					}
					conn[j] = idx
				}
				cells = append(cells, conn)
				types = append(types, ct)
				tags = append(tags, tag)
			}
		}
	}
	if err = scanner.Err(); err != nil {
		return nil, err
	}
	if len(vertices) == 0 {
		return nil, fmt.Errorf("%s: no $Nodes section found", filename)
	}
	if len(cells) == 0 {
		return nil, fmt.Errorf("%s: no $Elements section found", filename)
	}

	cells, types, tags = keepHighestDim(cells, types, tags)
	// Gmsh files always store 3 coordinates; a fully planar mesh is 2D
	if !anyZ {
		for i, v := range vertices {
			vertices[i] = v[:2]
		}
	}
	msh, err := mesh.NewMixedMesh(vertices, cells, types)
	if err != nil {
		return nil, fmt.Errorf("%s: %v", filename, err)
	}
	copy(msh.CellTags, tags)
	return msh, nil
}
