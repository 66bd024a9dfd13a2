package mesh

import (
	"fmt"
)

// CellType represents different cell types
type CellType int

const (
	Line CellType = iota
	Triangle
	Quad
	Tet
	Hex
	Prism
	Pyramid
)

func (c CellType) String() string {
	return [...]string{"Line", "Triangle", "Quad", "Tet", "Hex", "Prism", "Pyramid"}[c]
}

// NumVerts returns the number of vertices per cell of this type
func (c CellType) NumVerts() int {
	return [...]int{2, 3, 4, 4, 8, 6, 5}[c]
}

// Dim returns the topological dimension of the cell type
func (c CellType) Dim() int {
	return [...]int{1, 2, 2, 3, 3, 3, 3}[c]
}

// Mesh holds vertex coordinates and cell to vertex connectivity for a
// collection of cells of a declared type, embedded in an ambient space of
// GeometricDim coordinates. Coordinates are always stored 3-wide, with
// trailing components zero when GeometricDim < 3. A mesh is immutable once
// constructed.
type Mesh struct {
	// Geometry
	Vertices     [][]float64 // Vertex coordinates [nvertices][3]
	GeometricDim int         // Ambient coordinate dimension, 1..3

	// Cell data
	EtoV      [][]int    // Cell to vertex connectivity [ncells][nverts_per_cell]
	CellTypes []CellType // Cell type for each cell
	CellTags  []int      // Physical group/tag for each cell

	// Connectivity (built by BuildConnectivity)
	EToE [][]int // Cell to cell connectivity across facets [ncells][nfacets_per_cell]

	// Mesh statistics
	NumCells    int
	NumVertices int
}

// NewMesh creates a mesh of uniform cell type from raw vertex and
// connectivity tables. Vertices may carry 1, 2 or 3 coordinates each; the
// count must be uniform and sets the geometric dimension. Every cell must
// reference in-bounds vertex indices and carry the vertex count of its type.
func NewMesh(cellType CellType, vertices [][]float64, cells [][]int) (msh *Mesh, err error) {
	cellTypes := make([]CellType, len(cells))
	for k := range cellTypes {
		cellTypes[k] = cellType
	}
	return NewMixedMesh(vertices, cells, cellTypes)
}

// NewMixedMesh creates a mesh with a cell type declared per cell
func NewMixedMesh(vertices [][]float64, cells [][]int, cellTypes []CellType) (msh *Mesh, err error) {
	if len(vertices) == 0 {
		return nil, fmt.Errorf("mesh has no vertices")
	}
	if len(cells) != len(cellTypes) {
		return nil, fmt.Errorf("have %d cells but %d cell types", len(cells), len(cellTypes))
	}
	gDim := len(vertices[0])
	if gDim < 1 || gDim > 3 {
		return nil, fmt.Errorf("unsupported geometric dimension: %d", gDim)
	}
	msh = &Mesh{
		Vertices:     make([][]float64, len(vertices)),
		GeometricDim: gDim,
		EtoV:         make([][]int, len(cells)),
		CellTypes:    append([]CellType(nil), cellTypes...),
		CellTags:     make([]int, len(cells)),
		NumCells:     len(cells),
		NumVertices:  len(vertices),
	}
	for i, v := range vertices {
		if len(v) != gDim {
			return nil, fmt.Errorf("vertex %d has %d coordinates, expected %d", i, len(v), gDim)
		}
		coords := make([]float64, 3)
		copy(coords, v)
		msh.Vertices[i] = coords
	}
	for k, cell := range cells {
		nv := cellTypes[k].NumVerts()
		if len(cell) != nv {
			return nil, fmt.Errorf("cell %d has %d vertices, %s requires %d",
				k, len(cell), cellTypes[k], nv)
		}
		for _, vi := range cell {
			if vi < 0 || vi >= msh.NumVertices {
				return nil, fmt.Errorf("cell %d references vertex %d, out of range [0,%d)",
					k, vi, msh.NumVertices)
			}
		}
		msh.EtoV[k] = append([]int(nil), cell...)
	}
	return msh, nil
}

// TopologicalDim returns the highest cell dimension present in the mesh
func (m *Mesh) TopologicalDim() (dim int) {
	for _, ct := range m.CellTypes {
		if ct.Dim() > dim {
			dim = ct.Dim()
		}
	}
	return
}

// IsManifold reports whether the cell dimension is strictly below the
// ambient dimension, e.g. a surface mesh embedded in 3D
func (m *Mesh) IsManifold() bool {
	return m.TopologicalDim() < m.GeometricDim
}

// CellVertices returns the coordinate rows of cell k's vertices
func (m *Mesh) CellVertices(k int) (verts [][]float64) {
	verts = make([][]float64, len(m.EtoV[k]))
	for i, vi := range m.EtoV[k] {
		verts[i] = m.Vertices[vi]
	}
	return
}

// CellBoundingBox returns the axis aligned extent of cell k
func (m *Mesh) CellBoundingBox(k int) (lo, hi [3]float64) {
	verts := m.EtoV[k]
	copy(lo[:], m.Vertices[verts[0]])
	copy(hi[:], m.Vertices[verts[0]])
	for _, vi := range verts[1:] {
		for i := 0; i < 3; i++ {
			x := m.Vertices[vi][i]
			if x < lo[i] {
				lo[i] = x
			}
			if x > hi[i] {
				hi[i] = x
			}
		}
	}
	return
}

// CellCentroid returns the arithmetic mean of cell k's vertex coordinates
func (m *Mesh) CellCentroid(k int) (c [3]float64) {
	verts := m.EtoV[k]
	for _, vi := range verts {
		for i := 0; i < 3; i++ {
			c[i] += m.Vertices[vi][i]
		}
	}
	oon := 1. / float64(len(verts))
	for i := 0; i < 3; i++ {
		c[i] *= oon
	}
	return
}

// BoundingBox returns the axis aligned extent of the whole mesh
func (m *Mesh) BoundingBox() (lo, hi [3]float64) {
	copy(lo[:], m.Vertices[0])
	copy(hi[:], m.Vertices[0])
	for _, v := range m.Vertices[1:] {
		for i := 0; i < 3; i++ {
			if v[i] < lo[i] {
				lo[i] = v[i]
			}
			if v[i] > hi[i] {
				hi[i] = v[i]
			}
		}
	}
	return
}
