package mesh

import (
	"fmt"

	"github.com/james-bowman/sparse"
)

// cellFacets returns the local facets of a cell type as local vertex index
// tuples. Facets are the dim-1 entities: vertices of a line, edges of a
// triangle or quad, faces of a tet.
func cellFacets(ct CellType) [][]int {
	switch ct {
	case Line:
		return [][]int{{0}, {1}}
	case Triangle:
		return [][]int{{0, 1}, {1, 2}, {2, 0}}
	case Quad:
		return [][]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}}
	case Tet:
		return [][]int{{0, 1, 2}, {0, 1, 3}, {1, 2, 3}, {0, 2, 3}}
	default:
		panic(fmt.Sprintf("no facet table for cell type %s", ct))
	}
}

// BuildConnectivity computes the cell to cell adjacency EToE across shared
// facets. Interior facets connect exactly two cells; boundary facets are
// marked -1. Two facets match when they share all their vertices, found as
// entries of the facet-to-vertex product FToV * FToV^T that reach the facet
// vertex count.
func (m *Mesh) BuildConnectivity() error {
	type facetRef struct {
		cell, local, size int
	}
	var refs []facetRef
	totalFacets := 0
	for k := 0; k < m.NumCells; k++ {
		nf := len(cellFacets(m.CellTypes[k]))
		for f := 0; f < nf; f++ {
			refs = append(refs, facetRef{cell: k, local: f,
				size: len(cellFacets(m.CellTypes[k])[f])})
		}
		totalFacets += nf
	}
	if totalFacets == 0 {
		return fmt.Errorf("mesh has no facets")
	}

	SpFToV := sparse.NewDOK(totalFacets, m.NumVertices)
	var sk int
	for k := 0; k < m.NumCells; k++ {
		verts := m.EtoV[k]
		for _, facet := range cellFacets(m.CellTypes[k]) {
			for _, lv := range facet {
				SpFToV.Set(sk, verts[lv], 1)
			}
			sk++
		}
	}

	FToV := SpFToV.ToCSR()
	SpFToF := sparse.NewCSR(totalFacets, totalFacets, nil, nil, nil)
	SpFToF.Mul(FToV, FToV.T())

	m.EToE = make([][]int, m.NumCells)
	for k := 0; k < m.NumCells; k++ {
		nf := len(cellFacets(m.CellTypes[k]))
		m.EToE[k] = make([]int, nf)
		for f := 0; f < nf; f++ {
			m.EToE[k][f] = -1
		}
	}

	var dupErr error
	SpFToF.DoNonZero(func(i, j int, v float64) {
		if i == j || dupErr != nil {
			return
		}
		ri, rj := refs[i], refs[j]
		// A full overlap of equal sized facets is a shared facet
		if ri.size != rj.size || int(v) != ri.size {
			return
		}
		if m.EToE[ri.cell][ri.local] >= 0 && m.EToE[ri.cell][ri.local] != rj.cell {
			dupErr = fmt.Errorf("facet %d of cell %d shared by more than two cells",
				ri.local, ri.cell)
			return
		}
		m.EToE[ri.cell][ri.local] = rj.cell
	})
	return dupErr
}

// NumBoundaryFacets counts the facets not shared with a neighbor cell.
// BuildConnectivity must have been called.
func (m *Mesh) NumBoundaryFacets() (count int) {
	for _, row := range m.EToE {
		for _, nbr := range row {
			if nbr < 0 {
				count++
			}
		}
	}
	return
}
