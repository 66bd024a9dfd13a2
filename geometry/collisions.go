package geometry

import (
	"fmt"
	"sort"

	"github.com/notargets/meshgeom/mesh"
)

// SelectionTolerance is the default containment residual below which a cell
// is considered to contain a query point. Manifold cells have no interior in
// ambient space, so containment is distance based: the residual is the
// distance from the point to the closest point of the cell.
const SelectionTolerance = 1.e-10

// ComputeCollisionsPoint returns the candidate cells whose bounding box
// contains the query point. The coordinate count must match the mesh's
// geometric dimension.
func ComputeCollisionsPoint(t *BoundingBoxTree, x []float64) (cells []int, err error) {
	if len(x) != t.msh.GeometricDim {
		return nil, fmt.Errorf("query point has %d coordinates, mesh geometric dimension is %d",
			len(x), t.msh.GeometricDim)
	}
	return t.FindPoint(NewPoint(x...)), nil
}

// CellDistance returns the distance from p to the closest point of cell k.
// Zero means the point lies on (or in) the cell.
func CellDistance(msh *mesh.Mesh, k int, p Point) float64 {
	v := msh.CellVertices(k)
	switch msh.CellTypes[k] {
	case mesh.Line:
		return p.DistanceTo(ClosestPointSegment(p, NewPoint(v[0]...), NewPoint(v[1]...)))
	case mesh.Triangle:
		return p.DistanceTo(ClosestPointTriangle(p,
			NewPoint(v[0]...), NewPoint(v[1]...), NewPoint(v[2]...)))
	case mesh.Tet:
		return DistanceToTet(p,
			NewPoint(v[0]...), NewPoint(v[1]...), NewPoint(v[2]...), NewPoint(v[3]...), 0)
	default:
		panic(fmt.Sprintf("no distance predicate for cell type %s", msh.CellTypes[k]))
	}
}

// SelectCollidingCells refines bounding box candidates with the exact cell
// predicates and returns up to n cells that contain the point, best match
// first. An empty result means the point lies outside the mesh, which is a
// normal outcome.
func SelectCollidingCells(msh *mesh.Mesh, candidates []int, x []float64, n int) ([]int, error) {
	return SelectCollidingCellsWithTolerance(msh, candidates, x, n, SelectionTolerance)
}

// SelectCollidingCellsWithTolerance is SelectCollidingCells with an explicit
// containment tolerance. Matches are ordered by containment residual, ties
// broken by lower cell index so repeated queries are deterministic.
func SelectCollidingCellsWithTolerance(msh *mesh.Mesh, candidates []int, x []float64,
	n int, tol float64) (cells []int, err error) {
	if len(x) != msh.GeometricDim {
		return nil, fmt.Errorf("query point has %d coordinates, mesh geometric dimension is %d",
			len(x), msh.GeometricDim)
	}
	type match struct {
		cell     int
		residual float64
	}
	p := NewPoint(x...)
	var matches []match
	for _, k := range candidates {
		if d := CellDistance(msh, k, p); d <= tol {
			matches = append(matches, match{cell: k, residual: d})
		}
	}
	sort.Slice(matches, func(i, j int) bool {
		if matches[i].residual != matches[j].residual {
			return matches[i].residual < matches[j].residual
		}
		return matches[i].cell < matches[j].cell
	})
	if n > len(matches) {
		n = len(matches)
	}
	for i := 0; i < n; i++ {
		cells = append(cells, matches[i].cell)
	}
	return
}
