package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/meshgeom/mesh"
)

// Simple two-triangle surface in 3d: the triangles share the edge (0,1) and
// lie in differently oriented planes, so their bounding boxes overlap
func twoTriangleManifoldMesh(t *testing.T) *mesh.Mesh {
	t.Helper()
	vertices := [][]float64{
		{0.0, 0.0, 1.0},
		{1.0, 1.0, 1.0},
		{1.0, 0.0, 0.0},
		{0.0, 1.0, 0.0},
	}
	cells := [][]int{{0, 1, 2}, {0, 1, 3}}
	msh, err := mesh.NewMesh(mesh.Triangle, vertices, cells)
	require.NoError(t, err)
	return msh
}

func TestManifoldPointSearch(t *testing.T) {
	msh := twoTriangleManifoldMesh(t)
	assert.True(t, msh.IsManifold())

	tree, err := NewBoundingBoxTree(msh, msh.TopologicalDim())
	require.NoError(t, err)

	p := []float64{0.5, 0.25, 0.75}
	candidates, err := ComputeCollisionsPoint(tree, p)
	require.NoError(t, err)
	require.NotEmpty(t, candidates)
	cells, err := SelectCollidingCells(msh, candidates, p, 1)
	require.NoError(t, err)
	require.Len(t, cells, 1)
	assert.Equal(t, 0, cells[0])

	p = []float64{0.25, 0.5, 0.75}
	candidates, err = ComputeCollisionsPoint(tree, p)
	require.NoError(t, err)
	require.NotEmpty(t, candidates)
	cells, err = SelectCollidingCells(msh, candidates, p, 1)
	require.NoError(t, err)
	require.Len(t, cells, 1)
	assert.Equal(t, 1, cells[0])
}

func TestQueryIdempotence(t *testing.T) {
	msh := twoTriangleManifoldMesh(t)
	tree, err := NewBoundingBoxTree(msh, msh.TopologicalDim())
	require.NoError(t, err)

	p := []float64{0.5, 0.25, 0.75}
	first, err := ComputeCollisionsPoint(tree, p)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := ComputeCollisionsPoint(tree, p)
		require.NoError(t, err)
		assert.Equal(t, first, again)
		cells, err := SelectCollidingCells(msh, again, p, 1)
		require.NoError(t, err)
		assert.Equal(t, []int{0}, cells)
	}
}

func TestPointOutsideMesh(t *testing.T) {
	msh := twoTriangleManifoldMesh(t)
	tree, err := NewBoundingBoxTree(msh, msh.TopologicalDim())
	require.NoError(t, err)

	// Strictly outside every cell's bounding box
	p := []float64{2.5, 2.5, 2.5}
	candidates, err := ComputeCollisionsPoint(tree, p)
	require.NoError(t, err)
	assert.Empty(t, candidates)
	cells, err := SelectCollidingCells(msh, candidates, p, 1)
	require.NoError(t, err)
	assert.Empty(t, cells)

	// Inside the boxes but off both planes: candidates exist, none pass
	p = []float64{0.9, 0.1, 0.9}
	candidates, err = ComputeCollisionsPoint(tree, p)
	require.NoError(t, err)
	cells, err = SelectCollidingCells(msh, candidates, p, 1)
	require.NoError(t, err)
	assert.Empty(t, cells)
}

func TestSharedEdgeTieBreak(t *testing.T) {
	msh := twoTriangleManifoldMesh(t)
	tree, err := NewBoundingBoxTree(msh, msh.TopologicalDim())
	require.NoError(t, err)

	// Midpoint of the shared edge (0,1): both cells contain it exactly
	p := []float64{0.5, 0.5, 1.0}
	candidates, err := ComputeCollisionsPoint(tree, p)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, candidates)

	cells, err := SelectCollidingCells(msh, candidates, p, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, cells)

	// With one result requested the tie breaks to the lower cell index,
	// deterministically across repeated queries
	for i := 0; i < 10; i++ {
		cells, err = SelectCollidingCells(msh, candidates, p, 1)
		require.NoError(t, err)
		assert.Equal(t, []int{0}, cells)
	}
}

func TestDimensionMismatch(t *testing.T) {
	msh := twoTriangleManifoldMesh(t)
	tree, err := NewBoundingBoxTree(msh, msh.TopologicalDim())
	require.NoError(t, err)

	_, err = ComputeCollisionsPoint(tree, []float64{0.5, 0.25})
	assert.Error(t, err)
	_, err = SelectCollidingCells(msh, []int{0}, []float64{0.5, 0.25}, 1)
	assert.Error(t, err)
}

func TestCellDistanceManifold(t *testing.T) {
	msh := twoTriangleManifoldMesh(t)

	// (0.5,0.25,0.75) lies on cell 0's plane inside the triangle, and at
	// distance 0.5/sqrt(3) from cell 1's plane
	p := NewPoint(0.5, 0.25, 0.75)
	assert.InDelta(t, 0, CellDistance(msh, 0, p), 1.e-14)
	assert.InDelta(t, 0.5/math.Sqrt(3), CellDistance(msh, 1, p), 1.e-14)
}

func TestTetPointLocation(t *testing.T) {
	msh, err := mesh.UnitCubeMesh(2, 2, 2)
	require.NoError(t, err)
	assert.False(t, msh.IsManifold())

	tree, err := NewBoundingBoxTree(msh, 3)
	require.NoError(t, err)

	// Interior point away from all tet faces: exactly one containing cell
	p := []float64{0.3, 0.4, 0.6}
	candidates, err := ComputeCollisionsPoint(tree, p)
	require.NoError(t, err)
	require.NotEmpty(t, candidates)
	cells, err := SelectCollidingCells(msh, candidates, p, 4)
	require.NoError(t, err)
	require.Len(t, cells, 1)
	assert.InDelta(t, 0, CellDistance(msh, cells[0], NewPoint(p...)), 1.e-14)

	// Outside the cube
	outside, err := ComputeCollisionsPoint(tree, []float64{1.5, 0.5, 0.5})
	require.NoError(t, err)
	assert.Empty(t, outside)
}
