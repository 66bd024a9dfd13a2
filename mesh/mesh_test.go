package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMeshValidation(t *testing.T) {
	vertices := [][]float64{
		{0, 0, 1},
		{1, 1, 1},
		{1, 0, 0},
		{0, 1, 0},
	}

	{ // Valid two-triangle manifold mesh
		msh, err := NewMesh(Triangle, vertices, [][]int{{0, 1, 2}, {0, 1, 3}})
		require.NoError(t, err)
		assert.Equal(t, 4, msh.NumVertices)
		assert.Equal(t, 2, msh.NumCells)
		assert.Equal(t, 2, msh.TopologicalDim())
		assert.Equal(t, 3, msh.GeometricDim)
		assert.True(t, msh.IsManifold())
	}
	{ // Out of range vertex index
		_, err := NewMesh(Triangle, vertices, [][]int{{0, 1, 4}})
		assert.Error(t, err)
		_, err = NewMesh(Triangle, vertices, [][]int{{0, 1, -1}})
		assert.Error(t, err)
	}
	{ // Wrong arity for the cell type
		_, err := NewMesh(Triangle, vertices, [][]int{{0, 1}})
		assert.Error(t, err)
		_, err = NewMesh(Tet, vertices, [][]int{{0, 1, 2}})
		assert.Error(t, err)
	}
	{ // Ragged coordinates
		_, err := NewMesh(Triangle, [][]float64{{0, 0, 1}, {1, 1}, {1, 0, 0}}, [][]int{{0, 1, 2}})
		assert.Error(t, err)
	}
	{ // No vertices
		_, err := NewMesh(Triangle, nil, nil)
		assert.Error(t, err)
	}
}

func TestMeshGeometryHelpers(t *testing.T) {
	vertices := [][]float64{
		{0, 0, 1},
		{1, 1, 1},
		{1, 0, 0},
		{0, 1, 0},
	}
	msh, err := NewMesh(Triangle, vertices, [][]int{{0, 1, 2}, {0, 1, 3}})
	require.NoError(t, err)

	verts := msh.CellVertices(1)
	require.Len(t, verts, 3)
	assert.Equal(t, []float64{0, 1, 0}, verts[2])

	lo, hi := msh.CellBoundingBox(0)
	assert.Equal(t, [3]float64{0, 0, 0}, lo)
	assert.Equal(t, [3]float64{1, 1, 1}, hi)

	c := msh.CellCentroid(0)
	assert.InDelta(t, 2./3., c[0], 1.e-14)
	assert.InDelta(t, 1./3., c[1], 1.e-14)
	assert.InDelta(t, 2./3., c[2], 1.e-14)

	lo, hi = msh.BoundingBox()
	assert.Equal(t, [3]float64{0, 0, 0}, lo)
	assert.Equal(t, [3]float64{1, 1, 1}, hi)
}

func TestCellTypes(t *testing.T) {
	assert.Equal(t, 3, Triangle.NumVerts())
	assert.Equal(t, 2, Triangle.Dim())
	assert.Equal(t, 4, Tet.NumVerts())
	assert.Equal(t, 3, Tet.Dim())
	assert.Equal(t, "Triangle", Triangle.String())
	assert.Equal(t, "Hex", Hex.String())
}

func TestPlanarMeshIsNotManifold(t *testing.T) {
	msh, err := NewMesh(Triangle,
		[][]float64{{0, 0}, {1, 0}, {0, 1}}, [][]int{{0, 1, 2}})
	require.NoError(t, err)
	assert.Equal(t, 2, msh.GeometricDim)
	assert.False(t, msh.IsManifold())
	// Stored coordinates are padded to 3 components
	assert.Equal(t, []float64{1, 0, 0}, msh.Vertices[1])
}
