package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildConnectivityTwoTriangles(t *testing.T) {
	vertices := [][]float64{
		{0, 0, 1},
		{1, 1, 1},
		{1, 0, 0},
		{0, 1, 0},
	}
	msh, err := NewMesh(Triangle, vertices, [][]int{{0, 1, 2}, {0, 1, 3}})
	require.NoError(t, err)
	require.NoError(t, msh.BuildConnectivity())

	// Edge (0,1) is local facet 0 of both cells; everything else is boundary
	assert.Equal(t, []int{1, -1, -1}, msh.EToE[0])
	assert.Equal(t, []int{0, -1, -1}, msh.EToE[1])
	assert.Equal(t, 4, msh.NumBoundaryFacets())
}

func TestBuildConnectivityTets(t *testing.T) {
	msh, err := UnitCubeMesh(1, 1, 1)
	require.NoError(t, err)
	require.NoError(t, msh.BuildConnectivity())

	// Six tets around the cube diagonal: each has two interior and two
	// boundary faces
	for k := 0; k < msh.NumCells; k++ {
		interior := 0
		for _, nbr := range msh.EToE[k] {
			if nbr >= 0 {
				assert.NotEqual(t, k, nbr)
				interior++
			}
		}
		assert.Equal(t, 2, interior)
	}
	assert.Equal(t, 12, msh.NumBoundaryFacets())
}

func TestBuildConnectivityInterval(t *testing.T) {
	msh, err := UnitIntervalMesh(3)
	require.NoError(t, err)
	require.NoError(t, msh.BuildConnectivity())

	assert.Equal(t, []int{-1, 1}, msh.EToE[0])
	assert.Equal(t, []int{0, 2}, msh.EToE[1])
	assert.Equal(t, []int{1, -1}, msh.EToE[2])
	assert.Equal(t, 2, msh.NumBoundaryFacets())
}
