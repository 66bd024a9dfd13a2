package cmd

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/meshgeom/geometry"
	"github.com/notargets/meshgeom/mesh"
)

func locateTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	vertices := [][]float64{
		{0.0, 0.0, 1.0},
		{1.0, 1.0, 1.0},
		{1.0, 0.0, 0.0},
		{0.0, 1.0, 0.0},
	}
	msh, err := mesh.NewMesh(mesh.Triangle, vertices, [][]int{{0, 1, 2}, {0, 1, 3}})
	require.NoError(t, err)
	tree, err := geometry.NewBoundingBoxTree(msh, msh.TopologicalDim())
	require.NoError(t, err)
	return NewLocateRouter(msh, tree)
}

func TestServeMeshInfo(t *testing.T) {
	r := locateTestRouter(t)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/mesh", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Vertices int  `json:"vertices"`
		Cells    int  `json:"cells"`
		Manifold bool `json:"manifold"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 4, body.Vertices)
	assert.Equal(t, 2, body.Cells)
	assert.True(t, body.Manifold)
}

func TestServeLocate(t *testing.T) {
	r := locateTestRouter(t)

	payload := []byte(`{"points": [[0.5, 0.25, 0.75], [0.25, 0.5, 0.75], [2.5, 2.5, 2.5]]}`)
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/locate", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Results []struct {
			Point []float64 `json:"point"`
			Cells []int     `json:"cells"`
		} `json:"results"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Results, 3)
	assert.Equal(t, []int{0}, body.Results[0].Cells)
	assert.Equal(t, []int{1}, body.Results[1].Cells)
	assert.Empty(t, body.Results[2].Cells)
}

func TestServeLocateBadRequest(t *testing.T) {
	r := locateTestRouter(t)

	// Missing points field fails binding
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/locate", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Dimension mismatch is a client error
	w = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodPost, "/locate",
		bytes.NewReader([]byte(`{"points": [[0.5, 0.25]]}`)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
