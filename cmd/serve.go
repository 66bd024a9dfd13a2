/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/notargets/meshgeom/geometry"
	"github.com/notargets/meshgeom/mesh"
	"github.com/notargets/meshgeom/readers"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve point location queries over HTTP",
	Long: `
Reads a mesh file, builds its bounding box tree once, then answers point
location queries over HTTP. The tree is immutable after the build, so
concurrent requests are safe.

meshgeom serve -F grid.su2 -p 8080`,
	Run: func(cmd *cobra.Command, args []string) {
		gridFile, err := cmd.Flags().GetString("gridFile")
		if err != nil {
			panic(err)
		}
		if len(gridFile) == 0 {
			fmt.Println("error: must supply a grid file (-F, --gridFile)")
			os.Exit(1)
		}
		port, _ := cmd.Flags().GetInt("port")
		RunServe(gridFile, port)
	},
}

type locateRequest struct {
	Points     [][]float64 `json:"points" binding:"required"`
	MaxResults int         `json:"maxResults"`
	Tolerance  float64     `json:"tolerance"`
}

type locateResult struct {
	Point      []float64 `json:"point"`
	Cells      []int     `json:"cells"`
	Candidates int       `json:"candidates"`
}

func RunServe(gridFile string, port int) {
	msh, err := readers.ReadMeshFile(gridFile)
	if err != nil {
		fmt.Printf("error reading grid file: %s\n", err.Error())
		os.Exit(1)
	}
	tree, err := geometry.NewBoundingBoxTree(msh, msh.TopologicalDim())
	if err != nil {
		fmt.Printf("error building bounding box tree: %s\n", err.Error())
		os.Exit(1)
	}
	r := NewLocateRouter(msh, tree)
	if err = r.Run(fmt.Sprintf(":%d", port)); err != nil {
		fmt.Printf("server error: %s\n", err.Error())
		os.Exit(1)
	}
}

// NewLocateRouter builds the HTTP routes over a built mesh and tree
func NewLocateRouter(msh *mesh.Mesh, tree *geometry.BoundingBoxTree) (r *gin.Engine) {
	r = gin.Default()
	r.GET("/mesh", func(c *gin.Context) {
		lo, hi := msh.BoundingBox()
		c.JSON(http.StatusOK, gin.H{
			"vertices":       msh.NumVertices,
			"cells":          msh.NumCells,
			"topologicalDim": msh.TopologicalDim(),
			"geometricDim":   msh.GeometricDim,
			"manifold":       msh.IsManifold(),
			"extentMin":      lo,
			"extentMax":      hi,
		})
	})
	r.POST("/locate", func(c *gin.Context) {
		var req locateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if req.MaxResults <= 0 {
			req.MaxResults = 1
		}
		tol := req.Tolerance
		if tol == 0 {
			tol = geometry.SelectionTolerance
		}
		results := make([]locateResult, 0, len(req.Points))
		for _, x := range req.Points {
			candidates, err := geometry.ComputeCollisionsPoint(tree, x)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			cells, err := geometry.SelectCollidingCellsWithTolerance(msh, candidates, x,
				req.MaxResults, tol)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			if cells == nil {
				cells = []int{}
			}
			results = append(results, locateResult{
				Point:      x,
				Cells:      cells,
				Candidates: len(candidates),
			})
		}
		c.JSON(http.StatusOK, gin.H{"results": results})
	})
	return
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("gridFile", "F", "", "Grid file to read in SU2 (.su2) or Gmsh 2.2 (.msh) format")
	serveCmd.Flags().IntP("port", "p", 8080, "port to listen on")
}
