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
	"os"
	"time"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/notargets/meshgeom/InputParameters"
	"github.com/notargets/meshgeom/geometry"
	"github.com/notargets/meshgeom/mesh"
	"github.com/notargets/meshgeom/readers"
)

type ModelLocate struct {
	GridFile  string
	QueryFile string
	Graph     bool
	Delay     time.Duration
	Profile   bool
}

// locateCmd represents the locate command
var locateCmd = &cobra.Command{
	Use:   "locate",
	Short: "Locate points within the cells of a mesh",
	Long: `
Reads a mesh file, builds a bounding box tree over its cells and resolves
each query point to the cell(s) containing it.

meshgeom locate -F grid.su2 -Q queries.yaml`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err error
		)
		ml := &ModelLocate{}
		if ml.GridFile, err = cmd.Flags().GetString("gridFile"); err != nil {
			panic(err)
		}
		if ml.QueryFile, err = cmd.Flags().GetString("queryFile"); err != nil {
			panic(err)
		}
		ml.Graph, _ = cmd.Flags().GetBool("graph")
		ml.Profile, _ = cmd.Flags().GetBool("profile")
		dr, _ := cmd.Flags().GetInt("delay")
		ml.Delay = time.Duration(dr) * time.Millisecond
		qp := processLocateInput(ml)
		RunLocate(ml, qp)
	},
}

func processLocateInput(ml *ModelLocate) (qp *InputParameters.QueryParameters) {
	var (
		err      error
		willExit bool
	)
	if len(ml.GridFile) == 0 {
		err := fmt.Errorf("must supply a grid file (-F, --gridFile) in .su2 or .msh format")
		fmt.Printf("error: %s\n", err.Error())
		willExit = true
	}
	if len(ml.QueryFile) == 0 {
		err := fmt.Errorf("must supply a query file (-Q, --queryFile) in YAML format")
		fmt.Printf("error: %s\n", err.Error())
		exampleFile := `
########################################
Title: "Probe points"
Tolerance: 1.e-10
MaxResults: 1
Points:
  - [0.5, 0.25, 0.75]
  - [0.25, 0.5, 0.75]
########################################
`
		fmt.Printf("Example File:%s\n", exampleFile)
		willExit = true
	}
	if willExit {
		os.Exit(1)
	}
	var data []byte
	if data, err = os.ReadFile(ml.QueryFile); err != nil {
		panic(err)
	}
	qp = &InputParameters.QueryParameters{}
	if err = qp.Parse(data); err != nil {
		panic(err)
	}
	return
}

func RunLocate(ml *ModelLocate, qp *InputParameters.QueryParameters) {
	if ml.Profile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}
	msh, err := readers.ReadMeshFile(ml.GridFile)
	if err != nil {
		fmt.Printf("error reading grid file: %s\n", err.Error())
		os.Exit(1)
	}
	fmt.Printf("Read %s: %d vertices, %d cells, geometric dimension %d\n",
		ml.GridFile, msh.NumVertices, msh.NumCells, msh.GeometricDim)
	qp.Print()

	tree, err := geometry.NewBoundingBoxTree(msh, msh.TopologicalDim())
	if err != nil {
		fmt.Printf("error building bounding box tree: %s\n", err.Error())
		os.Exit(1)
	}

	tol := qp.Tolerance
	if tol == 0 {
		tol = geometry.SelectionTolerance
	}
	for _, x := range qp.Points {
		candidates, err := geometry.ComputeCollisionsPoint(tree, x)
		if err != nil {
			fmt.Printf("query %v: %s\n", x, err.Error())
			continue
		}
		cells, err := geometry.SelectCollidingCellsWithTolerance(msh, candidates, x, qp.MaxResults, tol)
		if err != nil {
			fmt.Printf("query %v: %s\n", x, err.Error())
			continue
		}
		if len(cells) == 0 {
			fmt.Printf("%v -> outside mesh (%d candidates)\n", x, len(candidates))
		} else {
			fmt.Printf("%v -> cells %v (%d candidates)\n", x, cells, len(candidates))
		}
	}

	if ml.Graph {
		PlotLocateMesh(msh, ml.Delay)
	}
}

// PlotLocateMesh displays the mesh and blocks for the delay so the window
// stays up after the queries print
func PlotLocateMesh(msh *mesh.Mesh, delay time.Duration) {
	if chart := readers.PlotMesh(msh); chart != nil {
		if delay == 0 {
			delay = 10 * time.Second
		}
		time.Sleep(delay)
	}
}

func init() {
	rootCmd.AddCommand(locateCmd)
	locateCmd.Flags().StringP("gridFile", "F", "", "Grid file to read in SU2 (.su2) or Gmsh 2.2 (.msh) format")
	locateCmd.Flags().StringP("queryFile", "Q", "", "YAML file with query points like:\n\t- Tolerance\n\t- MaxResults\n\t- Points")
	locateCmd.Flags().BoolP("graph", "g", false, "display the mesh after running the queries")
	locateCmd.Flags().IntP("delay", "d", 0, "milliseconds to keep the plot window open")
	locateCmd.Flags().Bool("profile", false, "write a CPU profile of the run to the current directory")
}
