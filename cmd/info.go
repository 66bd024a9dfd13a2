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

	"github.com/spf13/cobra"

	"github.com/notargets/meshgeom/readers"
)

// infoCmd represents the info command
var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Print statistics for a mesh file",
	Long: `
Reads a mesh file and prints its vertex and cell counts, extent, manifold
status and facet connectivity summary.

meshgeom info -F grid.msh`,
	Run: func(cmd *cobra.Command, args []string) {
		gridFile, err := cmd.Flags().GetString("gridFile")
		if err != nil {
			panic(err)
		}
		if len(gridFile) == 0 {
			fmt.Println("error: must supply a grid file (-F, --gridFile)")
			os.Exit(1)
		}
		RunInfo(gridFile)
	},
}

func RunInfo(gridFile string) {
	msh, err := readers.ReadMeshFile(gridFile)
	if err != nil {
		fmt.Printf("error reading grid file: %s\n", err.Error())
		os.Exit(1)
	}
	lo, hi := msh.BoundingBox()
	fmt.Printf("%s\n", gridFile)
	fmt.Printf("%d\t\t= Vertices\n", msh.NumVertices)
	fmt.Printf("%d\t\t= Cells\n", msh.NumCells)
	fmt.Printf("%d\t\t= Topological dimension\n", msh.TopologicalDim())
	fmt.Printf("%d\t\t= Geometric dimension\n", msh.GeometricDim)
	fmt.Printf("%v\t= Manifold\n", msh.IsManifold())
	fmt.Printf("[%8.5f,%8.5f,%8.5f] -> [%8.5f,%8.5f,%8.5f]\t= Extent\n",
		lo[0], lo[1], lo[2], hi[0], hi[1], hi[2])
	if err = msh.BuildConnectivity(); err != nil {
		fmt.Printf("connectivity: %s\n", err.Error())
		return
	}
	fmt.Printf("%d\t\t= Boundary facets\n", msh.NumBoundaryFacets())
}

func init() {
	rootCmd.AddCommand(infoCmd)
	infoCmd.Flags().StringP("gridFile", "F", "", "Grid file to read in SU2 (.su2) or Gmsh 2.2 (.msh) format")
}
