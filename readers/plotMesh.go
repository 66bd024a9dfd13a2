package readers

import (
	"fmt"
	"image/color"

	"github.com/notargets/avs/chart2d"
	graphics2D "github.com/notargets/avs/geometry"
	utils2 "github.com/notargets/avs/utils"

	"github.com/notargets/meshgeom/mesh"
)

// PlotMesh renders the triangle cells of a mesh, projected onto the first
// two coordinates. Cells are colored by their tag.
func PlotMesh(msh *mesh.Mesh) (chart *chart2d.Chart2D) {
	var (
		points  []graphics2D.Point
		trimesh graphics2D.TriMesh
	)
	points = make([]graphics2D.Point, msh.NumVertices)
	for i, v := range msh.Vertices {
		points[i].X[0] = float32(v[0])
		points[i].X[1] = float32(v[1])
	}
	var maxTag int
	for k := 0; k < msh.NumCells; k++ {
		if msh.CellTypes[k] != mesh.Triangle {
			continue
		}
		var tri graphics2D.Triangle
		for i := 0; i < 3; i++ {
			tri.Nodes[i] = int32(msh.EtoV[k][i])
		}
		trimesh.Triangles = append(trimesh.Triangles, tri)
		attr := float32(msh.CellTags[k])
		trimesh.Attributes = append(trimesh.Attributes, []float32{attr, attr, attr})
		if msh.CellTags[k] > maxTag {
			maxTag = msh.CellTags[k]
		}
	}
	if len(trimesh.Triangles) == 0 {
		fmt.Println("no triangle cells to plot")
		return nil
	}
	trimesh.Geometry = points
	colorMap := utils2.NewColorMap(0, float32(maxTag+1), 1)
	box := graphics2D.NewBoundingBox(trimesh.GetGeometry())
	box = box.Scale(1.5)
	chart = chart2d.NewChart2D(1920, 1920, box.XMin[0], box.XMax[0], box.XMin[1], box.XMax[1])
	chart.AddColorMap(colorMap)
	go chart.Plot()
	white := color.RGBA{
		R: 255,
		G: 255,
		B: 255,
		A: 0,
	}
	if err := chart.AddTriMesh("Mesh", trimesh,
		chart2d.CrossGlyph, chart2d.Solid, white); err != nil {
		panic("unable to add graph series")
	}
	return
}
