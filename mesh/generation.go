package mesh

import (
	"fmt"
)

// UnitIntervalMesh creates a mesh of n line cells on [0,1]
func UnitIntervalMesh(n int) (*Mesh, error) {
	if n < 1 {
		return nil, fmt.Errorf("interval must have at least 1 cell, got %d", n)
	}
	vertices := make([][]float64, n+1)
	for i := 0; i <= n; i++ {
		vertices[i] = []float64{float64(i) / float64(n)}
	}
	cells := make([][]int, n)
	for i := 0; i < n; i++ {
		cells[i] = []int{i, i + 1}
	}
	return NewMesh(Line, vertices, cells)
}

// UnitSquareMesh creates a triangle mesh of the unit square (0,1) x (0,1)
// with nx x ny squares, each split along the diagonal into two triangles
func UnitSquareMesh(nx, ny int) (*Mesh, error) {
	if nx < 1 || ny < 1 {
		return nil, fmt.Errorf("square must have at least 1 cell in each direction, got %d x %d", nx, ny)
	}
	vertices := make([][]float64, 0, (nx+1)*(ny+1))
	for iy := 0; iy <= ny; iy++ {
		y := float64(iy) / float64(ny)
		for ix := 0; ix <= nx; ix++ {
			x := float64(ix) / float64(nx)
			vertices = append(vertices, []float64{x, y})
		}
	}
	cells := make([][]int, 0, 2*nx*ny)
	for iy := 0; iy < ny; iy++ {
		for ix := 0; ix < nx; ix++ {
			v0 := iy*(nx+1) + ix
			v1 := v0 + 1
			v2 := v0 + (nx + 1)
			v3 := v1 + (nx + 1)
			cells = append(cells, []int{v0, v1, v3})
			cells = append(cells, []int{v0, v3, v2})
		}
	}
	return NewMesh(Triangle, vertices, cells)
}

// UnitCubeMesh creates a tet mesh of the unit cube (0,1)^3 with
// nx x ny x nz cubes, each split into six tetrahedra
func UnitCubeMesh(nx, ny, nz int) (*Mesh, error) {
	if nx < 1 || ny < 1 || nz < 1 {
		return nil, fmt.Errorf("cube must have at least 1 cell in each direction, got %d x %d x %d", nx, ny, nz)
	}
	vertices := make([][]float64, 0, (nx+1)*(ny+1)*(nz+1))
	for iz := 0; iz <= nz; iz++ {
		z := float64(iz) / float64(nz)
		for iy := 0; iy <= ny; iy++ {
			y := float64(iy) / float64(ny)
			for ix := 0; ix <= nx; ix++ {
				x := float64(ix) / float64(nx)
				vertices = append(vertices, []float64{x, y, z})
			}
		}
	}
	cells := make([][]int, 0, 6*nx*ny*nz)
	for iz := 0; iz < nz; iz++ {
		for iy := 0; iy < ny; iy++ {
			for ix := 0; ix < nx; ix++ {
				v0 := iz*(nx+1)*(ny+1) + iy*(nx+1) + ix
				v1 := v0 + 1
				v2 := v0 + (nx + 1)
				v3 := v1 + (nx + 1)
				v4 := v0 + (nx+1)*(ny+1)
				v5 := v1 + (nx+1)*(ny+1)
				v6 := v2 + (nx+1)*(ny+1)
				v7 := v3 + (nx+1)*(ny+1)
				cells = append(cells,
					[]int{v0, v1, v3, v7},
					[]int{v0, v1, v7, v5},
					[]int{v0, v5, v7, v4},
					[]int{v0, v3, v2, v7},
					[]int{v0, v6, v4, v7},
					[]int{v0, v2, v6, v7})
			}
		}
	}
	return NewMesh(Tet, vertices, cells)
}
