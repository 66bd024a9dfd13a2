package geometry

import (
	"fmt"
	"sort"

	"github.com/notargets/meshgeom/mesh"
)

// QueryTolerance pads bounding boxes during point collision queries so
// points on a box face are never missed to floating point noise
const QueryTolerance = 1.e-10

// BoundingBoxTree is a static axis aligned bounding box tree over the cells
// of a mesh. Each leaf holds one cell's box; internal nodes bound the union
// of their children. The tree is built once and is read only afterwards, so
// concurrent queries are safe.
type BoundingBoxTree struct {
	msh   *mesh.Mesh
	dim   int
	nodes []treeNode
	root  int
}

type treeNode struct {
	box   BoundingBox
	left  int
	right int
	cell  int // leaf cell index, -1 on internal nodes
}

// NewBoundingBoxTree builds the tree over the mesh entities of the given
// dimension. Only the cell dimension of the mesh is indexable.
func NewBoundingBoxTree(msh *mesh.Mesh, dim int) (t *BoundingBoxTree, err error) {
	if msh.NumCells == 0 {
		return nil, fmt.Errorf("cannot build bounding box tree over empty mesh")
	}
	if dim != msh.TopologicalDim() {
		return nil, fmt.Errorf("bounding box tree dimension %d does not match cell dimension %d",
			dim, msh.TopologicalDim())
	}
	t = &BoundingBoxTree{
		msh:   msh,
		dim:   dim,
		nodes: make([]treeNode, 0, 2*msh.NumCells-1),
	}
	boxes := make([]BoundingBox, msh.NumCells)
	centroids := make([]Point, msh.NumCells)
	for k := 0; k < msh.NumCells; k++ {
		lo, hi := msh.CellBoundingBox(k)
		boxes[k] = BoundingBox{XMin: lo, XMax: hi}
		centroids[k] = boxes[k].Centroid()
	}
	cells := make([]int, msh.NumCells)
	for k := range cells {
		cells[k] = k
	}
	t.root = t.build(cells, boxes, centroids)
	return t, nil
}

// build recursively partitions cells at the median of their box centroids
// along the longest axis of the enclosing box
func (t *BoundingBoxTree) build(cells []int, boxes []BoundingBox, centroids []Point) (node int) {
	if len(cells) == 1 {
		t.nodes = append(t.nodes, treeNode{
			box:  boxes[cells[0]],
			left: -1, right: -1,
			cell: cells[0],
		})
		return len(t.nodes) - 1
	}
	enclosing := boxes[cells[0]]
	for _, k := range cells[1:] {
		enclosing = *enclosing.Union(&boxes[k])
	}
	axis := enclosing.LongestAxis()
	sort.Slice(cells, func(i, j int) bool {
		return centroids[cells[i]].X[axis] < centroids[cells[j]].X[axis]
	})
	mid := len(cells) / 2
	left := t.build(cells[:mid], boxes, centroids)
	right := t.build(cells[mid:], boxes, centroids)
	t.nodes = append(t.nodes, treeNode{
		box:  enclosing,
		left: left, right: right,
		cell: -1,
	})
	return len(t.nodes) - 1
}

// FindPoint returns the cells whose bounding box contains p within the query
// tolerance, in ascending cell order. Boxes may overlap cells that do not
// actually contain the point; callers refine with SelectCollidingCells.
func (t *BoundingBoxTree) FindPoint(p Point) (cells []int) {
	stack := []int{t.root}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := &t.nodes[node]
		if !n.box.Contains(p, QueryTolerance) {
			continue
		}
		if n.cell >= 0 {
			cells = append(cells, n.cell)
			continue
		}
		stack = append(stack, n.left, n.right)
	}
	sort.Ints(cells)
	return
}

// Mesh returns the mesh the tree was built over
func (t *BoundingBoxTree) Mesh() *mesh.Mesh { return t.msh }

// Dim returns the entity dimension the tree was built for
func (t *BoundingBoxTree) Dim() int { return t.dim }
