package geometry

type BoundingBox struct {
	XMin [3]float64
	XMax [3]float64
}

func NewBoundingBox(geometry []Point) (box *BoundingBox) {
	if len(geometry) == 0 {
		return nil
	}
	box = new(BoundingBox)
	box.XMin = geometry[0].X
	box.XMax = geometry[0].X
	for _, point := range geometry {
		for i := 0; i < 3; i++ {
			if point.X[i] < box.XMin[i] {
				box.XMin[i] = point.X[i]
			}
			if point.X[i] > box.XMax[i] {
				box.XMax[i] = point.X[i]
			}
		}
	}
	return box
}

// Union returns the smallest box enclosing both boxes
func (bb *BoundingBox) Union(other *BoundingBox) (bbOut *BoundingBox) {
	bbOut = new(BoundingBox)
	for i := 0; i < 3; i++ {
		bbOut.XMin[i] = bb.XMin[i]
		if other.XMin[i] < bb.XMin[i] {
			bbOut.XMin[i] = other.XMin[i]
		}
		bbOut.XMax[i] = bb.XMax[i]
		if other.XMax[i] > bb.XMax[i] {
			bbOut.XMax[i] = other.XMax[i]
		}
	}
	return
}

// Contains reports whether p lies inside the box expanded by tol on all sides
func (bb *BoundingBox) Contains(p Point, tol float64) bool {
	for i := 0; i < 3; i++ {
		if p.X[i] < bb.XMin[i]-tol || p.X[i] > bb.XMax[i]+tol {
			return false
		}
	}
	return true
}

func (bb *BoundingBox) Centroid() (centroid Point) {
	return Point{X: [3]float64{
		0.5 * (bb.XMax[0] + bb.XMin[0]),
		0.5 * (bb.XMax[1] + bb.XMin[1]),
		0.5 * (bb.XMax[2] + bb.XMin[2]),
	}}
}

// LongestAxis returns the coordinate direction of the box's largest extent
func (bb *BoundingBox) LongestAxis() (axis int) {
	best := bb.XMax[0] - bb.XMin[0]
	for i := 1; i < 3; i++ {
		if ext := bb.XMax[i] - bb.XMin[i]; ext > best {
			best = ext
			axis = i
		}
	}
	return
}

func (bb *BoundingBox) Scale(scale float64) (bbOut *BoundingBox) {
	bbOut = new(BoundingBox)
	for i := 0; i < 3; i++ {
		xRange := bb.XMax[i] - bb.XMin[i]
		centroid := bb.XMin[i] + 0.5*xRange
		bbOut.XMin[i] = scale*(bb.XMin[i]-centroid) + centroid
		bbOut.XMax[i] = scale*(bb.XMax[i]-centroid) + centroid
	}
	return bbOut
}
