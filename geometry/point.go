package geometry

import "math"

// Point is an ambient space coordinate. Coordinates are stored 3-wide;
// lower dimensional meshes leave trailing components zero.
type Point struct {
	X [3]float64
}

func NewPoint(x ...float64) (p Point) {
	copy(p.X[:], x)
	return
}

func (p Point) Plus(q Point) Point {
	return Point{X: [3]float64{p.X[0] + q.X[0], p.X[1] + q.X[1], p.X[2] + q.X[2]}}
}

func (p Point) Minus(q Point) Point {
	return Point{X: [3]float64{p.X[0] - q.X[0], p.X[1] - q.X[1], p.X[2] - q.X[2]}}
}

func (p Point) Scale(a float64) Point {
	return Point{X: [3]float64{a * p.X[0], a * p.X[1], a * p.X[2]}}
}

func (p Point) Dot(q Point) float64 {
	return p.X[0]*q.X[0] + p.X[1]*q.X[1] + p.X[2]*q.X[2]
}

func (p Point) Cross(q Point) Point {
	return Point{X: [3]float64{
		p.X[1]*q.X[2] - p.X[2]*q.X[1],
		p.X[2]*q.X[0] - p.X[0]*q.X[2],
		p.X[0]*q.X[1] - p.X[1]*q.X[0],
	}}
}

func (p Point) Norm() float64 {
	return math.Sqrt(p.Dot(p))
}

func (p Point) DistanceTo(q Point) float64 {
	return p.Minus(q).Norm()
}
