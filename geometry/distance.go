package geometry

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// ClosestPointSegment returns the point on segment ab closest to p
func ClosestPointSegment(p, a, b Point) Point {
	ab := b.Minus(a)
	denom := ab.Dot(ab)
	if denom == 0 {
		return a
	}
	t := p.Minus(a).Dot(ab) / denom
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return a.Plus(ab.Scale(t))
}

// ClosestPointTriangle returns the point on triangle abc closest to p,
// using the Voronoi region walk over the triangle's features. For a point
// near a manifold cell this is the projection onto the cell's plane clamped
// to the cell's extent.
func ClosestPointTriangle(p, a, b, c Point) Point {
	ab := b.Minus(a)
	ac := c.Minus(a)
	ap := p.Minus(a)
	d1 := ab.Dot(ap)
	d2 := ac.Dot(ap)
	if d1 <= 0 && d2 <= 0 {
		return a
	}
	bp := p.Minus(b)
	d3 := ab.Dot(bp)
	d4 := ac.Dot(bp)
	if d3 >= 0 && d4 <= d3 {
		return b
	}
	vc := d1*d4 - d3*d2
	if vc <= 0 && d1 >= 0 && d3 <= 0 {
		v := d1 / (d1 - d3)
		return a.Plus(ab.Scale(v))
	}
	cp := p.Minus(c)
	d5 := ab.Dot(cp)
	d6 := ac.Dot(cp)
	if d6 >= 0 && d5 <= d6 {
		return c
	}
	vb := d5*d2 - d1*d6
	if vb <= 0 && d2 >= 0 && d6 <= 0 {
		w := d2 / (d2 - d6)
		return a.Plus(ac.Scale(w))
	}
	va := d3*d6 - d5*d4
	if va <= 0 && d4-d3 >= 0 && d5-d6 >= 0 {
		w := (d4 - d3) / ((d4 - d3) + (d5 - d6))
		return b.Plus(c.Minus(b).Scale(w))
	}
	denom := 1. / (va + vb + vc)
	v := vb * denom
	w := vc * denom
	return a.Plus(ab.Scale(v)).Plus(ac.Scale(w))
}

// TetBarycentric returns the barycentric coordinates of p with respect to
// the tet abcd by solving the 3x3 edge system. A degenerate tet yields an
// error from the solve.
func TetBarycentric(p, a, b, c, d Point) (lambda [4]float64, err error) {
	var (
		ab = b.Minus(a)
		ac = c.Minus(a)
		ad = d.Minus(a)
		ap = p.Minus(a)
	)
	A := mat.NewDense(3, 3, []float64{
		ab.X[0], ac.X[0], ad.X[0],
		ab.X[1], ac.X[1], ad.X[1],
		ab.X[2], ac.X[2], ad.X[2],
	})
	rhs := mat.NewVecDense(3, []float64{ap.X[0], ap.X[1], ap.X[2]})
	var x mat.VecDense
	if err = x.SolveVec(A, rhs); err != nil {
		return
	}
	lambda[1] = x.AtVec(0)
	lambda[2] = x.AtVec(1)
	lambda[3] = x.AtVec(2)
	lambda[0] = 1 - lambda[1] - lambda[2] - lambda[3]
	return
}

// DistanceToTet returns 0 when p lies inside tet abcd (within tol on the
// barycentric coordinates), otherwise the distance to the nearest face
func DistanceToTet(p, a, b, c, d Point, tol float64) float64 {
	if lambda, err := TetBarycentric(p, a, b, c, d); err == nil {
		inside := true
		for _, l := range lambda {
			if l < -tol || l > 1+tol {
				inside = false
				break
			}
		}
		if inside {
			return 0
		}
	}
	dist := math.Inf(1)
	for _, face := range [4][3]Point{{a, b, c}, {a, b, d}, {b, c, d}, {a, c, d}} {
		if fd := p.DistanceTo(ClosestPointTriangle(p, face[0], face[1], face[2])); fd < dist {
			dist = fd
		}
	}
	return dist
}
