// Package draw implements the shared-cell-model drawing operations:
// line/polygon/star/ellipse primitives, box-drawing glyph merges,
// 4-connected flood fill, and gradient colorization.
package draw

import (
	"fmt"
	"math"

	"github.com/patrick-goecommerce/ansiscreen/ansierr"
)

// Point is an integer pixel coordinate on the half-block pixel plane.
type Point struct {
	X, Y int
}

// Line returns the integer points of a Bresenham line from (x0,y0) to
// (x1,y1), inclusive of both endpoints.
func Line(x0, y0, x1, y1 int) []Point {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	var pts []Point
	x, y := x0, y0
	for {
		pts = append(pts, Point{x, y})
		if x == x1 && y == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
	return pts
}

// Polyline chains Line segments between consecutive points.
func Polyline(points []Point) []Point {
	var out []Point
	for i := 0; i+1 < len(points); i++ {
		out = append(out, Line(points[i].X, points[i].Y, points[i+1].X, points[i+1].Y)...)
	}
	return out
}

// RegularPolygon returns sides+1 vertices (closed: the last point
// repeats the first) for a regular polygon centered at (cx,cy) with
// radius r, starting at the given rotation in radians.
func RegularPolygon(cx, cy, r, sides int, rotation float64) []Point {
	pts := make([]Point, 0, sides+1)
	for i := 0; i <= sides; i++ {
		theta := rotation + float64(i)*2*math.Pi/float64(sides)
		pts = append(pts, Point{
			X: cx + roundInt(float64(r)*math.Cos(theta)),
			Y: cy + roundInt(float64(r)*math.Sin(theta)),
		})
	}
	return pts
}

// RegularStar returns the vertices of the star polygon {n/k} centered
// at (cx,cy) with radius r: step the vertex index by k (mod n),
// collecting a point at every step, until the walk returns to its
// starting vertex. k must be in (0,n).
func RegularStar(cx, cy, r, n, k int, rotation float64) ([]Point, error) {
	if k <= 0 || k >= n {
		return nil, fmt.Errorf("%w: star polygon needs 0 < k < n, got k=%d n=%d", ansierr.ErrBadConfig, k, n)
	}
	vertex := func(i int) Point {
		theta := rotation + float64(i)*2*math.Pi/float64(n)
		return Point{
			X: cx + roundInt(float64(r)*math.Cos(theta)),
			Y: cy + roundInt(float64(r)*math.Sin(theta)),
		}
	}
	pts := []Point{vertex(0)}
	cur := 0
	for i := 0; i < n; i++ {
		cur = (cur + k) % n
		pts = append(pts, vertex(cur))
		if cur == 0 {
			break
		}
	}
	return pts, nil
}

// Ellipse returns the boundary points of an axis-aligned ellipse
// centered at (cx,cy) with radii rx,ry, via the midpoint algorithm.
func Ellipse(cx, cy, rx, ry int) []Point {
	if rx == 0 && ry == 0 {
		return []Point{{cx, cy}}
	}
	var pts []Point
	plot := func(x, y int) {
		pts = append(pts,
			Point{cx + x, cy + y}, Point{cx - x, cy + y},
			Point{cx + x, cy - y}, Point{cx - x, cy - y},
		)
	}

	x, y := 0, ry
	rx2, ry2 := rx*rx, ry*ry
	d1 := float64(ry2) - float64(rx2)*float64(ry) + 0.25*float64(rx2)
	dx, dy := 2*ry2*x, 2*rx2*y

	for dx < dy {
		plot(x, y)
		if d1 < 0 {
			x++
			dx += 2 * ry2
			d1 += float64(dx) + float64(ry2)
		} else {
			x++
			y--
			dx += 2 * ry2
			dy -= 2 * rx2
			d1 += float64(dx) - float64(dy) + float64(ry2)
		}
	}

	d2 := float64(ry2)*(float64(x)+0.5)*(float64(x)+0.5) + float64(rx2)*(float64(y)-1)*(float64(y)-1) - float64(rx2)*float64(ry2)
	for y >= 0 {
		plot(x, y)
		if d2 > 0 {
			y--
			dy -= 2 * rx2
			d2 += float64(rx2) - float64(dy)
		} else {
			y--
			x++
			dx += 2 * ry2
			dy -= 2 * rx2
			d2 += float64(dx) - float64(dy) + float64(rx2)
		}
	}
	return pts
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func roundInt(v float64) int {
	if v >= 0 {
		return int(v + 0.5)
	}
	return -int(-v + 0.5)
}
