package curve

// MinSmoothPoints is the lower bound of SmoothCount.
const MinSmoothPoints = 50

// SmoothCount returns the number of output points used to smooth a
// sparkline drawn across width logical pixels.
func SmoothCount(width float64) int {
	return max(MinSmoothPoints, int(width/2))
}

// CatmullRom interpolates a smooth polyline through points.
//
// Fewer than two points are returned as a copy. Two points yield n evenly
// spaced points on the segment between them. Otherwise the first and last
// points are duplicated as phantom control points, each segment gets
// max(1, n/segments) samples, and the final point is appended, so the curve
// passes through every input point.
func CatmullRom(points []Point, n int) []Point {
	if len(points) < 2 {
		return append([]Point(nil), points...)
	}
	if len(points) == 2 {
		n = max(n, 2)
		out := make([]Point, n)
		for i := range n {
			out[i] = points[0].Lerp(points[1], float64(i)/float64(n-1))
		}
		return out
	}

	pts := make([]Point, 0, len(points)+2)
	pts = append(pts, points[0])
	pts = append(pts, points...)
	pts = append(pts, points[len(points)-1])

	segments := len(pts) - 3
	perSegment := max(1, n/segments)
	out := make([]Point, 0, segments*perSegment+1)

	for i := range segments {
		p0, p1, p2, p3 := pts[i], pts[i+1], pts[i+2], pts[i+3]
		for j := range perSegment {
			t := float64(j) / float64(perSegment)
			out = append(out, catmullRomAt(p0, p1, p2, p3, t))
		}
	}
	return append(out, pts[len(pts)-2])
}

// catmullRomAt evaluates the uniform Catmull-Rom segment between p1 and p2.
func catmullRomAt(p0, p1, p2, p3 Point, t float64) Point {
	t2 := t * t
	t3 := t2 * t
	eval := func(a, b, c, d float64) float64 {
		return 0.5 * (2*b +
			(-a+c)*t +
			(2*a-5*b+4*c-d)*t2 +
			(-a+3*b-3*c+d)*t3)
	}
	return Point{
		X: eval(p0.X, p1.X, p2.X, p3.X),
		Y: eval(p0.Y, p1.Y, p2.Y, p3.Y),
	}
}

// Normalize returns the range of values. A degenerate or empty range has
// span 1 so callers can divide by it.
func Normalize(values []float64) (lo, hi, span float64) {
	if len(values) == 0 {
		return 0, 0, 1
	}
	lo, hi = values[0], values[0]
	for _, v := range values[1:] {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	span = hi - lo
	if span == 0 {
		span = 1
	}
	return lo, hi, span
}
