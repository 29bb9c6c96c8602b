package inertia

// AreaCentroid returns the signed area and centroid of a closed ring using
// the shoelace summation. Counter-clockwise rings have a positive area.
func AreaCentroid(ring []Vertex) (area, xc, yc float64, err error) {
	var sumA, sumX, sumY float64

	for i := 0; i < len(ring)-1; i++ {
		p, q := ring[i], ring[i+1]
		c := cross(p, q)
		sumA += c
		sumX += (p.X + q.X) * c
		sumY += (p.Y + q.Y) * c
	}

	area = sumA / 2
	if area == 0 {
		return 0, 0, 0, ErrDegeneratePolygon
	}

	xc = sumX / (6 * area)
	yc = sumY / (6 * area)
	return area, xc, yc, nil
}
