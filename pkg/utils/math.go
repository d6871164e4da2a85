// pkg/utils/math.go
package utils

// Abs returns the absolute value of x.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// DistSq squared euclidean distance between two points.
func DistSq(ax, ay, bx, by int) int {
	dx, dy := bx-ax, by-ay
	return dx*dx + dy*dy
}
