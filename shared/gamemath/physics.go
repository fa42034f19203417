package gamemath

// ApplyFriction reduces speed toward zero by friction amount.
func ApplyFriction(speedX, friction float64) float64 {
	if speedX > friction {
		return speedX - friction
	}
	if speedX < -friction {
		return speedX + friction
	}
	return 0
}

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	return Clamp(speed, -max, max)
}

// RectsOverlap reports whether two axis-aligned rectangles intersect.
func RectsOverlap(ax, ay, aw, ah, bx, by, bw, bh float64) bool {
	return ax < bx+bw && bx < ax+aw && ay < by+bh && by < ay+ah
}

// SegmentHitsRect tests the segment (x0,y0)-(x1,y1) against a rectangle
// grown by pad on every side. It returns the entry fraction along the
// segment, 0 when the start point is already inside.
func SegmentHitsRect(x0, y0, x1, y1, rx, ry, rw, rh, pad float64) (float64, bool) {
	minX, minY := rx-pad, ry-pad
	maxX, maxY := rx+rw+pad, ry+rh+pad

	tMin, tMax := 0.0, 1.0
	dx, dy := x1-x0, y1-y0

	for _, axis := range [2][4]float64{{x0, dx, minX, maxX}, {y0, dy, minY, maxY}} {
		p, d, lo, hi := axis[0], axis[1], axis[2], axis[3]
		if d == 0 {
			if p < lo || p > hi {
				return 0, false
			}
			continue
		}
		t1 := (lo - p) / d
		t2 := (hi - p) / d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tMin {
			tMin = t1
		}
		if t2 < tMax {
			tMax = t2
		}
		if tMin > tMax {
			return 0, false
		}
	}
	return tMin, true
}
