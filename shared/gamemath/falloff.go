package gamemath

import "github.com/tanema/gween/ease"

// LinearFalloff returns base·(1 − d/r) for d < r and zero at or beyond r.
func LinearFalloff(base, d, r float64) float64 {
	if r <= 0 || d >= r {
		return 0
	}
	if d <= 0 {
		return base
	}
	return base * (1 - d/r)
}

// QuadraticFalloff returns base·(1 − d/r)² for d < r and zero at or beyond r.
// Same shape as the InQuad curve, kept in float64.
func QuadraticFalloff(base, d, r float64) float64 {
	if r <= 0 || d >= r {
		return 0
	}
	if d < 0 {
		d = 0
	}
	k := 1 - d/r
	return base * k * k
}

// EasedFalloff evaluates an arbitrary gween curve on the remaining distance.
// gween works in float32, so results are only good to about 1e-4 relative.
func EasedFalloff(fn ease.TweenFunc, base, d, r float64) float64 {
	return curveFalloff(fn, base, d, r)
}

func curveFalloff(fn ease.TweenFunc, base, d, r float64) float64 {
	if r <= 0 || d >= r {
		return 0
	}
	if d < 0 {
		d = 0
	}
	return float64(fn(float32(r-d), 0, float32(base), float32(r)))
}
