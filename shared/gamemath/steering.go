package gamemath

import "math"

// CalculateHomingVelocity returns velocity components to home toward a target.
func CalculateHomingVelocity(fromX, fromY, targetX, targetY, speed float64) (velX, velY float64) {
	dirX := targetX - fromX
	dirY := targetY - fromY
	dist := math.Sqrt(dirX*dirX + dirY*dirY)
	if dist > 0 {
		velX = (dirX / dist) * speed
		velY = (dirY / dist) * speed
	}
	return velX, velY
}

// CalculateLaunchVelocity returns the launch velocity for an aim angle in
// radians and a power in [0,1] mapped onto [minSpeed, maxSpeed].
func CalculateLaunchVelocity(angle, power, minSpeed, maxSpeed, multiplier float64) (velX, velY float64) {
	power = Clamp(power, 0, 1)
	speed := (minSpeed + power*(maxSpeed-minSpeed)) * multiplier
	return math.Cos(angle) * speed, math.Sin(angle) * speed
}

// FanDirections returns count unit vectors spread evenly around the given
// heading, spread radians apart.
func FanDirections(headingX, headingY float64, count int, spread float64) [][2]float64 {
	if count <= 0 {
		return nil
	}
	base := math.Atan2(headingY, headingX)
	if headingX == 0 && headingY == 0 {
		base = 0
	}
	dirs := make([][2]float64, 0, count)
	start := base - spread*float64(count-1)/2
	for i := 0; i < count; i++ {
		a := start + spread*float64(i)
		dirs = append(dirs, [2]float64{math.Cos(a), math.Sin(a)})
	}
	return dirs
}

// Distance returns the euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

// Sign returns -1, 0 or 1.
func Sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
