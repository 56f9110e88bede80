// Package wheel decodes pointer gestures on the circular click-wheel.
//
// Angles are in degrees in [0, 360), 0 at the top of the wheel and growing
// clockwise. Screen coordinates grow downwards, which is what makes atan2
// run clockwise here.
package wheel

import "math"

// AngleOf returns the angle of point (px, py) around centre (cx, cy).
// A point equal to the centre yields 0.
func AngleOf(cx, cy, px, py float64) float64 {
	deg := math.Atan2(py-cy, px-cx) * 180 / math.Pi
	return Normalize(deg + 90)
}

// Normalize wraps any angle into [0, 360).
func Normalize(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	if deg >= 360 {
		deg = 0
	}
	return deg
}

// ShortestDelta returns the signed clockwise rotation from one angle to
// another, wrapped to [-180, 180].
func ShortestDelta(from, to float64) float64 {
	d := math.Mod(to-from, 360)
	if d > 180 {
		d -= 360
	} else if d < -180 {
		d += 360
	}
	return d
}

// SectorOf returns the index of the sector containing angle when the wheel is
// cut into slices of sectorSize degrees.
func SectorOf(angle, sectorSize float64) int {
	if sectorSize <= 0 {
		return 0
	}
	n := sectorCount(sectorSize)
	s := int(math.Floor(Normalize(angle) / sectorSize))
	if s >= n {
		s = n - 1
	}
	return s
}

// sectorCount returns how many sectors of sectorSize fit in a full turn.
func sectorCount(sectorSize float64) int {
	n := int(math.Round(360 / sectorSize))
	return max(n, 1)
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}
