package common

import (
	"math"

	"github.com/jakecoffman/cp"
)

// approxEpsilon matches the tolerance used when deciding whether a smoothed
// value has already reached its goal.
const approxEpsilon = 0.00001

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// SmoothFactor converts a per-second rate into the interpolation weight for a
// frame of length dt. The result is clamped to [0, 1] so a long frame lands
// exactly on the goal instead of overshooting it.
func SmoothFactor(dt, speed float64) float64 {
	return cp.Clamp01(dt * speed)
}

// ApproxEqual reports whether a and b are equal within a tolerance relative to
// the magnitude of a (never below approxEpsilon).
func ApproxEqual(a, b float64) bool {
	if a == b {
		return true
	}
	tolerance := approxEpsilon * math.Abs(a)
	if tolerance < approxEpsilon {
		tolerance = approxEpsilon
	}
	return math.Abs(a-b) < tolerance
}

func ApproxEqualVec(a, b cp.Vector) bool {
	return ApproxEqual(a.X, b.X) && ApproxEqual(a.Y, b.Y)
}
