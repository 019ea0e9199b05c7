package vmath

import (
	"math"
)

// Vec2F is a float64 2D vector used for normalized surface coordinates
// Surface space is [0,1]x[0,1] with origin at the top-left corner
type Vec2F struct {
	X, Y float64
}

// Center is the visual center of a normalized surface
var Center = Vec2F{0.5, 0.5}

func V2FAdd(a, b Vec2F) Vec2F {
	return Vec2F{a.X + b.X, a.Y + b.Y}
}

func V2FSub(a, b Vec2F) Vec2F {
	return Vec2F{a.X - b.X, a.Y - b.Y}
}

func V2FScale(v Vec2F, s float64) Vec2F {
	return Vec2F{v.X * s, v.Y * s}
}

func V2FMagSq(v Vec2F) float64 {
	return v.X*v.X + v.Y*v.Y
}

func V2FMag(v Vec2F) float64 {
	return math.Sqrt(V2FMagSq(v))
}

// V2FDist returns Euclidean distance between a and b
func V2FDist(a, b Vec2F) float64 {
	return V2FMag(V2FSub(a, b))
}

// V2FLerp mixes a toward b by t, t is not clamped
func V2FLerp(a, b Vec2F, t float64) Vec2F {
	return Vec2F{a.X + (b.X-a.X)*t, a.Y + (b.Y-a.Y)*t}
}

// V2FClamp01 clamps both components into [0,1], NaN maps to 0
func V2FClamp01(v Vec2F) Vec2F {
	return Vec2F{Clamp01(v.X), Clamp01(v.Y)}
}

// V2FFinite reports whether neither component is NaN or Inf
func V2FFinite(v Vec2F) bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) && !math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}

// Clamp limits value to [lo, hi]
func Clamp(value, lo, hi float64) float64 {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}

// Clamp01 limits value to [0,1], NaN maps to 0
func Clamp01(value float64) float64 {
	if math.IsNaN(value) {
		return 0
	}
	return Clamp(value, 0, 1)
}
