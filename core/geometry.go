package core

import "math"

// Point is a position in logical stage pixels
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned box in logical stage pixels
type Rect struct {
	X, Y          float64 // Top-left corner
	Width, Height float64
}

// Center returns the midpoint of the rectangle
func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Contains reports whether p lies inside the rectangle (right/bottom edges exclusive)
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.Width && p.Y >= r.Y && p.Y < r.Y+r.Height
}

// Offset returns the rectangle translated by dx, dy
func (r Rect) Offset(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Polar returns the point at angle (radians) and radius from p
func (p Point) Polar(angle, radius float64) Point {
	return Point{
		X: p.X + math.Cos(angle)*radius,
		Y: p.Y + math.Sin(angle)*radius,
	}
}

// Lerp linearly interpolates between a and b, t clamped to [0, 1]
func Lerp(a, b, t float64) float64 {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	return a + (b-a)*t
}
