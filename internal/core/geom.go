// Package core provides fundamental types for the shooter: 2D geometry,
// colors, input snapshots and the cell screen used by terminal frontends.
// This package has no external dependencies (especially no Bubble Tea or Ebiten).
package core

import (
	"fmt"
	"math"
)

// Vector2 is a 2D vector in world units. It is a value type.
type Vector2 struct {
	X, Y float64
}

// Vec creates a Vector2.
func Vec(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

// FromAngle returns the unit vector pointing at the given angle (radians).
func FromAngle(rad float64) Vector2 {
	return Vector2{X: math.Cos(rad), Y: math.Sin(rad)}
}

// Add returns v + w.
func (v Vector2) Add(w Vector2) Vector2 {
	return Vector2{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns v - w.
func (v Vector2) Sub(w Vector2) Vector2 {
	return Vector2{X: v.X - w.X, Y: v.Y - w.Y}
}

// Mul scales v by s.
func (v Vector2) Mul(s float64) Vector2 {
	return Vector2{X: v.X * s, Y: v.Y * s}
}

// Div divides v by s.
func (v Vector2) Div(s float64) Vector2 {
	return Vector2{X: v.X / s, Y: v.Y / s}
}

// Neg returns -v.
func (v Vector2) Neg() Vector2 {
	return Vector2{X: -v.X, Y: -v.Y}
}

// Length returns the Euclidean length of v.
func (v Vector2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// IsZero reports whether both components are zero.
func (v Vector2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Normalized returns the unit vector with v's direction.
// Panics on a zero-length vector: that is always a caller bug.
func (v Vector2) Normalized() Vector2 {
	l := v.Length()
	if l == 0 {
		panic("core: normalizing zero-length vector")
	}
	return v.Div(l)
}

// Dot returns the dot product of v and w.
func (v Vector2) Dot(w Vector2) float64 {
	return v.X*w.X + v.Y*w.Y
}

// Cross returns the z component of the 3D cross product.
func (v Vector2) Cross(w Vector2) float64 {
	return v.X*w.Y - v.Y*w.X
}

// Distance returns the distance between v and w.
func (v Vector2) Distance(w Vector2) float64 {
	return w.Sub(v).Length()
}

// Angle returns the direction of v in radians, measured from +X towards +Y.
func (v Vector2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// AngleTo returns the signed angle in radians rotating v onto w.
func (v Vector2) AngleTo(w Vector2) float64 {
	return math.Atan2(v.Cross(w), v.Dot(w))
}

// Rotate returns v rotated by rad radians.
func (v Vector2) Rotate(rad float64) Vector2 {
	sin, cos := math.Sincos(rad)
	return Vector2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// ApproxEqual reports whether v and w differ by at most eps on each axis.
func (v Vector2) ApproxEqual(w Vector2, eps float64) bool {
	return math.Abs(v.X-w.X) <= eps && math.Abs(v.Y-w.Y) <= eps
}

func (v Vector2) String() string {
	return fmt.Sprintf("(%.2f, %.2f)", v.X, v.Y)
}

// Shape is the accessor contract shared by Rectangle and Circle, so layout
// code can center or align one shape on another without knowing its kind.
type Shape interface {
	Left() float64
	Right() float64
	Top() float64
	Bottom() float64
	Width() float64
	Height() float64
	Center() Vector2

	SetLeft(x float64)
	SetRight(x float64)
	SetTop(y float64)
	SetBottom(y float64)
	SetCenter(c Vector2)
}

// Rectangle is an axis-aligned box given by its top-left corner and size.
type Rectangle struct {
	Pos  Vector2 // Top-left corner
	Size Vector2 // Width and height
}

// Rect creates a Rectangle from its top-left corner and size.
func Rect(x, y, w, h float64) Rectangle {
	return Rectangle{Pos: Vector2{X: x, Y: y}, Size: Vector2{X: w, Y: h}}
}

// RectCentered creates a Rectangle of the given size centered on c.
func RectCentered(c, size Vector2) Rectangle {
	return Rectangle{Pos: c.Sub(size.Div(2)), Size: size}
}

func (r Rectangle) Left() float64   { return r.Pos.X }
func (r Rectangle) Right() float64  { return r.Pos.X + r.Size.X }
func (r Rectangle) Top() float64    { return r.Pos.Y }
func (r Rectangle) Bottom() float64 { return r.Pos.Y + r.Size.Y }
func (r Rectangle) Width() float64  { return r.Size.X }
func (r Rectangle) Height() float64 { return r.Size.Y }

// Center returns the center point of the rectangle.
func (r Rectangle) Center() Vector2 {
	return r.Pos.Add(r.Size.Div(2))
}

// TopLeft, TopRight, BottomLeft and BottomRight return the corners.
func (r Rectangle) TopLeft() Vector2     { return r.Pos }
func (r Rectangle) TopRight() Vector2    { return Vector2{X: r.Right(), Y: r.Top()} }
func (r Rectangle) BottomLeft() Vector2  { return Vector2{X: r.Left(), Y: r.Bottom()} }
func (r Rectangle) BottomRight() Vector2 { return Vector2{X: r.Right(), Y: r.Bottom()} }

func (r *Rectangle) SetLeft(x float64)   { r.Pos.X = x }
func (r *Rectangle) SetRight(x float64)  { r.Pos.X = x - r.Size.X }
func (r *Rectangle) SetTop(y float64)    { r.Pos.Y = y }
func (r *Rectangle) SetBottom(y float64) { r.Pos.Y = y - r.Size.Y }

// SetCenter moves the rectangle so that its center is c.
func (r *Rectangle) SetCenter(c Vector2) {
	r.Pos = c.Sub(r.Size.Div(2))
}

// ContainsPoint reports whether p lies inside r. Edges count as inside.
func (r Rectangle) ContainsPoint(p Vector2) bool {
	return p.X >= r.Left() && p.X <= r.Right() &&
		p.Y >= r.Top() && p.Y <= r.Bottom()
}

// Intersects reports whether two rectangles overlap.
// Rectangles that only share an edge do not intersect.
func (r Rectangle) Intersects(o Rectangle) bool {
	return r.Left() < o.Right() && r.Right() > o.Left() &&
		r.Top() < o.Bottom() && r.Bottom() > o.Top()
}

// Circle is a circle given by its center and radius.
type Circle struct {
	Pos    Vector2 // Center
	Radius float64
}

// Circ creates a Circle.
func Circ(x, y, radius float64) Circle {
	return Circle{Pos: Vector2{X: x, Y: y}, Radius: radius}
}

func (c Circle) Left() float64   { return c.Pos.X - c.Radius }
func (c Circle) Right() float64  { return c.Pos.X + c.Radius }
func (c Circle) Top() float64    { return c.Pos.Y - c.Radius }
func (c Circle) Bottom() float64 { return c.Pos.Y + c.Radius }
func (c Circle) Width() float64  { return c.Radius * 2 }
func (c Circle) Height() float64 { return c.Radius * 2 }
func (c Circle) Center() Vector2 { return c.Pos }

func (c *Circle) SetLeft(x float64)   { c.Pos.X = x + c.Radius }
func (c *Circle) SetRight(x float64)  { c.Pos.X = x - c.Radius }
func (c *Circle) SetTop(y float64)    { c.Pos.Y = y + c.Radius }
func (c *Circle) SetBottom(y float64) { c.Pos.Y = y - c.Radius }
func (c *Circle) SetCenter(p Vector2) { c.Pos = p }

// ContainsPoint reports whether p lies inside or on the circle.
func (c Circle) ContainsPoint(p Vector2) bool {
	return c.Pos.Distance(p) <= c.Radius
}

// Intersects reports whether two circles touch or overlap.
func (c Circle) Intersects(o Circle) bool {
	return c.Pos.Distance(o.Pos) <= c.Radius+o.Radius
}

// Bounds returns the bounding box of any shape.
func Bounds(s Shape) Rectangle {
	return Rect(s.Left(), s.Top(), s.Width(), s.Height())
}

// CenterOn moves s so that its center matches the center of target.
func CenterOn(s, target Shape) {
	s.SetCenter(target.Center())
}

// Clamp restricts an int value to [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an int.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the smaller of two ints.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two ints.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
