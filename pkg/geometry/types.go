// Package geometry provides basic geometric types used throughout the application.
package geometry

import (
	"image"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Vec2 is a 2D displacement, used for plane offsets and canvas translation.
type Vec2 r2.Vec

// NewVec2 creates a new Vec2.
func NewVec2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns the sum of two vectors.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2(r2.Add(r2.Vec(v), r2.Vec(other)))
}

// Sub returns the difference of two vectors.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2(r2.Sub(r2.Vec(v), r2.Vec(other)))
}

// Neg returns the vector pointing the opposite way.
func (v Vec2) Neg() Vec2 {
	return Vec2(r2.Scale(-1, r2.Vec(v)))
}

// IsZero reports whether both components are zero.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// ToPoint converts the vector to the point it reaches from the origin.
func (v Vec2) ToPoint() Point {
	return Point{X: v.X, Y: v.Y}
}

// ImagePoint truncates the vector to integer pixel coordinates.
func (v Vec2) ImagePoint() image.Point {
	return image.Pt(int(v.X), int(v.Y))
}

// Point represents a 2D position with floating-point coordinates.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// ToVec2 converts the point to the vector from the origin.
func (p Point) ToVec2() Vec2 {
	return Vec2{X: p.X, Y: p.Y}
}

// Add returns the point displaced by v.
func (p Point) Add(v Vec2) Point {
	return p.ToVec2().Add(v).ToPoint()
}

// Sub returns the displacement from other to p.
func (p Point) Sub(other Point) Vec2 {
	return p.ToVec2().Sub(other.ToVec2())
}

// Size represents a 2D size.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// NewSize creates a new Size.
func NewSize(width, height float64) Size {
	return Size{Width: width, Height: height}
}

// Area returns Width*Height.
func (s Size) Area() float64 {
	return s.Width * s.Height
}

// Max returns the component-wise maximum of two sizes.
func (s Size) Max(other Size) Size {
	return Size{Width: math.Max(s.Width, other.Width), Height: math.Max(s.Height, other.Height)}
}

// ImageSize truncates the size to whole pixels.
func (s Size) ImageSize() (int, int) {
	return int(s.Width), int(s.Height)
}

// Rect represents a rectangle with floating-point coordinates.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// NewRect creates a new Rect.
func NewRect(x, y, width, height float64) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// RectFromOriginSize creates a Rect with its top-left corner at origin.
func RectFromOriginSize(origin Point, size Size) Rect {
	return Rect{X: origin.X, Y: origin.Y, Width: size.Width, Height: size.Height}
}

// RectFromPoints returns the normalized rectangle spanned by two corners.
func RectFromPoints(a, b Point) Rect {
	x0, x1 := math.Min(a.X, b.X), math.Max(a.X, b.X)
	y0, y1 := math.Min(a.Y, b.Y), math.Max(a.Y, b.Y)
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// Origin returns the top-left corner.
func (r Rect) Origin() Point {
	return Point{X: r.X, Y: r.Y}
}

// Size returns the rectangle dimensions.
func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// Area returns the rectangle area.
func (r Rect) Area() float64 {
	return r.Width * r.Height
}

// Contains reports whether p lies inside the rectangle.
// The left and top edges are inside, the right and bottom edges are not.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.Width &&
		p.Y >= r.Y && p.Y < r.Y+r.Height
}

// Translate returns the rectangle moved by offset.
func (r Rect) Translate(offset Vec2) Rect {
	return RectFromOriginSize(r.Origin().Add(offset), r.Size())
}

// Intersect returns the overlap of two rectangles.
// Disjoint rectangles yield a zero-area rectangle.
func (r Rect) Intersect(other Rect) Rect {
	x0 := math.Max(r.X, other.X)
	y0 := math.Max(r.Y, other.Y)
	x1 := math.Max(math.Min(r.X+r.Width, other.X+other.Width), x0)
	y1 := math.Max(math.Min(r.Y+r.Height, other.Y+other.Height), y0)
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// ImageRect truncates the rectangle to integer pixel coordinates.
func (r Rect) ImageRect() image.Rectangle {
	x, y := int(r.X), int(r.Y)
	return image.Rect(x, y, x+int(r.Width), y+int(r.Height))
}
