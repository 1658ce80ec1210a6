package apitype

import (
	"fmt"
	"image"
)

type Size struct {
	width  int
	height int
}

func SizeOf(width int, height int) Size {
	return Size{width, height}
}

func SizeFromRectangle(rectangle image.Rectangle) Size {
	return Size{
		width:  rectangle.Dx(),
		height: rectangle.Dy(),
	}
}

func (s Size) Width() int {
	return s.width
}

func (s Size) Height() int {
	return s.height
}

// IsPositive is true when both dimensions can be drawn into.
func (s Size) IsPositive() bool {
	return s.width > 0 && s.height > 0
}

func (s Size) Ratio() float64 {
	return float64(s.width) / float64(s.height)
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.width, s.height)
}

type Point struct {
	x int
	y int
}

func PointOf(x int, y int) Point {
	return Point{x, y}
}

func (s Point) X() int {
	return s.x
}

func (s Point) Y() int {
	return s.y
}
