package sprite

import (
	"image"
)

// Rect is a pixel rectangle inside the sprite sheet. Top and Left are
// inclusive, Bottom and Right exclusive.
type Rect struct {
	Top    int `json:"top"`
	Bottom int `json:"bottom"`
	Left   int `json:"left"`
	Right  int `json:"right"`
}

// Image returns r as an image.Rectangle.
func (r Rect) Image() image.Rectangle {
	return image.Rect(r.Left, r.Top, r.Right, r.Bottom)
}

// Dx returns the width of r.
func (r Rect) Dx() int { return r.Right - r.Left }

// Dy returns the height of r.
func (r Rect) Dy() int { return r.Bottom - r.Top }

// Layout stacks images of the given sizes top to bottom, left aligned. It
// returns the size of the whole sheet (widest image by the sum of heights)
// and one rectangle per image, each as wide as its own image.
func Layout(sizes []image.Point) (image.Point, []Rect) {
	var sheet image.Point
	rects := make([]Rect, len(sizes))
	for i, sz := range sizes {
		rects[i] = Rect{
			Top:    sheet.Y,
			Bottom: sheet.Y + sz.Y,
			Left:   0,
			Right:  sz.X,
		}
		sheet.Y += sz.Y
		if sz.X > sheet.X {
			sheet.X = sz.X
		}
	}
	return sheet, rects
}
