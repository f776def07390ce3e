package render

import (
	"image"
	"image/color"
	"math"
)

// drawLine draws a line on an image using Bresenham's algorithm. Each step
// plots a width x width square.
func drawLine(img *image.RGBA, x1, y1, x2, y2, width int, col color.RGBA) {
	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	sx, sy := -1, -1
	if x1 < x2 {
		sx = 1
	}
	if y1 < y2 {
		sy = 1
	}

	err := dx - dy

	for {
		plot(img, x1, y1, width, col)

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// plot fills a size x size square centered on (x, y), clipped to the image
func plot(img *image.RGBA, x, y, size int, col color.RGBA) {
	if size <= 1 {
		if (image.Point{X: x, Y: y}).In(img.Rect) {
			img.SetRGBA(x, y, col)
		}
		return
	}
	lo := -(size - 1) / 2
	r := image.Rect(x+lo, y+lo, x+lo+size, y+lo+size).Intersect(img.Rect)
	for py := r.Min.Y; py < r.Max.Y; py++ {
		for px := r.Min.X; px < r.Max.X; px++ {
			img.SetRGBA(px, py, col)
		}
	}
}

// clipCoord keeps projected coordinates far outside the image from
// overflowing int and from making Bresenham walk millions of pixels
func clipCoord(v float64, limit int) (int, bool) {
	bound := float64(4 * limit)
	if math.IsNaN(v) || v < -bound || v > bound {
		return 0, false
	}
	return int(v), true
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
