package cmd

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/tmcf/droidctl/internal/ui"
)

// collectInteractive walks the tree breadth-first and returns the attributes
// of every clickable or editable node with non-empty bounds.
func collectInteractive(root ui.Node) []ui.Attrs {
	var found []ui.Attrs
	queue := []ui.Node{root}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		attrs := n.Attrs()
		if (attrs.Clickable || attrs.Editable) && attrs.Bounds.Right > attrs.Bounds.Left && attrs.Bounds.Bottom > attrs.Bounds.Top {
			found = append(found, attrs)
		}
		for i := 0; i < n.ChildCount(); i++ {
			if c := n.Child(i); c != nil {
				queue = append(queue, c)
			}
		}
	}
	return found
}

// AnnotateScreenshot draws bounding boxes and tap-coordinate labels on a
// screenshot. Node bounds are device pixels; scale converts them to image
// pixels when the capture was scaled down. Labels always show device
// coordinates, so they can be fed straight back into `tap`.
func AnnotateScreenshot(img image.Image, nodes []ui.Attrs, scale float64) image.Image {
	rgba := imageToRGBA(img)

	boxColor := color.RGBA{R: 255, G: 0, B: 0, A: 100}
	textColor := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	outlineColor := color.RGBA{R: 0, G: 0, B: 0, A: 200}

	for _, attrs := range nodes {
		b := attrs.Bounds
		x1 := int(float64(b.Left) * scale)
		y1 := int(float64(b.Top) * scale)
		x2 := int(float64(b.Right) * scale)
		y2 := int(float64(b.Bottom) * scale)
		drawRectangle(rgba, x1, y1, x2, y2, boxColor)

		label := fmt.Sprintf("(%d,%d)", b.CenterX(), b.CenterY())
		cx := int(float64(b.CenterX()) * scale)
		cy := int(float64(b.CenterY()) * scale)
		drawTextWithOutline(rgba, label, cx, cy, textColor, outlineColor)
	}
	return rgba
}

func imageToRGBA(img image.Image) *image.RGBA {
	bounds := img.Bounds()
	rgba := image.NewRGBA(bounds)
	draw.Draw(rgba, bounds, img, bounds.Min, draw.Src)
	return rgba
}

func isWithinBounds(bounds image.Rectangle, x, y int) bool {
	return x >= bounds.Min.X && x < bounds.Max.X && y >= bounds.Min.Y && y < bounds.Max.Y
}

// drawRectangle draws a rectangle outline clamped to the image bounds.
func drawRectangle(img *image.RGBA, x1, y1, x2, y2 int, c color.Color) {
	bounds := img.Bounds()

	if x1 < bounds.Min.X {
		x1 = bounds.Min.X
	}
	if y1 < bounds.Min.Y {
		y1 = bounds.Min.Y
	}
	if x2 > bounds.Max.X {
		x2 = bounds.Max.X
	}
	if y2 > bounds.Max.Y {
		y2 = bounds.Max.Y
	}
	if x2 <= x1 || y2 <= y1 {
		return
	}

	for x := x1; x < x2; x++ {
		if isWithinBounds(bounds, x, y1) {
			img.Set(x, y1, c)
		}
		if isWithinBounds(bounds, x, y2-1) {
			img.Set(x, y2-1, c)
		}
	}
	for y := y1; y < y2; y++ {
		if isWithinBounds(bounds, x1, y) {
			img.Set(x1, y, c)
		}
		if isWithinBounds(bounds, x2-1, y) {
			img.Set(x2-1, y, c)
		}
	}
}

// drawTextWithOutline draws text with a 1px outline for visibility against
// arbitrary backgrounds.
func drawTextWithOutline(img *image.RGBA, text string, x, y int, textColor, outlineColor color.Color) {
	// basicfont.Face7x13: ~7px per glyph, 13px tall
	textWidth := len(text) * 7
	textHeight := 13

	offsetX := x - textWidth/2
	offsetY := y - textHeight/2

	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			d := &font.Drawer{
				Dst:  img,
				Src:  image.NewUniform(outlineColor),
				Face: basicfont.Face7x13,
				Dot: fixed.Point26_6{
					X: fixed.Int26_6((offsetX + dx) * 64),
					Y: fixed.Int26_6((offsetY + dy) * 64),
				},
			}
			d.DrawString(text)
		}
	}

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(textColor),
		Face: basicfont.Face7x13,
		Dot: fixed.Point26_6{
			X: fixed.Int26_6(offsetX * 64),
			Y: fixed.Int26_6(offsetY * 64),
		},
	}
	d.DrawString(text)
}
