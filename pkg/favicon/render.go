package favicon

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/fogleman/gg"
)

// A pixel belongs to a disc when at least half of it is covered.
const insideCoverage = 0x80

// Render paints d onto a fresh square canvas. Discs have hard edges: every
// pixel ends up exactly one of the design's colors.
func Render(d Design) (*image.RGBA, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	dc := gg.NewContext(d.Size, d.Size)

	bg, _ := ParseColor(d.Background)
	dc.SetColor(bg)
	dc.Clear()
	img := dc.Image().(*image.RGBA)

	shape := gg.NewContext(d.Size, d.Size)
	for _, layer := range d.Layers {
		fill, _ := ParseColor(layer.Fill)
		cx, cy, rx, ry := layer.geometry()
		shape.DrawEllipse(cx, cy, rx, ry)
		mask := threshold(shape.AsMask())
		shape.ClearPath()

		draw.DrawMask(img, img.Bounds(), image.NewUniform(fill), image.Point{}, mask, image.Point{}, draw.Src)
	}

	return img, nil
}

func threshold(coverage *image.Alpha) *image.Alpha {
	b := coverage.Bounds()
	mask := image.NewAlpha(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if coverage.AlphaAt(x, y).A >= insideCoverage {
				mask.SetAlpha(x, y, color.Alpha{A: 0xff})
			}
		}
	}
	return mask
}
