package favicon

import (
	"errors"
	"fmt"
	"image"
)

const (
	DefaultSize       = 32
	DefaultBackground = "#1e293b"
	DefaultAccent     = "#3b82f6"
)

var ErrInvalidDesign = errors.New("invalid icon design")

// Disc is a filled ellipse inscribed in an inclusive bounding box:
// Min and Max are both painted pixel coordinates.
type Disc struct {
	Min  image.Point
	Max  image.Point
	Fill string
}

// Design describes what goes on the canvas. Layers are painted in order,
// so a later disc covers an earlier one where they overlap.
type Design struct {
	Size       int
	Background string
	Layers     []Disc
}

// DefaultDesign is the gear mark: an accent ring punched through with a
// background-coloured hole.
func DefaultDesign() Design {
	return Design{
		Size:       DefaultSize,
		Background: DefaultBackground,
		Layers: []Disc{
			{Min: image.Pt(6, 6), Max: image.Pt(26, 26), Fill: DefaultAccent},
			{Min: image.Pt(12, 12), Max: image.Pt(20, 20), Fill: DefaultBackground},
		},
	}
}

func (d Design) Validate() error {
	if d.Size <= 0 {
		return fmt.Errorf("%w: size must be > 0, got %d", ErrInvalidDesign, d.Size)
	}
	if _, err := ParseColor(d.Background); err != nil {
		return fmt.Errorf("%w: background: %v", ErrInvalidDesign, err)
	}

	canvas := image.Rect(0, 0, d.Size, d.Size)
	for i, layer := range d.Layers {
		if layer.Max.X < layer.Min.X || layer.Max.Y < layer.Min.Y {
			return fmt.Errorf("%w: layer %d: inverted box %v-%v", ErrInvalidDesign, i, layer.Min, layer.Max)
		}
		if !layer.Min.In(canvas) || !layer.Max.In(canvas) {
			return fmt.Errorf("%w: layer %d: box %v-%v outside %dx%d canvas", ErrInvalidDesign, i, layer.Min, layer.Max, d.Size, d.Size)
		}
		if _, err := ParseColor(layer.Fill); err != nil {
			return fmt.Errorf("%w: layer %d: %v", ErrInvalidDesign, i, err)
		}
	}
	return nil
}

// Center and radii of the disc in pixel-edge coordinates.
func (c Disc) geometry() (cx, cy, rx, ry float64) {
	w := float64(c.Max.X-c.Min.X) + 1
	h := float64(c.Max.Y-c.Min.Y) + 1
	return float64(c.Min.X) + w/2, float64(c.Min.Y) + h/2, w / 2, h / 2
}
