package favicon

import (
	"bytes"
	"image"

	"fyne.io/fyne/v2"
)

const ResourceName = "icon.png"

// Resource wraps the encoded icon for fyne's SetIcon.
func Resource(img image.Image) (fyne.Resource, error) {
	var buf bytes.Buffer
	if err := EncodePNG(&buf, img); err != nil {
		return nil, err
	}
	return &fyne.StaticResource{
		StaticName:    ResourceName,
		StaticContent: buf.Bytes(),
	}, nil
}
