package favicon

import (
	"bytes"
	"image/png"
	"testing"
)

func TestResource(t *testing.T) {
	img, err := Render(DefaultDesign())
	if err != nil {
		t.Fatal(err)
	}

	res, err := Resource(img)
	if err != nil {
		t.Fatal(err)
	}
	if res.Name() != ResourceName {
		t.Errorf("Name() = %q; want %q", res.Name(), ResourceName)
	}

	decoded, err := png.Decode(bytes.NewReader(res.Content()))
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	if got := decoded.Bounds().Dx(); got != 32 {
		t.Errorf("decoded width = %d; want 32", got)
	}
}
