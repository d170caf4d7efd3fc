package favicon

import (
	"bufio"
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"image"
	"image/color"
	"io"
)

var pngSignature = []byte("\x89PNG\r\n\x1a\n")

const (
	pngBitDepth     = 8
	pngColorRGBA    = 6
	pngFilterNone   = 0
	pngFilterMethod = 0
	pngInterlace    = 0
	pngCompression  = 0
)

// EncodePNG writes img as an 8-bit RGBA PNG. image/png drops the alpha
// channel for fully opaque images; this encoder always keeps it.
func EncodePNG(w io.Writer, img image.Image) error {
	b := img.Bounds()
	if b.Empty() {
		return fmt.Errorf("encode png: empty image %v", b)
	}

	bw := bufio.NewWriter(w)

	if _, err := bw.Write(pngSignature); err != nil {
		return fmt.Errorf("write png signature: %w", err)
	}

	ihdr := make([]byte, 13)
	binary.BigEndian.PutUint32(ihdr[0:4], uint32(b.Dx()))
	binary.BigEndian.PutUint32(ihdr[4:8], uint32(b.Dy()))
	ihdr[8] = pngBitDepth
	ihdr[9] = pngColorRGBA
	ihdr[10] = pngCompression
	ihdr[11] = pngFilterMethod
	ihdr[12] = pngInterlace
	if err := writeChunk(bw, "IHDR", ihdr); err != nil {
		return err
	}

	idat, err := compressPixels(img)
	if err != nil {
		return err
	}
	if err := writeChunk(bw, "IDAT", idat); err != nil {
		return err
	}

	if err := writeChunk(bw, "IEND", nil); err != nil {
		return err
	}
	return bw.Flush()
}

func compressPixels(img image.Image) ([]byte, error) {
	b := img.Bounds()

	var buf bytes.Buffer
	zw, err := zlib.NewWriterLevel(&buf, zlib.BestCompression)
	if err != nil {
		return nil, fmt.Errorf("create zlib writer: %w", err)
	}

	row := make([]byte, 1+4*b.Dx())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row[0] = pngFilterNone
		i := 1
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			row[i+0] = c.R
			row[i+1] = c.G
			row[i+2] = c.B
			row[i+3] = c.A
			i += 4
		}
		if _, err := zw.Write(row); err != nil {
			return nil, fmt.Errorf("compress row %d: %w", y-b.Min.Y, err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("flush zlib stream: %w", err)
	}
	return buf.Bytes(), nil
}

func writeChunk(w io.Writer, name string, data []byte) error {
	var header [8]byte
	binary.BigEndian.PutUint32(header[0:4], uint32(len(data)))
	copy(header[4:8], name)

	crc := crc32.NewIEEE()
	crc.Write(header[4:8])
	crc.Write(data)

	var footer [4]byte
	binary.BigEndian.PutUint32(footer[:], crc.Sum32())

	for _, part := range [][]byte{header[:], data, footer[:]} {
		if _, err := w.Write(part); err != nil {
			return fmt.Errorf("write %s chunk: %w", name, err)
		}
	}
	return nil
}
