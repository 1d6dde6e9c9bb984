package testutil

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
)

// PNGBytes encodes a solid w×h PNG, useful wherever decodable image bytes are needed.
func PNGBytes(w, h int, c color.Color) []byte {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		panic(err)
	}
	return buf.Bytes()
}
