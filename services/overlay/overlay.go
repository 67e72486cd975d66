package overlay

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	_ "image/png"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	lineHeight = 16
	padding    = 8
)

// Annotate stamps the given text lines onto a translucent strip along the
// bottom edge of the image and re-encodes it as JPEG. The overlay records
// where and when a capture happened so reviewers can audit the artifact.
func Annotate(src []byte, lines []string) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(src))
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	canvas := image.NewRGBA(bounds)
	draw.Draw(canvas, bounds, img, bounds.Min, draw.Src)

	stripHeight := len(lines)*lineHeight + padding
	stripTop := bounds.Max.Y - stripHeight
	if stripTop < bounds.Min.Y {
		stripTop = bounds.Min.Y
	}
	strip := image.Rect(bounds.Min.X, stripTop, bounds.Max.X, bounds.Max.Y)
	draw.Draw(canvas, strip, &image.Uniform{C: color.RGBA{A: 180}}, image.Point{}, draw.Over)

	drawer := &font.Drawer{
		Dst:  canvas,
		Src:  image.NewUniform(color.White),
		Face: basicfont.Face7x13,
	}
	for i, line := range lines {
		drawer.Dot = fixed.P(bounds.Min.X+padding, stripTop+(i+1)*lineHeight)
		drawer.DrawString(line)
	}

	var out bytes.Buffer
	if err := jpeg.Encode(&out, canvas, &jpeg.Options{Quality: 85}); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
