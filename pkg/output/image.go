package output

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"strconv"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
)

// ppmLineWidth is the longest line allowed in a plain PPM file
const ppmLineWidth = 70

// toByte clamps a linear channel to [0,1] and scales it to 0..255
func toByte(v float64) uint8 {
	if math.IsNaN(v) {
		return 0
	}
	return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
}

// colorToRGBA converts a linear color to RGBA with clamping
func colorToRGBA(c core.Color) color.RGBA {
	return color.RGBA{R: toByte(c.R), G: toByte(c.G), B: toByte(c.B), A: 255}
}

// ToImage converts a canvas to an RGBA image
func ToImage(canvas *renderer.Canvas) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, canvas.Width, canvas.Height))
	for y := 0; y < canvas.Height; y++ {
		for x := 0; x < canvas.Width; x++ {
			img.SetRGBA(x, y, colorToRGBA(canvas.PixelAt(x, y)))
		}
	}
	return img
}

// WritePNG encodes a canvas as PNG
func WritePNG(w io.Writer, canvas *renderer.Canvas) error {
	if err := png.Encode(w, ToImage(canvas)); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// WritePPM encodes a canvas as a plain-text (P3) PPM.
// Each image row starts on a new line and no line exceeds 70 characters.
func WritePPM(w io.Writer, canvas *renderer.Canvas) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "P3\n%d %d\n255\n", canvas.Width, canvas.Height)

	for y := 0; y < canvas.Height; y++ {
		lineLen := 0
		for x := 0; x < canvas.Width; x++ {
			c := colorToRGBA(canvas.PixelAt(x, y))
			for _, v := range [3]uint8{c.R, c.G, c.B} {
				s := strconv.Itoa(int(v))
				if lineLen > 0 && lineLen+1+len(s) > ppmLineWidth {
					bw.WriteByte('\n')
					lineLen = 0
				}
				if lineLen > 0 {
					bw.WriteByte(' ')
					lineLen++
				}
				bw.WriteString(s)
				lineLen += len(s)
			}
		}
		bw.WriteByte('\n')
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write ppm: %w", err)
	}
	return nil
}
