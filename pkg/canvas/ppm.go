package canvas

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// ppmMaxLineLength is the longest line plain PPM readers must accept
const ppmMaxLineLength = 70

// WritePPM writes the canvas as a plain-text (P3) PPM image. Channel values
// are clamped and scaled to 0..255, lines never exceed 70 characters, each
// image row starts on a new line and the file ends with a newline.
func (c *Canvas) WritePPM(w io.Writer) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", c.Width, c.Height); err != nil {
		return err
	}

	for y := 0; y < c.Height; y++ {
		lineLength := 0
		for x := 0; x < c.Width; x++ {
			p := c.pixels[y*c.Width+x]
			for _, channel := range [3]float64{p.R, p.G, p.B} {
				value := strconv.Itoa(int(ToByte(channel)))

				needed := len(value)
				if lineLength > 0 {
					needed++ // separating space
				}
				if lineLength+needed > ppmMaxLineLength {
					bw.WriteByte('\n')
					lineLength = 0
				}
				if lineLength > 0 {
					bw.WriteByte(' ')
					lineLength++
				}
				bw.WriteString(value)
				lineLength += len(value)
			}
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}
