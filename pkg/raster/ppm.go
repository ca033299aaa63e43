package raster

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// PPMExtension is the only file extension WritePPM accepts
const PPMExtension = ".ppm"

var (
	// ErrUnsupportedFormat is returned when the output path is not a .ppm file
	ErrUnsupportedFormat = errors.New("image must be a ppm file")
	// ErrIncompleteImage is returned when encoding an image with unset pixels
	ErrIncompleteImage = errors.New("image has unset pixels")
)

// Encode writes the image as plain-text PPM (P3). Each row is one line of
// "R G B" triples separated by tabs.
func Encode(w io.Writer, img *Image) error {
	if !img.Complete() {
		return ErrIncompleteImage
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "P3 %d %d\n255\n", img.width, img.height)
	for y := 0; y < img.height; y++ {
		for x := 0; x < img.width; x++ {
			r, g, b := img.pixels[y*img.width+x].Bytes()
			fmt.Fprintf(bw, "%3d %3d %3d\t", r, g, b)
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// WritePPM encodes the image to path, which must end in .ppm
func (img *Image) WritePPM(path string) error {
	if !strings.HasSuffix(path, PPMExtension) {
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	if !img.Complete() {
		return ErrIncompleteImage
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	if err := Encode(file, img); err != nil {
		file.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return file.Close()
}
