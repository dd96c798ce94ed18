package loaders

import (
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/pkg/errors"

	"github.com/s0berman/go-pathtracer/pkg/core"
)

// ImageData holds a decoded image as rows of [0,1] RGB values.
type ImageData struct {
	Width, Height int
	Pixels        []core.Vec3 // row-major, top row first
}

// LoadImage decodes a PNG or JPEG file into pixel colors.
func LoadImage(filename string) (*ImageData, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "open image %s", filename)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "decode image %s", filename)
	}

	bounds := img.Bounds()
	data := &ImageData{
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		Pixels: make([]core.Vec3, bounds.Dx()*bounds.Dy()),
	}

	i := 0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			data.Pixels[i] = core.NewVec3(
				float64(r)/65535,
				float64(g)/65535,
				float64(b)/65535,
			)
			i++
		}
	}
	return data, nil
}

// At returns the pixel at (x, y). Coordinates are clamped to the image.
func (d *ImageData) At(x, y int) core.Vec3 {
	if x < 0 {
		x = 0
	} else if x >= d.Width {
		x = d.Width - 1
	}
	if y < 0 {
		y = 0
	} else if y >= d.Height {
		y = d.Height - 1
	}
	return d.Pixels[y*d.Width+x]
}
