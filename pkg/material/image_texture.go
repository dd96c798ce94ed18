package material

import (
	"github.com/s0berman/go-pathtracer/pkg/core"
	"github.com/s0berman/go-pathtracer/pkg/loaders"
)

// ImageTexture samples a decoded image by surface UV. Also used for
// equirectangular environment maps via the sphere parameterization.
type ImageTexture struct {
	data *loaders.ImageData
}

// NewImageTexture loads an image file into a texture.
func NewImageTexture(filename string) (*ImageTexture, error) {
	data, err := loaders.LoadImage(filename)
	if err != nil {
		return nil, err
	}
	return &ImageTexture{data: data}, nil
}

// NewImageTextureFromData wraps already-decoded pixels
func NewImageTextureFromData(data *loaders.ImageData) *ImageTexture {
	return &ImageTexture{data: data}
}

// Value looks up the nearest pixel for (u, v). V is flipped because
// image rows run top to bottom.
func (t *ImageTexture) Value(u, v float64, p core.Vec3) core.Vec3 {
	u = clamp01(u)
	v = 1 - clamp01(v)

	x := int(u * float64(t.data.Width))
	y := int(v * float64(t.data.Height))
	return t.data.At(x, y)
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
