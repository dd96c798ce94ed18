package material

import (
	"math"

	"github.com/s0berman/go-pathtracer/pkg/core"
)

// SolidColor is a constant-color texture.
type SolidColor struct {
	Albedo core.Vec3
}

// NewSolidColor creates a constant-color texture
func NewSolidColor(albedo core.Vec3) SolidColor {
	return SolidColor{Albedo: albedo}
}

// Value returns the constant color
func (s SolidColor) Value(u, v float64, p core.Vec3) core.Vec3 {
	return s.Albedo
}

// ChessBoard alternates two textures in a 3D checker pattern. Scale
// controls the spatial frequency of the cells.
type ChessBoard struct {
	Odd, Even core.Texture
	Scale     float64
}

// NewChessBoard creates a checker texture over two sub-textures
func NewChessBoard(tex1, tex2 core.Texture, scale float64) ChessBoard {
	return ChessBoard{Odd: tex1, Even: tex2, Scale: scale}
}

// Value selects between the two textures based on position
func (c ChessBoard) Value(u, v float64, p core.Vec3) core.Vec3 {
	sines := math.Sin(c.Scale*p.X) * math.Sin(c.Scale*p.Y) * math.Sin(c.Scale*p.Z)
	if sines < 0 {
		return c.Odd.Value(u, v, p)
	}
	return c.Even.Value(u, v, p)
}

// Gradient blends between two textures vertically by the y component
// of the surface point, mapped from [-1,1] to [0,1].
type Gradient struct {
	Bottom, Top core.Texture
}

// NewGradient creates a vertical gradient between two textures
func NewGradient(bottom, top core.Texture) Gradient {
	return Gradient{Bottom: bottom, Top: top}
}

// Value blends the two textures by height
func (g Gradient) Value(u, v float64, p core.Vec3) core.Vec3 {
	t := 0.5 * (p.Y + 1)
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return g.Bottom.Value(u, v, p).Lerp(g.Top.Value(u, v, p), t)
}
