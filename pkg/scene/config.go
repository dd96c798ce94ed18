package scene

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config is the top-level YAML scene description.
type Config struct {
	Constants ConstantsConfig `yaml:"constants"`
	Camera    *CameraConfig   `yaml:"camera"`
	World     []ObjectConfig  `yaml:"world"`
}

// ConstantsConfig holds render-wide settings.
type ConstantsConfig struct {
	Width           int `yaml:"width"`
	Height          int `yaml:"height"`
	SamplesPerPixel int `yaml:"samplesPerPixel"`
	MaxDepth        int `yaml:"maxDepth"`
	MinDepth        int `yaml:"minDepth"`

	EnvironmentMap       string  `yaml:"environmentMap"`
	EnvironmentDistance  float64 `yaml:"environmentDistance"`
	EnvironmentIntensity float64 `yaml:"environmentIntensity"`
	Filter               string  `yaml:"filter"`
}

// CameraConfig positions the camera.
type CameraConfig struct {
	LookFrom      []float64 `yaml:"lookFrom"`
	LookAt        []float64 `yaml:"lookAt"`
	Vup           []float64 `yaml:"vup"`
	Vfov          float64   `yaml:"vfov"`
	AspectRatio   float64   `yaml:"aspectRatio"`
	Aperture      float64   `yaml:"aperture"`
	FocusDistance float64   `yaml:"focusDistance"`
}

// ObjectConfig describes one world object. Which fields apply depends
// on ObjType.
type ObjectConfig struct {
	ObjType string `yaml:"objType"`

	// Sphere
	Center []float64 `yaml:"center"`
	Radius float64   `yaml:"radius"`

	// Rectangles, Box, Mesh
	Position []float64 `yaml:"position"`
	Width    float64   `yaml:"width"`
	Height   float64   `yaml:"height"`
	Depth    float64   `yaml:"depth"`

	// Mesh
	Filename      string    `yaml:"filename"`
	Rotation      []float64 `yaml:"rotation"`
	ScalingFactor float64   `yaml:"scalingFactor"`

	// SphereArray
	Objects []ObjectConfig `yaml:"objects"`

	Material *MaterialConfig `yaml:"material"`
}

// MaterialConfig describes a material with its texture.
type MaterialConfig struct {
	MatType string `yaml:"matType"`

	Fuzz          float64 `yaml:"fuzz"`
	RefractionIdx float64 `yaml:"refractionIdx"`
	Opacity       float64 `yaml:"opacity"`
	Reflectivity  float64 `yaml:"reflectivity"`
	Roughness     float64 `yaml:"roughness"`
	Intensity     float64 `yaml:"intensity"`

	TexType string         `yaml:"texType"`
	Texture *TextureParams `yaml:"texture"`
}

// TextureSpec is a full texture description, used where textures nest.
type TextureSpec struct {
	TexType string         `yaml:"texType"`
	Texture *TextureParams `yaml:"texture"`
}

// TextureParams holds the parameters of a texture block.
type TextureParams struct {
	Albedo   []float64    `yaml:"albedo"`
	Tex1     *TextureSpec `yaml:"tex1"`
	Tex2     *TextureSpec `yaml:"tex2"`
	Scale    float64      `yaml:"scale"`
	Filename string       `yaml:"filename"`
}

// LoadConfig reads and parses a YAML scene file.
func LoadConfig(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read config %s", path)
	}

	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, errors.Wrapf(err, "parse config %s", path)
	}
	if err := cfg.validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid config %s", path)
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Constants.Width <= 0 || c.Constants.Height <= 0 {
		return errors.Errorf("image size %dx%d must be positive", c.Constants.Width, c.Constants.Height)
	}
	if c.Constants.SamplesPerPixel <= 0 {
		return errors.New("samplesPerPixel must be positive")
	}
	if c.Constants.MaxDepth < 0 || c.Constants.MinDepth < 0 {
		return errors.New("depth limits must not be negative")
	}
	if c.Camera == nil {
		return errors.New("camera section is required")
	}
	for _, field := range []struct {
		name string
		val  []float64
	}{
		{"lookFrom", c.Camera.LookFrom},
		{"lookAt", c.Camera.LookAt},
		{"vup", c.Camera.Vup},
	} {
		if len(field.val) != 3 {
			return errors.Errorf("camera.%s must have 3 components", field.name)
		}
	}
	return nil
}
