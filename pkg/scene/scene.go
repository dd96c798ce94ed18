package scene

import (
	"github.com/pkg/errors"

	"github.com/s0berman/go-pathtracer/pkg/core"
	"github.com/s0berman/go-pathtracer/pkg/geometry"
	"github.com/s0berman/go-pathtracer/pkg/material"
	"github.com/s0berman/go-pathtracer/pkg/renderer"
)

const defaultEnvironmentDistance = 1000

// Scene is a fully built world ready to render: geometry under a
// hierarchy, the sampleable light set, the optional environment sphere
// and the camera. Everything is immutable after construction.
type Scene struct {
	Consts ConstantsConfig

	world  *core.BVH
	lights *geometry.HittableList
	env    core.Hittable
	camera *renderer.Camera
}

// World returns the scene geometry
func (s *Scene) World() core.Hittable {
	return s.world
}

// Lights returns the sampleable light set, nil when empty
func (s *Scene) Lights() core.Hittable {
	if s.lights.Len() == 0 {
		return nil
	}
	return s.lights
}

// Environment returns the environment sphere, nil for the sky gradient
func (s *Scene) Environment() core.Hittable {
	return s.env
}

// Camera returns the scene camera
func (s *Scene) Camera() *renderer.Camera {
	return s.camera
}

// FromConfig builds a scene from a parsed configuration.
func FromConfig(cfg *Config) (*Scene, error) {
	objects := make([]core.Hittable, 0, len(cfg.World))
	for i, objCfg := range cfg.World {
		obj, err := buildObject(&objCfg)
		if err != nil {
			return nil, errors.Wrapf(err, "world object %d", i)
		}
		objects = append(objects, obj)
	}

	aspect := cfg.Camera.AspectRatio
	if aspect == 0 {
		aspect = float64(cfg.Constants.Width) / float64(cfg.Constants.Height)
	}
	camera := renderer.NewCamera(
		vec3From(cfg.Camera.LookFrom),
		vec3From(cfg.Camera.LookAt),
		vec3From(cfg.Camera.Vup),
		cfg.Camera.Vfov,
		aspect,
		cfg.Camera.Aperture,
		cfg.Camera.FocusDistance,
	)

	return assemble(cfg.Constants, objects, camera)
}

// assemble builds the hierarchy, collects lights and attaches the
// environment sphere. The environment stays outside the world
// hierarchy so its huge bounds never pollute the tree; the integrator
// queries it only on miss.
func assemble(consts ConstantsConfig, objects []core.Hittable, camera *renderer.Camera) (*Scene, error) {
	lights := geometry.NewHittableList()
	for _, obj := range objects {
		if obj.IsLight() {
			lights.Add(obj)
		}
	}

	var env core.Hittable
	if consts.EnvironmentMap != "" {
		tex, err := material.NewImageTexture(consts.EnvironmentMap)
		if err != nil {
			return nil, errors.Wrap(err, "environment map")
		}
		distance := consts.EnvironmentDistance
		if distance <= 0 {
			distance = defaultEnvironmentDistance
		}
		envSphere := geometry.NewSphere(core.Zero, distance,
			material.NewDiffuseLight(tex, consts.EnvironmentIntensity))
		env = envSphere
		if consts.EnvironmentIntensity > 0 {
			lights.Add(envSphere)
		}
	}

	return &Scene{
		Consts: consts,
		world:  core.NewBVH(objects),
		lights: lights,
		env:    env,
		camera: camera,
	}, nil
}

func vec3From(v []float64) core.Vec3 {
	return core.NewVec3(v[0], v[1], v[2])
}

func buildObject(cfg *ObjectConfig) (core.Hittable, error) {
	if cfg.ObjType == "SphereArray" {
		return buildSphereArray(cfg)
	}

	mat, err := buildMaterial(cfg.Material)
	if err != nil {
		return nil, err
	}

	switch cfg.ObjType {
	case "Sphere":
		if len(cfg.Center) != 3 {
			return nil, errors.New("sphere center must have 3 components")
		}
		return geometry.NewSphere(vec3From(cfg.Center), cfg.Radius, mat), nil

	case "XYRectangle", "XZRectangle", "YZRectangle":
		if len(cfg.Position) != 3 {
			return nil, errors.New("rectangle position must have 3 components")
		}
		p := vec3From(cfg.Position)
		halfW, halfH := cfg.Width/2, cfg.Height/2
		switch cfg.ObjType {
		case "XYRectangle":
			return geometry.NewXYRectangle(p.X-halfW, p.X+halfW, p.Y-halfH, p.Y+halfH, p.Z, mat), nil
		case "XZRectangle":
			return geometry.NewXZRectangle(p.X-halfW, p.X+halfW, p.Z-halfH, p.Z+halfH, p.Y, mat), nil
		default:
			return geometry.NewYZRectangle(p.Y-halfW, p.Y+halfW, p.Z-halfH, p.Z+halfH, p.X, mat), nil
		}

	case "Box":
		if len(cfg.Position) != 3 {
			return nil, errors.New("box position must have 3 components")
		}
		size := core.NewVec3(cfg.Width, cfg.Height, cfg.Depth)
		return geometry.NewBox(vec3From(cfg.Position), size, mat), nil

	case "Mesh":
		if len(cfg.Position) != 3 || len(cfg.Rotation) != 3 {
			return nil, errors.New("mesh position and rotation must have 3 components")
		}
		return geometry.NewMesh(cfg.Filename, vec3From(cfg.Position), vec3From(cfg.Rotation), cfg.ScalingFactor, mat)

	default:
		return nil, errors.Errorf("unknown object type %q", cfg.ObjType)
	}
}

func buildSphereArray(cfg *ObjectConfig) (core.Hittable, error) {
	spheres := make([]core.Hittable, 0, len(cfg.Objects))
	for i, sphereCfg := range cfg.Objects {
		if sphereCfg.ObjType != "Sphere" {
			return nil, errors.Errorf("sphere array member %d has type %q, only Sphere is supported", i, sphereCfg.ObjType)
		}
		sphere, err := buildObject(&sphereCfg)
		if err != nil {
			return nil, errors.Wrapf(err, "sphere array member %d", i)
		}
		spheres = append(spheres, sphere)
	}
	if len(spheres) == 0 {
		return nil, errors.New("sphere array is empty")
	}
	return geometry.NewSphereArray(spheres), nil
}

func buildMaterial(cfg *MaterialConfig) (core.Material, error) {
	if cfg == nil {
		return nil, errors.New("material section is required")
	}

	tex, err := buildTexture(cfg.TexType, cfg.Texture)
	if err != nil {
		return nil, err
	}

	switch cfg.MatType {
	case "Lambertian":
		return material.NewLambertian(tex), nil
	case "Metal":
		return material.NewMetal(tex, cfg.Fuzz), nil
	case "Dielectric":
		return material.NewDielectricWithOpacity(tex, cfg.RefractionIdx, cfg.Opacity), nil
	case "Plastic":
		return material.NewPlastic(tex, cfg.Reflectivity, cfg.Fuzz), nil
	case "GGX":
		return material.NewGGXGlossy(tex, cfg.Roughness, cfg.Reflectivity), nil
	case "DiffuseLight":
		return material.NewDiffuseLight(tex, cfg.Intensity), nil
	default:
		return nil, errors.Errorf("unknown material type %q", cfg.MatType)
	}
}

func buildTexture(texType string, params *TextureParams) (core.Texture, error) {
	if params == nil {
		return nil, errors.Errorf("texture parameters are required for %q", texType)
	}

	switch texType {
	case "SolidColor":
		if len(params.Albedo) != 3 {
			return nil, errors.New("albedo must have 3 components")
		}
		return material.NewSolidColor(vec3From(params.Albedo)), nil

	case "ChessBoard":
		if params.Tex1 == nil || params.Tex2 == nil {
			return nil, errors.New("chessboard needs tex1 and tex2")
		}
		tex1, err := buildTexture(params.Tex1.TexType, params.Tex1.Texture)
		if err != nil {
			return nil, errors.Wrap(err, "tex1")
		}
		tex2, err := buildTexture(params.Tex2.TexType, params.Tex2.Texture)
		if err != nil {
			return nil, errors.Wrap(err, "tex2")
		}
		return material.NewChessBoard(tex1, tex2, params.Scale), nil

	case "GradientColor":
		if params.Tex1 == nil || params.Tex2 == nil {
			return nil, errors.New("gradient needs tex1 and tex2")
		}
		bottom, err := buildTexture(params.Tex1.TexType, params.Tex1.Texture)
		if err != nil {
			return nil, errors.Wrap(err, "tex1")
		}
		top, err := buildTexture(params.Tex2.TexType, params.Tex2.Texture)
		if err != nil {
			return nil, errors.Wrap(err, "tex2")
		}
		return material.NewGradient(bottom, top), nil

	case "ImageTexture":
		if params.Filename == "" {
			return nil, errors.New("image texture needs a filename")
		}
		return material.NewImageTexture(params.Filename)

	default:
		return nil, errors.Errorf("unknown texture type %q", texType)
	}
}
