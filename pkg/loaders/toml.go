// Package loaders reads scene descriptions and mesh files from disk.
package loaders

import (
	"fmt"
	"math"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lucerna-render/lucerna/pkg/core"
	"github.com/lucerna-render/lucerna/pkg/geometry"
	"github.com/lucerna-render/lucerna/pkg/material"
	"github.com/lucerna-render/lucerna/pkg/post"
	"github.com/lucerna-render/lucerna/pkg/renderer"
	"github.com/lucerna-render/lucerna/pkg/sampler"
	"github.com/lucerna-render/lucerna/pkg/scene"
)

// SceneFile is the parsed TOML scene description
type SceneFile struct {
	Camera     cameraConfig              `toml:"camera"`
	Render     renderConfig              `toml:"render"`
	Post       postConfig                `toml:"post"`
	Background *[3]float64               `toml:"background"`
	Materials  map[string]materialConfig `toml:"materials"`
	Objects    []objectConfig            `toml:"objects"`
}

type cameraConfig struct {
	LookFrom [3]float64 `toml:"look_from"`
	LookAt   [3]float64 `toml:"look_at"`
	Up       [3]float64 `toml:"up"`
	VFov     float64    `toml:"vfov"`
}

type renderConfig struct {
	Width           int    `toml:"width"`
	Height          int    `toml:"height"`
	SamplesPerPixel int    `toml:"samples_per_pixel"`
	TileSize        int    `toml:"tile_size"`
	MaxDepth        int    `toml:"max_depth"`
	RRStartDepth    *int   `toml:"rr_start_depth"`
	Sampler         string `toml:"sampler"`
	Seed            *int64 `toml:"seed"`
	Workers         int    `toml:"workers"`
}

type postConfig struct {
	Gamma        float64     `toml:"gamma"`
	WhiteBalance *[3]float64 `toml:"white_balance"`
}

type materialConfig struct {
	Type     string     `toml:"type"`
	Albedo   [3]float64 `toml:"albedo"`
	Exponent float64    `toml:"exponent"`
	IOR      float64    `toml:"ior"`
	Emission [3]float64 `toml:"emission"`
}

type objectConfig struct {
	Type      string           `toml:"type"`
	Material  string           `toml:"material"`
	Transform *transformConfig `toml:"transform"`

	// sphere
	Center [3]float64 `toml:"center"`
	Radius float64    `toml:"radius"`

	// plane
	Point  [3]float64 `toml:"point"`
	Normal [3]float64 `toml:"normal"`

	// triangle and quad
	Vertices [][3]float64 `toml:"vertices"`

	// mesh
	File string `toml:"file"`
}

// transformConfig is either a full row-major 4x4 matrix or a
// translate/rotate/scale triple applied in scale, rotate, translate
// order. Rotation angles are degrees about the x, y and z axes.
type transformConfig struct {
	Matrix    []float64   `toml:"matrix"`
	Translate *[3]float64 `toml:"translate"`
	RotateDeg *[3]float64 `toml:"rotate_deg"`
	Scale     *[3]float64 `toml:"scale"`
}

// LoadResult bundles everything a scene file describes. CameraConfig is
// kept so callers can rebuild the camera at a different resolution.
type LoadResult struct {
	Scene        *scene.Scene
	CameraConfig scene.CameraConfig
	Settings     renderer.RenderSettings
	Pipeline     post.Pipeline
}

// LoadScene reads a TOML scene description from disk and builds the
// scene along with its render settings and post pipeline. Mesh file
// paths are resolved relative to the scene file's directory.
func LoadScene(filename string) (*LoadResult, error) {
	var sf SceneFile
	if _, err := toml.DecodeFile(filename, &sf); err != nil {
		return nil, fmt.Errorf("decode scene file: %w", err)
	}
	return BuildScene(&sf, filepath.Dir(filename))
}

// BuildScene turns a parsed scene description into a renderable scene.
// baseDir anchors relative mesh file paths.
func BuildScene(sf *SceneFile, baseDir string) (*LoadResult, error) {
	settings, err := buildSettings(sf.Render)
	if err != nil {
		return nil, err
	}

	camCfg := scene.CameraConfig{
		LookFrom: toVec3(sf.Camera.LookFrom),
		LookAt:   toVec3(sf.Camera.LookAt),
		Up:       toVec3(sf.Camera.Up),
		VFov:     sf.Camera.VFov,
		Width:    settings.Width,
		Height:   settings.Height,
	}
	sc := scene.NewScene(scene.NewCamera(camCfg))
	if sf.Background != nil {
		sc.Background = toVec3(*sf.Background)
	}

	materials := make(map[string]*material.Material, len(sf.Materials))
	for name, mc := range sf.Materials {
		mat, err := buildMaterial(mc)
		if err != nil {
			return nil, fmt.Errorf("material %q: %w", name, err)
		}
		materials[name] = sc.AddMaterial(mat)
	}

	for i, oc := range sf.Objects {
		prim, err := buildObject(oc, materials, baseDir)
		if err != nil {
			return nil, fmt.Errorf("object %d (%s): %w", i, oc.Type, err)
		}
		sc.AddPrimitive(prim)
	}

	pipeline := buildPipeline(sf.Post)

	return &LoadResult{Scene: sc, CameraConfig: camCfg, Settings: settings, Pipeline: pipeline}, nil
}

func buildSettings(rc renderConfig) (renderer.RenderSettings, error) {
	if rc.Width <= 0 || rc.Height <= 0 {
		return renderer.RenderSettings{}, fmt.Errorf("render section needs a positive width and height")
	}
	settings := renderer.DefaultSettings(rc.Width, rc.Height)
	if rc.SamplesPerPixel > 0 {
		settings.SamplesPerPixel = rc.SamplesPerPixel
	}
	if rc.TileSize > 0 {
		settings.TileSize = rc.TileSize
	}
	if rc.MaxDepth > 0 {
		settings.MaxDepth = rc.MaxDepth
	}
	if rc.RRStartDepth != nil {
		settings.RRStartDepth = *rc.RRStartDepth
	}
	if rc.Sampler != "" {
		settings.Sampler = sampler.Kind(rc.Sampler)
	}
	if rc.Seed != nil {
		settings.Seed = *rc.Seed
	}
	if rc.Workers > 0 {
		settings.NumWorkers = rc.Workers
	}
	if err := settings.Validate(); err != nil {
		return renderer.RenderSettings{}, fmt.Errorf("render section: %w", err)
	}
	return settings, nil
}

func buildPipeline(pc postConfig) post.Pipeline {
	pipeline := post.DefaultPipeline()
	if pc.Gamma > 0 {
		pipeline.Gamma = pc.Gamma
	}
	if pc.WhiteBalance != nil {
		pipeline.Balance = toVec3(*pc.WhiteBalance)
	}
	return pipeline
}

func buildMaterial(mc materialConfig) (*material.Material, error) {
	switch mc.Type {
	case "lambertian":
		return material.NewLambertian(toVec3(mc.Albedo)), nil
	case "phong":
		if mc.Exponent <= 0 {
			return nil, fmt.Errorf("phong material needs a positive exponent")
		}
		return material.NewPhong(toVec3(mc.Albedo), mc.Exponent), nil
	case "mirror":
		return material.NewMirror(toVec3(mc.Albedo)), nil
	case "dielectric":
		if mc.IOR <= 0 {
			return nil, fmt.Errorf("dielectric material needs a positive ior")
		}
		return material.NewDielectric(mc.IOR), nil
	case "emissive":
		return material.NewEmissive(toVec3(mc.Emission)), nil
	case "":
		return nil, fmt.Errorf("missing material type")
	default:
		return nil, fmt.Errorf("unknown material type %q", mc.Type)
	}
}

func buildObject(oc objectConfig, materials map[string]*material.Material, baseDir string) (*geometry.Primitive, error) {
	mat, ok := materials[oc.Material]
	if !ok {
		return nil, fmt.Errorf("references undefined material %q", oc.Material)
	}

	t, err := buildTransform(oc.Transform)
	if err != nil {
		return nil, err
	}

	switch oc.Type {
	case "sphere":
		if oc.Radius <= 0 {
			return nil, fmt.Errorf("sphere needs a positive radius")
		}
		return geometry.NewSphere(toVec3(oc.Center), oc.Radius, t, mat), nil
	case "plane":
		n := toVec3(oc.Normal)
		if n.IsZero() {
			return nil, fmt.Errorf("plane needs a nonzero normal")
		}
		return geometry.NewPlane(toVec3(oc.Point), n, t, mat), nil
	case "triangle":
		if len(oc.Vertices) != 3 {
			return nil, fmt.Errorf("triangle needs 3 vertices, got %d", len(oc.Vertices))
		}
		return geometry.NewTriangle(toVec3(oc.Vertices[0]), toVec3(oc.Vertices[1]), toVec3(oc.Vertices[2]), t, mat), nil
	case "quad":
		if len(oc.Vertices) != 4 {
			return nil, fmt.Errorf("quad needs 4 vertices, got %d", len(oc.Vertices))
		}
		return geometry.NewQuad(toVec3(oc.Vertices[0]), toVec3(oc.Vertices[1]), toVec3(oc.Vertices[2]), toVec3(oc.Vertices[3]), t, mat), nil
	case "mesh":
		if oc.File == "" {
			return nil, fmt.Errorf("mesh needs a file path")
		}
		path := oc.File
		if !filepath.IsAbs(path) {
			path = filepath.Join(baseDir, path)
		}
		mesh, err := LoadPLY(path)
		if err != nil {
			return nil, err
		}
		return geometry.NewMeshPrimitive(mesh, t, mat), nil
	case "":
		return nil, fmt.Errorf("missing object type")
	default:
		return nil, fmt.Errorf("unknown object type %q", oc.Type)
	}
}

func buildTransform(tc *transformConfig) (core.Transform, error) {
	if tc == nil {
		return core.IdentityTransform(), nil
	}
	if tc.Matrix != nil {
		if len(tc.Matrix) != 16 {
			return core.Transform{}, fmt.Errorf("transform matrix needs 16 values, got %d", len(tc.Matrix))
		}
		var m mgl64.Mat4
		for row := 0; row < 4; row++ {
			for col := 0; col < 4; col++ {
				m[col*4+row] = tc.Matrix[row*4+col]
			}
		}
		return core.NewTransform(m)
	}

	t := core.IdentityTransform()
	if tc.Translate != nil {
		v := *tc.Translate
		t = core.Translate(v[0], v[1], v[2])
	}
	if tc.RotateDeg != nil {
		r := *tc.RotateDeg
		rot := core.RotateZ(radians(r[2])).
			Compose(core.RotateY(radians(r[1]))).
			Compose(core.RotateX(radians(r[0])))
		t = t.Compose(rot)
	}
	if tc.Scale != nil {
		v := *tc.Scale
		if v[0] == 0 || v[1] == 0 || v[2] == 0 {
			return core.Transform{}, fmt.Errorf("transform scale components must be nonzero")
		}
		t = t.Compose(core.Scale(v[0], v[1], v[2]))
	}
	return t, nil
}

func toVec3(v [3]float64) core.Vec3 {
	return core.NewVec3(v[0], v[1], v[2])
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
