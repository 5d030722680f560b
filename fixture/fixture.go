// Package fixture loads YAML-described collision scenarios — shapes,
// positions, deltas, and expected results — the way the teacher
// codebase's load package reads a YAML shader description into a typed
// config struct (load/shd.go's Shd). The cmd/raydemo visual check runs
// loaded scenes; this package's tests check only that scenes decode.
//
// Package fixture is provided as part of the playground2d collision
// core.
package fixture

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/gazed/playground2d/geom2d"
	"github.com/gazed/playground2d/lin2"
)

// Scene is a fully decoded collision scenario: a set of named static
// obstacles, an optional mover, and an optional ray — the same shapes
// spec.md §8's concrete end-to-end scenarios describe in prose.
type Scene struct {
	Name      string
	Obstacles []NamedShape
	Mover     *MoverSpec
	Ray       *RaySpec
	Expect    Expectation
}

// NamedShape is a positioned shape with a label for error messages and
// debug rendering.
type NamedShape struct {
	Name  string
	Shape geom2d.Shape
	Pos   lin2.Coord2
}

// MoverSpec describes the mover under test: its shape, starting
// position, and the delta it attempts to move by.
type MoverSpec struct {
	Shape geom2d.Shape
	Pos   lin2.Coord2
	Delta lin2.Coord2
	// Policy names one of "none", "deflection", "reverse", "reflect".
	Policy string
}

// RaySpec describes a ray query scene.
type RaySpec struct {
	Origin lin2.Coord2
	Dir    lin2.Coord2
}

// Expectation records the scene author's expected outcome, in the same
// numbers spec.md §8 lists in prose. It is decoded only; nothing in
// this module compares a run against it.
type Expectation struct {
	FinalPos  *lin2.Coord2
	HasHit    bool
	HitT      *float64
	HitNormal *lin2.Coord2
}

// sceneConfig mirrors the YAML schema; unmarshaled into Scene after
// shape/vector conversion.
type sceneConfig struct {
	Name      string         `yaml:"name"`
	Obstacles []shapeConfig  `yaml:"obstacles"`
	Mover     *moverConfig   `yaml:"mover"`
	Ray       *rayConfig     `yaml:"ray"`
	Expect    expectConfig   `yaml:"expect"`
}

type vec2Config struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

func (v vec2Config) coord() lin2.Coord2 { return lin2.Coord2{X: v.X, Y: v.Y} }

type shapeConfig struct {
	Name string `yaml:"name"`
	Kind string `yaml:"kind"` // "rect", "polygon", "circle"

	// rect
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`

	// circle
	Radius float64 `yaml:"radius"`

	// polygon
	Vertices []vec2Config `yaml:"vertices"`

	Pos vec2Config `yaml:"pos"`
}

func (c shapeConfig) toShape() (geom2d.Shape, error) {
	switch c.Kind {
	case "rect":
		return geom2d.NewRect(0, 0, c.W, c.H), nil
	case "circle":
		return geom2d.NewCircle(lin2.Coord2{}, c.Radius), nil
	case "polygon":
		vs := make([]lin2.Coord2, len(c.Vertices))
		for i, v := range c.Vertices {
			vs[i] = v.coord()
		}
		return geom2d.NewPolygon(vs)
	default:
		return nil, fmt.Errorf("fixture: unsupported shape kind %q", c.Kind)
	}
}

type moverConfig struct {
	Shape  shapeConfig `yaml:"shape"`
	Pos    vec2Config  `yaml:"pos"`
	Delta  vec2Config  `yaml:"delta"`
	Policy string      `yaml:"policy"`
}

type rayConfig struct {
	Origin vec2Config `yaml:"origin"`
	Dir    vec2Config `yaml:"dir"`
}

type expectConfig struct {
	FinalPos  *vec2Config `yaml:"final_pos"`
	HasHit    bool        `yaml:"has_hit"`
	HitT      *float64    `yaml:"hit_t"`
	HitNormal *vec2Config `yaml:"hit_normal"`
}

// Load decodes a YAML-described scene from data.
func Load(data []byte) (Scene, error) {
	var cfg sceneConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Scene{}, fmt.Errorf("fixture: yaml %w", err)
	}

	scene := Scene{Name: cfg.Name}
	for _, oc := range cfg.Obstacles {
		shape, err := oc.toShape()
		if err != nil {
			return Scene{}, fmt.Errorf("fixture: obstacle %q: %w", oc.Name, err)
		}
		scene.Obstacles = append(scene.Obstacles, NamedShape{Name: oc.Name, Shape: shape, Pos: oc.Pos.coord()})
	}
	if cfg.Mover != nil {
		shape, err := cfg.Mover.Shape.toShape()
		if err != nil {
			return Scene{}, fmt.Errorf("fixture: mover: %w", err)
		}
		scene.Mover = &MoverSpec{
			Shape:  shape,
			Pos:    cfg.Mover.Pos.coord(),
			Delta:  cfg.Mover.Delta.coord(),
			Policy: cfg.Mover.Policy,
		}
	}
	if cfg.Ray != nil {
		scene.Ray = &RaySpec{Origin: cfg.Ray.Origin.coord(), Dir: cfg.Ray.Dir.coord()}
	}
	scene.Expect = Expectation{HasHit: cfg.Expect.HasHit, HitT: cfg.Expect.HitT}
	if cfg.Expect.FinalPos != nil {
		c := cfg.Expect.FinalPos.coord()
		scene.Expect.FinalPos = &c
	}
	if cfg.Expect.HitNormal != nil {
		c := cfg.Expect.HitNormal.coord()
		scene.Expect.HitNormal = &c
	}
	return scene, nil
}
