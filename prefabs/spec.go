package prefabs

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// LoadSpec loads and unmarshals a prefab YAML file.
func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// EntityBuildSpec is the generic prefab shape: a named bag of component
// specs keyed by registry name.
type EntityBuildSpec struct {
	Name       string         `yaml:"name"`
	Components map[string]any `yaml:"components"`
}

func LoadEntityBuildSpec(filename string) (EntityBuildSpec, error) {
	return LoadSpec[EntityBuildSpec](filename)
}

// DecodeComponentSpec re-marshals a raw component entry into its typed
// spec.
func DecodeComponentSpec[T any](raw any) (T, error) {
	var zero T
	if raw == nil {
		return zero, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return zero, err
	}
	var out T
	if err := yaml.Unmarshal(b, &out); err != nil {
		return zero, err
	}
	return out, nil
}

type PlayerComponentSpec struct {
	MoveSpeed   float64 `yaml:"move_speed"`
	JumpHeight  float64 `yaml:"jump_height"`
	FloatHeight float64 `yaml:"float_height"`
	Radius      float64 `yaml:"radius"`
}

type TransformComponentSpec struct {
	X   float64 `yaml:"x"`
	Y   float64 `yaml:"y"`
	Z   float64 `yaml:"z"`
	Yaw float64 `yaml:"yaw"`
}

type CameraComponentSpec struct {
	Distance float64 `yaml:"distance"`
	OffsetX  float64 `yaml:"offset_x"`
	OffsetY  float64 `yaml:"offset_y"`
}

type AudioClipSpec struct {
	Name   string  `yaml:"name"`
	File   string  `yaml:"file"`
	Volume float64 `yaml:"volume"`
}

type AudioComponentSpec struct {
	Clips    []AudioClipSpec `yaml:"clips"`
	Autoplay []string        `yaml:"autoplay"`
}

// LevelSpec describes the static scene: the ground plane and the atom
// trigger volumes. When Script is set, the tengo script's placements
// replace the YAML ones.
type LevelSpec struct {
	Name   string     `yaml:"name"`
	Ground GroundSpec `yaml:"ground"`
	Script string     `yaml:"script"`
	Atoms  AtomsSpec  `yaml:"atoms"`
}

type GroundSpec struct {
	Size float64 `yaml:"size"`
}

type AtomsSpec struct {
	Row        *AtomRowSpec    `yaml:"row"`
	Placements []AtomPlacement `yaml:"placements"`
}

// AtomRowSpec places Count atoms in a line along Z.
type AtomRowSpec struct {
	Count  int     `yaml:"count"`
	X      float64 `yaml:"x"`
	StartZ float64 `yaml:"start_z"`
	StepZ  float64 `yaml:"step_z"`
	Radius float64 `yaml:"radius"`
}

type AtomPlacement struct {
	X      float64 `yaml:"x"`
	Z      float64 `yaml:"z"`
	Radius float64 `yaml:"radius"`
}

func LoadLevelSpec(filename string) (*LevelSpec, error) {
	spec, err := LoadSpec[LevelSpec](filename)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// Resolve flattens a level's atom description into concrete placements,
// consulting the tengo script when one is configured.
func (s *LevelSpec) Resolve() ([]AtomPlacement, error) {
	if s == nil {
		return nil, nil
	}
	if s.Script != "" {
		placements, err := LoadLevelScript(s.Script)
		if err != nil {
			return nil, fmt.Errorf("prefabs: level script %q: %w", s.Script, err)
		}
		return placements, nil
	}

	out := append([]AtomPlacement(nil), s.Atoms.Placements...)
	if row := s.Atoms.Row; row != nil {
		for n := 0; n < row.Count; n++ {
			out = append(out, AtomPlacement{
				X:      row.X,
				Z:      row.StartZ + row.StepZ*float64(n),
				Radius: row.Radius,
			})
		}
	}
	return out, nil
}
