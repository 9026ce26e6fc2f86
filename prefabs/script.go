package prefabs

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// LoadLevelScript runs a tengo layout script and reads its `atoms` global,
// an array of {x, z, radius} maps. Scripts let a level compute placements
// instead of listing them by hand.
func LoadLevelScript(scriptName string) ([]AtomPlacement, error) {
	scriptBytes, err := LoadScript(scriptName)
	if err != nil {
		return nil, err
	}

	script := tengo.NewScript(scriptBytes)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Run()
	if err != nil {
		return nil, err
	}

	return extractScriptAtoms(compiled)
}

func extractScriptAtoms(compiled *tengo.Compiled) ([]AtomPlacement, error) {
	if compiled == nil {
		return nil, fmt.Errorf("script compile returned nil program")
	}

	atoms := compiled.Get("atoms")
	if atoms == nil || atoms.IsUndefined() {
		return nil, fmt.Errorf("script global 'atoms' is missing")
	}

	list, ok := atoms.Value().([]any)
	if !ok {
		return nil, fmt.Errorf("script global 'atoms' must be an array")
	}

	out := make([]AtomPlacement, 0, len(list))
	for i, entryAny := range list {
		entry, ok := toStringAnyMap(entryAny)
		if !ok {
			return nil, fmt.Errorf("atoms[%d] must be a map", i)
		}

		x, err := toFloat(entry["x"])
		if err != nil {
			return nil, fmt.Errorf("atoms[%d].x: %w", i, err)
		}
		z, err := toFloat(entry["z"])
		if err != nil {
			return nil, fmt.Errorf("atoms[%d].z: %w", i, err)
		}
		radius, err := toFloat(entry["radius"])
		if err != nil {
			return nil, fmt.Errorf("atoms[%d].radius: %w", i, err)
		}

		out = append(out, AtomPlacement{X: x, Z: z, Radius: radius})
	}

	return out, nil
}

func toStringAnyMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			key, ok := k.(string)
			if !ok {
				return nil, false
			}
			out[key] = val
		}
		return out, true
	default:
		return nil, false
	}
}

func toFloat(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case int64:
		return float64(n), nil
	case int:
		return float64(n), nil
	case nil:
		return 0, fmt.Errorf("missing value")
	default:
		return 0, fmt.Errorf("unsupported number type %T", v)
	}
}
