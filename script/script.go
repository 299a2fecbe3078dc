// Package script runs starlark scene scripts. A scene script receives the
// content dimensions as globals and declares two top-level values: `cards`,
// a list of dicts describing static scenery rectangles, and `paths`, a list
// of dicts describing bezier paths to stroke.
package script

import (
	"fmt"

	"go.starlark.net/starlark"
)

// Card is one scenery rectangle declared by a scene script.
type Card struct {
	X, Y    float64
	W, H    float64
	R, G, B uint8
	Title   string
}

// Path is one bezier path declared by a scene script. Kind is "quad" (six
// control values) or "cubic" (eight). Segments and Tolerance are optional;
// zero means "let the renderer pick".
type Path struct {
	Kind      string
	Points    []float64
	Segments  int
	Tolerance float64
}

// Scene is the extracted result of a scene script.
type Scene struct {
	Cards []Card
	Paths []Path
}

// Run executes a scene script with the provided globals and extracts the
// declared cards and paths.
func Run(name, src string, globals map[string]interface{}) (*Scene, error) {
	thread := &starlark.Thread{Name: name, Print: func(_ *starlark.Thread, msg string) { fmt.Println(msg) }}

	predeclared := starlark.StringDict{}
	for k, v := range globals {
		val, err := toStarlarkValue(v)
		if err != nil {
			return nil, fmt.Errorf("global %s: %w", k, err)
		}
		predeclared[k] = val
	}

	result, err := starlark.ExecFile(thread, name, src, predeclared)
	if err != nil {
		return nil, err
	}

	scene := &Scene{}
	if v, ok := result["cards"]; ok {
		scene.Cards, err = extractCards(v)
		if err != nil {
			return nil, err
		}
	}
	if v, ok := result["paths"]; ok {
		scene.Paths, err = extractPaths(v)
		if err != nil {
			return nil, err
		}
	}
	return scene, nil
}

func extractCards(v starlark.Value) ([]Card, error) {
	list, ok := v.(*starlark.List)
	if !ok {
		return nil, fmt.Errorf("cards: expected list, got %s", v.Type())
	}
	cards := make([]Card, 0, list.Len())
	for i := 0; i < list.Len(); i++ {
		d, ok := list.Index(i).(*starlark.Dict)
		if !ok {
			return nil, fmt.Errorf("cards[%d]: expected dict, got %s", i, list.Index(i).Type())
		}
		c := Card{
			X: dictFloat(d, "x"), Y: dictFloat(d, "y"),
			W: dictFloat(d, "w"), H: dictFloat(d, "h"),
			R: uint8(dictFloat(d, "r")), G: uint8(dictFloat(d, "g")), B: uint8(dictFloat(d, "b")),
		}
		if s, found, _ := d.Get(starlark.String("title")); found {
			if str, ok := s.(starlark.String); ok {
				c.Title = string(str)
			}
		}
		cards = append(cards, c)
	}
	return cards, nil
}

func extractPaths(v starlark.Value) ([]Path, error) {
	list, ok := v.(*starlark.List)
	if !ok {
		return nil, fmt.Errorf("paths: expected list, got %s", v.Type())
	}
	paths := make([]Path, 0, list.Len())
	for i := 0; i < list.Len(); i++ {
		d, ok := list.Index(i).(*starlark.Dict)
		if !ok {
			return nil, fmt.Errorf("paths[%d]: expected dict, got %s", i, list.Index(i).Type())
		}
		p := Path{
			Kind:      "quad",
			Segments:  int(dictFloat(d, "segments")),
			Tolerance: dictFloat(d, "tolerance"),
		}
		if s, found, _ := d.Get(starlark.String("kind")); found {
			if str, ok := s.(starlark.String); ok {
				p.Kind = string(str)
			}
		}
		pv, found, _ := d.Get(starlark.String("points"))
		if !found {
			return nil, fmt.Errorf("paths[%d]: missing points", i)
		}
		pl, ok := pv.(*starlark.List)
		if !ok {
			return nil, fmt.Errorf("paths[%d]: points must be a list", i)
		}
		for j := 0; j < pl.Len(); j++ {
			f, ok := asFloat(pl.Index(j))
			if !ok {
				return nil, fmt.Errorf("paths[%d].points[%d]: not a number", i, j)
			}
			p.Points = append(p.Points, f)
		}
		want := 6
		if p.Kind == "cubic" {
			want = 8
		}
		if len(p.Points) != want {
			return nil, fmt.Errorf("paths[%d]: %s path needs %d point values, got %d", i, p.Kind, want, len(p.Points))
		}
		paths = append(paths, p)
	}
	return paths, nil
}

func dictFloat(d *starlark.Dict, key string) float64 {
	v, found, _ := d.Get(starlark.String(key))
	if !found {
		return 0
	}
	f, _ := asFloat(v)
	return f
}

func asFloat(v starlark.Value) (float64, bool) {
	switch val := v.(type) {
	case starlark.Float:
		return float64(val), true
	case starlark.Int:
		i, _ := val.Int64()
		return float64(i), true
	}
	return 0, false
}

// toStarlarkValue converts native Go values for use as script globals.
func toStarlarkValue(v interface{}) (starlark.Value, error) {
	if v == nil {
		return starlark.None, nil
	}
	switch val := v.(type) {
	case string:
		return starlark.String(val), nil
	case int:
		return starlark.MakeInt(val), nil
	case float64:
		return starlark.Float(val), nil
	case bool:
		return starlark.Bool(val), nil
	case []float64:
		items := make([]starlark.Value, len(val))
		for i, f := range val {
			items[i] = starlark.Float(f)
		}
		return starlark.NewList(items), nil
	}
	return starlark.None, fmt.Errorf("unsupported type: %T", v)
}
