package layerfx

import (
	"maps"
	"reflect"
)

// Options is the configuration map of a scene or node.
//
// Values are typically bool, string, float64, float32 or int. The typed
// getters convert between numeric kinds and fall back to a default for
// missing or mistyped keys.
type Options map[string]any

// Clone returns a shallow copy of o.
func (o Options) Clone() Options {
	if o == nil {
		return Options{}
	}
	return maps.Clone(o)
}

// Bool returns the boolean at key, or def.
func (o Options) Bool(key string, def bool) bool {
	if v, ok := o[key].(bool); ok {
		return v
	}
	return def
}

// String returns the string at key, or def.
func (o Options) String(key, def string) string {
	if v, ok := o[key].(string); ok {
		return v
	}
	return def
}

// Float returns the number at key as float32, or def.
func (o Options) Float(key string, def float32) float32 {
	if v, ok := number(o[key]); ok {
		return float32(v)
	}
	return def
}

// Int returns the number at key truncated to int, or def.
func (o Options) Int(key string, def int) int {
	switch v := o[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case uint64:
		return int(v)
	}
	if v, ok := number(o[key]); ok {
		return int(v)
	}
	return def
}

// number converts any Go numeric type, as produced by YAML, JSON or
// callers, to float64.
func number(v any) (float64, bool) {
	switch v := v.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	}
	return 0, false
}

// Has reports whether key is set.
func (o Options) Has(key string) bool {
	_, ok := o[key]
	return ok
}

// Merge copies src into o and reports whether any value changed.
func (o Options) Merge(src Options) bool {
	changed := false
	for k, v := range src {
		if old, ok := o[k]; ok && reflect.DeepEqual(old, v) {
			continue
		}
		o[k] = v
		changed = true
	}
	return changed
}

// withDefaults returns defaults overlaid by opts.
func withDefaults(defaults, opts Options) Options {
	out := defaults.Clone()
	maps.Copy(out, opts)
	return out
}

// Scene option keys and defaults.
const (
	OptBlendMode      = "blendMode"
	OptOpacity        = "opacity"
	OptLightIntensity = "lightIntensity"
	OptLightDistance  = "lightDistance"
	OptCameraZoom     = "cameraZoom"
	OptMask           = "mask"
	OptInverse        = "inverse"
	OptStencil        = "stencil"
	OptEnabled        = "enabled"
)

// SceneDefaults returns the default scene options.
func SceneDefaults() Options {
	return Options{
		OptBlendMode:      "Normal",
		OptOpacity:        1.0,
		OptLightIntensity: 1.0,
		OptLightDistance:  500.0,
		OptCameraZoom:     250.0,
		OptMask:           false,
		OptInverse:        false,
		OptStencil:        false,
	}
}

// NodeDefaults returns the options every node starts with.
func NodeDefaults() Options {
	return Options{OptEnabled: true}
}

// SceneOption configures a Scene during creation.
//
// Example:
//
//	scene := layerfx.NewScene(
//	    layerfx.WithName("chorus"),
//	    layerfx.WithOptions(layerfx.Options{"lightDistance": 300.0}),
//	)
type SceneOption func(*sceneOptions)

type sceneOptions struct {
	name    string
	options Options
}

// WithName sets the scene name used in serialization and logs.
func WithName(name string) SceneOption {
	return func(o *sceneOptions) {
		o.name = name
	}
}

// WithOptions overrides scene option defaults.
func WithOptions(opts Options) SceneOption {
	return func(o *sceneOptions) {
		maps.Copy(o.options, opts)
	}
}
