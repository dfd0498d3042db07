package layerfx

import "testing"

func TestOptionsGetters(t *testing.T) {
	o := Options{
		"b":   true,
		"s":   "Screen",
		"f64": 0.5,
		"f32": float32(0.25),
		"i":   3,
		"bad": "x",
	}

	if !o.Bool("b", false) {
		t.Error("Bool(b) = false, want true")
	}
	if o.Bool("missing", true) != true {
		t.Error("Bool(missing, true) should return the default")
	}
	if got := o.String("s", ""); got != "Screen" {
		t.Errorf("String(s) = %q, want Screen", got)
	}
	if got := o.String("i", "def"); got != "def" {
		t.Errorf("String(i) = %q, want default", got)
	}

	floats := []struct {
		key  string
		want float32
	}{
		{"f64", 0.5},
		{"f32", 0.25},
		{"i", 3},
		{"bad", 7},
		{"missing", 7},
	}
	for _, tt := range floats {
		if got := o.Float(tt.key, 7); got != tt.want {
			t.Errorf("Float(%q) = %v, want %v", tt.key, got, tt.want)
		}
	}
	if got := o.Int("f64", 9); got != 0 {
		t.Errorf("Int(f64) = %d, want 0", got)
	}
	if got := o.Int("i", 9); got != 3 {
		t.Errorf("Int(i) = %d, want 3", got)
	}
}

func TestOptionsNumericTypes(t *testing.T) {
	tests := []struct {
		name string
		v    any
		want int
	}{
		{"int8", int8(-4), -4},
		{"int16", int16(300), 300},
		{"int32", int32(12), 12},
		{"int64", int64(40), 40},
		{"uint", uint(5), 5},
		{"uint8", uint8(255), 255},
		{"uint16", uint16(1000), 1000},
		{"uint32", uint32(7), 7},
		{"uint64", uint64(1 << 40), 1 << 40},
		{"float32", float32(2.75), 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := Options{"k": tt.v}
			if got := o.Int("k", -1); got != tt.want {
				t.Errorf("Int() = %d, want %d", got, tt.want)
			}
			if got := o.Float("k", -1); got == -1 {
				t.Errorf("Float() = default, want %v", tt.v)
			}
		})
	}

	if got := (Options{"k": uint32(3)}).Float("k", 0); got != 3 {
		t.Errorf("Float(uint32) = %v, want 3", got)
	}
}

func TestOptionsMerge(t *testing.T) {
	o := Options{"a": 1.0, "list": []float64{1, 2}}

	if o.Merge(Options{"a": 1.0, "list": []float64{1, 2}}) {
		t.Error("Merge(same values) = true, want false")
	}
	if !o.Merge(Options{"a": 2.0}) {
		t.Error("Merge(new value) = false, want true")
	}
	if !o.Merge(Options{"b": false}) {
		t.Error("Merge(new key) = false, want true")
	}
	if o.Float("a", 0) != 2 || !o.Has("b") {
		t.Errorf("options after merge = %v", o)
	}
}

func TestOptionsClone(t *testing.T) {
	var nilOpts Options
	if c := nilOpts.Clone(); c == nil {
		t.Error("Clone() of nil should return an empty map")
	}

	o := Options{"a": 1}
	c := o.Clone()
	c["a"] = 2
	if o.Int("a", 0) != 1 {
		t.Error("Clone() should not share the map")
	}
}

func TestSceneDefaults(t *testing.T) {
	d := SceneDefaults()

	if got := d.String(OptBlendMode, ""); got != "Normal" {
		t.Errorf("blendMode = %q, want Normal", got)
	}
	checks := []struct {
		key  string
		want float32
	}{
		{OptOpacity, 1},
		{OptLightIntensity, 1},
		{OptLightDistance, 500},
		{OptCameraZoom, 250},
	}
	for _, tt := range checks {
		if got := d.Float(tt.key, -1); got != tt.want {
			t.Errorf("%s = %v, want %v", tt.key, got, tt.want)
		}
	}
	for _, key := range []string{OptMask, OptInverse, OptStencil} {
		if d.Bool(key, true) {
			t.Errorf("%s = true, want false", key)
		}
	}
}

func TestSceneOptions(t *testing.T) {
	s := NewScene(WithName("intro"), WithOptions(Options{OptLightDistance: 100.0}))

	if s.Name() != "intro" {
		t.Errorf("Name() = %q, want intro", s.Name())
	}
	opts := s.Options()
	if opts.Float(OptLightDistance, 0) != 100 {
		t.Errorf("lightDistance = %v, want 100", opts[OptLightDistance])
	}
	if opts.Float(OptCameraZoom, 0) != 250 {
		t.Error("WithOptions should keep unrelated defaults")
	}

	other := NewScene()
	if other.ID() == s.ID() || other.ID() == 0 {
		t.Errorf("scene IDs = %d, %d, want distinct and non-zero", s.ID(), other.ID())
	}
}
