package blend

import (
	"image/color"
	"testing"
)

var (
	opaqueRed   = color.RGBA{R: 255, A: 255}
	opaqueBlue  = color.RGBA{B: 255, A: 255}
	opaqueWhite = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	opaqueBlack = color.RGBA{A: 255}
	opaqueGray  = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	full        = Uniforms{Opacity: 1, Alpha: 1}
)

func mustLookup(t *testing.T, mode Mode) Func {
	t.Helper()
	fn, ok := DefaultRegistry().Lookup(mode)
	if !ok {
		t.Fatalf("Lookup(%q) not found", mode)
	}
	return fn
}

func TestDefaultRegistryModes(t *testing.T) {
	r := DefaultRegistry()
	if r != DefaultRegistry() {
		t.Error("DefaultRegistry() should return the same instance")
	}

	want := []Mode{
		Normal, Multiply, Screen, Overlay, Darken, Lighten, ColorDodge, ColorBurn,
		HardLight, SoftLight, Difference, Exclusion, Add, Subtract, Average, Negation,
		Hue, Saturation, Color, Luminosity,
	}
	if r.Len() != len(want) {
		t.Fatalf("Len() = %d, want %d", r.Len(), len(want))
	}
	for i, m := range r.Modes() {
		if m != want[i] {
			t.Errorf("Modes()[%d] = %q, want %q", i, m, want[i])
		}
	}

	if _, ok := r.Lookup("Sparkle"); ok {
		t.Error("Lookup(Sparkle) should fail")
	}
}

func TestModesReturnsCopy(t *testing.T) {
	r := DefaultRegistry()
	modes := r.Modes()
	modes[0] = "Changed"
	if r.Modes()[0] != Normal {
		t.Error("Modes() must not expose internal order")
	}
}

func TestNewRegistryReplace(t *testing.T) {
	first := func(base, _ color.RGBA, _ Uniforms) color.RGBA { return base }
	second := func(_, overlay color.RGBA, _ Uniforms) color.RGBA { return overlay }

	r := NewRegistry(Entry{"A", first}, Entry{"B", first}, Entry{"A", second})
	if r.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", r.Len())
	}
	if got := r.Modes(); got[0] != "A" || got[1] != "B" {
		t.Errorf("Modes() = %v, want [A B]", got)
	}
	fn, _ := r.Lookup("A")
	if got := fn(opaqueRed, opaqueBlue, full); got != opaqueBlue {
		t.Errorf("replaced A = %v, want overlay", got)
	}
}

func TestOpaqueIdentities(t *testing.T) {
	tests := []struct {
		mode    Mode
		base    color.RGBA
		overlay color.RGBA
		want    color.RGBA
	}{
		{Normal, opaqueRed, opaqueBlue, opaqueBlue},
		{Multiply, opaqueGray, opaqueWhite, opaqueGray},
		{Multiply, opaqueGray, opaqueBlack, opaqueBlack},
		{Screen, opaqueGray, opaqueBlack, opaqueGray},
		{Screen, opaqueGray, opaqueWhite, opaqueWhite},
		{Darken, opaqueRed, opaqueBlue, opaqueBlack},
		{Lighten, opaqueRed, opaqueBlue, color.RGBA{R: 255, B: 255, A: 255}},
		{Difference, opaqueWhite, opaqueWhite, opaqueBlack},
		{Add, opaqueRed, opaqueBlue, color.RGBA{R: 255, B: 255, A: 255}},
		{Subtract, opaqueWhite, opaqueRed, color.RGBA{G: 255, B: 255, A: 255}},
		{Luminosity, opaqueGray, opaqueGray, opaqueGray},
	}

	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			fn := mustLookup(t, tt.mode)
			if got := fn(tt.base, tt.overlay, full); got != tt.want {
				t.Errorf("%s(%v, %v) = %v, want %v", tt.mode, tt.base, tt.overlay, got, tt.want)
			}
		})
	}
}

func TestTransparentOverlayKeepsBase(t *testing.T) {
	for _, mode := range DefaultRegistry().Modes() {
		fn := mustLookup(t, mode)
		if got := fn(opaqueRed, color.RGBA{}, full); got != opaqueRed {
			t.Errorf("%s with transparent overlay = %v, want %v", mode, got, opaqueRed)
		}
	}
}

func TestOpacityScalesOverlay(t *testing.T) {
	fn := mustLookup(t, Normal)

	if got := fn(opaqueRed, opaqueBlue, Uniforms{Opacity: 0, Alpha: 1}); got != opaqueRed {
		t.Errorf("opacity 0 = %v, want base %v", got, opaqueRed)
	}

	got := fn(color.RGBA{}, opaqueBlue, Uniforms{Opacity: 0.5, Alpha: 1})
	if got.A < 127 || got.A > 128 || got.B != got.A {
		t.Errorf("opacity 0.5 over transparent = %v, want half-covered blue", got)
	}
}

func TestAlphaMixesWithBase(t *testing.T) {
	fn := mustLookup(t, Normal)

	if got := fn(opaqueRed, opaqueBlue, Uniforms{Opacity: 1, Alpha: 0}); got != opaqueRed {
		t.Errorf("alpha 0 = %v, want base", got)
	}

	got := fn(opaqueBlack, opaqueWhite, Uniforms{Opacity: 1, Alpha: 0.5})
	if got.R < 127 || got.R > 128 || got.A != 255 {
		t.Errorf("alpha 0.5 = %v, want mid gray", got)
	}
}

func TestOpacityAndAlphaIndependent(t *testing.T) {
	fn := mustLookup(t, Normal)

	a := fn(opaqueBlack, opaqueWhite, Uniforms{Opacity: 0.5, Alpha: 1})
	b := fn(opaqueBlack, opaqueWhite, Uniforms{Opacity: 1, Alpha: 0.5})
	c := fn(opaqueBlack, opaqueWhite, Uniforms{Opacity: 0.5, Alpha: 0.5})

	if c.R >= a.R || c.R >= b.R {
		t.Errorf("combined = %v, want darker than opacity-only %v and alpha-only %v", c, a, b)
	}
}

func TestUniformsClamped(t *testing.T) {
	fn := mustLookup(t, Normal)
	if got := fn(opaqueRed, opaqueBlue, Uniforms{Opacity: 4, Alpha: 9}); got != opaqueBlue {
		t.Errorf("clamped uniforms = %v, want %v", got, opaqueBlue)
	}
	if got := fn(opaqueRed, opaqueBlue, Uniforms{Opacity: -1, Alpha: 1}); got != opaqueRed {
		t.Errorf("negative opacity = %v, want %v", got, opaqueRed)
	}
}
