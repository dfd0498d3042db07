// Package blend provides the named blend modes used to composite layers.
//
// All functions work on alpha-premultiplied RGBA, the layout of
// image.RGBA. A blend mode is looked up by name in a [Registry]; the
// process-wide [DefaultRegistry] is built once and never mutated, so it can
// be shared by every pass in every scene.
//
// References:
//   - W3C Compositing and Blending Level 1: https://www.w3.org/TR/compositing-1/
package blend

import (
	"image/color"
	"slices"
	"sync"
)

// Mode is the name of a blend mode, e.g. "Normal" or "Screen".
type Mode string

// Blend mode names known to the default registry.
const (
	Normal     Mode = "Normal"
	Multiply   Mode = "Multiply"
	Screen     Mode = "Screen"
	Overlay    Mode = "Overlay"
	Darken     Mode = "Darken"
	Lighten    Mode = "Lighten"
	ColorDodge Mode = "ColorDodge"
	ColorBurn  Mode = "ColorBurn"
	HardLight  Mode = "HardLight"
	SoftLight  Mode = "SoftLight"
	Difference Mode = "Difference"
	Exclusion  Mode = "Exclusion"
	Add        Mode = "Add"
	Subtract   Mode = "Subtract"
	Average    Mode = "Average"
	Negation   Mode = "Negation"
	Hue        Mode = "Hue"
	Saturation Mode = "Saturation"
	Color      Mode = "Color"
	Luminosity Mode = "Luminosity"
)

// Uniforms are the scalars a pass forwards to a blend function unchanged.
type Uniforms struct {
	// Opacity scales the overlay's coverage before the mode is applied.
	Opacity float32

	// Alpha is the mix weight between the base and the blended result.
	Alpha float32
}

// Func composites overlay onto base.
type Func func(base, overlay color.RGBA, u Uniforms) color.RGBA

// Registry is an immutable mapping from mode names to blend functions.
type Registry struct {
	funcs map[Mode]Func
	order []Mode
}

// Entry pairs a mode name with its function for NewRegistry.
type Entry struct {
	Mode Mode
	Func Func
}

// NewRegistry builds a registry from entries. Later entries with the same
// name replace earlier ones but keep the original position.
func NewRegistry(entries ...Entry) *Registry {
	r := &Registry{funcs: make(map[Mode]Func, len(entries))}
	for _, e := range entries {
		if _, ok := r.funcs[e.Mode]; !ok {
			r.order = append(r.order, e.Mode)
		}
		r.funcs[e.Mode] = e.Func
	}
	return r
}

// Lookup returns the function registered for mode.
func (r *Registry) Lookup(mode Mode) (Func, bool) {
	fn, ok := r.funcs[mode]
	return fn, ok
}

// Modes returns the registered names in registration order.
func (r *Registry) Modes() []Mode {
	return slices.Clone(r.order)
}

// Len returns the number of registered modes.
func (r *Registry) Len() int {
	return len(r.order)
}

// DefaultRegistry returns the process-wide registry of built-in modes.
var DefaultRegistry = sync.OnceValue(func() *Registry {
	return NewRegistry(
		Entry{Normal, FromKernel(normal)},
		Entry{Multiply, FromKernel(separable(multiplyChan))},
		Entry{Screen, FromKernel(separable(screenChan))},
		Entry{Overlay, FromKernel(separable(overlayChan))},
		Entry{Darken, FromKernel(separable(minByte))},
		Entry{Lighten, FromKernel(separable(maxByte))},
		Entry{ColorDodge, FromKernel(separable(colorDodgeChan))},
		Entry{ColorBurn, FromKernel(separable(colorBurnChan))},
		Entry{HardLight, FromKernel(separable(hardLightChan))},
		Entry{SoftLight, FromKernel(separable(softLightChan))},
		Entry{Difference, FromKernel(separable(differenceChan))},
		Entry{Exclusion, FromKernel(separable(exclusionChan))},
		Entry{Add, FromKernel(add)},
		Entry{Subtract, FromKernel(separable(subtractChan))},
		Entry{Average, FromKernel(separable(averageChan))},
		Entry{Negation, FromKernel(separable(negationChan))},
		Entry{Hue, FromKernel(nonSeparable(hueTriplet))},
		Entry{Saturation, FromKernel(nonSeparable(saturationTriplet))},
		Entry{Color, FromKernel(nonSeparable(colorTriplet))},
		Entry{Luminosity, FromKernel(nonSeparable(luminosityTriplet))},
	)
})

// FromKernel adapts a premultiplied source/destination kernel to a Func.
//
// The overlay is the kernel's source and the base its destination. Opacity
// scales the overlay before the kernel runs; the kernel's output is then
// mixed with the base by Alpha.
func FromKernel(k func(sr, sg, sb, sa, dr, dg, db, da byte) (r, g, b, a byte)) Func {
	return func(base, overlay color.RGBA, u Uniforms) color.RGBA {
		opacity := clamp01(u.Opacity)
		if opacity < 1 {
			overlay = color.RGBA{
				R: scale8(overlay.R, opacity),
				G: scale8(overlay.G, opacity),
				B: scale8(overlay.B, opacity),
				A: scale8(overlay.A, opacity),
			}
		}

		r, g, b, a := k(overlay.R, overlay.G, overlay.B, overlay.A, base.R, base.G, base.B, base.A)
		out := color.RGBA{R: r, G: g, B: b, A: a}

		alpha := clamp01(u.Alpha)
		if alpha >= 1 {
			return out
		}
		return color.RGBA{
			R: lerp8(base.R, out.R, alpha),
			G: lerp8(base.G, out.G, alpha),
			B: lerp8(base.B, out.B, alpha),
			A: lerp8(base.A, out.A, alpha),
		}
	}
}
