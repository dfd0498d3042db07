package blend

import "math"

// Non-separable modes per W3C Compositing and Blending Level 1, section 8.
// They operate on the whole RGB triplet in straight color, range [0, 1].

func lum(r, g, b float32) float32 {
	return 0.30*r + 0.59*g + 0.11*b
}

func sat(r, g, b float32) float32 {
	return max(r, g, b) - min(r, g, b)
}

func clipColor(r, g, b float32) (float32, float32, float32) {
	l := lum(r, g, b)
	n := min(r, g, b)
	x := max(r, g, b)

	if n < 0 {
		r = l + (r-l)*l/(l-n)
		g = l + (g-l)*l/(l-n)
		b = l + (b-l)*l/(l-n)
	}
	if x > 1 {
		r = l + (r-l)*(1-l)/(x-l)
		g = l + (g-l)*(1-l)/(x-l)
		b = l + (b-l)*(1-l)/(x-l)
	}
	return r, g, b
}

func setLum(r, g, b, l float32) (float32, float32, float32) {
	d := l - lum(r, g, b)
	return clipColor(r+d, g+d, b+d)
}

func setSat(r, g, b, s float32) (float32, float32, float32) {
	lo, mid, hi := sortRGB(&r, &g, &b)
	if *hi > *lo {
		*mid = (*mid - *lo) * s / (*hi - *lo)
		*hi = s
	} else {
		*mid = 0
		*hi = 0
	}
	*lo = 0
	return r, g, b
}

// sortRGB returns pointers to r, g, b ordered by value.
func sortRGB(r, g, b *float32) (lo, mid, hi *float32) {
	switch {
	case *r <= *g && *g <= *b:
		return r, g, b
	case *r <= *b && *b <= *g:
		return r, b, g
	case *b <= *r && *r <= *g:
		return b, r, g
	case *g <= *r && *r <= *b:
		return g, r, b
	case *g <= *b && *b <= *r:
		return g, b, r
	default:
		return b, g, r
	}
}

func hueTriplet(sr, sg, sb, dr, dg, db float32) (float32, float32, float32) {
	r, g, b := setSat(sr, sg, sb, sat(dr, dg, db))
	return setLum(r, g, b, lum(dr, dg, db))
}

func saturationTriplet(sr, sg, sb, dr, dg, db float32) (float32, float32, float32) {
	r, g, b := setSat(dr, dg, db, sat(sr, sg, sb))
	return setLum(r, g, b, lum(dr, dg, db))
}

func colorTriplet(sr, sg, sb, dr, dg, db float32) (float32, float32, float32) {
	return setLum(sr, sg, sb, lum(dr, dg, db))
}

func luminosityTriplet(sr, sg, sb, dr, dg, db float32) (float32, float32, float32) {
	return setLum(dr, dg, db, lum(sr, sg, sb))
}

// nonSeparable composites a triplet function with
// (1 - Sa)*D + (1 - Da)*S + Sa*Da*B.
func nonSeparable(fn func(sr, sg, sb, dr, dg, db float32) (float32, float32, float32)) kernel {
	return func(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
		if sa == 0 {
			return dr, dg, db, da
		}
		if da == 0 {
			return sr, sg, sb, sa
		}

		saf := float32(sa) / 255
		daf := float32(da) / 255
		br, bg, bb := fn(
			float32(sr)/255/saf, float32(sg)/255/saf, float32(sb)/255/saf,
			float32(dr)/255/daf, float32(dg)/255/daf, float32(db)/255/daf,
		)

		invSa := 255 - sa
		invDa := 255 - da
		mix := func(s, d byte, blended float32) byte {
			base := addClamp(mulDiv255(d, invSa), mulDiv255(s, invDa))
			contrib := math.Round(float64(clamp01(blended) * saf * daf * 255))
			return addClamp(base, byte(contrib))
		}
		return mix(sr, dr, br), mix(sg, dg, bg), mix(sb, db, bb), addClamp(sa, mulDiv255(da, invSa))
	}
}
