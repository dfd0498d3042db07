package blend

import "math"

// kernel composites a premultiplied source (the overlay) onto a premultiplied
// destination (the base) and returns the premultiplied result.
type kernel func(sr, sg, sb, sa, dr, dg, db, da byte) (r, g, b, a byte)

// normal is plain source-over.
// Formula: S + D*(1-Sa)
func normal(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	inv := 255 - sa
	return addClamp(sr, mulDiv255(dr, inv)),
		addClamp(sg, mulDiv255(dg, inv)),
		addClamp(sb, mulDiv255(db, inv)),
		addClamp(sa, mulDiv255(da, inv))
}

// add sums premultiplied channels, clamped to 255.
func add(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return addClamp(sr, dr), addClamp(sg, dg), addClamp(sb, db), addClamp(sa, da)
}

// separable applies a per-channel blend function B(Cs, Cb) on straight color
// and composites with: (1 - Sa)*D + (1 - Da)*S + Sa*Da*B.
func separable(fn func(s, d byte) byte) kernel {
	return func(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
		if sa == 0 {
			return dr, dg, db, da
		}
		if da == 0 {
			return sr, sg, sb, sa
		}

		br := fn(unpremul(sr, sa), unpremul(dr, da))
		bg := fn(unpremul(sg, sa), unpremul(dg, da))
		bb := fn(unpremul(sb, sa), unpremul(db, da))

		invSa := 255 - sa
		invDa := 255 - da
		saDa := mulDiv255(sa, da)

		r := addClamp(addClamp(mulDiv255(dr, invSa), mulDiv255(sr, invDa)), mulDiv255(saDa, br))
		g := addClamp(addClamp(mulDiv255(dg, invSa), mulDiv255(sg, invDa)), mulDiv255(saDa, bg))
		b := addClamp(addClamp(mulDiv255(db, invSa), mulDiv255(sb, invDa)), mulDiv255(saDa, bb))
		a := addClamp(sa, mulDiv255(da, invSa))
		return r, g, b, a
	}
}

// Formula: Cb * Cs
func multiplyChan(s, d byte) byte { return mulDiv255(s, d) }

// Formula: 1 - (1 - Cb) * (1 - Cs)
func screenChan(s, d byte) byte { return 255 - mulDiv255(255-s, 255-d) }

// Formula: HardLight(Cs, Cb) with swapped layers.
func overlayChan(s, d byte) byte { return hardLightChan(d, s) }

func hardLightChan(s, d byte) byte {
	if s <= 127 {
		return byte(min(255, (2*uint16(s)*uint16(d)+127)/255))
	}
	s2 := 2*uint16(s) - 255
	return screenChan(byte(s2), d)
}

// Formula: min(1, Cb / (1 - Cs))
func colorDodgeChan(s, d byte) byte {
	if d == 0 {
		return 0
	}
	if s == 255 {
		return 255
	}
	return byte(min(255, uint16(d)*255/uint16(255-s)))
}

// Formula: 1 - min(1, (1 - Cb) / Cs)
func colorBurnChan(s, d byte) byte {
	if d == 255 {
		return 255
	}
	if s == 0 {
		return 0
	}
	return 255 - byte(min(255, uint16(255-d)*255/uint16(s)))
}

func softLightChan(s, d byte) byte {
	sf := float64(s) / 255
	df := float64(d) / 255

	var res float64
	if sf <= 0.5 {
		res = df - (1-2*sf)*df*(1-df)
	} else {
		var dx float64
		if df <= 0.25 {
			dx = ((16*df-12)*df + 4) * df
		} else {
			dx = math.Sqrt(df)
		}
		res = df + (2*sf-1)*(dx-df)
	}
	return byte(math.Round(math.Max(0, math.Min(1, res)) * 255))
}

// Formula: |Cb - Cs|
func differenceChan(s, d byte) byte {
	if s > d {
		return s - d
	}
	return d - s
}

// Formula: Cb + Cs - 2 * Cb * Cs
func exclusionChan(s, d byte) byte {
	v := uint16(s) + uint16(d) - 2*uint16(mulDiv255(s, d))
	return byte(min(255, v))
}

// Formula: max(0, Cb - Cs)
func subtractChan(s, d byte) byte { return subClamp(d, s) }

// Formula: (Cb + Cs) / 2
func averageChan(s, d byte) byte { return byte((uint16(s) + uint16(d) + 1) / 2) }

// Formula: 1 - |1 - Cb - Cs|
func negationChan(s, d byte) byte {
	v := 255 - int(s) - int(d)
	if v < 0 {
		v = -v
	}
	return byte(255 - v)
}
