package surface

import "agg_go/internal/order"

// FormatFromOrder32 builds a 4-byte-per-pixel Format whose channel shifts
// match a byte-aligned channel order (e.g. order.RGBA, order.ARGB), the
// common case for 32 BPP surfaces where every channel occupies exactly one
// byte.
func FormatFromOrder32(o order.RGBAOrder) Format {
	return Format{
		BytesPerPixel: 4,
		RShift:        o.IdxR() * 8,
		GShift:        o.IdxG() * 8,
		BShift:        o.IdxB() * 8,
		AShift:        o.IdxA() * 8,
	}
}

// FormatFromOrder24 builds a 3-byte-per-pixel Format whose channel shifts
// match a byte-aligned RGB channel order (e.g. order.RGB, order.BGR).
// There is no alpha channel; AShift is left at 0.
func FormatFromOrder24(o order.RGBOrder) Format {
	return Format{
		BytesPerPixel: 3,
		RShift:        o.IdxR() * 8,
		GShift:        o.IdxG() * 8,
		BShift:        o.IdxB() * 8,
	}
}
