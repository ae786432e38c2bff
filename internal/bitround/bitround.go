// Package bitround implements the in-place bit-rounding kernel: masking
// off the discarded low mantissa bits with a half-bit additive bias for
// round-to-nearest, honoring a fill-value sentinel and NaN.
package bitround

import "math"

// MaskPair is the pair of masks derived from an NSB value: Zero clears
// the discarded low bits, HalfBit adds the rounding bias before masking.
type MaskPair struct {
	Zero    uint32
	HalfBit uint32
}

// MaskPairFor derives the zero-mask and half-bit-mask for nsb significant
// mantissa bits. nsb must be in [1, 23]; this is an invariant violation
// (spec §7.3) for any other value and panics rather than silently
// producing a corrupt mask.
func MaskPairFor(nsb uint8) MaskPair {
	if nsb < 1 || nsb > 23 {
		panic("bitround: nsb out of range [1, 23]")
	}
	z := uint8(23 - nsb)
	zeroMask := uint32(0xffffffff) << z
	halfBit := (^zeroMask) & (zeroMask >> 1)
	return MaskPair{Zero: zeroMask, HalfBit: halfBit}
}

// Round applies bit-rounding to data in place using nsb significant
// mantissa bits. Elements bitwise-equal to fill (when hasFill is true)
// or that are NaN are left untouched. The half-bit addition is plain
// unsigned overflow arithmetic; a carry into the exponent field (and,
// at the extreme, into +Inf) is the intended IEEE round-to-nearest
// behavior and is not special-cased. nsb == 23 clears zero bits and
// adds a zero bias, so it is a no-op handled by the same code path.
func Round(data []float32, nsb uint8, fill float32, hasFill bool) {
	mp := MaskPairFor(nsb)
	for i, x := range data {
		if (hasFill && x == fill) || math.IsNaN(float64(x)) {
			continue
		}
		u := math.Float32bits(x)
		u = (u + mp.HalfBit) & mp.Zero
		data[i] = math.Float32frombits(u)
	}
}
