package codec

import "math"

// encodeFloatField computes the biased exponent and mantissa fields for a
// positive, finite, non-zero float64 value under an expBits/mantBits/bias
// IEEE-754-style layout, rounding the mantissa to nearest-even.
//
// overflow is true when the value is too large to represent even at the
// maximum exponent; callers translate that into a domain error.
func encodeFloatField(abs float64, expBits, mantBits int) (biasedExp uint32, mantissa uint32, overflow bool) {
	bias := (1 << (expBits - 1)) - 1
	maxExp := (1 << expBits) - 1
	mantScale := float64(int64(1) << uint(mantBits))

	minNormal := math.Ldexp(1, 1-bias)
	if abs < minNormal {
		// Subnormal: mantissa counts ULPs directly, no implicit leading 1.
		ulp := math.Ldexp(1, 1-bias-mantBits)
		m := math.RoundToEven(abs / ulp)
		if m >= mantScale {
			// Rounded up across the subnormal/normal boundary.
			return 1, 0, false
		}

		return 0, uint32(m), false
	}

	frac, exp := math.Frexp(abs) // abs == frac * 2^exp, frac in [0.5, 1)
	normExp := exp - 1           // abs == (frac*2) * 2^normExp, frac*2 in [1, 2)
	mantFrac := frac*2 - 1       // in [0, 1)

	m := math.RoundToEven(mantFrac * mantScale)
	be := normExp + bias
	if m >= mantScale {
		m = 0
		be++
	}

	if be > maxExp {
		return 0, 0, true
	}

	return uint32(be), uint32(m), false
}
