// Package vmath implements deterministic Q32.32 fixed-point arithmetic for
// the simulation core. Every operation is pure integer computation, so
// identical operation sequences produce bit-identical results on every
// platform and at every optimization level. No value in this package ever
// touches the FPU after the construction boundary.
package vmath

import (
	"math"
	"math/bits"
)

// Scalar is a signed Q32.32 fixed-point number: 32 integer bits, 32
// fractional bits, two's complement. Compare with ==, <, > directly.
type Scalar int64

// Q32.32 layout constants
const (
	Shift        = 32
	One   Scalar = 1 << Shift
	Half  Scalar = 1 << (Shift - 1)
	Mask  Scalar = One - 1

	MaxScalar Scalar = math.MaxInt64
	MinScalar Scalar = math.MinInt64
)

// FromInt returns the Scalar representation of i.
func FromInt(i int) Scalar {
	return Scalar(int64(i) << Shift)
}

// FromUint32 returns the Scalar representation of u.
func FromUint32(u uint32) Scalar {
	return Scalar(int64(u) << Shift)
}

// FromFloat converts f at the construction boundary, truncating toward zero.
// Use only when ingesting external data; simulation-internal code must stay
// in Scalar to preserve determinism.
func FromFloat(f float64) Scalar {
	return Scalar(int64(f * float64(One)))
}

// Int returns the integer part, truncated toward negative infinity.
func (s Scalar) Int() int {
	return int(s >> Shift)
}

// Float converts to float64 for display only, never for simulation math.
func (s Scalar) Float() float64 {
	return float64(s) / float64(One)
}

func (s Scalar) Add(o Scalar) Scalar { return s + o }
func (s Scalar) Sub(o Scalar) Scalar { return s - o }

// Neg returns -s.
func (s Scalar) Neg() Scalar { return -s }

// Abs returns the absolute value.
func (s Scalar) Abs() Scalar {
	if s < 0 {
		return -s
	}
	return s
}

// Sign returns -One, 0, or One.
func (s Scalar) Sign() Scalar {
	if s < 0 {
		return -One
	}
	if s > 0 {
		return One
	}
	return 0
}

// Floor rounds toward negative infinity to the nearest integer value.
// Clearing the fractional bits of a two's-complement value is exactly floor.
func (s Scalar) Floor() Scalar {
	return s &^ Mask
}

// Clamp limits s to [lo, hi].
func (s Scalar) Clamp(lo, hi Scalar) Scalar {
	if s < lo {
		return lo
	}
	if s > hi {
		return hi
	}
	return s
}

// Min returns the smaller of s and o.
func (s Scalar) Min(o Scalar) Scalar {
	if o < s {
		return o
	}
	return s
}

// Max returns the larger of s and o.
func (s Scalar) Max(o Scalar) Scalar {
	if o > s {
		return o
	}
	return s
}

// Mul returns s*o with a 128-bit intermediate, truncated toward zero.
// Saturates to MaxScalar/MinScalar on overflow so every replica computes
// the identical degenerate value.
func (s Scalar) Mul(o Scalar) Scalar {
	a, b := int64(s), int64(o)
	if a == 0 || b == 0 {
		return 0
	}
	negative := (a < 0) != (b < 0)
	ua, ub := uint64(a), uint64(b)
	if a < 0 {
		ua = uint64(-a)
	}
	if b < 0 {
		ub = uint64(-b)
	}

	hi, lo := bits.Mul64(ua, ub)
	// Q32.32 * Q32.32 = Q64.64, shift right 32 for Q32.32
	if hi>>Shift != 0 {
		if negative {
			return MinScalar
		}
		return MaxScalar
	}
	result := (hi << Shift) | (lo >> Shift)
	if result > math.MaxInt64 {
		if negative {
			return MinScalar
		}
		return MaxScalar
	}

	if negative {
		return Scalar(-int64(result))
	}
	return Scalar(result)
}

// Div returns s/o, truncated toward zero. Division by zero saturates to
// MaxScalar/MinScalar by the sign of s rather than producing a NaN-like
// sentinel; callers that must reject degenerate input check o themselves.
func (s Scalar) Div(o Scalar) Scalar {
	a, b := int64(s), int64(o)
	if b == 0 {
		if a < 0 {
			return MinScalar
		}
		return MaxScalar
	}
	negative := (a < 0) != (b < 0)
	ua, ub := uint64(a), uint64(b)
	if a < 0 {
		ua = uint64(-a)
	}
	if b < 0 {
		ub = uint64(-b)
	}

	// a << 32 as a 128-bit dividend
	hi := ua >> Shift
	lo := ua << Shift

	// Quotient will not fit in 64 bits
	if hi >= ub {
		if negative {
			return MinScalar
		}
		return MaxScalar
	}

	quo, _ := bits.Div64(hi, lo, ub)
	if quo > math.MaxInt64 {
		if negative {
			return MinScalar
		}
		return MaxScalar
	}

	if negative {
		return Scalar(-int64(quo))
	}
	return Scalar(quo)
}

// Sqrt returns the exact floor square root: the largest q with q*q <= s.
// Digit-by-digit over the 128-bit value s<<32, so the result is a pure
// function of the input bits. Negative input returns 0.
func (s Scalar) Sqrt() Scalar {
	if s <= 0 {
		return 0
	}
	nhi := uint64(s) >> Shift
	nlo := uint64(s) << Shift

	// sqrt(2^63 << 32) < 2^48, so 48 result bits suffice
	var res uint64
	for bit := 47; bit >= 0; bit-- {
		cand := res | 1<<uint(bit)
		phi, plo := bits.Mul64(cand, cand)
		if phi < nhi || (phi == nhi && plo <= nlo) {
			res = cand
		}
	}
	return Scalar(res)
}
