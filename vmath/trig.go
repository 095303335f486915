package vmath

// Angle constants in Q32.32 radians. Pi is the canonical compile-time
// constant; HalfPi and TwoPi are derived from it so range reduction and
// quadrant folding stay self-consistent to the last bit.
const (
	Pi     Scalar = 13493037705 // round(pi * 2^32)
	HalfPi Scalar = Pi / 2
	TwoPi  Scalar = Pi * 2
)

// cordicIterations bounds the rotation error by atan(2^-31), one part in 2^31.
const cordicIterations = 32

// cordicAtan[i] = round(atan(2^-i) * 2^32)
var cordicAtan = [cordicIterations]int64{
	3373259426, 1991351318, 1052175346, 534100635,
	268086748, 134174063, 67103403, 33553749,
	16777131, 8388597, 4194303, 2097152,
	1048576, 524288, 262144, 131072,
	65536, 32768, 16384, 8192,
	4096, 2048, 1024, 512,
	256, 128, 64, 32,
	16, 8, 4, 2,
}

// cordicInvGain = round(2^32 / K) where K is the CORDIC gain for 32 iterations.
const cordicInvGain int64 = 2608131496

// Sin returns the sine of angle a in radians.
func Sin(a Scalar) Scalar {
	_, sin := SinCos(a)
	return sin
}

// Cos returns the cosine of angle a in radians.
func Cos(a Scalar) Scalar {
	cos, _ := SinCos(a)
	return cos
}

// SinCos returns cos(a) and sin(a) in one CORDIC pass. Cardinal angles
// (multiples of the reduced 0, ±HalfPi, ±Pi) produce exact 0/±One so that
// rotations by quarter turns are lossless.
func SinCos(a Scalar) (cos, sin Scalar) {
	r := a % TwoPi
	if r > Pi {
		r -= TwoPi
	} else if r < -Pi {
		r += TwoPi
	}

	switch r {
	case 0:
		return One, 0
	case Pi, -Pi:
		return -One, 0
	case HalfPi:
		return 0, One
	case -HalfPi:
		return 0, -One
	}

	// Fold into the CORDIC convergence range [-HalfPi, HalfPi]
	if r > HalfPi {
		c, s := cordicRotate(int64(r - Pi))
		return Scalar(-c), Scalar(-s)
	}
	if r < -HalfPi {
		c, s := cordicRotate(int64(r + Pi))
		return Scalar(-c), Scalar(-s)
	}
	c, s := cordicRotate(int64(r))
	return Scalar(c), Scalar(s)
}

// cordicRotate runs CORDIC in rotation mode for z in [-HalfPi, HalfPi].
func cordicRotate(z int64) (cos, sin int64) {
	x, y := cordicInvGain, int64(0)
	for i := 0; i < cordicIterations; i++ {
		var nx, ny int64
		if z >= 0 {
			nx = x - (y >> uint(i))
			ny = y + (x >> uint(i))
			z -= cordicAtan[i]
		} else {
			nx = x + (y >> uint(i))
			ny = y - (x >> uint(i))
			z += cordicAtan[i]
		}
		x, y = nx, ny
	}
	return x, y
}

// cordicPrescale keeps the vectoring iterations inside int64: shifting both
// components equally preserves the angle.
const cordicPrescale int64 = 1 << 45

// Atan2 returns the angle of the vector (x, y) in radians, range (-Pi, Pi],
// following the standard quadrant convention. Axis-aligned inputs return the
// exact cardinal angles; Atan2(0, 0) is defined as 0.
func Atan2(y, x Scalar) Scalar {
	if x == 0 {
		if y == 0 {
			return 0
		}
		if y > 0 {
			return HalfPi
		}
		return -HalfPi
	}
	if y == 0 {
		if x > 0 {
			return 0
		}
		return Pi
	}

	xi, yi := int64(x), int64(y)
	for xi >= cordicPrescale || xi <= -cordicPrescale ||
		yi >= cordicPrescale || yi <= -cordicPrescale {
		xi >>= 1
		yi >>= 1
	}

	// Rotate left half-plane inputs by Pi so vectoring starts with x > 0
	flip, negHalf := false, false
	if xi < 0 {
		flip = true
		negHalf = yi < 0
		xi, yi = -xi, -yi
	}

	var z int64
	for i := 0; i < cordicIterations; i++ {
		var nx, ny int64
		if yi >= 0 {
			nx = xi + (yi >> uint(i))
			ny = yi - (xi >> uint(i))
			z += cordicAtan[i]
		} else {
			nx = xi - (yi >> uint(i))
			ny = yi + (xi >> uint(i))
			z -= cordicAtan[i]
		}
		xi, yi = nx, ny
	}

	if flip {
		if negHalf {
			return Scalar(z - int64(Pi))
		}
		return Scalar(z + int64(Pi))
	}
	return Scalar(z)
}
