package vmath

import "testing"

func TestScalarIntConversionRoundTrip(t *testing.T) {
	for _, i := range []int{0, 1, -1, 42, -1000, 1 << 20} {
		if got := FromInt(i).Int(); got != i {
			t.Errorf("FromInt(%d).Int() = %d", i, got)
		}
	}
}

func TestScalarMulExactIntegers(t *testing.T) {
	if got := FromInt(3).Mul(FromInt(4)); got != FromInt(12) {
		t.Errorf("3*4 = %d, want %d", got, FromInt(12))
	}
	if got := FromInt(-3).Mul(FromInt(4)); got != FromInt(-12) {
		t.Errorf("-3*4 = %d, want %d", got, FromInt(-12))
	}
}

func TestScalarMulFractional(t *testing.T) {
	// 1.5 * 2.5 = 3.75, exact in binary fixed point
	a := One + Half
	b := FromInt(2) + Half
	want := Scalar(16106127360) // 3.75 * 2^32
	if got := a.Mul(b); got != want {
		t.Errorf("1.5*2.5 = %d, want %d", got, want)
	}
	if got := a.Neg().Mul(b); got != -want {
		t.Errorf("-1.5*2.5 = %d, want %d", got, -want)
	}
}

func TestScalarDivTruncatesTowardZero(t *testing.T) {
	// 3/5 = 0.6; Q32.32 truncates the repeating binary fraction
	want := Scalar(2576980377) // floor(3 * 2^32 / 5)
	if got := FromInt(3).Div(FromInt(5)); got != want {
		t.Errorf("3/5 = %d, want %d", got, want)
	}
	if got := FromInt(-3).Div(FromInt(5)); got != -want {
		t.Errorf("-3/5 = %d, want %d", got, -want)
	}
}

func TestScalarDivByZeroSaturates(t *testing.T) {
	if got := FromInt(1).Div(0); got != MaxScalar {
		t.Errorf("1/0 = %d, want MaxScalar", got)
	}
	if got := FromInt(-1).Div(0); got != MinScalar {
		t.Errorf("-1/0 = %d, want MinScalar", got)
	}
}

func TestScalarFloor(t *testing.T) {
	cases := []struct {
		in   Scalar
		want Scalar
	}{
		{FromFloat(2.75), FromInt(2)},
		{FromFloat(-1.5), FromInt(-2)},
		{FromInt(3), FromInt(3)},
		{Half, 0},
		{-Half, FromInt(-1)},
	}
	for _, c := range cases {
		if got := c.in.Floor(); got != c.want {
			t.Errorf("Floor(%d) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestScalarClamp(t *testing.T) {
	lo, hi := FromInt(0), FromInt(10)
	if got := FromInt(-5).Clamp(lo, hi); got != lo {
		t.Errorf("clamp below = %d, want %d", got, lo)
	}
	if got := FromInt(15).Clamp(lo, hi); got != hi {
		t.Errorf("clamp above = %d, want %d", got, hi)
	}
	if got := FromInt(5).Clamp(lo, hi); got != FromInt(5) {
		t.Errorf("clamp inside = %d, want %d", got, FromInt(5))
	}
}

func TestScalarSqrtExactSquares(t *testing.T) {
	if got := FromInt(25).Sqrt(); got != FromInt(5) {
		t.Errorf("sqrt(25) = %d, want %d", got, FromInt(5))
	}
	if got := FromInt(144).Sqrt(); got != FromInt(12) {
		t.Errorf("sqrt(144) = %d, want %d", got, FromInt(12))
	}
}

func TestScalarSqrtIrrational(t *testing.T) {
	// floor(sqrt(2) * 2^32)
	if got := FromInt(2).Sqrt(); got != Scalar(6074000999) {
		t.Errorf("sqrt(2) = %d, want 6074000999", got)
	}
	// floor(sqrt(0.5) * 2^32)
	if got := Half.Sqrt(); got != Scalar(3037000499) {
		t.Errorf("sqrt(0.5) = %d, want 3037000499", got)
	}
	// smallest representable magnitudes still produce the exact floor root
	if got := Scalar(2).Sqrt(); got != Scalar(92681) {
		t.Errorf("sqrt(2ulp) = %d, want 92681", got)
	}
}

func TestScalarSqrtDegenerate(t *testing.T) {
	if got := Scalar(0).Sqrt(); got != 0 {
		t.Errorf("sqrt(0) = %d, want 0", got)
	}
	if got := FromInt(-4).Sqrt(); got != 0 {
		t.Errorf("sqrt(-4) = %d, want 0", got)
	}
}

// TestScalarDeterministicSequence runs the same mixed operation chain twice
// and demands exact equality. This is the load-bearing property of the whole
// package: no approximate comparison, ever.
func TestScalarDeterministicSequence(t *testing.T) {
	run := func() Scalar {
		acc := FromInt(1)
		for i := 1; i <= 50; i++ {
			s := FromInt(i)
			acc = acc.Mul(s).Add(s.Sqrt()).Div(s + Half).Sub(Sin(s))
		}
		return acc
	}

	first := run()
	second := run()
	if first != second {
		t.Fatalf("identical sequences diverged: %d vs %d", first, second)
	}
}
