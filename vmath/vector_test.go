package vmath

import (
	"errors"
	"testing"
)

func TestVec2ZeroAndConstruction(t *testing.T) {
	z := Zero()
	if z.X != 0 || z.Y != 0 {
		t.Errorf("Zero() = (%d, %d)", z.X, z.Y)
	}
	v := NewVec2(FromInt(1), FromInt(2))
	if v.X != FromInt(1) || v.Y != FromInt(2) {
		t.Errorf("NewVec2 = (%d, %d)", v.X, v.Y)
	}
}

func TestVec2AddSub(t *testing.T) {
	a := NewVec2(FromInt(1), FromInt(2))
	b := NewVec2(FromInt(3), FromInt(-4))

	sum := a.Add(b)
	if sum != NewVec2(FromInt(4), FromInt(-2)) {
		t.Errorf("Add = (%d, %d)", sum.X, sum.Y)
	}

	diff := a.Sub(b)
	if diff != NewVec2(FromInt(-2), FromInt(6)) {
		t.Errorf("Sub = (%d, %d)", diff.X, diff.Y)
	}

	// Operands are untouched: pure value semantics
	if a != NewVec2(FromInt(1), FromInt(2)) {
		t.Errorf("operand mutated: (%d, %d)", a.X, a.Y)
	}
}

func TestVec2DotCross(t *testing.T) {
	a := NewVec2(FromInt(1), FromInt(2))
	b := NewVec2(FromInt(3), FromInt(4))
	if got := a.Dot(b); got != FromInt(11) {
		t.Errorf("Dot = %d, want %d", got, FromInt(11))
	}

	ex := NewVec2(One, 0)
	ey := NewVec2(0, One)
	if got := ex.Cross(ey); got != One {
		t.Errorf("Cross(ex, ey) = %d, want One", got)
	}
	if got := ey.Cross(ex); got != -One {
		t.Errorf("Cross(ey, ex) = %d, want -One", got)
	}
}

func TestVec2LengthSquared(t *testing.T) {
	v := NewVec2(FromInt(3), FromInt(4))
	if got := v.LengthSquared(); got != FromInt(25) {
		t.Errorf("LengthSquared = %d, want %d", got, FromInt(25))
	}
	if got := v.Length(); got != FromInt(5) {
		t.Errorf("Length = %d, want %d", got, FromInt(5))
	}
}

func TestVec2RotateQuarterTurnExact(t *testing.T) {
	v := NewVec2(One, 0)

	up := v.Rotate(HalfPi)
	if up != NewVec2(0, One) {
		t.Errorf("rotate CCW quarter = (%d, %d), want (0, One)", up.X, up.Y)
	}

	back := v.Rotate(Pi)
	if back != NewVec2(-One, 0) {
		t.Errorf("rotate half = (%d, %d), want (-One, 0)", back.X, back.Y)
	}

	down := v.Rotate(-HalfPi)
	if down != NewVec2(0, -One) {
		t.Errorf("rotate CW quarter = (%d, %d), want (0, -One)", down.X, down.Y)
	}
}

func TestVec2RotateGoldenValue(t *testing.T) {
	v := NewVec2(FromInt(1), FromInt(2))
	got := v.Rotate(One) // one radian
	want := NewVec2(-4907599979, 8255251832)
	if got != want {
		t.Errorf("Rotate(1 rad) = (%d, %d), want (%d, %d)", got.X, got.Y, want.X, want.Y)
	}
}

func TestVec2NormalizeExactRawValues(t *testing.T) {
	v := NewVec2(FromInt(3), FromInt(4))
	n, err := v.Normalize()
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}

	// 3/5 and 4/5 truncated to Q32.32
	want := NewVec2(2576980377, 3435973836)
	if n != want {
		t.Errorf("Normalize = (%d, %d), want (%d, %d)", n.X, n.Y, want.X, want.Y)
	}

	// Truncation in Div costs 3 ulp off One here; the exact raw value is
	// what every replica must agree on.
	if got := n.LengthSquared(); got != 4294967293 {
		t.Errorf("normalized LengthSquared = %d, want 4294967293", got)
	}
}

func TestVec2NormalizeZeroVector(t *testing.T) {
	_, err := Zero().Normalize()
	if !errors.Is(err, ErrZeroVector) {
		t.Fatalf("Normalize(zero) err = %v, want ErrZeroVector", err)
	}
}

func TestVec2PolarRoundTrip(t *testing.T) {
	// Unit vector straight up survives polar construction exactly
	up := Vec2FromPolar(One, HalfPi)
	if up != NewVec2(0, One) {
		t.Errorf("FromPolar(1, pi/2) = (%d, %d)", up.X, up.Y)
	}

	r, theta := NewVec2(One, One).ToPolar()
	if r != 6074000999 { // floor(sqrt(2) * 2^32)
		t.Errorf("ToPolar r = %d, want 6074000999", r)
	}
	if theta != 3373259427 { // ~pi/4
		t.Errorf("ToPolar theta = %d, want 3373259427", theta)
	}

	r2, theta2 := NewVec2(-One, 0).ToPolar()
	if r2 != One || theta2 != Pi {
		t.Errorf("ToPolar(-1, 0) = (%d, %d), want (One, Pi)", r2, theta2)
	}
}
