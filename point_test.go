package chartx

import (
	"testing"

	"github.com/chewxy/math32"
)

const epsilon = 1e-5

func TestPointArithmetic(t *testing.T) {
	a := Pt(3, 4)
	b := Pt(1, 2)

	if got := a.Add(b); got != Pt(4, 6) {
		t.Errorf("Add = %v", got)
	}
	if got := a.Sub(b); got != Pt(2, 2) {
		t.Errorf("Sub = %v", got)
	}
	if got := a.Mul(2); got != Pt(6, 8) {
		t.Errorf("Mul = %v", got)
	}
	if got := a.Dot(b); got != 11 {
		t.Errorf("Dot = %v, want 11", got)
	}
	if got := a.Cross(b); got != 2 {
		t.Errorf("Cross = %v, want 2", got)
	}
}

func TestPointLengthDistance(t *testing.T) {
	p := Pt(3, 4)
	if got := p.Length(); math32.Abs(got-5) > epsilon {
		t.Errorf("Length = %v, want 5", got)
	}
	if got := p.LengthSquared(); got != 25 {
		t.Errorf("LengthSquared = %v, want 25", got)
	}
	if got := Pt(1, 1).Distance(Pt(4, 5)); math32.Abs(got-5) > epsilon {
		t.Errorf("Distance = %v, want 5", got)
	}
}

func TestPointLerp(t *testing.T) {
	a := Pt(0, 0)
	b := Pt(10, 20)

	if got := a.Lerp(b, 0); got != a {
		t.Errorf("Lerp(0) = %v", got)
	}
	if got := a.Lerp(b, 1); got != b {
		t.Errorf("Lerp(1) = %v", got)
	}
	mid := a.Lerp(b, 0.5)
	if math32.Abs(mid.X-5) > epsilon || math32.Abs(mid.Y-10) > epsilon {
		t.Errorf("Lerp(0.5) = %v", mid)
	}
}

func TestPointIsNaN(t *testing.T) {
	if Pt(1, 2).IsNaN() {
		t.Error("finite point reported NaN")
	}
	if !Pt(math32.NaN(), 2).IsNaN() {
		t.Error("NaN x not detected")
	}
	if !Pt(1, math32.NaN()).IsNaN() {
		t.Error("NaN y not detected")
	}
}
