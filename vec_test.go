package view3d

import (
	"math"
	"testing"
)

func TestVector3_Creation(t *testing.T) {
	tests := []struct {
		name    string
		x, y, z float64
	}{
		{"zero", 0, 0, 0},
		{"positive", 3, 4, 5},
		{"negative", -1, -2, -3},
		{"mixed", -5, 10, -15},
		{"fractional", 1.5, 2.5, 3.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := V3(tt.x, tt.y, tt.z)
			if v.X != tt.x || v.Y != tt.y || v.Z != tt.z {
				t.Errorf("V3(%v, %v, %v) = %v", tt.x, tt.y, tt.z, v)
			}
		})
	}
}

func TestVector3_AddSub(t *testing.T) {
	tests := []struct {
		name     string
		v, w     Vector3
		sum, dif Vector3
	}{
		{"zero", V3(0, 0, 0), V3(0, 0, 0), V3(0, 0, 0), V3(0, 0, 0)},
		{"positive", V3(1, 2, 3), V3(4, 5, 6), V3(5, 7, 9), V3(-3, -3, -3)},
		{"mixed", V3(1, -2, 3), V3(-4, 5, -6), V3(-3, 3, -3), V3(5, -7, 9)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Add(tt.w); !got.Approx(tt.sum, 1e-10) {
				t.Errorf("%v.Add(%v) = %v, want %v", tt.v, tt.w, got, tt.sum)
			}
			if got := tt.v.Sub(tt.w); !got.Approx(tt.dif, 1e-10) {
				t.Errorf("%v.Sub(%v) = %v, want %v", tt.v, tt.w, got, tt.dif)
			}
		})
	}
}

func TestVector3_Scale(t *testing.T) {
	tests := []struct {
		name   string
		v      Vector3
		s      float64
		expect Vector3
	}{
		{"zero scalar", V3(1, 2, 3), 0, V3(0, 0, 0)},
		{"identity", V3(1, 2, 3), 1, V3(1, 2, 3)},
		{"double", V3(1, 2, 3), 2, V3(2, 4, 6)},
		{"negative", V3(1, 2, 3), -1, V3(-1, -2, -3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Scale(tt.s); !got.Approx(tt.expect, 1e-10) {
				t.Errorf("%v.Scale(%v) = %v, want %v", tt.v, tt.s, got, tt.expect)
			}
		})
	}
}

func TestVector3_DotCross(t *testing.T) {
	x := V3(1, 0, 0)
	y := V3(0, 1, 0)
	z := V3(0, 0, 1)

	if got := x.Dot(y); got != 0 {
		t.Errorf("x.Dot(y) = %v, want 0", got)
	}
	if got := x.Dot(x); got != 1 {
		t.Errorf("x.Dot(x) = %v, want 1", got)
	}
	// Right-handed: x cross y = z, y cross z = x, z cross x = y.
	if got := x.Cross(y); !got.Approx(z, 1e-10) {
		t.Errorf("x.Cross(y) = %v, want %v", got, z)
	}
	if got := y.Cross(z); !got.Approx(x, 1e-10) {
		t.Errorf("y.Cross(z) = %v, want %v", got, x)
	}
	if got := z.Cross(x); !got.Approx(y, 1e-10) {
		t.Errorf("z.Cross(x) = %v, want %v", got, y)
	}
}

func TestVector3_Length(t *testing.T) {
	v := V3(3, 4, 0)
	if got := v.Length(); got != 5 {
		t.Errorf("Length() = %v, want 5", got)
	}
	if got := v.LengthSq(); got != 25 {
		t.Errorf("LengthSq() = %v, want 25", got)
	}
}

func TestVector3_Normalize(t *testing.T) {
	v := V3(3, 4, 0).Normalize()
	if math.Abs(v.Length()-1) > 1e-10 {
		t.Errorf("normalized length = %v, want 1", v.Length())
	}
	if !v.Approx(V3(0.6, 0.8, 0), 1e-10) {
		t.Errorf("Normalize() = %v, want (0.6, 0.8, 0)", v)
	}

	// Zero vector normalizes to zero, not NaN.
	if got := V3(0, 0, 0).Normalize(); got != (Vector3{}) {
		t.Errorf("zero Normalize() = %v, want zero", got)
	}
}

func TestVector3_Lerp(t *testing.T) {
	a := V3(0, 0, 0)
	b := V3(10, 20, 30)

	if got := a.Lerp(b, 0); !got.Approx(a, 1e-10) {
		t.Errorf("Lerp(0) = %v, want %v", got, a)
	}
	if got := a.Lerp(b, 1); !got.Approx(b, 1e-10) {
		t.Errorf("Lerp(1) = %v, want %v", got, b)
	}
	if got := a.Lerp(b, 0.5); !got.Approx(V3(5, 10, 15), 1e-10) {
		t.Errorf("Lerp(0.5) = %v, want (5, 10, 15)", got)
	}
}

func TestVector3_Distance(t *testing.T) {
	if got := V3(1, 1, 1).Distance(V3(1, 1, 1)); got != 0 {
		t.Errorf("Distance to self = %v, want 0", got)
	}
	if got := V3(0, 0, 0).Distance(V3(3, 4, 0)); got != 5 {
		t.Errorf("Distance = %v, want 5", got)
	}
}
