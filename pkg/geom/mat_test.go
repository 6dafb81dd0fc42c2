package geom

import (
	"math"
	"testing"
)

func TestTranslationColumn(t *testing.T) {
	m := NewTranslation(Vec3{X: 1.5, Y: 2.4, Z: -3})
	if got := m.Translation(); got != (Vec3{X: 1.5, Y: 2.4, Z: -3}) {
		t.Errorf("Translation() = %v", got)
	}
}

func TestIdentityMulVec(t *testing.T) {
	v := Vec3{X: 1, Y: 2, Z: 3}
	if got := Identity().MulVec(v); got != v {
		t.Errorf("Identity().MulVec(%v) = %v", v, got)
	}
}

func TestMulVecTranslatesPoints(t *testing.T) {
	m := NewTranslation(Vec3{X: 10, Y: 0, Z: -2})
	got := m.MulVec(Vec3{X: 1, Y: 1, Z: 1})
	want := Vec3{X: 11, Y: 1, Z: -1}
	if got != want {
		t.Errorf("MulVec() = %v, want %v", got, want)
	}
}

func TestRotationYQuarterTurn(t *testing.T) {
	m := RotationY(90)
	got := m.MulVec(Vec3{X: 1, Y: 0, Z: 0})
	// +X rotates into -Z for a right-handed Y rotation.
	want := Vec3{X: 0, Y: 0, Z: -1}
	if !vecClose(got, want, 1e-12) {
		t.Errorf("RotationY(90).MulVec(+X) = %v, want %v", got, want)
	}
}

func TestEulerAnglesRoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		x, y, z float64
	}{
		{"identity", 0, 0, 0},
		{"yaw only", 0, 30, 0},
		{"roll only", 45, 0, 0},
		{"pitch only", 0, 0, 60},
		{"combined", 10, -20, 35},
		{"negative", -15, 25, -40},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := RotationZ(tt.z).Mul(RotationY(tt.y)).Mul(RotationX(tt.x))
			x, y, z := m.EulerAngles()
			if math.Abs(x-tt.x) > 1e-9 || math.Abs(y-tt.y) > 1e-9 || math.Abs(z-tt.z) > 1e-9 {
				t.Errorf("EulerAngles() = (%v, %v, %v), want (%v, %v, %v)", x, y, z, tt.x, tt.y, tt.z)
			}
		})
	}
}

func TestEulerAnglesWithTranslation(t *testing.T) {
	// Translation must not affect the rotation decomposition.
	m := NewTranslation(Vec3{X: 5, Y: 1, Z: -2}).Mul(RotationY(40))
	x, y, z := m.EulerAngles()
	if math.Abs(x) > 1e-9 || math.Abs(y-40) > 1e-9 || math.Abs(z) > 1e-9 {
		t.Errorf("EulerAngles() = (%v, %v, %v), want (0, 40, 0)", x, y, z)
	}
}

func TestScaleFactors(t *testing.T) {
	m := Identity()
	m[0][0] = 2
	m[1][1] = 3
	m[2][2] = 0.5
	got := m.ScaleFactors()
	want := Vec3{X: 2, Y: 3, Z: 0.5}
	if !vecClose(got, want, 1e-12) {
		t.Errorf("ScaleFactors() = %v, want %v", got, want)
	}
}

func vecClose(a, b Vec3, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol && math.Abs(a.Z-b.Z) <= tol
}
