package geom

import "math"

// Mat4 is a 4x4 pose transform in row-major order, encoding position,
// orientation and scale in the scan's world coordinate space.
type Mat4 [4][4]float64

// Identity returns the identity transform.
func Identity() Mat4 {
	return Mat4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// NewTranslation returns a pure translation transform.
func NewTranslation(t Vec3) Mat4 {
	m := Identity()
	m[0][3] = t.X
	m[1][3] = t.Y
	m[2][3] = t.Z
	return m
}

// RotationX returns a rotation about the X axis by deg degrees.
func RotationX(deg float64) Mat4 {
	s, c := math.Sincos(deg * math.Pi / 180)
	m := Identity()
	m[1][1], m[1][2] = c, -s
	m[2][1], m[2][2] = s, c
	return m
}

// RotationY returns a rotation about the Y axis by deg degrees.
func RotationY(deg float64) Mat4 {
	s, c := math.Sincos(deg * math.Pi / 180)
	m := Identity()
	m[0][0], m[0][2] = c, s
	m[2][0], m[2][2] = -s, c
	return m
}

// RotationZ returns a rotation about the Z axis by deg degrees.
func RotationZ(deg float64) Mat4 {
	s, c := math.Sincos(deg * math.Pi / 180)
	m := Identity()
	m[0][0], m[0][1] = c, -s
	m[1][0], m[1][1] = s, c
	return m
}

// Mul returns the matrix product m * n.
func (m Mat4) Mul(n Mat4) Mat4 {
	var out Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			sum := 0.0
			for k := 0; k < 4; k++ {
				sum += m[i][k] * n[k][j]
			}
			out[i][j] = sum
		}
	}
	return out
}

// MulVec transforms the point v by m (w = 1).
func (m Mat4) MulVec(v Vec3) Vec3 {
	return Vec3{
		X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z + m[0][3],
		Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z + m[1][3],
		Z: m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z + m[2][3],
	}
}

// Translation returns the translation column of the transform.
func (m Mat4) Translation() Vec3 {
	return Vec3{X: m[0][3], Y: m[1][3], Z: m[2][3]}
}

// ScaleFactors returns the per-axis scale encoded in the transform,
// i.e. the norms of the three basis columns.
func (m Mat4) ScaleFactors() Vec3 {
	return Vec3{
		X: Vec3{X: m[0][0], Y: m[1][0], Z: m[2][0]}.Length(),
		Y: Vec3{X: m[0][1], Y: m[1][1], Z: m[2][1]}.Length(),
		Z: Vec3{X: m[0][2], Y: m[1][2], Z: m[2][2]}.Length(),
	}
}

// EulerAngles decomposes the rotation part of the transform into Euler
// angles (degrees) about X, Y and Z, using the Rz*Ry*Rx convention.
// Scale is divided out of the basis columns before decomposition.
func (m Mat4) EulerAngles() (x, y, z float64) {
	s := m.ScaleFactors()
	sx, sy, sz := s.X, s.Y, s.Z
	if sx == 0 {
		sx = 1
	}
	if sy == 0 {
		sy = 1
	}
	if sz == 0 {
		sz = 1
	}

	r00 := m[0][0] / sx
	r10 := m[1][0] / sx
	r20 := m[2][0] / sx
	r21 := m[2][1] / sy
	r22 := m[2][2] / sz
	r01 := m[0][1] / sy
	r11 := m[1][1] / sy

	const rad2deg = 180 / math.Pi

	if r20 <= -1+1e-9 || r20 >= 1-1e-9 {
		// Gimbal lock: pitch is +-90 degrees, roll and yaw collapse.
		y = -math.Asin(clamp(r20, -1, 1)) * rad2deg
		x = 0
		z = math.Atan2(-r01, r11) * rad2deg
		return x, y, z
	}

	y = -math.Asin(r20) * rad2deg
	x = math.Atan2(r21, r22) * rad2deg
	z = math.Atan2(r10, r00) * rad2deg
	return x, y, z
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
