package math

import "math"

// Mat4 is a 4x4 matrix stored column-major, as OpenGL expects it.
// Element i sits at row i%4, column i/4:
//
//	[m0 m4 m8  m12]
//	[m1 m5 m9  m13]
//	[m2 m6 m10 m14]
//	[m3 m7 m11 m15]
type Mat4 [16]float32

// Vec4 is a homogeneous 4-component vector.
type Vec4 [4]float32

// Identity returns the identity matrix.
func Identity() Mat4 {
	var m Mat4
	m[0], m[5], m[10], m[15] = 1, 1, 1, 1
	return m
}

// Perspective returns a right-handed projection mapping view depth
// [-near, -far] onto NDC [-1, 1]. fovY is in radians.
func Perspective(fovY, aspect, near, far float32) Mat4 {
	f := float32(1 / math.Tan(float64(fovY)/2))
	nf := 1 / (near - far)

	var m Mat4
	m[0] = f / aspect
	m[5] = f
	m[10] = (far + near) * nf
	m[11] = -1
	m[14] = 2 * far * near * nf
	return m
}

func sincos(angle float32) (s, c float32) {
	sn, cs := math.Sincos(float64(angle))
	return float32(sn), float32(cs)
}

// RotateX returns a rotation of angle radians about +X.
func RotateX(angle float32) Mat4 {
	s, c := sincos(angle)
	m := Identity()
	m[5], m[6] = c, s
	m[9], m[10] = -s, c
	return m
}

// RotateY returns a rotation of angle radians about +Y.
func RotateY(angle float32) Mat4 {
	s, c := sincos(angle)
	m := Identity()
	m[0], m[2] = c, -s
	m[8], m[10] = s, c
	return m
}

// Mul returns m * o; o is applied first.
func (m Mat4) Mul(o Mat4) Mat4 {
	var r Mat4
	for col := 0; col < 4; col++ {
		v := m.MulVec4(Vec4{o[col*4], o[col*4+1], o[col*4+2], o[col*4+3]})
		copy(r[col*4:col*4+4], v[:])
	}
	return r
}

// ScaleDiagonal multiplies m0, m5 and m10 by s in place. Translation and
// the off-diagonal rotation cells are left as they are.
func (m *Mat4) ScaleDiagonal(s float32) {
	m[0] *= s
	m[5] *= s
	m[10] *= s
}

// MulVec4 returns m * v.
func (m Mat4) MulVec4(v Vec4) Vec4 {
	var r Vec4
	for row := 0; row < 4; row++ {
		r[row] = m[row]*v[0] + m[4+row]*v[1] + m[8+row]*v[2] + m[12+row]*v[3]
	}
	return r
}

// TransformPoint applies m to p with w=1, dividing by the resulting w when
// it is neither 0 nor 1.
func (m Mat4) TransformPoint(p [3]float32) [3]float32 {
	v := m.MulVec4(Vec4{p[0], p[1], p[2], 1})
	if v[3] != 0 && v[3] != 1 {
		return [3]float32{v[0] / v[3], v[1] / v[3], v[2] / v[3]}
	}
	return [3]float32{v[0], v[1], v[2]}
}

// Ptr returns a pointer to the first element for glUniformMatrix4fv.
func (m *Mat4) Ptr() *float32 {
	return &m[0]
}
