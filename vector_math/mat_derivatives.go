package vector_math

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// All rotations below use the full angle in radians and share one sign convention: a
// positive angle about Y turns +X towards +Z (the front face of a cube moves to where
// its east face was).

func NewRotX(rad float64) Mat4 {
	var m Mat4
	m[0][0] = 1
	m[1][1] = math.Cos(rad)
	m[1][2] = -math.Sin(rad)
	m[2][1] = math.Sin(rad)
	m[2][2] = math.Cos(rad)
	m[3][3] = 1
	return m
}

func NewRotY(rad float64) Mat4 {
	var m Mat4
	m[0][0] = math.Cos(rad)
	m[0][2] = math.Sin(rad)
	m[1][1] = 1
	m[2][0] = -math.Sin(rad)
	m[2][2] = math.Cos(rad)
	m[3][3] = 1
	return m
}

func NewRotZ(rad float64) Mat4 {
	var m Mat4
	m[0][0] = math.Cos(rad)
	m[0][1] = -math.Sin(rad)
	m[1][0] = math.Sin(rad)
	m[1][1] = math.Cos(rad)
	m[2][2] = 1
	m[3][3] = 1
	return m
}

// NewRotXYZ rotates about X first, then Y, then Z.
func NewRotXYZ(x, y, z float64) Mat4 {
	return NewRotZ(z).Mul(NewRotY(y).Mul(NewRotX(x)))
}

func NewUnitMat() Mat4 {
	return NewScale(1)
}

// NewRotation rotates about an arbitrary axis with the same sign convention as
// NewRotX, NewRotY and NewRotZ.
func NewRotation(rad float64, axis Vertex) Mat4 {
	a := mgl64.Vec3(axis.Array())
	if a.Len() == 0 {
		return NewUnitMat()
	}
	return FromMgl(mgl64.HomogRotate3D(-rad, a.Normalize()))
}

// NewScale scales x, y and z by factor and keeps w at 1.
func NewScale(factor float64) Mat4 {
	return NewScale4(factor, factor, factor, 1)
}

// NewScale4 builds a diagonal matrix. w ends up in [3][3], the constant term of the
// projective w in VecMul, so anything but 1 also scales the point after the divide.
func NewScale4(x, y, z, w float64) Mat4 {
	var sm Mat4
	sm[0][0] = x
	sm[1][1] = y
	sm[2][2] = z
	sm[3][3] = w
	return sm
}

func NewTranslation(x, y, z float64) Mat4 {
	tm := NewScale(1)
	tm[3][0] = x
	tm[3][1] = y
	tm[3][2] = z
	return tm
}

func NewTranslationV(t Vertex) Mat4 {
	return NewTranslation(t.X, t.Y, t.Z)
}

// NewProjection3D builds a perspective projection from a field of view in degrees.
// Note the argument order: far comes before near.
//
// Camera-space z ends up as w, so points at z == 0 are not divided.
func NewProjection3D(fovDeg, aspect, far, near float64) Mat4 {
	f := 1 / math.Tan(ToRad(fovDeg)/2)
	var m Mat4
	m[0][0] = f * aspect
	m[1][1] = f
	m[2][2] = (far + near) / (far - near)
	m[2][3] = 1
	m[3][2] = (2 * near * far) / (near - far)
	return m
}

// NewLookAt builds a view matrix for a camera at pos looking at target. Camera space
// looks down +Z with +Y up, matching NewProjection3D.
func NewLookAt(pos Vertex, target Vertex, up Vertex) Mat4 {
	// construct orthonormal basis vectors
	w := target.Sub(pos).Norm()
	if w.Len() == 0 {
		w = Vertex{Z: 1}
	}
	u := up.Cross(w).Norm()
	v := w.Cross(u)
	m := NewUnitMat()
	m[0][0] = u.X
	m[1][0] = u.Y
	m[2][0] = u.Z
	m[0][1] = v.X
	m[1][1] = v.Y
	m[2][1] = v.Z
	m[0][2] = w.X
	m[1][2] = w.Y
	m[2][2] = w.Z
	m[3][0] = -u.Dot(pos)
	m[3][1] = -v.Dot(pos)
	m[3][2] = -w.Dot(pos)
	return m
}
