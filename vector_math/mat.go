package vector_math

import (
	"fmt"
	"math"
	"strings"
	"unsafe"

	"github.com/go-gl/mathgl/mgl64"
)

// Mat4 is a 4x4 homogeneous transformation matrix indexed as [row][col].
//
// Points are treated as row vectors multiplied on the left, so translation lives in
// row 3 and the projective w of a transformed point is read from column 3. The zero
// value is the all-zero matrix, not the identity.
type Mat4 [4][4]float64

func (m Mat4) At(r, c int) float64 {
	return m[r][c]
}

func (m *Mat4) Set(r, c int, v float64) {
	m[r][c] = v
}

// VecMul applies m to v:
//
//	out[i] = v.X*m[0][i] + v.Y*m[1][i] + v.Z*m[2][i] + m[3][i]
//	w      = v.X*m[0][3] + v.Y*m[1][3] + v.Z*m[2][3] + m[3][3]
//
// and divides the result by w. When w is 0 the divide is skipped and the undivided
// point is returned, which may lie anywhere (including at infinity once mapped to the
// screen). Callers drawing such points must tolerate that.
func (m Mat4) VecMul(v Vertex) Vertex {
	out := Vertex{
		X: v.X*m[0][0] + v.Y*m[1][0] + v.Z*m[2][0] + m[3][0],
		Y: v.X*m[0][1] + v.Y*m[1][1] + v.Z*m[2][1] + m[3][1],
		Z: v.X*m[0][2] + v.Y*m[1][2] + v.Z*m[2][2] + m[3][2],
	}
	w := v.X*m[0][3] + v.Y*m[1][3] + v.Z*m[2][3] + m[3][3]
	if w != 0 {
		out.X /= w
		out.Y /= w
		out.Z /= w
	}
	return out
}

// Mul composes two transforms. The result applies b first and m second:
//
//	m.Mul(b).VecMul(p) == m.VecMul(b.VecMul(p))
//
// With row vectors this is the plain matrix product b·m.
func (m Mat4) Mul(b Mat4) Mat4 {
	var c Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			for k := 0; k < 4; k++ {
				c[i][j] += b[i][k] * m[k][j]
			}
		}
	}
	return c
}

func (m Mat4) Transpose() Mat4 {
	var mT Mat4
	for i := range m {
		for j := range m[i] {
			mT[j][i] = m[i][j]
		}
	}
	return mT
}

func (m Mat4) Equals(b Mat4) bool {
	return m == b
}

func (m Mat4) ApproxEquals(b Mat4, eps float64) bool {
	for i := range m {
		for j := range m[i] {
			if math.Abs(m[i][j]-b[i][j]) > eps {
				return false
			}
		}
	}
	return true
}

// FromVertex promotes v to a diagonal matrix holding X, Y and Z on [0][0], [1][1]
// and [2][2]; [3][3] stays 0.
func FromVertex(v Vertex) Mat4 {
	var m Mat4
	m[0][0] = v.X
	m[1][1] = v.Y
	m[2][2] = v.Z
	return m
}

// ToVertex reads the first three diagonal entries back into a vertex. Every
// off-diagonal entry is ignored.
func (m Mat4) ToVertex() Vertex {
	return Vertex{X: m[0][0], Y: m[1][1], Z: m[2][2]}
}

// Mgl converts m to a mathgl matrix describing the same transform for column
// vectors. mathgl stores column-major, which puts our row-major layout (the transpose)
// into the exact same slots.
func (m Mat4) Mgl() mgl64.Mat4 {
	var out mgl64.Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			out[r*4+c] = m[r][c]
		}
	}
	return out
}

func FromMgl(g mgl64.Mat4) Mat4 {
	var m Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			m[r][c] = g[r*4+c]
		}
	}
	return m
}

// Description functions

func (m Mat4) ByteSize() int {
	return int(unsafe.Sizeof(m[0][0])) * 16
}

func (m Mat4) Unroll() []float64 {
	f := make([]float64, 16)
	for i := range f {
		f[i] = m[i/4][i%4]
	}
	return f
}

func (m Mat4) ToString() string {
	mStr := strings.Builder{}
	for i := range m {
		if i > 0 {
			mStr.WriteString("\n")
		}
		mStr.WriteString(fmt.Sprintf("%v", m[i]))
	}
	return mStr.String()
}

func (m Mat4) Describe() string {
	return fmt.Sprintf(
		"4x4 Matrix, %d Bytes in memory:\n%s",
		m.ByteSize(), m.ToString(),
	)
}
