package vector_math

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

const eps = 1e-9

func randomPoint(r *rand.Rand) Vertex {
	return Vertex{
		X: r.Float64()*200 - 100,
		Y: r.Float64()*200 - 100,
		Z: r.Float64()*200 - 100,
	}
}

// randomAffine returns a random rotation, scale or translation, or a product of them.
func randomAffine(r *rand.Rand) Mat4 {
	switch r.IntN(5) {
	case 0:
		return NewRotX(r.Float64() * 2 * math.Pi)
	case 1:
		return NewRotY(r.Float64() * 2 * math.Pi)
	case 2:
		return NewRotZ(r.Float64() * 2 * math.Pi)
	case 3:
		return NewScale(r.Float64()*4 + 0.1)
	default:
		return NewTranslation(r.Float64()*20-10, r.Float64()*20-10, r.Float64()*20-10)
	}
}

func TestZeroMat(t *testing.T) {
	var m Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if m.At(i, j) != 0 {
				t.Fatalf("zero value should be the all-zero matrix:\n%s", m.ToString())
			}
		}
	}
	if m.ByteSize() != 128 {
		t.Errorf("Mat4 should have byte size: %d but was %d", 128, m.ByteSize())
	}
	m.Set(1, 2, 5)
	if m.At(1, 2) != 5 || m[1][2] != 5 {
		t.Errorf("Set(1, 2) not visible through At: \n%s", m.ToString())
	}
}

func TestRotationX(t *testing.T) {
	mrx := NewRotX(ToRad(90))
	mrxComplex := NewRotation(ToRad(90), Vertex{X: 1})

	if !mrx.ApproxEquals(mrxComplex, eps) {
		t.Errorf(
			"RotX not equal to generic rotation around X. RotX: \n%s\n Rotation around x-axis: \n%s",
			mrx.ToString(),
			mrxComplex.ToString(),
		)
	}
}

func TestRotationY(t *testing.T) {
	mry := NewRotY(ToRad(90))
	mryComplex := NewRotation(ToRad(90), Vertex{Y: 1})

	if !mry.ApproxEquals(mryComplex, eps) {
		t.Errorf(
			"RotY not equal to generic rotation around Y. RotY: \n%s\n Rotation around y-axis: \n%s",
			mry.ToString(),
			mryComplex.ToString(),
		)
	}
}

func TestRotationZ(t *testing.T) {
	mrz := NewRotZ(ToRad(33))
	mrzComplex := NewRotation(ToRad(33), Vertex{Z: 4})

	if !mrz.ApproxEquals(mrzComplex, eps) {
		t.Errorf(
			"RotZ not equal to generic rotation around Z. RotZ: \n%s\n Rotation around z-axis: \n%s",
			mrz.ToString(),
			mrzComplex.ToString(),
		)
	}
}

func TestRotationDirection(t *testing.T) {
	tests := []struct {
		name string
		m    Mat4
		in   Vertex
		want Vertex
	}{
		{"y turns x into z", NewRotY(math.Pi / 2), Vertex{X: 1}, Vertex{Z: 1}},
		{"y turns -z into x", NewRotY(math.Pi / 2), Vertex{Z: -1}, Vertex{X: 1}},
		{"x turns y into -z", NewRotX(math.Pi / 2), Vertex{Y: 1}, Vertex{Z: -1}},
		{"z turns x into -y", NewRotZ(math.Pi / 2), Vertex{X: 1}, Vertex{Y: -1}},
		{"full turn", NewRotX(2 * math.Pi), Vertex{X: 1, Y: 2, Z: 3}, Vertex{X: 1, Y: 2, Z: 3}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.m.VecMul(tc.in)
			if !got.ApproxEquals(tc.want, eps) {
				t.Errorf("%v -> %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestRotationInverse(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	ctors := map[string]func(float64) Mat4{"x": NewRotX, "y": NewRotY, "z": NewRotZ}
	for name, ctor := range ctors {
		for i := 0; i < 100; i++ {
			theta := r.Float64()*4*math.Pi - 2*math.Pi
			p := randomPoint(r)
			got := ctor(-theta).VecMul(ctor(theta).VecMul(p))
			if !got.ApproxEquals(p, 1e-9) {
				t.Fatalf("rot %s(%f) then rot %s(%f) moved %v to %v", name, theta, name, -theta, p, got)
			}
		}
	}
}

func TestScaleIdentity(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))
	s := NewScale(1.0)
	if !s.Equals(NewUnitMat()) {
		t.Errorf("NewScale(1) should be the identity: \n%s", s.ToString())
	}
	for i := 0; i < 50; i++ {
		p := randomPoint(r)
		if got := s.VecMul(p); got != p {
			t.Fatalf("scale(1) changed %v to %v", p, got)
		}
	}
}

func TestScale4(t *testing.T) {
	got := NewScale4(2, 3, 4, 2).VecMul(Vertex{X: 1, Y: 1, Z: 1})
	want := Vertex{X: 1, Y: 1.5, Z: 2}
	if !got.ApproxEquals(want, eps) {
		t.Errorf("scale4 with w=2 should divide after scaling, got %v want %v", got, want)
	}
}

func TestTranslation(t *testing.T) {
	r := rand.New(rand.NewPCG(5, 6))
	for i := 0; i < 100; i++ {
		p := randomPoint(r)
		d := randomPoint(r)
		got := NewTranslation(d.X, d.Y, d.Z).VecMul(p)
		if !got.ApproxEquals(p.Add(d), eps) {
			t.Fatalf("translate(%v) of %v = %v, want %v", d, p, got, p.Add(d))
		}
	}
}

func TestVecMulZeroW(t *testing.T) {
	m := NewScale4(2, 2, 2, 0)
	got := m.VecMul(Vertex{X: 1, Y: 2, Z: 3})
	want := Vertex{X: 2, Y: 4, Z: 6}
	if got != want {
		t.Errorf("w == 0 must skip the divide, got %v want %v", got, want)
	}

	p := NewProjection3D(90, 1, 100, 0.1)
	got = p.VecMul(Vertex{X: 1, Y: 1, Z: 0})
	if math.IsNaN(got.X) || math.IsNaN(got.Y) {
		t.Errorf("projection at z == 0 must not divide by zero, got %v", got)
	}
}

func TestMulComposition(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 8))
	for i := 0; i < 200; i++ {
		a := randomAffine(r)
		b := randomAffine(r)
		p := randomPoint(r)
		got := a.Mul(b).VecMul(p)
		want := a.VecMul(b.VecMul(p))
		if !got.ApproxEquals(want, 1e-7) {
			t.Fatalf("(A*B)(p) = %v, A(B(p)) = %v\nA:\n%s\nB:\n%s", got, want, a.ToString(), b.ToString())
		}
	}
}

func TestMulCompositionWithProjection(t *testing.T) {
	proj := NewProjection3D(90, 1, 1000, 0.1)
	view := NewTranslation(0, 0, 5)
	p := Vertex{X: 1, Y: -2, Z: 3}
	got := proj.Mul(view).VecMul(p)
	want := proj.VecMul(view.VecMul(p))
	if !got.ApproxEquals(want, 1e-9) {
		t.Errorf("projection composition: %v != %v", got, want)
	}
}

func TestMulAssociative(t *testing.T) {
	r := rand.New(rand.NewPCG(9, 10))
	for i := 0; i < 200; i++ {
		a, b, c := randomAffine(r), randomAffine(r), randomAffine(r)
		p := randomPoint(r)
		left := a.Mul(b).Mul(c).VecMul(p)
		right := a.Mul(b.Mul(c)).VecMul(p)
		if !left.ApproxEquals(right, 1e-7) {
			t.Fatalf("(A*B)*C = %v, A*(B*C) = %v for %v", left, right, p)
		}
	}
}

func TestMulMatchesMathgl(t *testing.T) {
	r := rand.New(rand.NewPCG(11, 12))
	for i := 0; i < 50; i++ {
		a, b := randomAffine(r), randomAffine(r)
		got := a.Mul(b).Mgl()
		want := a.Mgl().Mul4(b.Mgl())
		if !got.ApproxEqualThreshold(want, 1e-9) {
			t.Fatalf("Mul disagrees with mathgl:\n%v\n%v", got, want)
		}
	}
	tr := NewTranslation(1, 2, 3).Mgl()
	if !tr.ApproxEqual(mgl64.Translate3D(1, 2, 3)) {
		t.Errorf("translation does not match mathgl: %v", tr)
	}
	if FromMgl(tr) != NewTranslation(1, 2, 3) {
		t.Errorf("FromMgl(Mgl()) is not a round trip")
	}
}

func TestNewProjection3D(t *testing.T) {
	near, far := 0.1, 1000.0
	m := NewProjection3D(90, 1.0, far, near)

	if math.Abs(m[0][0]-1) > eps || math.Abs(m[1][1]-1) > eps {
		t.Errorf("fov 90 should give focal length 1: \n%s", m.ToString())
	}
	if m[2][3] != 1 || m[3][3] != 0 {
		t.Errorf("w should be taken from z: \n%s", m.ToString())
	}

	for _, z := range []float64{near + 1e-6, 0.5, 1, 10, 500, far - 1e-6} {
		p := m.VecMul(Vertex{Z: z})
		if math.IsNaN(p.Z) || math.IsInf(p.Z, 0) {
			t.Fatalf("z=%f projected to non-finite %v", z, p)
		}
		if p.Z < -1-1e-9 || p.Z > 1+1e-9 {
			t.Errorf("z=%f projected out of clip range: %v", z, p)
		}
		if p.X != 0 || p.Y != 0 {
			t.Errorf("point on camera axis left the axis: %v", p)
		}
	}

	if p := m.VecMul(Vertex{Z: near}); math.Abs(p.Z+1) > 1e-9 {
		t.Errorf("near plane should map to -1, got %f", p.Z)
	}
	if p := m.VecMul(Vertex{Z: far}); math.Abs(p.Z-1) > 1e-9 {
		t.Errorf("far plane should map to 1, got %f", p.Z)
	}
}

func TestProjectionAspect(t *testing.T) {
	m := NewProjection3D(60, 0.5, 100, 1)
	f := 1 / math.Tan(ToRad(30))
	if math.Abs(m[0][0]-f*0.5) > eps || math.Abs(m[1][1]-f) > eps {
		t.Errorf("aspect not applied to x: \n%s", m.Describe())
	}
}

func TestLookAt(t *testing.T) {
	m := NewLookAt(Vertex{}, Vertex{Z: 10}, Vertex{Y: 1})
	if !m.ApproxEquals(NewUnitMat(), eps) {
		t.Errorf("looking down +z from the origin should be the identity: \n%s", m.ToString())
	}

	m = NewLookAt(Vertex{X: 3, Y: 1, Z: -4}, Vertex{X: 3, Y: 1, Z: 0}, Vertex{Y: 1})
	if got := m.VecMul(Vertex{X: 3, Y: 1, Z: 0}); !got.ApproxEquals(Vertex{Z: 4}, eps) {
		t.Errorf("target should land on the camera axis, got %v", got)
	}

	m = NewLookAt(Vertex{}, Vertex{X: 1}, Vertex{Y: 1})
	if got := m.VecMul(Vertex{X: 2}); !got.ApproxEquals(Vertex{Z: 2}, eps) {
		t.Errorf("point ahead should be at +z, got %v", got)
	}
}

func TestDiagonalPromotion(t *testing.T) {
	v := Vertex{X: 1, Y: 2, Z: 3}
	m := FromVertex(v)
	if m.ToVertex() != v || m[3][3] != 0 {
		t.Errorf("diagonal promotion lost data: \n%s", m.ToString())
	}
}

func TestUnroll(t *testing.T) {
	m := NewTranslation(1, 2, 3)
	u := m.Unroll()
	if len(u) != 16 || u[12] != 1 || u[13] != 2 || u[14] != 3 || u[15] != 1 {
		t.Errorf("unexpected unroll %v of \n%s", u, m.Describe())
	}
}

func TestTranspose(t *testing.T) {
	m := NewRotXYZ(0.3, 0.2, 0.1)
	mT := m.Transpose()
	if !m.Mul(mT).ApproxEquals(NewUnitMat(), eps) {
		t.Errorf("rotation transpose should be its inverse: \n%s", m.Mul(mT).ToString())
	}
	if mT.Transpose() != m {
		t.Errorf("double transpose changed the matrix")
	}
}
