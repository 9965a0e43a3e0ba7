package transform

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

// near compares element-wise with an absolute tolerance.
func near(a, b []float32, tol float32) bool {
	for i := range a {
		if d := a[i] - b[i]; d > tol || d < -tol {
			return false
		}
	}
	return true
}

func TestIdentityMatrix(t *testing.T) {
	m := Identity().Matrix()
	if !m.ApproxEqual(mgl32.Ident4()) {
		t.Errorf("identity transform matrix = %v, want identity", m)
	}
}

func TestMatrixTranslateScale(t *testing.T) {
	xf := At(mgl32.Vec3{10, 20, 30})
	xf.Scale = mgl32.Vec3{2, 2, 2}

	p := mgl32.TransformCoordinate(mgl32.Vec3{1, 1, 1}, xf.Matrix())
	want := mgl32.Vec3{12, 22, 32}
	if !p.ApproxEqual(want) {
		t.Errorf("transformed point = %v, want %v", p, want)
	}
	if got := xf.Apply(mgl32.Vec3{1, 1, 1}); !got.ApproxEqual(want) {
		t.Errorf("Apply = %v, want %v", got, want)
	}
}

func TestRotation(t *testing.T) {
	r := Rotation(90, mgl32.Vec3{0, 1, 0})
	p := mgl32.TransformCoordinate(mgl32.Vec3{1, 0, 0}, r)
	want := mgl32.Vec3{0, 0, -1}
	if !near(p[:], want[:], 1e-5) {
		t.Errorf("rotated point = %v, want %v", p, want)
	}
}

func TestRotationNormalizesAxis(t *testing.T) {
	a := Rotation(45, mgl32.Vec3{0, 0, 5})
	b := Rotation(45, mgl32.Vec3{0, 0, 1})
	if !near(a[:], b[:], 1e-6) {
		t.Errorf("rotation depends on axis length: %v vs %v", a, b)
	}
}

func TestPerspectiveDegrees(t *testing.T) {
	m := Perspective(90, 1, 0.1, 100)
	// f = 1/tan(45deg) = 1
	if math.Abs(float64(m[5]-1)) > 1e-5 {
		t.Errorf("m[5] = %f, want 1", m[5])
	}
	if m[11] != -1 {
		t.Errorf("m[11] = %f, want -1", m[11])
	}
}

func TestMultiply(t *testing.T) {
	m := mgl32.Translate3D(1, 0, 0)
	Multiply(&m, mgl32.Translate3D(0, 2, 0))
	want := mgl32.Translate3D(1, 2, 0)
	if !m.ApproxEqual(want) {
		t.Errorf("Multiply = %v, want %v", m, want)
	}
}

func TestMultiplyNilPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for nil matrix")
		}
	}()
	Multiply(nil, mgl32.Ident4())
}
