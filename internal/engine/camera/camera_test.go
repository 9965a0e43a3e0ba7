package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const eps = 1e-4

// near compares component-wise with an absolute tolerance.
func near(a, b mgl32.Vec3) bool {
	for i := range a {
		if d := a[i] - b[i]; d > eps || d < -eps {
			return false
		}
	}
	return true
}

func TestFrontDefaults(t *testing.T) {
	c := NewFlyCamera(mgl32.Vec3{})
	if f := c.Front(); !near(f, mgl32.Vec3{0, 0, -1}) {
		t.Errorf("Front = %v, want (0,0,-1)", f)
	}
	if r := c.Right(); !near(r, mgl32.Vec3{1, 0, 0}) {
		t.Errorf("Right = %v, want (1,0,0)", r)
	}
}

func TestFrontYaw90(t *testing.T) {
	c := NewFlyCamera(mgl32.Vec3{})
	c.Yaw = 90
	if f := c.Front(); !near(f, mgl32.Vec3{1, 0, 0}) {
		t.Errorf("Front = %v, want (1,0,0)", f)
	}
}

func TestLookClampsPitch(t *testing.T) {
	c := NewFlyCamera(mgl32.Vec3{})
	c.Look(0, -100000)
	if c.Pitch != MaxPitch {
		t.Errorf("Pitch = %f, want %f", c.Pitch, MaxPitch)
	}
	c.Look(0, 100000)
	if c.Pitch != -MaxPitch {
		t.Errorf("Pitch = %f, want %f", c.Pitch, -MaxPitch)
	}
}

func TestLookDirections(t *testing.T) {
	c := NewFlyCamera(mgl32.Vec3{})
	c.Look(100, 0)
	if c.Yaw <= 0 {
		t.Errorf("moving the mouse right should turn right, yaw = %f", c.Yaw)
	}
	c.Look(0, 100)
	if c.Pitch >= 0 {
		t.Errorf("moving the mouse down should look down, pitch = %f", c.Pitch)
	}

	c = NewFlyCamera(mgl32.Vec3{})
	c.InvertY = true
	c.Look(0, 100)
	if c.Pitch <= 0 {
		t.Errorf("inverted mouse down should look up, pitch = %f", c.Pitch)
	}
}

func TestMove(t *testing.T) {
	c := NewFlyCamera(mgl32.Vec3{})
	c.Speed = 2

	c.Move(1, 0, 0, false, 0.5)
	if !near(c.Position, mgl32.Vec3{0, 0, -1}) {
		t.Errorf("after forward Position = %v, want (0,0,-1)", c.Position)
	}

	c.Move(0, 1, 0, true, 0.5)
	want := mgl32.Vec3{c.FastMultiplier, 0, -1}
	if !near(c.Position, want) {
		t.Errorf("after fast strafe Position = %v, want %v", c.Position, want)
	}

	before := c.Position
	c.Move(0, 0, 0, false, 1)
	if c.Position != before {
		t.Error("no input should not move the camera")
	}
}

func TestMoveDiagonalIsNormalized(t *testing.T) {
	c := NewFlyCamera(mgl32.Vec3{})
	c.Speed = 1
	c.Move(1, 1, 0, false, 1)
	if l := c.Position.Len(); l < 1-eps || l > 1+eps {
		t.Errorf("diagonal move length = %f, want 1", l)
	}
}

func TestViewMatrixMapsPositionToOrigin(t *testing.T) {
	c := NewFlyCamera(mgl32.Vec3{3, 4, 5})
	c.Yaw = 30
	c.Pitch = -20

	p := mgl32.TransformCoordinate(c.Position, c.ViewMatrix())
	if !near(p, mgl32.Vec3{}) {
		t.Errorf("camera position in view space = %v, want origin", p)
	}

	ahead := mgl32.TransformCoordinate(c.Position.Add(c.Front()), c.ViewMatrix())
	if !near(ahead, mgl32.Vec3{0, 0, -1}) {
		t.Errorf("point ahead in view space = %v, want (0,0,-1)", ahead)
	}
}

func TestLookAt(t *testing.T) {
	c := NewFlyCamera(mgl32.Vec3{0, 0, 10})
	c.LookAt(mgl32.Vec3{10, 0, 10})
	if f := c.Front(); !near(f, mgl32.Vec3{1, 0, 0}) {
		t.Errorf("Front after LookAt = %v, want (1,0,0)", f)
	}
}
