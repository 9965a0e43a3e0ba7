// Package camera provides the free-fly editor camera.
package camera

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"
)

// MaxPitch keeps the camera from flipping over the vertical.
const MaxPitch = 89.0

var worldUp = mgl32.Vec3{0, 1, 0}

// FlyCamera moves freely and looks around with the mouse.
// Yaw and Pitch are in degrees; yaw 0 looks down -Z.
type FlyCamera struct {
	Position mgl32.Vec3
	Yaw      float32
	Pitch    float32

	// Speed is in world units per second.
	Speed          float32
	// FastMultiplier scales Speed while sprinting.
	FastMultiplier float32
	// Sensitivity is degrees per unit of mouse offset.
	Sensitivity    float32
	InvertY        bool
}

// NewFlyCamera creates a camera at pos with editor defaults.
func NewFlyCamera(pos mgl32.Vec3) *FlyCamera {
	return &FlyCamera{
		Position:       pos,
		Speed:          8.0,
		FastMultiplier: 4.0,
		Sensitivity:    0.1,
	}
}

// Front returns the unit view direction.
func (c *FlyCamera) Front() mgl32.Vec3 {
	yaw := float64(mgl32.DegToRad(c.Yaw))
	pitch := float64(mgl32.DegToRad(c.Pitch))
	return mgl32.Vec3{
		float32(gomath.Sin(yaw) * gomath.Cos(pitch)),
		float32(gomath.Sin(pitch)),
		float32(-gomath.Cos(yaw) * gomath.Cos(pitch)),
	}.Normalize()
}

// Right returns the unit vector to the camera's right on the horizontal plane.
func (c *FlyCamera) Right() mgl32.Vec3 {
	yaw := float64(mgl32.DegToRad(c.Yaw))
	return mgl32.Vec3{float32(gomath.Cos(yaw)), 0, float32(gomath.Sin(yaw))}
}

// Look turns the camera by a mouse offset from the window centre.
func (c *FlyCamera) Look(dx, dy float32) {
	if c.InvertY {
		dy = -dy
	}
	c.Yaw += dx * c.Sensitivity
	c.Pitch -= dy * c.Sensitivity

	if c.Pitch > MaxPitch {
		c.Pitch = MaxPitch
	}
	if c.Pitch < -MaxPitch {
		c.Pitch = -MaxPitch
	}
	c.Yaw = float32(gomath.Mod(float64(c.Yaw), 360))
}

// Move translates the camera. forward and right follow the view, up is world up.
func (c *FlyCamera) Move(forward, right, up float32, fast bool, dt float32) {
	speed := c.Speed * dt
	if fast {
		speed *= c.FastMultiplier
	}
	delta := c.Front().Mul(forward).
		Add(c.Right().Mul(right)).
		Add(worldUp.Mul(up))
	if delta.Len() == 0 {
		return
	}
	c.Position = c.Position.Add(delta.Normalize().Mul(speed))
}

// ViewMatrix returns the world-to-camera transform.
func (c *FlyCamera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Front()), worldUp)
}

// LookAt points the camera at target.
func (c *FlyCamera) LookAt(target mgl32.Vec3) {
	dir := target.Sub(c.Position)
	if dir.Len() == 0 {
		return
	}
	dir = dir.Normalize()
	c.Pitch = mgl32.RadToDeg(float32(gomath.Asin(float64(dir.Y()))))
	c.Yaw = mgl32.RadToDeg(float32(gomath.Atan2(float64(dir.X()), float64(-dir.Z()))))
}
