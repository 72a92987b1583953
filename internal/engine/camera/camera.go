// Package camera provides the Z-up look-at camera used to view the scene.
package camera

import (
	"github.com/LeDaffy/FlappyClone/pkg/math"
)

// Zoom divides the drawable size to get the orthographic half-extents.
const Zoom = 5.0

// Up is the world up axis.
var Up = math.Vec3{Z: 1}

// Camera looks from a position at a target with Z up.
type Camera struct {
	position math.Vec3
	lookAt   math.Vec3
	// right is a point marking the camera's horizontal axis relative to
	// lookAt; vertical rotation happens around right - lookAt.
	right math.Vec3

	view       math.Mat4
	projection math.Mat4

	width, height int
}

// New creates a camera with the default orthographic projection.
func New(position, lookAt math.Vec3) *Camera {
	c := &Camera{
		position:   position,
		lookAt:     lookAt,
		right:      math.Vec3{X: 1},
		projection: math.Ortho(-4, 4, -4, 4, -0.01, 100),
	}
	c.updateView()
	return c
}

func (c *Camera) updateView() {
	c.view = math.LookAt(c.position, c.lookAt, Up)
}

// Resize sets an orthographic projection sized to the drawable area.
func (c *Camera) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	w := float32(width) / Zoom
	h := float32(height) / Zoom
	c.projection = math.Ortho(-w, w, -h, h, 0.01, 100)
	c.width = width
	c.height = height
}

// RotateHorizontal orbits the camera about the world Z axis.
func (c *Camera) RotateHorizontal(degrees float32) {
	q := math.QuatFromAxisAngle(Up, math.Radians(degrees))
	c.position = q.Rotate(c.position)
	c.right = q.Rotate(c.right)
	c.updateView()
}

// RotateVertical orbits the camera about its horizontal axis.
func (c *Camera) RotateVertical(degrees float32) {
	axis := c.right.Sub(c.lookAt)
	q := math.QuatFromAxisAngle(axis, math.Radians(degrees))
	c.position = q.Rotate(c.position)
	c.updateView()
}

// Pan moves the camera and its target by offset.
func (c *Camera) Pan(offset math.Vec3) {
	c.position = c.position.Add(offset)
	c.lookAt = c.lookAt.Add(offset)
	c.right = c.right.Add(offset)
	c.updateView()
}

// SetPosition moves the camera, keeping its target.
func (c *Camera) SetPosition(p math.Vec3) {
	c.position = p
	c.updateView()
}

// Position returns the camera position.
func (c *Camera) Position() math.Vec3 { return c.position }

// LookAt returns the camera target.
func (c *Camera) LookAt() math.Vec3 { return c.lookAt }

// View returns the view matrix.
func (c *Camera) View() math.Mat4 { return c.view }

// Projection returns the projection matrix.
func (c *Camera) Projection() math.Mat4 { return c.projection }
