package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	DefaultFov   = float32(75.0 * math.Pi / 180.0)
	DefaultZNear = float32(0.025)
	DefaultZFar  = float32(2048.0)
)

// Camera is the payload of a camera node. Only enabled cameras render.
type Camera struct {
	fov     float32
	zNear   float32
	zFar    float32
	enabled bool
}

// NewCamera creates an enabled camera with default projection settings.
func NewCamera() Camera {
	return Camera{
		fov:     DefaultFov,
		zNear:   DefaultZNear,
		zFar:    DefaultZFar,
		enabled: true,
	}
}

// Fov returns the vertical field of view in radians.
func (c *Camera) Fov() float32 {
	return c.fov
}

func (c *Camera) SetFov(fov float32) {
	c.fov = fov
}

func (c *Camera) ZNear() float32 {
	return c.zNear
}

func (c *Camera) SetZNear(z float32) {
	c.zNear = z
}

func (c *Camera) ZFar() float32 {
	return c.zFar
}

func (c *Camera) SetZFar(z float32) {
	c.zFar = z
}

func (c *Camera) IsEnabled() bool {
	return c.enabled
}

func (c *Camera) SetEnabled(enabled bool) {
	c.enabled = enabled
}

// Projection returns the perspective projection matrix for the given aspect ratio.
func (c *Camera) Projection(aspect float32) mgl32.Mat4 {
	return mgl32.Perspective(c.fov, aspect, c.zNear, c.zFar)
}
