package scribe

// Camera is a minimal pinhole viewpoint for projecting world-space strokes
// onto a 2D screen. It exists for the ribbon helpers and example programs;
// hosts with their own renderer can ignore it and read stroke state
// directly.
//
// The camera looks down its local +Z axis. Screen origin is top-left with Y
// increasing downward; world Y is up.
type Camera struct {
	Position Vec3
	Rotation Quat

	// Focal is the focal length in pixels: a unit-wide object at depth 1
	// spans Focal pixels.
	Focal float64

	// Width and Height are the viewport dimensions in pixels.
	Width, Height float64

	// Near is the near clip depth; points at or closer are not visible.
	Near float64
}

// NewCamera creates a camera for the given viewport with sensible defaults:
// focal length equal to the viewport width and a 1cm near plane.
func NewCamera(width, height float64) *Camera {
	return &Camera{
		Rotation: QuatIdentity,
		Focal:    width,
		Width:    width,
		Height:   height,
		Near:     0.01,
	}
}

// WorldToScreen projects a world-space point. Returns the screen position,
// the perspective scale (pixels per world unit at the point's depth), and
// whether the point is in front of the near plane.
func (c *Camera) WorldToScreen(p Vec3) (sx, sy, scale float64, visible bool) {
	local := c.Rotation.Inverse().Rotate(p.Sub(c.Position))
	if local.Z <= c.Near {
		return 0, 0, 0, false
	}
	scale = c.Focal / local.Z
	sx = c.Width/2 + local.X*scale
	sy = c.Height/2 - local.Y*scale
	return sx, sy, scale, true
}

// ScreenToWorld unprojects a screen position to the plane at the given
// camera-space depth. Inverse of WorldToScreen for points on that plane;
// used by mouse-emulated stylus input.
func (c *Camera) ScreenToWorld(sx, sy, depth float64) Vec3 {
	local := Vec3{
		X: (sx - c.Width/2) * depth / c.Focal,
		Y: -(sy - c.Height/2) * depth / c.Focal,
		Z: depth,
	}
	return c.Rotation.Rotate(local).Add(c.Position)
}
