package render

// Camera is the (x, y, zoom) transform applied before every draw call.
// The owning game mutates it directly; the zero value with Zoom 1 is an
// identity transform.
type Camera struct {
	X, Y float64
	Zoom float64
}

func NewCamera() *Camera {
	return &Camera{Zoom: 1}
}

// Apply maps a world coordinate to screen space: translate by the
// negative camera position, then scale by zoom.
func (c *Camera) Apply(x, y float64) (float64, float64) {
	z := c.Zoom
	if z <= 0 {
		z = 1
	}
	return (x - c.X) * z, (y - c.Y) * z
}

func (c *Camera) scale() float64 {
	if c.Zoom <= 0 {
		return 1
	}
	return c.Zoom
}
