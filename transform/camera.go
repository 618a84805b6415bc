// SPDX-License-Identifier: Unlicense OR MIT

package transform

import "github.com/petermercell/C44Matrix/f32"

// Lens holds the projection parameters of a camera. Apertures and
// focal length are in millimeters, near and far in world units.
type Lens struct {
	Focal     float64
	HAperture float64
	VAperture float64
	Near      float64
	Far       float64
}

// DefaultLens returns the stock 50mm lens.
func DefaultLens() Lens {
	return Lens{
		Focal:     50,
		HAperture: 41.4214,
		VAperture: 30,
		Near:      0.1,
		Far:       10000,
	}
}

// A Camera is an axis with a lens. Beyond the world transform it
// exposes a perspective projection and a format-fit matrix.
type Camera struct {
	Axis
	Lens Lens

	// LensAt, when set, recomputes Lens during Validate.
	LensAt func(Context) Lens
}

// NewCamera returns a camera at the origin with the default lens.
func NewCamera() *Camera {
	return &Camera{Axis: *NewAxis(), Lens: DefaultLens()}
}

func (c *Camera) Kind() Kind { return KindCamera }

func (c *Camera) Validate(ctx Context) {
	c.Axis.Validate(ctx)
	if c.LensAt != nil {
		c.Lens = c.LensAt(ctx)
	}
}

// Projection returns the perspective projection for the current lens
// state. The camera looks down -Z and projects onto the [-1,1] square.
func (c *Camera) Projection() f32.Mat4d {
	l := c.Lens
	sx := 2 * l.Focal / l.HAperture
	sy := sx
	if l.VAperture > 0 {
		sy = 2 * l.Focal / l.VAperture
	}
	q := -(l.Far + l.Near) / (l.Far - l.Near)
	qn := -2 * l.Far * l.Near / (l.Far - l.Near)
	return f32.Mat4d{
		sx, 0, 0, 0,
		0, sy, 0, 0,
		0, 0, q, qn,
		0, 0, -1, 0,
	}
}

// FormatMatrix maps the camera's projection onto pixel coordinates of
// f: a uniform width-based scale centered on the format, honoring the
// pixel aspect on Y. The result is single precision, matching the host
// contract for format-fit matrices.
func (c *Camera) FormatMatrix(f Format) f32.Mat4 {
	pa := f.PixelAspect
	if pa <= 0 {
		pa = 1
	}
	w := float64(f.Width)
	h := float64(f.Height)
	ndc := f32.Mat4d{
		w / 2, 0, 0, w / 2,
		0, w / 2 * pa, 0, h / 2,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
	return ndc.Mul(c.Projection()).Mat4()
}
