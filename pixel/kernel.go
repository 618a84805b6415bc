// SPDX-License-Identifier: Unlicense OR MIT

/*
Package pixel implements the scanline kernel that applies a 4x4 matrix
to RGBA pixel data, treating each pixel as a homogeneous 4-vector.

The kernel is a pure function of the matrix and the samples: no pixel
depends on any other pixel, so callers are free to process scanlines
in any order and from any number of goroutines, as long as the matrix
is not mutated while processing is in flight.
*/
package pixel

import "github.com/petermercell/C44Matrix/f32"

// A Scanline is a horizontal span of planar channel samples. All four
// slices cover the same pixel range. Channels beyond RGBA are the
// host's concern and never reach the kernel.
type Scanline struct {
	R, G, B, A []float32
}

// Len returns the number of pixels in the span.
func (s Scanline) Len() int { return len(s.R) }

// Apply transforms every pixel of in by m and writes the result to
// out. The two scanlines may alias. With wDivide set, all four
// transformed components are divided by the transformed W; a zero W
// propagates IEEE infinities and NaNs rather than being guarded.
func Apply(m f32.Mat4, wDivide bool, in, out Scanline) {
	n := in.Len()
	if o := out.Len(); o < n {
		n = o
	}
	for i := 0; i < n; i++ {
		v := m.Transform(f32.Vec4{X: in.R[i], Y: in.G[i], Z: in.B[i], W: in.A[i]})
		if wDivide {
			v = v.Div(v.W)
		}
		out.R[i] = v.X
		out.G[i] = v.Y
		out.B[i] = v.Z
		out.A[i] = v.W
	}
}
