// SPDX-License-Identifier: Unlicense OR MIT

package pixel

import (
	"math"
	"testing"

	"github.com/petermercell/C44Matrix/f32"
)

func scanlineOf(px ...[4]float32) Scanline {
	s := Scanline{
		R: make([]float32, len(px)),
		G: make([]float32, len(px)),
		B: make([]float32, len(px)),
		A: make([]float32, len(px)),
	}
	for i, p := range px {
		s.R[i], s.G[i], s.B[i], s.A[i] = p[0], p[1], p[2], p[3]
	}
	return s
}

func emptyLike(s Scanline) Scanline {
	return Scanline{
		R: make([]float32, s.Len()),
		G: make([]float32, s.Len()),
		B: make([]float32, s.Len()),
		A: make([]float32, s.Len()),
	}
}

func TestApplyIdentityPassthrough(t *testing.T) {
	in := scanlineOf(
		[4]float32{0.1, 0.2, 0.3, 1},
		[4]float32{-1, 2, 0, 0.5},
		[4]float32{0, 0, 0, 0},
	)
	out := emptyLike(in)
	Apply(f32.Identity(), false, in, out)
	for i := 0; i < in.Len(); i++ {
		if out.R[i] != in.R[i] || out.G[i] != in.G[i] ||
			out.B[i] != in.B[i] || out.A[i] != in.A[i] {
			t.Errorf("pixel %d changed under identity", i)
		}
	}
}

func TestApplyWDivide(t *testing.T) {
	// Scale alpha by 2 so an input of (1,1,1,1) transforms to W=2.
	m := f32.Scale(1, 1, 1)
	m[15] = 2
	in := scanlineOf([4]float32{1, 1, 1, 1})
	out := emptyLike(in)
	Apply(m, true, in, out)
	want := [4]float32{0.5, 0.5, 0.5, 1}
	got := [4]float32{out.R[0], out.G[0], out.B[0], out.A[0]}
	if got != want {
		t.Errorf("w divide: have %v, want %v", got, want)
	}
}

func TestApplyWDivideByZero(t *testing.T) {
	// Zero out the alpha row so W transforms to 0 for every input.
	m := f32.Identity()
	m[15] = 0
	in := scanlineOf([4]float32{1, 2, 3, 1}, [4]float32{0, 0, 0, 0})
	out := emptyLike(in)
	Apply(m, true, in, out)

	// Pixel 0: finite components over zero give infinities.
	for c, v := range []float32{out.R[0], out.G[0], out.B[0]} {
		if !math.IsInf(float64(v), 0) {
			t.Errorf("pixel 0 channel %d: have %v, want ±Inf", c, v)
		}
	}
	// Pixel 1: 0/0 gives NaN.
	if !math.IsNaN(float64(out.R[1])) {
		t.Errorf("pixel 1: have %v, want NaN", out.R[1])
	}
}

func TestApplyMatrixMixesChannels(t *testing.T) {
	// Add blue into alpha: W' = Z + W.
	m := f32.Identity()
	m[14] = 1
	in := scanlineOf([4]float32{0.5, 0.25, 0.75, 1})
	out := emptyLike(in)
	Apply(m, false, in, out)
	if out.A[0] != 1.75 {
		t.Errorf("alpha: have %v, want 1.75", out.A[0])
	}
	if out.R[0] != 0.5 || out.G[0] != 0.25 || out.B[0] != 0.75 {
		t.Errorf("rgb changed: %v %v %v", out.R[0], out.G[0], out.B[0])
	}
}

func TestApplyInPlace(t *testing.T) {
	s := scanlineOf([4]float32{1, 2, 3, 1})
	Apply(f32.Translate(10, 20, 30), false, s, s)
	if s.R[0] != 11 || s.G[0] != 22 || s.B[0] != 33 || s.A[0] != 1 {
		t.Errorf("in-place apply: %v %v %v %v", s.R[0], s.G[0], s.B[0], s.A[0])
	}
}

func TestApplyUnevenSpans(t *testing.T) {
	in := scanlineOf([4]float32{1, 1, 1, 1}, [4]float32{2, 2, 2, 1})
	out := emptyLike(scanlineOf([4]float32{0, 0, 0, 0}))
	Apply(f32.Identity(), false, in, out) // must not write past out
	if out.R[0] != 1 {
		t.Errorf("first pixel not written: %v", out.R[0])
	}
}
