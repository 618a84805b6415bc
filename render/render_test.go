// SPDX-License-Identifier: Unlicense OR MIT

package render

import (
	"context"
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/petermercell/C44Matrix/f32"
	"github.com/petermercell/C44Matrix/node"
	"github.com/petermercell/C44Matrix/transform"
)

func gradient(w, h int) *image.NRGBA64 {
	img := image.NewNRGBA64(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA64(x, y, color.NRGBA64{
				R: uint16(x * 0xffff / w),
				G: uint16(y * 0xffff / h),
				B: 0x8000,
				A: 0xffff,
			})
		}
	}
	return img
}

func TestFrameRoundTrip(t *testing.T) {
	src := gradient(16, 8)
	f := FromImage(src)
	if f.W != 16 || f.H != 8 {
		t.Fatalf("frame size %dx%d", f.W, f.H)
	}
	got := f.Image()
	for y := 0; y < 8; y++ {
		for x := 0; x < 16; x++ {
			if got.NRGBA64At(x, y) != src.NRGBA64At(x, y) {
				t.Fatalf("pixel (%d,%d): have %v, want %v",
					x, y, got.NRGBA64At(x, y), src.NRGBA64At(x, y))
			}
		}
	}
}

func TestImageClampsNonFinite(t *testing.T) {
	f := NewFrame(2, 1)
	var zero float32
	f.R[0] = 2.5         // above white
	f.G[0] = -1          // below black
	f.B[0] = zero / zero // NaN
	f.A[0] = 1
	px := f.Image().NRGBA64At(0, 0)
	if px.R != 0xffff || px.G != 0 || px.B != 0 || px.A != 0xffff {
		t.Errorf("clamped pixel: %v", px)
	}
}

func TestProcessIdentity(t *testing.T) {
	f := FromImage(gradient(32, 32))
	n := node.New(node.DefaultParams())
	out, err := Process(context.Background(), n, transform.Context{}, f)
	if err != nil {
		t.Fatal(err)
	}
	for i := range f.R {
		if out.R[i] != f.R[i] || out.G[i] != f.G[i] ||
			out.B[i] != f.B[i] || out.A[i] != f.A[i] {
			t.Fatalf("pixel %d changed under identity", i)
		}
	}
}

func TestProcessAppliesMatrix(t *testing.T) {
	f := NewFrame(4, 4)
	for i := range f.R {
		f.R[i], f.G[i], f.B[i], f.A[i] = 0.5, 0.25, 0.125, 1
	}
	p := node.DefaultParams()
	p.Matrix = f32.Translate(0.1, 0.2, 0.3)
	n := node.New(p)
	out, err := Process(context.Background(), n, transform.Context{}, f)
	if err != nil {
		t.Fatal(err)
	}
	near := func(have float32, want float64) bool {
		return math.Abs(float64(have)-want) < 1e-6
	}
	if !near(out.R[0], 0.6) || !near(out.G[0], 0.45) || !near(out.B[0], 0.425) {
		t.Errorf("translated channels: %v %v %v", out.R[0], out.G[0], out.B[0])
	}
}

func TestProcessAbort(t *testing.T) {
	f := NewFrame(8, 1024)
	n := node.New(node.DefaultParams())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Process(ctx, n, transform.Context{}, f)
	if err != context.Canceled {
		t.Errorf("aborted process: have %v, want context.Canceled", err)
	}
}
