// SPDX-License-Identifier: Unlicense OR MIT

/*
Package render runs a node over whole images. It owns the host-side
plumbing the node itself stays out of: planar float frame buffers,
conversion to and from image.Image, and the concurrent scanline
dispatcher with its abort protocol.
*/
package render

import (
	"context"
	"image"
	"runtime"
	"sync"

	"golang.org/x/image/draw"

	"github.com/petermercell/C44Matrix/node"
	"github.com/petermercell/C44Matrix/pixel"
	"github.com/petermercell/C44Matrix/transform"
)

// A Frame is a planar float32 RGBA image. Channel values are
// unclamped; 0 and 1 mark the nominal black and white points.
type Frame struct {
	W, H       int
	R, G, B, A []float32
}

// NewFrame returns a zeroed w×h frame.
func NewFrame(w, h int) *Frame {
	n := w * h
	return &Frame{
		W: w, H: h,
		R: make([]float32, n),
		G: make([]float32, n),
		B: make([]float32, n),
		A: make([]float32, n),
	}
}

// FromImage converts img to a frame, normalizing channels to [0, 1].
// The conversion goes through NRGBA64 so 16-bit sources keep their
// precision.
func FromImage(img image.Image) *Frame {
	b := img.Bounds()
	tmp := image.NewNRGBA64(image.Rectangle{Max: b.Size()})
	draw.Copy(tmp, image.Point{}, img, b, draw.Src, nil)

	f := NewFrame(tmp.Rect.Dx(), tmp.Rect.Dy())
	const scale = 1.0 / 0xffff
	i := 0
	for y := 0; y < f.H; y++ {
		row := tmp.Pix[y*tmp.Stride : y*tmp.Stride+f.W*8]
		for x := 0; x < f.W*8; x += 8 {
			f.R[i] = float32(uint16(row[x])<<8|uint16(row[x+1])) * scale
			f.G[i] = float32(uint16(row[x+2])<<8|uint16(row[x+3])) * scale
			f.B[i] = float32(uint16(row[x+4])<<8|uint16(row[x+5])) * scale
			f.A[i] = float32(uint16(row[x+6])<<8|uint16(row[x+7])) * scale
			i++
		}
	}
	return f
}

// Row returns the scanline at y, sharing the frame's storage.
func (f *Frame) Row(y int) pixel.Scanline {
	lo, hi := y*f.W, (y+1)*f.W
	return pixel.Scanline{
		R: f.R[lo:hi], G: f.G[lo:hi], B: f.B[lo:hi], A: f.A[lo:hi],
	}
}

// Format returns the frame's format descriptor with square pixels.
func (f *Frame) Format() transform.Format {
	return transform.Format{Width: f.W, Height: f.H, PixelAspect: 1}
}

// Image renders the frame to a 16-bit image. Values are clamped to
// [0, 1]; NaNs clamp to 0.
func (f *Frame) Image() *image.NRGBA64 {
	img := image.NewNRGBA64(image.Rect(0, 0, f.W, f.H))
	i := 0
	for y := 0; y < f.H; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+f.W*8]
		for x := 0; x < f.W*8; x += 8 {
			putChannel(row[x:x+2:x+2], f.R[i])
			putChannel(row[x+2:x+4:x+4], f.G[i])
			putChannel(row[x+4:x+6:x+6], f.B[i])
			putChannel(row[x+6:x+8:x+8], f.A[i])
			i++
		}
	}
	return img
}

func putChannel(dst []byte, v float32) {
	// The comparison is written so NaN falls through to zero.
	var q uint16
	switch {
	case v >= 1:
		q = 0xffff
	case v > 0:
		q = uint16(v*0xffff + 0.5)
	}
	dst[0] = byte(q >> 8)
	dst[1] = byte(q)
}

// Process validates n once at the evaluation context at and then
// transforms every scanline of src concurrently, returning the output
// frame. The abort signal is checked between scanlines: on
// cancellation, rows already written are valid, remaining rows are
// left untouched, and the context error is returned.
func Process(ctx context.Context, n *node.Node, at transform.Context, src *Frame) (*Frame, error) {
	out := NewFrame(src.W, src.H)
	n.Validate(at, src.Format())

	workers := runtime.GOMAXPROCS(0)
	if workers > src.H {
		workers = src.H
	}
	if workers < 1 {
		workers = 1
	}

	rows := make(chan int)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for y := range rows {
				n.Engine(src.Row(y), out.Row(y))
			}
		}()
	}

feed:
	for y := 0; y < src.H; y++ {
		select {
		case <-ctx.Done():
			break feed
		case rows <- y:
		}
	}
	close(rows)
	wg.Wait()

	return out, ctx.Err()
}
