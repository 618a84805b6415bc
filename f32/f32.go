// SPDX-License-Identifier: Unlicense OR MIT

/*
Package f32 implements float32 homogeneous vectors and 4x4 matrices.

Matrices are row-major and treat vectors as columns, so Transform
computes m × v. The package deliberately covers only the operations a
pixel-matrix node needs; it is not a general linear algebra library.
*/
package f32

// A Vec4 is a homogeneous four component vector. When read from pixel
// data, X, Y, Z, W carry the red, green, blue and alpha channels.
type Vec4 struct {
	X, Y, Z, W float32
}

// Mul returns v scaled by s.
func (v Vec4) Mul(s float32) Vec4 {
	return Vec4{X: v.X * s, Y: v.Y * s, Z: v.Z * s, W: v.W * s}
}

// Div returns v divided component-wise by w. Division by zero follows
// IEEE semantics and is not guarded.
func (v Vec4) Div(w float32) Vec4 {
	return Vec4{X: v.X / w, Y: v.Y / w, Z: v.Z / w, W: v.W / w}
}
