// SPDX-License-Identifier: Unlicense OR MIT

package f32

import "math"

// A Mat4d is the double precision mirror of Mat4, row-major. Transform
// providers compute in double precision; Mat4 narrows their result to
// single precision at the point of conversion and not earlier.
type Mat4d [16]float64

// IdentityD returns the double precision identity matrix.
func IdentityD() Mat4d {
	return Mat4d{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// TranslateD returns a pure translation by (x, y, z).
func TranslateD(x, y, z float64) Mat4d {
	return Mat4d{
		1, 0, 0, x,
		0, 1, 0, y,
		0, 0, 1, z,
		0, 0, 0, 1,
	}
}

// ScaleD returns a pure scale by (x, y, z).
func ScaleD(x, y, z float64) Mat4d {
	return Mat4d{
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
		0, 0, 0, 1,
	}
}

// RotateXD returns a rotation of angle radians about the X axis.
func RotateXD(angle float64) Mat4d {
	sin, cos := math.Sincos(angle)
	return Mat4d{
		1, 0, 0, 0,
		0, cos, -sin, 0,
		0, sin, cos, 0,
		0, 0, 0, 1,
	}
}

// RotateYD returns a rotation of angle radians about the Y axis.
func RotateYD(angle float64) Mat4d {
	sin, cos := math.Sincos(angle)
	return Mat4d{
		cos, 0, sin, 0,
		0, 1, 0, 0,
		-sin, 0, cos, 0,
		0, 0, 0, 1,
	}
}

// RotateZD returns a rotation of angle radians about the Z axis.
func RotateZD(angle float64) Mat4d {
	sin, cos := math.Sincos(angle)
	return Mat4d{
		cos, -sin, 0, 0,
		sin, cos, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Mul returns the product m × n.
func (m Mat4d) Mul(n Mat4d) Mat4d {
	var p Mat4d
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			var sum float64
			for k := 0; k < 4; k++ {
				sum += m[r*4+k] * n[k*4+c]
			}
			p[r*4+c] = sum
		}
	}
	return p
}

// Mat4 narrows m to single precision.
func (m Mat4d) Mat4() Mat4 {
	var s Mat4
	for i, v := range m {
		s[i] = float32(v)
	}
	return s
}
