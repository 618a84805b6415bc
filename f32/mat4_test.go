// SPDX-License-Identifier: Unlicense OR MIT

package f32

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var approx = cmpopts.EquateApprox(0, 1e-5)

// trs is a representative transform with translation, rotation and
// non-uniform scale.
func trs() Mat4 {
	return Translate(3, -4, 5).Mul(RotateY(math.Pi / 3)).Mul(Scale(2, 3, 4))
}

func TestTransposeInvolution(t *testing.T) {
	m := trs()
	if got := m.Transpose().Transpose(); got != m {
		t.Errorf("transpose twice: have %v, want %v", got, m)
	}
}

func TestTransposeSwapsPairs(t *testing.T) {
	m := Translate(3, 4, 5)
	tr := m.Transpose()
	if tr[12] != 3 || tr[13] != 4 || tr[14] != 5 || tr[3] != 0 {
		t.Errorf("transpose mismatch: %v", tr)
	}
}

func TestInvertRoundTrip(t *testing.T) {
	m := trs()
	if diff := cmp.Diff(m, m.Invert().Invert(), approx); diff != "" {
		t.Errorf("invert twice differs from original:\n%s", diff)
	}
	if diff := cmp.Diff(Identity(), m.Mul(m.Invert()), approx); diff != "" {
		t.Errorf("m×inverse(m) is not identity:\n%s", diff)
	}
}

func TestInvertSingularDoesNotPanic(t *testing.T) {
	var zero Mat4
	inv := zero.Invert()
	for i, v := range inv {
		f := float64(v)
		if !math.IsNaN(f) && !math.IsInf(f, 0) {
			t.Errorf("inv[%d] = %v, want NaN or Inf", i, v)
		}
	}
}

func TestTransformIdentity(t *testing.T) {
	v := Vec4{X: 0.25, Y: -1, Z: 2, W: 1}
	if got := Identity().Transform(v); got != v {
		t.Errorf("identity transform: have %v, want %v", got, v)
	}
}

func TestTransformTranslate(t *testing.T) {
	v := Vec4{X: 1, Y: 2, Z: 3, W: 1}
	got := Translate(10, 20, 30).Transform(v)
	want := Vec4{X: 11, Y: 22, Z: 33, W: 1}
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Errorf("translate transform:\n%s", diff)
	}
}

func TestTranslationOnly(t *testing.T) {
	got := trs().TranslationOnly()
	if diff := cmp.Diff(Translate(3, -4, 5), got, approx); diff != "" {
		t.Errorf("translation component:\n%s", diff)
	}
}

func TestRotationOnly(t *testing.T) {
	got := trs().RotationOnly()
	if diff := cmp.Diff(RotateY(math.Pi/3), got, approx); diff != "" {
		t.Errorf("rotation component:\n%s", diff)
	}
}

func TestScaleOnly(t *testing.T) {
	got := trs().ScaleOnly()
	if diff := cmp.Diff(Scale(2, 3, 4), got, approx); diff != "" {
		t.Errorf("scale component:\n%s", diff)
	}
}

func TestMat4dNarrowing(t *testing.T) {
	d := TranslateD(3, 4, 5).Mul(RotateYD(math.Pi / 4))
	s := d.Mat4()
	for i := range d {
		if s[i] != float32(d[i]) {
			t.Errorf("element %d: have %v, want %v", i, s[i], float32(d[i]))
		}
	}
}

func TestMat4dRotationRoundTrip(t *testing.T) {
	d := RotateZD(math.Pi / 5).Mul(RotateZD(-math.Pi / 5))
	if diff := cmp.Diff(IdentityD().Mat4(), d.Mat4(), approx); diff != "" {
		t.Errorf("opposite rotations do not cancel:\n%s", diff)
	}
}
