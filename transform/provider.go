// SPDX-License-Identifier: Unlicense OR MIT

/*
Package transform resolves the 4x4 matrix a pixel-matrix node applies
to its image. The matrix comes either from 16 manually entered values
or from an upstream transform provider (a camera or an axis), with an
optional transpose and inverse applied afterwards.

Providers are external, possibly animated entities. They are never
owned here: a Provider reference is only valid for the duration of one
resolution call, and Validate must run at the requested evaluation
context before any of its matrices are read.
*/
package transform

import "github.com/petermercell/C44Matrix/f32"

// Context identifies the host evaluation context a matrix is resolved
// at. Providers may be animated, so resolution is re-run whenever the
// context changes; nothing is cached across contexts.
type Context struct {
	Frame float64
	View  int
}

// Format describes the host's target image format. Only the format-fit
// extraction consults it.
type Format struct {
	Width       int
	Height      int
	PixelAspect float64
}

// Kind discriminates the closed set of provider variants.
type Kind uint8

const (
	KindCamera Kind = iota
	KindAxis
)

// A Provider is an upstream node bearing a world transform. The two
// concrete variants are *Camera and *Axis; anything else extracts as
// identity.
type Provider interface {
	Kind() Kind

	// Validate forces the provider to recompute its state for ctx.
	// It must be called before World or any camera matrix is read.
	Validate(ctx Context)

	// World returns the local-to-world transform in double precision.
	World() f32.Mat4d
}

// An Axis is a bare transform provider: a world matrix and nothing
// else. Projection and format-fit are undefined for it.
type Axis struct {
	// Transform is the current world matrix.
	Transform f32.Mat4d

	// WorldAt, when set, recomputes Transform during Validate. Leave
	// nil for a static transform.
	WorldAt func(Context) f32.Mat4d
}

// NewAxis returns an axis at the origin.
func NewAxis() *Axis {
	return &Axis{Transform: f32.IdentityD()}
}

func (a *Axis) Kind() Kind { return KindAxis }

func (a *Axis) Validate(ctx Context) {
	if a.WorldAt != nil {
		a.Transform = a.WorldAt(ctx)
	}
}

func (a *Axis) World() f32.Mat4d { return a.Transform }
