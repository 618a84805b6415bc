// SPDX-License-Identifier: Unlicense OR MIT

package transform

import "github.com/petermercell/C44Matrix/f32"

// Source selects where the matrix comes from.
type Source uint8

const (
	// SourceManual uses the 16 manually entered values.
	SourceManual Source = iota
	// SourceProvider derives the matrix from the connected provider.
	SourceProvider
)

var sourceNames = [...]string{"manual", "provider"}

func (s Source) String() string {
	if int(s) < len(sourceNames) {
		return sourceNames[s]
	}
	return "unknown"
}

// A Resolver holds one validation pass worth of matrix inputs and
// produces the effective matrix used for pixel processing. It carries
// no state between calls; every Resolve recomputes from scratch.
type Resolver struct {
	Source   Source
	Manual   [16]float32 // row-major, as entered
	Provider Provider
	Option   Option
	Format   Format

	// Conditioning. Transpose applies before Invert.
	Transpose bool
	Invert    bool
}

// Resolve computes the effective matrix at ctx. There is no error
// channel: a disconnected or wrong-kind provider yields identity.
func (r Resolver) Resolve(ctx Context) f32.Mat4 {
	var m f32.Mat4
	switch r.Source {
	case SourceProvider:
		m = Extract(ctx, r.Provider, r.Option, r.Format)
	default:
		m = f32.Mat4(r.Manual)
	}
	if r.Transpose {
		m = m.Transpose()
	}
	if r.Invert {
		m = m.Invert()
	}
	return m
}
