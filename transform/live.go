// SPDX-License-Identifier: Unlicense OR MIT

package transform

import "github.com/petermercell/C44Matrix/f32"

// LiveCount is the number of values the live readout exposes.
const LiveCount = 16

// Live exposes the provider-derived matrix for UI readout. It reflects
// the raw extraction only: manual entry, transpose and invert are
// deliberately ignored, so the panel always shows what the provider
// delivers at the queried context.
type Live struct {
	src func() Resolver
}

// NewLive returns a readout backed by src. The resolver is fetched on
// every query, so the readout tracks the owner's current parameters
// and provider.
func NewLive(src func() Resolver) *Live {
	return &Live{src: src}
}

// Enabled reports whether the readout is active, which is the case
// exactly when the matrix comes from a provider.
func (l *Live) Enabled(Context) bool {
	return l.src().Source == SourceProvider
}

// Animated mirrors Enabled: a provider-derived matrix is treated as
// animated regardless of the provider's actual keyframes.
func (l *Live) Animated(ctx Context) bool {
	return l.Enabled(ctx)
}

// Default always reports false; the provider-derived matrix is never
// considered a default value.
func (l *Live) Default(Context) bool { return false }

// Values returns the 16 matrix values at ctx in row-major order, the
// legacy fixed-width calling convention. Identity when the matrix
// source is manual.
func (l *Live) Values(ctx Context) [LiveCount]float64 {
	var out [LiveCount]float64
	for i, v := range l.matrix(ctx) {
		out[i] = float64(v)
	}
	return out
}

// ProvideValues returns up to n matrix values at ctx, the variable
// width calling convention. The numeric content matches Values up to
// the requested count; out-of-range widths clamp rather than fail.
func (l *Live) ProvideValues(ctx Context, n int) []float64 {
	switch {
	case n < 0:
		n = 0
	case n > LiveCount:
		n = LiveCount
	}
	m := l.matrix(ctx)
	out := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, float64(m[i]))
	}
	return out
}

func (l *Live) matrix(ctx Context) f32.Mat4 {
	r := l.src()
	if r.Source != SourceProvider {
		return f32.Identity()
	}
	return Extract(ctx, r.Provider, r.Option, r.Format)
}
