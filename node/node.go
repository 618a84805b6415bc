// SPDX-License-Identifier: Unlicense OR MIT

/*
Package node exposes the C44Matrix compositing node: the parameter
surface, input contract and validate/engine protocol a host graph
drives. The node resolves its effective matrix once per validation
pass and then transforms scanlines with it; the host guarantees that
validation completes before any engine call and that the parameters do
not change while rows are being processed.
*/
package node

import (
	"errors"
	"fmt"

	"github.com/petermercell/C44Matrix/f32"
	"github.com/petermercell/C44Matrix/pixel"
	"github.com/petermercell/C44Matrix/transform"
)

// Input indices. InputImage is the required image connection;
// InputProvider is required only when the matrix source is a provider.
const (
	InputImage = iota
	InputProvider
)

// ErrBadInput reports a connection that is neither a camera nor an
// axis on the provider input.
var ErrBadInput = errors.New("node: input must be a camera or axis provider")

// Params is the node's parameter surface, mirrored from the host UI.
type Params struct {
	Source    transform.Source
	Option    transform.Option
	Matrix    [16]float32 // row-major manual entry
	Invert    bool
	Transpose bool
	WDivide   bool
}

// DefaultParams returns the stock parameter set: manual source, full
// transform option, identity matrix, all flags off.
func DefaultParams() Params {
	return Params{Matrix: f32.Identity()}
}

// A Node applies a 4x4 matrix to the RGBA channels of its image input.
type Node struct {
	params   Params
	provider transform.Provider
	format   transform.Format

	effective f32.Mat4
}

// New returns a node with the given parameters.
func New(p Params) *Node {
	return &Node{params: p, effective: f32.Identity()}
}

// Params returns the current parameter set.
func (n *Node) Params() Params { return n.params }

// SetParams replaces the parameter set. The change takes effect at the
// next Validate; it must not race an in-flight Engine call.
func (n *Node) SetParams(p Params) { n.params = p }

// MinInputs returns the number of required connections: the image,
// plus the provider when the matrix source asks for one.
func (n *Node) MinInputs() int {
	if n.params.Source == transform.SourceProvider {
		return 2
	}
	return 1
}

// MaxInputs equals MinInputs; the node never accepts optional extras.
func (n *Node) MaxInputs() int { return n.MinInputs() }

// InputLabel names input i for the host UI.
func (n *Node) InputLabel(i int) string {
	switch i {
	case InputImage:
		return "img"
	case InputProvider:
		return "cam/axis"
	}
	return ""
}

// SetInput connects v to input i. The provider input accepts only
// camera or axis providers and rejects everything else; the image
// input is owned by the host pipeline and ignored here.
func (n *Node) SetInput(i int, v any) error {
	switch i {
	case InputImage:
		return nil
	case InputProvider:
		if v == nil {
			n.provider = nil
			return nil
		}
		p, ok := v.(transform.Provider)
		if !ok {
			return fmt.Errorf("%w, got %T", ErrBadInput, v)
		}
		n.provider = p
		return nil
	}
	return fmt.Errorf("node: no input %d", i)
}

// Provider returns the connected provider, or nil.
func (n *Node) Provider() transform.Provider { return n.provider }

// RequestChannels names the image channels the node reads and writes.
// The kernel touches exactly R, G, B and A; any other channel in the
// stream is passed through by the host, unseen here.
func (n *Node) RequestChannels() []string {
	return []string{"R", "G", "B", "A"}
}

func (n *Node) resolver() transform.Resolver {
	return transform.Resolver{
		Source:    n.params.Source,
		Manual:    n.params.Matrix,
		Provider:  n.provider,
		Option:    n.params.Option,
		Format:    n.format,
		Transpose: n.params.Transpose,
		Invert:    n.params.Invert,
	}
}

// Validate resolves the effective matrix for ctx and format. It must
// complete before Engine runs and must not be called concurrently with
// it: the effective matrix is read-only shared state across scanlines.
func (n *Node) Validate(ctx transform.Context, format transform.Format) {
	n.format = format
	n.effective = n.resolver().Resolve(ctx)
}

// Effective returns the matrix resolved by the last Validate.
func (n *Node) Effective() f32.Mat4 { return n.effective }

// Engine transforms one scanline with the cached effective matrix.
// Safe to call from multiple goroutines over disjoint scanlines.
func (n *Node) Engine(in, out pixel.Scanline) {
	pixel.Apply(n.effective, n.params.WDivide, in, out)
}

// Live returns the UI readout bridge for the provider-derived matrix.
// The bridge recomputes on demand at the caller's context and reads
// the node's parameters and provider at each query, so it observes
// later SetParams and SetInput changes.
func (n *Node) Live() *transform.Live {
	return transform.NewLive(n.resolver)
}
