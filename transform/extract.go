// SPDX-License-Identifier: Unlicense OR MIT

package transform

import "github.com/petermercell/C44Matrix/f32"

// Option selects which sub-component of a provider's transform is
// extracted. Ordinals match the host's enumeration order.
type Option uint8

const (
	// OptionTransform extracts the full world transform.
	OptionTransform Option = iota
	// OptionTranslation extracts the translation component only.
	OptionTranslation
	// OptionRotation extracts the rotation component only.
	OptionRotation
	// OptionScale extracts the scale component only.
	OptionScale
	// OptionProjection extracts the camera projection matrix.
	// Identity for an axis.
	OptionProjection
	// OptionFormat extracts the camera format-fit matrix for the host
	// format. Identity for an axis.
	OptionFormat
)

var optionNames = [...]string{
	"transform", "translation", "rotation", "scale", "projection", "format",
}

func (o Option) String() string {
	if int(o) < len(optionNames) {
		return optionNames[o]
	}
	return "unknown"
}

// Extract resolves the matrix option of p against format, evaluated at
// ctx. The provider is validated first so that animated providers are
// read consistently with ctx rather than from a stale cache. The world
// and projection matrices narrow from double to single precision here.
//
// A nil provider, a provider of unknown kind, or an option that does
// not apply to the provider's kind all yield identity. This permissive
// default is the host's contract; no error is signaled.
func Extract(ctx Context, p Provider, opt Option, format Format) f32.Mat4 {
	switch p := p.(type) {
	case *Camera:
		p.Validate(ctx)
		switch opt {
		case OptionTransform:
			return p.World().Mat4()
		case OptionTranslation:
			return p.World().Mat4().TranslationOnly()
		case OptionRotation:
			return p.World().Mat4().RotationOnly()
		case OptionScale:
			return p.World().Mat4().ScaleOnly()
		case OptionProjection:
			return p.Projection().Mat4()
		case OptionFormat:
			return p.FormatMatrix(format)
		}
	case *Axis:
		p.Validate(ctx)
		switch opt {
		case OptionTransform:
			return p.World().Mat4()
		case OptionTranslation:
			return p.World().Mat4().TranslationOnly()
		case OptionRotation:
			return p.World().Mat4().RotationOnly()
		case OptionScale:
			return p.World().Mat4().ScaleOnly()
		case OptionProjection, OptionFormat:
			// Not applicable to an axis.
			return f32.Identity()
		}
	}
	return f32.Identity()
}
