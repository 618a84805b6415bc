// SPDX-License-Identifier: Unlicense OR MIT

// Package config loads the c44 tool configuration: node parameters, an
// optional camera or axis description, and I/O paths. YAML is merged
// with environment overrides (prefix C44__, delimiter __).
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"golang.org/x/exp/slices"

	"github.com/petermercell/C44Matrix/f32"
	"github.com/petermercell/C44Matrix/node"
	"github.com/petermercell/C44Matrix/transform"
)

var (
	// ErrBadMatrix reports a manual matrix that is not 0 or 16 values.
	ErrBadMatrix = errors.New("config: matrix must have 16 values")
	// ErrBadName reports an unknown source, option or provider name.
	ErrBadName = errors.New("config: unknown name")
)

var (
	sourceNames   = []string{"manual", "provider"}
	optionNames   = []string{"transform", "translation", "rotation", "scale", "projection", "format"}
	providerKinds = []string{"", "camera", "axis"}
)

// NodeCfg mirrors the node parameter surface.
type NodeCfg struct {
	Source    string    `koanf:"source"` // manual|provider
	Option    string    `koanf:"option"` // transform|translation|rotation|scale|projection|format
	Matrix    []float32 `koanf:"matrix"` // 16 row-major values; empty means identity
	Invert    bool      `koanf:"invert"`
	Transpose bool      `koanf:"transpose"`
	WDivide   bool      `koanf:"w_divide"`
}

// LensCfg mirrors transform.Lens; zero values fall back to the
// default lens.
type LensCfg struct {
	Focal     float64 `koanf:"focal"`
	HAperture float64 `koanf:"haperture"`
	VAperture float64 `koanf:"vaperture"`
	Near      float64 `koanf:"near"`
	Far       float64 `koanf:"far"`
}

// ProviderCfg describes the upstream camera or axis. Rotation is in
// degrees, applied in ZXY order around the local axes.
type ProviderCfg struct {
	Kind      string    `koanf:"kind"` // camera|axis|empty for none
	Translate []float64 `koanf:"translate"`
	Rotate    []float64 `koanf:"rotate"`
	Scale     []float64 `koanf:"scale"`
	Lens      LensCfg   `koanf:"lens"`
}

// Config is the full tool configuration.
type Config struct {
	Node     NodeCfg     `koanf:"node"`
	Provider ProviderCfg `koanf:"provider"`
	Input    string      `koanf:"input"`
	Output   string      `koanf:"output"`
	LogLevel string      `koanf:"log_level"`
	LogJSON  bool        `koanf:"log_json"`
}

// Load merges the YAML file at path (if present) with C44__ prefixed
// environment variables and validates the result.
func Load(path string) (Config, error) {
	k := koanf.New(".")
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil &&
			!errors.Is(err, fs.ErrNotExist) {
			return Config{}, err
		}
	}
	// The env provider hands keys through verbatim unless a callback
	// maps them onto config paths: strip the prefix, lowercase, and
	// turn the __ delimiter into nesting.
	_ = k.Load(env.Provider("C44__", ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, "C44__")), "__", ".")
	}), nil)

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return cfg, err
	}
	applyDefaults(&cfg)
	if err := validate(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Node.Source == "" {
		cfg.Node.Source = "manual"
	}
	if cfg.Node.Option == "" {
		cfg.Node.Option = "transform"
	}
	if len(cfg.Provider.Scale) == 0 {
		cfg.Provider.Scale = []float64{1, 1, 1}
	}
}

func validate(cfg Config) error {
	if !slices.Contains(sourceNames, cfg.Node.Source) {
		return fmt.Errorf("%w: source %q", ErrBadName, cfg.Node.Source)
	}
	if !slices.Contains(optionNames, cfg.Node.Option) {
		return fmt.Errorf("%w: option %q", ErrBadName, cfg.Node.Option)
	}
	if !slices.Contains(providerKinds, cfg.Provider.Kind) {
		return fmt.Errorf("%w: provider kind %q", ErrBadName, cfg.Provider.Kind)
	}
	if n := len(cfg.Node.Matrix); n != 0 && n != 16 {
		return fmt.Errorf("%w, got %d", ErrBadMatrix, n)
	}
	for _, v := range [][]float64{cfg.Provider.Translate, cfg.Provider.Rotate, cfg.Provider.Scale} {
		if n := len(v); n != 0 && n != 3 {
			return fmt.Errorf("%w: provider vectors need 3 values, got %d", ErrBadName, n)
		}
	}
	return nil
}

// Params converts the node section to node parameters.
func (c Config) Params() node.Params {
	p := node.DefaultParams()
	p.Source = transform.Source(slices.Index(sourceNames, c.Node.Source))
	p.Option = transform.Option(slices.Index(optionNames, c.Node.Option))
	if len(c.Node.Matrix) == 16 {
		copy(p.Matrix[:], c.Node.Matrix)
	}
	p.Invert = c.Node.Invert
	p.Transpose = c.Node.Transpose
	p.WDivide = c.Node.WDivide
	return p
}

// BuildProvider constructs the configured provider, or nil when none
// is declared.
func (c Config) BuildProvider() transform.Provider {
	switch c.Provider.Kind {
	case "camera":
		cam := transform.NewCamera()
		cam.Transform = c.Provider.world()
		cam.Lens = c.Provider.lens()
		return cam
	case "axis":
		a := transform.NewAxis()
		a.Transform = c.Provider.world()
		return a
	}
	return nil
}

func at(v []float64, i int, def float64) float64 {
	if i < len(v) {
		return v[i]
	}
	return def
}

func (p ProviderCfg) world() f32.Mat4d {
	rad := func(deg float64) float64 { return deg * math.Pi / 180 }
	rot := f32.RotateZD(rad(at(p.Rotate, 2, 0))).
		Mul(f32.RotateXD(rad(at(p.Rotate, 0, 0)))).
		Mul(f32.RotateYD(rad(at(p.Rotate, 1, 0))))
	return f32.TranslateD(at(p.Translate, 0, 0), at(p.Translate, 1, 0), at(p.Translate, 2, 0)).
		Mul(rot).
		Mul(f32.ScaleD(at(p.Scale, 0, 1), at(p.Scale, 1, 1), at(p.Scale, 2, 1)))
}

func (p ProviderCfg) lens() transform.Lens {
	l := transform.DefaultLens()
	if p.Lens.Focal > 0 {
		l.Focal = p.Lens.Focal
	}
	if p.Lens.HAperture > 0 {
		l.HAperture = p.Lens.HAperture
	}
	if p.Lens.VAperture > 0 {
		l.VAperture = p.Lens.VAperture
	}
	if p.Lens.Near > 0 {
		l.Near = p.Lens.Near
	}
	if p.Lens.Far > 0 {
		l.Far = p.Lens.Far
	}
	return l
}
