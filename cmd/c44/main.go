// SPDX-License-Identifier: Unlicense OR MIT

// Command c44 applies a 4x4 matrix to the RGBA channels of an image,
// treating each pixel as a homogeneous 4-vector. The matrix comes from
// a config file: entered manually, or derived from a configured camera
// or axis.
//
// Usage:
//
//	c44 -config c44.yml [-in input.png] [-out output.png] [-frame 1] [-print-matrix]
//
// Input and output default to the config file's paths. PNG, JPEG and
// TIFF inputs are accepted; the output format follows the file
// extension (.tif/.tiff for TIFF, PNG otherwise).
package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/image/tiff"

	"github.com/petermercell/C44Matrix/internal/config"
	"github.com/petermercell/C44Matrix/internal/logging"
	"github.com/petermercell/C44Matrix/node"
	"github.com/petermercell/C44Matrix/render"
	"github.com/petermercell/C44Matrix/transform"
)

func main() {
	cfgPath := flag.String("config", "c44.yml", "config file")
	inPath := flag.String("in", "", "input image (overrides config)")
	outPath := flag.String("out", "", "output image (overrides config)")
	frame := flag.Float64("frame", 1, "evaluation frame")
	view := flag.Int("view", 0, "evaluation view")
	printMatrix := flag.Bool("print-matrix", false, "print the provider-derived matrix and exit")
	flag.Parse()

	logging.InitFromEnv()
	if err := run(*cfgPath, *inPath, *outPath, *frame, *view, *printMatrix); err != nil {
		logging.L().Error("c44 failed", "err", err)
		os.Exit(1)
	}
}

func run(cfgPath, inPath, outPath string, frame float64, view int, printMatrix bool) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	logging.Configure(logging.Options{Level: cfg.LogLevel, JSON: cfg.LogJSON})
	log := logging.L()

	n := node.New(cfg.Params())
	if p := cfg.BuildProvider(); p != nil {
		if err := n.SetInput(node.InputProvider, p); err != nil {
			return err
		}
	}
	at := transform.Context{Frame: frame, View: view}

	if printMatrix {
		printLive(n, at)
		return nil
	}

	if inPath == "" {
		inPath = cfg.Input
	}
	if outPath == "" {
		outPath = cfg.Output
	}
	if inPath == "" || outPath == "" {
		return fmt.Errorf("no input/output image configured")
	}

	src, err := decode(inPath)
	if err != nil {
		return err
	}
	log.Info("loaded image", "path", inPath, "width", src.W, "height", src.H)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	out, err := render.Process(ctx, n, at, src)
	if err != nil {
		return err
	}
	log.Debug("processed", "rows", src.H, "elapsed", time.Since(start))

	if err := encode(outPath, out); err != nil {
		return err
	}
	log.Info("wrote image", "path", outPath)
	return nil
}

func printLive(n *node.Node, at transform.Context) {
	l := n.Live()
	fmt.Printf("enabled: %v  animated: %v\n", l.Enabled(at), l.Animated(at))
	v := l.Values(at)
	for r := 0; r < 4; r++ {
		fmt.Printf("% 12.6f % 12.6f % 12.6f % 12.6f\n",
			v[r*4], v[r*4+1], v[r*4+2], v[r*4+3])
	}
}

func decode(path string) (*render.Frame, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return render.FromImage(img), nil
}

func encode(path string, frame *render.Frame) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	img := frame.Image()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".tif", ".tiff":
		err = tiff.Encode(f, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		err = png.Encode(f, img)
	}
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
