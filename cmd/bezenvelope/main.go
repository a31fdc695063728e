// Command bezenvelope fits an SVG path into a four-sided envelope path and
// prints the morphed path data. With -png it additionally renders a filled
// preview of the result.
//
// Path arguments are SVG path data strings; an argument of the form @file
// reads the path data from the named file instead.
//
// Usage:
//
//	bezenvelope -letter 'M0,0 C0,0 10,0 10,10 Z' -envelope @envelope.txt
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/image/vector"
	"honnef.co/go/envelope"
)

func main() {
	letterArg := flag.String("letter", "", "path data of the letter to morph, or @file")
	envelopeArg := flag.String("envelope", "", "path data of the envelope, or @file")
	precision := flag.Int("precision", 0, "maximum number of decimals in the output (0 for full precision)")
	pngPath := flag.String("png", "", "write a PNG preview of the morphed path to this file")
	size := flag.Int("size", 512, "width and height of the PNG preview in pixels")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if *letterArg == "" || *envelopeArg == "" {
		fmt.Fprintln(os.Stderr, "bezenvelope: both -letter and -envelope are required")
		flag.Usage()
		os.Exit(2)
	}

	letter, err := parsePathArg(*letterArg)
	if err != nil {
		log.Error("parsing letter path", "err", err)
		os.Exit(1)
	}
	env, err := parsePathArg(*envelopeArg)
	if err != nil {
		log.Error("parsing envelope path", "err", err)
		os.Exit(1)
	}
	log.Debug("parsed inputs", "letterElements", len(letter), "envelopeElements", len(env))

	morphed, err := envelope.Morph(letter, env)
	if err != nil {
		log.Error("morphing", "err", err)
		os.Exit(1)
	}

	fmt.Println(morphed.SVG(envelope.SVGOptions{MaxPrecision: *precision}))

	if *pngPath != "" {
		if err := writePreview(*pngPath, morphed, *size); err != nil {
			log.Error("writing preview", "path", *pngPath, "err", err)
			os.Exit(1)
		}
		log.Debug("wrote preview", "path", *pngPath, "size", *size)
	}
}

// parsePathArg parses an SVG path data argument, resolving the @file form.
func parsePathArg(arg string) (envelope.BezPath, error) {
	if rest, ok := strings.CutPrefix(arg, "@"); ok {
		data, err := os.ReadFile(rest)
		if err != nil {
			return nil, err
		}
		arg = strings.TrimSpace(string(data))
	}
	return envelope.ParseSVGPath(arg)
}

// writePreview rasterizes the path, scaled to fit a size×size image with a
// small margin, and writes it to name as a PNG.
func writePreview(name string, p envelope.BezPath, size int) error {
	cbox := p.ControlBox()
	w, h := cbox.Width(), cbox.Height()
	if w == 0 && h == 0 {
		return fmt.Errorf("path has no extent to render")
	}
	margin := float64(size) / 16
	avail := float64(size) - 2*margin
	scale := avail / max(w, h)
	// Center the smaller dimension.
	dx := margin + (avail-w*scale)/2
	dy := margin + (avail-h*scale)/2
	aff := envelope.Translate(envelope.Vec(-cbox.X0, -cbox.Y0)).
		ThenScale(scale, scale).
		ThenTranslate(envelope.Vec(dx, dy))

	ras := vector.NewRasterizer(size, size)
	penDown := false
	for _, el := range p.Transform(aff) {
		switch el.Kind {
		case envelope.MoveToKind:
			if penDown {
				ras.ClosePath()
			}
			ras.MoveTo(float32(el.P0.X), float32(el.P0.Y))
			penDown = true
		case envelope.LineToKind:
			ras.LineTo(float32(el.P0.X), float32(el.P0.Y))
		case envelope.QuadToKind:
			ras.QuadTo(
				float32(el.P0.X), float32(el.P0.Y),
				float32(el.P1.X), float32(el.P1.Y))
		case envelope.CubicToKind:
			ras.CubeTo(
				float32(el.P0.X), float32(el.P0.Y),
				float32(el.P1.X), float32(el.P1.Y),
				float32(el.P2.X), float32(el.P2.Y))
		case envelope.ClosePathKind:
			ras.ClosePath()
			penDown = false
		}
	}
	if penDown {
		ras.ClosePath()
	}

	dst := image.NewAlpha(image.Rect(0, 0, size, size))
	ras.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})

	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := png.Encode(f, dst); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
