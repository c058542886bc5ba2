package render

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"regexp"
	"slices"

	"github.com/goccy/go-graphviz"
)

// Formats lists the formats accepted by [Convert].
var Formats = []string{"dot", "svg", "pdf", "png"}

// ErrRsvgMissing is returned for PDF and PNG output when rsvg-convert is
// not on PATH.
var ErrRsvgMissing = errors.New("rsvg-convert not found (install librsvg: brew install librsvg, apt install librsvg2-bin)")

// pngZoom is the rsvg-convert zoom factor for PNG output.
const pngZoom = "2"

// Convert turns DOT source into format. "dot" returns the source as is;
// "pdf" and "png" go through SVG and rsvg-convert.
func Convert(ctx context.Context, dot, format string) ([]byte, error) {
	if !slices.Contains(Formats, format) {
		return nil, fmt.Errorf("unknown format %q (want one of %v)", format, Formats)
	}
	if format == "dot" {
		return []byte(dot), nil
	}
	svg, err := SVG(ctx, dot)
	if err != nil || format == "svg" {
		return svg, err
	}
	args := []string{"--format", format}
	if format == "png" {
		args = append(args, "--zoom", pngZoom)
	}
	return rsvg(ctx, svg, args...)
}

// SVG lays out dot with the embedded Graphviz and returns the SVG document,
// sized in pixels rather than points.
func SVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse dot: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	return pixelSize(buf.Bytes()), nil
}

func rsvg(ctx context.Context, svg []byte, args ...string) ([]byte, error) {
	path, err := exec.LookPath("rsvg-convert")
	if err != nil {
		return nil, ErrRsvgMissing
	}
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Stdin = bytes.NewReader(svg)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("rsvg-convert: %w: %s", err, bytes.TrimSpace(stderr.Bytes()))
	}
	return stdout.Bytes(), nil
}

var (
	svgOpenTag = regexp.MustCompile(`<svg[^>]*>`)
	viewBox    = regexp.MustCompile(`viewBox="[0-9.]+ [0-9.]+ ([0-9.]+) ([0-9.]+)"`)
)

// pixelSize rewrites the opening svg tag so width and height equal the
// viewBox extent. Documents without a viewBox are returned unchanged.
func pixelSize(svg []byte) []byte {
	m := viewBox.FindSubmatch(svg)
	if m == nil {
		return svg
	}
	var w, h float64
	if _, err := fmt.Sscanf(string(m[1])+" "+string(m[2]), "%g %g", &w, &h); err != nil || w == 0 || h == 0 {
		return svg
	}
	tag := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`, w, h, w, h)
	return svgOpenTag.ReplaceAll(svg, []byte(tag))
}
