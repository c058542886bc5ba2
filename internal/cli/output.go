package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"
	"time"

	"github.com/spf13/cobra"

	cerrors "github.com/matzehuels/combikit/pkg/errors"
	pkgio "github.com/matzehuels/combikit/pkg/io"
	"github.com/matzehuels/combikit/pkg/render"
)

// Output formats.
const (
	formatText = "text"
	formatJSON = "json"
)

var (
	rowFormats   = []string{formatText, formatJSON}
	graphFormats = append([]string{formatText, formatJSON}, render.Formats...)
)

// outputFlags holds the flags shared by commands that print results.
type outputFlags struct {
	format   string
	out      string
	detailed bool
	allowed  []string
}

func (o *outputFlags) register(cmd *cobra.Command, allowed []string) {
	o.allowed = allowed
	cmd.Flags().StringVarP(&o.format, "format", "f", formatText, fmt.Sprintf("output format %v", allowed))
	cmd.Flags().StringVarP(&o.out, "output", "o", "", "write to file instead of stdout")
	if slices.Contains(allowed, "dot") {
		cmd.Flags().BoolVar(&o.detailed, "detailed", false, "label diagram nodes with indices and payloads")
	}
}

func (o *outputFlags) validate() error {
	if !slices.Contains(o.allowed, o.format) {
		return cerrors.New(cerrors.ErrCodeInvalidArgument, "format %q: want one of %v", o.format, o.allowed)
	}
	return nil
}

// result bundles the ways a command can print its value.
type result struct {
	value any
	text  func(io.Writer) error
	dot   func(render.Options) string
}

// write prints res in the selected format to stdout or the output file.
func (o *outputFlags) write(ctx context.Context, res result) error {
	var data []byte
	switch o.format {
	case formatJSON, formatText:
	default:
		if res.dot == nil {
			return cerrors.New(cerrors.ErrCodeUnsupported, "format %q is not available here", o.format)
		}
		var err error
		data, err = render.Convert(ctx, res.dot(render.Options{Detailed: o.detailed}), o.format)
		if err != nil {
			return err
		}
	}

	if o.format == formatJSON && o.out != "" {
		if err := pkgio.ExportJSON(res.value, o.out); err != nil {
			return err
		}
		printFile(o.out)
		return nil
	}

	w := io.Writer(os.Stdout)
	if o.out != "" {
		f, err := os.Create(o.out)
		if err != nil {
			return fmt.Errorf("create %s: %w", o.out, err)
		}
		defer f.Close()
		w = f
	}

	var err error
	switch {
	case data != nil:
		_, err = w.Write(data)
	case o.format == formatJSON:
		err = pkgio.WriteJSON(res.value, w)
	default:
		err = res.text(w)
	}
	if err != nil {
		return err
	}
	if o.out != "" {
		printFile(o.out)
	}
	return nil
}

// report prints the one-line run summary to stderr when results go to a
// file, or logs it otherwise.
func (o *outputFlags) report(ctx context.Context, what string, n int, cached bool, d time.Duration) {
	if o.out != "" {
		printSuccess("%d %s", n, what)
		printStats(n, cached, d)
		return
	}
	loggerFromContext(ctx).Debug("done", "results", n, "cached", cached, "duration", d)
}
