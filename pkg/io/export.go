package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/matzehuels/combikit/pkg/chain"
	"github.com/matzehuels/combikit/pkg/islands"
)

// WriteJSON encodes v as indented JSON and writes it to w.
func WriteJSON(v any, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes v to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(v any, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(v, f)
}

// WriteRows writes one enumeration row per line, e.g. "0 2 1" for a
// permutation or "{0 1} {2} {3}" for a partition.
func WriteRows[T any](rows []T, w io.Writer) error {
	for _, row := range rows {
		if _, err := fmt.Fprintln(w, FormatRow(row)); err != nil {
			return err
		}
	}
	return nil
}

// FormatRow renders a single row as text. Integer slices become
// space-separated values; slices of slices become brace groups.
func FormatRow(row any) string {
	switch v := row.(type) {
	case []int:
		return joinInts(v)
	case [][]int:
		parts := make([]string, len(v))
		for i, g := range v {
			parts[i] = "{" + joinInts(g) + "}"
		}
		return strings.Join(parts, " ")
	default:
		return fmt.Sprint(v)
	}
}

func joinInts(vs []int) string {
	var b strings.Builder
	for i, v := range vs {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprint(&b, v)
	}
	return b.String()
}

// WriteIslands writes one line per island listing its items, followed by
// an indented line per link.
func WriteIslands[T, L any](parts []islands.Island[T, L], w io.Writer) error {
	for i, is := range parts {
		if _, err := fmt.Fprintf(w, "island %d: %v\n", i, is.Items); err != nil {
			return err
		}
		for _, l := range is.Links {
			if _, err := fmt.Fprintf(w, "  %d-%d\n", l.A, l.B); err != nil {
				return err
			}
		}
	}
	return nil
}

// WriteChains writes one line per chain, marking loops.
func WriteChains[T any](chains []chain.Chain[T], w io.Writer) error {
	for _, c := range chains {
		kind := "chain"
		if c.IsLoop {
			kind = "loop"
		}
		if _, err := fmt.Fprintf(w, "%s: %v\n", kind, c.Values); err != nil {
			return err
		}
	}
	return nil
}
