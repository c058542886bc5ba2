package io

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/combikit/pkg/chain"
	cerrors "github.com/matzehuels/combikit/pkg/errors"
	"github.com/matzehuels/combikit/pkg/islands"
)

func TestReadGraph(t *testing.T) {
	doc := `{
		"nodes": [{"id": "a"}, {"id": "b"}, {"id": "c"}],
		"edges": [{"from": "a", "to": "c", "payload": "x"}]
	}`
	req, err := ReadGraph(strings.NewReader(doc))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]any{"a", "b", "c"}, req.Items); diff != "" {
		t.Errorf("items mismatch (-want +got):\n%s", diff)
	}
	want := []islands.Link[any]{{A: 0, B: 2, Payload: "x"}}
	if diff := cmp.Diff(want, req.Links); diff != "" {
		t.Errorf("links mismatch (-want +got):\n%s", diff)
	}
}

func TestReadGraphErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		code cerrors.Code
	}{
		{"malformed", `{"nodes": [`, cerrors.ErrCodeInvalidFormat},
		{"unknown field", `{"nodes": [], "vertices": []}`, cerrors.ErrCodeInvalidFormat},
		{"duplicate id", `{"nodes": [{"id": "a"}, {"id": "a"}]}`, cerrors.ErrCodeInvalidInput},
		{"empty id", `{"nodes": [{"id": ""}]}`, cerrors.ErrCodeInvalidInput},
		{"unknown node", `{"nodes": [{"id": "a"}], "edges": [{"from": "a", "to": "z"}]}`, cerrors.ErrCodeInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadGraph(strings.NewReader(tt.doc))
			if got := cerrors.GetCode(err); got != tt.code {
				t.Errorf("code = %q (err %v), want %q", got, err, tt.code)
			}
		})
	}
}

func TestReadSegments(t *testing.T) {
	req, err := ReadSegments(strings.NewReader(`{"segments": [["a", "b"], [1, 2]]}`))
	if err != nil {
		t.Fatal(err)
	}
	want := []chain.Segment[any]{{"a", "b"}, {float64(1), float64(2)}}
	if diff := cmp.Diff(want, req.Segments); diff != "" {
		t.Errorf("segments mismatch (-want +got):\n%s", diff)
	}
}

func TestReadGroups(t *testing.T) {
	req, err := ReadGroups(strings.NewReader(`{"groups": [[0, 1], [2]], "max_value": 4}`))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([][]int{{0, 1}, {2}}, req.Groups); diff != "" {
		t.Errorf("groups mismatch (-want +got):\n%s", diff)
	}
	if req.MaxValue == nil || *req.MaxValue != 4 {
		t.Errorf("MaxValue = %v, want 4", req.MaxValue)
	}

	if _, err := ReadGroups(strings.NewReader(`{}`)); !cerrors.Is(err, cerrors.ErrCodeInvalidInput) {
		t.Errorf("missing groups: err = %v", err)
	}
}

func TestImport(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "segments.json")
	if err := os.WriteFile(path, []byte(`{"segments": [["x", "y"]]}`), 0o644); err != nil {
		t.Fatal(err)
	}
	req, err := Import(path, ReadSegments)
	if err != nil {
		t.Fatal(err)
	}
	if len(req.Segments) != 1 {
		t.Errorf("got %d segments, want 1", len(req.Segments))
	}

	_, err = Import(filepath.Join(dir, "missing.json"), ReadSegments)
	if !cerrors.Is(err, cerrors.ErrCodeFileNotFound) {
		t.Errorf("missing file: err = %v, want FILE_NOT_FOUND", err)
	}
}

func TestWriteRows(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteRows([][]int{{0, 1, 2}, {2, 1, 0}}, &buf); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), "0 1 2\n2 1 0\n"; got != want {
		t.Errorf("WriteRows = %q, want %q", got, want)
	}

	buf.Reset()
	if err := WriteRows([][][]int{{{0, 1}, {2}}}, &buf); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), "{0 1} {2}\n"; got != want {
		t.Errorf("WriteRows partitions = %q, want %q", got, want)
	}
}

func TestWriteChains(t *testing.T) {
	var buf bytes.Buffer
	chains := []chain.Chain[int]{{Values: []int{0, 1, 2}, IsLoop: true}, {Values: []int{3, 4}}}
	if err := WriteChains(chains, &buf); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), "loop: [0 1 2]\nchain: [3 4]\n"; got != want {
		t.Errorf("WriteChains = %q, want %q", got, want)
	}
}

func TestExportJSONRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	in := map[string]any{"groups": [][]int{{0}, {1, 2}}}
	if err := ExportJSON(in, path); err != nil {
		t.Fatal(err)
	}
	req, err := Import(path, ReadGroups)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([][]int{{0}, {1, 2}}, req.Groups); diff != "" {
		t.Errorf("groups mismatch (-want +got):\n%s", diff)
	}
}
