package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/combikit/pkg/chain"
	cerrors "github.com/matzehuels/combikit/pkg/errors"
	"github.com/matzehuels/combikit/pkg/islands"
	"github.com/matzehuels/combikit/pkg/pipeline"
)

type graph struct {
	Nodes []node `json:"nodes"`
	Edges []edge `json:"edges"`
}

type node struct {
	ID string `json:"id"`
}

type edge struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Payload any    `json:"payload,omitempty"`
}

type segments struct {
	Segments []chain.Segment[any] `json:"segments"`
}

// decode reads exactly one JSON value from r into v, rejecting unknown
// fields.
func decode(r io.Reader, v any) error {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return cerrors.Wrap(cerrors.ErrCodeInvalidFormat, err, "decode")
	}
	return nil
}

// ReadGraph decodes a node/edge document from r into an islands request.
//
// Items are the node ids in document order; each edge becomes a link
// between the positions of its endpoints. ReadGraph returns an error if
// the JSON is malformed, a node id is empty or repeated, or an edge names an
// unknown node. ReadGraph does not close r.
func ReadGraph(r io.Reader) (pipeline.IslandsRequest, error) {
	var data graph
	if err := decode(r, &data); err != nil {
		return pipeline.IslandsRequest{}, err
	}

	index := make(map[string]int, len(data.Nodes))
	req := pipeline.IslandsRequest{
		Items: make([]any, len(data.Nodes)),
		Links: make([]islands.Link[any], len(data.Edges)),
	}
	for i, n := range data.Nodes {
		if n.ID == "" {
			return pipeline.IslandsRequest{}, cerrors.New(cerrors.ErrCodeInvalidInput, "node %d has no id", i)
		}
		if _, dup := index[n.ID]; dup {
			return pipeline.IslandsRequest{}, cerrors.New(cerrors.ErrCodeInvalidInput, "duplicate node id %q", n.ID)
		}
		index[n.ID] = i
		req.Items[i] = n.ID
	}
	for i, e := range data.Edges {
		a, ok := index[e.From]
		if !ok {
			return pipeline.IslandsRequest{}, cerrors.New(cerrors.ErrCodeInvalidInput, "edge %s->%s: unknown node %q", e.From, e.To, e.From)
		}
		b, ok := index[e.To]
		if !ok {
			return pipeline.IslandsRequest{}, cerrors.New(cerrors.ErrCodeInvalidInput, "edge %s->%s: unknown node %q", e.From, e.To, e.To)
		}
		req.Links[i] = islands.Link[any]{A: a, B: b, Payload: e.Payload}
	}
	return req, nil
}

// ReadSegments decodes a segment document from r.
func ReadSegments(r io.Reader) (pipeline.ChainsRequest, error) {
	var data segments
	if err := decode(r, &data); err != nil {
		return pipeline.ChainsRequest{}, err
	}
	return pipeline.ChainsRequest{Segments: data.Segments}, nil
}

// ReadGroups decodes a group document from r. A "limit" field is accepted
// as well, so saved requests can be replayed.
func ReadGroups(r io.Reader) (pipeline.PartitionsRequest, error) {
	var req pipeline.PartitionsRequest
	if err := decode(r, &req); err != nil {
		return pipeline.PartitionsRequest{}, err
	}
	if req.Groups == nil {
		return pipeline.PartitionsRequest{}, cerrors.New(cerrors.ErrCodeInvalidInput, "document has no groups")
	}
	return req, nil
}

// Import opens the file at path and decodes it with read. A missing file
// yields a FILE_NOT_FOUND error; "-" reads standard input.
func Import[T any](path string, read func(io.Reader) (T, error)) (T, error) {
	if path == "-" {
		return read(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		var zero T
		if os.IsNotExist(err) {
			return zero, cerrors.Wrap(cerrors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return zero, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return read(f)
}
