// Package io reads combikit problem documents from JSON and writes results
// back out.
//
// # Graph documents
//
// Islands problems are described by a node/edge document. Nodes are
// identified by string ids; edges refer to them by id and may carry any
// JSON payload:
//
//	{
//	  "nodes": [{"id": "a"}, {"id": "b"}, {"id": "c"}],
//	  "edges": [{"from": "a", "to": "b", "payload": {"weight": 2}}]
//	}
//
// [ReadGraph] turns this into a [pipeline.IslandsRequest] whose items are
// the node ids in document order. Duplicate ids and edges to unknown ids are
// rejected.
//
// # Segment documents
//
// Chain problems are a list of two-element arrays:
//
//	{"segments": [["a", "b"], ["b", "c"]]}
//
// # Group documents
//
// Partition problems list index groups and an optional universe bound:
//
//	{"groups": [[0, 1, 2], [0, 2], [1, 3]], "max_value": 4}
//
// # Errors
//
// Decoding failures carry the INVALID_FORMAT code, content problems
// INVALID_INPUT and missing files FILE_NOT_FOUND (see [errors.Code]).
//
// [errors.Code]: github.com/matzehuels/combikit/pkg/errors.Code
package io
