// SPDX-License-Identifier: MIT
// Package: quiver/core
//
// errors.go — sentinel errors for core graph operations.
//
// Error policy:
//   • Only package-level sentinels; callers branch with errors.Is.
//   • Context is attached with %w at the method boundary, never baked into
//     the sentinel message.
//   • No panics on user input.

package core

import "errors"

// ErrNegativeCount indicates a negative vertex count passed to New or
// AddVertices.
var ErrNegativeCount = errors.New("core: vertex count must be non-negative")

// ErrIndexOutOfRange indicates a vertex or edge index outside the live
// [0, count) range of its namespace.
var ErrIndexOutOfRange = errors.New("core: index out of range")

// ErrBadEndpoint indicates an edge endpoint referencing a vertex that does
// not exist. The whole AddEdges batch is rejected; no partial insertion.
var ErrBadEndpoint = errors.New("core: edge endpoint out of range")

// ErrAttrNotFound indicates that a requested attribute name does not exist
// in the addressed namespace.
var ErrAttrNotFound = errors.New("core: attribute not found")

// ErrAttrLength indicates a full-column attribute write whose length does
// not match the element count of its namespace.
var ErrAttrLength = errors.New("core: attribute column length mismatch")

// ErrNameNotFound indicates that a vertex name is absent from the name
// index (the name attribute may exist but not contain the requested value).
var ErrNameNotFound = errors.New("core: vertex name not found")

// ErrNilGraph indicates a nil *Graph received where a live graph is required.
var ErrNilGraph = errors.New("core: graph is nil")
