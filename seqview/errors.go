// SPDX-License-Identifier: MIT
// Package: quiver/seqview
//
// errors.go — sentinel errors for the sequence-view layer.
//
// Error policy:
//   • Only package-level sentinels; callers branch with errors.Is.
//   • Failures abort the whole operation: Select never returns a partial
//     view, SetValues never commits a partial write.
//   • Lower-layer sentinels (core.ErrAttrNotFound, selector.ErrIndexOutOfRange)
//     propagate wrapped with method context rather than being re-minted here.

package seqview

import "errors"

// ErrNoSuchElement indicates that Find's predicate matched no element of
// the view.
var ErrNoSuchElement = errors.New("seqview: no such element")

// ErrBadSpecifier indicates a Select/Find specifier of an unsupported type.
var ErrBadSpecifier = errors.New("seqview: unsupported specifier type")

// ErrMixedSpecifiers indicates that a bare integer opened the enumeration
// phase of Select and a later positional specifier was not an integer.
// The whole Select call fails.
var ErrMixedSpecifiers = errors.New("seqview: non-integer specifier after integer enumeration began")

// ErrSubsetDelete indicates an attempt to delete an attribute through a
// view that designates a strict subset; deletion is whole-graph only.
var ErrSubsetDelete = errors.New("seqview: can't delete attribute from a subset")

// ErrEmptyValues indicates that SetValues received an empty value sequence
// for a non-empty selection. (An empty sequence against an empty selection
// is a no-op, not an error.)
var ErrEmptyValues = errors.New("seqview: value sequence must not be empty")

// ErrNotInSelection indicates that Find-by-name resolved to a vertex that
// exists in the graph but is not part of this view's subset.
var ErrNotInSelection = errors.New("seqview: element exists but not in current selection")

// ErrBadSpan indicates a Span with a non-positive step.
var ErrBadSpan = errors.New("seqview: span step must be positive")
