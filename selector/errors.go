// SPDX-License-Identifier: MIT
// Package: quiver/selector
//
// errors.go — sentinel errors for the selector package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site.
//   • Implementations SHOULD attach context using %w at method boundaries.
//   • No panics on user input; ErrUnsupportedKind marks programmer error
//     (a Kind added without updating a consumer switch).

package selector

import "errors"

// ErrIndexOutOfRange indicates that a position or index (after negative-index
// normalization) falls outside [0, size) for the operation's current bounds.
// Usage: if errors.Is(err, ErrIndexOutOfRange) { /* report bad index */ }.
var ErrIndexOutOfRange = errors.New("selector: index out of range")

// ErrBadSpecifier indicates that FromSpec received a specifier of an
// unsupported type (neither nil, integer-like, nor an integer slice).
var ErrBadSpecifier = errors.New("selector: unsupported specifier type")

// ErrBadIndexValue indicates that an element inside an otherwise-valid
// iterable specifier is semantically invalid (out of range, or not
// integer-like where the construction contract requires one).
// The whole construction fails; no partial selector is ever produced.
var ErrBadIndexValue = errors.New("selector: invalid index in specifier")

// ErrUnsupportedKind indicates that a consumer switch received a selector
// Kind outside the closed variant set. This is an internal guard against
// non-exhaustive dispatch, mirroring a hard "unsupported selector type"
// failure rather than a silent default.
var ErrUnsupportedKind = errors.New("selector: unsupported selector kind")
