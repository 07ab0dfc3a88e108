// SPDX-License-Identifier: MIT
// Package: eventchains/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Constructors attach context with "%s: ...: %w" (method name first).
//   • Constructors never panic; validation panics live in WithX/XWeightFn only.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (nodes, rows, cols) is
// smaller than the minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrBadWeight indicates an unusable weight bound (e.g., maxWeight == 0).
var ErrBadWeight = errors.New("builder: invalid weight bound")

// ErrConstructFailed indicates that the core graph rejected an edge the
// constructor produced. It signals a bug, not bad input.
var ErrConstructFailed = errors.New("builder: construction failed")
