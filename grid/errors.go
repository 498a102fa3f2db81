// SPDX-License-Identifier: MIT

package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid operations. Every message carries the "grid:"
// prefix; operations wrap them with their tag (see gridErrorf), so match
// with errors.Is rather than ==.
var (
	// ErrTypeMismatch indicates that two grids passed to Zip hold elements of
	// different dynamic types.
	ErrTypeMismatch = errors.New("grid: element type mismatch")

	// ErrShapeMismatch indicates an input whose shape the operation cannot
	// accept: a Reduce identity that is not a single element, a grid that is
	// not pair-shaped, or a Zip whose inputs are neither both flat nor both
	// paired.
	ErrShapeMismatch = errors.New("grid: shape mismatch")
)

// Operation tags used when wrapping sentinels.
const (
	opReduce   = "Reduce"
	opZip      = "Zip"
	opZipPairs = "ZipPairs"
	opZipQuads = "ZipQuads"
	opAsPairs  = "AsPairs"
)

// gridErrorf wraps err with the given operation tag.
func gridErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
