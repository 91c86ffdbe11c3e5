// SPDX-License-Identifier: MIT

package interop

import (
	"errors"
	"fmt"
)

// ErrEmptyShape indicates a shape with a zero dimension, which gonum's
// constructors reject.
var ErrEmptyShape = errors.New("interop: gonum cannot represent an empty matrix")

// ErrBandRange indicates a bandwidth gonum cannot store (kl >= rows or ku >= cols).
var ErrBandRange = errors.New("interop: bandwidth out of range for gonum")

// interopErrorf wraps err with the operation name, preserving it via %w.
func interopErrorf(op string, err error) error {
	return fmt.Errorf("interop.%s: %w", op, err)
}
