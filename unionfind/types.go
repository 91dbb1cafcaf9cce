// Package unionfind defines the shared contract, variant selector and
// sentinel errors for the disjoint-set implementations.
package unionfind

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument indicates a non-positive element count or an element
// index outside [0, n). It is the single invalid-input kind shared by every
// package built on unionfind.
var ErrInvalidArgument = errors.New("unionfind: invalid argument")

// ErrUnknownKind indicates New was called with a Kind it does not know.
var ErrUnknownKind = errors.New("unionfind: unknown kind")

// UnionFind is the capability set shared by all disjoint-set variants.
//
// Elements are the integers 0..Len()-1. Every method that takes an element
// returns ErrInvalidArgument (wrapped with context) for an out-of-range index
// and leaves the structure untouched in that case.
type UnionFind interface {
	// Find returns the canonical representative of p's component.
	Find(p int) (int, error)
	// Union merges the components containing p and q. Merging two elements
	// that are already connected is a no-op.
	Union(p, q int) error
	// Connected reports whether p and q belong to the same component.
	Connected(p, q int) (bool, error)
	// Count returns the current number of components.
	Count() int
	// Len returns the number of elements.
	Len() int
}

// Kind selects a UnionFind implementation.
type Kind string

const (
	// KindWeighted selects union-by-size with path halving.
	KindWeighted Kind = "weighted"
	// KindQuickUnion selects unweighted trees without compression.
	KindQuickUnion Kind = "quickunion"
	// KindQuickFind selects the flat id array.
	KindQuickFind Kind = "quickfind"
)

// Kinds lists every supported Kind, production variant first.
func Kinds() []Kind {
	return []Kind{KindWeighted, KindQuickUnion, KindQuickFind}
}

// New constructs the variant named by kind over n singleton elements.
//
// Errors: ErrUnknownKind for an unsupported kind, ErrInvalidArgument for n <= 0.
// Complexity: O(n).
func New(kind Kind, n int) (UnionFind, error) {
	switch kind {
	case KindWeighted:
		return NewWeighted(n)
	case KindQuickUnion:
		return NewQuickUnion(n)
	case KindQuickFind:
		return NewQuickFind(n)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

// checkSize rejects non-positive element counts.
func checkSize(method string, n int) error {
	if n <= 0 {
		return fmt.Errorf("%s: %w: n must be greater than 0, got %d", method, ErrInvalidArgument, n)
	}
	return nil
}

// checkIndex rejects p outside [0, n).
func checkIndex(method string, p, n int) error {
	if p < 0 || p >= n {
		return fmt.Errorf("%s: %w: index %d is not between 0 and %d", method, ErrInvalidArgument, p, n-1)
	}
	return nil
}

// checkPair rejects p or q outside [0, n); p is checked first.
func checkPair(method string, p, q, n int) error {
	if err := checkIndex(method, p, n); err != nil {
		return err
	}
	return checkIndex(method, q, n)
}

// identity returns the slice 0, 1, ..., n-1.
func identity(n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = i
	}
	return s
}
