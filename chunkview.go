// Package chunkview reinterprets a slice as a slice of fixed-size element
// groups without copying or allocating.
//
// Where Rust would write a const-generic chunk size, the group is carried as
// an array type parameter: splitting a []byte into pairs is
//
//	chunks, rest := chunkview.WithRest[[2]byte](data)
//
// The returned slices alias data's backing array, so they are valid exactly
// as long as data is, and must not be retained past it. All functions are
// pure and allocation-free; concurrent use on the same source is fine as long
// as nobody mutates the backing storage while the views are alive.
package chunkview

import (
	"errors"

	"github.com/rawbytedev/chunkview/internal/layout"
)

var (
	// ErrNotGroupOf reports that the group type A is not an array of the
	// element type T.
	ErrNotGroupOf = layout.ErrNotArrayOf

	// ErrZeroChunk reports a zero-length group type.
	ErrZeroChunk = layout.ErrZeroLen

	// ErrInexact reports a slice whose length is not a multiple of the
	// chunk size, from TryExact.
	ErrInexact = errors.New("chunkview: slice length is not a multiple of the chunk size")
)

// WithRest splits s into a slice of N-element groups, starting at the
// beginning of s, and a rest slice with length strictly less than N. The
// group count is floor(len(s)/N); the groups followed by the rest cover s
// element-for-element in order. Both results alias s; nothing is copied.
//
// Panics if A is not a nonzero-length array of T.
func WithRest[A, T any](s []T) ([]A, []T) {
	n, err := layout.GroupLen[A, T]()
	if err != nil {
		panic(err)
	}
	k := len(s) / n
	return layout.Regroup[A](s[:k*n], k), s[k*n:]
}

// Exact splits s into a slice of N-element groups, asserting that no rest
// exists. The caller guarantees len(s) is an exact multiple of N.
//
// Panics if A is not a nonzero-length array of T, or if len(s)%N != 0.
func Exact[A, T any](s []T) []A {
	n, err := layout.GroupLen[A, T]()
	if err != nil {
		panic(err)
	}
	if len(s)%n != 0 {
		panic(ErrInexact)
	}
	return layout.Regroup[A](s, len(s)/n)
}

// TryWithRest is WithRest returning contract violations as errors instead of
// panicking: ErrNotGroupOf or ErrZeroChunk.
func TryWithRest[A, T any](s []T) ([]A, []T, error) {
	n, err := layout.GroupLen[A, T]()
	if err != nil {
		return nil, nil, err
	}
	k := len(s) / n
	return layout.Regroup[A](s[:k*n], k), s[k*n:], nil
}

// TryExact is Exact returning contract violations as errors instead of
// panicking: ErrNotGroupOf, ErrZeroChunk, or ErrInexact.
func TryExact[A, T any](s []T) ([]A, error) {
	n, err := layout.GroupLen[A, T]()
	if err != nil {
		return nil, err
	}
	if len(s)%n != 0 {
		return nil, ErrInexact
	}
	return layout.Regroup[A](s, len(s)/n), nil
}

// Join is the inverse of Exact: it reinterprets a slice of N-element groups
// as the flat slice of its elements, in order, aliasing the same memory.
// The element type comes first so the group type can be inferred:
//
//	flat := chunkview.Join[byte](chunks)
//
// Panics if A is not a nonzero-length array of T.
func Join[T, A any](groups []A) []T {
	n, err := layout.GroupLen[A, T]()
	if err != nil {
		panic(err)
	}
	return layout.Flatten[A, T](groups, n)
}
