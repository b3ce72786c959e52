// Package layout holds the single unsafe reinterpretation primitive used by
// chunkview, together with the checks that justify it.
//
// A Go array type [N]T is laid out as N consecutive T-sized, T-aligned slots
// with no padding between elements and no hidden metadata, so a run of k*N
// contiguous T elements and a run of k [N]T values are byte-identical.
// GroupLen verifies this identity per instantiation before any cast happens;
// Regroup and Flatten then only recompute the slice header (pointer, length),
// never touching element bytes. The produced slices share the source's
// backing array, so their validity is exactly the source's validity.
//
// Nothing outside this package uses unsafe.
package layout

import (
	"errors"
	"fmt"
	"reflect"
	"unsafe"
)

var (
	// ErrNotArrayOf reports that the group type parameter is not an array
	// over the element type parameter.
	ErrNotArrayOf = errors.New("chunkview: group type must be an array of the element type")

	// ErrZeroLen reports a zero-length group type.
	ErrZeroLen = errors.New("chunkview: chunk size must be non-zero")
)

// GroupLen returns the number of T elements in the array type A after
// checking the contract that makes Regroup and Flatten sound: A must be an
// array of T, its length must be nonzero, and its byte size must equal the
// byte size of that many T values.
func GroupLen[A, T any]() (int, error) {
	at := reflect.TypeOf((*A)(nil)).Elem()
	et := reflect.TypeOf((*T)(nil)).Elem()
	if at.Kind() != reflect.Array || at.Elem() != et {
		return 0, fmt.Errorf("%w: got %v over %v", ErrNotArrayOf, at, et)
	}
	n := at.Len()
	if n == 0 {
		return 0, ErrZeroLen
	}
	var a A
	var t T
	// Guaranteed by Go array layout; kept as a guard in front of the casts.
	if unsafe.Sizeof(a) != uintptr(n)*unsafe.Sizeof(t) {
		return 0, fmt.Errorf("%w: %v is %d bytes, want %d", ErrNotArrayOf,
			at, unsafe.Sizeof(a), uintptr(n)*unsafe.Sizeof(t))
	}
	return n, nil
}

// Regroup reinterprets s, whose length must be an exact multiple of the group
// length, as k groups of type A. The result aliases s's backing array.
func Regroup[A, T any](s []T, k int) []A {
	if k == 0 {
		return nil
	}
	return unsafe.Slice((*A)(unsafe.Pointer(unsafe.SliceData(s))), k)
}

// Flatten is the inverse of Regroup: it reinterprets k groups of n elements
// as a flat run of k*n elements sharing the same backing array.
func Flatten[A, T any](groups []A, n int) []T {
	if len(groups) == 0 {
		return nil
	}
	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(groups))), len(groups)*n)
}
