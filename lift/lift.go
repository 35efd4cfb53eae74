// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package lift provides combinators that lift a function over a single
// value to optional (pointer), iterator and slice shaped inputs so that each
// date operation is written once.
package lift

import "iter"

// Ptr returns a function that applies fn to the value pointed to by its
// argument. A nil argument yields a nil result.
func Ptr[T, U any](fn func(T) U) func(*T) *U {
	return func(v *T) *U {
		if v == nil {
			return nil
		}
		r := fn(*v)
		return &r
	}
}

// Seq returns a function that maps fn lazily over an iterator. A nil
// iterator yields an empty iterator.
func Seq[T, U any](fn func(T) U) func(iter.Seq[T]) iter.Seq[U] {
	return func(seq iter.Seq[T]) iter.Seq[U] {
		return func(yield func(U) bool) {
			if seq == nil {
				return
			}
			for v := range seq {
				if !yield(fn(v)) {
					return
				}
			}
		}
	}
}

// Slice returns a function that maps fn over a slice, returning a new slice.
// A nil slice yields a nil slice.
func Slice[T, U any](fn func(T) U) func([]T) []U {
	return func(s []T) []U {
		if s == nil {
			return nil
		}
		r := make([]U, len(s))
		for i, v := range s {
			r[i] = fn(v)
		}
		return r
	}
}
