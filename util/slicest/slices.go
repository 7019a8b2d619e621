// Copyright (c) 2026 Aerocode Team
// Aerocode - aerospace production management
// This source code is licensed under the MIT license found in the LICENSE file.

// Package slicest holds small generic slice helpers.
//
// Suffix letters describe variants:
//   - X: the callback may fail; the first error stops the walk.
//   - I: the callback also receives the index.
package slicest

// Map

func MapXI[T, U any, S ~[]T](s S, fn func(int, T) (U, error)) ([]U, error) {
	result := make([]U, len(s))
	for i, v := range s {
		out, err := fn(i, v)
		if err != nil {
			return nil, err
		}
		result[i] = out
	}
	return result, nil
}

func MapX[T, U any, S ~[]T](s S, fn func(T) (U, error)) ([]U, error) {
	return MapXI(s, func(_ int, t T) (U, error) {
		return fn(t)
	})
}

func Map[T, U any, S ~[]T](s S, fn func(T) U) []U {
	result, _ := MapXI(s, func(_ int, t T) (U, error) {
		return fn(t), nil
	})
	return result
}

// Filter

// Filter returns the elements of s for which keep is true, in order. The
// result never shares memory with s.
func Filter[T any, S ~[]T](s S, keep func(T) bool) S {
	var result S
	for _, t := range s {
		if keep(t) {
			result = append(result, t)
		}
	}
	return result
}
