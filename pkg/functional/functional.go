// pkg/functional/functional.go

package functional

import "golang.org/x/exp/constraints"

// Numeric is a type constraint for numeric types.
type Numeric interface {
	constraints.Integer | constraints.Float
}

// Map applies f to every element of list and returns a new slice of the
// results, same length, same order. The input slice is never modified.
func Map[A, B any](list []A, f func(A) B) []B {
	out := make([]B, len(list))
	for i, v := range list {
		out[i] = f(v)
	}
	return out
}

// MapIndexed is Map with the element index passed to f.
func MapIndexed[A, B any](list []A, f func(int, A) B) []B {
	out := make([]B, len(list))
	for i, v := range list {
		out[i] = f(i, v)
	}
	return out
}

// Filter returns a new slice containing only the elements of list for which
// pred returns true.
func Filter[T any](list []T, pred func(T) bool) []T {
	var out []T
	for _, v := range list {
		if pred(v) {
			out = append(out, v)
		}
	}
	return out
}

// Reduce folds list into a single value, applying f left to right starting
// from init.
func Reduce[T, U any](list []T, init U, f func(U, T) U) U {
	acc := init
	for _, v := range list {
		acc = f(acc, v)
	}
	return acc
}

// ZipWith combines xs and ys element-wise with f, truncating to the shorter
// of the two.
func ZipWith[A, B, C any](xs []A, ys []B, f func(A, B) C) []C {
	n := len(xs)
	if len(ys) < n {
		n = len(ys)
	}
	out := make([]C, n)
	for i := 0; i < n; i++ {
		out[i] = f(xs[i], ys[i])
	}
	return out
}

// Pipe threads v through fns left to right.
func Pipe[T any](v T, fns ...func(T) T) T {
	for _, f := range fns {
		v = f(v)
	}
	return v
}

// Sum adds all elements of list.
func Sum[T Numeric](list []T) T {
	var zero T
	return Reduce(list, zero, func(acc, v T) T { return acc + v })
}

// Max returns the largest element of list, or zero for an empty list.
func Max[T Numeric](list []T) T {
	var max T
	for i, v := range list {
		if i == 0 || v > max {
			max = v
		}
	}
	return max
}

// All reports whether pred holds for every element of list.
func All[T any](list []T, pred func(T) bool) bool {
	for _, v := range list {
		if !pred(v) {
			return false
		}
	}
	return true
}
