// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package morph

// Result represents a fallible outcome: Ok holds a value, Err holds an
// error.
type Result[A any] struct {
	value A
	err   error
	ok    bool
}

// Ok creates a successful Result holding v.
func Ok[A any](v A) Result[A] {
	return Result[A]{value: v, ok: true}
}

// Err creates a failed Result holding err.
func Err[A any](err error) Result[A] {
	return Result[A]{err: err}
}

// IsOk reports whether the Result holds a value.
func (r Result[A]) IsOk() bool {
	return r.ok
}

// IsErr reports whether the Result holds an error.
func (r Result[A]) IsErr() bool {
	return !r.ok
}

// Get returns the held value and true, or zero and false.
func (r Result[A]) Get() (A, bool) {
	if r.ok {
		return r.value, true
	}
	var zero A
	return zero, false
}

// GetOr returns the held value, or fallback on error.
func (r Result[A]) GetOr(fallback A) A {
	if r.ok {
		return r.value
	}
	return fallback
}

// Err returns the held error, or nil when the Result is Ok.
func (r Result[A]) Err() error {
	return r.err
}

// MapResult applies f to the held value, propagating the error.
func MapResult[A, B any](r Result[A], f func(A) B) Result[B] {
	if r.ok {
		return Ok(f(r.value))
	}
	return Err[B](r.err)
}

// FlatMapResult sequences two fallible computations.
func FlatMapResult[A, B any](r Result[A], f func(A) Result[B]) Result[B] {
	if r.ok {
		return f(r.value)
	}
	return Err[B](r.err)
}

// MatchResult pattern matches on the Result, calling onOk or onErr.
func MatchResult[A, T any](r Result[A], onOk func(A) T, onErr func(error) T) T {
	if r.ok {
		return onOk(r.value)
	}
	return onErr(r.err)
}

// Fmap implements Functor: the transformation is applied to the held
// value, propagating the error. The result is the canonical
// Result[Erased] instantiation regardless of the receiver's value type.
func (r Result[A]) Fmap(f func(Erased) Erased) Functor {
	if r.ok {
		return Ok[Erased](f(r.value))
	}
	return Err[Erased](r.err)
}

// eraseResult canonicalizes a Result to its Erased instantiation.
func eraseResult[A any](r Result[A]) Result[Erased] {
	if r.ok {
		return Ok[Erased](r.value)
	}
	return Err[Erased](r.err)
}

// LiftResult lifts a Result into a Coyoneda with the identity chain.
func LiftResult[A any](r Result[A]) Coyoneda[A, A] {
	return Lift[A](eraseResult(r))
}

// UnliftResult recovers a typed Result from a lowered Functor.
// Panics when f is not a Result or its value is not a B.
func UnliftResult[B any](f Functor) Result[B] {
	r := f.(Result[Erased])
	if r.ok {
		return Ok(r.value.(B))
	}
	return Err[B](r.err)
}
