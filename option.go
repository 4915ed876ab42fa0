// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package morph

// Option represents an optional value: Some holds one element, None
// holds nothing.
type Option[A any] struct {
	value   A
	present bool
}

// Some creates an Option holding v.
func Some[A any](v A) Option[A] {
	return Option[A]{value: v, present: true}
}

// None creates an empty Option.
func None[A any]() Option[A] {
	return Option[A]{}
}

// IsSome reports whether the Option holds a value.
func (o Option[A]) IsSome() bool {
	return o.present
}

// IsNone reports whether the Option is empty.
func (o Option[A]) IsNone() bool {
	return !o.present
}

// Get returns the held value and true, or zero and false.
func (o Option[A]) Get() (A, bool) {
	if o.present {
		return o.value, true
	}
	var zero A
	return zero, false
}

// GetOr returns the held value, or fallback when empty.
func (o Option[A]) GetOr(fallback A) A {
	if o.present {
		return o.value
	}
	return fallback
}

// MapOption applies f to the held value, preserving emptiness.
func MapOption[A, B any](o Option[A], f func(A) B) Option[B] {
	if o.present {
		return Some(f(o.value))
	}
	return None[B]()
}

// FlatMapOption sequences two optional computations.
func FlatMapOption[A, B any](o Option[A], f func(A) Option[B]) Option[B] {
	if o.present {
		return f(o.value)
	}
	return None[B]()
}

// MatchOption pattern matches on the Option, calling onSome or onNone.
func MatchOption[A, T any](o Option[A], onSome func(A) T, onNone func() T) T {
	if o.present {
		return onSome(o.value)
	}
	return onNone()
}

// Fmap implements Functor: the transformation is applied to the held
// element, if any. The result is the canonical Option[Erased]
// instantiation regardless of the receiver's element type.
func (o Option[A]) Fmap(f func(Erased) Erased) Functor {
	if o.present {
		return Some[Erased](f(o.value))
	}
	return None[Erased]()
}

// eraseOption canonicalizes an Option to its Erased instantiation.
func eraseOption[A any](o Option[A]) Option[Erased] {
	if o.present {
		return Some[Erased](o.value)
	}
	return None[Erased]()
}

// LiftOption lifts an Option into a Coyoneda with the identity chain.
func LiftOption[A any](o Option[A]) Coyoneda[A, A] {
	return Lift[A](eraseOption(o))
}

// UnliftOption recovers a typed Option from a lowered Functor.
// Panics when f is not an Option or its element is not a B.
func UnliftOption[B any](f Functor) Option[B] {
	o := f.(Option[Erased])
	if o.present {
		return Some(o.value.(B))
	}
	return None[B]()
}
