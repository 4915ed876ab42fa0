// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package morph

// Box holds exactly one value. It is the minimal Functor instance:
// mapping always applies.
type Box[A any] struct {
	value A
}

// NewBox creates a Box holding v.
func NewBox[A any](v A) Box[A] {
	return Box[A]{value: v}
}

// Get returns the held value.
func (b Box[A]) Get() A {
	return b.value
}

// Fmap implements Functor: the transformation is applied to the single
// held element. The result is the canonical Box[Erased] instantiation.
func (b Box[A]) Fmap(f func(Erased) Erased) Functor {
	return NewBox[Erased](f(b.value))
}

// eraseBox canonicalizes a Box to its Erased instantiation.
func eraseBox[A any](b Box[A]) Box[Erased] {
	return NewBox[Erased](b.value)
}

// LiftBox lifts a Box into a Coyoneda with the identity chain.
func LiftBox[A any](b Box[A]) Coyoneda[A, A] {
	return Lift[A](eraseBox(b))
}

// UnliftBox recovers a typed Box from a lowered Functor.
// Panics when f is not a Box or its element is not a B.
func UnliftBox[B any](f Functor) Box[B] {
	b := f.(Box[Erased])
	return NewBox(b.value.(B))
}
