// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package morph

// Deferred functor mapping (Coyoneda).
// A container is lifted once, element mappings accumulate in a Chain,
// and the container's own Fmap runs exactly once at Lower time. Mapping
// cost is therefore independent of the container until materialization.

// Functor is the capability a container must expose to participate in
// deferred mapping: apply one erased transformation to every held
// element, preserving shape. Implementations return their own kind with
// elements at the canonical Erased instantiation.
type Functor interface {
	Fmap(func(Erased) Erased) Functor
}

// Coyoneda pairs a lifted container with the chain of deferred element
// mappings. A is the dynamic type of the container's elements at lift
// time; B is the element type once the deferred mappings have run.
type Coyoneda[A, B any] struct {
	point Functor
	morph Chain[A, B]
}

// Lift wraps a container with the identity chain. The container's
// elements must have dynamic type A. For the built-in containers prefer
// LiftOption, LiftResult and LiftBox, which canonicalize the element
// representation before lifting; custom Functor implementations use
// Lift directly.
func Lift[A any](point Functor) Coyoneda[A, A] {
	return Coyoneda[A, A]{point: point, morph: Identity[A]()}
}

// MapCoyoneda defers one more element mapping. The container is not
// touched; the chain is extended at the output side, consuming y's
// chain handle. Like the chain builders, MapCoyoneda therefore consumes
// y: map the returned value from here on.
func MapCoyoneda[A, B, C any](y Coyoneda[A, B], f func(B) C) Coyoneda[A, C] {
	return Coyoneda[A, C]{point: y.point, morph: Append(y.morph, f)}
}

// TransformCoyoneda swaps the underlying container by a natural
// transformation, leaving the deferred chain untouched. nat must
// preserve element values, so that the deferred chain still applies.
// The built-in conversions OptionToResult and ResultToOption,
// instantiated at Erased, are transformations of this kind.
func TransformCoyoneda[A, B any](y Coyoneda[A, B], nat func(Functor) Functor) Coyoneda[A, B] {
	return Coyoneda[A, B]{point: nat(y.point), morph: y.morph}
}

// Lower materializes the deferred mappings: the container's native Fmap
// runs exactly once, with the whole chain as the element
// transformation. Lower does not consume the Coyoneda and may be called
// repeatedly. Recover the typed container with UnliftOption,
// UnliftResult or UnliftBox.
func (y Coyoneda[A, B]) Lower() Functor {
	return y.point.Fmap(func(v Erased) Erased {
		return y.morph.Run(v.(A))
	})
}

// OptionToResult converts presence to success: Some becomes Ok, None
// becomes Err holding err. It is a natural transformation, so
// instantiated at Erased it drops directly into TransformCoyoneda.
func OptionToResult[A any](o Option[A], err error) Result[A] {
	if v, ok := o.Get(); ok {
		return Ok(v)
	}
	return Err[A](err)
}

// ResultToOption forgets the error channel: Ok becomes Some, Err
// becomes None.
func ResultToOption[A any](r Result[A]) Option[A] {
	if v, ok := r.Get(); ok {
		return Some(v)
	}
	return None[A]()
}
