// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package morph

import (
	"sync/atomic"
)

// Chain represents a pure function from A to B built by composing
// single-argument transformations. A and B are compile-time markers
// attesting to the types the erased steps actually expect and produce;
// no value of either type is stored.
//
// A Chain value is an affine handle onto shared storage. Every builder
// operation (Identity aside) consumes its operand handles and returns a
// fresh handle carrying the updated type markers; the consumed handles
// are dead, and using one panics. Run and Len never consume, so a built
// chain can be evaluated repeatedly.
type Chain[A, B any] struct {
	core *chainCore
	gen  uint64
}

// chainCore is the storage behind chain handles: the segment sequence
// plus the generation counter enforcing affine handle use.
type chainCore struct {
	gen  atomic.Uint64
	segs segList
}

// take consumes the handle generation gen, advancing the core by one.
// The compare-and-swap admits exactly one consumer per generation, so
// double extension is a deterministic panic even under racing builders.
func (c *chainCore) take(gen uint64) {
	if !c.gen.CompareAndSwap(gen, gen+1) {
		panic("morph: chain already consumed")
	}
}

// peek panics when the handle generation gen is no longer live.
// It never advances the core.
func (c *chainCore) peek(gen uint64) {
	if c.gen.Load() != gen {
		panic("morph: use of a consumed chain")
	}
}

// Identity returns the pass-through chain: one empty segment, zero
// steps. Running it returns the input unchanged. Every chain starts
// here, which is the sole reason a zero-step chain may reinterpret its
// input at the output type.
func Identity[A any]() Chain[A, A] {
	return Chain[A, A]{core: &chainCore{segs: newSegList()}}
}

// Append extends the chain at the output side: the existing chain runs
// first, then f. Consumes c and returns the handle re-typed at the
// output.
func Append[A, B, C any](c Chain[A, B], f func(B) C) Chain[A, C] {
	c.core.take(c.gen)
	c.core.segs.pushBack(opaque(f))
	return Chain[A, C]{core: c.core, gen: c.gen + 1}
}

// Prepend extends the chain at the input side: f runs first, then the
// existing chain. Consumes c and returns the handle re-typed at the
// input.
func Prepend[A, B, C any](c Chain[B, C], f func(A) B) Chain[A, C] {
	c.core.take(c.gen)
	c.core.segs.pushFront(opaque(f))
	return Chain[A, C]{core: c.core, gen: c.gen + 1}
}

// Concat splices g after f: g's segment sequence is relinked after f's.
// O(1) in the segment count; individual steps are never traversed or
// copied. Consumes both operands. The result runs f fully, then feeds
// f's output to g.
func Concat[A, B, C any](f Chain[A, B], g Chain[B, C]) Chain[A, C] {
	f.core.take(f.gen)
	g.core.take(g.gen)
	f.core.segs.splice(&g.core.segs)
	return Chain[A, C]{core: f.core, gen: f.gen + 1}
}

// UnsafeAppend is the escape hatch twin of Append: it inserts a raw
// erased step without the typed guarantee that the step's input agrees
// with the chain's current output. By instantiating C the caller
// asserts that f yields values of dynamic type C. Misuse is not
// detected here; it surfaces as a type assertion panic inside Run at
// the first ill-typed step.
//
// The asserted output type parameter leads so callers can write
// UnsafeAppend[string](c, raw) and let the rest infer.
func UnsafeAppend[C, A, B any](c Chain[A, B], f func(Erased) Erased) Chain[A, C] {
	c.core.take(c.gen)
	c.core.segs.pushBack(step(f))
	return Chain[A, C]{core: c.core, gen: c.gen + 1}
}

// UnsafePrepend is the escape hatch twin of Prepend. By instantiating A
// the caller asserts that f accepts values of dynamic type A and yields
// what the chain's first step expects. See UnsafeAppend for the
// contract.
func UnsafePrepend[A, B, C any](c Chain[B, C], f func(Erased) Erased) Chain[A, C] {
	c.core.take(c.gen)
	c.core.segs.pushFront(step(f))
	return Chain[A, C]{core: c.core, gen: c.gen + 1}
}

// Len reports the number of steps in the chain. Non-consuming.
func (c Chain[A, B]) Len() int {
	c.core.peek(c.gen)
	return c.core.segs.length()
}
