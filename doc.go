// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package morph provides stack-safe composition of single-argument
// functions in Go.
//
// The core type [Chain] represents a pure function from A to B built
// from an unbounded number of composed transformations. Internally the
// transformations are stored type-erased, as an ordered sequence of
// segments each holding a double-ended run of steps; the type
// parameters of Chain are compile-time markers recovered only at
// evaluation boundaries.
//
// # Design Philosophy
//
// morph provides:
//   - O(1) amortized extension of a chain at either end
//   - O(1) concatenation of two chains, by relinking segments
//   - Iterative evaluation with no stack growth in the chain length
//
// A naive encoding that nests one closure inside another needs
// recursive invocation proportional to the composition length and
// overflows the stack around one hundred thousand functions; eager
// flattening instead
// makes joining two compositions O(n). Deferring the flattening to an
// iterative nested loop at [Chain.Run] time gives both O(1) guarantees
// at once.
//
// # Chain Operations
//
// Builders consume their operand handles and return re-typed handles:
//
//   - [Identity]: The pass-through chain, origin of every chain
//   - [Append]: Extend at the output side (runs after the chain)
//   - [Prepend]: Extend at the input side (runs before the chain)
//   - [Concat]: Splice one chain after another in O(1)
//
// Evaluation and introspection never consume:
//
//   - [Chain.Run]: Evaluate on an input, repeatedly and concurrently
//   - [Chain.Len]: Number of composed steps
//
// The method value c.Run is a plain func(A) B, so a built chain drops
// into higher-order APIs (mapping over a slice, feeding a worker)
// without an adapter.
//
// # Affine Handles
//
// A Chain value is a handle carrying a generation number onto shared
// storage. Builders atomically advance the generation, so at most one
// handle per chain is live: extending or concatenating the same handle
// twice panics ("morph: chain already consumed"), as does evaluating a
// handle whose chain was consumed by a builder ("morph: use of a
// consumed chain"). Two independent chains may be built concurrently;
// one chain must not be extended by two goroutines, and the panic makes
// that deterministic rather than silent.
//
// # Unsafe Operations
//
// [UnsafeAppend] and [UnsafePrepend] insert a raw func(Erased) Erased
// step without the typed guarantee that neighboring steps agree. The
// caller instantiates the asserted type explicitly, e.g.
// UnsafeAppend[string](c, raw). Misuse surfaces as a type assertion
// panic inside [Chain.Run] at the first ill-typed step, never as a
// recoverable error.
//
// Nil convention: the traveling value must not be a nil interface.
// Type assertions at step boundaries treat nil as a contract violation;
// thread absence through a chain with [Option] instead.
//
// # Deferred Functor Mapping
//
// The [Coyoneda] wrapper defers element mappings over any container
// implementing [Functor]: mappings accumulate in a Chain and the
// container's own Fmap runs exactly once at materialization.
//
//   - [Functor]: Container capability, one erased Fmap preserving shape
//   - [Lift]: Wrap a container with the identity chain
//   - [MapCoyoneda]: Defer one more element mapping
//   - [TransformCoyoneda]: Swap the container by a natural transformation
//   - [Coyoneda.Lower]: Materialize, applying Fmap once
//
// # Containers
//
// Three Functor instances ship with the package, with typed lift and
// unlift helpers:
//
//   - [Option]: [Some], [None], [LiftOption], [UnliftOption],
//     [MapOption], [FlatMapOption], [MatchOption]
//   - [Result]: [Ok], [Err], [LiftResult], [UnliftResult],
//     [MapResult], [FlatMapResult], [MatchResult]
//   - [Box]: [NewBox], [LiftBox], [UnliftBox]
//
// [OptionToResult] and [ResultToOption] convert between the first two;
// instantiated at [Erased] they serve as natural transformations for
// [TransformCoyoneda].
//
// # Example
//
//	chain := morph.Append(
//		morph.Append(morph.Identity[int](), func(x int) int { return x * 2 }),
//		strconv.Itoa,
//	)
//	s := chain.Run(21)
//	// s == "42"
//
//	y := morph.MapCoyoneda(morph.LiftOption(morph.Some(41)), func(x int) int { return x + 1 })
//	o := morph.UnliftOption[int](y.Lower())
//	// o == morph.Some(42)
package morph
