// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package morph

// Erased represents a type-erased value handle traveling through a chain.
// Steps use Erased parameters so heterogeneous transformations share one
// homogeneous evaluation pipeline. Concrete types are recovered via type
// assertions at step boundaries.
type Erased = any

// step is one opaque transformation over erased value handles.
// Invoking it consumes the erased input and yields a freshly owned
// erased output. A step placed in a chain runs at most once per Run pass
// and never concurrently with itself within a pass.
type step func(Erased) Erased

// opaque wraps a concretely typed transformation as a step.
// The assertion recovers the concrete input type and doubles as the
// runtime check that an unsafe insertion did not break the typed chain:
// on disagreement it panics at the first ill-typed step.
func opaque[A, B any](f func(A) B) step {
	return func(v Erased) Erased {
		return f(v.(A))
	}
}
