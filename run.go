// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package morph

// Run executes the chain on x in one synchronous pass: segments in
// order, steps within each segment in order, each step's erased output
// feeding the next step's erased input. The pass is iterative, so chain
// length is bounded by available memory, not by stack depth. Cost is
// linear in the step count; the deferred flattening that keeps Concat
// O(1) happens here.
//
// Run does not consume the chain. The same chain may be run repeatedly
// with different inputs, and from multiple goroutines at once, provided
// the composed functions are themselves safe for concurrent use. The
// method value c.Run is a plain func(A) B, so a built chain drops into
// higher-order APIs without an adapter.
//
// Nil convention: the traveling value must not be a nil interface. The
// assertions recovering concrete types treat nil as a contract
// violation and panic; wrap nilable results in a container such as
// Option if absence must flow through a chain.
func (c Chain[A, B]) Run(x A) B {
	c.core.peek(c.gen)
	v := Erased(x)
	for s := c.core.segs.head; s != nil; s = s.next {
		for i := 0; i < s.steps.Len(); i++ {
			v = s.steps.At(i)(v)
		}
	}
	return v.(B)
}
