// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package morph

import (
	"github.com/bassosimone/runtimex"
	"github.com/gammazero/deque"
)

// Segment storage for chains.
// A segment is one contiguous, double-ended run of steps; a chain core
// owns an ordered singly-linked sequence of segments. Extension grows a
// segment's deque at one end; only concatenation grows the segment list,
// by relinking in O(1).

// segment holds one run of steps plus the link to the next segment.
// Segments are never shared between chain cores.
type segment struct {
	steps deque.Deque[step]
	next  *segment
}

// segList is the ordered segment sequence owned by one chain core.
// Every live core holds at least one segment; the zero value is not
// ready for use.
type segList struct {
	head *segment
	tail *segment
}

// newSegList returns a list holding the single empty segment every
// chain starts from.
func newSegList() segList {
	s := &segment{}
	return segList{head: s, tail: s}
}

// pushFront places one step before all others, at the front of the
// first segment. O(1) amortized.
func (l *segList) pushFront(s step) {
	runtimex.Assert(l.head != nil)
	l.head.steps.PushFront(s)
}

// pushBack places one step after all others, at the back of the last
// segment. O(1) amortized.
func (l *segList) pushBack(s step) {
	runtimex.Assert(l.tail != nil)
	l.tail.steps.PushBack(s)
}

// splice relinks other's segments after l's. O(1) in the segment count;
// no step is touched, traversed, or copied. other is emptied so the
// donor core cannot alias the moved segments.
func (l *segList) splice(other *segList) {
	runtimex.Assert(l.tail != nil)
	runtimex.Assert(other.head != nil)
	l.tail.next = other.head
	l.tail = other.tail
	other.head, other.tail = nil, nil
}

// length counts steps across all segments.
func (l *segList) length() int {
	n := 0
	for s := l.head; s != nil; s = s.next {
		n += s.steps.Len()
	}
	return n
}
