// This file contains the section traversal iterators. All three are lazy,
// finite, and restartable: each call to Depth, Breadth, or Upstream returns
// a fresh iterator over an unmodified morphology, and iterating mutates no
// shared state.
package morphology

// Iterator walks sections one at a time. Next returns ok=false once the
// traversal is exhausted.
type Iterator interface {
	Next() (Section, bool)
}

// Depth returns a depth-first pre-order iterator rooted at s: a section is
// visited before its children, children in declaration order.
func (s Section) Depth() Iterator {
	return &depthIterator{stack: []Section{s}}
}

// Breadth returns a breadth-first iterator rooted at s, visiting sections
// level by level.
func (s Section) Breadth() Iterator {
	return &breadthIterator{queue: []Section{s}}
}

// Upstream returns an iterator yielding s and then its ancestors, up to and
// including the root.
func (s Section) Upstream() Iterator {
	return &upstreamIterator{next: s, ok: true}
}

type depthIterator struct {
	stack []Section
}

func (it *depthIterator) Next() (Section, bool) {
	if len(it.stack) == 0 {
		return Section{}, false
	}
	s := it.stack[len(it.stack)-1]
	it.stack = it.stack[:len(it.stack)-1]
	children := s.Children()
	for i := len(children) - 1; i >= 0; i-- {
		it.stack = append(it.stack, children[i])
	}
	return s, true
}

type breadthIterator struct {
	queue []Section
}

func (it *breadthIterator) Next() (Section, bool) {
	if len(it.queue) == 0 {
		return Section{}, false
	}
	s := it.queue[0]
	it.queue = it.queue[1:]
	it.queue = append(it.queue, s.Children()...)
	return s, true
}

type upstreamIterator struct {
	next Section
	ok   bool
}

func (it *upstreamIterator) Next() (Section, bool) {
	if !it.ok {
		return Section{}, false
	}
	s := it.next
	it.next, it.ok = s.Parent()
	return s, true
}
