/*
Package critical provides a process-wide critical-section guard, the in-process
analog of a nestable global interrupt disable.  At most one region is active at
a time, so code inside a region races with neither other tasks nor
interrupt-side callers that also enter the region.

Regions are scoped: Enter returns a handle and every handle must be unwound
with Exit.  Nesting is expressed through the handle itself, which only the
current holder possesses, rather than being detected at runtime.
*/
package critical

import "sync"

// root is the stand-in for the global interrupt-enable state.
var root sync.Mutex

// Region is the handle for an active critical section.
type Region struct {
	depth int
}

// Enter acquires the process-wide region, blocking until it is free.  The
// returned handle is at depth 1 and must be unwound with Exit.
func Enter() *Region {
	root.Lock()
	return &Region{depth: 1}
}

// Enter nests one level deeper inside an already-held region.  Each nested
// Enter requires a matching Exit.
func (r *Region) Enter() *Region {
	r.depth++
	return r
}

// Exit unwinds one nesting level, releasing the process-wide region when the
// outermost level exits.  Unbalanced calls panic: broken nesting is a
// programming error, not a runtime condition.
func (r *Region) Exit() {
	if r.depth < 1 {
		panic("critical: unbalanced Exit")
	}

	r.depth--
	if r.depth == 0 {
		root.Unlock()
	}
}

// Do runs f inside the process-wide region, guaranteeing the enter/exit pair
// on every path out of f.
func Do(f func()) {
	r := Enter()
	defer r.Exit()
	f()
}
