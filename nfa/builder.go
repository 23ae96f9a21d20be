package nfa

import "github.com/coregx/greplex/arena"

// Builder assembles NFA fragments from the public constructors below. All
// nodes it allocates share one arena (so they are never freed individually)
// and one Gen (so every graph walk over any fragment it produced uses
// non-colliding generation marks).
type Builder struct {
	nodes *arena.Arena[Node]
	cases *arena.Arena[[256]*Node]
	gen   *Gen
}

// NewBuilder returns a Builder backed by a fresh arena and generation
// counter.
func NewBuilder() *Builder {
	return &Builder{
		nodes: arena.New[Node](),
		cases: arena.New[[256]*Node](),
		gen:   NewGen(),
	}
}

// Gen returns the Builder's generation counter, so later stages (the
// case-dispatch optimizer, the DFA engine) can share it instead of minting
// their own.
func (b *Builder) Gen() *Gen { return b.gen }

// NodeCount returns the number of nodes allocated so far, a safe ceiling
// for a dfa/lazy.Engine's maxFollow (SPEC_FULL.md §5: "the total NFA-node
// count is tracked as patterns are built; it bounds the follow-set scratch
// array").
func (b *Builder) NodeCount() int { return b.nodes.Len() }

func (b *Builder) alloc(k Kind) *Node {
	n := b.nodes.Alloc()
	n.Kind = k
	n.ID = uint32(b.nodes.Len() - 1)
	return n
}

// newCaseTable allocates a fresh zeroed 256-entry dispatch table from the
// Builder's own arena, so the optimizer never needs a bare `new` and every
// table shares the arena's hunk discipline.
func (b *Builder) newCaseTable() *[256]*Node {
	return b.cases.Alloc()
}

// Class returns a fragment with a single node consuming one byte in
// [lo, hi].
func (b *Builder) Class(lo, hi byte) Fragment {
	n := b.alloc(KindClass)
	n.Lo, n.Hi = lo, hi
	return Fragment{Begin: n, End: n}
}

// Begin returns a fragment with a single zero-width line-start anchor.
func (b *Builder) Begin() Fragment {
	n := b.alloc(KindBegin)
	return Fragment{Begin: n, End: n}
}

// End returns a fragment with a single zero-width line-end anchor.
func (b *Builder) End() Fragment {
	n := b.alloc(KindEnd)
	return Fragment{Begin: n, End: n}
}

// Concat patches every edge in a's dangling chain to point at c.Begin and
// returns the fragment spanning both.
func (b *Builder) Concat(a, c Fragment) Fragment {
	patchNext(a.End, c.Begin)
	return Fragment{Begin: a.Begin, End: c.End}
}

// Alt returns a fragment matching a or c: a fresh node whose Alt edge
// enters c and whose Next edge enters a. The two fragments' dangling
// chains are merged so a single Concat afterward patches both arms at once.
//
// Named Alt to match the external-collaborator naming the parser adapter
// expects; the node it allocates is tagged KindOr — alternation sites are
// always Or, Kleene-star sites are always Alt, even though the two node
// shapes are identical and the case-dispatch optimizer is the only code
// that cares about the distinction.
func (b *Builder) Alt(a, c Fragment) Fragment {
	n := b.alloc(KindOr)
	n.Alt = c.Begin
	n.Next = a.Begin
	end := appendNext(a.End, c.End)
	return Fragment{Begin: n, End: end}
}

// Star returns a fragment matching zero or more repetitions of a: a fresh
// Alt node whose Alt edge enters a, with a's dangling chain patched back to
// this same Alt node (closing the loop). The Alt node's own Next field is
// left dangling for the caller to patch onto whatever follows the star.
func (b *Builder) Star(a Fragment) Fragment {
	n := b.alloc(KindAlt)
	n.Alt = a.Begin
	patchNext(a.End, n)
	return Fragment{Begin: n, End: n}
}

// patchNext walks the dangling-edge chain rooted at end (following Next
// pointers until one is nil) and repoints every link in the chain at
// target. end itself may be the chain's sole link.
func patchNext(end *Node, target *Node) {
	for end != nil {
		next := end.Next
		end.Next = target
		if next == nil {
			break
		}
		end = next
	}
}

// appendNext merges two dangling-edge chains by walking to the tail of a's
// chain (the first node whose Next is nil) and attaching b's chain there.
// It returns a, the merged chain's head — mirroring plan9's appendnext.
func appendNext(a, b *Node) *Node {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	tail := a
	for tail.Next != nil {
		tail = tail.Next
	}
	tail.Next = b
	return a
}
