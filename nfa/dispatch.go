package nfa

import "github.com/coregx/greplex/internal/sparse"

// Caselim is the minimum number of distinct byte values an Or-spine must
// reach before the optimizer collapses it into a CaseDispatch node. Below
// this threshold an Or chain is already cheap enough to walk directly.
const Caselim = 7

// Optimize rewrites root's graph in place, collapsing every Or spine whose
// leaves cover at least Caselim distinct byte values into a single
// CaseDispatch node, and returns the (possibly replaced) root.
//
// A single pass over the graph, memoized by gen so a node reachable via
// multiple paths is only considered once. The rewrite is then reapplied to
// each CaseDispatch cell's own subtree, since collapsing a spine can expose
// a fresh Or spine nested underneath — mirroring plan9's addcase/case1,
// which recurses into the cells it just built.
func (b *Builder) Optimize(root *Node) *Node {
	mark := b.gen.Next()
	return b.optimizeNode(root, mark)
}

func (b *Builder) optimizeNode(n *Node, mark uint32) *Node {
	if n == nil || n.Gen == mark {
		return n
	}
	n.Gen = mark
	switch n.Kind {
	case KindOr:
		if count, _ := countOr(n); count >= Caselim {
			return b.collapseOr(n, mark)
		}
		n.Alt = b.optimizeNode(n.Alt, mark)
		n.Next = b.optimizeNode(n.Next, mark)
	case KindAlt:
		n.Alt = b.optimizeNode(n.Alt, mark)
		n.Next = b.optimizeNode(n.Next, mark)
	case KindCaseDispatch:
		for i := range n.Cases {
			n.Cases[i] = b.optimizeNode(n.Cases[i], mark)
		}
		n.Next = b.optimizeNode(n.Next, mark)
	default:
		// Class, Begin, End: leaves with respect to the Alt/Or spine walk.
	}
	return n
}

// countOr walks an Or spine (following Next through nested Or nodes),
// counting the number of distinct byte values reachable through Or→Class
// leaves on the spine's Alt edges, plus the spine's terminal Class node (the
// construction-order base arm, reached once the Next chain runs out of Or
// links — plan9's countor folds this same node into its running total by
// recursing until it hits a Tclass and adding its range there, rather than
// stopping at the spine boundary). It returns the count and whether every
// node visited was a pure Or/Class spine link (false if a non-Class,
// non-Or child was found, meaning the spine has a "tail" that must move to
// the CaseDispatch's Next as an Alt).
func countOr(n *Node) (count int, pure bool) {
	pure = true
	seen := sparse.NewSparseSet(256)
	cur := n
	for cur != nil && cur.Kind == KindOr {
		if cur.Alt != nil && cur.Alt.Kind == KindClass {
			for c := int(cur.Alt.Lo); c <= int(cur.Alt.Hi); c++ {
				seen.Insert(uint32(c))
			}
		} else {
			pure = false
		}
		cur = cur.Next
	}
	if cur != nil {
		if cur.Kind == KindClass {
			for c := int(cur.Lo); c <= int(cur.Hi); c++ {
				seen.Insert(uint32(c))
			}
		} else {
			pure = false
		}
	}
	return seen.Size(), pure
}

// collapseOr rewrites the Or spine rooted at n into a single CaseDispatch
// node. For each Or link on the spine whose Alt child is a Class [lo, hi],
// every byte in [lo, hi] gets cases[byte] = Or(k, cases[byte]) where k is
// the class's continuation (Class.Next) — chained via Or-allocation so a
// byte covered by more than one class on the spine keeps every alternative
// reachable. The spine's terminal Class node (the construction-order base
// arm sitting at the end of the Next chain) is dispatched the same way,
// matching case1's Tclass case folding the same node into c->u.cases. Any
// other non-Class child found while walking the spine (the "impure" tail)
// is instead carried forward on the CaseDispatch's own Next edge as an Alt,
// so it is still tried once the byte-dispatch cells are exhausted.
//
// The rewrite does not recurse into a cell's subtree as part of this same
// walk — each cell is optimized in a later call to optimizeNode, after
// collapseOr returns, mirroring the teacher lineage's addcase, which
// likewise defers recursion into the cells it just built rather than
// inlining it into the collapse loop.
func (b *Builder) collapseOr(n *Node, mark uint32) *Node {
	table := b.newCaseTable()
	disp := b.alloc(KindCaseDispatch)
	disp.Cases = table

	var tail *Node
	cur := n
	for cur != nil && cur.Kind == KindOr {
		if cur.Alt != nil && cur.Alt.Kind == KindClass {
			cls := cur.Alt
			for c := int(cls.Lo); c <= int(cls.Hi); c++ {
				table[c] = b.orAlloc(table[c], cls.Next)
			}
		} else if cur.Alt != nil {
			tail = b.appendAlt(tail, cur.Alt)
		}
		cur = cur.Next
	}
	if cur != nil {
		if cur.Kind == KindClass {
			for c := int(cur.Lo); c <= int(cur.Hi); c++ {
				table[c] = b.orAlloc(table[c], cur.Next)
			}
		} else {
			// A non-Class node reached at the spine's end (the Next chain
			// ran out of Or links): carry it forward the same way as an
			// impure Alt child.
			tail = b.appendAlt(tail, cur)
		}
	}
	disp.Next = tail

	for i := range table {
		if table[i] != nil {
			table[i] = b.optimizeNode(table[i], mark)
		}
	}
	if disp.Next != nil {
		disp.Next = b.optimizeNode(disp.Next, mark)
	}
	return disp
}

// orAlloc chains a newly reachable continuation k onto an existing cell
// value: if the cell is empty, k becomes the cell directly (no wrapper
// needed, since there is nothing to pick between); otherwise a fresh Or
// node is allocated through the Builder's own arena (so it receives a
// proper monotonic ID like any other node — synthetic nodes built outside
// the arena would all alias ID 0 and corrupt the DFA's node-identity
// signature) with Alt = k, Next = existing.
func (b *Builder) orAlloc(existing *Node, k *Node) *Node {
	if existing == nil {
		return k
	}
	n := b.alloc(KindOr)
	n.Alt = k
	n.Next = existing
	return n
}

// appendAlt chains an impure spine child n onto the CaseDispatch's growing
// tail, using an arena-allocated KindAlt wrapper so the tail, like every
// cell, carries real node identity.
func (b *Builder) appendAlt(tail *Node, n *Node) *Node {
	if tail == nil {
		return n
	}
	w := b.alloc(KindAlt)
	w.Alt = n
	w.Next = tail
	return w
}
