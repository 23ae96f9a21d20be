package lazy

import "github.com/coregx/greplex/nfa"

// compareSignature compares a candidate (nodes, match) pair against an
// existing State's signature, using the canonical ordering key from
// SPEC_FULL.md §3: (count, node[0], node[1], …, match-flag) compared
// lexicographically. count is compared first as a cheap pre-filter before
// the per-node identity comparison.
func compareSignature(nodes []*nfa.Node, match bool, s *State) int {
	if len(nodes) != len(s.nodes) {
		if len(nodes) < len(s.nodes) {
			return -1
		}
		return 1
	}
	for i := range nodes {
		if nodes[i].ID != s.nodes[i].ID {
			if nodes[i].ID < s.nodes[i].ID {
				return -1
			}
			return 1
		}
	}
	switch {
	case match == s.Match:
		return 0
	case !match && s.Match:
		return -1
	default:
		return 1
	}
}

// findOrInsert walks the Engine's BST from the root using compareSignature.
// If a State with an identical signature already exists it is returned
// unchanged (the memoization hit); otherwise a fresh State is allocated,
// linked into the tree at the leaf position the walk reached, and returned.
func (e *Engine) findOrInsert(nodes []*nfa.Node, match bool) *State {
	if e.bst == nil {
		e.bst = e.newState(nodes, match)
		return e.bst
	}
	cur := e.bst
	for {
		c := compareSignature(nodes, match, cur)
		switch {
		case c == 0:
			return cur
		case c < 0:
			if cur.left == nil {
				cur.left = e.newState(nodes, match)
				return cur.left
			}
			cur = cur.left
		default:
			if cur.right == nil {
				cur.right = e.newState(nodes, match)
				return cur.right
			}
			cur = cur.right
		}
	}
}

// newState allocates a fresh State from the Engine's arena, copying nodes
// into arena-backed storage (nodes is a reused scratch buffer owned by the
// caller and must not be aliased beyond this call).
func (e *Engine) newState(nodes []*nfa.Node, match bool) *State {
	s := e.states.Alloc()
	s.Match = match
	if len(nodes) > 0 {
		cp := e.nodeLists.AllocSlice(len(nodes))
		copy(cp, nodes)
		s.nodes = cp
	}
	return s
}
