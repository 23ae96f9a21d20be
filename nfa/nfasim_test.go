package nfa

// A minimal NFA simulator used only by this package's own tests, to check
// fragment semantics without depending on the dfa package (which in turn
// depends on nfa). It implements exactly the epsilon-closure rules of
// SPEC_FULL.md §4.5.1, operating on a plain slice rather than a DFA state.

const testCbegin = 0x10000

func closure(states []*Node, c int, seen map[*Node]bool, matched *bool) []*Node {
	var out []*Node
	var visit func(n *Node)
	visit = func(n *Node) {
		if n == nil || seen[n] {
			return
		}
		seen[n] = true
		switch n.Kind {
		case KindClass:
			if c >= 0 && c < 256 && byte(c) >= n.Lo && byte(c) <= n.Hi {
				out = append(out, n.Next)
			}
		case KindCaseDispatch:
			if c >= 0 && c < 256 && n.Cases[c] != nil {
				out = append(out, n.Cases[c])
			}
			visit(n.Next)
		case KindAlt, KindOr:
			visit(n.Alt)
			visit(n.Next)
		case KindBegin:
			if c == '\n' || c == testCbegin {
				out = append(out, n.Next)
			}
		case KindEnd:
			if c == '\n' {
				*matched = true
			}
		}
	}
	for _, s := range states {
		visit(s)
	}
	return out
}

// matchFull reports whether frag matches s exactly (consumes every byte,
// and the implicit '\n' immediately after EOF satisfies any trailing End
// anchor, mirroring the scan loop's synthetic end-of-line byte).
func matchFull(frag Fragment, s []byte) bool {
	states := []*Node{frag.Begin}
	matched := false
	// Seed: treat position 0 as line start.
	seen := map[*Node]bool{}
	states = closure(states, testCbegin, seen, &matched)

	for _, b := range s {
		seen = map[*Node]bool{}
		states = closure(states, int(b), seen, &matched)
		if len(states) == 0 {
			return false
		}
	}
	seen = map[*Node]bool{}
	matched = false
	closure(states, '\n', seen, &matched)
	return matched
}
