package lazy

import (
	"sort"

	"github.com/coregx/greplex/arena"
	"github.com/coregx/greplex/nfa"
)

// Cbegin is a sentinel byte value outside [0, 255] passed to the epsilon
// closure to signal "line start". The hot path (Step) never produces it;
// only Seed does.
const Cbegin = 0x10000

// Engine owns every piece of mutable state the lazy subset construction
// needs: the arena backing DFA states and their node-list signatures, the
// BST root, the follow-set scratch buffer, and the shared generation
// counter. This is the design's replacement for the plan9-grep lineage's
// package-level globals (gen, follow, nfollow, matched, maxfollow, state0)
// — see SPEC_FULL.md §9. An Engine is single-threaded: no operation may be
// invoked concurrently on the same Engine.
type Engine struct {
	gen  *nfa.Gen
	root *nfa.Node

	states    *arena.Arena[State]
	nodeLists *arena.Arena[*nfa.Node]
	bst       *State

	follow    []*nfa.Node
	maxFollow int
	matched   bool
}

// NewEngine returns an Engine ready to construct DFA states lazily from
// root. gen must be the same generation counter the NFA builder used (so
// generation marks stay globally monotonic across the optimizer pass and
// every subsequent Step call — see nfa.Gen's doc comment). maxFollow bounds
// the follow-set scratch buffer; it should be at least the total number of
// NFA nodes reachable from root (a safe ceiling is the NFA arena's total
// node count).
func NewEngine(root *nfa.Node, gen *nfa.Gen, maxFollow int) *Engine {
	return &Engine{
		gen:       gen,
		root:      root,
		states:    arena.New[State](),
		nodeLists: arena.New[*nfa.Node](),
		follow:    make([]*nfa.Node, 0, maxFollow),
		maxFollow: maxFollow,
	}
}

// Seed produces the initial DFA state: the closure of root over the
// line-start sentinel Cbegin, plus root itself (so a root that is directly
// byte-consuming — possible for an NFA built without going through
// nfa.Compile's top-level anchoring wrapper — is still a candidate for the
// very first real byte). Because follow1's source-visit guard and
// appendFollow's output guard use separate fields (Node.Gen and
// Node.FollowGen), root's appearance as a closure source above never
// prevents it from also being appended here as an output member.
func (e *Engine) Seed() *State {
	mark := e.gen.Next()
	e.follow = e.follow[:0]
	e.matched = false
	e.follow1(e.root, Cbegin, mark)
	e.appendFollow(e.root, mark)
	return e.commit()
}

// Restart re-unions the line-start closure of root into an already-computed
// state s. It exists because a pattern with no explicit leading ^ compiles
// with no Begin node at all (nfa.Compile wraps it in a skip-prefix
// Star(anyByteNotNL) instead — see compile.go) — nothing reintroduces that
// prefix loop after a '\n' byte kills it (the skip class excludes '\n'), so
// without this step an unanchored pattern can only ever match on its first
// line. Re-running the Cbegin closure at every line boundary, regardless of
// anchoring, makes stepping a '\n' byte and starting a fresh line
// equivalent for every pattern, matching §4.5.1's Begin case treating '\n'
// and Cbegin identically. The scan loop calls this once per emitted
// newline, on the state Step already produced for that '\n' byte.
func (e *Engine) Restart(s *State) *State {
	mark := e.gen.Next()
	e.follow = e.follow[:0]
	e.matched = s.Match
	for _, n := range s.nodes {
		e.appendFollow(n, mark)
	}
	e.follow1(e.root, Cbegin, mark)
	e.appendFollow(e.root, mark)
	return e.commit()
}

// Step computes the DFA transition from s on byte c, hitting the 256-wide
// transition cache when possible and falling back to increment on a miss.
// Step is total: it always returns a non-nil state.
func (e *Engine) Step(s *State, c byte) *State {
	if ns := s.next[c]; ns != nil {
		return ns
	}
	return e.increment(s, c)
}

// increment computes the epsilon closure of every node in s over byte c,
// finds or allocates the resulting DFA state, and caches it into
// s.next[c] before returning it.
func (e *Engine) increment(s *State, c byte) *State {
	mark := e.gen.Next()
	e.follow = e.follow[:0]
	e.matched = false
	for _, n := range s.nodes {
		e.follow1(n, int(c), mark)
	}
	ns := e.commit()
	s.next[c] = ns
	return ns
}

func (e *Engine) commit() *State {
	sort.Slice(e.follow, func(i, j int) bool { return e.follow[i].ID < e.follow[j].ID })
	return e.findOrInsert(e.follow, e.matched)
}

// follow1 is the per-variant epsilon closure of SPEC_FULL.md §4.5.1,
// applied to node n on input byte c (c may be Cbegin). mark is the current
// pass's generation tag, checked against Node.Gen: a node already marked
// with it has already been expanded as a recursion source in this same pass
// and is skipped. This guard is deliberately independent of appendFollow's
// Node.FollowGen guard below — the plan9-grep lineage's fol1 gets away with
// one gen field because it appends to follow[] unconditionally and never
// dedups the output array, but this port's appendFollow does dedup the
// output, so a node that is both a recursion source and (via some other
// path) an output target within the same pass — any epsilon self-loop, the
// unanchored-prefix Star being the common case — needs the two questions
// answered independently, or the second occurrence is wrongly dropped.
func (e *Engine) follow1(n *nfa.Node, c int, mark uint32) {
	if n == nil || n.Gen == mark {
		return
	}
	n.Gen = mark
	switch n.Kind {
	case nfa.KindClass:
		if c >= 0 && c < 256 && byte(c) >= n.Lo && byte(c) <= n.Hi {
			e.appendFollow(n.Next, mark)
		}
	case nfa.KindCaseDispatch:
		if c >= 0 && c < 256 && n.Cases[c] != nil {
			e.appendFollow(n.Cases[c], mark)
		}
		e.follow1(n.Next, c, mark)
	case nfa.KindAlt, nfa.KindOr:
		e.follow1(n.Alt, c, mark)
		e.follow1(n.Next, c, mark)
	case nfa.KindBegin:
		if c == '\n' || c == Cbegin {
			e.appendFollow(n.Next, mark)
		}
	case nfa.KindEnd:
		if c == '\n' {
			e.matched = true
		}
	default:
		panic(&InternalError{Op: "follow1", Msg: "unreachable node kind"})
	}
}

// appendFollow adds n to the follow-set scratch buffer, deduplicating via
// mark against Node.FollowGen — a field distinct from the Node.Gen
// follow1's source-visit guard uses (see follow1's doc comment for why the
// two must not share one field).
func (e *Engine) appendFollow(n *nfa.Node, mark uint32) {
	if n == nil || n.FollowGen == mark {
		return
	}
	n.FollowGen = mark
	if len(e.follow) >= e.maxFollow {
		panic(&InternalError{Op: "appendFollow", Msg: "follow-set overflow: exceeded maxFollow"})
	}
	e.follow = append(e.follow, n)
}
