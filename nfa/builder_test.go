package nfa

import "testing"

func TestClassFragmentIsSelfLoopFree(t *testing.T) {
	b := NewBuilder()
	f := b.Class('a', 'z')
	if f.Begin != f.End {
		t.Fatal("a single Class node should be its own begin and end")
	}
	if f.Begin.Kind != KindClass || f.Begin.Lo != 'a' || f.Begin.Hi != 'z' {
		t.Fatalf("unexpected node: %+v", f.Begin)
	}
}

func TestConcatPatchesDanglingChain(t *testing.T) {
	b := NewBuilder()
	a := b.Class('a', 'a')
	c := b.Class('b', 'b')
	f := b.Concat(a, c)
	if f.Begin != a.Begin {
		t.Fatal("Concat should keep the first fragment's begin")
	}
	if a.Begin.Next != c.Begin {
		t.Fatal("Concat should patch a's dangling edge onto c.Begin")
	}
	if f.End != c.End {
		t.Fatal("Concat should keep the second fragment's end")
	}
}

func TestAltMergesDanglingChains(t *testing.T) {
	b := NewBuilder()
	a := b.Class('a', 'a')
	c := b.Class('b', 'b')
	f := b.Alt(a, c)
	if f.Begin.Kind != KindOr {
		t.Fatalf("Alt should allocate a KindOr node, got %v", f.Begin.Kind)
	}
	if f.Begin.Alt != c.Begin || f.Begin.Next != a.Begin {
		t.Fatal("Alt node should fork into both arms")
	}
	// Patching the merged end should patch both original fragments' chains.
	tail := b.Class('z', 'z')
	b.Concat(f, tail)
	if a.Begin.Next != tail.Begin {
		t.Fatal("merged chain should patch a's dangling edge")
	}
	if c.Begin.Next != tail.Begin {
		t.Fatal("merged chain should patch c's dangling edge")
	}
}

func TestStarClosesLoopOntoItself(t *testing.T) {
	b := NewBuilder()
	a := b.Class('a', 'a')
	f := b.Star(a)
	if f.Begin.Kind != KindAlt {
		t.Fatalf("Star should allocate a KindAlt node, got %v", f.Begin.Kind)
	}
	if f.Begin.Alt != a.Begin {
		t.Fatal("Star's Alt edge should enter the repeated fragment")
	}
	if a.Begin.Next != f.Begin {
		t.Fatal("Star should patch the repeated fragment's dangling edge back to itself")
	}
	if f.Begin.Next != nil {
		t.Fatal("Star's own Next should remain dangling for the caller to patch")
	}
}

func TestNodeIDsAreMonotonicAndUnique(t *testing.T) {
	b := NewBuilder()
	seen := map[uint32]bool{}
	for i := 0; i < 50; i++ {
		n := b.alloc(KindClass)
		if seen[n.ID] {
			t.Fatalf("duplicate node ID %d", n.ID)
		}
		seen[n.ID] = true
	}
}

func TestBeginEndAnchors(t *testing.T) {
	b := NewBuilder()
	if b.Begin().Begin.Kind != KindBegin {
		t.Fatal("Begin() should produce a KindBegin node")
	}
	if b.End().Begin.Kind != KindEnd {
		t.Fatal("End() should produce a KindEnd node")
	}
}
