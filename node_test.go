package stage

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func nonIdentityNode(parent NodeRef, x float32) Node {
	local := IdentityTransform()
	local.Position = mgl32.Vec3{x, 0, 0}
	return Node{Parent: parent, Local: local}
}

func TestNodeList_CommitDedup(t *testing.T) {
	var l NodeList

	// Identity transforms are never materialized: the parent reference
	// comes back unchanged and the list does not grow.
	for _, parent := range []NodeRef{0, 7, 42} {
		got := l.Commit(Node{Parent: parent, Local: IdentityTransform()})
		if got != parent {
			t.Errorf("Commit(identity, parent=%d) = %d, want parent", parent, got)
		}
	}
	if l.Len() != 0 {
		t.Errorf("Len() = %d after identity commits, want 0", l.Len())
	}
}

func TestNodeList_CommitAppends(t *testing.T) {
	var l NodeList

	for i := 0; i < 5; i++ {
		before := l.Len()
		ref := l.Commit(nonIdentityNode(0, float32(i+1)))
		if l.Len() != before+1 {
			t.Fatalf("commit %d: Len() = %d, want %d", i, l.Len(), before+1)
		}
		if int(ref) != before {
			t.Errorf("commit %d: ref = %d, want %d", i, ref, before)
		}
	}
}

func TestNodeList_RefsStayValid(t *testing.T) {
	var l NodeList

	first := l.Commit(nonIdentityNode(0, 1))
	stored := l.At(first)

	// Further commits must not disturb earlier nodes.
	for i := 0; i < 10; i++ {
		l.Commit(nonIdentityNode(first, float32(i+2)))
	}

	if got := l.At(first); got != stored {
		t.Errorf("At(%d) = %+v after growth, want %+v", first, got, stored)
	}
	if got := l.At(first).Local.Position; got != (mgl32.Vec3{1, 0, 0}) {
		t.Errorf("stored position = %v, want (1,0,0)", got)
	}
}

func TestNodeList_ParentPreserved(t *testing.T) {
	var l NodeList

	parent := l.Commit(nonIdentityNode(0, 1))
	child := l.Commit(nonIdentityNode(parent, 2))

	if got := l.At(child).Parent; got != parent {
		t.Errorf("child parent = %d, want %d", got, parent)
	}
}
