package stage

// NodeRef is an opaque reference to a Node in a Scene's node store.
// It is a plain index, not a pointer: references are copyable, compare
// by index and never dangle because nodes are never removed.
//
// The zero value denotes "no transform" — the root of the hierarchy.
type NodeRef uint32

// Node is one stored transform. Parent links nodes into a tree by
// index; the zero parent is the root.
type Node struct {
	Parent NodeRef
	Local  Transform
}

// NodeList is the append-only node store owned by a Scene. Insertion
// order is index order, and committed nodes are never mutated or
// removed, so a NodeRef stays valid for the lifetime of the Scene.
//
// NodeList is not safe for concurrent use.
type NodeList struct {
	nodes []Node
}

// Commit adds a node to the list and returns a reference to it.
//
// A node whose Local transform is the identity is never materialized:
// Commit returns node.Parent unchanged and the list does not grow.
// This is a rule of the store, not an optimization — composing many
// objects without explicit transforms must not flood the list with
// no-op nodes, and transform composition relies on identity nodes
// collapsing onto their parent.
//
// Commit always succeeds.
func (l *NodeList) Commit(node Node) NodeRef {
	if node.Local.IsIdentity() {
		return node.Parent
	}
	//nolint:gosec // node count is bounded well below 32 bits in practice
	ref := NodeRef(len(l.nodes))
	l.nodes = append(l.nodes, node)
	return ref
}

// Len returns the number of materialized nodes.
func (l *NodeList) Len() int {
	return len(l.nodes)
}

// At returns the node stored at ref. It panics if ref does not address
// a materialized node.
func (l *NodeList) At(ref NodeRef) Node {
	return l.nodes[ref]
}
