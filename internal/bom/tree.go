package bom

import (
	"errors"
	"fmt"
)

// InsertError reports an attempt to place a node under a component/piece
// part. Parts are always leaves.
type InsertError struct {
	Parent      int
	ChildIsPart bool
}

func (e *InsertError) Error() string {
	if e.ChildIsPart {
		return "ERROR: You can not have a component/piece part as a child of another component/piece part."
	}
	return "ERROR: You can not have a hardware assembly as a child of a component/piece part."
}

// ErrNotFound is returned when a node id is not in the tree.
var ErrNotFound = errors.New("bom: node not found")

// Tree is an arena of nodes indexed by id. Node ids are unique, every
// non-root node has exactly one parent in the tree, and there are no
// cycles. A Tree is not safe for concurrent mutation; concurrent reads are
// fine.
type Tree struct {
	nodes    []*Node
	index    map[int]int   // id -> position in nodes
	children map[int][]int // parent id -> child ids in insertion order
}

// NewTree returns an empty tree.
func NewTree() *Tree {
	return &Tree{
		index:    make(map[int]int),
		children: make(map[int][]int),
	}
}

// Add inserts n. Its parent must already be present unless ParentID is 0.
func (t *Tree) Add(n Node) error {
	if n.ID <= 0 {
		return fmt.Errorf("bom: node id must be positive, got %d", n.ID)
	}
	if _, ok := t.index[n.ID]; ok {
		return fmt.Errorf("bom: duplicate node id: %d", n.ID)
	}
	if n.ParentID != 0 {
		if err := t.checkParent(n.ParentID, n.Part); err != nil {
			return err
		}
	}
	t.index[n.ID] = len(t.nodes)
	t.nodes = append(t.nodes, &n)
	t.children[n.ParentID] = append(t.children[n.ParentID], n.ID)
	return nil
}

func (t *Tree) checkParent(parentID int, childIsPart bool) error {
	p, ok := t.Node(parentID)
	if !ok {
		return fmt.Errorf("bom: parent not found: %d", parentID)
	}
	if p.Part {
		return &InsertError{Parent: parentID, ChildIsPart: childIsPart}
	}
	return nil
}

// Node returns the node with id.
func (t *Tree) Node(id int) (*Node, bool) {
	i, ok := t.index[id]
	if !ok {
		return nil, false
	}
	return t.nodes[i], true
}

// Parent returns the parent of id, or false for roots and unknown ids.
func (t *Tree) Parent(id int) (*Node, bool) {
	n, ok := t.Node(id)
	if !ok || n.ParentID == 0 {
		return nil, false
	}
	return t.Node(n.ParentID)
}

// Children returns the direct children of id in insertion order.
func (t *Tree) Children(id int) []*Node {
	ids := t.children[id]
	out := make([]*Node, 0, len(ids))
	for _, c := range ids {
		if n, ok := t.Node(c); ok {
			out = append(out, n)
		}
	}
	return out
}

// Roots returns the nodes without a parent.
func (t *Tree) Roots() []*Node {
	return t.Children(0)
}

// Len reports the number of nodes.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Walk visits id and its descendants depth-first, parents before children.
// A non-nil error from fn stops the walk.
func (t *Tree) Walk(id int, fn func(*Node) error) error {
	n, ok := t.Node(id)
	if !ok {
		return fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	return t.walk(n, fn)
}

func (t *Tree) walk(n *Node, fn func(*Node) error) error {
	if err := fn(n); err != nil {
		return err
	}
	for _, c := range t.Children(n.ID) {
		if err := t.walk(c, fn); err != nil {
			return err
		}
	}
	return nil
}

// subtree returns id and all of its descendants.
func (t *Tree) subtree(id int) map[int]bool {
	ids := make(map[int]bool)
	_ = t.Walk(id, func(n *Node) error {
		ids[n.ID] = true
		return nil
	})
	return ids
}

// Remove deletes id and all of its descendants, returning how many nodes
// were removed.
func (t *Tree) Remove(id int) (int, error) {
	n, ok := t.Node(id)
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	doomed := t.subtree(id)
	t.children[n.ParentID] = without(t.children[n.ParentID], id)

	kept := t.nodes[:0]
	for _, node := range t.nodes {
		if doomed[node.ID] {
			delete(t.children, node.ID)
			continue
		}
		kept = append(kept, node)
	}
	for i := len(kept); i < len(t.nodes); i++ {
		t.nodes[i] = nil
	}
	t.nodes = kept
	t.reindex()
	return len(doomed), nil
}

func (t *Tree) reindex() {
	t.index = make(map[int]int, len(t.nodes))
	for i, n := range t.nodes {
		t.index[n.ID] = i
	}
}

// Move re-parents id under newParent. A newParent of 0 makes id a root.
func (t *Tree) Move(id, newParent int) error {
	n, ok := t.Node(id)
	if !ok {
		return fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	if newParent != 0 {
		if err := t.checkParent(newParent, n.Part); err != nil {
			return err
		}
		if t.subtree(id)[newParent] {
			return fmt.Errorf("bom: moving %d under %d would create a cycle", id, newParent)
		}
	}
	t.children[n.ParentID] = without(t.children[n.ParentID], id)
	n.ParentID = newParent
	t.children[newParent] = append(t.children[newParent], id)
	return nil
}

func without(ids []int, id int) []int {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
