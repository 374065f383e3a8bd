package bom

import "fmt"

// MakeCompositeRefDes sets CompRefDes for id and its descendants to the
// parent's composite designator joined to the node's own with ":". A node
// whose parent is outside the tree uses its bare RefDes.
func (t *Tree) MakeCompositeRefDes(id int) error {
	n, ok := t.Node(id)
	if !ok {
		return fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	prefix := ""
	if p, ok := t.Parent(id); ok {
		prefix = p.CompRefDes
	}
	t.composeRefDes(n, prefix)
	return nil
}

func (t *Tree) composeRefDes(n *Node, prefix string) {
	if prefix == "" {
		n.CompRefDes = n.RefDes
	} else {
		n.CompRefDes = prefix + ":" + n.RefDes
	}
	for _, c := range t.Children(n.ID) {
		t.composeRefDes(c, n.CompRefDes)
	}
}
