package node

import (
	"fmt"
	"slices"

	"github.com/xlab/treeprint"
)

// Dump renders n and its descendants as an indented tree,
// mostly for test logs.
func Dump(n *Node) string {
	t := treeprint.New()
	dump(t.AddBranch(label(n)), n)
	return t.String()
}

func dump(t treeprint.Tree, n *Node) {
	for _, s := range sortedKeys(n.Raws.Slots) {
		t.AddMetaNode(s, fmt.Sprintf("%q", n.Raws.Slots[s]))
	}
	for _, s := range sortedKeys(n.Raws.Overrides) {
		t.AddMetaNode("override "+s.String(), fmt.Sprintf("%q", n.Raws.Overrides[s]))
	}
	for i, e := range n.Expressions {
		t.AddMetaNode(fmt.Sprintf("expr %d", i), fmt.Sprintf("%q", e))
	}
	for _, c := range n.Nodes {
		dump(t.AddBranch(label(c)), c)
	}
}

func label(n *Node) string {
	switch n.Type {
	case Rule:
		return fmt.Sprintf("rule %q", n.Selector)
	case AtRule:
		return fmt.Sprintf("atrule @%s %q", n.Name, n.Params)
	case Decl:
		if n.Important {
			return fmt.Sprintf("decl %q: %q !important", n.Prop, n.Value)
		}
		return fmt.Sprintf("decl %q: %q", n.Prop, n.Value)
	case Comment:
		return fmt.Sprintf("comment %q", n.Text)
	}
	return n.Type.String()
}

func sortedKeys[V any](m map[Slot]V) []Slot {
	keys := make([]Slot, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
