package stringify

import (
	"strings"
	"unicode"

	"github.com/kutnickclose/linaria/node"
)

func (s *Stringifier) Raw(n *node.Node, own, detect node.Slot) string {
	if detect == node.NoSlot {
		detect = own
	}
	if own != node.NoSlot {
		if v, ok := n.Raws.Get(own); ok {
			return v
		}
	}

	parent := n.Parent
	if detect == node.Before {
		// The first node of a root and roots inside a document
		// only use their own raws.
		if parent == nil || parent.Type == node.Root && parent.First() == n {
			return ""
		}
		if parent.Type == node.Document {
			return ""
		}
	}
	if parent == nil {
		return defaultRaws[detect]
	}

	root := n.Root()
	if s.cache == nil {
		s.cache = make(map[*node.Node]map[node.Slot]string)
	}
	cache := s.cache[root]
	if cache == nil {
		cache = make(map[node.Slot]string)
		s.cache[root] = cache
	}
	if v, ok := cache[detect]; ok {
		return v
	}

	var (
		v  string
		ok bool
	)
	switch detect {
	case node.Before, node.After:
		return s.beforeAfter(n, detect)
	case node.BeforeClose:
		v, ok = rawBeforeClose(root)
	case node.BeforeComment:
		v, ok = s.rawBeforeComment(root, n)
	case node.BeforeDecl:
		v, ok = s.rawBeforeDecl(root, n)
	case node.BeforeOpen:
		v, ok = rawBeforeOpen(root)
	case node.BeforeRule:
		v, ok = rawBeforeRule(root)
	case node.Colon:
		v, ok = rawColon(root)
	case node.EmptyBody:
		v, ok = rawEmptyBody(root)
	case node.Indent:
		v, ok = rawIndent(root)
	case node.Semicolon:
		v, ok = rawSemicolon(root)
	default:
		root.Walk(func(i *node.Node) bool {
			v, ok = i.Raws.Get(own)
			return !ok
		})
	}
	if !ok {
		v = defaultRaws[detect]
		tracer().Debugf("no %v raw in tree, using default %q", detect, v)
	}
	cache[detect] = v
	return v
}

// beforeAfter detects the whitespace before a node or before the
// closing brace of a block, indented by the node's depth.
func (s *Stringifier) beforeAfter(n *node.Node, detect node.Slot) string {
	p := s.self()
	var v string
	switch {
	case n.Type == node.Decl:
		v = p.Raw(n, node.NoSlot, node.BeforeDecl)
	case n.Type == node.Comment:
		v = p.Raw(n, node.NoSlot, node.BeforeComment)
	case detect == node.Before:
		v = p.Raw(n, node.NoSlot, node.BeforeRule)
	default:
		v = p.Raw(n, node.NoSlot, node.BeforeClose)
	}

	depth := 0
	for b := n.Parent; b != nil && b.Type != node.Root; b = b.Parent {
		depth++
	}
	if strings.Contains(v, "\n") {
		if indent := p.Raw(n, node.NoSlot, node.Indent); indent != "" {
			v += strings.Repeat(indent, depth)
		}
	}
	return v
}

func rawBeforeClose(root *node.Node) (v string, ok bool) {
	root.Walk(func(i *node.Node) bool {
		if !i.IsContainer() || len(i.Nodes) == 0 {
			return true
		}
		v, ok = i.Raws.Get(node.After)
		if ok {
			v = trimLastLine(v)
		}
		return !ok
	})
	return stripNonSpace(v), ok
}

func (s *Stringifier) rawBeforeComment(root, n *node.Node) (v string, ok bool) {
	root.WalkComments(func(i *node.Node) bool {
		v, ok = i.Raws.Get(node.Before)
		if ok {
			v = trimLastLine(v)
		}
		return !ok
	})
	if !ok {
		return s.self().Raw(n, node.NoSlot, node.BeforeDecl), true
	}
	return stripNonSpace(v), true
}

func (s *Stringifier) rawBeforeDecl(root, n *node.Node) (v string, ok bool) {
	root.WalkDecls(func(i *node.Node) bool {
		v, ok = i.Raws.Get(node.Before)
		if ok {
			v = trimLastLine(v)
		}
		return !ok
	})
	if !ok {
		return s.self().Raw(n, node.NoSlot, node.BeforeRule), true
	}
	return stripNonSpace(v), true
}

func rawBeforeOpen(root *node.Node) (v string, ok bool) {
	root.Walk(func(i *node.Node) bool {
		if i.Type == node.Decl {
			return true
		}
		v, ok = i.Raws.Get(node.Between)
		return !ok
	})
	return v, ok
}

func rawBeforeRule(root *node.Node) (v string, ok bool) {
	root.Walk(func(i *node.Node) bool {
		if !i.IsContainer() || i.Parent == root && root.First() == i {
			return true
		}
		v, ok = i.Raws.Get(node.Before)
		if ok {
			v = trimLastLine(v)
		}
		return !ok
	})
	return stripNonSpace(v), ok
}

func rawColon(root *node.Node) (v string, ok bool) {
	root.WalkDecls(func(i *node.Node) bool {
		v, ok = i.Raws.Get(node.Between)
		return !ok
	})
	return strings.Map(func(r rune) rune {
		if r == ':' || unicode.IsSpace(r) {
			return r
		}
		return -1
	}, v), ok
}

func rawEmptyBody(root *node.Node) (v string, ok bool) {
	root.Walk(func(i *node.Node) bool {
		if !i.IsContainer() || len(i.Nodes) != 0 {
			return true
		}
		v, ok = i.Raws.Get(node.After)
		return !ok
	})
	return v, ok
}

func rawIndent(root *node.Node) (v string, ok bool) {
	if root.Raws.Truthy(node.Indent) {
		return root.Raws.Slots[node.Indent], true
	}
	root.Walk(func(i *node.Node) bool {
		p := i.Parent
		if p == nil || p == root || p.Parent != root {
			return true
		}
		v, ok = i.Raws.Get(node.Before)
		if ok {
			v = v[strings.LastIndexByte(v, '\n')+1:]
		}
		return !ok
	})
	return stripNonSpace(v), ok
}

func rawSemicolon(root *node.Node) (v string, ok bool) {
	root.Walk(func(i *node.Node) bool {
		if !i.IsContainer() || len(i.Nodes) == 0 || i.Last().Type != node.Decl {
			return true
		}
		v, ok = i.Raws.Get(node.Semicolon)
		return !ok
	})
	return v, ok
}

// trimLastLine drops whatever follows the last newline of v.
func trimLastLine(v string) string {
	if i := strings.LastIndexByte(v, '\n'); i >= 0 {
		return v[:i+1]
	}
	return v
}

func stripNonSpace(v string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return r
		}
		return -1
	}, v)
}
