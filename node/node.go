// Package node defines the style-sheet syntax tree consumed by the printers.
//
// Trees are produced by an external parser that has already replaced every
// template expression with a placeholder and stored the expression source on
// the root (see [Node.Expressions]). The printers treat a tree as read-only.
package node

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'linaria.node'.
func tracer() tracing.Trace {
	return tracing.Select("linaria.node")
}

//go:generate go tool stringer -type Type -linecomment

type Type uint8

const (
	Document Type = iota // document
	Root                 // root
	Rule                 // rule
	AtRule               // atrule
	Decl                 // decl
	Comment              // comment
)

// Node is a node of the syntax tree. Which of the semantic fields are
// meaningful depends on Type.
type Node struct {
	Type   Type
	Parent *Node
	Nodes  []*Node

	Selector string // Rule

	Name   string // AtRule
	Params string // AtRule

	Prop      string // Decl
	Value     string // Decl
	Important bool   // Decl

	Text string // Comment

	Raws Raws

	// Expressions holds the source text of the template expressions,
	// indexed by placeholder number. Only set on Root nodes;
	// nil means the parser attached no table.
	Expressions []string

	// Source is only set on Document nodes.
	Source *Source
}

// Source describes the input a Document was parsed from.
type Source struct {
	Input string
}

// Append adds children to n and makes n their parent.
// It returns n.
func (n *Node) Append(children ...*Node) *Node {
	for _, c := range children {
		c.Parent = n
		n.Nodes = append(n.Nodes, c)
	}
	if n.Nodes == nil {
		n.Nodes = []*Node{}
	}
	return n
}

// IsContainer reports whether n may hold children. At-rules are
// containers only when they were written with a block.
func (n *Node) IsContainer() bool {
	switch n.Type {
	case Document, Root, Rule:
		return true
	case AtRule:
		return n.Nodes != nil
	}
	return false
}

// Root returns the top-most ancestor of n that is not a document.
func (n *Node) Root() *Node {
	r := n
	for r.Parent != nil && r.Parent.Type != Document {
		r = r.Parent
	}
	return r
}

func (n *Node) First() *Node {
	if len(n.Nodes) == 0 {
		return nil
	}
	return n.Nodes[0]
}

func (n *Node) Last() *Node {
	if len(n.Nodes) == 0 {
		return nil
	}
	return n.Nodes[len(n.Nodes)-1]
}

// Expression returns the text of expression i from the table of
// the root n belongs to.
func (n *Node) Expression(i int) (string, bool) {
	r := n.Root()
	if r.Type != Root || i < 0 || i >= len(r.Expressions) {
		tracer().Debugf("expression %d not in table of %v (%d entries)", i, r.Type, len(r.Expressions))
		return "", false
	}
	return r.Expressions[i], true
}

// Walk calls fn for every descendant of n in document order, depth first.
// It stops as soon as fn returns false and reports whether the walk
// went through.
func (n *Node) Walk(fn func(*Node) bool) bool {
	for _, c := range n.Nodes {
		if !fn(c) {
			return false
		}
		if !c.Walk(fn) {
			return false
		}
	}
	return true
}

// WalkDecls is like Walk but only visits declarations.
func (n *Node) WalkDecls(fn func(*Node) bool) bool {
	return n.walkType(Decl, fn)
}

// WalkComments is like Walk but only visits comments.
func (n *Node) WalkComments(fn func(*Node) bool) bool {
	return n.walkType(Comment, fn)
}

func (n *Node) walkType(typ Type, fn func(*Node) bool) bool {
	return n.Walk(func(c *Node) bool {
		if c.Type != typ {
			return true
		}
		return fn(c)
	})
}
