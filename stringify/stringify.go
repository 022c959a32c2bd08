// Package stringify prints a style-sheet tree back to text.
//
// The Stringifier reproduces the captured raws of every node. Where a node
// lacks a raw, the value is detected from other nodes of the same root
// (the first declaration's indentation, the first rule's brace spacing and
// so on) and falls back to a fixed default.
//
// Printers that need to special-case some nodes implement [Printer] by
// wrapping a Stringifier and pointing its Self field at themselves; every
// internal call of the Stringifier goes through Self.
package stringify

import (
	"strings"

	"github.com/kutnickclose/linaria/node"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'linaria.stringify'.
func tracer() tracing.Trace {
	return tracing.Select("linaria.stringify")
}

// Boundary tags the fragments that open or close a node.
type Boundary uint8

const (
	None Boundary = iota
	Start
	End
)

// Builder receives the printed text piece by piece. n is the node the
// fragment belongs to; it is nil for whitespace between nodes.
type Builder func(text string, n *node.Node, b Boundary)

// Printer is the set of operations a tree walk is made of.
type Printer interface {
	Stringify(n *node.Node, semicolon bool)

	Document(n *node.Node)
	Root(n *node.Node)
	Rule(n *node.Node)
	AtRule(n *node.Node, semicolon bool)
	Decl(n *node.Node, semicolon bool)
	Comment(n *node.Node)

	Body(n *node.Node)
	Block(n *node.Node, start string)

	// Raw resolves the raw own of n. If n lacks it, the value named
	// by detect is looked up; NoSlot as detect means own.
	Raw(n *node.Node, own, detect node.Slot) string
	RawValue(n *node.Node, p node.Prop) string

	Emit(text string, n *node.Node, b Boundary)
}

var defaultRaws = map[node.Slot]string{
	node.After:         "\n",
	node.BeforeClose:   "\n",
	node.BeforeComment: "\n",
	node.BeforeDecl:    "\n",
	node.BeforeOpen:    " ",
	node.BeforeRule:    "\n",
	node.Colon:         ": ",
	node.CommentLeft:   " ",
	node.CommentRight:  " ",
	node.EmptyBody:     "",
	node.Indent:        "    ",
	node.Semicolon:     "",
}

// Stringifier is the generic printer.
type Stringifier struct {
	// Self receives all calls the Stringifier makes to itself.
	// If nil, the Stringifier itself is used.
	Self Printer

	build Builder
	cache map[*node.Node]map[node.Slot]string
}

var _ Printer = (*Stringifier)(nil)

func New(b Builder) *Stringifier {
	return &Stringifier{build: b}
}

// String prints n with a plain Stringifier.
func String(n *node.Node) string {
	var sb strings.Builder
	New(func(text string, _ *node.Node, _ Boundary) {
		sb.WriteString(text)
	}).Stringify(n, false)
	return sb.String()
}

func (s *Stringifier) self() Printer {
	if s.Self != nil {
		return s.Self
	}
	return s
}

func (s *Stringifier) Emit(text string, n *node.Node, b Boundary) {
	s.build(text, n, b)
}

func (s *Stringifier) Stringify(n *node.Node, semicolon bool) {
	p := s.self()
	switch n.Type {
	case node.Document:
		p.Document(n)
	case node.Root:
		p.Root(n)
	case node.Rule:
		p.Rule(n)
	case node.AtRule:
		p.AtRule(n, semicolon)
	case node.Decl:
		p.Decl(n, semicolon)
	case node.Comment:
		p.Comment(n)
	default:
		tracer().Errorf("cannot print node of type %v", n.Type)
	}
}

func (s *Stringifier) Document(n *node.Node) {
	s.self().Body(n)
}

func (s *Stringifier) Root(n *node.Node) {
	p := s.self()
	p.Body(n)
	if n.Raws.Truthy(node.After) {
		p.Emit(n.Raws.Slots[node.After], nil, None)
	}
}

func (s *Stringifier) Rule(n *node.Node) {
	p := s.self()
	p.Block(n, p.RawValue(n, node.SelectorProp))
	if n.Raws.Truthy(node.OwnSemicolon) {
		p.Emit(n.Raws.Slots[node.OwnSemicolon], n, End)
	}
}

func (s *Stringifier) AtRule(n *node.Node, semicolon bool) {
	p := s.self()
	name := "@" + n.Name
	params := ""
	if n.Params != "" {
		params = p.RawValue(n, node.ParamsProp)
	}
	if afterName, ok := n.Raws.Get(node.AfterName); ok {
		name += afterName
	} else if params != "" {
		name += " "
	}
	if n.IsContainer() {
		p.Block(n, name+params)
		return
	}
	end := n.Raws.Slots[node.Between]
	if semicolon {
		end += ";"
	}
	p.Emit(name+params+end, n, None)
}

func (s *Stringifier) Decl(n *node.Node, semicolon bool) {
	p := s.self()
	between := p.Raw(n, node.Between, node.Colon)
	str := n.Prop + between + p.RawValue(n, node.ValueProp)
	if n.Important {
		if imp := n.Raws.Slots[node.Important]; imp != "" {
			str += imp
		} else {
			str += " !important"
		}
	}
	if semicolon {
		str += ";"
	}
	p.Emit(str, n, None)
}

func (s *Stringifier) Comment(n *node.Node) {
	p := s.self()
	left := p.Raw(n, node.Left, node.CommentLeft)
	right := p.Raw(n, node.Right, node.CommentRight)
	p.Emit("/*"+left+n.Text+right+"*/", n, None)
}

// Body prints the children of n. Every child but the last one
// (trailing comments aside) is terminated by a semicolon; the last one
// only if n's semicolon raw says so.
func (s *Stringifier) Body(n *node.Node) {
	p := s.self()
	last := len(n.Nodes) - 1
	for last > 0 && n.Nodes[last].Type == node.Comment {
		last--
	}
	semicolon := p.Raw(n, node.Semicolon, node.NoSlot) != ""
	for i, c := range n.Nodes {
		if before := p.Raw(c, node.Before, node.NoSlot); before != "" {
			p.Emit(before, nil, None)
		}
		p.Stringify(c, last != i || semicolon)
	}
}

func (s *Stringifier) Block(n *node.Node, start string) {
	p := s.self()
	between := p.Raw(n, node.Between, node.BeforeOpen)
	p.Emit(start+between+"{", n, Start)
	var after string
	if len(n.Nodes) > 0 {
		p.Body(n)
		after = p.Raw(n, node.After, node.NoSlot)
	} else {
		after = p.Raw(n, node.After, node.EmptyBody)
	}
	if after != "" {
		p.Emit(after, nil, None)
	}
	p.Emit("}", n, End)
}

// RawValue returns the raw text of property p if the parser's cleaned
// value is still current, the current value otherwise.
func (s *Stringifier) RawValue(n *node.Node, p node.Prop) string {
	var value string
	switch p {
	case node.ValueProp:
		value = n.Value
	case node.SelectorProp:
		value = n.Selector
	case node.ParamsProp:
		value = n.Params
	}
	if raw, ok := n.Raws.Value(p); ok && raw.Value == value {
		return raw.Raw
	}
	return value
}
