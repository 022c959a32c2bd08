package printer

import (
	"io"
	"strings"

	"github.com/kutnickclose/linaria/node"
	"github.com/kutnickclose/linaria/stringify"
)

// Printer restores placeholders and raw overrides on top of the
// generic stringify.Stringifier, which it uses for everything else.
type Printer struct {
	base *stringify.Stringifier
	cfg  Config
}

var _ stringify.Printer = (*Printer)(nil)

// New returns a Printer writing to b.
func New(b stringify.Builder, cfg Config) *Printer {
	if cfg.Options&EscapeLiteral > 0 {
		b = Escape(b, cfg.Delimiter)
	}
	p := &Printer{base: stringify.New(b), cfg: cfg}
	p.base.Self = p
	return p
}

// Stringify prints the tree n to b using DefaultConfig.
func Stringify(n *node.Node, b stringify.Builder) {
	New(b, DefaultConfig).Stringify(n, false)
}

// Sprint returns the reconstructed source of n using DefaultConfig.
func Sprint(n *node.Node) string {
	var sb strings.Builder
	Stringify(n, func(text string, _ *node.Node, _ stringify.Boundary) {
		sb.WriteString(text)
	})
	return sb.String()
}

// Fprint writes the reconstructed source of n to w.
func Fprint(w io.Writer, n *node.Node, cfg Config) error {
	sw := &stickyErrWriter{w: w}
	New(func(text string, _ *node.Node, _ stringify.Boundary) {
		io.WriteString(sw, text)
	}, cfg).Stringify(n, false)
	return sw.err
}

func (p *Printer) Stringify(n *node.Node, semicolon bool) { p.base.Stringify(n, semicolon) }
func (p *Printer) AtRule(n *node.Node, semicolon bool)    { p.base.AtRule(n, semicolon) }
func (p *Printer) Body(n *node.Node)                      { p.base.Body(n) }
func (p *Printer) Block(n *node.Node, start string)       { p.base.Block(n, start) }

func (p *Printer) Emit(text string, n *node.Node, b stringify.Boundary) {
	p.base.Emit(text, n, b)
}

// Document prints the captured input of a document without roots,
// so that the text around an empty style sheet survives.
func (p *Printer) Document(n *node.Node) {
	if len(n.Nodes) > 0 {
		p.base.Document(n)
		return
	}
	var input string
	if n.Source != nil {
		input = n.Source.Input
	}
	p.Emit(input, nil, stringify.None)
}

// Root prints the host code around the style sheet along with it.
func (p *Printer) Root(n *node.Node) {
	p.Emit(n.Raws.Slots[node.CodeBefore], n, stringify.Start)
	p.Body(n)
	// The override keeps the host code's indentation that the
	// parser took off.
	after := n.Raws.Slots[node.After]
	if v, ok := n.Raws.Override(node.After); ok && p.cfg.Options&Overrides > 0 {
		after = v
	}
	if after != "" {
		p.Emit(after, nil, stringify.None)
	}
	p.Emit(n.Raws.Slots[node.CodeAfter], n, stringify.End)
}

func (p *Printer) Comment(n *node.Node) {
	if p.cfg.Options&Placeholders > 0 {
		if expr, ok := p.fullPlaceholder(n, n.Text); ok {
			p.Emit(expr, n, stringify.None)
			return
		}
	}
	p.base.Comment(n)
}

func (p *Printer) Decl(n *node.Node, semicolon bool) {
	between := p.Raw(n, node.Between, node.Colon)

	prop := n.Prop
	if i := strings.Index(prop, p.cfg.FullMarker); i >= 0 && p.cfg.Options&Placeholders > 0 {
		if expr, ok := p.fullPlaceholder(n, prop[i:]); ok {
			prop = expr
		}
	}
	value := p.substitute(n, p.RawValue(n, node.ValueProp))

	str := prop + between + value
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
	p.Emit(str, n, stringify.None)
}

func (p *Printer) Rule(n *node.Node) {
	p.Block(n, p.substitute(n, p.RawValue(n, node.SelectorProp)))
	if n.Raws.Truthy(node.OwnSemicolon) {
		p.Emit(n.Raws.Slots[node.OwnSemicolon], n, stringify.End)
	}
}

// Raw prefers the override of before, after and between, but only
// where the parser captured a non-empty generic raw as well.
func (p *Printer) Raw(n *node.Node, own, detect node.Slot) string {
	if p.cfg.Options&Overrides > 0 {
		switch own {
		case node.Before, node.After, node.Between:
			if v, ok := n.Raws.Override(own); ok && v != "" && n.Raws.Truthy(own) {
				return v
			}
		}
	}
	return p.base.Raw(n, own, detect)
}

// RawValue returns the override of property prop whenever there is one,
// even an empty one.
func (p *Printer) RawValue(n *node.Node, prop node.Prop) string {
	if p.cfg.Options&Overrides > 0 {
		if v, ok := n.Raws.ValueOverride(prop); ok {
			return v
		}
	}
	return p.base.RawValue(n, prop)
}

type stickyErrWriter struct {
	w   io.Writer
	err error
}

func (w *stickyErrWriter) Write(p []byte) (n int, err error) {
	if w.err != nil {
		return 0, w.err
	}
	n, w.err = w.w.Write(p)
	return n, w.err
}
