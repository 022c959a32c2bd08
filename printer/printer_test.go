package printer_test

import (
	"errors"
	"testing"

	"github.com/kutnickclose/linaria/node"
	"github.com/kutnickclose/linaria/printer"
	"github.com/kutnickclose/linaria/stringify"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// raws builds raws from slot name / text pairs.
func raws(kv ...string) node.Raws {
	var r node.Raws
	for i := 0; i+1 < len(kv); i += 2 {
		s, ok := node.ParseSlot(kv[i])
		if !ok {
			panic("unknown slot " + kv[i])
		}
		r.Set(s, kv[i+1])
	}
	return r
}

func root(exprs []string, children ...*node.Node) *node.Node {
	return (&node.Node{Type: node.Root, Expressions: exprs}).Append(children...)
}

func decl(prop, value string) *node.Node {
	return &node.Node{Type: node.Decl, Prop: prop, Value: value, Raws: raws("before", "", "between", ": ")}
}

func comment(text string) *node.Node {
	return &node.Node{Type: node.Comment, Text: text, Raws: raws("before", "", "left", " ", "right", " ")}
}

func TestSprint(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "linaria.printer")
	defer teardown()

	exprs := []string{"${x}", "${theme.space}", "color"}

	// A template without expressions, as parsed from
	//	const a = css`
	//	  color: red;
	//	`;
	plain := (&node.Node{Type: node.Document, Source: &node.Source{Input: "const a = css`\n  color: red;\n`;"}}).Append(
		func() *node.Node {
			r := root(nil, &node.Node{Type: node.Decl, Prop: "color", Value: "red",
				Raws: raws("before", "\n  ", "between", ": ")})
			r.Raws = raws("codeBefore", "const a = css`", "codeAfter", "`;", "after", "\n", "semicolon", ";")
			return r
		}(),
	)

	overriddenBefore := decl("color", "red")
	overriddenBefore.Raws = raws("before", " ", "between", ": ")
	overriddenBefore.Raws.SetOverride(node.Before, "\n  ")

	emptyBefore := decl("color", "red")
	emptyBefore.Raws = raws("before", "", "between", ": ")
	emptyBefore.Raws.SetOverride(node.Before, "\n  ")

	overriddenBetween := decl("color", "red")
	overriddenBetween.Raws = raws("before", "", "between", ":")
	overriddenBetween.Raws.SetOverride(node.Between, " : ")

	valueOverride := decl("color", "red")
	valueOverride.Raws.SetValueOverride(node.ValueProp, "--pcss-lin1")

	emptyValueOverride := decl("color", "red")
	emptyValueOverride.Raws.SetValueOverride(node.ValueProp, "")

	rawValue := decl("margin", "--pcss-lin0 0")
	rawValue.Raws.SetValue(node.ValueProp, "--pcss-lin0 0", "--pcss-lin0 0 /* x */")

	important := decl("margin", "--pcss-lin1")
	important.Important = true

	ownSemicolon := (&node.Node{Type: node.Rule, Selector: "--pcss-lin0",
		Raws: raws("before", "", "between", "", "after", "", "ownSemicolon", ";")}).Append()

	rootAfter := root(exprs, decl("color", "--pcss-lin0"))
	rootAfter.Raws = raws("codeBefore", "css`", "codeAfter", "`", "after", "\n")
	rootAfter.Raws.SetOverride(node.After, "\n    ")

	rootEmptyAfter := root(exprs, decl("color", "--pcss-lin0"))
	rootEmptyAfter.Raws = raws("codeBefore", "css`", "codeAfter", "`", "after", "\n")
	rootEmptyAfter.Raws.SetOverride(node.After, "")

	var tests = []struct {
		in *node.Node
		s  string
	}{
		// 0. Round trip without expressions.
		{in: plain, s: "const a = css`\n  color: red;\n`;"},

		// 1. Short placeholders in values.
		{in: root(exprs, decl("margin", "a --pcss-lin0 b")), s: `margin: a ${x} b`},
		{in: root(exprs, decl("margin", "--pcss-lin0 --pcss-lin1")), s: `margin: ${x} ${theme.space}`},
		{in: root(exprs, decl("margin", "--pcss-lin1  0")), s: `margin: ${theme.space}  0`},

		// 4. Only whole words are placeholders.
		{in: root(exprs, decl("margin", "a--pcss-lin0 calc(--pcss-lin1)")), s: `margin: a--pcss-lin0 calc(--pcss-lin1)`},

		// 5. Unresolvable short placeholders stay.
		{in: root(exprs, decl("margin", "--pcss-lin7 --pcss-linx --pcss-lin")), s: `margin: --pcss-lin7 --pcss-linx --pcss-lin`},
		{in: root(nil, decl("margin", "--pcss-lin0")), s: `margin: --pcss-lin0`},
		{in: decl("margin", "--pcss-lin0"), s: `margin: --pcss-lin0`},

		// 8. Full placeholders in property names.
		{in: root(exprs, decl("pcss-lin:2", "red")), s: `color: red`},
		{in: root(exprs, decl("--pcss-lin:0", "red")), s: `${x}: red`},
		{in: root(exprs, decl("pcss-lin:9", "red")), s: `pcss-lin:9: red`},
		{in: root(exprs, decl("pcss-lin:a", "red")), s: `pcss-lin:a: red`},
		{in: root(nil, decl("pcss-lin:0", "red")), s: `pcss-lin:0: red`},

		// 13. Full placeholders in comments.
		{in: root(exprs, comment("pcss-lin:0")), s: `${x}`},
		{in: root(exprs, comment("pcss-lin:5")), s: `/* pcss-lin:5 */`},
		{in: root(exprs, comment("pcss-lin:0 ")), s: `/* pcss-lin:0  */`},
		{in: root(exprs, comment("see pcss-lin:0")), s: `/* see pcss-lin:0 */`},
		{in: root([]string{""}, comment("pcss-lin:0")), s: `/* pcss-lin:0 */`},

		// 18. Selectors.
		{in: root(exprs, (&node.Node{Type: node.Rule, Selector: "--pcss-lin0 > a",
			Raws: raws("before", "", "between", " ", "after", " ")}).Append(decl("color", "red"))),
			s: `${x} > a {color: red }`},
		{in: root(exprs, ownSemicolon), s: `${x}{};`},

		// 20. Overrides.
		{in: root(nil, decl("a", "1"), overriddenBefore), s: "a: 1;\n  color: red"},
		{in: root(nil, decl("a", "1"), emptyBefore), s: "a: 1;color: red"},
		{in: root(nil, overriddenBetween), s: "color : red"},
		{in: root(exprs, valueOverride), s: "color: ${theme.space}"},
		{in: root(exprs, emptyValueOverride), s: "color: "},
		{in: root(exprs, rawValue), s: "margin: ${x} 0 /* x */"},
		{in: root(exprs, important), s: "margin: ${theme.space} !important"},

		// 27. Root code and after.
		{in: rootAfter, s: "css`color: ${x}\n    `"},
		{in: rootEmptyAfter, s: "css`color: ${x}`"},

		// 29. Escaping.
		{in: root(nil, decl("content", `"\201C"`)), s: `content: "\\201C"`},
		{in: root(nil, comment("a `b`")), s: "/* a \\`b\\` */"},
		{in: root([]string{"${`x`}"}, comment("pcss-lin:0")), s: "${\\`x\\`}"},
	}

	for i, tt := range tests {
		got := printer.Sprint(tt.in)
		if got != tt.s {
			t.Logf("tree =\n%s", node.Dump(tt.in))
			t.Errorf("%d. \n\nexp: %q\n\ngot: %q\n\n", i, tt.s, got)
		}
	}
}

func TestRawOverride(t *testing.T) {
	first := decl("a", "1")
	first.Raws.Set(node.Before, "\n")
	n := decl("color", "red")
	root(nil, first, n)
	p := printer.New(func(string, *node.Node, stringify.Boundary) {}, printer.DefaultConfig)

	n.Raws = raws("before", " ")
	n.Raws.SetOverride(node.Before, "\n  ")
	if got := p.Raw(n, node.Before, node.NoSlot); got != "\n  " {
		t.Errorf("before with override = %q, want %q", got, "\n  ")
	}

	n.Raws = raws("before", "")
	n.Raws.SetOverride(node.Before, "\n  ")
	if got := p.Raw(n, node.Before, node.NoSlot); got != "" {
		t.Errorf("empty before with override = %q, want %q", got, "")
	}

	// Without a generic raw the value detected from the first
	// declaration wins over the override.
	n.Raws = node.Raws{}
	n.Raws.SetOverride(node.Before, "\n  ")
	if got := p.Raw(n, node.Before, node.NoSlot); got != "\n" {
		t.Errorf("missing before with override = %q, want %q", got, "\n")
	}

	// Other slots are never overridden.
	n.Raws = raws("important", "!important")
	n.Raws.SetOverride(node.Important, "! important")
	if got := p.Raw(n, node.Important, node.NoSlot); got != "!important" {
		t.Errorf("important with override = %q, want %q", got, "!important")
	}
}

func TestDocument(t *testing.T) {
	var tests = []struct {
		in *node.Node
		s  string
	}{
		{in: &node.Node{Type: node.Document, Source: &node.Source{Input: "const a = `x\\y`;\n"}}, s: "const a = `x\\y`;\n"},
		{in: &node.Node{Type: node.Document, Source: &node.Source{}}, s: ""},
		{in: &node.Node{Type: node.Document}, s: ""},
		{in: (&node.Node{Type: node.Document}).Append(
			func() *node.Node {
				r := root(nil, decl("color", "red"))
				r.Raws = raws("codeBefore", "a = css`", "codeAfter", "`;\n")
				return r
			}(),
			func() *node.Node {
				r := root([]string{"${b}"}, decl("margin", "--pcss-lin0"))
				r.Raws = raws("codeBefore", "b = css`", "codeAfter", "`;\n")
				return r
			}(),
		), s: "a = css`color: red`;\nb = css`margin: ${b}`;\n"},
	}
	for i, tt := range tests {
		if got := printer.Sprint(tt.in); got != tt.s {
			t.Errorf("%d. \n\nexp: %q\n\ngot: %q\n\n", i, tt.s, got)
		}
	}
}

func TestIdempotence(t *testing.T) {
	r := root([]string{"${a}", "${b}"},
		(&node.Node{Type: node.Rule, Selector: "&:hover --pcss-lin1",
			Raws: raws("before", "", "between", " ", "after", "\n")}).Append(
			decl("color", "--pcss-lin0"),
			comment("pcss-lin:1"),
		),
		&node.Node{Type: node.Rule, Selector: "a"},
	)
	r.Nodes[0].Nodes[1].Raws.Set(node.Before, "\n  ")
	r.Nodes[0].Nodes[0].Raws.Set(node.Before, "\n  ")
	r.Nodes[1].Append(&node.Node{Type: node.Decl, Prop: "x", Value: "y"})

	var outputs []string
	p := printer.New(func(text string, _ *node.Node, _ stringify.Boundary) {
		outputs[len(outputs)-1] += text
	}, printer.DefaultConfig)
	for i := 0; i < 2; i++ {
		outputs = append(outputs, "")
		p.Stringify(r, false)
	}
	outputs = append(outputs, printer.Sprint(r))

	want := "&:hover ${b} {\n  color: ${a}\n  ${b}\n}\na {\n  x: y\n}"
	for i, got := range outputs {
		if got != want {
			t.Errorf("%d. \n\nexp: %q\n\ngot: %q\n\n", i, want, got)
		}
	}
}

func TestOptions(t *testing.T) {
	r := root([]string{"${x}"}, decl("margin", "--pcss-lin0"), comment("a`b"))
	r.Nodes[1].Raws.Set(node.Before, " ")
	r.Nodes[0].Raws.SetOverride(node.Between, ":")
	r.Nodes[0].Raws.SetValueOverride(node.ValueProp, "--pcss-lin0 1")

	var tests = []struct {
		opts printer.Options
		s    string
	}{
		{printer.Standard, "margin:${x} 1 /* a\\`b */"},
		{0, "margin: --pcss-lin0 /* a`b */"},
		{printer.EscapeLiteral, "margin: --pcss-lin0 /* a\\`b */"},
		{printer.Placeholders, "margin: ${x} /* a`b */"},
		{printer.Overrides, "margin:--pcss-lin0 1 /* a`b */"},
	}
	for i, tt := range tests {
		var got string
		cfg := printer.DefaultConfig
		cfg.Options = tt.opts
		printer.New(func(text string, _ *node.Node, _ stringify.Boundary) {
			got += text
		}, cfg).Stringify(r, false)
		if got != tt.s {
			t.Errorf("%d. \n\nexp: %q\n\ngot: %q\n\n", i, tt.s, got)
		}
	}
}

func TestParseOptions(t *testing.T) {
	var tests = []struct {
		in   string
		want printer.Options
		err  bool
	}{
		{"", printer.Standard, false},
		{"  ", printer.Standard, false},
		{"base", 0, false},
		{"escape", printer.EscapeLiteral, false},
		{"base, placeholders,overrides", printer.Placeholders | printer.Overrides, false},
		{"escape,placeholders,overrides", printer.Standard, false},
		{"escape,bogus", 0, true},
	}
	for i, tt := range tests {
		got, err := printer.ParseOptions(tt.in)
		if (err != nil) != tt.err {
			t.Errorf("%d. ParseOptions(%q) error = %v", i, tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%d. ParseOptions(%q) = %v, want %v", i, tt.in, got, tt.want)
		}
	}
}

type failingWriter struct{ n int }

var errFull = errors.New("disk full")

func (w *failingWriter) Write(p []byte) (int, error) {
	w.n++
	if w.n > 1 {
		return 0, errFull
	}
	return len(p), nil
}

func TestFprintError(t *testing.T) {
	r := root(nil, decl("a", "1"), decl("b", "2"))
	w := &failingWriter{}
	if err := printer.Fprint(w, r, printer.DefaultConfig); !errors.Is(err, errFull) {
		t.Errorf("Fprint error = %v, want %v", err, errFull)
	}
	if w.n != 2 {
		t.Errorf("writes after the first failure: %d", w.n-2)
	}
}
