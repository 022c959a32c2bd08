// Package printer reconstructs the source of a template literal from the
// style-sheet tree that was parsed out of it.
//
// Before parsing, every template expression was replaced by a placeholder:
//
//   - a full placeholder, "pcss-lin:<index>", stands for a whole token, such
//     as a property name or a comment body;
//   - a short placeholder, "--pcss-lin<index>", may appear among other
//     space-separated words of a declaration value or a rule selector.
//
// The index refers to the expression table kept on the root node
// (see [node.Node.Expressions]). Printing puts each expression back in place
// and prefers tree-local raw overrides, like the "linariaBefore" raw, over the
// generic raws when the parser left both. Text of every node other than a
// root is escaped so it stays valid inside the literal.
//
// Placeholders are resolved leniently. A placeholder whose index does not
// resolve is printed as is, and missing overrides fall back to the generic
// raws and their detected defaults. Printing never fails.
//
// Markers must not contain spaces and must not occur in ordinary
// style-sheet tokens; short placeholders are only recognized when they make
// up a whole space-separated word.
package printer

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'linaria.printer'.
func tracer() tracing.Trace {
	return tracing.Select("linaria.printer")
}
