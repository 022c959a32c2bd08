package printer

import (
	"strings"

	"github.com/kutnickclose/linaria/node"
	"github.com/kutnickclose/linaria/stringify"
)

// Escape returns a Builder that escapes backslashes and delim in the
// text of every node before passing it to b. Text without a node, or
// of a root node, is host-language code already and goes through as is.
func Escape(b stringify.Builder, delim byte) stringify.Builder {
	d := string(delim)
	return func(text string, n *node.Node, boundary stringify.Boundary) {
		if n == nil || n.Type == node.Root {
			b(text, n, boundary)
			return
		}
		// Backslashes first, the ones escaping delim must stay single.
		text = strings.ReplaceAll(text, `\`, `\\`)
		text = strings.ReplaceAll(text, d, `\`+d)
		b(text, n, boundary)
	}
}
