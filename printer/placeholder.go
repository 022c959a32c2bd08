package printer

import (
	"strconv"
	"strings"

	"github.com/kutnickclose/linaria/node"
)

// expression looks up expression i for n. Empty expressions count as
// unresolved.
func expression(n *node.Node, i int) (string, bool) {
	expr, ok := n.Expression(i)
	if !ok || expr == "" {
		return "", false
	}
	return expr, true
}

// parseIndex parses s as marker immediately followed by decimal digits.
func parseIndex(s, marker string) (int, bool) {
	digits, ok := strings.CutPrefix(s, marker)
	if !ok || digits == "" {
		return 0, false
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return 0, false
		}
	}
	i, err := strconv.Atoi(digits)
	if err != nil {
		return 0, false
	}
	return i, true
}

// fullPlaceholder resolves s of the form "<marker>:<index>".
func (p *Printer) fullPlaceholder(n *node.Node, s string) (string, bool) {
	i, ok := parseIndex(s, p.cfg.FullMarker+":")
	if !ok {
		return "", false
	}
	expr, ok := expression(n, i)
	if !ok {
		tracer().Debugf("placeholder %q does not resolve", s)
	}
	return expr, ok
}

// substitute replaces every space-separated word of s that is a short
// placeholder by its expression.
func (p *Printer) substitute(n *node.Node, s string) string {
	if p.cfg.Options&Placeholders == 0 || !strings.Contains(s, p.cfg.ShortMarker) {
		return s
	}
	words := strings.Split(s, " ")
	for j, w := range words {
		i, ok := parseIndex(w, p.cfg.ShortMarker)
		if !ok {
			continue
		}
		if expr, ok := expression(n, i); ok {
			words[j] = expr
		} else {
			tracer().Debugf("placeholder %q does not resolve", w)
		}
	}
	return strings.Join(words, " ")
}
