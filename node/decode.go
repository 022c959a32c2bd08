package node

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"
)

// DecodeError reports a malformed tree dump. Path locates the
// offending node, e.g. "nodes[0].nodes[2].raws.before".
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	if e.Path == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

type jsonNode struct {
	Type      string                     `json:"type"`
	Nodes     []json.RawMessage          `json:"nodes"`
	Selector  string                     `json:"selector"`
	Name      string                     `json:"name"`
	Params    string                     `json:"params"`
	Prop      string                     `json:"prop"`
	Value     string                     `json:"value"`
	Important bool                       `json:"important"`
	Text      string                     `json:"text"`
	Raws      map[string]json.RawMessage `json:"raws"`
	Source    *struct {
		Input *struct {
			CSS string `json:"css"`
		} `json:"input"`
	} `json:"source"`
}

// Decode reads a JSON dump of a tree as written by PostCSS's toJSON.
// Raw keys carrying the namespace prefix, like "linariaBefore",
// become overrides; "<namespace>TemplateExpressions" on a root becomes
// its expression table.
func Decode(r io.Reader, namespace string) (*Node, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	d := decoder{namespace: namespace}
	return d.node(data, "", nil)
}

type decoder struct {
	namespace string
}

func (d *decoder) node(data []byte, path string, parent *Node) (*Node, error) {
	var jn jsonNode
	if err := json.Unmarshal(data, &jn); err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	n := &Node{
		Parent:    parent,
		Selector:  jn.Selector,
		Name:      jn.Name,
		Params:    jn.Params,
		Prop:      jn.Prop,
		Value:     jn.Value,
		Important: jn.Important,
		Text:      jn.Text,
	}
	switch jn.Type {
	case "document":
		n.Type = Document
	case "root":
		n.Type = Root
	case "rule":
		n.Type = Rule
	case "atrule":
		n.Type = AtRule
	case "decl":
		n.Type = Decl
	case "comment":
		n.Type = Comment
	default:
		return nil, &DecodeError{Path: join(path, "type"), Err: fmt.Errorf("unknown node type %q", jn.Type)}
	}
	if jn.Source != nil && jn.Source.Input != nil {
		n.Source = &Source{Input: jn.Source.Input.CSS}
	}
	if err := d.raws(n, jn.Raws, join(path, "raws")); err != nil {
		return nil, err
	}
	if jn.Nodes != nil {
		n.Nodes = make([]*Node, 0, len(jn.Nodes))
	}
	for i, raw := range jn.Nodes {
		c, err := d.node(raw, fmt.Sprintf("%s[%d]", join(path, "nodes"), i), n)
		if err != nil {
			return nil, err
		}
		n.Nodes = append(n.Nodes, c)
	}
	return n, nil
}

func (d *decoder) raws(n *Node, raws map[string]json.RawMessage, path string) error {
	exprKey := d.namespace + "TemplateExpressions"
	for key, raw := range raws {
		keyPath := join(path, key)
		if key == exprKey {
			if err := json.Unmarshal(raw, &n.Expressions); err != nil {
				return &DecodeError{Path: keyPath, Err: err}
			}
			if n.Expressions == nil {
				n.Expressions = []string{}
			}
			continue
		}
		if name, ok := d.overrideName(key); ok {
			text := literalText(raw)
			if s, ok := ParseSlot(name); ok {
				n.Raws.SetOverride(s, text)
			} else if p, ok := ParseProp(name); ok {
				n.Raws.SetValueOverride(p, text)
			} else {
				tracer().Debugf("ignoring override %s", keyPath)
			}
			continue
		}
		if p, ok := ParseProp(key); ok {
			var v RawValue
			if err := json.Unmarshal(raw, &v); err != nil {
				return &DecodeError{Path: keyPath, Err: err}
			}
			n.Raws.SetValue(p, v.Value, v.Raw)
			continue
		}
		s, ok := ParseSlot(key)
		if !ok {
			tracer().Debugf("ignoring raw %s", keyPath)
			continue
		}
		text, err := slotText(raw)
		if err != nil {
			return &DecodeError{Path: keyPath, Err: err}
		}
		n.Raws.Set(s, text)
	}
	return nil
}

// overrideName strips the namespace from key and lowercases the
// first letter of the rest.
func (d *decoder) overrideName(key string) (string, bool) {
	if d.namespace == "" {
		return "", false
	}
	rest, ok := strings.CutPrefix(key, d.namespace)
	if !ok {
		return "", false
	}
	r, size := utf8.DecodeRuneInString(rest)
	if !unicode.IsUpper(r) {
		return "", false
	}
	return string(unicode.ToLower(r)) + rest[size:], true
}

// slotText converts a captured raw to text. Booleans (as used for
// "semicolon") turn into ";" or the empty string.
func slotText(raw json.RawMessage) (string, error) {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return "", err
	}
	switch v := v.(type) {
	case string:
		return v, nil
	case bool:
		if v {
			return ";", nil
		}
		return "", nil
	case nil:
		return "", nil
	}
	return "", fmt.Errorf("unexpected raw %s", raw)
}

// literalText returns the text form of a JSON value: strings
// unquoted, anything else as written.
func literalText(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	var s string
	if len(raw) > 0 && raw[0] == '"' && json.Unmarshal(raw, &s) == nil {
		return s
	}
	return string(raw)
}

func join(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}
