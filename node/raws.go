package node

import (
	"unicode"
	"unicode/utf8"
)

//go:generate go tool stringer -type Slot,Prop -linecomment

// Slot names a piece of formatting text captured by the parser.
type Slot uint8

const (
	Before       Slot = iota // before
	After                    // after
	Between                  // between
	Semicolon                // semicolon
	Important                // important
	Left                     // left
	Right                    // right
	AfterName                // afterName
	Indent                   // indent
	OwnSemicolon             // ownSemicolon
	CodeBefore               // codeBefore
	CodeAfter                // codeAfter

	// Slots below are never captured. They name the values the
	// generic printer detects when a node lacks its own raw.
	BeforeDecl    // beforeDecl
	BeforeRule    // beforeRule
	BeforeOpen    // beforeOpen
	BeforeClose   // beforeClose
	BeforeComment // beforeComment
	Colon         // colon
	EmptyBody     // emptyBody
	CommentLeft   // commentLeft
	CommentRight  // commentRight

	NoSlot // -
)

// Prop names a semantic property that may carry a parsed/raw pair.
type Prop uint8

const (
	ValueProp    Prop = iota // value
	SelectorProp             // selector
	ParamsProp               // params
)

// RawValue remembers the raw text of a property next to the cleaned
// value the parser derived from it.
type RawValue struct {
	Value string
	Raw   string
}

// Raws holds everything a node remembers about its original layout.
// The zero value is ready to use.
type Raws struct {
	Slots          map[Slot]string
	Overrides      map[Slot]string
	Values         map[Prop]RawValue
	ValueOverrides map[Prop]string
}

// Get returns the captured text of slot s.
func (r *Raws) Get(s Slot) (string, bool) {
	v, ok := r.Slots[s]
	return v, ok
}

// Truthy reports whether slot s holds non-empty text.
func (r *Raws) Truthy(s Slot) bool {
	return r.Slots[s] != ""
}

// Override returns the tree-local override of slot s.
func (r *Raws) Override(s Slot) (string, bool) {
	v, ok := r.Overrides[s]
	return v, ok
}

func (r *Raws) Value(p Prop) (RawValue, bool) {
	v, ok := r.Values[p]
	return v, ok
}

func (r *Raws) ValueOverride(p Prop) (string, bool) {
	v, ok := r.ValueOverrides[p]
	return v, ok
}

func (r *Raws) Set(s Slot, text string) {
	if r.Slots == nil {
		r.Slots = make(map[Slot]string)
	}
	r.Slots[s] = text
}

func (r *Raws) SetOverride(s Slot, text string) {
	if r.Overrides == nil {
		r.Overrides = make(map[Slot]string)
	}
	r.Overrides[s] = text
}

func (r *Raws) SetValue(p Prop, value, raw string) {
	if r.Values == nil {
		r.Values = make(map[Prop]RawValue)
	}
	r.Values[p] = RawValue{Value: value, Raw: raw}
}

func (r *Raws) SetValueOverride(p Prop, text string) {
	if r.ValueOverrides == nil {
		r.ValueOverrides = make(map[Prop]string)
	}
	r.ValueOverrides[p] = text
}

// OverrideKey returns the serialized name of the override for a raw
// or property name: the namespace followed by the capitalized name,
// e.g. "linaria" and "before" give "linariaBefore".
func OverrideKey(namespace, name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return namespace + name
	}
	return namespace + string(unicode.ToUpper(r)) + name[size:]
}

// ParseSlot maps a serialized raw name to its Slot.
func ParseSlot(name string) (Slot, bool) {
	for s := Before; s < NoSlot; s++ {
		if s.String() == name {
			return s, true
		}
	}
	return NoSlot, false
}

// ParseProp maps a serialized property name to its Prop.
func ParseProp(name string) (Prop, bool) {
	for p := ValueProp; p <= ParamsProp; p++ {
		if p.String() == name {
			return p, true
		}
	}
	return 0, false
}
