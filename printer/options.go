package printer

import (
	"fmt"
	"strings"
)

type Options uint8

const (
	// EscapeLiteral escapes backslashes and the literal's delimiter
	// in the text of all nodes but roots.
	EscapeLiteral Options = 1 << iota

	// Placeholders substitutes placeholders with the expressions
	// they stand for.
	Placeholders

	// Overrides makes raw overrides take precedence over generic raws.
	Overrides

	// Standard is the default, lossless behaviour.
	Standard = EscapeLiteral | Placeholders | Overrides
)

// Config controls a Printer.
type Config struct {
	Options Options

	FullMarker  string // followed by ":" and the index
	ShortMarker string // directly followed by the index
	Delimiter   byte
}

var DefaultConfig = Config{
	Options:     Standard,
	FullMarker:  "pcss-lin",
	ShortMarker: "--pcss-lin",
	Delimiter:   '`',
}

// ParseOptions parses a comma-separated list of option names:
// "base" (no options), "escape", "placeholders" and "overrides".
// An empty list means Standard.
func ParseOptions(s string) (Options, error) {
	if strings.TrimSpace(s) == "" {
		return Standard, nil
	}
	var opts Options
	for _, opt := range strings.Split(s, ",") {
		switch opt = strings.TrimSpace(opt); opt {
		default:
			return 0, fmt.Errorf("unknown option %q", opt)
		case "base", "":
		case "escape":
			opts |= EscapeLiteral
		case "placeholders":
			opts |= Placeholders
		case "overrides":
			opts |= Overrides
		}
	}
	return opts, nil
}
