// Package format glues tree decoding and printing together.
package format

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/kutnickclose/linaria/node"
	"github.com/kutnickclose/linaria/printer"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'linaria.format'.
func tracer() tracing.Trace {
	return tracing.Select("linaria.format")
}

type Options struct {
	// Namespace prefixes the override raws and the expression
	// table in the dump.
	Namespace string
	Printer   printer.Config
}

var DefaultOptions = Options{
	Namespace: "linaria",
	Printer:   printer.DefaultConfig,
}

// Pipe reads a JSON dump of a style-sheet tree from in, reconstructs the
// template source and writes the result to out.
// The filename argument is used to set the “filename” in error messages.
func Pipe(filename string, out io.Writer, in io.Reader, opts Options) error {
	tree, err := node.Decode(in, opts.Namespace)
	var de *node.DecodeError
	if errors.As(err, &de) && de.Path != "" {
		return fmt.Errorf("%s: %s: %v", filename, de.Path, de.Err)
	} else if err != nil {
		return fmt.Errorf("%s: %w", filename, err)
	}

	var b bytes.Buffer
	if err := printer.Fprint(&b, tree, opts.Printer); err != nil {
		return err
	}
	if n := leftovers(b.String(), opts.Printer); n > 0 {
		tracer().Infof("WARN: %s: %d placeholders left unresolved", filename, n)
	}

	_, err = out.Write(b.Bytes())
	return err
}

// leftovers counts the placeholders that made it to the output.
func leftovers(src string, cfg printer.Config) int {
	if cfg.Options&printer.Placeholders == 0 {
		return 0
	}
	n := strings.Count(src, cfg.FullMarker+":")
	if cfg.ShortMarker != "" {
		n += strings.Count(src, cfg.ShortMarker)
	}
	return n
}
