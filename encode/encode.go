package encode

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dataconvert/go-dataconvert/format"
	"github.com/dataconvert/go-dataconvert/ir"
)

var (
	ErrEncoding = errors.New("encoding error")
	ErrShape    = errors.New("shape error")
)

type EncState struct {
	depth, indent int
	pretty        bool
	root          string

	format format.Format
}

func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
		root:   "root",
	}
	for _, opt := range opts {
		opt(es)
	}
	switch es.format {
	case format.JSONFormat:
		return encodeJSON(node, w, es)
	case format.CSVFormat:
		return encodeCSV(node, w, es)
	case format.XMLFormat:
		return encodeXML(node, w, es)
	case format.YAMLFormat:
		return encodeYAML(node, w, es)
	default:
		return fmt.Errorf("%w: %d", format.ErrBadFormat, es.format)
	}
}

// Helper functions for writing

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

// writeNL writes a newline plus indentation for the current depth when
// pretty output is on.
func writeNL(w io.Writer, es *EncState) error {
	if !es.pretty {
		return nil
	}
	indentString := strings.Repeat(strings.Repeat(" ", es.indent), es.depth)
	return writeString(w, "\n"+indentString)
}
