// Package parse provides parsing support for the supported formats.
package parse

import (
	"fmt"

	"github.com/dataconvert/go-dataconvert/format"
	"github.com/dataconvert/go-dataconvert/ir"
)

func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{format: format.JSONFormat}
	for _, f := range opts {
		f(pOpts)
	}
	switch pOpts.format {
	case format.JSONFormat:
		return parseJSON(d)
	case format.CSVFormat:
		return parseCSV(d)
	case format.XMLFormat:
		return parseXML(d)
	case format.YAMLFormat:
		return parseYAML(d)
	default:
		return nil, fmt.Errorf("%w: %d", format.ErrBadFormat, pOpts.format)
	}
}
