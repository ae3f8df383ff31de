// Package dataconvert converts documents between JSON, CSV, XML, and
// YAML by parsing the source into the ir tree and serializing the tree
// in the target format. Every pairing of the four formats is routed
// through the same tree, so adding a format touches only its own
// parser and serializer.
package dataconvert

import (
	"bytes"
	"fmt"

	"github.com/dataconvert/go-dataconvert/encode"
	"github.com/dataconvert/go-dataconvert/format"
	"github.com/dataconvert/go-dataconvert/ir"
	"github.com/dataconvert/go-dataconvert/parse"
)

// Option adjusts how Convert renders the target format.
type Option func(*opts)

type opts struct {
	pretty bool
	root   string
}

// Pretty turns on indented output for formats that have a compact and
// an expanded form (JSON, XML).
func Pretty(v bool) Option {
	return func(o *opts) {
		o.pretty = v
	}
}

// Root names the XML root element. It overrides the default of "root"
// and the root name recovered from a single-entry top-level mapping.
func Root(name string) Option {
	return func(o *opts) {
		o.root = name
	}
}

// Convert parses in as the src format and serializes the result as the
// dst format. Parse and encode errors come back unchanged, so callers
// can match parse.ErrParse, parse.ErrUnsupported, encode.ErrShape, and
// encode.ErrEncoding with errors.Is. An out-of-range format fails with
// format.ErrBadFormat.
func Convert(in []byte, src, dst format.Format, options ...Option) ([]byte, error) {
	if _, err := src.MarshalText(); err != nil {
		return nil, fmt.Errorf("%w: source format %d", format.ErrBadFormat, src)
	}
	if _, err := dst.MarshalText(); err != nil {
		return nil, fmt.Errorf("%w: target format %d", format.ErrBadFormat, dst)
	}
	var o opts
	for _, opt := range options {
		opt(&o)
	}
	node, err := parse.Parse(in, parse.ParseFormat(src))
	if err != nil {
		return nil, err
	}
	eOpts := []encode.EncodeOption{
		encode.EncodeFormat(dst),
		encode.EncodePretty(o.pretty),
	}
	if dst == format.XMLFormat {
		root := o.root
		if root == "" {
			root = xmlRootName(&node)
		}
		if root != "" {
			eOpts = append(eOpts, encode.EncodeRoot(root))
		}
	}
	var buf bytes.Buffer
	if err := encode.Encode(node, &buf, eOpts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// xmlRootName unwraps a single-entry mapping into its key so an XML
// document's root tag survives a round trip through another format. The
// reserved attribute and text keys never name an element, so those stay
// wrapped. On unwrap the mapping is replaced by its sole value.
func xmlRootName(node **ir.Node) string {
	n := *node
	if n.Type != ir.ObjectType || len(n.Fields) != 1 {
		return ""
	}
	key := n.Fields[0].String
	if key == "" || key[0] == '@' || key[0] == '#' {
		return ""
	}
	*node = n.Values[0]
	return key
}
