package parse

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dataconvert/go-dataconvert/ir"
)

// parseXML walks encoding/xml's token stream and builds the element
// tree using the attribute-encoding convention: attributes live under
// ir.AttrKey, mixed character data under ir.TextKey. An element with
// only text collapses to a bare string; an empty element parses to
// null. Repeated sibling tags are promoted to an array at the first
// occurrence's position. The result is wrapped as {rootTag: content} so
// the document's root name survives conversion.
func parseXML(d []byte) (*ir.Node, error) {
	dec := xml.NewDecoder(bytes.NewReader(d))
	var root *ir.Node
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			if root == nil {
				return nil, fmt.Errorf("%w: xml: no root element", ErrParse)
			}
			return root, nil
		}
		if err != nil {
			return nil, xmlErr(err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if root != nil {
				return nil, fmt.Errorf("%w: xml: multiple root elements (second is <%s>)",
					ErrParse, t.Name.Local)
			}
			name, err := xmlName(t.Name)
			if err != nil {
				return nil, err
			}
			content, err := xmlElement(dec, t)
			if err != nil {
				return nil, err
			}
			root = ir.Object()
			ir.Set(root, name, content)
		case xml.CharData:
			if len(bytes.TrimSpace(t)) > 0 {
				return nil, fmt.Errorf("%w: xml: text outside root element", ErrParse)
			}
		case xml.ProcInst, xml.Comment, xml.Directive:
			// skip
		}
	}
}

func xmlErr(err error) error {
	var serr *xml.SyntaxError
	if errors.As(err, &serr) {
		return fmt.Errorf("%w: xml: %s (line %d)", ErrParse, serr.Msg, serr.Line)
	}
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return fmt.Errorf("%w: xml: unexpected end of input", ErrParse)
	}
	return fmt.Errorf("%w: xml: %v", ErrParse, err)
}

// xmlName rejects namespaced names: namespaces are out of scope and
// mis-parsing them silently would corrupt keys.
func xmlName(n xml.Name) (string, error) {
	if n.Space != "" {
		return "", fmt.Errorf("%w: xml: namespaces are not supported (<%s:%s>)",
			ErrUnsupported, n.Space, n.Local)
	}
	if n.Local == "xmlns" {
		return "", fmt.Errorf("%w: xml: namespaces are not supported (xmlns)",
			ErrUnsupported)
	}
	return n.Local, nil
}

func xmlElement(dec *xml.Decoder, start xml.StartElement) (*ir.Node, error) {
	var attrs *ir.Node
	if len(start.Attr) > 0 {
		attrs = ir.Object()
		for _, a := range start.Attr {
			name, err := xmlName(a.Name)
			if err != nil {
				return nil, err
			}
			ir.Set(attrs, name, ir.FromString(a.Value))
		}
	}
	var (
		text     strings.Builder
		children []ir.KeyVal
	)
	for {
		tok, err := dec.Token()
		if err != nil {
			return nil, xmlErr(err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			name, err := xmlName(t.Name)
			if err != nil {
				return nil, err
			}
			child, err := xmlElement(dec, t)
			if err != nil {
				return nil, err
			}
			children = appendChild(children, name, child)
		case xml.CharData:
			text.Write(t)
		case xml.EndElement:
			return xmlAssemble(attrs, strings.TrimSpace(text.String()), children), nil
		case xml.ProcInst, xml.Comment, xml.Directive:
			// skip
		}
	}
}

// appendChild adds a child element, promoting a repeated tag to an
// array at its first position. A tag seen once stays a singleton: one
// occurrence is indistinguishable from a guaranteed-singleton element,
// so round-tripping an array of one through XML collapses it.
func appendChild(children []ir.KeyVal, name string, child *ir.Node) []ir.KeyVal {
	for i := range children {
		if children[i].Key.String != name {
			continue
		}
		prev := children[i].Val
		if prev.Type == ir.ArrayType {
			ir.Append(prev, child)
			return children
		}
		arr := ir.FromSlice([]*ir.Node{prev, child})
		children[i].Val = arr
		return children
	}
	return append(children, ir.KeyVal{Key: ir.FromString(name), Val: child})
}

func xmlAssemble(attrs *ir.Node, text string, children []ir.KeyVal) *ir.Node {
	if attrs == nil && len(children) == 0 {
		if text == "" {
			return ir.Null()
		}
		return ir.FromString(text)
	}
	kvs := make([]ir.KeyVal, 0, len(children)+2)
	if attrs != nil {
		kvs = append(kvs, ir.KeyVal{Key: ir.FromString(ir.AttrKey), Val: attrs})
	}
	if text != "" {
		kvs = append(kvs, ir.KeyVal{Key: ir.FromString(ir.TextKey), Val: ir.FromString(text)})
	}
	kvs = append(kvs, children...)
	return ir.FromKeyVals(kvs)
}
