package encode

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/dataconvert/go-dataconvert/ir"
)

// encodeXML wraps the value under a single element named by the root
// option. Object entries become child elements named by key; an array
// value under a key repeats that key's tag per item, mirroring the
// parse-side collapsing; an anonymous array (the root, or an array
// directly inside an array) uses <item> per member. The reserved
// ir.AttrKey entry becomes attributes on the enclosing element and
// ir.TextKey its character data. Null serializes as an empty element.
func encodeXML(node *ir.Node, w io.Writer, es *EncState) error {
	if err := xmlElem(node, w, es.root, es); err != nil {
		return err
	}
	if es.pretty {
		return writeString(w, "\n")
	}
	return nil
}

func xmlElem(node *ir.Node, w io.Writer, tag string, es *EncState) error {
	if err := checkTag(tag); err != nil {
		return err
	}
	open := "<" + tag
	var attrs *ir.Node
	if node.Type == ir.ObjectType {
		attrs = ir.Get(node, ir.AttrKey)
	}
	if attrs != nil {
		if attrs.Type != ir.ObjectType {
			return fmt.Errorf("%w: xml: %s must be a mapping, got %s",
				ErrShape, ir.AttrKey, attrs.Type)
		}
		for i := range attrs.Fields {
			name := attrs.Fields[i].String
			val := attrs.Values[i]
			if err := checkTag(name); err != nil {
				return err
			}
			if !val.Type.IsLeaf() {
				return fmt.Errorf("%w: xml: attribute %q must be scalar, got %s",
					ErrShape, name, val.Type)
			}
			open += " " + name + `="` + xmlEscape(val.ScalarString()) + `"`
		}
	}
	if err := writeString(w, open+">"); err != nil {
		return err
	}
	if err := xmlContent(node, w, tag, es); err != nil {
		return err
	}
	return writeString(w, "</"+tag+">")
}

func xmlContent(node *ir.Node, w io.Writer, tag string, es *EncState) error {
	switch node.Type {
	case ir.NullType:
		return nil
	case ir.BoolType, ir.NumberType, ir.StringType:
		return writeString(w, xmlEscape(node.ScalarString()))
	case ir.ArrayType:
		return xmlAnonItems(node.Values, w, es)
	case ir.ObjectType:
		return xmlObjectContent(node, w, es)
	default:
		return fmt.Errorf("%w: xml: unknown node type %d", ErrEncoding, node.Type)
	}
}

func xmlObjectContent(node *ir.Node, w io.Writer, es *EncState) error {
	// text-only (plus attributes) stays inline
	onlyText := true
	for _, f := range node.Fields {
		if f.String != ir.AttrKey && f.String != ir.TextKey {
			onlyText = false
			break
		}
	}
	if text := ir.Get(node, ir.TextKey); text != nil {
		if !text.Type.IsLeaf() {
			return fmt.Errorf("%w: xml: %s must be scalar, got %s",
				ErrShape, ir.TextKey, text.Type)
		}
		if err := writeString(w, xmlEscape(text.ScalarString())); err != nil {
			return err
		}
		if onlyText {
			return nil
		}
	}
	wrote := false
	es.depth++
	for i := range node.Fields {
		key := node.Fields[i].String
		if key == ir.AttrKey || key == ir.TextKey {
			continue
		}
		val := node.Values[i]
		items := []*ir.Node{val}
		tag := key
		if val.Type == ir.ArrayType {
			// a sequence under a key repeats the key's tag per item
			items = val.Values
		}
		for _, item := range items {
			if err := writeNL(w, es); err != nil {
				return err
			}
			wrote = true
			if err := xmlElem(item, w, tag, es); err != nil {
				return err
			}
		}
	}
	es.depth--
	if wrote {
		return writeNL(w, es)
	}
	return nil
}

// xmlAnonItems emits an array with no enclosing key as repeated <item>
// elements.
func xmlAnonItems(items []*ir.Node, w io.Writer, es *EncState) error {
	if len(items) == 0 {
		return nil
	}
	es.depth++
	for _, item := range items {
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := xmlElem(item, w, "item", es); err != nil {
			return err
		}
	}
	es.depth--
	return writeNL(w, es)
}

func xmlEscape(s string) string {
	var b strings.Builder
	// EscapeText only fails on a failing writer.
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}

// checkTag refuses names that would produce malformed markup: emitting
// invalid output silently would break the conversion-closure guarantee.
func checkTag(tag string) error {
	if tag == "" {
		return fmt.Errorf("%w: xml: empty element name", ErrEncoding)
	}
	if strings.ContainsAny(tag, " \t\n\r<>&\"'=/:") {
		return fmt.Errorf("%w: xml: invalid element name %q", ErrEncoding, tag)
	}
	switch tag[0] {
	case '-', '.':
		return fmt.Errorf("%w: xml: invalid element name %q", ErrEncoding, tag)
	}
	if tag[0] >= '0' && tag[0] <= '9' {
		return fmt.Errorf("%w: xml: invalid element name %q", ErrEncoding, tag)
	}
	return nil
}
