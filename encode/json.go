package encode

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/dataconvert/go-dataconvert/ir"
)

// encodeJSON hand-rolls the emitter because object keys must come out
// in insertion order, which marshalling a Go map cannot provide.
func encodeJSON(node *ir.Node, w io.Writer, es *EncState) error {
	return jsonNode(node, w, es)
}

func jsonNode(node *ir.Node, w io.Writer, es *EncState) error {
	switch node.Type {
	case ir.NullType:
		return writeString(w, "null")
	case ir.BoolType:
		return writeString(w, strconv.FormatBool(node.Bool))
	case ir.NumberType:
		s, err := jsonNumber(node)
		if err != nil {
			return err
		}
		return writeString(w, s)
	case ir.StringType:
		return writeString(w, jsonString(node.String))
	case ir.ArrayType:
		return jsonArray(node, w, es)
	case ir.ObjectType:
		return jsonObject(node, w, es)
	default:
		return fmt.Errorf("%w: json: unknown node type %d", ErrEncoding, node.Type)
	}
}

func jsonNumber(node *ir.Node) (string, error) {
	if node.Int64 != nil {
		return strconv.FormatInt(*node.Int64, 10), nil
	}
	f := *node.Float64
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return "", fmt.Errorf("%w: json: cannot encode %v", ErrEncoding, f)
	}
	return floatString(f), nil
}

// floatString keeps a fractional marker so the value re-parses as a
// float rather than collapsing to an integer.
func floatString(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

func jsonString(s string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	// keep <, >, & literal rather than HTML-safe
	enc.SetEscapeHTML(false)
	// Encode of a string cannot fail.
	_ = enc.Encode(s)
	return strings.TrimSuffix(buf.String(), "\n")
}

func jsonArray(node *ir.Node, w io.Writer, es *EncState) error {
	if len(node.Values) == 0 {
		return writeString(w, "[]")
	}
	if err := writeString(w, "["); err != nil {
		return err
	}
	es.depth++
	for i, v := range node.Values {
		if i > 0 {
			if err := writeString(w, ","); err != nil {
				return err
			}
		}
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := jsonNode(v, w, es); err != nil {
			return err
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeString(w, "]")
}

func jsonObject(node *ir.Node, w io.Writer, es *EncState) error {
	if len(node.Fields) == 0 {
		return writeString(w, "{}")
	}
	if err := writeString(w, "{"); err != nil {
		return err
	}
	es.depth++
	sep := ":"
	if es.pretty {
		sep = ": "
	}
	for i := range node.Fields {
		if i > 0 {
			if err := writeString(w, ","); err != nil {
				return err
			}
		}
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := writeString(w, jsonString(node.Fields[i].String)+sep); err != nil {
			return err
		}
		if err := jsonNode(node.Values[i], w, es); err != nil {
			return err
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeString(w, "}")
}
