package parse

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/dataconvert/go-dataconvert/ir"
)

// parseJSON adapts encoding/json's token stream to the IR. The stdlib
// decoder is used token by token rather than via Unmarshal so object key
// order survives.
func parseJSON(d []byte) (*ir.Node, error) {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	tok, err := dec.Token()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: json: empty document", ErrParse)
	}
	if err != nil {
		return nil, jsonErr(err)
	}
	node, err := jsonNode(dec, tok)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		if err == nil {
			return nil, fmt.Errorf("%w: json: trailing data at offset %d",
				ErrParse, dec.InputOffset())
		}
		return nil, jsonErr(err)
	}
	return node, nil
}

func jsonErr(err error) error {
	var serr *json.SyntaxError
	if errors.As(err, &serr) {
		return fmt.Errorf("%w: json: %s at offset %d", ErrParse, serr.Error(), serr.Offset)
	}
	if err == io.ErrUnexpectedEOF || err == io.EOF {
		return fmt.Errorf("%w: json: unexpected end of input", ErrParse)
	}
	return fmt.Errorf("%w: json: %v", ErrParse, err)
}

func jsonValue(dec *json.Decoder) (*ir.Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, jsonErr(err)
	}
	return jsonNode(dec, tok)
}

func jsonNode(dec *json.Decoder, tok json.Token) (*ir.Node, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return jsonObject(dec)
		case '[':
			return jsonArray(dec)
		}
		return nil, fmt.Errorf("%w: json: unexpected %q at offset %d",
			ErrParse, t.String(), dec.InputOffset())
	case string:
		return ir.FromString(t), nil
	case bool:
		return ir.FromBool(t), nil
	case json.Number:
		if i, err := strconv.ParseInt(string(t), 10, 64); err == nil {
			return ir.FromInt(i), nil
		}
		f, err := t.Float64()
		if err != nil {
			return nil, fmt.Errorf("%w: json: bad number %q at offset %d",
				ErrParse, string(t), dec.InputOffset())
		}
		return ir.FromFloat(f), nil
	case nil:
		return ir.Null(), nil
	default:
		return nil, fmt.Errorf("%w: json: unexpected token at offset %d",
			ErrParse, dec.InputOffset())
	}
}

func jsonObject(dec *json.Decoder) (*ir.Node, error) {
	obj := ir.Object()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, jsonErr(err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("%w: json: non-string object key at offset %d",
				ErrParse, dec.InputOffset())
		}
		val, err := jsonValue(dec)
		if err != nil {
			return nil, err
		}
		ir.Set(obj, key, val)
	}
	// closing '}'
	if _, err := dec.Token(); err != nil {
		return nil, jsonErr(err)
	}
	return obj, nil
}

func jsonArray(dec *json.Decoder) (*ir.Node, error) {
	arr := &ir.Node{Type: ir.ArrayType}
	for dec.More() {
		elt, err := jsonValue(dec)
		if err != nil {
			return nil, err
		}
		ir.Append(arr, elt)
	}
	// closing ']'
	if _, err := dec.Token(); err != nil {
		return nil, jsonErr(err)
	}
	return arr, nil
}
