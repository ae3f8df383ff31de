package encode

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/dataconvert/go-dataconvert/ir"
)

// encodeCSV writes a sequence of objects as comma-delimited rows. The
// header is the union of all row keys in first-seen order; a missing
// key serializes as an empty field. A single object is treated as a
// one-row sequence. Nested values are flattened to their compact JSON
// form in a single field: CSV cannot express nesting natively.
func encodeCSV(node *ir.Node, w io.Writer, es *EncState) error {
	var rows []*ir.Node
	switch node.Type {
	case ir.ArrayType:
		rows = node.Values
	case ir.ObjectType:
		rows = []*ir.Node{node}
	default:
		return fmt.Errorf("%w: csv: cannot encode a bare %s", ErrShape, node.Type)
	}
	if len(rows) == 0 {
		return nil
	}
	var header []string
	seen := map[string]bool{}
	for i, row := range rows {
		if row.Type != ir.ObjectType {
			return fmt.Errorf("%w: csv: row %d is a %s, want Object", ErrShape, i, row.Type)
		}
		for _, f := range row.Fields {
			if seen[f.String] {
				continue
			}
			seen[f.String] = true
			header = append(header, f.String)
		}
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("%w: csv: %v", ErrEncoding, err)
	}
	rec := make([]string, len(header))
	for _, row := range rows {
		for i, key := range header {
			field, err := csvField(ir.Get(row, key))
			if err != nil {
				return err
			}
			rec[i] = field
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("%w: csv: %v", ErrEncoding, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("%w: csv: %v", ErrEncoding, err)
	}
	return nil
}

func csvField(v *ir.Node) (string, error) {
	if v == nil {
		return "", nil
	}
	if v.Type.IsLeaf() {
		return v.ScalarString(), nil
	}
	buf := bytes.NewBuffer(nil)
	if err := jsonNode(v, buf, &EncState{indent: 2}); err != nil {
		return "", err
	}
	return buf.String(), nil
}
