package parse

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/dataconvert/go-dataconvert/ir"
)

// parseCSV reads a comma-delimited document with a header row into an
// array of objects. All field values stay strings: the format carries no
// type information. Short rows pad missing trailing columns with the
// empty string; extra fields beyond the header are dropped. A repeated
// header name keeps its first column position with the last column's
// value.
func parseCSV(d []byte) (*ir.Node, error) {
	r := csv.NewReader(bytes.NewReader(d))
	r.FieldsPerRecord = -1
	recs, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: csv: %v", ErrParse, err)
	}
	rows := &ir.Node{Type: ir.ArrayType}
	if len(recs) == 0 {
		return rows, nil
	}
	header := recs[0]
	for _, rec := range recs[1:] {
		row := ir.Object()
		for i, key := range header {
			v := ""
			if i < len(rec) {
				v = rec[i]
			}
			ir.Set(row, key, ir.FromString(v))
		}
		ir.Append(rows, row)
	}
	return rows, nil
}
