package encode

import (
	"bytes"
	"testing"

	"github.com/dataconvert/go-dataconvert/format"
	"github.com/dataconvert/go-dataconvert/ir"

	"github.com/stretchr/testify/require"
)

func csvString(t *testing.T, node *ir.Node) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Encode(node, &buf, EncodeFormat(format.CSVFormat)))
	return buf.String()
}

func TestEncodeCSV(t *testing.T) {
	for _, tc := range []struct {
		name string
		node *ir.Node
		want string
	}{
		{
			name: "basic",
			node: ir.FromSlice([]*ir.Node{
				obj("a", ir.FromInt(1), "b", ir.FromString("x")),
				obj("a", ir.FromInt(2), "b", ir.FromString("y")),
			}),
			want: "a,b\n1,x\n2,y\n",
		},
		{
			name: "header-union-first-seen",
			node: ir.FromSlice([]*ir.Node{
				obj("a", ir.FromInt(1)),
				obj("b", ir.FromInt(2)),
			}),
			want: "a,b\n1,\n,2\n",
		},
		{
			name: "single-object-is-one-row",
			node: obj("a", ir.FromInt(1)),
			want: "a\n1\n",
		},
		{
			name: "empty-sequence",
			node: ir.FromSlice(nil),
			want: "",
		},
		{
			name: "null-is-empty-field",
			node: obj("a", ir.Null(), "b", ir.FromBool(false)),
			want: "a,b\n,false\n",
		},
		{
			name: "quoting",
			node: obj("a", ir.FromString("x,y"), "b", ir.FromString("line\nbreak")),
			want: "a,b\n\"x,y\",\"line\nbreak\"\n",
		},
		{
			name: "nested-flattens-to-json",
			node: obj("a", obj("k", ir.FromInt(1)), "b", ir.FromSlice([]*ir.Node{ir.FromInt(1)})),
			want: "a,b\n\"{\"\"k\"\":1}\",[1]\n",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, csvString(t, tc.node))
		})
	}
}

func TestEncodeCSVShapeErrors(t *testing.T) {
	var buf bytes.Buffer
	err := Encode(ir.FromInt(1), &buf, EncodeFormat(format.CSVFormat))
	require.ErrorIs(t, err, ErrShape)

	err = Encode(ir.FromSlice([]*ir.Node{ir.FromInt(1)}), &buf,
		EncodeFormat(format.CSVFormat))
	require.ErrorIs(t, err, ErrShape)

	err = Encode(ir.Null(), &buf, EncodeFormat(format.CSVFormat))
	require.ErrorIs(t, err, ErrShape)
}
