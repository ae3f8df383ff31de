package encode

import (
	"bytes"
	"testing"

	"github.com/dataconvert/go-dataconvert/format"
	"github.com/dataconvert/go-dataconvert/ir"

	"github.com/stretchr/testify/require"
)

func encodeYAMLString(t *testing.T, node *ir.Node) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Encode(node, &buf, EncodeFormat(format.YAMLFormat)))
	return buf.String()
}

func TestEncodeYAML(t *testing.T) {
	for _, tc := range []struct {
		name string
		node *ir.Node
		want string
	}{
		{"null", ir.Null(), "null\n"},
		{"bool", ir.FromBool(false), "false\n"},
		{"int", ir.FromInt(42), "42\n"},
		{"float", ir.FromFloat(2), "2.0\n"},
		{"string", ir.FromString("hi"), "hi\n"},
		{"empty-object", ir.Object(), "{}\n"},
		{"empty-array", ir.FromSlice(nil), "[]\n"},
		{
			name: "flat-mapping",
			node: obj("a", ir.FromInt(1), "b", ir.FromString("two"), "c", ir.Null()),
			want: "a: 1\nb: two\nc: null\n",
		},
		{
			name: "nested-mapping",
			node: obj("a", obj("b", ir.FromInt(1)), "d", ir.FromInt(2)),
			want: "a:\n  b: 1\nd: 2\n",
		},
		{
			name: "sequence",
			node: ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromString("two")}),
			want: "- 1\n- two\n",
		},
		{
			name: "sequence-under-key",
			node: obj("xs", ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromInt(2)})),
			want: "xs:\n  - 1\n  - 2\n",
		},
		{
			name: "sequence-of-mappings",
			node: ir.FromSlice([]*ir.Node{
				obj("a", ir.FromInt(1), "b", ir.FromInt(2)),
				obj("a", ir.FromInt(3)),
			}),
			want: "- a: 1\n  b: 2\n- a: 3\n",
		},
		{
			name: "mapping-item-with-nested-block",
			node: ir.FromSlice([]*ir.Node{
				obj("a", obj("b", ir.FromInt(1)), "c", ir.FromInt(2)),
			}),
			want: "- a:\n    b: 1\n  c: 2\n",
		},
		{
			name: "nested-sequence",
			node: ir.FromSlice([]*ir.Node{
				ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromInt(2)}),
				ir.FromInt(3),
			}),
			want: "-\n  - 1\n  - 2\n- 3\n",
		},
		{
			name: "empty-containers-nested",
			node: obj("o", ir.Object(), "xs", ir.FromSlice(nil)),
			want: "o: {}\nxs: []\n",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, encodeYAMLString(t, tc.node))
		})
	}
}

// Strings whose raw spelling would re-parse as another type, or start a
// construct, come out quoted.
func TestEncodeYAMLQuoting(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want string
	}{
		{"hi", "hi"},
		{"hello world", "hello world"},
		{"x#y", "x#y"},
		{"", `""`},
		{"null", `"null"`},
		{"~", `"~"`},
		{"true", `"true"`},
		{"false", `"false"`},
		{"42", `"42"`},
		{"3.5", `"3.5"`},
		{"1e3", `"1e3"`},
		{"yes", "yes"},
		{" padded", `" padded"`},
		{"trailing ", `"trailing "`},
		{"a: b", `"a: b"`},
		{"ends:", `"ends:"`},
		{"a #c", `"a #c"`},
		{"- item", `"- item"`},
		{"&anchor", `"&anchor"`},
		{"*alias", `"*alias"`},
		{"!tag", `"!tag"`},
		{"[flow", `"[flow"`},
		{"{flow", `"{flow"`},
		{"|block", `"|block"`},
		{"'quoted'", `"'quoted'"`},
		{"multi\nline", `"multi\nline"`},
	} {
		got := encodeYAMLString(t, obj("v", ir.FromString(tc.in)))
		require.Equal(t, "v: "+tc.want+"\n", got, "value %q", tc.in)
	}
}
