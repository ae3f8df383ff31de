package ir

import "testing"

func TestIRJSONRoundTrip(t *testing.T) {
	node := FromKeyVals([]KeyVal{
		{Key: FromString("name"), Val: FromString("al")},
		{Key: FromString("ok"), Val: FromBool(true)},
		{Key: FromString("n"), Val: FromInt(3)},
		{Key: FromString("f"), Val: FromFloat(2.5)},
		{Key: FromString("none"), Val: Null()},
		{Key: FromString("xs"), Val: FromSlice([]*Node{FromInt(1), FromString("two")})},
	})
	d, err := ToJSON(node)
	if err != nil {
		t.Fatal(err)
	}
	back, err := FromJSON(d)
	if err != nil {
		t.Fatal(err)
	}
	if !Equal(node, back) {
		t.Fatalf("round trip mismatch:\n%s", string(d))
	}
	// parent links are rebuilt on unmarshal
	if back.Values[5].Parent != back {
		t.Errorf("value parent not restored")
	}
	if back.Values[5].Values[0].Parent != back.Values[5] {
		t.Errorf("nested parent not restored")
	}
}

func TestIRJSONRejectsBadTrees(t *testing.T) {
	for _, tc := range []struct {
		name string
		in   string
	}{
		{"mismatched-fields", `{"type":"Object","fields":[{"type":"String","string":"a"}]}`},
		{"non-string-field", `{"type":"Object","fields":[{"type":"Null"}],"values":[{"type":"Null"}]}`},
		{"empty-number", `{"type":"Number"}`},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := FromJSON([]byte(tc.in)); err == nil {
				t.Errorf("FromJSON(%s): expected error", tc.in)
			}
		})
	}
}
