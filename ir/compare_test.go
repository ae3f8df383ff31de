package ir

import "testing"

func TestCompare(t *testing.T) {
	for _, tc := range []struct {
		name string
		a, b *Node
		want int
	}{
		{"nulls", Null(), Null(), 0},
		{"null-bool", Null(), FromBool(false), -1},
		{"bools", FromBool(false), FromBool(true), -1},
		{"ints", FromInt(1), FromInt(2), -1},
		{"int-float", FromInt(2), FromFloat(2), -1},
		{"floats", FromFloat(2.5), FromFloat(1.5), 1},
		{"strings", FromString("a"), FromString("b"), -1},
		{"number-string", FromInt(9), FromString("1"), -1},
		{
			"arrays-prefix",
			FromSlice([]*Node{FromInt(1)}),
			FromSlice([]*Node{FromInt(1), FromInt(2)}),
			-1,
		},
		{
			"arrays-elem",
			FromSlice([]*Node{FromInt(2)}),
			FromSlice([]*Node{FromInt(1), FromInt(2)}),
			1,
		},
		{
			"objects-key",
			FromKeyVals([]KeyVal{{Key: FromString("a"), Val: FromInt(1)}}),
			FromKeyVals([]KeyVal{{Key: FromString("b"), Val: FromInt(1)}}),
			-1,
		},
		{
			"objects-val",
			FromKeyVals([]KeyVal{{Key: FromString("a"), Val: FromInt(1)}}),
			FromKeyVals([]KeyVal{{Key: FromString("a"), Val: FromInt(2)}}),
			-1,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if got := Compare(tc.a, tc.b); got != tc.want {
				t.Errorf("Compare: got %d, want %d", got, tc.want)
			}
			if got := Compare(tc.b, tc.a); got != -tc.want {
				t.Errorf("Compare reversed: got %d, want %d", got, -tc.want)
			}
		})
	}
}

func TestEqual(t *testing.T) {
	a := FromKeyVals([]KeyVal{
		{Key: FromString("x"), Val: FromSlice([]*Node{FromInt(1), FromString("s")})},
		{Key: FromString("y"), Val: Null()},
	})
	if !Equal(a, a.Clone()) {
		t.Errorf("node not Equal to its clone")
	}
	// insertion order is significant
	b := FromKeyVals([]KeyVal{
		{Key: FromString("y"), Val: Null()},
		{Key: FromString("x"), Val: FromSlice([]*Node{FromInt(1), FromString("s")})},
	})
	if Equal(a, b) {
		t.Errorf("objects with different key order compare Equal")
	}
}
