// Package ir provides the intermediate representation (IR) shared by all
// format codecs.
//
// # Overview
//
// Every document, whatever format it was parsed from, is represented as a
// tree of ir.Node values. Parsers build a Node tree and serializers
// consume one; no codec depends on another codec, only on this package.
//
// # Node Structure
//
// A Node is a recursive tagged union. The Type field says which of the
// other fields carry the value:
//
//   - NullType: no value fields
//   - BoolType: Bool
//   - NumberType: exactly one of Int64 or Float64
//   - StringType: String
//   - ArrayType: Values, in order
//   - ObjectType: Fields[i] is the key node for Values[i]
//
// Objects preserve insertion order: Fields and Values are parallel slices
// and serializers emit keys in that order. Keys are unique within an
// object; Set replaces in place so a repeated key keeps its first
// position with its last value.
//
// # Reserved Keys
//
// The XML codec stores element attributes under AttrKey and mixed text
// content under TextKey. These are ordinary object entries as far as
// this package is concerned.
//
// # Creating Nodes
//
//	node := ir.FromString("hello")
//	num := ir.FromInt(42)
//	obj := ir.FromKeyVals([]ir.KeyVal{
//	    {Key: ir.FromString("key"), Val: ir.FromString("value")},
//	})
//	arr := ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromInt(2)})
//
// # Thread Safety
//
// Node trees are not thread-safe. Each conversion builds and discards its
// own tree, so concurrent conversions need no coordination.
package ir
