// Package encode serializes IR nodes to JSON, CSV, XML, or YAML text.
//
// # Usage
//
//	node := ir.FromKeyVals([]ir.KeyVal{
//	    {Key: ir.FromString("name"), Val: ir.FromString("alice")},
//	    {Key: ir.FromString("age"), Val: ir.FromInt(30)},
//	})
//	err := encode.Encode(node, w, encode.EncodeFormat(format.JSONFormat))
//
//	// Pretty output
//	err := encode.Encode(node, w,
//	    encode.EncodeFormat(format.XMLFormat),
//	    encode.EncodePretty(true),
//	    encode.EncodeRoot("config"))
//
// Object keys are emitted in insertion order, so output is deterministic
// for a given tree.
//
// # Related Packages
//
//   - github.com/dataconvert/go-dataconvert/ir - IR representation
//   - github.com/dataconvert/go-dataconvert/parse - Parse text to IR
package encode
