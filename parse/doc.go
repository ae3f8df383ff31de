// Package parse parses JSON, CSV, XML, and YAML text into IR nodes.
//
// # Usage
//
//	node, err := parse.Parse(data, parse.ParseJSON())
//	if err != nil {
//	    return err
//	}
//
//	// Or select the format dynamically
//	node, err := parse.Parse(data, parse.ParseFormat(f))
//
// Parsers fail fast: malformed input yields an error wrapping ErrParse
// and no partial node. Input that uses a format feature outside the
// supported subset (YAML anchors, XML namespaces, ...) yields an error
// wrapping ErrUnsupported.
//
// # Related Packages
//
//   - github.com/dataconvert/go-dataconvert/ir - IR representation
//   - github.com/dataconvert/go-dataconvert/encode - Encode IR to text
package parse
