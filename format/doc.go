// Package format enumerates the serialization formats the converter
// understands.
//
// # Usage
//
//	f, err := format.ParseFormat("yaml")
//	f, err := format.FromPath("data.yml")
//
// # Related Packages
//
//   - github.com/dataconvert/go-dataconvert/parse - Parse text to IR
//   - github.com/dataconvert/go-dataconvert/encode - Encode IR to text
package format
