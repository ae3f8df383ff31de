package encode

import "github.com/dataconvert/go-dataconvert/format"

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

// FormatFromOpts extracts the format from encode options.
func FormatFromOpts(opts ...EncodeOption) format.Format {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return es.format
}

func EncodePretty(v bool) EncodeOption {
	return func(es *EncState) { es.pretty = v }
}

// EncodeRoot sets the XML root element name (default "root").
func EncodeRoot(name string) EncodeOption {
	return func(es *EncState) { es.root = name }
}

func EncodeIndent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}
