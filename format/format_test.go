package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	for _, tc := range []struct {
		in string
		f  Format
		e  error
	}{
		{in: "json", f: JSONFormat},
		{in: "j", f: JSONFormat},
		{in: "csv", f: CSVFormat},
		{in: "c", f: CSVFormat},
		{in: "xml", f: XMLFormat},
		{in: "x", f: XMLFormat},
		{in: "yaml", f: YAMLFormat},
		{in: "yml", f: YAMLFormat},
		{in: "y", f: YAMLFormat},
		{in: "toml", e: ErrBadFormat},
		{in: "", e: ErrBadFormat},
		{in: "JSON", e: ErrBadFormat},
	} {
		f, err := ParseFormat(tc.in)
		if tc.e != nil {
			if !errors.Is(err, tc.e) {
				t.Errorf("ParseFormat(%q): got %v, want %v", tc.in, err, tc.e)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseFormat(%q): %v", tc.in, err)
			continue
		}
		if f != tc.f {
			t.Errorf("ParseFormat(%q): got %v, want %v", tc.in, f, tc.f)
		}
	}
}

func TestFromPath(t *testing.T) {
	for _, tc := range []struct {
		in string
		f  Format
		e  error
	}{
		{in: "data.json", f: JSONFormat},
		{in: "/tmp/data.CSV", f: CSVFormat},
		{in: "doc.Xml", f: XMLFormat},
		{in: "cfg.yml", f: YAMLFormat},
		{in: "cfg.yaml", f: YAMLFormat},
		{in: "a.b.json", f: JSONFormat},
		{in: "noext", e: ErrBadFormat},
		{in: "archive.tar.gz", e: ErrBadFormat},
	} {
		f, err := FromPath(tc.in)
		if tc.e != nil {
			if !errors.Is(err, tc.e) {
				t.Errorf("FromPath(%q): got %v, want %v", tc.in, err, tc.e)
			}
			continue
		}
		if err != nil {
			t.Errorf("FromPath(%q): %v", tc.in, err)
			continue
		}
		if f != tc.f {
			t.Errorf("FromPath(%q): got %v, want %v", tc.in, f, tc.f)
		}
	}
}

func TestTextRoundTrip(t *testing.T) {
	for _, f := range AllFormats() {
		d, err := f.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%d): %v", f, err)
		}
		var g Format
		if err := g.UnmarshalText(d); err != nil {
			t.Fatalf("UnmarshalText(%q): %v", d, err)
		}
		if g != f {
			t.Errorf("round trip %s: got %s", f, g)
		}
	}
	var bad Format = 17
	if _, err := bad.MarshalText(); err == nil {
		t.Errorf("MarshalText(17): expected error")
	}
}

func TestSuffix(t *testing.T) {
	for _, f := range AllFormats() {
		suf := f.Suffix()
		g, err := FromPath("file" + suf)
		if err != nil {
			t.Fatalf("FromPath(file%s): %v", suf, err)
		}
		if g != f {
			t.Errorf("suffix %s maps to %s, want %s", suf, g, f)
		}
	}
}
