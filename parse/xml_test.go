package parse

import (
	"errors"
	"strings"
	"testing"
)

func TestParseXML(t *testing.T) {
	for _, tc := range []struct {
		name string
		in   string
		want string
	}{
		{
			name: "empty-element",
			in:   `<a></a>`,
			want: `{"a":null}`,
		},
		{
			name: "self-closing",
			in:   `<a/>`,
			want: `{"a":null}`,
		},
		{
			name: "text-collapses",
			in:   `<a>hi</a>`,
			want: `{"a":"hi"}`,
		},
		{
			name: "children",
			in:   `<r><a>1</a><b>2</b></r>`,
			want: `{"r":{"a":"1","b":"2"}}`,
		},
		{
			name: "attributes",
			in:   `<u id="7">Al</u>`,
			want: `{"u":{"@attributes":{"id":"7"},"#text":"Al"}}`,
		},
		{
			name: "attrs-and-children",
			in:   `<r id="1"><a>x</a></r>`,
			want: `{"r":{"@attributes":{"id":"1"},"a":"x"}}`,
		},
		{
			name: "repeated-tags-promote",
			in:   `<r><x>1</x><y>m</y><x>2</x><x>3</x></r>`,
			want: `{"r":{"x":["1","2","3"],"y":"m"}}`,
		},
		{
			name: "whitespace-between-elements",
			in:   "<r>\n  <a>1</a>\n</r>",
			want: `{"r":{"a":"1"}}`,
		},
		{
			name: "escapes",
			in:   `<a>&lt;p&amp;q&gt;</a>`,
			want: `{"a":"<p&q>"}`,
		},
		{
			name: "prolog-and-comments",
			in:   `<?xml version="1.0"?><!-- c --><a>1</a>`,
			want: `{"a":"1"}`,
		},
		{
			name: "nested",
			in:   `<r><o><i>x</i></o></r>`,
			want: `{"r":{"o":{"i":"x"}}}`,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			node, err := Parse([]byte(tc.in), ParseXML())
			if err != nil {
				t.Fatal(err)
			}
			if got := jsonOut(t, node); got != tc.want {
				t.Errorf("got %s, want %s", got, tc.want)
			}
		})
	}
}

func TestParseXMLErrors(t *testing.T) {
	for _, tc := range []struct {
		name string
		in   string
		e    error
		sub  string
	}{
		{name: "empty", in: ``, e: ErrParse, sub: "no root element"},
		{name: "unbalanced", in: `<a><b></a>`, e: ErrParse, sub: "line"},
		{name: "unclosed", in: `<a>`, e: ErrParse},
		{name: "two-roots", in: `<a/><b/>`, e: ErrParse, sub: "multiple root"},
		{name: "text-outside-root", in: `<a/>junk`, e: ErrParse},
		{name: "namespaced-tag", in: `<ns:a xmlns:ns="u">1</ns:a>`, e: ErrUnsupported},
		{name: "namespaced-attr", in: `<a ns:k="v" xmlns:ns="u">1</a>`, e: ErrUnsupported},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.in), ParseXML())
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, tc.e) {
				t.Errorf("got %v, want %v", err, tc.e)
			}
			if tc.sub != "" && !strings.Contains(err.Error(), tc.sub) {
				t.Errorf("error %q lacks %q", err, tc.sub)
			}
		})
	}
}
