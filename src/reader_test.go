package mim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadBasicList(t *testing.T) {
	doc := Read(`(a b c)`)
	require.Equal(t, KindList, doc.Kind)
	require.Len(t, doc.List, 1)

	form := doc.List[0]
	assert.Equal(t, KindList, form.Kind)
	require.Len(t, form.List, 3)
	assert.Equal(t, "a", form.List[0].Symbol)
	assert.Equal(t, "b", form.List[1].Symbol)
	assert.Equal(t, "c", form.List[2].Symbol)
}

func TestReadStringEscapes(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{"newline", `"a\nb"`, "a\nb"},
		{"tab", `"a\tb"`, "a\tb"},
		{"line continuation elided", "\"a\\\nb\"", "ab"},
		{"hex x", `"\x41"`, "A"},
		{"hex with trailing space consumed", `"\x41 B"`, "AB"},
		{"passthrough escape", `"a\qb"`, "aqb"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			doc := Read(tc.src)
			require.Len(t, doc.List, 1)
			assert.Equal(t, KindString, doc.List[0].Kind)
			assert.Equal(t, tc.want, doc.List[0].Str)
		})
	}
}

func TestReadIntegers(t *testing.T) {
	cases := []struct {
		src  string
		want int64
	}{
		{"42", 42},
		{"-42", -42},
		{"0x2A", 42},
		{"#x2A", 42},
		{"?A", 65},
		{`?\n`, 10},
		{"0", 0},
	}
	for _, tc := range cases {
		doc := Read(tc.src)
		require.Len(t, doc.List, 1, "input %q", tc.src)
		require.Equal(t, KindInt, doc.List[0].Kind, "input %q", tc.src)
		assert.Equal(t, tc.want, doc.List[0].Int, "input %q", tc.src)
	}
}

func TestReadSymbolStopsAtDelimiters(t *testing.T) {
	doc := Read(`(foo-bar)`)
	require.Len(t, doc.List, 1)
	require.Len(t, doc.List[0].List, 1)
	assert.Equal(t, "foo-bar", doc.List[0].List[0].Symbol)
}

func TestReadComments(t *testing.T) {
	doc := Read("; comment\n(a) ; trailing comment\n(b)")
	require.Len(t, doc.List, 2)
	assert.Equal(t, "a", doc.List[0].List[0].Symbol)
	assert.Equal(t, "b", doc.List[1].List[0].Symbol)
}

func TestReadToleratesUnterminatedString(t *testing.T) {
	doc := Read(`"abc`)
	require.Len(t, doc.List, 1)
	assert.Equal(t, "abc", doc.List[0].Str)
}

func TestReadToleratesStrayCloseParen(t *testing.T) {
	doc := Read(`(a) ) (b)`)
	require.Len(t, doc.List, 2)
	assert.Equal(t, "a", doc.List[0].List[0].Symbol)
	assert.Equal(t, "b", doc.List[1].List[0].Symbol)
}

func TestRoundTrip(t *testing.T) {
	src := `(map m ("a" "A") ("ab" (insert "AB")))`
	doc := Read(src)
	reparsed := Read(doc.String())
	assert.Equal(t, doc, reparsed)
}
