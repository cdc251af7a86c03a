package merge

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinifyStylesheetRemovesCommentsKeepsDeclarations(t *testing.T) {
	mi := NewMinifier()
	input := "/* layout note */\nbody {\n  color: #222222;\n  margin: 0 ;\n}\n"

	got, err := mi.Minify(input, TypeStyle)

	require.NoError(t, err)
	assert.NotContains(t, got, "layout note")
	assert.Contains(t, got, "color:")
	assert.Contains(t, got, "margin:")
	assert.Less(t, len(got), len(input))
}

func TestMinifyScriptKeepsStringLiterals(t *testing.T) {
	mi := NewMinifier()
	input := "// strip me\nvar s = \"a // not a comment\";\n"

	got, err := mi.Minify(input, TypeScript)

	require.NoError(t, err)
	assert.NotContains(t, got, "strip me")
	assert.Contains(t, got, "a // not a comment")
}

func TestMinifyMarkupRemovesCommentsAndWhitespace(t *testing.T) {
	mi := NewMinifier()
	input := "<!-- gone -->\n<p>\n  hello   world\n</p>\n"

	got, err := mi.Minify(input, TypeMarkup)

	require.NoError(t, err)
	assert.NotContains(t, got, "gone")
	assert.Contains(t, got, "hello world")
}

func TestMinifyTemplatePreservesDirectiveDelimiters(t *testing.T) {
	mi := NewMinifier()
	input := "<% if (user) { %>\r\n\r\n  <p>Hi</p>  \n<% } %>\n"

	got, err := mi.Minify(input, TypeTemplate)

	require.NoError(t, err)
	assert.Contains(t, got, "<% if (user) { %>")
	assert.Contains(t, got, "<% } %>")
	assert.NotContains(t, got, "\n\n")
	assert.False(t, strings.HasSuffix(got, "\n"))
}

func TestMinifyUnknownAndPythonPassThrough(t *testing.T) {
	mi := NewMinifier()
	input := "def f():\n    # indentation matters\n    return 1\n"

	got, err := mi.Minify(input, TypePython)
	require.NoError(t, err)
	assert.Equal(t, input, got)

	got, err = mi.Minify(input, TypeUnknown)
	require.NoError(t, err)
	assert.Equal(t, input, got)
}

func TestMinifierSupports(t *testing.T) {
	mi := NewMinifier()

	assert.True(t, mi.Supports(TypeMarkup))
	assert.True(t, mi.Supports(TypeStyle))
	assert.True(t, mi.Supports(TypeScript))
	assert.True(t, mi.Supports(TypeTemplate))
	assert.False(t, mi.Supports(TypePython))
	assert.False(t, mi.Supports(TypeUnknown))
}
