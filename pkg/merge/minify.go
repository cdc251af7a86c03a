// File: pkg/merge/minify.go
package merge

import (
	"regexp"
	"strings"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/css"
	"github.com/tdewolff/minify/v2/html"
	"github.com/tdewolff/minify/v2/js"
)

// MinifyFunc compacts textual contents. A returned error means the contents
// could not be processed; callers fall back to the raw contents.
type MinifyFunc func(contents string) (string, error)

// Minifier dispatches minification by FileType through a strategy table.
// File types without an entry pass through unchanged.
type Minifier struct {
	funcs map[FileType]MinifyFunc
}

var scriptMediaType = regexp.MustCompile("^(application|text)/(x-)?(java|ecma)script$")

// NewMinifier builds the default strategy table: markup, stylesheet, and
// script contents go through the tdewolff minifiers (embedded style and
// script blocks inside markup are delegated to the registered css/js
// minifiers), templates are blank-line-collapsed only, and everything else
// is left untouched.
func NewMinifier() *Minifier {
	m := minify.New()
	m.AddFunc("text/html", html.Minify)
	m.AddFunc("text/css", css.Minify)
	m.AddFuncRegexp(scriptMediaType, js.Minify)

	return &Minifier{
		funcs: map[FileType]MinifyFunc{
			TypeMarkup: func(contents string) (string, error) {
				return m.String("text/html", contents)
			},
			TypeStyle: func(contents string) (string, error) {
				return m.String("text/css", contents)
			},
			TypeScript: func(contents string) (string, error) {
				return m.String("application/javascript", contents)
			},
			TypeTemplate: func(contents string) (string, error) {
				return collapseBlankLines(contents), nil
			},
		},
	}
}

// Minify compacts contents according to the file type. Types without a
// registered minifier are returned unchanged.
func (mi *Minifier) Minify(contents string, ft FileType) (string, error) {
	fn, ok := mi.funcs[ft]
	if !ok {
		return contents, nil
	}
	return fn(contents)
}

// Supports reports whether a minifier is registered for the file type.
func (mi *Minifier) Supports(ft FileType) bool {
	_, ok := mi.funcs[ft]
	return ok
}

// collapseBlankLines drops empty lines and trailing whitespace without
// parsing the content. Template directives are never touched, so delimiters
// like <% %> survive byte-for-byte.
func collapseBlankLines(contents string) string {
	lines := strings.Split(contents, "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimRight(line, " \t\r")
		if line == "" {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}
