// File: pkg/merge/filetype.go
package merge

import (
	"path/filepath"
	"strings"
)

// FileType is the logical category of a file, derived purely from its
// extension. It selects a minifier; the fence language hint is looked up
// separately so that types without a minifier still get a useful hint.
type FileType int

const (
	TypeUnknown  FileType = iota
	TypeMarkup            // .html
	TypeStyle             // .css
	TypeScript            // .js
	TypeTemplate          // .ejs
	TypePython            // .py
)

var typeByExt = map[string]FileType{
	".html": TypeMarkup,
	".css":  TypeStyle,
	".js":   TypeScript,
	".ejs":  TypeTemplate,
	".py":   TypePython,
}

// langByExt maps extensions to markdown code-fence language hints.
var langByExt = map[string]string{
	".html":   "html",
	".css":    "css",
	".js":     "jsx",
	".jsx":    "jsx",
	".ts":     "typescript",
	".tsx":    "tsx",
	".ejs":    "ejs",
	".py":     "python",
	".md":     "markdown",
	".txt":    "text",
	".csv":    "csv",
	".php":    "php",
	".cpp":    "cpp",
	".hpp":    "cpp",
	".c":      "c",
	".h":      "c",
	".java":   "java",
	".cs":     "csharp",
	".vb":     "vb",
	".vbhtml": "vbhtml",
	".ui":     "xml",
	".xml":    "xml",
	".json":   "json",
	".yml":    "yaml",
	".yaml":   "yaml",
}

// Classify maps a file path to its FileType by lower-casing the final
// extension. Unmatched extensions yield TypeUnknown, never an error.
func Classify(path string) FileType {
	ext := strings.ToLower(filepath.Ext(path))
	return typeByExt[ext]
}

// LangHint returns the code-fence language hint for a file path. Extensions
// outside the table fall back to the bare extension, and extensionless
// files to "text".
func LangHint(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if lang, ok := langByExt[ext]; ok {
		return lang
	}
	if ext == "" {
		return "text"
	}
	return strings.TrimPrefix(ext, ".")
}
