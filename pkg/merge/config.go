// File: pkg/merge/config.go
package merge

// Config holds the configuration for one merge run. It is constructed once
// from CLI input and treated as read-only for the remainder of execution.
type Config struct {
	StartDir    string   // Root directory of the traversal.
	IgnoreDirs  []string // Directory names to prune at any depth.
	IgnoreFiles []string // File names to skip at any depth.
	AllTypes    bool     // If true, the extension allow-list is not consulted.
	Extensions  []string // Extension allow-list, each entry starting with ".".
	Name        string   // Base name of the markdown file to write.
	Minify      bool     // If true, minify contents where a minifier exists.
	Tree        bool     // If true, prepend a directory tree block.
}

// DefaultConfig returns the default configuration: search the current
// directory for the classic web/python extension set and write project.md.
func DefaultConfig() Config {
	return Config{
		StartDir:   ".",
		Extensions: []string{".html", ".css", ".js", ".ejs", ".py"},
		Name:       "project",
	}
}

// OutputPath returns the path of the markdown document this run writes.
func (c Config) OutputPath() string {
	return c.Name + ".md"
}
