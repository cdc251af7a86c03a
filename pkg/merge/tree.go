// File: pkg/merge/tree.go
package merge

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// writeTreeBlock renders the pruned directory structure as a fenced text
// block at the top of the document. The same ignore filters drive the tree
// and the traversal, so a pruned directory appears in neither.
func (r *run) writeTreeBlock() {
	fmt.Fprintf(r.out, "```text\n%s/\n", filepath.Base(mustAbs(r.cfg.StartDir)))
	r.writeTreeLevel(r.cfg.StartDir, "  ")
	fmt.Fprint(r.out, "```\n\n")
}

// writeTreeLevel writes one directory level with the given indent and
// recurses into surviving subdirectories.
func (r *run) writeTreeLevel(dir, indent string) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		r.logger.Warn("Cannot read directory for tree", zap.String("dir", dir), zap.Error(err))
		return
	}

	var dirs, files []string
	for _, entry := range entries {
		if entry.IsDir() {
			dirs = append(dirs, entry.Name())
		} else {
			files = append(files, entry.Name())
		}
	}

	dirs = FilterIgnoredDirs(dirs, r.ignoreDirs)
	files = FilterIgnoredFiles(files, r.ignoreFiles)

	for _, name := range files {
		if name == r.outName {
			continue
		}
		fmt.Fprintf(r.out, "%s%s\n", indent, name)
	}

	for _, name := range dirs {
		fmt.Fprintf(r.out, "%s%s/\n", indent, name)
		r.writeTreeLevel(filepath.Join(dir, name), indent+"  ")
	}
}

// mustAbs resolves a path to absolute, falling back to the input on error.
func mustAbs(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}
