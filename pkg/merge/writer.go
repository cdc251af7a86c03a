// File: pkg/merge/writer.go
package merge

import (
	"fmt"
	"os"

	"go.uber.org/zap"
)

// writeFileRecord reads one file and appends its record to the output
// document: a path header followed by a fenced code block with a language
// hint. Unreadable and binary files are skipped with a warning; a failed
// minification falls back to the raw contents. Per-file problems never
// abort the run.
func (r *run) writeFileRecord(path, relPath string) {
	data, err := os.ReadFile(path)
	if err != nil {
		r.logger.Warn("Skipping unreadable file",
			zap.String("file", path),
			zap.Error(err))
		return
	}

	if isBinaryContent(data) {
		r.logger.Warn("Skipping binary file", zap.String("file", path))
		return
	}

	contents := string(data)
	ft := Classify(path)

	if r.cfg.Minify && r.minifier.Supports(ft) {
		minified, err := r.minifier.Minify(contents, ft)
		if err != nil {
			r.logger.Warn("Minification failed, writing raw contents",
				zap.String("file", path),
				zap.Error(err))
		} else {
			contents = minified
		}
	}

	fmt.Fprintf(r.out, "## %s\n\n```%s\n%s\n```\n\n", relPath, LangHint(path), contents)
	r.written++

	r.logger.Debug("Wrote file record",
		zap.String("file", relPath),
		zap.Int("contentSizeBytes", len(contents)))
}
