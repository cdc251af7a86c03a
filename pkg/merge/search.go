// File: pkg/merge/search.go
package merge

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
)

// run carries the state of a single merge: the resolved configuration, the
// open output document, and the normalized filter sets. It is owned by Run
// for the duration of one traversal and never shared.
type run struct {
	cfg         Config
	logger      *zap.Logger
	out         *bufio.Writer
	minifier    *Minifier
	ignoreDirs  NameSet
	ignoreFiles NameSet
	exts        NameSet // lower-cased extension allow-list
	outName     string  // basename of the output document, always skipped
	written     int
}

// Run performs one merge: it validates the start directory, opens the
// output document, walks the tree depth-first applying the ignore filters
// at every level, and writes a record for each accepted file.
func Run(cfg Config, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	startTime := time.Now()
	logger.Info("Starting merge", zap.String("startDir", cfg.StartDir))

	info, err := os.Stat(cfg.StartDir)
	if err != nil {
		return fmt.Errorf("invalid start directory %q: %w", cfg.StartDir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("start path %q is not a directory", cfg.StartDir)
	}

	outPath := cfg.OutputPath()
	outFile, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("failed to create output file %q: %w", outPath, err)
	}
	defer func() {
		if closeErr := outFile.Close(); closeErr != nil {
			logger.Error("Failed to close output file",
				zap.String("file", outPath),
				zap.Error(closeErr))
		}
	}()

	r := &run{
		cfg:         cfg,
		logger:      logger,
		out:         bufio.NewWriter(outFile),
		minifier:    NewMinifier(),
		ignoreDirs:  NewNameSet(cfg.IgnoreDirs...),
		ignoreFiles: NewNameSet(cfg.IgnoreFiles...),
		exts:        normalizeExtensions(cfg.Extensions),
		outName:     filepath.Base(outPath),
	}

	fmt.Fprintf(r.out, "# %s\n\n", filepath.Base(cfg.Name))

	if cfg.Tree {
		r.writeTreeBlock()
	}

	r.walk(cfg.StartDir)

	if err := r.out.Flush(); err != nil {
		return fmt.Errorf("failed to flush output file %q: %w", outPath, err)
	}

	logger.Info("Merge complete",
		zap.String("output", outPath),
		zap.Int("files", r.written),
		zap.Duration("elapsed", time.Since(startTime)))
	return nil
}

// walk descends into dir depth-first. Ignored directories are pruned before
// descending, so their subtrees are never opened; ignored files are dropped
// before the extension gate. Files of a directory are written before its
// subdirectories are visited.
func (r *run) walk(dir string) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		r.logger.Warn("Cannot read directory", zap.String("dir", dir), zap.Error(err))
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
			continue // never ingest the document being written
		}
		if !r.cfg.AllTypes && !r.matchesExtension(name) {
			continue
		}
		path := filepath.Join(dir, name)
		relPath, relErr := filepath.Rel(r.cfg.StartDir, path)
		if relErr != nil {
			relPath = path
		}
		r.writeFileRecord(path, filepath.ToSlash(relPath))
	}

	for _, name := range dirs {
		r.walk(filepath.Join(dir, name))
	}
}

// matchesExtension reports whether the file name's extension is in the
// allow-list. Matching is case-insensitive: c.PY matches ".py".
func (r *run) matchesExtension(name string) bool {
	return r.exts.Contains(strings.ToLower(filepath.Ext(name)))
}

// normalizeExtensions lower-cases the allow-list and ensures every entry
// carries its leading dot, so "py" and ".PY" both mean ".py".
func normalizeExtensions(extensions []string) NameSet {
	set := make(NameSet, len(extensions))
	for _, ext := range extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		set[ext] = struct{}{}
	}
	return set
}
