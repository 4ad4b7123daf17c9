// Package discovery finds graph files to render.
package discovery

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	ferrors "github.com/five82/ffgraph/internal/errors"
	"github.com/five82/ffgraph/internal/logging"
	"github.com/five82/ffgraph/internal/util"
)

// Result contains the results of graph file discovery.
type Result struct {
	Files        []string
	SkippedCount int
}

// FindGraphFiles returns path itself if it is a file, or the graph files
// directly inside it if it is a directory, sorted by filename. Hidden files
// are skipped.
func FindGraphFiles(path string) (*Result, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, ferrors.NewPathError(fmt.Sprintf("path does not exist: %s", path))
	}
	if !info.IsDir() {
		return &Result{Files: []string{path}}, nil
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, ferrors.NewIOError(fmt.Sprintf("cannot read directory %s", path), err)
	}

	result := &Result{}
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}

		fullPath := filepath.Join(path, entry.Name())
		if util.IsGraphFile(fullPath) {
			result.Files = append(result.Files, fullPath)
		} else {
			result.SkippedCount++
		}
	}

	if len(result.Files) == 0 {
		return nil, ferrors.NewPathError(fmt.Sprintf("no graph files found in %s", path))
	}

	sort.Slice(result.Files, func(i, j int) bool {
		return strings.ToLower(filepath.Base(result.Files[i])) < strings.ToLower(filepath.Base(result.Files[j]))
	})

	logDiscoveredFiles(path, result)
	return result, nil
}

// logDiscoveredFiles logs the first 5 discovered files plus a count.
func logDiscoveredFiles(dir string, result *Result) {
	logging.Info("found graph files", "dir", dir, "count", len(result.Files), "skipped", result.SkippedCount)

	for _, f := range result.Files[:min(5, len(result.Files))] {
		logging.Debug("graph file", "name", filepath.Base(f))
	}
	if len(result.Files) > 5 {
		logging.Debug("more graph files", "count", len(result.Files)-5)
	}
}
