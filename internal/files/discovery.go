package files

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"smmerge/internal/dataprocessing"
)

// FileInfo represents information about a discovered source file
type FileInfo struct {
	Path    string
	Name    string
	Size    int64
	ModTime time.Time
}

// Discovery provides source file discovery operations
type Discovery struct {
	basePath string
}

// NewDiscovery creates a new file discovery instance
func NewDiscovery(basePath string) *Discovery {
	return &Discovery{basePath: basePath}
}

// outputPrefixes mark files produced by earlier runs; they are never
// re-ingested as sources.
var outputPrefixes = []string{"merged_", "compared_"}

// FindSourceFiles finds the .xlsx and .csv exports in a directory, skipping
// previous run outputs. Domestic files order before overseas ones and names
// sort within each group, which fixes the row order the aggregator sees.
func (d *Discovery) FindSourceFiles(dir string) ([]FileInfo, error) {
	fullPath := dir
	if !filepath.IsAbs(dir) {
		fullPath = filepath.Join(d.basePath, dir)
	}

	entries, err := os.ReadDir(fullPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", fullPath, err)
	}

	var files []FileInfo
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		lower := strings.ToLower(name)
		if !strings.HasSuffix(lower, ".xlsx") && !strings.HasSuffix(lower, ".csv") {
			continue
		}
		if hasOutputPrefix(name) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		files = append(files, FileInfo{
			Path:    filepath.Join(fullPath, name),
			Name:    name,
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}

	sort.SliceStable(files, func(i, j int) bool {
		oi := dataprocessing.IsOverseasFile(files[i].Name)
		oj := dataprocessing.IsOverseasFile(files[j].Name)
		if oi != oj {
			return !oi
		}
		return files[i].Name < files[j].Name
	})
	return files, nil
}

// MoveToProcessed relocates a successfully ingested source file out of the
// input directory so reruns do not double-count it.
func (d *Discovery) MoveToProcessed(path, processedDir string) error {
	if err := os.MkdirAll(processedDir, 0755); err != nil {
		return fmt.Errorf("failed to create processed directory: %w", err)
	}
	dst := filepath.Join(processedDir, filepath.Base(path))
	if err := os.Rename(path, dst); err != nil {
		return fmt.Errorf("failed to move %s: %w", path, err)
	}
	return nil
}

func hasOutputPrefix(name string) bool {
	for _, p := range outputPrefixes {
		if strings.HasPrefix(name, p) {
			return true
		}
	}
	return false
}
