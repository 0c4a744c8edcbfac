package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// executableDir returns the directory containing the running binary. All
// default paths resolve against it, never against the working directory.
func executableDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to get executable path: %w", err)
	}
	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		return "", fmt.Errorf("failed to resolve executable symlinks: %w", err)
	}
	return filepath.Dir(exe), nil
}

// resolvePaths turns the configured relative directories into absolute ones
// under BaseDir.
func (c *Config) resolvePaths() {
	resolve := func(p string) string {
		if p == "" || filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(c.Paths.BaseDir, p)
	}
	c.Paths.InputDir = resolve(c.Paths.InputDir)
	c.Paths.ProcessedDir = resolve(c.Paths.ProcessedDir)
	c.Paths.OutputDir = resolve(c.Paths.OutputDir)
	c.Paths.LogsDir = resolve(c.Paths.LogsDir)
	c.Logging.FilePath = resolve(c.Logging.FilePath)
}

// EnsureDirectories creates the configured directories if missing.
func (c *Config) EnsureDirectories() error {
	for _, dir := range []string{c.Paths.InputDir, c.Paths.ProcessedDir, c.Paths.OutputDir, c.Paths.LogsDir} {
		if dir == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

// MergedOutputPath returns the output file path for a merge run.
func (c *Config) MergedOutputPath(timestamp, ext string) string {
	return filepath.Join(c.Paths.OutputDir, fmt.Sprintf("merged_data_%s.%s", timestamp, ext))
}

// ComparisonOutputPath returns the output file path for a comparison run.
func (c *Config) ComparisonOutputPath(timestamp string) string {
	return filepath.Join(c.Paths.OutputDir, fmt.Sprintf("compared_data_%s.xlsx", timestamp))
}
