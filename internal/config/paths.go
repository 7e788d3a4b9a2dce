package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths holds the resolved output locations for a run. It is the single
// source of truth for where reports and logs land.
type Paths struct {
	DataDir    string
	ReportsDir string
	LogsDir    string
}

// ResolvePaths turns the configured directories into absolute paths
// relative to the working directory.
func (c *Config) ResolvePaths() (*Paths, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("get working directory: %w", err)
	}

	resolve := func(dir string) string {
		if filepath.IsAbs(dir) {
			return dir
		}
		return filepath.Join(wd, dir)
	}

	return &Paths{
		DataDir:    resolve(c.Paths.DataDir),
		ReportsDir: resolve(c.Paths.ReportsDir),
		LogsDir:    resolve(c.Paths.LogsDir),
	}, nil
}

// EnsureDirectories creates the output directories if missing
func (p *Paths) EnsureDirectories() error {
	for _, dir := range []string{p.ReportsDir, p.LogsDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}
	return nil
}

// DataPath returns the full path for an input file in the data directory
func (p *Paths) DataPath(filename string) string {
	return filepath.Join(p.DataDir, filename)
}

// ReportPath returns the full path for a report file
func (p *Paths) ReportPath(filename string) string {
	return filepath.Join(p.ReportsDir, filename)
}

// LogPath returns the full path for a log file
func (p *Paths) LogPath(filename string) string {
	return filepath.Join(p.LogsDir, filename)
}
