package config

import (
	"errors"
	"fmt"
	"os"
)

// DataDirs returns the expected data directories below the raw path.
func (c *Config) DataDirs() []string {
	return []string{
		c.SubjectsDir(),
		c.EEGPath(),
		c.EyeTrackingPath(),
		c.GroupDir(),
	}
}

// CheckLayout verifies every directory from DataDirs exists. All missing
// directories are reported together as MissingDirError values; other stat
// failures are returned wrapped with the directory.
func (c *Config) CheckLayout() error {
	var errs []error
	for _, dir := range c.DataDirs() {
		info, err := c.fs.Stat(dir)
		switch {
		case err == nil && info.IsDir():
		case err == nil:
			errs = append(errs, fmt.Errorf("%w: not a directory", &MissingDirError{Path: dir}))
		case errors.Is(err, os.ErrNotExist):
			errs = append(errs, &MissingDirError{Path: dir})
		default:
			errs = append(errs, fmt.Errorf("stat %s: %w", dir, err))
		}
	}
	return errors.Join(errs...)
}
