package utils

import (
	"fmt"
	"os"
)

// InDir runs fn with the process working directory switched to dir and
// always restores the previous working directory afterwards, even when fn
// fails or panics. The working directory is process-wide, so callers must
// not use InDir from concurrent goroutines.
func InDir(logger *Logger, dir string, fn func() error) (err error) {
	prev, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("indir: getwd: %w", err)
	}

	logger.Info("[indir] Loading data from %s", dir)
	if err := os.Chdir(dir); err != nil {
		return fmt.Errorf("indir: chdir %q: %w", dir, err)
	}

	defer func() {
		if cerr := os.Chdir(prev); cerr != nil && err == nil {
			err = fmt.Errorf("indir: restore %q: %w", prev, cerr)
		}
		logger.Info("[indir] Data loaded, back in %s", prev)
	}()

	return fn()
}
