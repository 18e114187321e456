package report

import (
	"fmt"
	"os"
	"path/filepath"
)

// WriteFile writes content to path through a temp file in the same directory
// that is renamed into place once fully written. On any failure the temp file
// is removed and path is left untouched.
func WriteFile(path, content string) (err error) {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.WriteString(content); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("sync %s: %w", path, err)
	}

	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}

	if err = os.Chmod(tmp.Name(), 0644); err != nil {
		return fmt.Errorf("chmod %s: %w", path, err)
	}

	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("rename into %s: %w", path, err)
	}

	return nil
}
