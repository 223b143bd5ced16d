package render

import (
	"os"
	"path/filepath"

	"kcisum/internal/domain"
)

// writeFileAtomic replaces path with data through a temporary file in the same
// directory, so readers see either the old report or the new one.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return domain.NewOutputError("create output dir", err)
	}

	file, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return domain.NewOutputError("create temporary file", err)
	}
	tmpPath := file.Name()

	_, writeErr := file.Write(data)
	syncErr := file.Sync()
	closeErr := file.Close()
	for _, err := range []error{writeErr, syncErr, closeErr} {
		if err != nil {
			_ = os.Remove(tmpPath)
			return domain.NewOutputError("write "+filepath.Base(path), err)
		}
	}

	if err := os.Chmod(tmpPath, 0644); err != nil {
		_ = os.Remove(tmpPath)
		return domain.NewOutputError("set permissions", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return domain.NewOutputError("replace "+filepath.Base(path), err)
	}
	return nil
}
