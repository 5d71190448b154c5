package gen

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteFile writes the generated file into dir and returns its path.
// The previous version is replaced atomically and a leftover unformatted
// sidecar from an earlier failed run is removed.
func WriteFile(file *GeneratedFile, dir string) (string, error) {
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	outputPath := filepath.Join(dir, file.Filename)

	tmp, err := os.CreateTemp(dir, "."+file.Filename+".*")
	if err != nil {
		return "", fmt.Errorf("creating temporary file: %w", err)
	}

	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(file.Content); err != nil {
		tmp.Close()
		return "", fmt.Errorf("writing file %s: %w", file.Filename, err)
	}

	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("writing file %s: %w", file.Filename, err)
	}

	if err := os.Chmod(tmp.Name(), filePerm); err != nil {
		return "", fmt.Errorf("writing file %s: %w", file.Filename, err)
	}

	if err := os.Rename(tmp.Name(), outputPath); err != nil {
		return "", fmt.Errorf("writing file %s: %w", file.Filename, err)
	}

	err = os.Remove(filepath.Join(dir, debugName(file.Filename)))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return outputPath, fmt.Errorf("removing stale sidecar: %w", err)
	}

	return outputPath, nil
}
