package config

import (
	"os"
	"path/filepath"
)

// FindEnvFile resolves filename (".env" when empty) to an existing file.
// Absolute paths must exist as given; relative ones are looked up in the
// working directory and then in each parent up to the filesystem root.
func FindEnvFile(filename string) (string, error) {
	if filename == "" {
		filename = ".env"
	}
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err != nil {
			return "", err
		}
		return filename, nil
	}
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		path := filepath.Join(dir, filename)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", os.ErrNotExist
		}
		dir = parent
	}
}
