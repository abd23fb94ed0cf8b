package safeio

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ReadFile reads the exact targetPath by opening its parent directory as a root.
func ReadFile(targetPath string) ([]byte, error) {
	targetAbs, err := filepath.Abs(targetPath)
	if err != nil {
		return nil, fmt.Errorf("resolve target path: %w", err)
	}
	parentDir := filepath.Dir(targetAbs)
	fileName := filepath.Base(targetAbs)

	root, err := os.OpenRoot(parentDir)
	if err != nil {
		return nil, fmt.Errorf("open parent root: %w", err)
	}
	defer root.Close()

	file, err := root.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return io.ReadAll(file)
}

// WriteFile writes data to targetPath, creating or truncating it, by opening
// the parent directory as a root.
func WriteFile(targetPath string, data []byte) error {
	targetAbs, err := filepath.Abs(targetPath)
	if err != nil {
		return fmt.Errorf("resolve target path: %w", err)
	}
	parentDir := filepath.Dir(targetAbs)
	fileName := filepath.Base(targetAbs)

	root, err := os.OpenRoot(parentDir)
	if err != nil {
		return fmt.Errorf("open parent root: %w", err)
	}
	defer root.Close()

	file, err := root.OpenFile(fileName, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}

	if _, err := file.Write(data); err != nil {
		_ = file.Close()
		return fmt.Errorf("write %s: %w", targetPath, err)
	}
	return file.Close()
}

// CopyFile copies srcPath to dstPath verbatim, overwriting any existing file.
func CopyFile(srcPath, dstPath string) error {
	data, err := ReadFile(srcPath)
	if err != nil {
		return err
	}
	return WriteFile(dstPath, data)
}
