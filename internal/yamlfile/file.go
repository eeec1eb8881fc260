// Package yamlfile reads and writes single YAML documents on disk.
package yamlfile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Read decodes the file at path. An empty file decodes to the zero value.
func Read[T any](path string) (T, error) {
	var result T

	file, err := os.Open(path)
	if err != nil {
		return result, fmt.Errorf("os.Open(%s)> %w", path, err)
	}
	defer func() {
		_ = file.Close()
	}()

	if err := yaml.NewDecoder(file).Decode(&result); err != nil {
		if errors.Is(err, io.EOF) {
			return result, nil
		}
		return result, fmt.Errorf("yaml.NewDecoder().Decode(%s)> %w", path, err)
	}
	return result, nil
}

// ReadOptional is Read, but a missing file decodes to the zero value.
func ReadOptional[T any](path string) (T, error) {
	result, err := Read[T](path)
	if errors.Is(err, os.ErrNotExist) {
		var zero T
		return zero, nil
	}
	return result, err
}

// Write encodes data to path, creating parent directories as needed.
func Write[T any](path string, data T) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("os.MkdirAll(%s)> %w", filepath.Dir(path), err)
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("os.Create(%s)> %w", path, err)
	}
	defer func() {
		_ = file.Close()
	}()

	encoder := yaml.NewEncoder(file)
	encoder.SetIndent(2)
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("yaml.Encoder.Encode(%s)> %w", path, err)
	}
	return encoder.Close()
}
