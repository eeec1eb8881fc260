package content

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"

	"gopkg.in/yaml.v3"
)

func readYamlFile[T any](fsys fs.FS, name string) (T, error) {
	var result T

	file, err := fsys.Open(name)
	if err != nil {
		return result, fmt.Errorf("fsys.Open(%s)> %w", name, err)
	}
	defer func() {
		_ = file.Close()
	}()

	if err := yaml.NewDecoder(file).Decode(&result); err != nil {
		if err == io.EOF {
			return result, nil
		}
		return result, fmt.Errorf("yaml.NewDecoder().Decode(%s)> %w", name, err)
	}
	return result, nil
}

// readOptionalYamlFile returns the zero value when the file does not exist.
func readOptionalYamlFile[T any](fsys fs.FS, name string) (T, error) {
	if _, err := fs.Stat(fsys, name); err != nil {
		var zero T
		if errors.Is(err, fs.ErrNotExist) {
			return zero, nil
		}
		return zero, fmt.Errorf("fs.Stat(%s) > %w", name, err)
	}
	return readYamlFile[T](fsys, name)
}

// loadYamlFiles decodes every .yml file directly under dir, ordered by file name.
func loadYamlFiles[T any](fsys fs.FS, dir string) ([]T, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("fs.ReadDir(%s) > %w", dir, err)
	}

	var results []T
	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".yml" {
			continue
		}
		contents, err := readYamlFile[T](fsys, path.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("readYamlFile(%s) > %w", entry.Name(), err)
		}
		results = append(results, contents)
	}
	return results, nil
}
