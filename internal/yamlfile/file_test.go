package yamlfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	Name  string   `yaml:"name"`
	Items []string `yaml:"items,omitempty"`
}

func TestWriteAndRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "record.yml")

	require.NoError(t, Write(path, record{Name: "first", Items: []string{"a", "b"}}))

	got, err := Read[record](path)
	require.NoError(t, err)
	assert.Equal(t, record{Name: "first", Items: []string{"a", "b"}}, got)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "name: first\n")
}

func TestRead(t *testing.T) {
	dir := t.TempDir()
	empty := filepath.Join(dir, "empty.yml")
	require.NoError(t, os.WriteFile(empty, nil, 0o644))
	broken := filepath.Join(dir, "broken.yml")
	require.NoError(t, os.WriteFile(broken, []byte("name: [unclosed"), 0o644))

	tests := []struct {
		name     string
		path     string
		optional bool
		wantErr  bool
	}{
		{name: "empty file", path: empty},
		{name: "missing file", path: filepath.Join(dir, "missing.yml"), wantErr: true},
		{name: "missing optional file", path: filepath.Join(dir, "missing.yml"), optional: true},
		{name: "invalid yaml", path: broken, wantErr: true},
		{name: "invalid optional yaml", path: broken, optional: true, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got record
			var err error
			if tt.optional {
				got, err = ReadOptional[record](tt.path)
			} else {
				got, err = Read[record](tt.path)
			}
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, record{}, got)
		})
	}
}
