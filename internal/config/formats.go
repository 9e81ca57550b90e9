// SPDX-License-Identifier: MPL-2.0

package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"

	"github.com/i3ctl/i3ctl/pkg/cueutil"

	"github.com/bytedance/sonic"
	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
)

const (
	formatTOML format = "toml"
	formatJSON format = "json"
	formatYAML format = "yaml"
	formatCUE  format = "cue"
)

//go:embed config_schema.cue
var configSchema []byte

type (
	format string

	// candidate is a possible config file name and the format it is read as.
	candidate struct {
		name   string
		format format
	}
)

// candidates lists config file names in lookup order. The first one that
// exists is used.
var candidates = []candidate{
	{ConfigFileName + ".toml", formatTOML},
	{ConfigFileName + ".json", formatJSON},
	{ConfigFileName + ".yaml", formatYAML},
	{ConfigFileName + ".yml", formatYAML},
	{ConfigFileName + ".cue", formatCUE},
	{ConfigFileName, formatTOML},
}

// CandidatePaths returns the config file paths Resolve checks in dir, in order.
func CandidatePaths(dir string) []string {
	paths := make([]string, len(candidates))
	for i, c := range candidates {
		paths[i] = filepath.Join(dir, c.name)
	}
	return paths
}

// findConfigFile returns the first candidate in dir that is a regular file.
// A missing file is not an error.
func findConfigFile(fsys afero.Fs, dir string) (string, format, error) {
	for _, c := range candidates {
		path := filepath.Join(dir, c.name)
		info, err := fsys.Stat(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return "", "", fmt.Errorf("failed to stat %s: %w", path, err)
		}
		if info.IsDir() {
			continue
		}
		return path, c.format, nil
	}
	return "", "", nil
}

// readConfigFile reads path and decodes it according to f.
func readConfigFile(fsys afero.Fs, path string, f format) (map[string]any, error) {
	data, err := readLimited(fsys, path, cueutil.DefaultMaxFileSize)
	if err != nil {
		return nil, err
	}

	values := map[string]any{}
	switch f {
	case formatTOML:
		err = toml.Unmarshal(data, &values)
	case formatYAML:
		err = yaml.Unmarshal(data, &values)
	case formatJSON:
		err = sonic.Unmarshal(data, &values)
	case formatCUE:
		values, err = cueutil.Decode[map[string]any](configSchema, data, "#Config", path)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported config format %q", f)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if values == nil {
		values = map[string]any{}
	}

	return values, nil
}

// readLimited reads at most maxSize bytes of path. Larger files are rejected
// from their size on disk, and the read itself is capped in case the file
// grows in between.
func readLimited(fsys afero.Fs, path string, maxSize int64) ([]byte, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	if info.Size() > maxSize {
		return nil, fmt.Errorf("%s: file size %d bytes exceeds maximum %d bytes", path, info.Size(), maxSize)
	}

	data, err := io.ReadAll(io.LimitReader(f, maxSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := cueutil.CheckFileSize(data, maxSize, path); err != nil {
		return nil, err
	}
	return data, nil
}
