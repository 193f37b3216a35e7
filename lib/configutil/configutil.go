package configutil

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"dario.cat/mergo"
	"github.com/titanous/json5"
)

// json5 config files with an optional `.local` overlay: telemetry.json5
// is read together with telemetry.local.json5 and the local file wins
// on conflicts, so machine-specific endpoints stay out of version
// control.

func localName(name string) string {
	ext := filepath.Ext(name)
	return strings.TrimSuffix(name, ext) + ".local" + ext
}

// readLayer decodes one file into out. A missing or empty file is not
// an error, it reports found=false.
func readLayer[T any](path string, out *T) (bool, error) {
	contents, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if len(contents) == 0 {
		return false, nil
	}
	err = json5.Unmarshal(contents, out)
	if err != nil {
		return false, fmt.Errorf("%s: %w", path, err)
	}
	return true, nil
}

// ReadConfig reads name plus its `.local` overlay. When neither file
// exists it returns os.ErrNotExist so callers can treat the config as
// optional.
func ReadConfig[T any](name string) (T, error) {
	var cfg T
	found, err := readLayer(name, &cfg)
	if err != nil {
		return cfg, err
	}

	var local T
	localFound, err := readLayer(localName(name), &local)
	if err != nil {
		return cfg, err
	}
	if localFound {
		err = mergo.Merge(&cfg, local, mergo.WithOverride)
		if err != nil {
			return cfg, err
		}
		slog.Debug("applied local config overrides", "file", localName(name))
	}

	if !found && !localFound {
		return cfg, os.ErrNotExist
	}
	return cfg, nil
}

// ReadRecursively looks for name in the working directory and then in
// each parent up to the filesystem root, so tests running deep inside
// the repo pick up the same config as the repo root.
func ReadRecursively[T any](name string) (T, error) {
	var zero T

	dir, err := os.Getwd()
	if err != nil {
		return zero, err
	}

	for {
		cfg, err := ReadConfig[T](filepath.Join(dir, name))
		if !os.IsNotExist(err) {
			return cfg, err
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return zero, os.ErrNotExist
		}
		dir = parent
	}
}
