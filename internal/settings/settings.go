package settings

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/jsonc"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

// Path returns the location of the workspace settings file below root
func Path(root string) string {
	return filepath.Join(root, ".vscode", "settings.json")
}

// Read returns all settings of section found in the workspace settings file,
// keyed by their dotted name (e.g. "cssClassNameHints.cssFilePath"). Both the
// flat VS Code notation and a nested section object are understood. Comments
// and trailing commas are allowed. A missing file yields an empty map.
func Read(root, section string) (map[string]interface{}, error) {
	values := make(map[string]interface{})

	path := Path(root)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return values, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	data = jsonc.ToJSON(data)
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("invalid JSON in %s", path)
	}

	prefix := section + "."
	gjson.ParseBytes(data).ForEach(func(key, value gjson.Result) bool {
		name := key.String()

		switch {
		case strings.HasPrefix(name, prefix):
			values[name] = value.Value()
		case name == section && value.IsObject():
			value.ForEach(func(nestedKey, nestedValue gjson.Result) bool {
				values[prefix+nestedKey.String()] = nestedValue.Value()
				return true
			})
		}

		return true
	})

	return values, nil
}

// Write stores value under the dotted key in the workspace settings file,
// creating the file when it does not exist yet. Other settings are kept,
// comments are not.
func Write(root, key string, value interface{}) error {
	path := Path(root)

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		data = []byte("{}")
	} else if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	data = jsonc.ToJSON(data)
	if !gjson.ValidBytes(data) {
		return fmt.Errorf("invalid JSON in %s", path)
	}

	// VS Code stores settings with dots in the key, not as nested objects
	newFile, err := sjson.SetBytes(data, escapeKey(key), value)
	if err != nil {
		return fmt.Errorf("failed to set %s in file %s: %w", key, path, err)
	}

	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return fmt.Errorf("failed to create %s: %w", filepath.Dir(path), err)
	}

	if err := os.WriteFile(path, pretty.Pretty(newFile), 0o644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}

	return nil
}

func escapeKey(key string) string {
	return strings.ReplaceAll(key, ".", `\.`)
}
