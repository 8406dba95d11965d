package roadlocale

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// ImportJSON imports messages from JSON data into a catalog.
func ImportJSON(c *Catalog, data []byte) (int, error) {
	return importBytes(c, data, json.Unmarshal)
}

// ImportYAML imports messages from YAML data into a catalog.
func ImportYAML(c *Catalog, data []byte) (int, error) {
	return importBytes(c, data, yaml.Unmarshal)
}

// ImportTOML imports messages from TOML data into a catalog.
func ImportTOML(c *Catalog, data []byte) (int, error) {
	return importBytes(c, data, toml.Unmarshal)
}

func importBytes(c *Catalog, data []byte, unmarshal func([]byte, any) error) (int, error) {
	var raw map[string]any
	if err := unmarshal(data, &raw); err != nil {
		return 0, fmt.Errorf("%w: %s", ErrMalformedMessages, err)
	}
	return c.Import(raw)
}

// LoadDir bulk-loads translation files from the root of fsys into the
// translator. Each file named <code>.json, <code>.yaml/.yml, or <code>.toml
// feeds the locale <code>; locales not yet registered are auto-registered
// with the language portion before any "-". Files with other extensions are
// ignored. Returns the total number of messages processed.
func LoadDir(t *Translator, fsys fs.FS) (int, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return 0, fmt.Errorf("reading locale directory: %w", err)
	}

	total := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		ext := strings.ToLower(path.Ext(name))

		var unmarshal func([]byte, any) error
		switch ext {
		case ".json":
			unmarshal = json.Unmarshal
		case ".yaml", ".yml":
			unmarshal = yaml.Unmarshal
		case ".toml":
			unmarshal = toml.Unmarshal
		default:
			continue
		}

		code := strings.TrimSuffix(name, path.Ext(name))
		if _, ok := t.Catalog(code); !ok {
			if err := t.RegisterLocale(NewLocale(code, baseLanguage(code))); err != nil {
				return total, fmt.Errorf("registering locale %q: %w", code, err)
			}
		}

		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return total, fmt.Errorf("reading %q: %w", name, err)
		}

		catalog, _ := t.Catalog(code)
		count, err := importBytes(catalog, data, unmarshal)
		total += count
		if err != nil {
			return total, fmt.Errorf("importing %q: %w", name, err)
		}
	}

	return total, nil
}
