package words

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/samdwyer/hangman/internal/game"
)

// ErrUnknownFormat is returned for word-list files that are neither YAML nor JSON.
var ErrUnknownFormat = errors.New("unknown word list format")

// loadEmbedded reads and unmarshals a JSON file from the embedded filesystem.
func loadEmbedded[T any](filename string) (T, error) {
	var result T

	content, err := dataFS.ReadFile(filename)
	if err != nil {
		return result, fmt.Errorf("failed to read embedded file %s: %w", filename, err)
	}

	if err := json.Unmarshal(content, &result); err != nil {
		return result, fmt.Errorf("failed to parse JSON from %s: %w", filename, err)
	}

	return result, nil
}

// LoadFile reads word lists keyed by difficulty name from a YAML or JSON file.
// The format is chosen by extension. Keys are matched case-insensitively and
// a key that names no difficulty is an error.
func LoadFile(path string) (Lists, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read word list %s: %w", path, err)
	}

	var raw map[string][]string
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(content, &raw)
	case ".json":
		err = json.Unmarshal(content, &raw)
	default:
		return nil, fmt.Errorf("%s: %w", path, ErrUnknownFormat)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse word list %s: %w", path, err)
	}

	lists := make(Lists, len(raw))
	for key, ws := range raw {
		d, err := game.ParseDifficulty(key)
		if err != nil {
			return nil, fmt.Errorf("word list %s: %w", path, err)
		}
		lists[d.String()] = append(lists[d.String()], ws...)
	}
	return lists, nil
}
