package i18n

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Translator holds one flat key->text catalog per language code, loaded from
// JSON files named <code>.json.
type Translator struct {
	catalogs    map[string]map[string]string
	mu          sync.RWMutex
	defaultLang string
}

func New(defaultLang string) *Translator {
	return &Translator{
		catalogs:    make(map[string]map[string]string),
		defaultLang: defaultLang,
	}
}

func (t *Translator) LoadDir(dir string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	files, err := os.ReadDir(dir)
	if err != nil {
		return err
	}

	for _, file := range files {
		if file.IsDir() || filepath.Ext(file.Name()) != ".json" {
			continue
		}

		code := file.Name()[:len(file.Name())-len(".json")]
		path := filepath.Join(dir, file.Name())

		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read locale file %s: %w", path, err)
		}

		var data map[string]string
		if err := json.Unmarshal(content, &data); err != nil {
			return fmt.Errorf("failed to parse locale file %s: %w", path, err)
		}

		t.catalogs[code] = data
	}

	return nil
}

// Get resolves a key for the given language, falling back to the default
// language and finally to the key itself.
func (t *Translator) Get(lang, key string) string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if catalog, ok := t.catalogs[lang]; ok {
		if val, ok := catalog[key]; ok {
			return val
		}
	}

	if catalog, ok := t.catalogs[t.defaultLang]; ok {
		if val, ok := catalog[key]; ok {
			return val
		}
	}

	return key
}

// Getf resolves a key and applies it as a fmt format string.
func (t *Translator) Getf(lang, key string, args ...interface{}) string {
	return fmt.Sprintf(t.Get(lang, key), args...)
}
