package schema

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/lizTheDeveloper/ai-village-sub012/internal/domain"
)

// --- YAML ПРЕДСТАВЛЕНИЕ СХЕМ ---
// Схемы компонентов авторятся дизайнерами в YAML-файлах, например:
//
//	type: plant
//	version: 1
//	fields:
//	  species: {kind: string, required: true, mutable: false}
//	  hydration: {kind: int, min: 0, max: 100, mutable: true}
//	  stage: {kind: string, enum: [seed, sprout], mutable: true, mutateVia: advanceStage}
//
// Кастомные мутаторы (mutateVia) в YAML только ИМЕНУЮТСЯ, сам код
// регистрируется на схеме из Go (см. village.RegisterMutators).

type fileSchema struct {
	Type    string               `yaml:"type"`
	Version int                  `yaml:"version"`
	Fields  map[string]fileField `yaml:"fields"`
}

type fileField struct {
	Kind      string   `yaml:"kind"`
	Required  bool     `yaml:"required"`
	Min       *float64 `yaml:"min"`
	Max       *float64 `yaml:"max"`
	MaxLength *int     `yaml:"maxLength"`
	Enum      []string `yaml:"enum"`
	Mutable   bool     `yaml:"mutable"`
	MutateVia string   `yaml:"mutateVia"`
}

// Parse разбирает одну YAML-схему
func Parse(data []byte) (*Schema, error) {
	var fs fileSchema
	if err := yaml.Unmarshal(data, &fs); err != nil {
		return nil, fmt.Errorf("invalid schema yaml: %w", err)
	}

	if fs.Type == "" {
		return nil, fmt.Errorf("schema has no type")
	}
	if len(fs.Fields) == 0 {
		return nil, fmt.Errorf("schema %q has no fields", fs.Type)
	}

	s := &Schema{
		Type:    fs.Type,
		Version: fs.Version,
		Fields:  make(map[string]FieldSchema, len(fs.Fields)),
	}

	for name, ff := range fs.Fields {
		kind := domain.ParseKind(ff.Kind)
		if kind == domain.KindInvalid {
			return nil, fmt.Errorf("schema %q field %q: unknown kind %q", fs.Type, name, ff.Kind)
		}
		s.Fields[name] = FieldSchema{
			Kind:      kind,
			Required:  ff.Required,
			Min:       ff.Min,
			Max:       ff.Max,
			MaxLength: ff.MaxLength,
			Enum:      ff.Enum,
			Mutable:   ff.Mutable,
			MutateVia: ff.MutateVia,
		}
	}

	return s, nil
}

// LoadDir загружает все *.yaml схемы из каталога в реестр.
// Отсутствующий каталог - не ошибка (сервер может жить на встроенных схемах).
func LoadDir(r *Registry, dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, err
	}

	loaded := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return loaded, fmt.Errorf("read %s: %w", path, err)
		}
		s, err := Parse(data)
		if err != nil {
			return loaded, fmt.Errorf("parse %s: %w", path, err)
		}
		r.Register(s)
		loaded++
	}

	return loaded, nil
}
