package schema

import "sort"

// Registry - реестр схем по имени типа компонента.
// Заполняется один раз при старте (встроенные схемы + YAML-файлы),
// дальше только читается, поэтому мьютекс не нужен.
type Registry struct {
	schemas map[string]*Schema
}

func NewRegistry() *Registry {
	return &Registry{schemas: make(map[string]*Schema)}
}

// Register добавляет схему. Повторная регистрация того же типа
// перезаписывает старую (позволяет YAML-файлам уточнять встроенные схемы).
func (r *Registry) Register(s *Schema) {
	r.schemas[s.Type] = s
}

// Get возвращает схему или nil
func (r *Registry) Get(componentType string) *Schema {
	return r.schemas[componentType]
}

// Types возвращает отсортированный список зарегистрированных типов
func (r *Registry) Types() []string {
	out := make([]string, 0, len(r.schemas))
	for typ := range r.schemas {
		out = append(out, typ)
	}
	sort.Strings(out)
	return out
}
