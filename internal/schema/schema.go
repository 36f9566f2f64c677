package schema

import (
	"fmt"

	"github.com/lizTheDeveloper/ai-village-sub012/internal/domain"
)

// MutatorFunc - кастомный мутатор, объявленный схемой через mutateVia.
// Получает сущность целиком: в отличие от генерик-пути он может трогать
// несколько полей сразу (за что и платит невозможностью отката).
type MutatorFunc func(e *domain.Entity, v domain.Value) error

// FieldSchema - метаданные одного поля компонента
type FieldSchema struct {
	Kind     domain.Kind
	Required bool

	// Числовые ограничения (только для int/float). nil - без ограничения.
	Min *float64
	Max *float64

	// MaxLength - для строк (в рунах) и списков (в элементах)
	MaxLength *int

	// Enum - допустимые значения строкового поля
	Enum []string

	// Mutable=false означает, что поле меняется только в dev-режиме
	Mutable bool

	// MutateVia - имя кастомного мутатора из Schema.Mutators.
	// Если задано, генерик-путь мутации не используется.
	MutateVia string
}

// Schema - статическое описание компонента: поля, ограничения, мутабельность.
// Движок мутаций читает схему, но никогда не меняет.
type Schema struct {
	Type     string
	Version  int
	Fields   map[string]FieldSchema
	Mutators map[string]MutatorFunc
}

// Field возвращает схему поля. Второй результат false, если поле не объявлено.
func (s *Schema) Field(name string) (FieldSchema, bool) {
	fs, ok := s.Fields[name]
	return fs, ok
}

// Mutator возвращает кастомный мутатор по имени или nil
func (s *Schema) Mutator(name string) MutatorFunc {
	if s.Mutators == nil {
		return nil
	}
	return s.Mutators[name]
}

// Validate проверяет компонент ЦЕЛИКОМ против схемы: все required-поля
// на месте, типы и ограничения соблюдены. Используется сервисом мутаций
// как пост-коммитная диагностика и хендлером INSPECT.
func (s *Schema) Validate(c *domain.Component) error {
	for name, fs := range s.Fields {
		v, ok := c.Get(name)
		if !ok {
			if fs.Required {
				return fmt.Errorf("component %q: required field %q is missing", s.Type, name)
			}
			continue
		}
		if err := CheckValue(fs, name, v); err != nil {
			return fmt.Errorf("component %q: %w", s.Type, err)
		}
	}
	return nil
}

// CheckValue проверяет одно значение против схемы поля: тип, диапазон,
// длину и enum. Мутабельность здесь НЕ проверяется - это забота
// сервиса мутаций (она зависит от dev-режима).
func CheckValue(fs FieldSchema, name string, v domain.Value) error {
	if v.Kind != fs.Kind {
		return fmt.Errorf("field %q: expected %s, got %s", name, fs.Kind, v.Kind)
	}

	switch fs.Kind {
	case domain.KindInt, domain.KindFloat:
		n := v.Number()
		if fs.Min != nil && n < *fs.Min {
			return fmt.Errorf("field %q: value %s below minimum %g", name, v, *fs.Min)
		}
		if fs.Max != nil && n > *fs.Max {
			return fmt.Errorf("field %q: value %s above maximum %g", name, v, *fs.Max)
		}

	case domain.KindString:
		if fs.MaxLength != nil && v.Len() > *fs.MaxLength {
			return fmt.Errorf("field %q: length %d exceeds maximum %d", name, v.Len(), *fs.MaxLength)
		}
		if len(fs.Enum) > 0 && !contains(fs.Enum, v.S) {
			return fmt.Errorf("field %q: value %q not in enum %v", name, v.S, fs.Enum)
		}

	case domain.KindList:
		if fs.MaxLength != nil && v.Len() > *fs.MaxLength {
			return fmt.Errorf("field %q: %d items exceeds maximum %d", name, v.Len(), *fs.MaxLength)
		}
	}

	return nil
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
