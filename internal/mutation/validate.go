package mutation

import (
	"github.com/lizTheDeveloper/ai-village-sub012/internal/domain"
	"github.com/lizTheDeveloper/ai-village-sub012/internal/schema"
)

// ValidateField решает, допустима ли мутация одного поля.
// Чистая функция: никаких побочных эффектов, только вердикт.
//
// Порядок проверок важен:
//  1. Поле объявлено на схеме?
//  2. Поле мутабельно? (dev-режим обходит ТОЛЬКО эту проверку)
//  3. Тип значения совпадает с объявленным?
//  4. Ограничения: range / maxLength / enum
//
// Dev-режим позволяет оператору поменять залоченное поле, но никогда
// не позволяет записать структурно невалидное значение.
func ValidateField(s *schema.Schema, field string, v domain.Value, devMode bool) error {
	fs, ok := s.Field(field)
	if !ok {
		return Errf(CodeUnknownField, field, "not declared on schema %q", s.Type)
	}

	if !fs.Mutable && !devMode {
		return Errf(CodeImmutable, field, "field is immutable on schema %q", s.Type)
	}

	if v.Kind != fs.Kind {
		return Errf(CodeTypeMismatch, field, "expected %s, got %s", fs.Kind, v.Kind)
	}

	switch fs.Kind {
	case domain.KindInt, domain.KindFloat:
		n := v.Number()
		if fs.Min != nil && n < *fs.Min {
			return Errf(CodeRangeViolation, field, "value %s below minimum %g", v, *fs.Min)
		}
		if fs.Max != nil && n > *fs.Max {
			return Errf(CodeRangeViolation, field, "value %s above maximum %g", v, *fs.Max)
		}

	case domain.KindString:
		if fs.MaxLength != nil && v.Len() > *fs.MaxLength {
			return Errf(CodeLengthViolation, field, "length %d exceeds maximum %d", v.Len(), *fs.MaxLength)
		}
		if len(fs.Enum) > 0 && !inEnum(fs.Enum, v.S) {
			return Errf(CodeEnumViolation, field, "value %q not in enum %v", v.S, fs.Enum)
		}

	case domain.KindList:
		if fs.MaxLength != nil && v.Len() > *fs.MaxLength {
			return Errf(CodeLengthViolation, field, "%d items exceeds maximum %d", v.Len(), *fs.MaxLength)
		}
	}

	return nil
}

func inEnum(enum []string, s string) bool {
	for _, e := range enum {
		if e == s {
			return true
		}
	}
	return false
}
