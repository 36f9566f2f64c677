package mutation

import "fmt"

// Code - закрытая таксономия отказов движка мутаций.
// Каждый отказ на публичной границе сервиса - это *Error с одним из
// этих кодов; исключений/паник наружу не бывает.
type Code string

const (
	CodeMissingComponent   Code = "MISSING_COMPONENT"
	CodeUnknownSchema      Code = "UNKNOWN_SCHEMA"
	CodeUnknownField       Code = "UNKNOWN_FIELD"
	CodeImmutable          Code = "IMMUTABLE"
	CodeTypeMismatch       Code = "TYPE_MISMATCH"
	CodeRangeViolation     Code = "RANGE_VIOLATION"
	CodeLengthViolation    Code = "LENGTH_VIOLATION"
	CodeEnumViolation      Code = "ENUM_VIOLATION"
	CodeCustomMutatorFail  Code = "CUSTOM_MUTATOR_FAILED"
	CodeEntityNotFound     Code = "ENTITY_NOT_FOUND"
	CodeSnapshotNotFound   Code = "SNAPSHOT_NOT_FOUND"
	CodeBatchAborted       Code = "BATCH_ABORTED"
)

// Error - типизированная ошибка мутации
type Error struct {
	Code  Code
	Field string // Имя поля, если отказ привязан к полю
	Msg   string
}

func (e *Error) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: field %q: %s", e.Code, e.Field, e.Msg)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Msg)
}

// Is позволяет errors.Is сравнивать по коду:
// errors.Is(err, &Error{Code: CodeImmutable})
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// Errf - конструктор с форматированием
func Errf(code Code, field, format string, args ...any) *Error {
	return &Error{Code: code, Field: field, Msg: fmt.Sprintf(format, args...)}
}

// CodeOf извлекает код из ошибки. Для не-мутационных ошибок
// возвращает пустой код.
func CodeOf(err error) Code {
	if e, ok := err.(*Error); ok {
		return e.Code
	}
	return ""
}
