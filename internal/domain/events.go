package domain

import (
	"time"

	"github.com/google/uuid"
)

// Source - происхождение мутации. Это НЕ закрытый enum: любая строка
// допустима, константы ниже - просто общепринятые значения.
const (
	SourceUser    = "user"
	SourceSystem  = "system"
	SourceAI      = "ai"
	SourceHistory = "history" // undo/redo
)

// MutationKind различает обычные (откатываемые) мутации и непрозрачные
// мутации через кастомный мутатор схемы, которые движок откатить не может.
type MutationKind string

const (
	GenericMutation MutationKind = "generic"
	OpaqueMutation  MutationKind = "opaque"
)

// MutationEvent - успешно примененная мутация. Рассылается подписчикам
// сервиса мутаций после фиксации изменения.
type MutationEvent struct {
	ID            string       `json:"id"`
	EntityID      EntityID     `json:"entityId"`
	ComponentType string       `json:"componentType"`
	Field         string       `json:"field"`
	OldValue      Value        `json:"oldValue"`
	NewValue      Value        `json:"newValue"`
	Kind          MutationKind `json:"kind"`
	Tick          int          `json:"tick"`
	Timestamp     int64        `json:"timestamp"` // Unix milliseconds
	Source        string       `json:"source"`
}

// MutationFailure - отклоненная мутация. Чисто наблюдательное событие:
// состояние мира НЕ менялось.
type MutationFailure struct {
	ID             string   `json:"id"`
	EntityID       EntityID `json:"entityId"`
	ComponentType  string   `json:"componentType"`
	Field          string   `json:"field"`
	AttemptedValue Value    `json:"attemptedValue"`
	Reason         string   `json:"reason"`
	Tick           int      `json:"tick"`
	Timestamp      int64    `json:"timestamp"`
	Source         string   `json:"source"`
}

// NewEventID генерирует идентификатор события
func NewEventID() string {
	return uuid.NewString()
}

// NowMillis - текущее время для Timestamp событий
func NowMillis() int64 {
	return time.Now().UnixMilli()
}
