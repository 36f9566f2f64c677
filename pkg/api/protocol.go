package api

import (
	"encoding/json"
)

// --- СЕРВЕР -> КЛИЕНТ ---

// ServerResponse это корневой объект, который сервер отправляет клиенту.
type ServerResponse struct {
	// Type тип сообщения: "UPDATE" (очередной тик), "INIT" (первый кадр),
	// "RESULT" (ответ на команду), "ERROR".
	Type string `json:"type"`

	// Tick текущее логическое время деревни.
	Tick int `json:"tick"`

	// MyEntityID ID сущности, которой управляет данный клиент (если есть).
	MyEntityID string `json:"myEntityId,omitempty"`

	// Entities срез представлений сущностей деревни.
	Entities []EntityView `json:"entities,omitempty"`

	// Logs срез новых сообщений игрового лога с прошлой рассылки.
	Logs []LogEntry `json:"logs,omitempty"`

	// Data произвольный результат команды (INSPECT, SNAPSHOT_LIST, ...).
	Data json.RawMessage `json:"data,omitempty"`

	// Error текст ошибки (для Type == "ERROR").
	Error string `json:"error,omitempty"`
}

// EntityView это DTO игровой сущности. Компоненты отдаются как
// плоские словари поле->значение: клиенту не нужен наш тэгированный
// вариант, ему нужны данные.
type EntityView struct {
	ID   string `json:"id"`
	Kind string `json:"kind"` // PLANT, VILLAGER
	Name string `json:"name"`

	Pos struct {
		X int `json:"x"`
		Y int `json:"y"`
	} `json:"pos"`

	Components map[string]map[string]any `json:"components,omitempty"`
}

// LogEntry представляет одну запись в игровом логе.
type LogEntry struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Type      string `json:"type"`      // INFO, DISEASE, PESTS, BOTANY, ERROR
	Timestamp int64  `json:"timestamp"` // Unix milliseconds
}

// MutationEventView - событие мутации для подписчиков по WS
type MutationEventView struct {
	EntityID      string `json:"entityId"`
	ComponentType string `json:"componentType"`
	Field         string `json:"field"`
	OldValue      any    `json:"oldValue"`
	NewValue      any    `json:"newValue"`
	Kind          string `json:"kind"`
	Source        string `json:"source"`
	Tick          int    `json:"tick"`
}

// --- КЛИЕНТ -> СЕРВЕР ---

// ClientCommand это корневой объект для всех сообщений от клиента к серверу.
type ClientCommand struct {
	// Token идентификатор сессии/агента, от имени которого шлется команда.
	Token string `json:"token,omitempty"`

	// Action название действия (MUTATE, UNDO, SNAPSHOT_CREATE, ...).
	Action string `json:"action"`

	// Payload JSON-объект с данными. Структура зависит от Action.
	Payload json.RawMessage `json:"payload"`
}

// --- Payloads ---

// MutatePayload - заявка на мутацию одного поля.
// Value - сырой JSON: ожидаемый тип определяет схема.
type MutatePayload struct {
	TargetID  string          `json:"targetId"`
	Component string          `json:"component"`
	Field     string          `json:"field"`
	Value     json.RawMessage `json:"value"`
	Source    string          `json:"source,omitempty"` // По умолчанию "user"
}

// MutateBatchPayload - пакет заявок (все или ничего на этапе валидации)
type MutateBatchPayload struct {
	Requests []MutatePayload `json:"requests"`
}

// InspectPayload - запрос интроспекции сущности
type InspectPayload struct {
	TargetID string `json:"targetId"`
	// Component - если пусто, возвращаются все компоненты
	Component string `json:"component,omitempty"`
}

// SnapshotCreatePayload - запрос создания слепка
type SnapshotCreatePayload struct {
	EntityIDs []string          `json:"entityIds"`
	Metadata  map[string]string `json:"metadata,omitempty"`
}

// SnapshotIDPayload - операции над существующим слепком (RESTORE, DELETE)
type SnapshotIDPayload struct {
	SnapshotID string `json:"snapshotId"`
}

// DevModePayload - переключение dev-режима
type DevModePayload struct {
	Enabled bool `json:"enabled"`
}

// --- Результаты команд (уходят в ServerResponse.Data) ---

// MutateResult - итог одной заявки
type MutateResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	Code    string `json:"code,omitempty"`
}

// HistoryResult - итог UNDO/REDO
type HistoryResult struct {
	Performed bool `json:"performed"`
	CanUndo   bool `json:"canUndo"`
	CanRedo   bool `json:"canRedo"`
}

// SnapshotCreateResult - итог SNAPSHOT_CREATE
type SnapshotCreateResult struct {
	SnapshotID string `json:"snapshotId"`
}

// SnapshotRestoreResult - итог SNAPSHOT_RESTORE
type SnapshotRestoreResult struct {
	EntitiesRestored int               `json:"entitiesRestored"`
	Metadata         map[string]string `json:"metadata,omitempty"`
}
