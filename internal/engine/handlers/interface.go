package handlers

import (
	"encoding/json"

	"github.com/lizTheDeveloper/ai-village-sub012/internal/domain"
	"github.com/lizTheDeveloper/ai-village-sub012/internal/mutation"
	"github.com/lizTheDeveloper/ai-village-sub012/internal/schema"
	"github.com/lizTheDeveloper/ai-village-sub012/internal/snapshot"
)

// EntityFinder описывает любую структуру, которая может находить сущность по ID.
// domain.World неявно реализует этот интерфейс.
type EntityFinder interface {
	GetEntity(id domain.EntityID) *domain.Entity
}

// Context передает хендлеру доступ к подсистемам движка.
// Мы передаем ссылки: хендлер работает с живым состоянием.
type Context struct {
	Finder    EntityFinder
	World     *domain.World
	Mutations *mutation.Service
	Snapshots *snapshot.Store
	Schemas   *schema.Registry

	// Token - идентификатор сессии/агента, приславшего команду.
	// Используется как source мутаций, если клиент не указал свой.
	Token string
}

// Result - результат выполнения команды.
// Хендлер НЕ пишет в логи сервиса напрямую, он возвращает данные.
type Result struct {
	Msg     string // Текст игрового лога
	MsgType string // Тип лога (INFO, ERROR, ...)
	Data    any    // Произвольный результат для отправки клиенту
}

// HandlerFunc - это контракт для любой команды (MUTATE, UNDO, etc).
type HandlerFunc func(ctx Context, payload json.RawMessage) (Result, error)

// EmptyResult - вспомогательная функция для пустого успешного ответа
func EmptyResult() Result {
	return Result{}
}
