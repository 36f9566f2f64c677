package domain

import (
	"crypto/rand"
	"encoding/hex"
)

// EntityID - строковый идентификатор сущности
type EntityID string

func (id EntityID) String() string { return string(id) }

// GenerateID создает простой уникальный ID (замена UUID для снижения зависимостей)
func GenerateID() EntityID {
	b := make([]byte, 8) // 16 символов hex
	if _, err := rand.Read(b); err != nil {
		panic("failed to generate random ID: " + err.Error())
	}
	return EntityID(hex.EncodeToString(b))
}

// --- СУЩНОСТЬ ---

// Entity - владелец компонентов. В отличие от прошлой версии движка
// с жестко прибитыми полями (Stats, AI, Vision...), компоненты здесь
// хранятся по имени типа: любой внешний актор (UI, AI-агент, дебаг-тулза)
// может работать с ними через схему, не зная Go-типов.
type Entity struct {
	// Идентификация
	ID   EntityID `json:"id"`
	Kind string   `json:"kind"` // PLANT, VILLAGER, PLOT
	Name string   `json:"name"`

	// ControllerID - ID сессии/агента, который управляет этой сущностью.
	// Если пусто - сущностью управляют только системы движка.
	ControllerID string `json:"controllerId,omitempty"`

	Pos Position `json:"pos"`

	// Компоненты по имени типа (если ключа нет - свойство отсутствует)
	Components map[string]*Component `json:"components"`
}

func NewEntity(kind, name string, pos Position) *Entity {
	return &Entity{
		ID:         GenerateID(),
		Kind:       kind,
		Name:       name,
		Pos:        pos,
		Components: make(map[string]*Component),
	}
}

// HasComponent проверяет наличие компонента
func (e *Entity) HasComponent(typ string) bool {
	_, ok := e.Components[typ]
	return ok
}

// GetComponent возвращает компонент или nil
func (e *Entity) GetComponent(typ string) *Component {
	return e.Components[typ]
}

// AddComponent прикрепляет компонент. Существующий компонент того же типа
// перезаписывается.
func (e *Entity) AddComponent(c *Component) {
	e.Components[c.Type] = c
}

// RemoveComponent отцепляет компонент
func (e *Entity) RemoveComponent(typ string) {
	delete(e.Components, typ)
}

// UpdateComponent применяет функцию к компоненту, если он есть.
// Возвращает false, если компонента нет.
func (e *Entity) UpdateComponent(typ string, fn func(*Component)) bool {
	c, ok := e.Components[typ]
	if !ok {
		return false
	}
	fn(c)
	return true
}
