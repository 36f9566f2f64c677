package mutation

import (
	"github.com/lizTheDeveloper/ai-village-sub012/internal/domain"
)

// EntityFinder описывает любую структуру, которая может находить сущность по ID.
// domain.World неявно реализует этот интерфейс.
type EntityFinder interface {
	GetEntity(id domain.EntityID) *domain.Entity
}

// Command - одна обратимая мутация РОВНО ОДНОГО поля.
// Execute и Undo - точные инверсии друг друга; команда никогда не
// затрагивает несколько полей или сущностей. Команда живет только
// внутри стека истории.
//
// Сущность резолвится по ID в момент выполнения, а не захватывается
// указателем: к моменту undo сущность могла быть удалена из мира.
type Command struct {
	EntityID      domain.EntityID
	ComponentType string
	Field         string
	OldValue      domain.Value
	NewValue      domain.Value
}

// Execute записывает NewValue в поле
func (c *Command) Execute(f EntityFinder) error {
	return c.apply(f, c.NewValue)
}

// Undo восстанавливает OldValue
func (c *Command) Undo(f EntityFinder) error {
	return c.apply(f, c.OldValue)
}

func (c *Command) apply(f EntityFinder, v domain.Value) error {
	e := f.GetEntity(c.EntityID)
	if e == nil {
		return Errf(CodeEntityNotFound, "", "entity %s no longer exists", c.EntityID)
	}
	comp := e.GetComponent(c.ComponentType)
	if comp == nil {
		return Errf(CodeMissingComponent, c.Field, "entity %s has no %q component", c.EntityID, c.ComponentType)
	}
	comp.Set(c.Field, v.Clone())
	return nil
}
