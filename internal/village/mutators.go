package village

import (
	"fmt"

	"github.com/lizTheDeveloper/ai-village-sub012/internal/domain"
	"github.com/lizTheDeveloper/ai-village-sub012/internal/schema"
)

// RegisterMutators привязывает кастомные мутаторы к схемам реестра.
// YAML-схемы только именуют мутаторы (mutateVia), код живет здесь.
func RegisterMutators(reg *schema.Registry) {
	if plant := reg.Get(CompPlant); plant != nil {
		if plant.Mutators == nil {
			plant.Mutators = make(map[string]schema.MutatorFunc)
		}
		plant.Mutators["advanceStage"] = AdvanceStage
	}
}

// AdvanceStage - кастомный мутатор поля plant.stage.
// Смена стадии трогает ДВА поля сразу (stage и ticksInStage), поэтому
// генерик-путь с одним обратимым полем здесь не годится. Цена -
// невозможность отката: движок помечает такую мутацию как opaque.
func AdvanceStage(e *domain.Entity, v domain.Value) error {
	comp := e.GetComponent(CompPlant)
	if comp == nil {
		return fmt.Errorf("entity %s has no plant component", e.ID)
	}

	current, _ := comp.Get("stage")
	target := v.S

	if !isLegalTransition(current.S, target) {
		return fmt.Errorf("illegal stage transition %q -> %q", current.S, target)
	}

	comp.Set("stage", domain.String(target))
	comp.Set("ticksInStage", domain.Int(0))
	return nil
}

// isLegalTransition: вперед на одну стадию, либо увядание из любой стадии
func isLegalTransition(from, to string) bool {
	if to == StageWithered {
		return from != StageWithered
	}
	fromIdx, toIdx := -1, -1
	for i, s := range PlantStages {
		if s == from {
			fromIdx = i
		}
		if s == to {
			toIdx = i
		}
	}
	if fromIdx < 0 || toIdx < 0 {
		return false
	}
	return toIdx == fromIdx+1
}
