package systems

import (
	"github.com/lizTheDeveloper/ai-village-sub012/internal/domain"
	"github.com/lizTheDeveloper/ai-village-sub012/internal/mutation"
	"github.com/lizTheDeveloper/ai-village-sub012/pkg/logger"
)

// mustMutate - мутация от имени системы. Системы пишут только значения,
// которые сами же зажали в допустимый диапазон, так что отказ здесь -
// баг системы, а не игровая ситуация. Логируем и едем дальше:
// ронять игровой цикл из-за одной грядки нельзя.
func mustMutate(svc *mutation.Service, e *domain.Entity, componentType, field string, v domain.Value) {
	if err := svc.Mutate(e, componentType, field, v, domain.SourceSystem); err != nil {
		logger.Log.WithField("entity", e.ID).Errorf("system mutation rejected: %v", err)
	}
}

// clampInt зажимает значение в [lo, hi]
func clampInt(v, lo, hi int64) int64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
