package systems

import (
	"math/rand"

	"github.com/lizTheDeveloper/ai-village-sub012/internal/domain"
	"github.com/lizTheDeveloper/ai-village-sub012/internal/flavor"
	"github.com/lizTheDeveloper/ai-village-sub012/internal/mutation"
	"github.com/lizTheDeveloper/ai-village-sub012/internal/village"
)

// Тики до перехода на следующую стадию
var stageDuration = map[string]int64{
	village.StageSeed:   10,
	village.StageSprout: 25,
	village.StageMature: 40,
}

var nextStage = map[string]string{
	village.StageSeed:   village.StageSprout,
	village.StageSprout: village.StageMature,
	village.StageMature: village.StageFlowering,
}

// Рост требует минимального здоровья
const GrowthHealthFloor = 30

// GrowthTick - один шаг роста: испарение влаги, счетчик стадии,
// переход на следующую стадию через кастомный мутатор advanceStage
// (единственная мутация в движке, которую нельзя откатить).
func GrowthTick(svc *mutation.Service, world *domain.World, rng *rand.Rand) []string {
	var logs []string

	for _, e := range world.Entities {
		if e.Kind != "PLANT" {
			continue
		}
		plant := e.GetComponent(village.CompPlant)
		if plant == nil {
			continue
		}

		stage, _ := plant.Get("stage")
		if stage.S == village.StageWithered {
			continue // Мертвое не растет
		}

		// 1. Испарение влаги
		hydration, _ := plant.Get("hydration")
		if hydration.I > 0 {
			mustMutate(svc, e, village.CompPlant, "hydration", domain.Int(hydration.I-1))
		}

		// 2. Счетчик времени в стадии
		ticks, _ := plant.Get("ticksInStage")
		mustMutate(svc, e, village.CompPlant, "ticksInStage", domain.Int(ticks.I+1))

		// 3. Переход стадии
		duration, hasNext := stageDuration[stage.S]
		if !hasNext || ticks.I+1 < duration {
			continue
		}
		health, _ := plant.Get("health")
		if health.I < GrowthHealthFloor {
			continue // Больное растение застревает в текущей стадии
		}

		target := nextStage[stage.S]
		if err := svc.Mutate(e, village.CompPlant, "stage", domain.String(target), domain.SourceSystem); err == nil {
			logs = append(logs, flavor.GrowthLine(rng, e.Name, target))
		}
	}

	return logs
}
