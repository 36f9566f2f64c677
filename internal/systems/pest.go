package systems

import (
	"math/rand"

	"github.com/lizTheDeveloper/ai-village-sub012/internal/domain"
	"github.com/lizTheDeveloper/ai-village-sub012/internal/flavor"
	"github.com/lizTheDeveloper/ai-village-sub012/internal/mutation"
	"github.com/lizTheDeveloper/ai-village-sub012/internal/village"
)

// Параметры симуляции вредителей
const (
	PestArrivalChance   = 3  // Шанс появления вредителей на чистом растении, %
	PestGrowthPerTick   = 5
	PestDamageThreshold = 60
	PestDamage          = 5
	PestSpillThreshold  = 70 // Давление, при котором вредители лезут к соседям
	PestSpillChance     = 15 // %
	PestSpillAmount     = 15
)

// PestTick - один шаг симуляции вредителей: появление, накопление
// давления, урон растению и расползание по соседям.
func PestTick(svc *mutation.Service, world *domain.World, rng *rand.Rand) []string {
	var logs []string

	plants := make([]*domain.Entity, 0)
	for _, e := range world.Entities {
		if e.Kind == "PLANT" && e.HasComponent(village.CompPests) {
			plants = append(plants, e)
		}
	}

	for _, e := range plants {
		pc := e.GetComponent(village.CompPests)
		pressure, _ := pc.Get("pressure")

		// 1. Появление на чистом растении
		if pressure.I == 0 {
			if rng.Intn(100) < PestArrivalChance {
				species := flavor.RandomPestSpecies(rng)
				mustMutate(svc, e, village.CompPests, "pressure", domain.Int(int64(10+rng.Intn(20))))
				mustMutate(svc, e, village.CompPests, "species", domain.String(species))
				logs = append(logs, flavor.PestArrivalLine(rng, e.Name, species))
			}
			continue
		}

		// 2. Накопление давления
		newPressure := clampInt(pressure.I+PestGrowthPerTick, 0, 100)
		mustMutate(svc, e, village.CompPests, "pressure", domain.Int(newPressure))

		// 3. Урон растению
		if newPressure >= PestDamageThreshold {
			plant := e.GetComponent(village.CompPlant)
			if plant != nil {
				health, _ := plant.Get("health")
				mustMutate(svc, e, village.CompPlant, "health", domain.Int(clampInt(health.I-PestDamage, 0, 100)))
				// Не спамим лог каждый тик
				if rng.Intn(100) < 30 {
					logs = append(logs, flavor.PestDamageLine(rng, e.Name))
				}
			}
		}

		// 4. Расползание
		if newPressure >= PestSpillThreshold && rng.Intn(100) < PestSpillChance {
			species, _ := pc.Get("species")
			for _, neighbor := range world.Neighbors(e.Pos) {
				if neighbor.Kind != "PLANT" {
					continue
				}
				nc := neighbor.GetComponent(village.CompPests)
				if nc == nil {
					continue
				}
				np, _ := nc.Get("pressure")
				if np.I > 0 {
					continue // Уже оккупирован
				}
				mustMutate(svc, neighbor, village.CompPests, "pressure", domain.Int(PestSpillAmount))
				mustMutate(svc, neighbor, village.CompPests, "species", species)
				logs = append(logs, flavor.PestSpilloverLine(rng, e.Name, neighbor.Name))
				break // Один сосед за тик
			}
		}
	}

	return logs
}
