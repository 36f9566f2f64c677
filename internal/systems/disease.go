package systems

import (
	"math/rand"

	"github.com/lizTheDeveloper/ai-village-sub012/internal/domain"
	"github.com/lizTheDeveloper/ai-village-sub012/internal/flavor"
	"github.com/lizTheDeveloper/ai-village-sub012/internal/mutation"
	"github.com/lizTheDeveloper/ai-village-sub012/internal/village"
)

// Параметры симуляции болезней
const (
	SpreadThreshold  = 40 // Минимальная тяжесть для заражения соседей
	DamageThreshold  = 70 // Тяжесть, при которой болезнь бьет по здоровью
	DiseaseDamage    = 10
	CureHydration    = 70 // Влажность, при которой растение может выздороветь
	CureChance       = 20 // Шанс выздоровления за тик, %
	CureAmount       = 25
	InitialSeverity  = 5
)

// DiseaseTick - один шаг симуляции болезней. Все изменения идут через
// сервис мутаций (source "system"): валидация, история, инвалидация
// кэшей и события - бесплатно.
//
// Возвращает строки для игрового лога.
func DiseaseTick(svc *mutation.Service, world *domain.World, rng *rand.Rand) []string {
	var logs []string

	// Снимок списка заранее: заражение соседей в этом же тике
	// не должно давать им ход до следующего тика
	infected := make([]*domain.Entity, 0)
	for _, e := range world.Entities {
		if e.Kind != "PLANT" {
			continue
		}
		d := e.GetComponent(village.CompDisease)
		if d == nil {
			continue
		}
		if v, _ := d.Get("infected"); v.B {
			infected = append(infected, e)
		}
	}

	for _, e := range infected {
		d := e.GetComponent(village.CompDisease)
		p := e.GetComponent(village.CompPlant)

		severity, _ := d.Get("severity")
		days, _ := d.Get("daysInfected")
		hydration, _ := p.Get("hydration")
		health, _ := p.Get("health")

		// 1. Шанс выздоровления: ухоженное (политое) растение борется само
		if hydration.I >= CureHydration && rng.Intn(100) < CureChance {
			newSeverity := severity.I - CureAmount
			if newSeverity <= 0 {
				mustMutate(svc, e, village.CompDisease, "severity", domain.Int(0))
				mustMutate(svc, e, village.CompDisease, "infected", domain.Bool(false))
				mustMutate(svc, e, village.CompDisease, "disease", domain.String(village.DiseaseNone))
				mustMutate(svc, e, village.CompDisease, "daysInfected", domain.Int(0))
				logs = append(logs, flavor.RecoveryLine(rng, e.Name))
				continue
			}
			mustMutate(svc, e, village.CompDisease, "severity", domain.Int(newSeverity))
			continue
		}

		// 2. Прогрессия
		newSeverity := severity.I + int64(5+rng.Intn(10))
		if newSeverity > 100 {
			newSeverity = 100
		}
		mustMutate(svc, e, village.CompDisease, "severity", domain.Int(newSeverity))
		mustMutate(svc, e, village.CompDisease, "daysInfected", domain.Int(days.I+1))

		// 3. Урон здоровью на поздней стадии
		if newSeverity >= DamageThreshold {
			newHealth := health.I - DiseaseDamage
			if newHealth < 0 {
				newHealth = 0
			}
			mustMutate(svc, e, village.CompPlant, "health", domain.Int(newHealth))
			logs = append(logs, flavor.WorseningLine(rng, e.Name))

			// Здоровье на нуле - растение увядает (кастомный мутатор)
			if newHealth == 0 {
				if stage, _ := p.Get("stage"); stage.S != village.StageWithered {
					if err := svc.Mutate(e, village.CompPlant, "stage", domain.String(village.StageWithered), domain.SourceSystem); err == nil {
						logs = append(logs, flavor.GrowthLine(rng, e.Name, village.StageWithered))
					}
				}
			}
		}

		// 4. Распространение на соседние грядки
		if newSeverity >= SpreadThreshold {
			diseaseKind, _ := d.Get("disease")
			for _, neighbor := range world.Neighbors(e.Pos) {
				if neighbor.Kind != "PLANT" {
					continue
				}
				nd := neighbor.GetComponent(village.CompDisease)
				if nd == nil {
					continue
				}
				if v, _ := nd.Get("infected"); v.B {
					continue
				}
				// Шанс пропорционален тяжести источника
				if int64(rng.Intn(400)) >= newSeverity {
					continue
				}
				mustMutate(svc, neighbor, village.CompDisease, "infected", domain.Bool(true))
				mustMutate(svc, neighbor, village.CompDisease, "disease", diseaseKind)
				mustMutate(svc, neighbor, village.CompDisease, "severity", domain.Int(InitialSeverity))
				logs = append(logs, flavor.SpreadLine(rng, e.Name, neighbor.Name))
			}
		}
	}

	return logs
}
