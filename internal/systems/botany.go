package systems

import (
	"math/rand"

	"github.com/lizTheDeveloper/ai-village-sub012/internal/domain"
	"github.com/lizTheDeveloper/ai-village-sub012/internal/flavor"
	"github.com/lizTheDeveloper/ai-village-sub012/internal/mutation"
	"github.com/lizTheDeveloper/ai-village-sub012/internal/village"
)

// Бонус ботаника к броску открытия
const BotanistBonus = 25

// Стоимость изучения
const StudyEnergyCost = 5

// StudyPlant - житель изучает растение. Бросок против навыка:
// успех добавляет вид в список изученных и увеличивает счетчик открытий.
// Возвращает строку для игрового лога.
func StudyPlant(svc *mutation.Service, villager, plant *domain.Entity, rng *rand.Rand) string {
	botany := villager.GetComponent(village.CompBotany)
	vc := villager.GetComponent(village.CompVillager)
	pc := plant.GetComponent(village.CompPlant)
	if botany == nil || vc == nil || pc == nil {
		return ""
	}

	species, _ := pc.Get("species")

	// Уже изучено?
	studied, _ := botany.Get("studied")
	for _, item := range studied.L {
		if item.S == species.S {
			return flavor.AlreadyKnownLine(rng, villager.Name, plant.Name)
		}
	}

	// Изучение стоит сил
	energy, _ := vc.Get("energy")
	if energy.I < StudyEnergyCost {
		return ""
	}
	mustMutate(svc, villager, village.CompVillager, "energy", domain.Int(energy.I-StudyEnergyCost))

	// Бросок открытия
	skill, _ := vc.Get("skill")
	roll := skill.I
	if role, _ := vc.Get("role"); role.S == village.RoleBotanist {
		roll += BotanistBonus
	}
	if int64(rng.Intn(100)) >= roll {
		return flavor.StudyFailLine(rng, villager.Name, plant.Name)
	}

	// Открытие! Список изученных - тоже поле, мутируем его целиком
	// (движок работает со значениями, а не с inplace-append)
	newStudied := studied.Clone()
	newStudied.L = append(newStudied.L, species.Clone())
	mustMutate(svc, villager, village.CompBotany, "studied", newStudied)

	discoveries, _ := botany.Get("discoveries")
	mustMutate(svc, villager, village.CompBotany, "discoveries", domain.Int(discoveries.I+1))

	return flavor.DiscoveryLine(rng, villager.Name, plant.Name)
}

// BotanyTick - раз в несколько тиков случайный житель изучает случайное
// живое растение. Хост дергает эту функцию по своему расписанию.
func BotanyTick(svc *mutation.Service, world *domain.World, rng *rand.Rand) []string {
	var villagers, plants []*domain.Entity
	for _, e := range world.Entities {
		switch e.Kind {
		case "VILLAGER":
			villagers = append(villagers, e)
		case "PLANT":
			if pc := e.GetComponent(village.CompPlant); pc != nil {
				if stage, _ := pc.Get("stage"); stage.S != village.StageWithered {
					plants = append(plants, e)
				}
			}
		}
	}
	if len(villagers) == 0 || len(plants) == 0 {
		return nil
	}

	v := villagers[rng.Intn(len(villagers))]
	p := plants[rng.Intn(len(plants))]

	if msg := StudyPlant(svc, v, p, rng); msg != "" {
		return []string{msg}
	}
	return nil
}
