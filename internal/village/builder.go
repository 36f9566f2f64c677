package village

import (
	"math/rand"

	"github.com/lizTheDeveloper/ai-village-sub012/internal/domain"
)

// Размеры деревни по умолчанию
const (
	DefaultWidth  = 24
	DefaultHeight = 16
	DefaultPlants = 18
)

// Generate собирает стартовый мир деревни: грядки с растениями по сетке
// плюс жители. Детерминирован по rng - один сид, одна деревня.
func Generate(rng *rand.Rand) *domain.World {
	world := domain.NewWorld(DefaultWidth, DefaultHeight)

	// 1. Растения на грядках. Грядки идут блоком в центре,
	// через клетку, чтобы соседство имело смысл для болезней.
	planted := 0
	for y := 2; y < DefaultHeight-2 && planted < DefaultPlants; y += 2 {
		for x := 2; x < DefaultWidth-2 && planted < DefaultPlants; x += 2 {
			tmpl := RandomSpecies(rng)

			// Стартовая стадия: большинство - ростки, немного зрелых
			stage := StageSprout
			if rng.Intn(100) < 25 {
				stage = StageMature
			}

			plant := tmpl.SpawnPlant(domain.Position{X: x, Y: y}, stage)
			world.AddEntity(plant)
			planted++
		}
	}

	// 2. Жители по краю поля
	for i, tmpl := range VillagerTemplates {
		pos := domain.Position{X: 1, Y: 1 + i*3}
		world.AddEntity(tmpl.SpawnVillager(pos))
	}

	// 3. Нулевой пациент: одно растение начинает слегка зараженным,
	// чтобы системе болезней было с чего работать
	for _, e := range world.Entities {
		if e.Kind != "PLANT" {
			continue
		}
		if rng.Intn(100) < 60 {
			continue
		}
		disease := e.GetComponent(CompDisease)
		disease.Set("infected", domain.Bool(true))
		disease.Set("disease", domain.String(DiseaseBlight))
		disease.Set("severity", domain.Int(10))
		break
	}

	return world
}
