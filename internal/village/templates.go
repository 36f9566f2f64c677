package village

import (
	"math/rand"
	"sort"

	"github.com/lizTheDeveloper/ai-village-sub012/internal/domain"
)

// --- ШАБЛОНЫ СОДЕРЖИМОГО ДЕРЕВНИ ---
// Статические данные, из которых билдер собирает живые сущности.

// SpeciesTemplate - вид растения
type SpeciesTemplate struct {
	Species   string
	Name      string // Отображаемое имя
	Hydration int    // Стартовая влажность
	Hardiness int    // Стартовое здоровье
}

// SpeciesTemplates - каталог видов. Ключ = species
var SpeciesTemplates = map[string]SpeciesTemplate{
	"moonberry":  {Species: "moonberry", Name: "Лунная ягода", Hydration: 60, Hardiness: 80},
	"sunroot":    {Species: "sunroot", Name: "Солнечный корень", Hydration: 40, Hardiness: 90},
	"glowcap":    {Species: "glowcap", Name: "Светящийся гриб", Hydration: 80, Hardiness: 60},
	"frostmint":  {Species: "frostmint", Name: "Морозная мята", Hydration: 55, Hardiness: 70},
	"emberleaf":  {Species: "emberleaf", Name: "Тлеющий лист", Hydration: 30, Hardiness: 85},
	"dewflower":  {Species: "dewflower", Name: "Росяной цветок", Hydration: 75, Hardiness: 50},
	"ironvine":   {Species: "ironvine", Name: "Железная лоза", Hydration: 45, Hardiness: 95},
	"whispgrass": {Species: "whispgrass", Name: "Шепчущая трава", Hydration: 50, Hardiness: 65},
}

// SpawnPlant создает сущность растения из шаблона
func (t SpeciesTemplate) SpawnPlant(pos domain.Position, stage string) *domain.Entity {
	e := domain.NewEntity("PLANT", t.Name, pos)

	plant := domain.NewComponent(CompPlant, 1)
	plant.Set("species", domain.String(t.Species))
	plant.Set("stage", domain.String(stage))
	plant.Set("hydration", domain.Int(int64(t.Hydration)))
	plant.Set("health", domain.Int(int64(t.Hardiness)))
	plant.Set("ticksInStage", domain.Int(0))
	e.AddComponent(plant)

	disease := domain.NewComponent(CompDisease, 1)
	disease.Set("infected", domain.Bool(false))
	disease.Set("disease", domain.String(DiseaseNone))
	disease.Set("severity", domain.Int(0))
	disease.Set("daysInfected", domain.Int(0))
	e.AddComponent(disease)

	pests := domain.NewComponent(CompPests, 1)
	pests.Set("pressure", domain.Int(0))
	pests.Set("species", domain.String(""))
	e.AddComponent(pests)

	return e
}

// VillagerTemplate - житель деревни
type VillagerTemplate struct {
	Name  string
	Role  string
	Skill int
}

// VillagerTemplates - стартовое население
var VillagerTemplates = []VillagerTemplate{
	{Name: "Марта", Role: RoleFarmer, Skill: 35},
	{Name: "Тобиас", Role: RoleBotanist, Skill: 50},
	{Name: "Ирен", Role: RoleHealer, Skill: 40},
	{Name: "Освальд", Role: RoleFarmer, Skill: 25},
}

// SpawnVillager создает сущность жителя из шаблона
func (t VillagerTemplate) SpawnVillager(pos domain.Position) *domain.Entity {
	e := domain.NewEntity("VILLAGER", t.Name, pos)

	villager := domain.NewComponent(CompVillager, 1)
	villager.Set("role", domain.String(t.Role))
	villager.Set("energy", domain.Int(100))
	villager.Set("skill", domain.Int(int64(t.Skill)))
	e.AddComponent(villager)

	// Ботаника есть у всех: любой житель может что-то заметить,
	// но шансы ботаника сильно выше (см. systems.StudyPlant)
	botany := domain.NewComponent(CompBotany, 1)
	botany.Set("discoveries", domain.Int(0))
	botany.Set("studied", domain.List())
	e.AddComponent(botany)

	return e
}

// RandomSpecies возвращает случайный вид из каталога
func RandomSpecies(rng *rand.Rand) SpeciesTemplate {
	// Стабильный порядок обхода для детерминизма по сиду
	keys := make([]string, 0, len(SpeciesTemplates))
	for k := range SpeciesTemplates {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return SpeciesTemplates[keys[rng.Intn(len(keys))]]
}
