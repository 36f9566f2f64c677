package village

import (
	"github.com/lizTheDeveloper/ai-village-sub012/internal/domain"
	"github.com/lizTheDeveloper/ai-village-sub012/internal/schema"
)

// Имена типов компонентов
const (
	CompPlant    = "plant"
	CompDisease  = "disease"
	CompPests    = "pests"
	CompVillager = "villager"
	CompBotany   = "botany"
)

// Стадии роста растения
const (
	StageSeed      = "seed"
	StageSprout    = "sprout"
	StageMature    = "mature"
	StageFlowering = "flowering"
	StageWithered  = "withered"
)

// PlantStages - легальный порядок стадий (withered терминальна)
var PlantStages = []string{StageSeed, StageSprout, StageMature, StageFlowering, StageWithered}

// Болезни растений
const (
	DiseaseNone   = "none"
	DiseaseBlight = "blight"
	DiseaseRot    = "rot"
	DiseaseMildew = "mildew"
)

// Роли жителей
const (
	RoleFarmer   = "farmer"
	RoleBotanist = "botanist"
	RoleHealer   = "healer"
)

func f(v float64) *float64 { return &v }
func n(v int) *int         { return &v }

// BuiltinSchemas возвращает реестр со встроенными схемами деревни.
// YAML-файлы из SCHEMA_DIR могут их переопределить (см. schema.LoadDir).
func BuiltinSchemas() *schema.Registry {
	reg := schema.NewRegistry()

	reg.Register(&schema.Schema{
		Type:    CompPlant,
		Version: 1,
		Fields: map[string]schema.FieldSchema{
			// Вид растения фиксируется при посадке. Менять можно только
			// в dev-режиме (например, при ручной починке сейва).
			"species": {Kind: domain.KindString, Required: true, Mutable: false, MaxLength: n(48)},
			"stage": {
				Kind: domain.KindString, Required: true, Mutable: true,
				Enum:      PlantStages,
				MutateVia: "advanceStage",
			},
			"hydration":    {Kind: domain.KindInt, Required: true, Mutable: true, Min: f(0), Max: f(100)},
			"health":       {Kind: domain.KindInt, Required: true, Mutable: true, Min: f(0), Max: f(100)},
			"ticksInStage": {Kind: domain.KindInt, Required: true, Mutable: true, Min: f(0)},
		},
	})

	reg.Register(&schema.Schema{
		Type:    CompDisease,
		Version: 1,
		Fields: map[string]schema.FieldSchema{
			"infected": {Kind: domain.KindBool, Required: true, Mutable: true},
			"disease": {
				Kind: domain.KindString, Required: true, Mutable: true,
				Enum: []string{DiseaseNone, DiseaseBlight, DiseaseRot, DiseaseMildew},
			},
			"severity":     {Kind: domain.KindInt, Required: true, Mutable: true, Min: f(0), Max: f(100)},
			"daysInfected": {Kind: domain.KindInt, Required: true, Mutable: true, Min: f(0)},
		},
	})

	reg.Register(&schema.Schema{
		Type:    CompPests,
		Version: 1,
		Fields: map[string]schema.FieldSchema{
			"pressure": {Kind: domain.KindInt, Required: true, Mutable: true, Min: f(0), Max: f(100)},
			"species":  {Kind: domain.KindString, Mutable: true, MaxLength: n(24)},
		},
	})

	reg.Register(&schema.Schema{
		Type:    CompVillager,
		Version: 1,
		Fields: map[string]schema.FieldSchema{
			// Роль дается при рождении жителя
			"role":   {Kind: domain.KindString, Required: true, Mutable: false, Enum: []string{RoleFarmer, RoleBotanist, RoleHealer}},
			"energy": {Kind: domain.KindInt, Required: true, Mutable: true, Min: f(0), Max: f(100)},
			"skill":  {Kind: domain.KindInt, Required: true, Mutable: true, Min: f(1), Max: f(100)},
		},
	})

	reg.Register(&schema.Schema{
		Type:    CompBotany,
		Version: 1,
		Fields: map[string]schema.FieldSchema{
			"discoveries": {Kind: domain.KindInt, Required: true, Mutable: true, Min: f(0)},
			"studied":     {Kind: domain.KindList, Mutable: true, MaxLength: n(64)},
		},
	})

	RegisterMutators(reg)
	return reg
}
