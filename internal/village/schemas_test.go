package village

import (
	"testing"

	"github.com/lizTheDeveloper/ai-village-sub012/internal/domain"
)

func TestSpawnedEntitiesSatisfyBuiltinSchemas(t *testing.T) {
	reg := BuiltinSchemas()

	plant := SpeciesTemplates["moonberry"].SpawnPlant(domain.Position{X: 2, Y: 2}, StageSprout)
	for _, typ := range []string{CompPlant, CompDisease, CompPests} {
		comp := plant.GetComponent(typ)
		if comp == nil {
			t.Fatalf("Spawned plant missing %q component", typ)
		}
		if err := reg.Get(typ).Validate(comp); err != nil {
			t.Errorf("Spawned %q component fails its own schema: %v", typ, err)
		}
	}

	villager := VillagerTemplates[0].SpawnVillager(domain.Position{X: 1, Y: 1})
	for _, typ := range []string{CompVillager, CompBotany} {
		comp := villager.GetComponent(typ)
		if comp == nil {
			t.Fatalf("Spawned villager missing %q component", typ)
		}
		if err := reg.Get(typ).Validate(comp); err != nil {
			t.Errorf("Spawned %q component fails its own schema: %v", typ, err)
		}
	}
}

func TestBuiltinSchemasDeclareAdvanceStage(t *testing.T) {
	reg := BuiltinSchemas()
	plant := reg.Get(CompPlant)
	if plant == nil {
		t.Fatal("plant schema missing")
	}

	stage, ok := plant.Field("stage")
	if !ok {
		t.Fatal("stage field missing")
	}
	if stage.MutateVia != "advanceStage" {
		t.Errorf("stage.MutateVia = %q", stage.MutateVia)
	}
	if plant.Mutator("advanceStage") == nil {
		t.Error("advanceStage mutator not registered")
	}
}

func TestAdvanceStage(t *testing.T) {
	plant := SpeciesTemplates["sunroot"].SpawnPlant(domain.Position{X: 0, Y: 0}, StageSeed)
	comp := plant.GetComponent(CompPlant)
	comp.Set("ticksInStage", domain.Int(12))

	if err := AdvanceStage(plant, domain.String(StageSprout)); err != nil {
		t.Fatalf("Legal transition rejected: %v", err)
	}

	stage, _ := comp.Get("stage")
	if stage.S != StageSprout {
		t.Errorf("stage = %q, want sprout", stage.S)
	}
	ticks, _ := comp.Get("ticksInStage")
	if ticks.I != 0 {
		t.Errorf("ticksInStage should reset on transition, got %d", ticks.I)
	}
}

func TestAdvanceStageRejectsIllegalTransitions(t *testing.T) {
	cases := []struct {
		from, to string
		legal    bool
	}{
		{StageSeed, StageSprout, true},
		{StageSprout, StageMature, true},
		{StageMature, StageFlowering, true},
		{StageSeed, StageMature, false},    // Skipping a stage
		{StageSprout, StageSeed, false},    // Going backwards
		{StageSeed, StageWithered, true},   // Withering from anywhere
		{StageMature, StageWithered, true},
		{StageWithered, StageSeed, false},  // Withered is terminal
		{StageWithered, StageWithered, false},
		{StageSeed, "cooked", false},
	}

	for _, tc := range cases {
		plant := SpeciesTemplates["glowcap"].SpawnPlant(domain.Position{}, tc.from)
		err := AdvanceStage(plant, domain.String(tc.to))
		if tc.legal && err != nil {
			t.Errorf("%s -> %s should be legal: %v", tc.from, tc.to, err)
		}
		if !tc.legal && err == nil {
			t.Errorf("%s -> %s should be rejected", tc.from, tc.to)
		}
	}
}
