package actions

import (
	"encoding/json"
	"testing"

	"github.com/lizTheDeveloper/ai-village-sub012/internal/domain"
	"github.com/lizTheDeveloper/ai-village-sub012/internal/engine/handlers"
	"github.com/lizTheDeveloper/ai-village-sub012/internal/mutation"
	"github.com/lizTheDeveloper/ai-village-sub012/internal/snapshot"
	"github.com/lizTheDeveloper/ai-village-sub012/internal/village"
	"github.com/lizTheDeveloper/ai-village-sub012/pkg/api"
)

func newTestContext(t *testing.T) (handlers.Context, *domain.Entity) {
	t.Helper()

	world := domain.NewWorld(10, 10)
	plant := village.SpeciesTemplates["moonberry"].SpawnPlant(domain.Position{X: 2, Y: 2}, village.StageSprout)
	world.AddEntity(plant)

	schemas := village.BuiltinSchemas()
	mutations := mutation.NewService(mutation.Config{
		Finder:  world,
		Ticks:   world,
		Schemas: schemas,
	})

	return handlers.Context{
		Finder:    world,
		World:     world,
		Mutations: mutations,
		Snapshots: snapshot.NewStore(world),
		Schemas:   schemas,
		Token:     "test-session",
	}, plant
}

func mutateResult(t *testing.T, res handlers.Result) api.MutateResult {
	t.Helper()
	mr, ok := res.Data.(api.MutateResult)
	if !ok {
		t.Fatalf("Expected MutateResult, got %T", res.Data)
	}
	return mr
}

func TestHandleMutateSuccess(t *testing.T) {
	ctx, plant := newTestContext(t)

	res, err := HandleMutate(ctx, api.MutatePayload{
		TargetID:  plant.ID.String(),
		Component: village.CompPlant,
		Field:     "hydration",
		Value:     json.RawMessage(`85`),
	})
	if err != nil {
		t.Fatalf("Handler error: %v", err)
	}

	if mr := mutateResult(t, res); !mr.Success {
		t.Fatalf("Expected success, got %+v", mr)
	}
	if v, _ := plant.GetComponent(village.CompPlant).Get("hydration"); v.I != 85 {
		t.Errorf("hydration = %d, want 85", v.I)
	}
	if res.Msg == "" {
		t.Error("Successful mutation should produce a log line")
	}
}

func TestHandleMutateEngineRejectionIsAResult(t *testing.T) {
	ctx, plant := newTestContext(t)

	// An engine rejection is a normal response to the client,
	// not a handler error
	res, err := HandleMutate(ctx, api.MutatePayload{
		TargetID:  plant.ID.String(),
		Component: village.CompPlant,
		Field:     "hydration",
		Value:     json.RawMessage(`999`),
	})
	if err != nil {
		t.Fatalf("Rejection must not be a handler error: %v", err)
	}

	mr := mutateResult(t, res)
	if mr.Success {
		t.Fatal("Expected failure result")
	}
	if mr.Code != string(mutation.CodeRangeViolation) {
		t.Errorf("Code = %s, want RANGE_VIOLATION", mr.Code)
	}
}

func TestHandleMutateUnknownEntity(t *testing.T) {
	ctx, _ := newTestContext(t)

	res, err := HandleMutate(ctx, api.MutatePayload{
		TargetID:  "ghost",
		Component: village.CompPlant,
		Field:     "hydration",
		Value:     json.RawMessage(`10`),
	})
	if err != nil {
		t.Fatalf("Handler error: %v", err)
	}
	if mr := mutateResult(t, res); mr.Success || mr.Code != string(mutation.CodeEntityNotFound) {
		t.Errorf("Expected ENTITY_NOT_FOUND, got %+v", mr)
	}
}

func TestHandleMutateUnknownFieldGoesThroughTaxonomy(t *testing.T) {
	ctx, plant := newTestContext(t)

	res, _ := HandleMutate(ctx, api.MutatePayload{
		TargetID:  plant.ID.String(),
		Component: village.CompPlant,
		Field:     "charisma",
		Value:     json.RawMessage(`5`),
	})
	if mr := mutateResult(t, res); mr.Code != string(mutation.CodeUnknownField) {
		t.Errorf("Expected UNKNOWN_FIELD, got %+v", mr)
	}
}

func TestHandleMutateBatchAborts(t *testing.T) {
	ctx, plant := newTestContext(t)

	res, err := HandleMutateBatch(ctx, api.MutateBatchPayload{Requests: []api.MutatePayload{
		{TargetID: plant.ID.String(), Component: village.CompPlant, Field: "hydration", Value: json.RawMessage(`70`)},
		{TargetID: plant.ID.String(), Component: village.CompPlant, Field: "health", Value: json.RawMessage(`-5`)},
	}})
	if err != nil {
		t.Fatalf("Handler error: %v", err)
	}

	results, ok := res.Data.([]api.MutateResult)
	if !ok {
		t.Fatalf("Expected []MutateResult, got %T", res.Data)
	}
	if len(results) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(results))
	}
	if results[0].Code != string(mutation.CodeBatchAborted) {
		t.Errorf("Valid request should report BATCH_ABORTED, got %+v", results[0])
	}
	if results[1].Code != string(mutation.CodeRangeViolation) {
		t.Errorf("Invalid request should report its own code, got %+v", results[1])
	}

	// Nothing applied; moonberry spawns with hydration 60
	if v, _ := plant.GetComponent(village.CompPlant).Get("hydration"); v.I != 60 {
		t.Errorf("Aborted batch changed state: hydration = %d", v.I)
	}
}

func TestHandleMutateBatchApplies(t *testing.T) {
	ctx, plant := newTestContext(t)

	res, _ := HandleMutateBatch(ctx, api.MutateBatchPayload{Requests: []api.MutatePayload{
		{TargetID: plant.ID.String(), Component: village.CompPlant, Field: "hydration", Value: json.RawMessage(`70`)},
		{TargetID: plant.ID.String(), Component: village.CompPlant, Field: "health", Value: json.RawMessage(`90`)},
	}})

	results := res.Data.([]api.MutateResult)
	for i, r := range results {
		if !r.Success {
			t.Errorf("Request %d failed: %+v", i, r)
		}
	}
	if v, _ := plant.GetComponent(village.CompPlant).Get("health"); v.I != 90 {
		t.Errorf("health = %d, want 90", v.I)
	}
}

func TestHandleUndoRedo(t *testing.T) {
	ctx, plant := newTestContext(t)

	HandleMutate(ctx, api.MutatePayload{
		TargetID:  plant.ID.String(),
		Component: village.CompPlant,
		Field:     "hydration",
		Value:     json.RawMessage(`70`),
	})

	res, _ := HandleUndo(ctx)
	hr := res.Data.(api.HistoryResult)
	if !hr.Performed || hr.CanUndo || !hr.CanRedo {
		t.Errorf("Unexpected history state after undo: %+v", hr)
	}
	if v, _ := plant.GetComponent(village.CompPlant).Get("hydration"); v.I != 60 {
		t.Errorf("hydration = %d, want 60 after undo", v.I)
	}

	res, _ = HandleRedo(ctx)
	hr = res.Data.(api.HistoryResult)
	if !hr.Performed || !hr.CanUndo || hr.CanRedo {
		t.Errorf("Unexpected history state after redo: %+v", hr)
	}

	// Nothing left to redo
	res, _ = HandleRedo(ctx)
	if hr = res.Data.(api.HistoryResult); hr.Performed {
		t.Error("Redo on exhausted history should report Performed=false")
	}
}

func TestSnapshotLifecycle(t *testing.T) {
	ctx, plant := newTestContext(t)

	res, err := HandleSnapshotCreate(ctx, api.SnapshotCreatePayload{
		EntityIDs: []string{plant.ID.String()},
		Metadata:  map[string]string{"label": "checkpoint"},
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	created, ok := res.Data.(api.SnapshotCreateResult)
	if !ok || created.SnapshotID == "" {
		t.Fatalf("Expected snapshot id, got %+v", res.Data)
	}

	plant.GetComponent(village.CompPlant).Set("hydration", domain.Int(1))

	res, _ = HandleSnapshotRestore(ctx, api.SnapshotIDPayload{SnapshotID: created.SnapshotID})
	restored, ok := res.Data.(api.SnapshotRestoreResult)
	if !ok || restored.EntitiesRestored != 1 {
		t.Fatalf("Expected 1 entity restored, got %+v", res.Data)
	}
	if restored.Metadata["label"] != "checkpoint" {
		t.Errorf("Metadata lost: %v", restored.Metadata)
	}
	if v, _ := plant.GetComponent(village.CompPlant).Get("hydration"); v.I != 60 {
		t.Errorf("hydration = %d, want 60 after restore", v.I)
	}

	res, _ = HandleSnapshotList(ctx)
	if infos, ok := res.Data.([]snapshot.Info); !ok || len(infos) != 1 {
		t.Errorf("Expected 1 snapshot in list, got %+v", res.Data)
	}

	if res, _ = HandleSnapshotDelete(ctx, api.SnapshotIDPayload{SnapshotID: created.SnapshotID}); res.MsgType == "ERROR" {
		t.Errorf("Delete failed: %s", res.Msg)
	}
	res, _ = HandleSnapshotDelete(ctx, api.SnapshotIDPayload{SnapshotID: created.SnapshotID})
	if res.MsgType != "ERROR" {
		t.Error("Deleting a deleted snapshot should report an error message")
	}
}

func TestSnapshotCreateUnknownEntity(t *testing.T) {
	ctx, _ := newTestContext(t)

	res, err := HandleSnapshotCreate(ctx, api.SnapshotCreatePayload{EntityIDs: []string{"ghost"}})
	if err != nil {
		t.Fatalf("Handler error: %v", err)
	}
	if res.MsgType != "ERROR" {
		t.Error("Unknown entity should fail the whole create")
	}
}

func TestHandleInspect(t *testing.T) {
	ctx, plant := newTestContext(t)

	res, err := HandleInspect(ctx, api.InspectPayload{TargetID: plant.ID.String()})
	if err != nil {
		t.Fatalf("Handler error: %v", err)
	}

	comps, ok := res.Data.(map[string]ComponentInspection)
	if !ok {
		t.Fatalf("Expected inspection map, got %T", res.Data)
	}
	// A spawned plant carries plant, disease and pests
	for _, typ := range []string{village.CompPlant, village.CompDisease, village.CompPests} {
		if _, ok := comps[typ]; !ok {
			t.Errorf("Missing %q in inspection", typ)
		}
	}

	pi := comps[village.CompPlant]
	if !pi.Consistent {
		t.Errorf("Fresh plant should be consistent: %s", pi.Issue)
	}

	hydration := pi.Fields["hydration"]
	if !hydration.Mutable || hydration.Kind != "int" {
		t.Errorf("hydration inspection wrong: %+v", hydration)
	}
	if hydration.Min == nil || *hydration.Min != 0 || hydration.Max == nil || *hydration.Max != 100 {
		t.Errorf("hydration range missing: %+v", hydration)
	}

	species := pi.Fields["species"]
	if species.Mutable {
		t.Error("species should report as immutable")
	}

	stage := pi.Fields["stage"]
	if stage.MutateVia != "advanceStage" {
		t.Errorf("stage.MutateVia = %q", stage.MutateVia)
	}
	if len(stage.Enum) == 0 {
		t.Error("stage enum missing from inspection")
	}
}

func TestHandleInspectSingleComponent(t *testing.T) {
	ctx, plant := newTestContext(t)

	res, _ := HandleInspect(ctx, api.InspectPayload{TargetID: plant.ID.String(), Component: village.CompDisease})
	comps := res.Data.(map[string]ComponentInspection)
	if len(comps) != 1 {
		t.Errorf("Expected exactly the requested component, got %d", len(comps))
	}

	res, _ = HandleInspect(ctx, api.InspectPayload{TargetID: plant.ID.String(), Component: "ghost"})
	if res.MsgType != "ERROR" {
		t.Error("Missing component should report an error message")
	}
}

func TestHandleInspectFlagsInconsistency(t *testing.T) {
	ctx, plant := newTestContext(t)

	// Corrupt the component behind the engine's back
	plant.GetComponent(village.CompPlant).Set("hydration", domain.Int(500))

	res, _ := HandleInspect(ctx, api.InspectPayload{TargetID: plant.ID.String(), Component: village.CompPlant})
	comps := res.Data.(map[string]ComponentInspection)
	pi := comps[village.CompPlant]
	if pi.Consistent {
		t.Error("Out-of-range field should flag the component as inconsistent")
	}
	if pi.Issue == "" {
		t.Error("Inconsistency should carry a diagnostic")
	}
}
