package domain

import "testing"

func makePlant(name string, x, y int) *Entity {
	return NewEntity("PLANT", name, Position{X: x, Y: y})
}

func TestWorldAddRemoveEntity(t *testing.T) {
	w := NewWorld(10, 10)
	e := makePlant("Фикус", 3, 4)

	w.AddEntity(e)

	if w.GetEntity(e.ID) != e {
		t.Error("GetEntity should return the added entity")
	}
	if got := w.GetEntitiesAt(3, 4); len(got) != 1 || got[0] != e {
		t.Errorf("Expected entity at (3,4), got %v", got)
	}

	w.RemoveEntity(e.ID)

	if w.GetEntity(e.ID) != nil {
		t.Error("Entity should be gone from the registry")
	}
	if got := w.GetEntitiesAt(3, 4); len(got) != 0 {
		t.Errorf("Spatial hash should be empty, got %v", got)
	}
	if len(w.Entities) != 0 {
		t.Errorf("Entities slice should be empty, got %d", len(w.Entities))
	}
}

func TestWorldNeighbors(t *testing.T) {
	w := NewWorld(10, 10)
	center := makePlant("center", 5, 5)
	adjacent := makePlant("adjacent", 6, 6)
	far := makePlant("far", 8, 8)
	w.AddEntity(center)
	w.AddEntity(adjacent)
	w.AddEntity(far)

	neighbors := w.Neighbors(center.Pos)
	if len(neighbors) != 1 || neighbors[0] != adjacent {
		t.Errorf("Expected only the adjacent entity, got %v", neighbors)
	}
}

func TestWorldNeighborsAtCorner(t *testing.T) {
	// Cells outside the map must not be probed
	w := NewWorld(10, 10)
	corner := makePlant("corner", 0, 0)
	next := makePlant("next", 1, 0)
	w.AddEntity(corner)
	w.AddEntity(next)

	neighbors := w.Neighbors(corner.Pos)
	if len(neighbors) != 1 || neighbors[0] != next {
		t.Errorf("Expected one neighbor at the corner, got %v", neighbors)
	}
}

func TestCurrentTick(t *testing.T) {
	w := NewWorld(4, 4)
	w.GlobalTick = 17
	if w.CurrentTick() != 17 {
		t.Errorf("CurrentTick() = %d, want 17", w.CurrentTick())
	}
}
