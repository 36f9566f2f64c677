package domain

import "math"

type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// DistanceTo - евклидово расстояние (диагональ соседней клетки ~1.41)
func (p Position) DistanceTo(other Position) float64 {
	dx := float64(p.X - other.X)
	dy := float64(p.Y - other.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// Shift возвращает смещенную позицию
func (p Position) Shift(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// World - деревня целиком: реестр сущностей плюс логические часы.
type World struct {
	Width  int `json:"width"`
	Height int `json:"height"`

	// GlobalTick - логическое время. Увеличивается движком раз в тик,
	// снапшоты записывают его как CreatedAt.
	GlobalTick int `json:"globalTick"`

	// Entities - стабильный порядок обхода (для детерминизма систем)
	Entities []*Entity `json:"entities"`

	// SpatialHash: Индекс позиции -> Список сущностей
	// Ключ: Y * Width + X
	// json:"-" означает, что мы НЕ отправляем этот индекс клиенту
	SpatialHash    map[int][]*Entity    `json:"-"`
	EntityRegistry map[EntityID]*Entity `json:"-"`
}

func NewWorld(width, height int) *World {
	return &World{
		Width:          width,
		Height:         height,
		SpatialHash:    make(map[int][]*Entity),
		EntityRegistry: make(map[EntityID]*Entity),
	}
}

// CurrentTick возвращает логическое время (для событий мутаций и снапшотов)
func (w *World) CurrentTick() int {
	return w.GlobalTick
}

func (w *World) GetIndex(x, y int) int {
	return y*w.Width + x
}

// AddEntity регистрирует сущность в реестре и пространственном индексе
func (w *World) AddEntity(e *Entity) {
	w.Entities = append(w.Entities, e)
	w.EntityRegistry[e.ID] = e

	idx := w.GetIndex(e.Pos.X, e.Pos.Y)
	w.SpatialHash[idx] = append(w.SpatialHash[idx], e)
}

// RemoveEntity выписывает сущность отовсюду
func (w *World) RemoveEntity(id EntityID) {
	e, ok := w.EntityRegistry[id]
	if !ok {
		return
	}
	delete(w.EntityRegistry, id)

	for i, other := range w.Entities {
		if other.ID == id {
			w.Entities = append(w.Entities[:i], w.Entities[i+1:]...)
			break
		}
	}

	idx := w.GetIndex(e.Pos.X, e.Pos.Y)
	bucket := w.SpatialHash[idx]
	for i, other := range bucket {
		if other.ID == id {
			w.SpatialHash[idx] = append(bucket[:i], bucket[i+1:]...)
			break
		}
	}
}

// GetEntity возвращает сущность по ID или nil
func (w *World) GetEntity(id EntityID) *Entity {
	return w.EntityRegistry[id]
}

// GetEntitiesAt возвращает всех на клетке (x, y)
func (w *World) GetEntitiesAt(x, y int) []*Entity {
	return w.SpatialHash[w.GetIndex(x, y)]
}

// Neighbors возвращает сущности на 8 соседних клетках.
// Используется системой болезней для заражения соседних грядок.
func (w *World) Neighbors(pos Position) []*Entity {
	var out []*Entity
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			x, y := pos.X+dx, pos.Y+dy
			if x < 0 || x >= w.Width || y < 0 || y >= w.Height {
				continue
			}
			out = append(out, w.GetEntitiesAt(x, y)...)
		}
	}
	return out
}
