package snapshot

import (
	"math/rand"
	"sort"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/sirupsen/logrus"

	"github.com/lizTheDeveloper/ai-village-sub012/internal/domain"
	"github.com/lizTheDeveloper/ai-village-sub012/internal/mutation"
	"github.com/lizTheDeveloper/ai-village-sub012/pkg/logger"
)

// Snapshot - неизменяемый слепок компонентов набора сущностей в момент
// логического времени CreatedAt. Захват делает ГЛУБОКУЮ копию: последующие
// мутации живых сущностей слепок не трогают.
type Snapshot struct {
	ID        string                                         `json:"id"`
	CreatedAt int                                            `json:"createdAt"` // Логический тик
	Metadata  map[string]string                              `json:"metadata,omitempty"`
	Entities  map[domain.EntityID]map[string]*domain.Component `json:"-"`

	// seq - порядковый номер вставки (для стабильной сортировки при
	// одинаковом CreatedAt)
	seq int
}

// Info - метаданные слепка для листинга (без тяжелого payload)
type Info struct {
	ID          string            `json:"id"`
	CreatedAt   int               `json:"createdAt"`
	Metadata    map[string]string `json:"metadata,omitempty"`
	EntityCount int               `json:"entityCount"`
}

// RestoreResult - итог восстановления
type RestoreResult struct {
	EntitiesRestored int               `json:"entitiesRestored"`
	Metadata         map[string]string `json:"metadata,omitempty"`
}

// Store - хранилище слепков. Работает ортогонально сервису мутаций:
// читает и пишет сырые данные компонентов напрямую, минуя одиночную
// валидацию (восстановление возвращает ранее валидные данные).
type Store struct {
	world *domain.World

	snapshots map[string]*Snapshot
	seq       int

	entropy *ulid.MonotonicEntropy
}

func NewStore(world *domain.World) *Store {
	// Монотонная энтропия: ULID-ы строго возрастают даже внутри
	// одной миллисекунды. Криптостойкость тут не нужна.
	src := rand.New(rand.NewSource(time.Now().UnixNano()))
	return &Store{
		world:     world,
		snapshots: make(map[string]*Snapshot),
		entropy:   ulid.Monotonic(src, 0),
	}
}

// Create захватывает компоненты перечисленных сущностей.
// Если ХОТЬ ОДНОЙ сущности нет - весь вызов падает с EntityNotFound
// (в отличие от Restore, создание - все или ничего).
func (s *Store) Create(ids []domain.EntityID, metadata map[string]string) (string, error) {
	// 1. Сначала резолвим всех: частичный захват хуже, чем отказ
	entities := make([]*domain.Entity, 0, len(ids))
	for _, id := range ids {
		e := s.world.GetEntity(id)
		if e == nil {
			return "", mutation.Errf(mutation.CodeEntityNotFound, "", "entity %s not found", id)
		}
		entities = append(entities, e)
	}

	// 2. Глубокое клонирование всех компонентов
	captured := make(map[domain.EntityID]map[string]*domain.Component, len(entities))
	for _, e := range entities {
		comps := make(map[string]*domain.Component, len(e.Components))
		for typ, c := range e.Components {
			comps[typ] = c.Clone()
		}
		captured[e.ID] = comps
	}

	// 3. Регистрация
	s.seq++
	snap := &Snapshot{
		ID:        ulid.MustNew(ulid.Now(), s.entropy).String(),
		CreatedAt: s.world.GlobalTick,
		Metadata:  metadata,
		Entities:  captured,
		seq:       s.seq,
	}
	s.snapshots[snap.ID] = snap

	logger.Log.WithFields(logrus.Fields{
		"snapshot": snap.ID,
		"entities": len(captured),
		"tick":     snap.CreatedAt,
	}).Info("Snapshot created")
	snapshotsCreated.Inc()

	return snap.ID, nil
}

// Restore накатывает захваченные поля поверх живых компонентов.
// Исчезнувшие сущности пропускаются МОЛЧА (плавная деградация, не ошибка)
// и не попадают в счетчик. Типы компонентов, которых на живой сущности
// больше нет, тоже пропускаются. Поля, существующие только на живой
// стороне, сохраняются.
func (s *Store) Restore(id string) (RestoreResult, error) {
	snap, ok := s.snapshots[id]
	if !ok {
		return RestoreResult{}, mutation.Errf(mutation.CodeSnapshotNotFound, "", "snapshot %s not found", id)
	}

	restored := 0
	for entityID, comps := range snap.Entities {
		live := s.world.GetEntity(entityID)
		if live == nil {
			continue // Сущность удалена - пропускаем
		}

		for typ, captured := range comps {
			liveComp := live.GetComponent(typ)
			if liveComp == nil {
				continue
			}
			// Merge: захваченные поля поверх живых. Клонируем при записи,
			// чтобы слепок остался нетронутым для повторных restore.
			for name, v := range captured.Fields {
				liveComp.Set(name, v.Clone())
			}
		}
		restored++
	}

	logger.Log.WithFields(logrus.Fields{
		"snapshot": id,
		"restored": restored,
	}).Info("Snapshot restored")
	snapshotsRestored.Inc()

	return RestoreResult{EntitiesRestored: restored, Metadata: snap.Metadata}, nil
}

// List возвращает метаданные всех слепков: свежие первыми,
// при равном CreatedAt - в порядке вставки.
func (s *Store) List() []Info {
	all := make([]*Snapshot, 0, len(s.snapshots))
	for _, snap := range s.snapshots {
		all = append(all, snap)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].CreatedAt != all[j].CreatedAt {
			return all[i].CreatedAt > all[j].CreatedAt
		}
		return all[i].seq < all[j].seq
	})

	out := make([]Info, len(all))
	for i, snap := range all {
		out[i] = Info{
			ID:          snap.ID,
			CreatedAt:   snap.CreatedAt,
			Metadata:    snap.Metadata,
			EntityCount: len(snap.Entities),
		}
	}
	return out
}

// Get возвращает слепок по ID или nil (для дебаг-эндпоинтов)
func (s *Store) Get(id string) *Snapshot {
	return s.snapshots[id]
}

// Delete удаляет слепок
func (s *Store) Delete(id string) error {
	if _, ok := s.snapshots[id]; !ok {
		return mutation.Errf(mutation.CodeSnapshotNotFound, "", "snapshot %s not found", id)
	}
	delete(s.snapshots, id)
	return nil
}

// Clear выбрасывает все слепки и сбрасывает порядковый счетчик.
// На пустом хранилище - no-op, не ошибка.
func (s *Store) Clear() {
	s.snapshots = make(map[string]*Snapshot)
	s.seq = 0
}

// Count возвращает количество слепков
func (s *Store) Count() int {
	return len(s.snapshots)
}
