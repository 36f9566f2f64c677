package rendercache

import (
	"sync"

	"github.com/lizTheDeveloper/ai-village-sub012/internal/domain"
)

// Cache - любой внешний наблюдатель, умеющий сбрасывать свое
// закэшированное представление по ключу (сущность, тип компонента).
// Движок НЕ владеет кэшами: они сами регистрируются и выписываются.
type Cache interface {
	Invalidate(id domain.EntityID, componentType string)
}

// Registry - набор зарегистрированных кэшей для fan-out инвалидации.
// Кэши различаются по идентичности (==), а не по содержимому.
type Registry struct {
	caches []Cache
}

func NewRegistry() *Registry {
	return &Registry{}
}

// Register добавляет кэш. Повторная регистрация того же кэша - no-op.
func (r *Registry) Register(c Cache) {
	for _, existing := range r.caches {
		if existing == c {
			return
		}
	}
	r.caches = append(r.caches, c)
}

// Unregister убирает кэш по идентичности
func (r *Registry) Unregister(c Cache) {
	for i, existing := range r.caches {
		if existing == c {
			r.caches = append(r.caches[:i], r.caches[i+1:]...)
			return
		}
	}
}

// InvalidateAll рассылает инвалидацию всем кэшам
func (r *Registry) InvalidateAll(id domain.EntityID, componentType string) {
	for _, c := range r.caches {
		c.Invalidate(id, componentType)
	}
}

// Count возвращает количество зарегистрированных кэшей
func (r *Registry) Count() int {
	return len(r.caches)
}

// --- КОНКРЕТНЫЙ КЭШ ПРЕДСТАВЛЕНИЙ ---

// ViewCache кэширует собранные DTO сущностей для рассылки клиентам.
// Пересборка EntityView на каждый тик для каждой сущности - дорого,
// поэтому мы держим готовые представления и сбрасываем их точечно
// при мутации (ключ - сущность; тип компонента нам не важен, любая
// мутация меняет представление).
type ViewCache struct {
	mu    sync.Mutex
	views map[domain.EntityID]any
}

func NewViewCache() *ViewCache {
	return &ViewCache{views: make(map[domain.EntityID]any)}
}

// Invalidate реализует Cache
func (c *ViewCache) Invalidate(id domain.EntityID, componentType string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.views, id)
}

// Get возвращает кэшированное представление или собирает новое через build
func (c *ViewCache) Get(id domain.EntityID, build func() any) any {
	c.mu.Lock()
	defer c.mu.Unlock()

	if v, ok := c.views[id]; ok {
		return v
	}
	v := build()
	c.views[id] = v
	return v
}

// Drop выбрасывает представление сущности (при удалении из мира)
func (c *ViewCache) Drop(id domain.EntityID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.views, id)
}

// Size возвращает количество закэшированных представлений
func (c *ViewCache) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.views)
}
