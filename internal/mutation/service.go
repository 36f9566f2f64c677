package mutation

import (
	"github.com/sirupsen/logrus"

	"github.com/lizTheDeveloper/ai-village-sub012/internal/domain"
	"github.com/lizTheDeveloper/ai-village-sub012/internal/rendercache"
	"github.com/lizTheDeveloper/ai-village-sub012/internal/schema"
	"github.com/lizTheDeveloper/ai-village-sub012/pkg/logger"
)

// TickSource отдает текущее логическое время (для полей Tick в событиях)
type TickSource interface {
	CurrentTick() int
}

// EventHandler - подписчик на события мутаций
type EventHandler func(ev domain.MutationEvent)

// FailureHandler - подписчик на отказы
type FailureHandler func(f domain.MutationFailure)

// Service - оркестратор мутаций: единственная легальная дорога к изменению
// полей компонентов. Валидирует, применяет (генерик-командой или кастомным
// мутатором), пишет историю, инвалидирует кэши, рассылает события.
//
// НЕ синглтон: один Service на один мир, создается движком и передается
// системам явно. Сервис рассчитан на однопоточный хост (игровой цикл);
// каждая мутация выполняется от начала до конца без точек приостановки.
type Service struct {
	finder  EntityFinder
	ticks   TickSource
	schemas *schema.Registry
	history *UndoStack
	caches  *rendercache.Registry

	devMode bool

	// Именованные подписчики: On/Off по ключу
	handlers        map[string]EventHandler
	failureHandlers map[string]FailureHandler
}

// Config - зависимости сервиса
type Config struct {
	Finder          EntityFinder
	Ticks           TickSource
	Schemas         *schema.Registry
	HistoryCapacity int
}

func NewService(cfg Config) *Service {
	return &Service{
		finder:          cfg.Finder,
		ticks:           cfg.Ticks,
		schemas:         cfg.Schemas,
		history:         NewUndoStack(cfg.HistoryCapacity),
		caches:          rendercache.NewRegistry(),
		handlers:        make(map[string]EventHandler),
		failureHandlers: make(map[string]FailureHandler),
	}
}

// --- ПУБЛИЧНАЯ ПОВЕРХНОСТЬ ---

// Mutate - главный вход. nil означает успех; любая ошибка - *Error
// с кодом из таксономии. При ошибке состояние мира НЕ тронуто и
// команда в историю НЕ записана.
func (s *Service) Mutate(e *domain.Entity, componentType, field string, v domain.Value, source string) error {
	if source == "" {
		source = domain.SourceSystem
	}

	// 1. Компонент вообще есть?
	comp := e.GetComponent(componentType)
	if comp == nil {
		err := Errf(CodeMissingComponent, field, "entity %s has no %q component", e.ID, componentType)
		s.reportFailure(e.ID, componentType, field, v, source, err)
		return err
	}

	// 2. Схема зарегистрирована?
	sch := s.schemas.Get(componentType)
	if sch == nil {
		err := Errf(CodeUnknownSchema, field, "no schema registered for %q", componentType)
		s.reportFailure(e.ID, componentType, field, v, source, err)
		return err
	}

	// 3. Валидация значения
	if err := ValidateField(sch, field, v, s.devMode); err != nil {
		s.reportFailure(e.ID, componentType, field, v, source, err)
		return err
	}

	fs, _ := sch.Field(field)

	// 4. Кастомный мутатор, если схема его объявила.
	// Мутатор сам отвечает за свою корректность и побочные эффекты:
	// движок не заворачивает его в undo-команду и не перепроверяет
	// результат против схемы. Это осознанная асимметрия: возможность
	// отката - свойство ПОЛЯ, а не движка.
	if fs.MutateVia != "" {
		if m := sch.Mutator(fs.MutateVia); m != nil {
			return s.applyCustom(e, comp, sch, field, v, source, m)
		}
		logger.Log.WithFields(logrus.Fields{
			"component": componentType,
			"field":     field,
			"mutator":   fs.MutateVia,
		}).Warn("schema declares mutateVia but mutator is not registered, falling back to generic path")
	}

	// 5. Генерик-путь: читаем старое значение, строим обратимую команду
	oldValue, _ := comp.Get(field)
	cmd := &Command{
		EntityID:      e.ID,
		ComponentType: componentType,
		Field:         field,
		OldValue:      oldValue.Clone(),
		NewValue:      v.Clone(),
	}
	if err := cmd.Execute(s.finder); err != nil {
		s.reportFailure(e.ID, componentType, field, v, source, err)
		return err
	}

	// 6. История (новая команда стирает redo-ветку)
	s.history.Push(cmd)

	// 7. Инвалидация кэшей
	s.invalidate(e.ID, componentType)

	// 8. Событие
	s.emit(domain.MutationEvent{
		ID:            domain.NewEventID(),
		EntityID:      e.ID,
		ComponentType: componentType,
		Field:         field,
		OldValue:      cmd.OldValue,
		NewValue:      cmd.NewValue,
		Kind:          domain.GenericMutation,
		Tick:          s.ticks.CurrentTick(),
		Timestamp:     domain.NowMillis(),
		Source:        source,
	})
	mutationsApplied.WithLabelValues(source, string(domain.GenericMutation)).Inc()

	// 9. Пост-коммитная проверка компонента целиком. Мутация уже
	// зафиксирована, поэтому провал здесь - предупреждение, не откат.
	if err := sch.Validate(comp); err != nil {
		logger.Log.WithFields(logrus.Fields{
			"entity":    e.ID,
			"component": componentType,
		}).Warnf("component inconsistent after committed mutation: %v", err)
	}

	// 10. Готово
	return nil
}

// applyCustom выполняет кастомный мутатор. Паника внутри мутатора
// перехватывается и конвертируется в CustomMutatorFailed.
func (s *Service) applyCustom(e *domain.Entity, comp *domain.Component, sch *schema.Schema, field string, v domain.Value, source string, m schema.MutatorFunc) (err error) {
	oldValue, _ := comp.Get(field)

	defer func() {
		if r := recover(); r != nil {
			err = Errf(CodeCustomMutatorFail, field, "mutator panicked: %v", r)
			s.reportFailure(e.ID, comp.Type, field, v, source, err)
		}
	}()

	if mErr := m(e, v); mErr != nil {
		err = Errf(CodeCustomMutatorFail, field, "%v", mErr)
		s.reportFailure(e.ID, comp.Type, field, v, source, err)
		return err
	}

	// Кастомная мутация необратима (в историю не пишем), но кэши
	// и подписчиков уведомляем как обычно.
	s.invalidate(e.ID, comp.Type)

	newValue, _ := comp.Get(field)
	s.emit(domain.MutationEvent{
		ID:            domain.NewEventID(),
		EntityID:      e.ID,
		ComponentType: comp.Type,
		Field:         field,
		OldValue:      oldValue,
		NewValue:      newValue,
		Kind:          domain.OpaqueMutation,
		Tick:          s.ticks.CurrentTick(),
		Timestamp:     domain.NowMillis(),
		Source:        source,
	})
	mutationsApplied.WithLabelValues(source, string(domain.OpaqueMutation)).Inc()
	return nil
}

// Request - одна заявка в пакете
type Request struct {
	Entity        *domain.Entity
	ComponentType string
	Field         string
	Value         domain.Value
	Source        string
}

// MutateBatch применяет пакет заявок по принципу "все или ничего"
// на этапе валидации: если хоть одна заявка невалидна, НИ ОДНА не
// применяется, и КАЖДЫЙ результат содержит ошибку (невалидные - свою,
// валидные - BatchAborted).
//
// Если пре-валидация прошла, заявки применяются независимо через Mutate.
// Это НЕ атомарная транзакция: отдельная заявка все еще может упасть по
// причине, невидимой на пре-валидации (например, паника кастомного
// мутатора), и тогда пакет применится частично.
func (s *Service) MutateBatch(reqs []Request) []error {
	results := make([]error, len(reqs))

	// Фаза 1: пре-валидация всех заявок
	anyInvalid := false
	for i, req := range reqs {
		results[i] = s.prevalidate(req)
		if results[i] != nil {
			anyInvalid = true
		}
	}

	if anyInvalid {
		// Валидные заявки тоже получают ошибку: ничего применено не было
		for i := range results {
			if results[i] == nil {
				results[i] = Errf(CodeBatchAborted, reqs[i].Field, "batch aborted: another request failed validation")
			}
		}
		return results
	}

	// Фаза 2: независимое применение
	for i, req := range reqs {
		results[i] = s.Mutate(req.Entity, req.ComponentType, req.Field, req.Value, req.Source)
	}
	return results
}

// prevalidate повторяет шаги 1-3 Mutate без побочных эффектов
func (s *Service) prevalidate(req Request) error {
	if req.Entity == nil {
		return Errf(CodeEntityNotFound, req.Field, "request has no entity")
	}
	if req.Entity.GetComponent(req.ComponentType) == nil {
		return Errf(CodeMissingComponent, req.Field, "entity %s has no %q component", req.Entity.ID, req.ComponentType)
	}
	sch := s.schemas.Get(req.ComponentType)
	if sch == nil {
		return Errf(CodeUnknownSchema, req.Field, "no schema registered for %q", req.ComponentType)
	}
	return ValidateField(sch, req.Field, req.Value, s.devMode)
}

// Undo откатывает последнюю генерик-мутацию. Возвращает false, если
// откатывать нечего. В отличие от исходного дизайна мы инвалидируем
// кэши и рассылаем событие: иначе клиенты остаются со стейлом.
func (s *Service) Undo() bool {
	cmd := s.history.PopUndo()
	if cmd == nil {
		return false
	}
	if err := cmd.Undo(s.finder); err != nil {
		// Сущность могла исчезнуть, пока команда лежала в истории
		logger.Log.WithField("entity", cmd.EntityID).Warnf("undo skipped: %v", err)
		return true
	}
	s.invalidate(cmd.EntityID, cmd.ComponentType)
	s.emit(domain.MutationEvent{
		ID:            domain.NewEventID(),
		EntityID:      cmd.EntityID,
		ComponentType: cmd.ComponentType,
		Field:         cmd.Field,
		OldValue:      cmd.NewValue,
		NewValue:      cmd.OldValue,
		Kind:          domain.GenericMutation,
		Tick:          s.ticks.CurrentTick(),
		Timestamp:     domain.NowMillis(),
		Source:        domain.SourceHistory,
	})
	historyOps.WithLabelValues("undo").Inc()
	return true
}

// Redo повторяет откаченную мутацию
func (s *Service) Redo() bool {
	cmd := s.history.PopRedo()
	if cmd == nil {
		return false
	}
	if err := cmd.Execute(s.finder); err != nil {
		logger.Log.WithField("entity", cmd.EntityID).Warnf("redo skipped: %v", err)
		return true
	}
	s.invalidate(cmd.EntityID, cmd.ComponentType)
	s.emit(domain.MutationEvent{
		ID:            domain.NewEventID(),
		EntityID:      cmd.EntityID,
		ComponentType: cmd.ComponentType,
		Field:         cmd.Field,
		OldValue:      cmd.OldValue,
		NewValue:      cmd.NewValue,
		Kind:          domain.GenericMutation,
		Tick:          s.ticks.CurrentTick(),
		Timestamp:     domain.NowMillis(),
		Source:        domain.SourceHistory,
	})
	historyOps.WithLabelValues("redo").Inc()
	return true
}

// CanUndo / CanRedo - O(1) запросы состояния истории
func (s *Service) CanUndo() bool { return s.history.CanUndo() }
func (s *Service) CanRedo() bool { return s.history.CanRedo() }

// History открывает стек истории (для дебаг-эндпоинтов)
func (s *Service) History() *UndoStack { return s.history }

// SetDevMode переключает dev-режим для всех последующих мутаций.
// Dev-режим ослабляет ТОЛЬКО проверку мутабельности.
func (s *Service) SetDevMode(enabled bool) {
	s.devMode = enabled
	logger.Log.WithField("enabled", enabled).Info("Dev mode toggled")
}

// DevMode возвращает текущее состояние dev-режима
func (s *Service) DevMode() bool { return s.devMode }

// --- ПОДПИСКИ ---

// On регистрирует подписчика под именем. Повторный On с тем же именем
// заменяет старого подписчика.
func (s *Service) On(name string, h EventHandler) {
	s.handlers[name] = h
}

// Off убирает подписчика
func (s *Service) Off(name string) {
	delete(s.handlers, name)
}

// OnFailure регистрирует подписчика на отказы
func (s *Service) OnFailure(name string, h FailureHandler) {
	s.failureHandlers[name] = h
}

// OffFailure убирает подписчика на отказы
func (s *Service) OffFailure(name string) {
	delete(s.failureHandlers, name)
}

// RegisterRenderCache добавляет кэш в fan-out инвалидации
func (s *Service) RegisterRenderCache(c rendercache.Cache) {
	s.caches.Register(c)
}

// UnregisterRenderCache убирает кэш
func (s *Service) UnregisterRenderCache(c rendercache.Cache) {
	s.caches.Unregister(c)
}

// --- ВНУТРЕННОСТИ ---

func (s *Service) invalidate(id domain.EntityID, componentType string) {
	s.caches.InvalidateAll(id, componentType)
	cacheInvalidations.Inc()
}

// emit рассылает событие подписчикам. Паника подписчика ловится и
// логируется - мутатор не должен страдать за чужой баг.
func (s *Service) emit(ev domain.MutationEvent) {
	for name, h := range s.handlers {
		func() {
			defer func() {
				if r := recover(); r != nil {
					logger.Log.WithField("handler", name).Errorf("mutation event handler panicked: %v", r)
				}
			}()
			h(ev)
		}()
	}
}

func (s *Service) reportFailure(id domain.EntityID, componentType, field string, v domain.Value, source string, err error) {
	mutationsFailed.WithLabelValues(string(CodeOf(err))).Inc()

	logger.Log.WithFields(logrus.Fields{
		"entity":    id,
		"component": componentType,
		"field":     field,
		"source":    source,
	}).Warnf("mutation rejected: %v", err)

	f := domain.MutationFailure{
		ID:             domain.NewEventID(),
		EntityID:       id,
		ComponentType:  componentType,
		Field:          field,
		AttemptedValue: v,
		Reason:         err.Error(),
		Tick:           s.ticks.CurrentTick(),
		Timestamp:      domain.NowMillis(),
		Source:         source,
	}
	for name, h := range s.failureHandlers {
		func() {
			defer func() {
				if r := recover(); r != nil {
					logger.Log.WithField("handler", name).Errorf("failure handler panicked: %v", r)
				}
			}()
			h(f)
		}()
	}
}
