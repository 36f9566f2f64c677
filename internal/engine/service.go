package engine

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	"github.com/lizTheDeveloper/ai-village-sub012/internal/domain"
	"github.com/lizTheDeveloper/ai-village-sub012/internal/engine/handlers"
	"github.com/lizTheDeveloper/ai-village-sub012/internal/engine/handlers/actions"
	"github.com/lizTheDeveloper/ai-village-sub012/internal/engine/handlers/admin"
	"github.com/lizTheDeveloper/ai-village-sub012/internal/mutation"
	"github.com/lizTheDeveloper/ai-village-sub012/internal/network"
	"github.com/lizTheDeveloper/ai-village-sub012/internal/rendercache"
	"github.com/lizTheDeveloper/ai-village-sub012/internal/schema"
	"github.com/lizTheDeveloper/ai-village-sub012/internal/snapshot"
	"github.com/lizTheDeveloper/ai-village-sub012/internal/systems"
	"github.com/lizTheDeveloper/ai-village-sub012/internal/village"
	"github.com/lizTheDeveloper/ai-village-sub012/pkg/api"
	"github.com/lizTheDeveloper/ai-village-sub012/pkg/logger"
)

// GameService - хост симуляции деревни. Один мир, один сервис мутаций,
// один игровой цикл. ВСЕ операции над состоянием (команды клиентов и
// тики систем) выполняются в одной горутине RunGameLoop: это и есть
// гарантия "одна мутация наблюдается целиком или никак".
type GameService struct {
	Config Config

	World     *domain.World
	Schemas   *schema.Registry
	Mutations *mutation.Service
	Snapshots *snapshot.Store
	ViewCache *rendercache.ViewCache

	Logs []api.LogEntry

	CommandChan chan domain.InternalCommand
	Hub         *network.Broadcaster

	rng      *rand.Rand
	handlers map[domain.ActionType]handlers.HandlerFunc
}

func NewService(cfg Config) *GameService {
	// 1. Генерация деревни
	rng := rand.New(rand.NewSource(cfg.Seed))
	world := village.Generate(rng)

	// 2. Схемы: встроенные + кастомные мутаторы
	registry := village.BuiltinSchemas()

	// 3. Сервис мутаций
	mutations := mutation.NewService(mutation.Config{
		Finder:          world,
		Ticks:           world,
		Schemas:         registry,
		HistoryCapacity: cfg.HistoryCapacity,
	})
	mutations.SetDevMode(cfg.DevMode)

	// 4. Кэш представлений подписывается на инвалидацию
	viewCache := rendercache.NewViewCache()
	mutations.RegisterRenderCache(viewCache)

	s := &GameService{
		Config:      cfg,
		World:       world,
		Schemas:     registry,
		Mutations:   mutations,
		Snapshots:   snapshot.NewStore(world),
		ViewCache:   viewCache,
		Logs:        []api.LogEntry{},
		CommandChan: make(chan domain.InternalCommand, 100),
		Hub:         network.NewBroadcaster(),
		rng:         rng,
		handlers:    make(map[domain.ActionType]handlers.HandlerFunc),
	}

	s.registerHandlers()
	return s
}

func (s *GameService) registerHandlers() {
	s.handlers[domain.ActionInit] = handlers.WithEmptyPayload(actions.HandleInit)
	s.handlers[domain.ActionInspect] = handlers.WithPayload(actions.HandleInspect)
	s.handlers[domain.ActionMutate] = handlers.WithPayload(actions.HandleMutate)
	s.handlers[domain.ActionMutateBatch] = handlers.WithPayload(actions.HandleMutateBatch)
	s.handlers[domain.ActionUndo] = handlers.WithEmptyPayload(actions.HandleUndo)
	s.handlers[domain.ActionRedo] = handlers.WithEmptyPayload(actions.HandleRedo)
	s.handlers[domain.ActionSnapshotCreate] = handlers.WithPayload(actions.HandleSnapshotCreate)
	s.handlers[domain.ActionSnapshotRestore] = handlers.WithPayload(actions.HandleSnapshotRestore)
	s.handlers[domain.ActionSnapshotList] = handlers.WithEmptyPayload(actions.HandleSnapshotList)
	s.handlers[domain.ActionSnapshotDelete] = handlers.WithPayload(actions.HandleSnapshotDelete)
	s.handlers[domain.ActionDevMode] = handlers.WithPayload(admin.HandleDevMode)
}

func (s *GameService) Start() {
	go s.RunGameLoop()
}

// GetEntity реализует handlers.EntityFinder
func (s *GameService) GetEntity(id domain.EntityID) *domain.Entity {
	return s.World.GetEntity(id)
}

// ProcessCommand принимает команду от внешнего мира (WebSocket)
func (s *GameService) ProcessCommand(externalCmd api.ClientCommand) {
	actionType := domain.ParseAction(externalCmd.Action)
	if actionType == domain.ActionUnknown {
		logger.Log.Warnf("Unknown action: %s", externalCmd.Action)
		return
	}

	s.CommandChan <- domain.InternalCommand{
		Action:  actionType,
		Token:   externalCmd.Token,
		Payload: externalCmd.Payload,
	}
}

// --- GAME LOOP ---

// RunGameLoop - сердце хоста. Одна горутина, два источника работы:
// тики таймера (системы симуляции) и команды клиентов. Конкурентных
// мутаций мира не существует по построению.
func (s *GameService) RunGameLoop() {
	logger.Log.Info("[LOOP] Village loop started")

	ticker := time.NewTicker(s.Config.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.runTick()

		case cmd := <-s.CommandChan:
			s.executeCommand(cmd)
		}
	}
}

// runTick продвигает логическое время и гоняет системы симуляции
func (s *GameService) runTick() {
	s.World.GlobalTick++

	var logs []string
	logs = append(logs, tag("GROWTH", systems.GrowthTick(s.Mutations, s.World, s.rng))...)
	logs = append(logs, tag("DISEASE", systems.DiseaseTick(s.Mutations, s.World, s.rng))...)
	logs = append(logs, tag("PESTS", systems.PestTick(s.Mutations, s.World, s.rng))...)

	if s.Config.BotanyPeriod > 0 && s.World.GlobalTick%s.Config.BotanyPeriod == 0 {
		logs = append(logs, tag("BOTANY", systems.BotanyTick(s.Mutations, s.World, s.rng))...)
	}

	for _, line := range logs {
		typ, text := splitTag(line)
		s.AddLog(text, typ)
	}

	s.publishUpdate("UPDATE", "", nil)
}

// tag/splitTag - дешевая разметка типов лога без отдельной структуры
func tag(typ string, lines []string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = typ + "|" + line
	}
	return out
}

func splitTag(line string) (string, string) {
	for i := 0; i < len(line); i++ {
		if line[i] == '|' {
			return line[:i], line[i+1:]
		}
	}
	return "INFO", line
}

// executeCommand выполняет хендлер и рассылает результат
func (s *GameService) executeCommand(cmd domain.InternalCommand) {
	handler, ok := s.handlers[cmd.Action]
	if !ok {
		return
	}

	ctx := handlers.Context{
		Finder:    s,
		World:     s.World,
		Mutations: s.Mutations,
		Snapshots: s.Snapshots,
		Schemas:   s.Schemas,
		Token:     cmd.Token,
	}

	result, err := handler(ctx, cmd.Payload)
	if err != nil {
		// Битый payload или провал валидации DTO - отвечаем только автору
		s.Hub.SendTo(cmd.Token, api.ServerResponse{
			Type:  "ERROR",
			Tick:  s.World.GlobalTick,
			Error: err.Error(),
		})
		return
	}

	if result.Msg != "" {
		msgType := result.MsgType
		if msgType == "" {
			msgType = "INFO"
		}
		s.AddLog(result.Msg, msgType)
	}

	// Результат команды уходит автору, обновление мира - всем
	var data json.RawMessage
	if result.Data != nil {
		if raw, err := json.Marshal(result.Data); err == nil {
			data = raw
		} else {
			logger.Log.Errorf("failed to marshal result for %s: %v", cmd.Action, err)
		}
	}

	respType := "RESULT"
	if cmd.Action == domain.ActionInit {
		respType = "INIT"
	}
	s.publishUpdate(respType, cmd.Token, data)
}

// publishUpdate собирает кадр состояния и рассылает его.
// Если указан token, этой сессии дополнительно уходит Data.
func (s *GameService) publishUpdate(respType, token string, data json.RawMessage) {
	base := api.ServerResponse{
		Type:     "UPDATE",
		Tick:     s.World.GlobalTick,
		Entities: s.buildEntityViews(),
		Logs:     s.Logs,
	}

	if token != "" {
		personal := base
		personal.Type = respType
		personal.Data = data
		s.Hub.SendTo(token, personal)

		// Остальным - обычный кадр
		s.Hub.Broadcast(base)
	} else {
		s.Hub.Broadcast(base)
	}

	// Очищаем логи ПОСЛЕ рассылки
	s.Logs = []api.LogEntry{}
}

// buildEntityViews собирает DTO всех сущностей, переиспользуя кэш
// представлений (сбрасывается сервисом мутаций точечно)
func (s *GameService) buildEntityViews() []api.EntityView {
	views := make([]api.EntityView, 0, len(s.World.Entities))
	for _, e := range s.World.Entities {
		entity := e
		v := s.ViewCache.Get(entity.ID, func() any {
			return buildEntityView(entity)
		})
		if view, ok := v.(api.EntityView); ok {
			views = append(views, view)
		}
	}
	return views
}

func buildEntityView(e *domain.Entity) api.EntityView {
	view := api.EntityView{
		ID:   e.ID.String(),
		Kind: e.Kind,
		Name: e.Name,
	}
	view.Pos.X = e.Pos.X
	view.Pos.Y = e.Pos.Y

	view.Components = make(map[string]map[string]any, len(e.Components))
	for typ, comp := range e.Components {
		fields := make(map[string]any, len(comp.Fields))
		for name, v := range comp.Fields {
			fields[name] = valueToAny(v)
		}
		view.Components[typ] = fields
	}
	return view
}

func valueToAny(v domain.Value) any {
	switch v.Kind {
	case domain.KindInt:
		return v.I
	case domain.KindFloat:
		return v.F
	case domain.KindString:
		return v.S
	case domain.KindBool:
		return v.B
	case domain.KindList:
		out := make([]any, len(v.L))
		for i, item := range v.L {
			out[i] = valueToAny(item)
		}
		return out
	}
	return nil
}

func (s *GameService) AddLog(text, logType string) {
	s.Logs = append(s.Logs, api.LogEntry{
		ID:        fmt.Sprintf("%d", time.Now().UnixNano()),
		Text:      text,
		Type:      logType,
		Timestamp: time.Now().UnixMilli(),
	})
}
