package agent

import (
	"encoding/json"
	"fmt"
	"math/rand"

	"github.com/lizTheDeveloper/ai-village-sub012/internal/engine"
	"github.com/lizTheDeveloper/ai-village-sub012/internal/village"
	"github.com/lizTheDeveloper/ai-village-sub012/pkg/api"
	"github.com/lizTheDeveloper/ai-village-sub012/pkg/logger"
	"github.com/lizTheDeveloper/ai-village-sub012/pkg/utils"
)

// Сколько поливает один визит к грядке
const wateringAmount = 20

// Bot - headless-агент, подписанный на обновления наравне с живыми
// клиентами. Смотрит на кадры состояния и ухаживает за самой сухой
// грядкой. Все его правки идут через обычный конвейер мутаций с
// источником "ai" и подчиняются тем же схемам.
type Bot struct {
	Token string

	game *engine.GameService
	rng  *rand.Rand

	// Действуем не чаще, чем раз в actEvery кадров
	actEvery  int
	frameSeen int
}

func NewBot(game *engine.GameService, name string) *Bot {
	token := "bot-" + name
	return &Bot{
		Token:    token,
		game:     game,
		rng:      rand.New(rand.NewSource(utils.StringToSeed(token))),
		actEvery: 6,
	}
}

// Run подписывается на Hub и крутится до закрытия канала
func (b *Bot) Run() {
	updates := b.game.Hub.Register(b.Token)
	logger.Log.Infof("🤖 Agent %s joined the village", b.Token)

	for msg := range updates {
		b.frameSeen++
		if b.frameSeen%b.actEvery != 0 {
			continue
		}
		b.act(msg)
	}
}

// Stop отписывает агента (канал закроется, Run завершится)
func (b *Bot) Stop() {
	b.game.Hub.Unregister(b.Token)
}

// act выбирает самую сухую живую грядку и поливает ее
func (b *Bot) act(msg api.ServerResponse) {
	targetID := ""
	driest := int64(101)

	for _, e := range msg.Entities {
		plant, ok := e.Components[village.CompPlant]
		if !ok {
			continue
		}
		if stage, _ := plant["stage"].(string); stage == village.StageWithered {
			continue
		}
		hydration, ok := plant["hydration"].(int64)
		if !ok {
			continue
		}
		if hydration < driest {
			driest = hydration
			targetID = e.ID
		}
	}

	// Все грядки в порядке - не дергаем движок
	if targetID == "" || driest > 60 {
		return
	}

	watered := driest + wateringAmount
	if watered > 100 {
		watered = 100
	}
	b.mutate(targetID, village.CompPlant, "hydration", watered)
}

func (b *Bot) mutate(targetID, component, field string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		logger.Log.WithError(err).Error("agent: marshal value failed")
		return
	}

	payload, err := json.Marshal(api.MutatePayload{
		TargetID:  targetID,
		Component: component,
		Field:     field,
		Value:     raw,
		Source:    "ai",
	})
	if err != nil {
		logger.Log.WithError(err).Error("agent: marshal payload failed")
		return
	}

	b.game.ProcessCommand(api.ClientCommand{
		Token:   b.Token,
		Action:  "MUTATE",
		Payload: payload,
	})
}

// SpawnCrew запускает n агентов с разными именами
func SpawnCrew(game *engine.GameService, n int) []*Bot {
	bots := make([]*Bot, 0, n)
	for i := 0; i < n; i++ {
		bot := NewBot(game, fmt.Sprintf("gardener-%d", i+1))
		bots = append(bots, bot)
		go bot.Run()
	}
	return bots
}
