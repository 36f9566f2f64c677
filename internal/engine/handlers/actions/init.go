package actions

import (
	"github.com/lizTheDeveloper/ai-village-sub012/internal/engine/handlers"
)

// HandleInit - первое сообщение клиента: просто триггерит полный кадр
// состояния (сборку делает движок после выполнения хендлера)
func HandleInit(ctx handlers.Context) (handlers.Result, error) {
	return handlers.Result{
		Msg:     "Добро пожаловать в деревню.",
		MsgType: "INFO",
	}, nil
}
