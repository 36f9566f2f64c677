package actions

import (
	"github.com/lizTheDeveloper/ai-village-sub012/internal/engine/handlers"
	"github.com/lizTheDeveloper/ai-village-sub012/pkg/api"
)

// HandleUndo откатывает последнюю обратимую мутацию
func HandleUndo(ctx handlers.Context) (handlers.Result, error) {
	performed := ctx.Mutations.Undo()

	res := handlers.Result{
		Data: api.HistoryResult{
			Performed: performed,
			CanUndo:   ctx.Mutations.CanUndo(),
			CanRedo:   ctx.Mutations.CanRedo(),
		},
	}
	if performed {
		res.Msg = "Последнее изменение откачено."
		res.MsgType = "INFO"
	}
	return res, nil
}

// HandleRedo повторяет откаченную мутацию
func HandleRedo(ctx handlers.Context) (handlers.Result, error) {
	performed := ctx.Mutations.Redo()

	res := handlers.Result{
		Data: api.HistoryResult{
			Performed: performed,
			CanUndo:   ctx.Mutations.CanUndo(),
			CanRedo:   ctx.Mutations.CanRedo(),
		},
	}
	if performed {
		res.Msg = "Изменение применено заново."
		res.MsgType = "INFO"
	}
	return res, nil
}
