package actions

import (
	"fmt"

	"github.com/lizTheDeveloper/ai-village-sub012/internal/domain"
	"github.com/lizTheDeveloper/ai-village-sub012/internal/engine/handlers"
	"github.com/lizTheDeveloper/ai-village-sub012/internal/mutation"
	"github.com/lizTheDeveloper/ai-village-sub012/pkg/api"
)

// HandleMutate - точечная мутация одного поля по запросу клиента/агента
func HandleMutate(ctx handlers.Context, p api.MutatePayload) (handlers.Result, error) {
	target := ctx.Finder.GetEntity(domain.EntityID(p.TargetID))
	if target == nil {
		return handlers.Result{
			Data: api.MutateResult{Success: false, Error: "entity not found", Code: string(mutation.CodeEntityNotFound)},
		}, nil
	}

	value, err := decodeValue(ctx, p)
	if err != nil {
		return handlers.Result{
			Data: api.MutateResult{Success: false, Error: err.Error(), Code: string(mutation.CodeUnknownSchema)},
		}, nil
	}

	source := p.Source
	if source == "" {
		source = domain.SourceUser
	}

	if err := ctx.Mutations.Mutate(target, p.Component, p.Field, value, source); err != nil {
		// Отказ движка - штатный ответ клиенту, не ошибка хендлера
		return handlers.Result{
			Data: api.MutateResult{Success: false, Error: err.Error(), Code: string(mutation.CodeOf(err))},
		}, nil
	}

	return handlers.Result{
		Msg:     fmt.Sprintf("%s: %s.%s = %s", target.Name, p.Component, p.Field, value),
		MsgType: "INFO",
		Data:    api.MutateResult{Success: true},
	}, nil
}

// HandleMutateBatch - пакет мутаций (все или ничего на этапе валидации)
func HandleMutateBatch(ctx handlers.Context, p api.MutateBatchPayload) (handlers.Result, error) {
	reqs := make([]mutation.Request, 0, len(p.Requests))
	results := make([]api.MutateResult, len(p.Requests))

	// Резолвим сущности и декодируем значения. Нерезолвящиеся заявки
	// валят весь пакет так же, как невалидные.
	for _, rp := range p.Requests {
		target := ctx.Finder.GetEntity(domain.EntityID(rp.TargetID))
		source := rp.Source
		if source == "" {
			source = domain.SourceUser
		}

		var value domain.Value
		if target != nil {
			if v, err := decodeValue(ctx, rp); err == nil {
				value = v
			}
		}

		reqs = append(reqs, mutation.Request{
			Entity:        target,
			ComponentType: rp.Component,
			Field:         rp.Field,
			Value:         value,
			Source:        source,
		})
	}

	errs := ctx.Mutations.MutateBatch(reqs)
	applied := 0
	for i, err := range errs {
		if err == nil {
			results[i] = api.MutateResult{Success: true}
			applied++
		} else {
			results[i] = api.MutateResult{Success: false, Error: err.Error(), Code: string(mutation.CodeOf(err))}
		}
	}

	res := handlers.Result{Data: results}
	if applied > 0 {
		res.Msg = fmt.Sprintf("Пакет мутаций применен: %d шт.", applied)
		res.MsgType = "INFO"
	}
	return res, nil
}

// decodeValue превращает сырой JSON в domain.Value, руководствуясь схемой.
// Если схемы или поля нет, отдаем KindInvalid - сервис мутаций вернет
// нормальную ошибку таксономии (UnknownSchema / UnknownField).
func decodeValue(ctx handlers.Context, p api.MutatePayload) (domain.Value, error) {
	sch := ctx.Schemas.Get(p.Component)
	if sch == nil {
		return domain.Value{}, fmt.Errorf("no schema registered for %q", p.Component)
	}
	fs, ok := sch.Field(p.Field)
	if !ok {
		// Поле не объявлено: отдаем невалидное значение, чтобы сервис
		// зарепортил UnknownField через единый путь отказов
		return domain.Value{}, nil
	}
	return domain.DecodeValue(fs.Kind, p.Value), nil
}
