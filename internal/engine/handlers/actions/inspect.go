package actions

import (
	"fmt"

	"github.com/lizTheDeveloper/ai-village-sub012/internal/domain"
	"github.com/lizTheDeveloper/ai-village-sub012/internal/engine/handlers"
	"github.com/lizTheDeveloper/ai-village-sub012/pkg/api"
)

// FieldInspection - одно поле компонента вместе с его схемой.
// Это то, что видят UI и AI-агенты, когда решают, что им можно мутировать.
type FieldInspection struct {
	Value     any      `json:"value"`
	Kind      string   `json:"kind"`
	Mutable   bool     `json:"mutable"`
	MutateVia string   `json:"mutateVia,omitempty"`
	Min       *float64 `json:"min,omitempty"`
	Max       *float64 `json:"max,omitempty"`
	MaxLength *int     `json:"maxLength,omitempty"`
	Enum      []string `json:"enum,omitempty"`
}

// ComponentInspection - компонент с пометкой о целостности
type ComponentInspection struct {
	Type    string                     `json:"type"`
	Version int                        `json:"version"`
	Fields  map[string]FieldInspection `json:"fields"`

	// Consistent=false значит, что компонент сейчас не проходит
	// собственную схему (например, после dev-мутаций)
	Consistent bool   `json:"consistent"`
	Issue      string `json:"issue,omitempty"`
}

// HandleInspect - схемная интроспекция сущности: значения полей вместе
// с ограничениями и мутабельностью из схемы
func HandleInspect(ctx handlers.Context, p api.InspectPayload) (handlers.Result, error) {
	target := ctx.Finder.GetEntity(domain.EntityID(p.TargetID))
	if target == nil {
		return handlers.Result{Msg: "Entity not found", MsgType: "ERROR"}, nil
	}

	out := make(map[string]ComponentInspection)
	for typ, comp := range target.Components {
		if p.Component != "" && typ != p.Component {
			continue
		}
		out[typ] = inspectComponent(ctx, comp)
	}

	if p.Component != "" && len(out) == 0 {
		return handlers.Result{Msg: fmt.Sprintf("No %q component on %s", p.Component, target.Name), MsgType: "ERROR"}, nil
	}

	return handlers.Result{Data: out}, nil
}

func inspectComponent(ctx handlers.Context, comp *domain.Component) ComponentInspection {
	ci := ComponentInspection{
		Type:       comp.Type,
		Version:    comp.Version,
		Fields:     make(map[string]FieldInspection, len(comp.Fields)),
		Consistent: true,
	}

	sch := ctx.Schemas.Get(comp.Type)

	for name, v := range comp.Fields {
		fi := FieldInspection{Value: valueToAny(v), Kind: v.Kind.String()}
		if sch != nil {
			if fs, ok := sch.Field(name); ok {
				fi.Mutable = fs.Mutable
				fi.MutateVia = fs.MutateVia
				fi.Min = fs.Min
				fi.Max = fs.Max
				fi.MaxLength = fs.MaxLength
				fi.Enum = fs.Enum
			}
		}
		ci.Fields[name] = fi
	}

	if sch != nil {
		if err := sch.Validate(comp); err != nil {
			ci.Consistent = false
			ci.Issue = err.Error()
		}
	}

	return ci
}

// valueToAny разворачивает тэгированный вариант в нативное значение для JSON
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
