package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Kind - Внутренний числовой идентификатор типа значения поля.
// Движок мутаций не знает, ЧТО лежит в компоненте. Он знает только,
// какого типа значение, и работает через это перечисление.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindInt
	KindFloat
	KindString
	KindBool
	KindList // Список значений одного типа (пока без вложенных списков)
)

// Маппинг для конвертации YAML/JSON -> Domain
var kindStringToKind = map[string]Kind{
	"int":    KindInt,
	"float":  KindFloat,
	"string": KindString,
	"bool":   KindBool,
	"list":   KindList,
}

// Маппинг для логов Domain -> String
var kindToString = map[Kind]string{
	KindInt:    "int",
	KindFloat:  "float",
	KindString: "string",
	KindBool:   "bool",
	KindList:   "list",
}

// ParseKind конвертирует строку из схемы в Kind
func ParseKind(s string) Kind {
	if val, ok := kindStringToKind[strings.ToLower(s)]; ok {
		return val
	}
	return KindInvalid
}

// String реализует интерфейс Stringer (для fmt.Printf и сообщений об ошибках)
func (k Kind) String() string {
	if val, ok := kindToString[k]; ok {
		return val
	}
	return "invalid"
}

// Value - универсальное значение поля компонента.
// Вместо динамического доступа comp[field] мы храним тэгированный вариант:
// активен только слот, соответствующий Kind. Это позволяет движку мутаций
// читать и писать ЛЮБОЕ поле без кастов и рефлексии.
type Value struct {
	Kind Kind

	I int64
	F float64
	S string
	B bool
	L []Value
}

// --- КОНСТРУКТОРЫ ---

func Int(v int64) Value      { return Value{Kind: KindInt, I: v} }
func Float(v float64) Value  { return Value{Kind: KindFloat, F: v} }
func String(v string) Value  { return Value{Kind: KindString, S: v} }
func Bool(v bool) Value      { return Value{Kind: KindBool, B: v} }
func List(vs ...Value) Value { return Value{Kind: KindList, L: vs} }

// --- МЕТОДЫ ---

// Equal сравнивает два значения поэлементно.
func (v Value) Equal(other Value) bool {
	if v.Kind != other.Kind {
		return false
	}
	switch v.Kind {
	case KindInt:
		return v.I == other.I
	case KindFloat:
		return v.F == other.F
	case KindString:
		return v.S == other.S
	case KindBool:
		return v.B == other.B
	case KindList:
		if len(v.L) != len(other.L) {
			return false
		}
		for i := range v.L {
			if !v.L[i].Equal(other.L[i]) {
				return false
			}
		}
		return true
	}
	return true // Два invalid значения считаем равными
}

// Clone возвращает глубокую копию. Для скаляров это просто копия структуры,
// но списки требуют копирования подложки слайса.
func (v Value) Clone() Value {
	if v.Kind != KindList {
		return v
	}
	out := Value{Kind: KindList, L: make([]Value, len(v.L))}
	for i := range v.L {
		out.L[i] = v.L[i].Clone()
	}
	return out
}

// Number возвращает значение как float64 (для проверки range).
// Работает только для KindInt и KindFloat.
func (v Value) Number() float64 {
	if v.Kind == KindInt {
		return float64(v.I)
	}
	return v.F
}

// Len возвращает длину строки или списка (для проверки maxLength).
func (v Value) Len() int {
	if v.Kind == KindList {
		return len(v.L)
	}
	return len([]rune(v.S))
}

// String для логов
func (v Value) String() string {
	switch v.Kind {
	case KindInt:
		return fmt.Sprintf("%d", v.I)
	case KindFloat:
		return fmt.Sprintf("%g", v.F)
	case KindString:
		return v.S
	case KindBool:
		return fmt.Sprintf("%t", v.B)
	case KindList:
		parts := make([]string, len(v.L))
		for i, item := range v.L {
			parts[i] = item.String()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	}
	return "<invalid>"
}

// --- СЕРИАЛИЗАЦИЯ (Для фронтенда) ---

// MarshalJSON сериализует Value в "голое" JSON-значение (число, строка, ...).
// Клиенту не нужно знать про наш тэгированный вариант.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case KindInt:
		return json.Marshal(v.I)
	case KindFloat:
		return json.Marshal(v.F)
	case KindString:
		return json.Marshal(v.S)
	case KindBool:
		return json.Marshal(v.B)
	case KindList:
		return json.Marshal(v.L)
	}
	return []byte("null"), nil
}

// DecodeValue парсит сырой JSON в Value, руководствуясь ОЖИДАЕМЫМ типом
// из схемы. Мы сознательно не угадываем тип по содержимому JSON:
// число 5 может быть и int, и float, решает схема.
// Несовпадение типа здесь НЕ ошибка валидации - возвращаем KindInvalid,
// и сервис мутаций сам выдаст TypeMismatch с нормальным сообщением.
func DecodeValue(expected Kind, raw json.RawMessage) Value {
	switch expected {
	case KindInt:
		var n int64
		if err := json.Unmarshal(raw, &n); err == nil {
			return Int(n)
		}
	case KindFloat:
		var f float64
		if err := json.Unmarshal(raw, &f); err == nil {
			return Float(f)
		}
	case KindString:
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return String(s)
		}
	case KindBool:
		var b bool
		if err := json.Unmarshal(raw, &b); err == nil {
			return Bool(b)
		}
	case KindList:
		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err == nil {
			out := Value{Kind: KindList, L: make([]Value, 0, len(items))}
			for _, item := range items {
				// Элементы списка у нас всегда строки (теги, названия видов).
				var s string
				if err := json.Unmarshal(item, &s); err != nil {
					return Value{}
				}
				out.L = append(out.L, String(s))
			}
			return out
		}
	}
	return Value{} // KindInvalid
}
