package domain

// --- КОМПОНЕНТЫ ---

// Component - типизированный "мешок" полей, принадлежащий ровно одной сущности.
// Идентифицируется тэгом Type и версией схемы. Движок мутаций НЕ владеет
// данными компонента - он получает ссылку от сущности на время одного вызова.
type Component struct {
	Type    string           `json:"type"`
	Version int              `json:"version"`
	Fields  map[string]Value `json:"fields"`
}

// NewComponent создает пустой компонент указанного типа
func NewComponent(typ string, version int) *Component {
	return &Component{
		Type:    typ,
		Version: version,
		Fields:  make(map[string]Value),
	}
}

// Get возвращает значение поля. Второй результат false, если поля нет.
func (c *Component) Get(field string) (Value, bool) {
	v, ok := c.Fields[field]
	return v, ok
}

// Set записывает значение поля (без какой-либо валидации -
// валидация живет в сервисе мутаций, а не в данных)
func (c *Component) Set(field string, v Value) {
	c.Fields[field] = v
}

// Clone возвращает глубокую копию компонента.
// Критично для снапшотов: захваченные данные не должны меняться,
// когда кто-то мутирует живую сущность.
func (c *Component) Clone() *Component {
	out := &Component{
		Type:    c.Type,
		Version: c.Version,
		Fields:  make(map[string]Value, len(c.Fields)),
	}
	for name, v := range c.Fields {
		out.Fields[name] = v.Clone()
	}
	return out
}
