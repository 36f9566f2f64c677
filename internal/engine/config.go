package engine

import "time"

// Config хранит параметры запуска движка
type Config struct {
	// Seed - мастер-зерно. От него зависят генерация деревни и все
	// случайности симуляции (болезни, вредители, броски ботаников).
	Seed int64

	// TickInterval - период игрового тика
	TickInterval time.Duration

	// HistoryCapacity - глубина undo-истории (0 = значение по умолчанию)
	HistoryCapacity int

	// DevMode - стартовое состояние dev-режима
	DevMode bool

	// BotanyPeriod - раз в сколько тиков жители изучают растения
	BotanyPeriod int
}

// NewConfig создает конфиг по умолчанию (случайный сид)
func NewConfig() Config {
	return Config{
		Seed:         time.Now().UnixNano(),
		TickInterval: 500 * time.Millisecond,
		BotanyPeriod: 4,
	}
}
