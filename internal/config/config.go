package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config - все настройки сервера из переменных окружения.
type Config struct {
	Port string `env:"VILLAGE_PORT" envDefault:"8080"`

	// Seed - мастер-зерно симуляции. 0 означает случайное.
	Seed int64 `env:"VILLAGE_SEED" envDefault:"0"`

	// TickMS - период игрового тика в миллисекундах
	TickMS int `env:"VILLAGE_TICK_MS" envDefault:"500"`

	// UndoCapacity - глубина undo-истории (0 = значение по умолчанию движка)
	UndoCapacity int `env:"VILLAGE_UNDO_CAPACITY" envDefault:"0"`

	// DevMode включает обход флагов mutable на старте
	DevMode bool `env:"VILLAGE_DEV_MODE" envDefault:"false"`

	// SchemaDir - каталог с YAML-схемами компонентов поверх встроенных.
	// Пустая строка или отсутствующий каталог - используем только встроенные.
	SchemaDir string `env:"VILLAGE_SCHEMA_DIR" envDefault:""`

	// Agents - количество headless-агентов, ухаживающих за грядками
	Agents int `env:"VILLAGE_AGENTS" envDefault:"1"`
}

// Load читает конфигурацию из окружения.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
