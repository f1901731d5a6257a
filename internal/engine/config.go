package engine

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// ErrInvalidConfig - параметры запуска не подходят для игры
var ErrInvalidConfig = errors.New("invalid config")

// Config хранит параметры запуска движка
type Config struct {
	// Seed - мастер-зерно. От него зависят карта и все броски.
	// 0 означает "взять из времени".
	Seed int64 `env:"HIVEMIND_SEED"`

	Width  int `env:"HIVEMIND_WIDTH" envDefault:"200"`
	Height int `env:"HIVEMIND_HEIGHT" envDefault:"100"`

	// MessageCapacity - сколько сообщений держит лог (строки экрана 30 - 22 - 3)
	MessageCapacity int `env:"HIVEMIND_MESSAGES" envDefault:"5"`

	// SightRadius и Noise должны быть положительными
	SightRadius int `env:"HIVEMIND_SIGHT" envDefault:"6"`
	Noise       int `env:"HIVEMIND_NOISE" envDefault:"3"`

	// Debug включает читы и панику на нарушениях инвариантов
	Debug   bool   `env:"HIVEMIND_DEBUG"`
	LogFile string `env:"HIVEMIND_LOG_FILE" envDefault:"hivemind.log"`

	// RecordDir - куда сохранять записи партий; пусто - не сохранять
	RecordDir string `env:"HIVEMIND_RECORD_DIR"`
}

// NewConfig создает конфиг по умолчанию (случайный сид)
func NewConfig() Config {
	return Config{
		Seed:            time.Now().UnixNano(),
		Width:           200,
		Height:          100,
		MessageCapacity: 5,
		SightRadius:     6,
		Noise:           3,
		LogFile:         "hivemind.log",
	}
}

// LoadConfig читает конфиг из переменных окружения
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate проверяет, что из конфига можно построить мир
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("map size %dx%d: %w", c.Width, c.Height, ErrInvalidConfig)
	case c.MessageCapacity <= 0:
		return fmt.Errorf("message capacity %d: %w", c.MessageCapacity, ErrInvalidConfig)
	case c.SightRadius <= 0 || c.Noise <= 0:
		return fmt.Errorf("sight %d / noise %d: %w", c.SightRadius, c.Noise, ErrInvalidConfig)
	}
	return nil
}
