package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log является глобальным экземпляром логгера для всего приложения.
// До вызова Init пишет в stderr на уровне info.
var Log = logrus.New()

// Options - параметры логгера
type Options struct {
	Level  string    // debug, info, warn, error
	Format string    // json | text
	Output io.Writer // nil - stdout
}

// OptionsFromEnv читает LOG_LEVEL и LOG_FORMAT.
func OptionsFromEnv() Options {
	logLevel, ok := os.LookupEnv("LOG_LEVEL")
	if !ok {
		logLevel = "info"
	}
	return Options{
		Level:  logLevel,
		Format: os.Getenv("LOG_FORMAT"),
	}
}

// Init инициализирует глобальный логгер из окружения, вывод в stdout.
func Init() {
	Configure(OptionsFromEnv())
}

// Configure перенастраивает глобальный логгер.
// Терминальный клиент передает файл: stdout занят экраном.
func Configure(opts Options) {
	Log = logrus.New()

	level, err := logrus.ParseLevel(opts.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	// "json" - для сбора логов, "text" - для удобной разработки.
	if strings.ToLower(opts.Format) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			ForceColors:   opts.Output == nil,
		})
	}

	out := opts.Output
	if out == nil {
		out = os.Stdout
	}
	Log.SetOutput(out)
}
