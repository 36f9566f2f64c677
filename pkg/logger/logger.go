// Package logger держит глобальный логгер приложения.
package logger

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log - глобальный экземпляр. Инициализируется один раз в main
// (и в TestMain тестовых пакетов, которым нужен вывод).
var Log *logrus.Logger

// Init настраивает логгер по переменным окружения:
// LOG_LEVEL (debug/info/warn/error, по умолчанию info) и
// LOG_FORMAT (json для продакшена, иначе цветной текст).
func Init() {
	Log = logrus.New()
	Log.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	if strings.EqualFold(os.Getenv("LOG_FORMAT"), "json") {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			ForceColors:   true,
		})
	}
}
