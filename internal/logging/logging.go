// internal/logging/logging.go
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// ParseLevel уровень по имени из настроек; неизвестное имя даёт info
func ParseLevel(name string) zerolog.Level {
	switch strings.ToUpper(name) {
	case "TRACE":
		return zerolog.TraceLevel
	case "DEBUG":
		return zerolog.DebugLevel
	case "WARN":
		return zerolog.WarnLevel
	case "ERROR":
		return zerolog.ErrorLevel
	case "DISABLED", "OFF":
		return zerolog.Disabled
	}
	return zerolog.InfoLevel
}

// New логгер: цветной вывод в console и, если file не nil, текст без цвета в file
func New(level string, console, file io.Writer) zerolog.Logger {
	var writers []io.Writer
	if console != nil {
		writers = append(writers, zerolog.ConsoleWriter{Out: console, TimeFormat: time.RFC3339})
	}
	if file != nil {
		writers = append(writers, zerolog.ConsoleWriter{Out: file, TimeFormat: time.RFC3339, NoColor: true})
	}
	if len(writers) == 0 {
		return zerolog.Nop()
	}
	return zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(ParseLevel(level)).
		With().Timestamp().Logger()
}

// OpenFile логгер только в файл path (терминальный интерфейс занимает экран);
// пустой path отключает журнал
func OpenFile(level, path string) (zerolog.Logger, io.Closer, error) {
	return Open(level, nil, path)
}

// Open логгер в console и, если path не пуст, дополнительно в файл
func Open(level string, console io.Writer, path string) (zerolog.Logger, io.Closer, error) {
	if path == "" {
		return New(level, console, nil), io.NopCloser(nil), nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return New(level, console, nil), io.NopCloser(nil), fmt.Errorf("open log file: %w", err)
	}
	return New(level, console, f), f, nil
}
