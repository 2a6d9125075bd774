package logger

import (
	"io"
	"log"
	"os"
	"strings"

	"golang.org/x/term"
)

// ColorMode управляет раскраской вывода
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Цвет, если вывод идет в терминал
	ColorAlways ColorMode = "always" // Цвет всегда
	ColorNever  ColorMode = "never"  // Без цвета
)

const (
	colorReset  = "\x1b[0m"
	colorRed    = "\x1b[31m"
	colorYellow = "\x1b[33m"
	colorCyan   = "\x1b[36m"
)

// StdLogger простой логгер на основе стандартного log пакета
type StdLogger struct {
	debugEnabled bool
	color        bool
	out          *log.Logger
}

// NewStdLogger создает новый логгер, пишущий в stderr
func NewStdLogger(debugEnabled bool, mode ColorMode) *StdLogger {
	return NewLogger(os.Stderr, debugEnabled, mode)
}

// NewLogger создает логгер поверх произвольного writer
func NewLogger(w io.Writer, debugEnabled bool, mode ColorMode) *StdLogger {
	return &StdLogger{
		debugEnabled: debugEnabled,
		color:        useColor(w, mode),
		out:          log.New(w, "", log.LstdFlags),
	}
}

// useColor решает, раскрашивать ли вывод
func useColor(w io.Writer, mode ColorMode) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}

	if os.Getenv("NO_COLOR") != "" || strings.EqualFold(os.Getenv("TERM"), "dumb") {
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func (l *StdLogger) printf(prefix, color, msg string, args ...interface{}) {
	if l.color && color != "" {
		prefix = color + prefix + colorReset
	}
	l.out.Printf(prefix+msg, args...)
}

// Info логирует информационное сообщение
func (l *StdLogger) Info(msg string, args ...interface{}) {
	l.printf("", "", msg, args...)
}

// Warn логирует предупреждение
func (l *StdLogger) Warn(msg string, args ...interface{}) {
	l.printf("WARN: ", colorYellow, msg, args...)
}

// Error логирует сообщение об ошибке
func (l *StdLogger) Error(msg string, args ...interface{}) {
	l.printf("ОШИБКА: ", colorRed, msg, args...)
}

// Debug логирует отладочное сообщение
func (l *StdLogger) Debug(msg string, args ...interface{}) {
	if l.debugEnabled {
		l.printf("DEBUG: ", colorCyan, msg, args...)
	}
}
