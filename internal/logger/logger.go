// Package logger — единый вывод логов msm8953ctl с префиксом и учётом quiet.
package logger

import (
	"fmt"
	"io"
	"sync"

	"github.com/sirupsen/logrus"
)

// Quiet при true отключает информационные сообщения (Info); Error выводится всегда.
var Quiet bool

var base = newBase()

func newBase() *logrus.Logger {
	l := logrus.New()
	l.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: false,
		FullTimestamp:    true,
		DisableQuote:     true,
	})
	l.SetLevel(logrus.InfoLevel)
	return l
}

// SetOutput перенаправляет вывод всех логгеров (используется в тестах).
func SetOutput(w io.Writer) {
	base.SetOutput(w)
}

// SetDebug включает отладочные сообщения.
func SetDebug(on bool) {
	if on {
		base.SetLevel(logrus.DebugLevel)
		return
	}
	base.SetLevel(logrus.InfoLevel)
}

// Info выводит сообщение с префиксом "msm8953ctl: ", если Quiet == false.
func Info(format string, args ...interface{}) {
	if Quiet {
		return
	}
	base.Infof("msm8953ctl: "+format, args...)
}

// Error выводит сообщение об ошибке с префиксом "msm8953ctl: " всегда.
func Error(format string, args ...interface{}) {
	base.Errorf("msm8953ctl: "+format, args...)
}

// loggers — именованные логгеры компонентов (name → *Logger).
var loggers sync.Map

// Logger — логгер компонента; имя попадает в поле component.
type Logger struct {
	name  string
	entry *logrus.Entry
}

// NewLogger возвращает логгер компонента name; повторный вызов с тем же именем отдаёт тот же логгер.
func NewLogger(name string) *Logger {
	if l, ok := loggers.Load(name); ok {
		return l.(*Logger)
	}
	l := &Logger{name: name, entry: base.WithField("component", name)}
	actual, _ := loggers.LoadOrStore(name, l)
	return actual.(*Logger)
}

// Name возвращает имя компонента.
func (l *Logger) Name() string {
	if l == nil {
		return ""
	}
	return l.name
}

// Debug выводит отладочное сообщение.
func (l *Logger) Debug(format string, args ...interface{}) {
	if l == nil {
		return
	}
	l.entry.Debugf(format, args...)
}

// Info выводит информационное сообщение, если Quiet == false.
func (l *Logger) Info(format string, args ...interface{}) {
	if l == nil || Quiet {
		return
	}
	l.entry.Infof(format, args...)
}

// Warn выводит предупреждение.
func (l *Logger) Warn(format string, args ...interface{}) {
	if l == nil {
		return
	}
	l.entry.Warnf(format, args...)
}

// Error выводит ошибку.
func (l *Logger) Error(format string, args ...interface{}) {
	if l == nil {
		return
	}
	l.entry.Errorf(format, args...)
}

// WithFields возвращает логгер с дополнительными полями (адрес регистра, имя клока и т.п.).
func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	if l == nil {
		return nil
	}
	return &Logger{name: l.name, entry: l.entry.WithFields(logrus.Fields(fields))}
}

// Errorf форматирует ошибку, логирует её и возвращает как error.
func (l *Logger) Errorf(format string, args ...interface{}) error {
	err := fmt.Errorf(format, args...)
	l.Error("%v", err)
	return err
}
