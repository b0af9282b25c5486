package logger

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"
)

func TestQuiet(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)
	defer func() { Quiet = false }()

	Quiet = true
	Info("скрыто %d", 1)
	if buf.Len() != 0 {
		t.Errorf("Info при Quiet не должен писать, получили %q", buf.String())
	}
	Error("видно %d", 2)
	if !strings.Contains(buf.String(), "msm8953ctl: видно 2") {
		t.Errorf("Error должен писать всегда, получили %q", buf.String())
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)

	a := NewLogger("muxdiv")
	b := NewLogger("muxdiv")
	if a != b {
		t.Error("NewLogger с тем же именем должен вернуть тот же логгер")
	}
	if a.Name() != "muxdiv" {
		t.Errorf("Name() = %q", a.Name())
	}

	a.Warn("RCG %s", "pending")
	out := buf.String()
	if !strings.Contains(out, "component=muxdiv") || !strings.Contains(out, "RCG pending") {
		t.Errorf("unexpected output %q", out)
	}
}

func TestErrorf(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)

	sentinel := errors.New("busy")
	err := NewLogger("seq").Errorf("program: %w", sentinel)
	if !errors.Is(err, sentinel) {
		t.Errorf("Errorf должен сохранять цепочку ошибок, got %v", err)
	}
	if !strings.Contains(buf.String(), "program: busy") {
		t.Errorf("ошибка не залогирована: %q", buf.String())
	}
}

func TestNilLogger(t *testing.T) {
	var l *Logger
	l.Info("x")
	l.Error("x")
	if l.Name() != "" || l.WithFields(nil) != nil {
		t.Error("nil Logger должен быть безопасен")
	}
}
