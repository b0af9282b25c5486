package regmap

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/cenkalti/backoff"
	"github.com/tarm/serial"

	"github.com/msm8953-mainline/msm8953ctl/internal/logger"
)

// Console — регистры через консоль U-Boot: md.l для чтения, mw.l для записи.
// Адреса Read/Write — смещения от base.
type Console struct {
	mu      sync.Mutex
	rw      io.ReadWriter
	r       *bufio.Reader
	prompt  string
	base    uint32
	timeout time.Duration
	closer  io.Closer
	log     *logger.Logger
}

// NewConsole работает поверх готового потока (порт, pty, тестовый fake).
func NewConsole(rw io.ReadWriter, prompt string, base uint32, timeout time.Duration) *Console {
	c := &Console{
		rw:      rw,
		r:       bufio.NewReader(rw),
		prompt:  prompt,
		base:    base,
		timeout: timeout,
		log:     logger.NewLogger("console"),
	}
	if cl, ok := rw.(io.Closer); ok {
		c.closer = cl
	}
	return c
}

// OpenConsole открывает UART и дожидается приглашения U-Boot (с повторами).
func OpenConsole(ctx context.Context, port string, baud int, prompt string, base uint32, timeout time.Duration) (*Console, error) {
	p, err := serial.OpenPort(&serial.Config{
		Name:        port,
		Baud:        baud,
		ReadTimeout: 100 * time.Millisecond,
	})
	if err != nil {
		return nil, fmt.Errorf("serial open %s: %w", port, err)
	}
	c := NewConsole(p, prompt, base, timeout)
	if err := c.Sync(ctx); err != nil {
		p.Close()
		return nil, err
	}
	return c, nil
}

// Sync отправляет пустую строку, пока не появится приглашение.
func (c *Console) Sync(ctx context.Context) error {
	b := backoff.WithContext(backoff.WithMaxRetries(backoff.NewConstantBackOff(200*time.Millisecond), 10), ctx)
	return backoff.Retry(func() error {
		c.mu.Lock()
		defer c.mu.Unlock()
		_, err := c.command("")
		if err != nil {
			c.log.Debug("ожидание приглашения: %v", err)
		}
		return err
	}, b)
}

// command отправляет строку и возвращает вывод до приглашения.
func (c *Console) command(line string) (string, error) {
	if _, err := io.WriteString(c.rw, line+"\n"); err != nil {
		return "", fmt.Errorf("console write: %w", err)
	}
	deadline := time.Now().Add(c.timeout)
	var out bytes.Buffer
	for {
		b, err := c.r.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) && time.Now().Before(deadline) {
				time.Sleep(time.Millisecond)
				continue
			}
			return out.String(), fmt.Errorf("console read: %w", err)
		}
		out.WriteByte(b)
		if bytes.HasSuffix(out.Bytes(), []byte(c.prompt)) {
			return strings.TrimSuffix(out.String(), c.prompt), nil
		}
		if time.Now().After(deadline) {
			return out.String(), fmt.Errorf("console: no prompt after %v", c.timeout)
		}
	}
}

// Read читает регистр командой md.l.
func (c *Console) Read(addr uint32) (uint32, error) {
	if err := checkAligned(addr); err != nil {
		return 0, err
	}
	phys := c.base + addr
	c.mu.Lock()
	defer c.mu.Unlock()
	out, err := c.command(fmt.Sprintf("md.l 0x%08x 1", phys))
	if err != nil {
		return 0, err
	}
	v, ok := ParseMDLine(out, phys)
	if !ok {
		return 0, fmt.Errorf("console: unexpected md.l output %q", out)
	}
	return v, nil
}

// Write записывает регистр командой mw.l.
func (c *Console) Write(addr, val uint32) error {
	if err := checkAligned(addr); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	out, err := c.command(fmt.Sprintf("mw.l 0x%08x 0x%08x", c.base+addr, val))
	if err != nil {
		return err
	}
	if strings.Contains(out, "Unknown command") || strings.Contains(out, "Usage:") {
		return fmt.Errorf("console: mw.l rejected: %q", strings.TrimSpace(out))
	}
	return nil
}

// UpdateBits — read-modify-write двумя командами.
func (c *Console) UpdateBits(addr, mask, val uint32) error {
	return updateBits(c, addr, mask, val)
}

// Close закрывает порт.
func (c *Console) Close() error {
	if c.closer == nil {
		return nil
	}
	return c.closer.Close()
}

// ParseMDLine ищет в выводе md.l строку "aaaaaaaa: vvvvvvvv ..." для адреса addr.
func ParseMDLine(out string, addr uint32) (uint32, bool) {
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		head, rest, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		a, err := strconv.ParseUint(head, 16, 32)
		if err != nil || uint32(a) != addr {
			continue
		}
		fields := strings.Fields(rest)
		if len(fields) == 0 {
			return 0, false
		}
		v, err := strconv.ParseUint(fields[0], 16, 32)
		if err != nil {
			return 0, false
		}
		return uint32(v), true
	}
	return 0, false
}
