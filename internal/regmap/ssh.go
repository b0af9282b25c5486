package regmap

import (
	"context"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/cenkalti/backoff"
	"golang.org/x/crypto/ssh"
	"golang.org/x/crypto/ssh/knownhosts"

	"github.com/msm8953-mainline/msm8953ctl/internal/logger"
)

// Runner выполняет команду на целевой плате и возвращает её stdout.
type Runner interface {
	Run(cmd string) (string, error)
}

// SSH — регистры через busybox devmem на целевой плате.
// Адреса Read/Write — смещения от base.
type SSH struct {
	mu     sync.Mutex
	run    Runner
	base   uint32
	closer interface{ Close() error }
}

// NewSSH работает поверх произвольного Runner.
func NewSSH(run Runner, base uint32) *SSH {
	return &SSH{run: run, base: base}
}

// SSHOptions — параметры подключения.
type SSHOptions struct {
	Host       string
	User       string
	KeyFile    string
	KnownHosts string
	Timeout    time.Duration
}

// DialSSH подключается к host (повторы с постоянной паузой, пока плата загружается).
func DialSSH(ctx context.Context, opts SSHOptions, base uint32) (*SSH, error) {
	log := logger.NewLogger("ssh")
	signer, err := loadSSHKey(opts.KeyFile)
	if err != nil {
		return nil, err
	}
	hostKey := ssh.InsecureIgnoreHostKey()
	if opts.KnownHosts != "" {
		hostKey, err = knownhosts.New(opts.KnownHosts)
		if err != nil {
			return nil, fmt.Errorf("known_hosts: %w", err)
		}
	} else {
		log.Warn("known_hosts не задан, ключ хоста %s не проверяется", opts.Host)
	}
	cfg := &ssh.ClientConfig{
		User:            opts.User,
		Auth:            []ssh.AuthMethod{ssh.PublicKeys(signer)},
		HostKeyCallback: hostKey,
		Timeout:         opts.Timeout,
	}
	addr := opts.Host
	if _, _, err := net.SplitHostPort(addr); err != nil {
		addr = net.JoinHostPort(addr, "22")
	}

	var client *ssh.Client
	b := backoff.WithContext(backoff.WithMaxRetries(backoff.NewConstantBackOff(time.Second), 5), ctx)
	err = backoff.Retry(func() error {
		c, err := ssh.Dial("tcp", addr, cfg)
		if err != nil {
			log.Debug("dial %s: %v", addr, err)
			return err
		}
		client = c
		return nil
	}, b)
	if err != nil {
		return nil, fmt.Errorf("ssh dial %s: %w", addr, err)
	}
	s := NewSSH(&clientRunner{c: client}, base)
	s.closer = client
	return s, nil
}

// loadSSHKey читает приватный ключ (PEM/OpenSSH).
func loadSSHKey(path string) (ssh.Signer, error) {
	if path == "" {
		return nil, fmt.Errorf("ssh: key_file not set")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read key: %w", err)
	}
	signer, err := ssh.ParsePrivateKey(data)
	if err != nil {
		return nil, fmt.Errorf("parse key: %w", err)
	}
	return signer, nil
}

type clientRunner struct {
	c *ssh.Client
}

func (r *clientRunner) Run(cmd string) (string, error) {
	sess, err := r.c.NewSession()
	if err != nil {
		return "", err
	}
	defer sess.Close()
	out, err := sess.CombinedOutput(cmd)
	if err != nil {
		return string(out), fmt.Errorf("%s: %w (%s)", cmd, err, strings.TrimSpace(string(out)))
	}
	return string(out), nil
}

// Read выполняет "devmem <addr> 32".
func (s *SSH) Read(addr uint32) (uint32, error) {
	if err := checkAligned(addr); err != nil {
		return 0, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out, err := s.run.Run(fmt.Sprintf("devmem 0x%08x 32", s.base+addr))
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseUint(strings.TrimSpace(out), 0, 32)
	if err != nil {
		return 0, fmt.Errorf("devmem output %q: %w", out, err)
	}
	return uint32(v), nil
}

// Write выполняет "devmem <addr> 32 <val>".
func (s *SSH) Write(addr, val uint32) error {
	if err := checkAligned(addr); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.run.Run(fmt.Sprintf("devmem 0x%08x 32 0x%08x", s.base+addr, val))
	return err
}

// UpdateBits — read-modify-write двумя командами.
func (s *SSH) UpdateBits(addr, mask, val uint32) error {
	return updateBits(s, addr, mask, val)
}

// Close закрывает соединение.
func (s *SSH) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}
