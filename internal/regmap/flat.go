package regmap

import "sync"

// Flat — регистры в памяти. Используется для dry-run и тестов.
//
// AutoClear имитирует самосбрасывающиеся биты железа (например UPDATE в CMD_RCGR):
// установленные записью биты маски сбрасываются после следующего чтения.
type Flat struct {
	mu        sync.Mutex
	regs      map[uint32]uint32
	autoClear map[uint32]uint32
	pending   map[uint32]uint32
	writes    int
}

// NewFlat создаёт пустое пространство (все регистры читаются как 0).
func NewFlat() *Flat {
	return &Flat{
		regs:      make(map[uint32]uint32),
		autoClear: make(map[uint32]uint32),
		pending:   make(map[uint32]uint32),
	}
}

// AutoClear помечает биты mask регистра addr как самосбрасывающиеся.
func (f *Flat) AutoClear(addr, mask uint32) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.autoClear[addr] |= mask
}

// Read возвращает значение регистра; отложенный сброс применяется после чтения.
func (f *Flat) Read(addr uint32) (uint32, error) {
	if err := checkAligned(addr); err != nil {
		return 0, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	v := f.regs[addr]
	if p := f.pending[addr]; p != 0 {
		f.regs[addr] &^= p
		delete(f.pending, addr)
	}
	return v, nil
}

// Write записывает значение регистра.
func (f *Flat) Write(addr, val uint32) error {
	if err := checkAligned(addr); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.regs[addr] = val
	f.writes++
	if m := f.autoClear[addr] & val; m != 0 {
		f.pending[addr] |= m
	}
	return nil
}

// UpdateBits — read-modify-write под одной блокировкой.
func (f *Flat) UpdateBits(addr, mask, val uint32) error {
	if err := checkAligned(addr); err != nil {
		return err
	}
	f.mu.Lock()
	old := f.regs[addr]
	f.mu.Unlock()
	v := old&^mask | val&mask
	if v == old {
		return nil
	}
	return f.Write(addr, v)
}

// Set записывает значение без учёта AutoClear (подготовка состояния в тестах).
func (f *Flat) Set(addr, val uint32) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.regs[addr] = val
}

// Get возвращает значение без побочных эффектов.
func (f *Flat) Get(addr uint32) uint32 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.regs[addr]
}

// Writes возвращает число выполненных записей.
func (f *Flat) Writes() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.writes
}

// Close ничего не освобождает.
func (f *Flat) Close() error { return nil }
