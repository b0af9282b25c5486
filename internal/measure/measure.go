// Package measure — измерение частот клоков GCC через debug mux и счётчик CXO/4.
package measure

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/msm8953-mainline/msm8953ctl/internal/logger"
	"github.com/msm8953-mainline/msm8953ctl/internal/regmap"
)

// Регистры GCC
const (
	MuxReg       = 0x74000
	MuxEnable    = 1 << 16
	CtlReg       = 0x74004
	StatusReg    = 0x74008
	PLLTestReg   = 0x7400c
	PLLTestVal   = 0x51a00
	XODiv4CBCR   = 0x30034
	CBCREnable   = 1 << 0
	CtlStart     = 1 << 20
	StatusReady  = 1 << 25
	CountMask    = 1<<25 - 1
	ShortTicks   = 0x1000
	SampleTicks  = 0x10000
	xoDiv4Rate   = 4800000
	DefaultLimit = time.Second
)

var (
	// ErrTimeout — счётчик не перешёл в нужное состояние за Timeout.
	ErrTimeout = errors.New("measure: counter timeout")
	// ErrUnknownClock — имени нет в DebugMux.
	ErrUnknownClock = errors.New("measure: unknown clock")
	// ErrNoAPCSMux — для клока нужен mux APCS, а окно APCS не задано.
	ErrNoAPCSMux = errors.New("measure: apcs debug mux not mapped")
)

// Item — вход debug mux.
type Item struct {
	Name   string
	Value  uint32
	Mult   uint32
	MuxReg uint32
	MuxVal uint32
}

// Result — частота одного клока.
type Result struct {
	Name string
	Hz   uint64
	Err  error
}

// Context — состояние измерений: окна регистров и блокировка счётчика.
type Context struct {
	GCC regmap.Map
	// APCS — окно с физическим адресом APCSBase (может быть nil)
	APCS     regmap.Map
	APCSBase uint32
	Timeout  time.Duration

	mu  sync.Mutex
	log *logger.Logger
}

// NewContext создаёт контекст измерений.
func NewContext(gcc, apcs regmap.Map, apcsBase uint32) *Context {
	return &Context{
		GCC:      gcc,
		APCS:     apcs,
		APCSBase: apcsBase,
		Timeout:  DefaultLimit,
		log:      logger.NewLogger("measure"),
	}
}

// Lookup ищет клок по имени.
func Lookup(name string) (Item, error) {
	for _, it := range DebugMux {
		if it.Name == name {
			return it, nil
		}
	}
	return Item{}, fmt.Errorf("%w: %q", ErrUnknownClock, name)
}

// Rate пересчитывает показание счётчика в Гц.
func Rate(full, ticks, mult uint32) uint64 {
	if mult == 0 {
		mult = 1
	}
	n := (uint64(full)*10 + 15) * xoDiv4Rate
	return n / (uint64(ticks)*10 + 35) * uint64(mult)
}

// Measure измеряет один клок; 0 Гц — клок выключен.
func (c *Context) Measure(it Item) (uint64, error) {
	if it.MuxReg != 0 {
		if c.APCS == nil {
			return 0, fmt.Errorf("%w: %s", ErrNoAPCSMux, it.Name)
		}
		if err := c.APCS.Write(it.MuxReg-c.APCSBase, it.MuxVal); err != nil {
			return 0, fmt.Errorf("apcs mux %s: %w", it.Name, err)
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, err := c.GCC.Read(MuxReg); err != nil {
		return 0, err
	}
	if err := c.GCC.Write(MuxReg, it.Value|MuxEnable); err != nil {
		return 0, err
	}
	hz, err := c.count(it)
	if cerr := c.GCC.UpdateBits(MuxReg, MuxEnable, 0); err == nil {
		err = cerr
	}
	if err != nil {
		return 0, fmt.Errorf("%s: %w", it.Name, err)
	}
	return hz, nil
}

func (c *Context) count(it Item) (uint64, error) {
	time.Sleep(time.Microsecond)
	cbcr, err := c.GCC.Read(XODiv4CBCR)
	if err != nil {
		return 0, err
	}
	if err := c.GCC.Write(XODiv4CBCR, cbcr|CBCREnable); err != nil {
		return 0, err
	}
	// Счётчик не сбрасывается у стоящего клока: короткий и полный замеры совпадут.
	short, err := c.run(ShortTicks)
	var full uint32
	if err == nil {
		full, err = c.run(SampleTicks)
	}
	if werr := c.GCC.Write(XODiv4CBCR, cbcr&^CBCREnable); err == nil {
		err = werr
	}
	if err != nil {
		return 0, err
	}
	var hz uint64
	if full != short {
		hz = Rate(full, SampleTicks, it.Mult)
	}
	return hz, c.GCC.Write(PLLTestReg, PLLTestVal)
}

// run запускает счёт на ticks периодов CXO/4 и возвращает показание.
func (c *Context) run(ticks uint32) (uint32, error) {
	if err := c.GCC.Write(CtlReg, ticks); err != nil {
		return 0, err
	}
	if _, err := c.wait(false); err != nil {
		return 0, err
	}
	if err := c.GCC.Write(CtlReg, CtlStart|ticks); err != nil {
		return 0, err
	}
	v, err := c.wait(true)
	if err != nil {
		return 0, err
	}
	return v & CountMask, nil
}

// wait опрашивает StatusReady до состояния ready или истечения Timeout.
func (c *Context) wait(ready bool) (uint32, error) {
	timeout := c.Timeout
	if timeout <= 0 {
		timeout = DefaultLimit
	}
	deadline := time.Now().Add(timeout)
	for {
		v, err := c.GCC.Read(StatusReg)
		if err != nil {
			return 0, err
		}
		if (v&StatusReady != 0) == ready {
			return v, nil
		}
		if time.Now().After(deadline) {
			return 0, ErrTimeout
		}
	}
}

// MeasureAll измеряет все клоки DebugMux по порядку; ошибки сохраняются в Result.
func (c *Context) MeasureAll() []Result {
	out := make([]Result, 0, len(DebugMux))
	for _, it := range DebugMux {
		hz, err := c.Measure(it)
		if err != nil {
			c.logger().Warn("%s: %v", it.Name, err)
		}
		out = append(out, Result{Name: it.Name, Hz: hz, Err: err})
	}
	return out
}

func (c *Context) logger() *logger.Logger {
	if c.log == nil {
		c.log = logger.NewLogger("measure")
	}
	return c.log
}
