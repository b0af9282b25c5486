// Package apcs — контроллер клоков CPU MSM8953: кластеры c0, c1 и шина CCI на mux-div,
// источники gpll0_early и apcs-hfpll-c0. Адреса — смещения от базы APCS (0x0b011000).
package apcs

import (
	"fmt"
	"strings"
	"sync"

	"github.com/msm8953-mainline/msm8953ctl/internal/logger"
	"github.com/msm8953-mainline/msm8953ctl/internal/muxdiv"
	"github.com/msm8953-mainline/msm8953ctl/internal/regmap"
)

// Cluster — один из трёх mux-div блоков APCS.
type Cluster int

const (
	C0 Cluster = iota
	C1
	CCI
)

// Clusters в порядке регистрации.
var Clusters = []Cluster{C0, C1, CCI}

func (c Cluster) String() string {
	switch c {
	case C0:
		return "c0"
	case C1:
		return "c1"
	case CCI:
		return "cci"
	}
	return fmt.Sprintf("cluster(%d)", int(c))
}

// ParseCluster принимает c0, c1, cci (регистр не важен).
func ParseCluster(s string) (Cluster, error) {
	for _, c := range Clusters {
		if strings.EqualFold(s, c.String()) {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown cluster %q", muxdiv.ErrInvalidArgument, s)
}

// Смещения блоков
const (
	C0Offset    = 0x100050
	C1Offset    = 0x000050
	CCIOffset   = 0x1c0050
	HFPLLOffset = 0x105000

	// CCIMinRate — нижняя граница частоты CCI
	CCIMinRate = 320000000
)

var (
	parentMap   = []uint32{4, 5}
	keepRateMap = []bool{true, false}
)

// Options — частоты источников и положение HFPLL.
type Options struct {
	XORate      uint64
	GPLL0Rate   uint64
	HFPLLRate   uint64
	HFPLLOffset uint32
}

// Controller держит три mux-div и HFPLL; SetRate сериализуется.
type Controller struct {
	mu    sync.Mutex
	regs  regmap.Map
	opts  Options
	GPLL0 *muxdiv.Fixed
	HFPLL *PLL
	devs  [3]*muxdiv.Device
	log   *logger.Logger
}

// Result — итог SetRate для одного кластера.
type Result struct {
	Cluster    Cluster
	Rate       uint64
	Parent     string
	ParentRate uint64
	Div        uint32
}

// Status — текущее состояние кластера из регистров.
type Status struct {
	Cluster Cluster
	Src     uint32
	Div     uint32
	Parent  string
	Rate    uint64
	Enabled bool
	RootOff bool
}

// New собирает контроллер поверх окна APCS.
func New(regs regmap.Map, opts Options) (*Controller, error) {
	if opts.XORate == 0 || opts.GPLL0Rate == 0 {
		return nil, fmt.Errorf("%w: apcs: zero source rate", muxdiv.ErrInvalidArgument)
	}
	if opts.HFPLLOffset == 0 {
		opts.HFPLLOffset = HFPLLOffset
	}
	c := &Controller{
		regs:  regs,
		opts:  opts,
		GPLL0: &muxdiv.Fixed{ClockName: "gpll0_early", Hz: opts.GPLL0Rate},
		HFPLL: &PLL{ClockName: "apcs-hfpll-c0", Regs: regs, Offset: opts.HFPLLOffset, XO: opts.XORate},
		log:   logger.NewLogger("apcs"),
	}
	for _, cl := range Clusters {
		var off uint32
		switch cl {
		case C0:
			off = C0Offset
		case C1:
			off = C1Offset
		case CCI:
			off = CCIOffset
		}
		d := &muxdiv.Device{
			ClockName:     "apcs-" + cl.String() + "-clk",
			Regs:          regs,
			RegOffset:     off,
			HidWidth:      5,
			SrcWidth:      3,
			SrcShift:      8,
			Parents:       []muxdiv.Clock{c.GPLL0, c.HFPLL},
			ParentMap:     parentMap,
			KeepRateMap:   keepRateMap,
			SetRateParent: cl != CCI,
			EnableReg:     off + 0x8,
			EnableMask:    1,
		}
		if err := d.Validate(); err != nil {
			return nil, err
		}
		c.devs[cl] = d
	}
	return c, nil
}

// Device возвращает mux-div кластера.
func (c *Controller) Device(cl Cluster) *muxdiv.Device {
	if cl < C0 || cl > CCI {
		return nil
	}
	return c.devs[cl]
}

// Init настраивает HFPLL, выставляет начальную частоту и включает его.
func (c *Controller) Init() error {
	if err := c.HFPLL.Configure(); err != nil {
		return err
	}
	if c.opts.HFPLLRate != 0 {
		if err := c.HFPLL.SetRate(c.opts.HFPLLRate); err != nil {
			return err
		}
	}
	if err := c.HFPLL.Enable(); err != nil {
		return err
	}
	c.log.Debug("%s: %d Hz", c.HFPLL.Name(), c.HFPLL.Rate())
	return nil
}

// DetermineRate рассчитывает частоту для кластера: родитель не закреплён,
// желаемая частота родителя не ниже частоты соседнего кластера (HFPLL общий).
func (c *Controller) DetermineRate(cl Cluster, rate uint64) (muxdiv.RateRequest, error) {
	d := c.Device(cl)
	if d == nil {
		return muxdiv.RateRequest{}, fmt.Errorf("%w: cluster %d", muxdiv.ErrInvalidArgument, int(cl))
	}
	other := c.devs[C0]
	if cl == C0 {
		other = c.devs[C1]
	}
	bpr := other.Rate()
	if rate > bpr {
		bpr = rate
	}
	return d.DetermineRate(muxdiv.RateRequest{Rate: rate, BestParentRate: bpr})
}

// SetRate перестраивает кластер; после c0/c1 CCI следует за max(c0, c1)×2/5.
func (c *Controller) SetRate(cl Cluster, rate uint64) ([]Result, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	res, err := c.setRate(cl, rate)
	if err != nil {
		return nil, err
	}
	out := []Result{res}
	if cl == CCI {
		return out, nil
	}
	cci := c.cciTarget()
	r, err := c.setRate(CCI, cci)
	if err != nil {
		return out, fmt.Errorf("cci follow %d Hz: %w", cci, err)
	}
	return append(out, r), nil
}

func (c *Controller) cciTarget() uint64 {
	top := c.devs[C0].Rate()
	if r := c.devs[C1].Rate(); r > top {
		top = r
	}
	cci := top * 2 / 5
	if cci < CCIMinRate {
		cci = CCIMinRate
	}
	return cci
}

func (c *Controller) setRate(cl Cluster, rate uint64) (Result, error) {
	req, err := c.DetermineRate(cl, rate)
	if err != nil {
		return Result{}, err
	}
	if req.BestParent == muxdiv.Clock(c.HFPLL) && c.HFPLL.Rate() != req.BestParentRate {
		if err := c.HFPLL.SetRate(req.BestParentRate); err != nil {
			return Result{}, err
		}
	}
	div, err := c.devs[cl].SetRateAndParent(req.Rate, req.BestParentRate, req.BestIndex)
	if err != nil {
		return Result{}, err
	}
	c.log.Info("%s: %d Hz (%s %d Hz, div %d)", cl, req.Rate, req.BestParent.Name(), req.BestParentRate, div)
	return Result{
		Cluster:    cl,
		Rate:       req.Rate,
		Parent:     req.BestParent.Name(),
		ParentRate: req.BestParentRate,
		Div:        div,
	}, nil
}

// Rate — текущая частота кластера (0, если конфигурация недоступна).
func (c *Controller) Rate(cl Cluster) uint64 {
	d := c.Device(cl)
	if d == nil {
		return 0
	}
	return d.Rate()
}

// Status читает источник, делитель и частоту кластера.
func (c *Controller) Status(cl Cluster) (Status, error) {
	d := c.Device(cl)
	if d == nil {
		return Status{}, fmt.Errorf("%w: cluster %d", muxdiv.ErrInvalidArgument, int(cl))
	}
	st := Status{Cluster: cl}
	var err error
	if st.Src, st.Div, err = d.SrcDiv(); err != nil {
		return st, err
	}
	idx, err := d.Parent()
	if err != nil {
		return st, err
	}
	p := d.Parents[idx]
	st.Parent = p.Name()
	if st.Rate, err = d.RecalcRate(p.Rate()); err != nil {
		return st, err
	}
	if st.Enabled, err = d.IsEnabled(); err != nil {
		return st, err
	}
	if st.RootOff, err = d.IsRootOff(); err != nil {
		return st, err
	}
	return st, nil
}
