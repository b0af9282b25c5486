package muxdiv

import "fmt"

// RateRequest — запрос частоты. BestParent == nil — перебрать всех родителей.
// После DetermineRate: Rate — достижимая частота, BestParent/BestIndex — выбранный
// родитель, BestParentRate — частота, которую ему нужно выставить.
type RateRequest struct {
	Rate           uint64
	BestParent     Clock
	BestIndex      int
	BestParentRate uint64
}

// DetermineRate подбирает родителя и делитель для req.Rate. Регистры не трогает.
func (d *Device) DetermineRate(req RateRequest) (RateRequest, error) {
	if len(d.Parents) == 0 {
		return req, fmt.Errorf("%w: %s: no parents", ErrInvalidArgument, d.ClockName)
	}
	if req.BestParent != nil {
		idx := d.parentIndex(req.BestParent)
		if idx < 0 {
			return req, fmt.Errorf("%w: %s: %s is not a parent", ErrInvalidArgument, d.ClockName, req.BestParent.Name())
		}
		req.BestIndex = idx
		return d.determinePinned(req), nil
	}

	var best RateRequest
	found := false
	for i, p := range d.Parents {
		rq := req
		rq.BestParent = p
		rq.BestIndex = i
		if rq.BestParentRate == 0 {
			rq.BestParentRate = p.Rate()
		}
		rq = d.determinePinned(rq)
		// при равенстве остаётся первый кандидат
		if absDiff(req.Rate, rq.Rate) < absDiff(req.Rate, best.Rate) {
			best = rq
			found = true
		}
	}
	if !found {
		return req, fmt.Errorf("%w: %s: no parent can produce %d Hz", ErrInvalidArgument, d.ClockName, req.Rate)
	}
	return best, nil
}

// determinePinned — расчёт для закреплённого родителя req.BestIndex.
// Делитель ищется накоплением rate/2 за шаг, а не делением.
func (d *Device) determinePinned(req RateRequest) RateRequest {
	maxDiv := uint64(d.MaxDiv())
	parent := req.BestParent

	keep := !d.SetRateParent
	if !keep && d.KeepRateMap != nil && d.KeepRateMap[req.BestIndex] {
		keep = true
	}
	if keep {
		req.BestParentRate = parent.Rate()
	}

	div := uint64(2)
	pr := req.Rate
	for pr < req.BestParentRate && div < maxDiv {
		div++
		pr += req.Rate / 2
	}
	if div != 2 || keep {
		pr = req.BestParentRate
	}

	pr = parent.RoundRate(pr)
	req.Rate = divRoundUp(pr*2, div)
	req.BestParentRate = pr
	return req
}

func (d *Device) parentIndex(c Clock) int {
	for i, p := range d.Parents {
		if p == c {
			return i
		}
	}
	return -1
}

// SetRateAndParent выбирает родителя с текущей частотой parentRate (сначала index)
// и наименьший div, при котором parentRate*2/div <= rate, затем программирует пару.
// Возвращает записанный div.
func (d *Device) SetRateAndParent(rate, parentRate uint64, index int) (uint32, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.setRateAndParent(rate, parentRate, index)
}

func (d *Device) setRateAndParent(rate, parentRate uint64, index int) (uint32, error) {
	order := make([]int, 0, len(d.Parents))
	if index >= 0 && index < len(d.Parents) {
		order = append(order, index)
	}
	for i := range d.Parents {
		if i != index {
			order = append(order, i)
		}
	}

	maxDiv := d.MaxDiv()
	for _, i := range order {
		if d.Parents[i].Rate() != parentRate {
			continue
		}
		for div := uint32(2); div <= maxDiv; div++ {
			if multFrac(parentRate, 2, uint64(div)) > rate {
				continue
			}
			if err := d.program(d.ParentMap[i], div); err != nil {
				return 0, err
			}
			return div, nil
		}
	}
	return 0, fmt.Errorf("%w: %s: cannot reach %d Hz from a %d Hz parent", ErrInvalidArgument, d.ClockName, rate, parentRate)
}

// SetRate меняет частоту, оставаясь на текущем родителе (если его частота совпадает).
func (d *Device) SetRate(rate, parentRate uint64) (uint32, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	idx, err := d.parent()
	if err != nil {
		return 0, err
	}
	return d.setRateAndParent(rate, parentRate, idx)
}

// Parent возвращает индекс текущего родителя.
func (d *Device) Parent() (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.parent()
}

func (d *Device) parent() (int, error) {
	src, _, err := d.srcDiv()
	if err != nil {
		return 0, err
	}
	for i, s := range d.ParentMap {
		if s == src {
			return i, nil
		}
	}
	d.logger().Error("%s: Can't find parent with src %d", d.ClockName, src)
	return 0, fmt.Errorf("%w: %s: unknown source %d", ErrInvalidArgument, d.ClockName, src)
}

// SetParent переключает источник, сохраняя текущий делитель.
func (d *Device) SetParent(index int) error {
	if index < 0 || index >= len(d.ParentMap) {
		return fmt.Errorf("%w: %s: parent index %d", ErrInvalidArgument, d.ClockName, index)
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	_, div, err := d.srcDiv()
	if err != nil {
		return err
	}
	return d.program(d.ParentMap[index], div)
}

// RecalcRate — частота на выходе при частоте родителя parentRate.
func (d *Device) RecalcRate(parentRate uint64) (uint64, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, div, err := d.srcDiv()
	if err != nil {
		return 0, err
	}
	return multFrac(parentRate, 2, uint64(div)), nil
}

// Rate — текущая частота через текущего родителя; 0, если её не удалось прочитать.
func (d *Device) Rate() uint64 {
	idx, err := d.Parent()
	if err != nil {
		return 0
	}
	r, err := d.RecalcRate(d.Parents[idx].Rate())
	if err != nil {
		return 0
	}
	return r
}

// RoundRate — ближайшая достижимая частота (с перебором родителей).
func (d *Device) RoundRate(rate uint64) uint64 {
	req, err := d.DetermineRate(RateRequest{Rate: rate})
	if err != nil {
		return 0
	}
	return req.Rate
}
