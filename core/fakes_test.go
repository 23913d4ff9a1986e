package core

// recordingBus is a BusDriver that keeps every completed frame.
type recordingBus struct {
	frames [][]byte
	cur    []byte
	open   bool

	writes    int // WriteByte calls so far
	failWrite int // 1-based WriteByte call that NACKs; 0 disables
	failStart bool
	stops     int
}

func (b *recordingBus) Start() bool {
	if b.failStart {
		return false
	}
	b.open = true
	b.cur = nil
	return true
}

func (b *recordingBus) WriteByte(v byte) bool {
	b.writes++
	if b.failWrite != 0 && b.writes == b.failWrite {
		return false
	}
	b.cur = append(b.cur, v)
	return true
}

func (b *recordingBus) Stop() {
	b.stops++
	if b.open {
		b.frames = append(b.frames, b.cur)
	}
	b.open = false
	b.cur = nil
}

func (b *recordingBus) reset() {
	b.frames = nil
	b.writes = 0
	b.stops = 0
}

// dataText concatenates the payloads of all data frames.
func (b *recordingBus) dataText() string {
	var out []byte
	for _, f := range b.frames {
		if len(f) >= 2 && f[1] == controlData {
			out = append(out, f[2:]...)
		}
	}
	return string(out)
}

// fakeADC returns queued samples, one per conversion, repeating the last.
type fakeADC struct {
	samples []ADCValue
	next    int
	busy    int // Converting polls before it reports done
	polls   int
	result  ADCValue
}

func (a *fakeADC) StartConversion() {
	a.polls = a.busy
	if len(a.samples) == 0 {
		return
	}
	i := a.next
	if i >= len(a.samples) {
		i = len(a.samples) - 1
	} else {
		a.next++
	}
	a.result = a.samples[i]
}

func (a *fakeADC) Converting() bool {
	if a.polls > 0 {
		a.polls--
		return true
	}
	return false
}

func (a *fakeADC) Result() ADCValue { return a.result }

type fakeCompare struct {
	values []PWMValue
}

func (c *fakeCompare) SetCompare(v PWMValue) { c.values = append(c.values, v) }

type fakeHalter struct {
	errs []error
}

func (h *fakeHalter) Halt(err error) { h.errs = append(h.errs, err) }

type fakePin struct {
	levels []bool
}

func (p *fakePin) Set(high bool) { p.levels = append(p.levels, high) }
