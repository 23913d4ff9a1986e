package core

// LoopState is the position of the control loop within one pass.
type LoopState uint8

const (
	StateIdle LoopState = iota
	StateSampleCheck
	StateRefreshSensor
	StateCounterCheck
	StateRefreshCounters
	StateFault // terminal
)

func (s LoopState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSampleCheck:
		return "sample-check"
	case StateRefreshSensor:
		return "refresh-sensor"
	case StateCounterCheck:
		return "counter-check"
	case StateRefreshCounters:
		return "refresh-counters"
	case StateFault:
		return "fault"
	default:
		return "unknown"
	}
}

// Stats counts what the loop has done. DisplayFailures records display
// operations that returned false; the loop does not retry them, so each one
// may have left a stale or partial line on the panel.
type Stats struct {
	Iterations       uint32
	SensorRefreshes  uint32
	CounterRefreshes uint32
	DisplayFailures  uint32
}

// String renders the counters as a console status line.
func (s Stats) String() string {
	return "[LOOP] passes=" + utoa(s.Iterations) +
		" sensor=" + utoa(s.SensorRefreshes) +
		" counters=" + utoa(s.CounterRefreshes) +
		" display_failures=" + utoa(s.DisplayFailures)
}

// Loop is the polling control loop. It owns the display, sampler and
// actuator; the counters are shared with the interrupt handlers.
type Loop struct {
	cfg      Config
	display  *Display
	sampler  *Sampler
	actuator *Actuator
	counters *Counters
	halter   Halter

	state LoopState
	fault error
	stats Stats

	lastSample   ADCValue
	lastTimer    uint32
	lastExternal uint16

	sampleWidth int
	unitsWidth  int

	frac   [4]byte // ".FFF"
	spaces [maxDigits]byte
}

// NewLoop wires the loop to its peripherals. halter may be nil, in which
// case Halt only records the fault.
func NewLoop(cfg Config, display *Display, sampler *Sampler, actuator *Actuator, counters *Counters, halter Halter) *Loop {
	l := &Loop{
		cfg:      cfg,
		display:  display,
		sampler:  sampler,
		actuator: actuator,
		counters: counters,
		halter:   halter,
	}
	l.frac[0] = '.'
	for i := range l.spaces {
		l.spaces[i] = ' '
	}
	l.sampleWidth = decimalWidth(uint32(cfg.Scale.MaxSample))
	l.unitsWidth = unitsFieldWidth(cfg.Scale.Units)
	return l
}

// State returns the current state.
func (l *Loop) State() LoopState {
	return l.state
}

// Fault returns the fault that stopped the loop, or nil.
func (l *Loop) Fault() error {
	return l.fault
}

// Stats returns a copy of the loop counters.
func (l *Loop) Stats() Stats {
	return l.stats
}

// LastSample returns the last accepted sample.
func (l *Loop) LastSample() ADCValue {
	return l.lastSample
}

// Begin initializes the display, draws the labels and renders every line
// once, regardless of the change checks.
func (l *Loop) Begin() error {
	if err := l.cfg.Validate(); err != nil {
		return l.raise(&FaultError{Code: FaultConfig, Reason: err.Error()})
	}

	l.check(l.display.Init(), "init")
	l.check(l.display.Clear(), "clear")

	lay := &l.cfg.Layout
	l.drawLabel(lay.SamplePage, lay.SampleLabel)
	l.drawLabel(lay.UnitsPage, lay.UnitsLabel)
	l.drawLabel(lay.TimerPage, lay.TimerLabel)
	l.drawLabel(lay.ExternalPage, lay.ExternalLabel)

	sample := l.sampler.Read()
	if sample > l.cfg.Scale.MaxSample {
		return l.raise(ErrSampleRange)
	}
	l.acceptSample(sample)

	timer, external := l.counters.Snapshot()
	l.refreshCounters(timer, external)

	l.state = StateIdle
	return nil
}

// Step runs one pass: sample check, then counter check. It returns a
// *FaultError when a fatal condition is found; the loop is then in
// StateFault and every later Step returns the same fault.
func (l *Loop) Step() error {
	if l.state == StateFault {
		return l.fault
	}
	l.stats.Iterations++

	l.state = StateSampleCheck
	sample := l.sampler.Read()
	if sample > l.cfg.Scale.MaxSample {
		return l.raise(ErrSampleRange)
	}
	if absDiff(sample, l.lastSample) > l.cfg.Threshold {
		l.state = StateRefreshSensor
		l.acceptSample(sample)
	}

	l.state = StateCounterCheck
	timer, external := l.counters.Snapshot()
	if timer != l.lastTimer || external != l.lastExternal {
		l.state = StateRefreshCounters
		l.refreshCounters(timer, external)
	}

	l.state = StateIdle
	return nil
}

// Run begins and then steps forever. It only returns if the halter does.
func (l *Loop) Run() error {
	if err := l.Begin(); err != nil {
		return l.Halt(err)
	}
	for {
		if err := l.Step(); err != nil {
			return l.Halt(err)
		}
	}
}

// Halt enters the terminal fault state and hands over to the halter. It is
// the single way into StateFault for faults raised outside the loop, such as
// a panic recovered by the target's main.
func (l *Loop) Halt(err error) error {
	if err == nil {
		err = ErrUnknownFault
	}
	l.raise(err)
	FaultPrintln("[FAULT] " + err.Error())
	if l.halter != nil {
		l.halter.Halt(err)
	}
	return err
}

func (l *Loop) raise(err error) error {
	l.state = StateFault
	l.fault = err
	return err
}

func (l *Loop) acceptSample(sample ADCValue) {
	l.actuator.SetLevel(l.cfg.Scale.Level(sample))

	lay := &l.cfg.Layout
	l.check(l.display.SetPosition(lay.ValueColumn, lay.SamplePage), "position")
	l.check(l.display.WriteNumber(uint32(sample)), "sample")
	l.pad(l.sampleWidth - decimalWidth(uint32(sample)))

	whole, frac := l.cfg.Scale.Milli(sample)
	formatFraction(l.frac[1:], frac)
	l.check(l.display.SetPosition(lay.ValueColumn, lay.UnitsPage), "position")
	l.check(l.display.WriteNumber(whole), "units")
	l.check(l.display.WriteBytes(l.frac[:]), "units")
	l.pad(l.unitsWidth - decimalWidth(whole) - len(l.frac))

	l.lastSample = sample
	l.stats.SensorRefreshes++
}

func (l *Loop) refreshCounters(timer uint32, external uint16) {
	lay := &l.cfg.Layout
	l.check(l.display.SetPosition(lay.ValueColumn, lay.TimerPage), "position")
	l.check(l.display.WriteNumber(timer), "timer")
	l.pad(maxDigits - decimalWidth(timer))

	l.check(l.display.SetPosition(lay.ValueColumn, lay.ExternalPage), "position")
	l.check(l.display.WriteNumber(uint32(external)), "external")
	l.pad(decimalWidth(0xFFFF) - decimalWidth(uint32(external)))

	l.lastTimer = timer
	l.lastExternal = external
	l.stats.CounterRefreshes++
}

func (l *Loop) drawLabel(page uint8, label []byte) {
	if len(label) == 0 {
		return
	}
	l.check(l.display.SetPosition(0, page), "position")
	l.check(l.display.WriteBytes(label), "label")
}

// pad blanks the rest of a field so a shorter value does not leave digits
// of the previous one behind.
func (l *Loop) pad(n int) {
	if n <= 0 {
		return
	}
	l.check(l.display.WriteBytes(l.spaces[:n]), "pad")
}

func (l *Loop) check(ok bool, what string) {
	if ok {
		return
	}
	l.stats.DisplayFailures++
	if debugEnabled {
		DebugPrintln("[DISPLAY] write failed: " + what)
	}
}

func absDiff(a, b ADCValue) ADCValue {
	if a > b {
		return a - b
	}
	return b - a
}
