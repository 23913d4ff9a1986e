package sim

import (
	"context"
	"sync"
	"time"

	"sensordash/core"
)

// Runner wires the firmware core to the simulated peripherals: the real
// Display and TxBus talk to a Panel, the Sampler reads a Sensor, the
// Actuator drives a Recorder, and goroutines stand in for the timer and
// edge interrupts.
type Runner struct {
	mu sync.Mutex

	sc  *Scenario
	cfg core.Config

	Panel  *Panel
	Sensor *Sensor
	PWM    *Recorder

	bus      *core.TxBus
	counters *core.Counters
	loop     *core.Loop
	halts    *haltRecorder

	onTick func()
	onEdge func()

	begun bool
}

// haltRecorder stands in for the fault indicator. The simulator keeps
// running so the final panel state stays visible.
type haltRecorder struct {
	mu  sync.Mutex
	err error
}

func (h *haltRecorder) Halt(err error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.err == nil {
		h.err = err
	}
}

func (h *haltRecorder) Err() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.err
}

// NewRunner builds a runner for sc. The scenario must be valid.
func NewRunner(sc *Scenario) (*Runner, error) {
	return NewRunnerWithClock(sc, time.Now)
}

// NewRunnerWithClock is NewRunner with an injectable sensor clock.
func NewRunnerWithClock(sc *Scenario, now func() time.Time) (*Runner, error) {
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	cfg := sc.Config()

	panel := NewPanel(uint16(cfg.Address))
	panel.SetNackEvery(sc.Bus.NackEvery)

	r := &Runner{
		sc:       sc,
		cfg:      cfg,
		Panel:    panel,
		Sensor:   NewSensorWithClock(sc.Sensor, cfg.Scale.MaxSample, now),
		PWM:      &Recorder{},
		bus:      core.NewTxBus(panel),
		counters: &core.Counters{},
		halts:    &haltRecorder{},
	}
	r.loop = core.NewLoop(cfg,
		core.NewDisplay(r.bus, cfg.Address),
		core.NewSampler(r.Sensor),
		core.NewActuator(r.PWM),
		r.counters,
		r.halts)
	r.onTick = core.NewTimerHandler(r.counters, cfg.TimerTicksPerCount)
	r.onEdge = core.NewExternalHandler(r.counters)
	return r, nil
}

// Scenario returns the scenario the runner was built from.
func (r *Runner) Scenario() *Scenario {
	return r.sc
}

// Begin runs the loop's startup sequence once.
func (r *Runner) Begin() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.begin()
}

func (r *Runner) begin() error {
	if r.begun {
		return r.loop.Fault()
	}
	r.begun = true
	if err := r.loop.Begin(); err != nil {
		return r.loop.Halt(err)
	}
	return nil
}

// Step runs one loop pass, beginning first if needed. A fault is handed
// to the halter once and returned on every later call.
func (r *Runner) Step() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.begun {
		if err := r.begin(); err != nil {
			return err
		}
	}
	if r.loop.State() == core.StateFault {
		return r.loop.Fault()
	}
	if err := r.loop.Step(); err != nil {
		return r.loop.Halt(err)
	}
	return nil
}

// Tick delivers n timer compare matches.
func (r *Runner) Tick(n int) {
	for i := 0; i < n; i++ {
		r.onTick()
	}
}

// Edge delivers one external falling edge.
func (r *Runner) Edge() {
	r.onEdge()
}

// Run begins, starts the interrupt sources, and steps the loop at the
// scenario interval until ctx is done or the loop faults.
func (r *Runner) Run(ctx context.Context) error {
	if err := r.Begin(); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	var wg sync.WaitGroup
	defer func() {
		cancel()
		wg.Wait()
	}()

	every(ctx, &wg, millis(r.sc.Timer.TickMS), r.onTick)
	if r.sc.External.IntervalMS > 0 {
		every(ctx, &wg, millis(r.sc.External.IntervalMS), r.onEdge)
	}

	if r.sc.Loop.IntervalMS == 0 {
		for ctx.Err() == nil {
			if err := r.Step(); err != nil {
				return err
			}
		}
		return nil
	}

	ticker := time.NewTicker(millis(r.sc.Loop.IntervalMS))
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := r.Step(); err != nil {
				return err
			}
		}
	}
}

func every(ctx context.Context, wg *sync.WaitGroup, d time.Duration, fn func()) {
	wg.Add(1)
	go func() {
		defer wg.Done()
		ticker := time.NewTicker(d)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				fn()
			}
		}
	}()
}

func millis(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}

// Snapshot is a consistent view of the simulated board.
type Snapshot struct {
	Lines       []string
	Panel       PanelState
	Sample      core.ADCValue
	Level       core.PWMValue
	Timer       uint32
	External    uint16
	State       core.LoopState
	Stats       core.Stats
	BusFailures uint32
	BusErr      error
	Offset      int
	Fault       error
}

// Snapshot captures the board state between loop passes.
func (r *Runner) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	timer, external := r.counters.Snapshot()
	return Snapshot{
		Lines:       r.Panel.Lines(),
		Panel:       r.Panel.State(),
		Sample:      r.loop.LastSample(),
		Level:       r.PWM.Value(),
		Timer:       timer,
		External:    external,
		State:       r.loop.State(),
		Stats:       r.loop.Stats(),
		BusFailures: r.bus.Failures(),
		BusErr:      r.bus.Err(),
		Offset:      r.Sensor.Offset(),
		Fault:       r.halts.Err(),
	}
}
