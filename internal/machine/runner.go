package machine

import (
	"context"
	"image"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/vga-pong/internal/core"
)

// Runner drives a Machine from the host clock. Inputs may be set from any
// goroutine; readers get immutable Status values and finished pictures.
type Runner struct {
	mu      sync.Mutex // guards machine and monitor
	machine *Machine
	monitor *Monitor

	tickRate      int
	ticksPerFrame atomic.Int64
	inputs        atomic.Uint32
	paused        atomic.Bool

	status  atomic.Pointer[Status]
	frames  chan *image.NRGBA
	dropped atomic.Uint64

	logger *log.Logger
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithFrames attaches a Monitor and offers its pictures on a channel with
// the given buffer size. Without it the Runner does not build pictures.
func WithFrames(buffer int) RunnerOption {
	return func(r *Runner) {
		if buffer < 1 {
			buffer = 1
		}
		r.frames = make(chan *image.NRGBA, buffer)
		r.monitor = NewMonitor(r.offer)
	}
}

// NewRunner wraps m. cfg supplies the host tick rate and the batch size; a
// nil logger discards output.
func NewRunner(m *Machine, cfg core.RuntimeConfig, logger *log.Logger, opts ...RunnerOption) *Runner {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	cfg.TickRate = min(cfg.TickRate, core.MaxTickRate)
	r := &Runner{
		machine:  m,
		tickRate: cfg.TickRate,
		logger:   logger,
	}
	r.SetTicksPerFrame(cfg.TicksPerFrame)
	for _, opt := range opts {
		opt(r)
	}
	st := m.Status()
	r.status.Store(&st)
	return r
}

// Run steps the machine once per host tick until ctx is done.
func (r *Runner) Run(ctx context.Context) error {
	interval := time.Second / time.Duration(r.tickRate)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	r.logger.Debug("runner started", "design", r.machine.Design().ID(), "interval", interval, "ticks_per_frame", r.TicksPerFrame())
	for {
		select {
		case <-ctx.Done():
			st := r.Status()
			r.logger.Debug("runner stopped", "system_ticks", st.Stats.SystemTicks, "frames", st.Stats.Frames, "dropped", r.dropped.Load())
			return nil
		case <-ticker.C:
			r.Step()
		}
	}
}

// Step executes one batch of system ticks unless the host clock is paused,
// then publishes the new status.
func (r *Runner) Step() {
	if r.paused.Load() {
		return
	}
	r.Advance(int(r.ticksPerFrame.Load()))
}

// Advance executes n system ticks regardless of the pause state.
func (r *Runner) Advance(n int) {
	in := core.Inputs(r.inputs.Load())

	r.mu.Lock()
	defer r.mu.Unlock()
	for i := 0; i < n; i++ {
		out, ok := r.machine.Tick(in)
		if ok && r.monitor != nil {
			r.monitor.Sample(out)
		}
	}
	st := r.machine.Status()
	r.status.Store(&st)
}

// offer hands a picture to the channel, dropping it when the reader lags.
func (r *Runner) offer(img *image.NRGBA) {
	select {
	case r.frames <- img:
	default:
		if n := r.dropped.Add(1); n%600 == 1 {
			r.logger.Debug("viewer is behind, dropping frames", "dropped", n)
		}
	}
}

// SetInputs latches the input levels used by the following batches.
func (r *Runner) SetInputs(in core.Inputs) {
	r.inputs.Store(uint32(in))
}

// Inputs returns the latched input levels.
func (r *Runner) Inputs() core.Inputs {
	return core.Inputs(r.inputs.Load())
}

// Pause freezes or releases the host clock.
func (r *Runner) Pause(p bool) {
	r.paused.Store(p)
}

// Paused reports whether the host clock is frozen.
func (r *Runner) Paused() bool {
	return r.paused.Load()
}

// SetTicksPerFrame changes the batch size. Values below one select one.
func (r *Runner) SetTicksPerFrame(n int) {
	if n < 1 {
		n = 1
	}
	r.ticksPerFrame.Store(int64(n))
}

// TicksPerFrame returns the batch size.
func (r *Runner) TicksPerFrame() int {
	return int(r.ticksPerFrame.Load())
}

// DesignID returns the ID of the design being driven.
func (r *Runner) DesignID() string {
	return r.machine.Design().ID()
}

// TickRate returns the host ticks per second.
func (r *Runner) TickRate() int {
	return r.tickRate
}

// Status returns the most recently published status.
func (r *Runner) Status() Status {
	return *r.status.Load()
}

// Frames returns the picture channel, or nil when WithFrames was not given.
func (r *Runner) Frames() <-chan *image.NRGBA {
	return r.frames
}

// Dropped returns how many pictures were discarded because nobody read them.
func (r *Runner) Dropped() uint64 {
	return r.dropped.Load()
}
