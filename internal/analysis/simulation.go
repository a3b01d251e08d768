package analysis

import (
	"context"
	"sync"
	"time"
)

const (
	MaxProgress = 100

	DefaultTickInterval    = 250 * time.Millisecond
	DefaultCompletionDelay = 500 * time.Millisecond
)

const (
	UpdateProgress = "progress"
	UpdateComplete = "complete"
)

type Config struct {
	TickInterval    time.Duration
	CompletionDelay time.Duration
	// RedirectURL is carried by the complete update.
	RedirectURL string
}

type Snapshot struct {
	Progress int    `json:"progress"`
	Step     int    `json:"step"`
	Label    string `json:"label"`
	Done     bool   `json:"done"`
}

type Completion struct {
	Redirect string `json:"redirect"`
}

type Update struct {
	Type string
	Data interface{}
}

// Simulation is the timer-driven progress state of one analysis view.
type Simulation struct {
	cfg Config

	mu       sync.Mutex
	progress int
	started  bool
}

func New(cfg Config) *Simulation {
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = DefaultTickInterval
	}
	if cfg.CompletionDelay < 0 {
		cfg.CompletionDelay = 0
	}
	return &Simulation{cfg: cfg}
}

// Tick advances progress by one. It reports true only on the tick that
// reaches MaxProgress; ticks after that leave the state untouched.
func (s *Simulation) Tick() (Snapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.progress >= MaxProgress {
		return s.snapshotLocked(), false
	}
	s.progress++
	return s.snapshotLocked(), s.progress == MaxProgress
}

func (s *Simulation) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Simulation) snapshotLocked() Snapshot {
	step := StepIndex(s.progress)
	return Snapshot{
		Progress: s.progress,
		Step:     step,
		Label:    Steps[step].Label,
		Done:     s.progress >= MaxProgress,
	}
}

// Start runs the timer until progress completes or ctx is cancelled. The
// returned channel carries one progress update per tick, then a single
// complete update after the completion delay, and is closed afterwards.
// On cancellation the channel is closed without a complete update.
// Start may only be called once.
func (s *Simulation) Start(ctx context.Context) <-chan Update {
	s.mu.Lock()
	if s.started {
		s.mu.Unlock()
		panic("analysis: simulation already started")
	}
	s.started = true
	s.mu.Unlock()

	updates := make(chan Update)
	go s.run(ctx, updates)
	return updates
}

func (s *Simulation) run(ctx context.Context, updates chan<- Update) {
	defer close(updates)

	ticker := time.NewTicker(s.cfg.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		snap, finished := s.Tick()
		if !send(ctx, updates, Update{Type: UpdateProgress, Data: snap}) {
			return
		}
		if finished {
			ticker.Stop()
			break
		}
	}

	delay := time.NewTimer(s.cfg.CompletionDelay)
	defer delay.Stop()

	select {
	case <-ctx.Done():
		return
	case <-delay.C:
	}

	send(ctx, updates, Update{Type: UpdateComplete, Data: Completion{Redirect: s.cfg.RedirectURL}})
}

func send(ctx context.Context, updates chan<- Update, u Update) bool {
	select {
	case updates <- u:
		return true
	case <-ctx.Done():
		return false
	}
}
