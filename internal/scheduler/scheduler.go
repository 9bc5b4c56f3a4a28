// Package scheduler drives the fixed 1 Hz update cycle: fill, decode, apply,
// publish. At most one cycle is ever in flight.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"hostdash/internal/dashboard"
	"hostdash/internal/logger"
	"hostdash/internal/snapshot"
	"hostdash/internal/surface"
)

// Interval is the fixed refresh period.
const Interval = time.Second

type Phase int

const (
	Idle Phase = iota
	Updating
)

func (p Phase) String() string {
	if p == Updating {
		return "updating"
	}
	return "idle"
}

// Filler fills buf with one provider record.
type Filler interface {
	Fill(buf []byte) error
}

// Stats counts cycles since start.
type Stats struct {
	Ticks    uint64 // cycles started
	Overruns uint64 // cycles that finished after the next scheduled tick
	Failures uint64 // cycles skipped because the provider or decoder failed
	Clamped  uint64 // records whose counts were clamped
}

type Scheduler struct {
	provider Filler
	state    *dashboard.State
	out      surface.Surface
	clock    Clock
	log      logger.Logger

	buf     []byte
	lastRep snapshot.Report
	cycleMu sync.Mutex

	mu    sync.Mutex
	phase Phase
	stats Stats

	stop     chan struct{}
	stopOnce sync.Once
}

type Option func(*Scheduler)

func WithClock(c Clock) Option { return func(s *Scheduler) { s.clock = c } }

func WithLogger(l logger.Logger) Option { return func(s *Scheduler) { s.log = l } }

// New wires a scheduler. The scheduler becomes the only writer of state.
func New(provider Filler, state *dashboard.State, out surface.Surface, opts ...Option) *Scheduler {
	s := &Scheduler{
		provider: provider,
		state:    state,
		out:      out,
		clock:    systemClock{},
		log:      logger.New("[scheduler]"),
		buf:      make([]byte, snapshot.RecordSize),
		stop:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run ticks until ctx is done or Stop is called. Each tick is due one
// Interval after the previous scheduled tick. A cycle that runs past the
// next due time is followed immediately by the next one and the schedule
// re-anchors there; missed ticks are not replayed.
func (s *Scheduler) Run(ctx context.Context) error {
	next := s.clock.Now().Add(Interval)
	for {
		if s.stopped(ctx) {
			return nil
		}
		if wait := next.Sub(s.clock.Now()); wait > 0 {
			select {
			case <-ctx.Done():
				return nil
			case <-s.stop:
				return nil
			case <-s.clock.After(wait):
			}
		}

		_ = s.Tick()

		next = next.Add(Interval)
		if now := s.clock.Now(); !next.After(now) {
			s.mu.Lock()
			s.stats.Overruns++
			s.mu.Unlock()
			s.log.Debug("cycle overran by %s, re-anchoring", now.Sub(next))
			next = now
		}
	}
}

func (s *Scheduler) stopped(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return true
	case <-s.stop:
		return true
	default:
		return false
	}
}

// Stop ends Run after the in-flight cycle, if any, completes.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() { close(s.stop) })
}

// Tick runs one full cycle. On failure the state is left untouched and the
// surface is not notified.
func (s *Scheduler) Tick() error {
	s.cycleMu.Lock()
	defer s.cycleMu.Unlock()

	s.setPhase(Updating)
	defer s.setPhase(Idle)

	s.mu.Lock()
	s.stats.Ticks++
	s.mu.Unlock()

	rec, err := s.sample()
	if err != nil {
		s.mu.Lock()
		s.stats.Failures++
		s.mu.Unlock()
		s.log.Error("skipping tick: %v", err)
		return err
	}

	s.state.Apply(rec)
	s.state.Publish(s.out)
	return nil
}

func (s *Scheduler) sample() (snapshot.Record, error) {
	if err := s.provider.Fill(s.buf); err != nil {
		return snapshot.Record{}, fmt.Errorf("provider fill: %w", err)
	}
	rec, rep, err := snapshot.Decode(s.buf)
	if err != nil {
		return snapshot.Record{}, fmt.Errorf("decode: %w", err)
	}

	if rep.Clamped() {
		s.mu.Lock()
		s.stats.Clamped++
		s.mu.Unlock()
		if rep != s.lastRep {
			s.log.Warn("provider reported core_count=%d process_count=%d, clamped to %d/%d",
				rep.ReportedCores, rep.ReportedProcesses, rec.CoreCount(), rec.ProcessCount())
		}
	}
	s.lastRep = rep
	return rec, nil
}

func (s *Scheduler) setPhase(p Phase) {
	s.mu.Lock()
	s.phase = p
	s.mu.Unlock()
}

func (s *Scheduler) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

func (s *Scheduler) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats
}
