package scheduler

import (
	"context"
	"fmt"
	"io"
	"log"
	"sync"

	"yearprogress/internal/generator"

	"github.com/robfig/cron/v3"
)

// Scheduler re-emits the README on a cron schedule.
type Scheduler struct {
	Cron      *cron.Cron
	Generator *generator.Generator
	Out       io.Writer

	mu sync.Mutex
}

// NewScheduler creates a new Scheduler. Specs take a leading seconds field.
func NewScheduler(gen *generator.Generator, out io.Writer) *Scheduler {
	return &Scheduler{
		Cron:      cron.New(cron.WithSeconds()),
		Generator: gen,
		Out:       out,
	}
}

// Register adds the render job for spec.
func (s *Scheduler) Register(spec string) error {
	if _, err := s.Cron.AddFunc(spec, s.emit); err != nil {
		return fmt.Errorf("register render task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the scheduler and waits for a running job to finish.
func (s *Scheduler) Stop() {
	<-s.Cron.Stop().Done()
	log.Println("[INFO] scheduler stopped")
}

// RunNow renders once immediately (for --run-on-start).
func (s *Scheduler) RunNow() {
	s.emit()
}

// Run starts the scheduler and blocks until ctx is cancelled.
func (s *Scheduler) Run(ctx context.Context) {
	s.Start()
	<-ctx.Done()
	s.Stop()
}

func (s *Scheduler) emit() {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.Generator.Progress()
	doc := s.Generator.Template.Render(p)
	if _, err := fmt.Fprintln(s.Out, doc); err != nil {
		log.Printf("[ERROR] write readme: %v", err)
		return
	}
	log.Printf("[INFO] rendered year progress %s%% as on %s", p.Percent, p.Label)
}
