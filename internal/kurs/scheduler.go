package kurs

import (
	"context"
	"sync"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Scheduler triggers the daily indexing run on a fixed local time.
// Redundant runs are harmless: the indexer's already-indexed guard
// turns them into no-ops.
type Scheduler struct {
	indexer *Indexer
	atHour  int
	atMin   int
	// -----
	mu    sync.Mutex // guards sched: the ctx-watch goroutine and app shutdown both call Shutdown
	sched gocron.Scheduler
}

func NewScheduler(indexer *Indexer, atHour, atMin int) *Scheduler {
	return &Scheduler{indexer: indexer, atHour: atHour, atMin: atMin}
}

func (s *Scheduler) Start(ctx context.Context) error {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.sched = scheduler
	s.mu.Unlock()

	job := func(jobCtx context.Context) {
		execID := uuid.NewString()
		if _, runErr := s.indexer.RunDaily(jobCtx, execID); runErr != nil {
			logrus.Errorf("Scheduled indexing run %s failed: %v", execID, runErr)
		}
	}

	_, err = scheduler.NewJob(
		gocron.DailyJob(1, gocron.NewAtTimes(gocron.NewAtTime(uint(s.atHour), uint(s.atMin), 0))),
		gocron.NewTask(job),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return err
	}

	scheduler.Start()

	// Stop scheduler when the provided context is canceled.
	go func() {
		<-ctx.Done()
		if sdErr := s.Shutdown(); sdErr != nil {
			logrus.Errorf("Scheduler shutdown error: %v", sdErr)
		}
	}()
	return nil
}

func (s *Scheduler) Shutdown() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sched == nil {
		return nil
	}
	err := s.sched.Shutdown()
	s.sched = nil
	return err
}

func (s *Scheduler) running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sched != nil
}
