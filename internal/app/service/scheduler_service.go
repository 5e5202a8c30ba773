package service

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const priorityRefreshTimeout = time.Minute

// SchedulerService wraps cron-based jobs.
type SchedulerService struct {
	cron *cron.Cron
}

func NewSchedulerService(loc *time.Location) *SchedulerService {
	if loc == nil {
		loc = time.Local
	}
	return &SchedulerService{
		cron: cron.New(cron.WithLocation(loc), cron.WithSeconds()),
	}
}

func (s *SchedulerService) Start() {
	s.cron.Start()
}

// Stop waits for running jobs to finish.
func (s *SchedulerService) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

// Schedule registers job under a cron spec (seconds field included) or a
// descriptor such as "@every 1h".
func (s *SchedulerService) Schedule(spec string, job func()) (cron.EntryID, error) {
	id, err := s.cron.AddFunc(spec, job)
	if err != nil {
		return 0, fmt.Errorf("schedule %q: %w", spec, err)
	}
	return id, nil
}

// SchedulePriorityRefresh runs RefreshPriorities of tasks on spec.
func (s *SchedulerService) SchedulePriorityRefresh(spec string, tasks interface {
	RefreshPriorities(ctx context.Context) (int, error)
}) (cron.EntryID, error) {
	return s.Schedule(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), priorityRefreshTimeout)
		defer cancel()

		changed, err := tasks.RefreshPriorities(ctx)
		if err != nil {
			zap.L().Error("priority refresh failed", zap.Error(err))
			return
		}
		zap.L().Info("priority refresh done", zap.Int("changed", changed))
	})
}

// Entries returns the number of registered jobs.
func (s *SchedulerService) Entries() int {
	return len(s.cron.Entries())
}
