// Package store keeps the task lists of active sessions in memory.
//
// Lifecycle per user: the first read (or Refresh) loads rows from the
// repository and reclassifies priorities; successful writes are applied with
// Put/Remove; change events from other processes mark the user stale; Evict
// drops the entry on logout. Conflicts resolve last-writer-wins.
package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"taskhub/internal/core/domain"
	"taskhub/internal/core/ports"
	"taskhub/internal/metrics"
)

type TaskStore struct {
	repo  ports.TaskRepository
	clock ports.Clock

	mu    sync.RWMutex
	users map[string]*userTasks
}

// userTasks is one user's cached list. Every local write bumps version; while
// loads are in flight the writes are also journaled so a load that read rows
// before them can replay them on top.
type userTasks struct {
	tasks   map[string]domain.Task
	loaded  bool
	stale   bool
	version uint64
	// staleAt is the version of the last Invalidate.
	staleAt uint64
	loads   int
	journal []journalEntry
}

type journalEntry struct {
	version uint64
	task    domain.Task
	removed string
}

var _ ports.TaskStore = (*TaskStore)(nil)

func NewTaskStore(repo ports.TaskRepository, clock ports.Clock) *TaskStore {
	if clock == nil {
		clock = time.Now
	}
	return &TaskStore{
		repo:  repo,
		clock: clock,
		users: make(map[string]*userTasks),
	}
}

// Tasks returns a snapshot of the user's tasks, loading them when absent or
// stale.
func (s *TaskStore) Tasks(ctx context.Context, userID string) ([]domain.Task, error) {
	s.mu.RLock()
	entry, ok := s.users[userID]
	if ok && entry.loaded && !entry.stale {
		tasks := snapshot(entry.tasks)
		s.mu.RUnlock()
		return tasks, nil
	}
	s.mu.RUnlock()

	return s.Refresh(ctx, userID)
}

// Refresh reloads the user's tasks from the repository. Writes applied with
// Put or Remove while the rows are being read are replayed on the result; an
// Invalidate in that window leaves the entry stale.
func (s *TaskStore) Refresh(ctx context.Context, userID string) ([]domain.Task, error) {
	s.mu.Lock()
	entry, ok := s.users[userID]
	if !ok {
		entry = &userTasks{tasks: make(map[string]domain.Task)}
		s.users[userID] = entry
	}
	entry.loads++
	since := entry.version
	s.mu.Unlock()

	rows, err := s.repo.ListByUser(ctx, userID)

	s.mu.Lock()
	defer s.mu.Unlock()
	entry.loads--
	current := s.users[userID] == entry

	if err != nil {
		if entry.loads == 0 {
			entry.journal = nil
			if current && !entry.loaded {
				delete(s.users, userID)
			}
		}
		return nil, err
	}
	metrics.StoreLoads.Inc()

	now := s.clock()
	tasks := make(map[string]domain.Task, len(rows))
	for _, task := range rows {
		task.Reclassify(now)
		tasks[task.ID] = task
	}
	if !current {
		// Evicted while loading.
		return snapshot(tasks), nil
	}

	for _, change := range entry.journal {
		if change.version <= since {
			continue
		}
		if change.removed != "" {
			delete(tasks, change.removed)
		} else {
			tasks[change.task.ID] = change.task
		}
	}
	if entry.loads == 0 {
		entry.journal = nil
	}

	entry.tasks = tasks
	entry.loaded = true
	entry.stale = entry.staleAt > since
	metrics.StoreSessions.Set(float64(s.loadedLocked()))

	return snapshot(tasks), nil
}

// Put applies a successful write locally. Users that are neither loaded nor
// loading are left alone; their next read loads fresh rows.
func (s *TaskStore) Put(userID string, task domain.Task) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.users[userID]
	if !ok {
		return
	}
	entry.version++
	entry.tasks[task.ID] = task
	if entry.loads > 0 {
		entry.journal = append(entry.journal, journalEntry{version: entry.version, task: task})
	}
}

func (s *TaskStore) Remove(userID, taskID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.users[userID]
	if !ok {
		return
	}
	entry.version++
	delete(entry.tasks, taskID)
	if entry.loads > 0 {
		entry.journal = append(entry.journal, journalEntry{version: entry.version, removed: taskID})
	}
}

func (s *TaskStore) Invalidate(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if entry, ok := s.users[userID]; ok {
		entry.version++
		entry.staleAt = entry.version
		entry.stale = true
	}
}

func (s *TaskStore) Evict(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.users, userID)
	metrics.StoreSessions.Set(float64(s.loadedLocked()))
}

// Len returns the number of loaded users.
func (s *TaskStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadedLocked()
}

func (s *TaskStore) loadedLocked() int {
	n := 0
	for _, entry := range s.users {
		if entry.loaded {
			n++
		}
	}
	return n
}

// Watch invalidates users whose tasks were changed by another process. It
// returns when ctx is done or events is closed.
func (s *TaskStore) Watch(ctx context.Context, events <-chan domain.ChangeEvent, origin string) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-events:
			if !ok {
				return
			}
			if event.Origin == origin {
				continue
			}
			switch event.Entity {
			case domain.EntityTask, domain.EntitySubject, domain.EntityProfessor:
				zap.L().Debug("invalidating task store entry",
					zap.String("user_id", event.UserID),
					zap.String("entity", string(event.Entity)),
					zap.String("origin", event.Origin),
				)
				s.Invalidate(event.UserID)
			}
		}
	}
}

// snapshot copies the tasks ordered by due date, due time and creation.
func snapshot(byID map[string]domain.Task) []domain.Task {
	tasks := make([]domain.Task, 0, len(byID))
	for _, task := range byID {
		tasks = append(tasks, task)
	}
	sort.Slice(tasks, func(i, j int) bool {
		a, b := tasks[i], tasks[j]
		if a.DueDate != b.DueDate {
			return a.DueDate < b.DueDate
		}
		if a.EffectiveDueTime() != b.EffectiveDueTime() {
			return a.EffectiveDueTime() < b.EffectiveDueTime()
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.ID < b.ID
	})
	return tasks
}
