package domain

import (
	"sort"
	"time"
)

const (
	DailyCompletionDays   = 70
	WeeklyCompletionWeeks = 13
	UpcomingTaskLimit     = 5
)

type DifficultyCount struct {
	Difficulty Difficulty
	Count      int
}

type PriorityCount struct {
	Priority Priority
	Count    int
}

// SubjectStat aggregates the tasks of one subject. A nil SubjectID groups
// tasks without a subject.
type SubjectStat struct {
	SubjectID       *string
	Total           int
	Completed       int
	CompletionRatio float64
}

type CompletionBucket struct {
	Start time.Time
	Count int
}

type Dashboard struct {
	Total        int
	Pending      int
	Completed    int
	Overdue      int
	ByDifficulty []DifficultyCount
	BySubject    []SubjectStat
	ByPriority   []PriorityCount
	Daily        []CompletionBucket
	Weekly       []CompletionBucket
	Upcoming     []Task
}

func BuildDashboard(tasks []Task, now time.Time) Dashboard {
	p := PartitionTasks(tasks, now)
	return Dashboard{
		Total:        len(tasks),
		Pending:      len(p.Pending),
		Completed:    len(p.Completed),
		Overdue:      len(p.Overdue),
		ByDifficulty: CountByDifficulty(tasks),
		BySubject:    CountBySubject(tasks),
		ByPriority:   CountByPriority(tasks),
		Daily:        DailyCompletions(tasks, now, DailyCompletionDays),
		Weekly:       WeeklyCompletions(tasks, now, WeeklyCompletionWeeks),
		Upcoming:     UpcomingTasks(tasks, now, UpcomingTaskLimit),
	}
}

func CountByDifficulty(tasks []Task) []DifficultyCount {
	counts := make(map[Difficulty]int, len(Difficulties))
	for _, task := range tasks {
		counts[task.Difficulty]++
	}
	out := make([]DifficultyCount, 0, len(Difficulties))
	for _, d := range Difficulties {
		out = append(out, DifficultyCount{Difficulty: d, Count: counts[d]})
	}
	return out
}

func CountByPriority(tasks []Task) []PriorityCount {
	counts := make(map[Priority]int, len(Priorities))
	for _, task := range tasks {
		counts[task.Priority]++
	}
	out := make([]PriorityCount, 0, len(Priorities))
	for _, p := range Priorities {
		out = append(out, PriorityCount{Priority: p, Count: counts[p]})
	}
	return out
}

// CountBySubject groups tasks per subject, sorted by subject id with the
// "no subject" group last.
func CountBySubject(tasks []Task) []SubjectStat {
	const noSubject = ""
	stats := make(map[string]*SubjectStat)
	for _, task := range tasks {
		key := noSubject
		if task.SubjectID != nil {
			key = *task.SubjectID
		}
		stat, ok := stats[key]
		if !ok {
			stat = &SubjectStat{}
			if key != noSubject {
				id := key
				stat.SubjectID = &id
			}
			stats[key] = stat
		}
		stat.Total++
		if task.Completed {
			stat.Completed++
		}
	}

	keys := make([]string, 0, len(stats))
	for key := range stats {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i] == noSubject || keys[j] == noSubject {
			return keys[j] == noSubject && keys[i] != noSubject
		}
		return keys[i] < keys[j]
	})

	out := make([]SubjectStat, 0, len(keys))
	for _, key := range keys {
		stat := stats[key]
		stat.CompletionRatio = float64(stat.Completed) / float64(stat.Total)
		out = append(out, *stat)
	}
	return out
}

// DailyCompletions counts completed tasks per calendar day over the last
// days days (today included), oldest first, keyed off UpdatedAt.
func DailyCompletions(tasks []Task, now time.Time, days int) []CompletionBucket {
	if days <= 0 {
		return []CompletionBucket{}
	}
	loc := now.Location()
	first := startOfDay(now).AddDate(0, 0, -(days - 1))
	return bucketCompletions(tasks, loc, first, days, 1, startOfDay)
}

// WeeklyCompletions counts completed tasks per Monday-based week over the
// last weeks weeks (current week included), oldest first.
func WeeklyCompletions(tasks []Task, now time.Time, weeks int) []CompletionBucket {
	if weeks <= 0 {
		return []CompletionBucket{}
	}
	loc := now.Location()
	first := startOfWeek(now).AddDate(0, 0, -7*(weeks-1))
	return bucketCompletions(tasks, loc, first, weeks, 7, startOfWeek)
}

func bucketCompletions(
	tasks []Task,
	loc *time.Location,
	first time.Time,
	size int,
	stepDays int,
	bucketOf func(time.Time) time.Time,
) []CompletionBucket {
	buckets := make([]CompletionBucket, size)
	index := make(map[string]int, size)
	for i := range buckets {
		start := first.AddDate(0, 0, i*stepDays)
		buckets[i] = CompletionBucket{Start: start}
		index[start.Format(DateLayout)] = i
	}

	for _, task := range tasks {
		if !task.Completed || task.UpdatedAt.IsZero() {
			continue
		}
		key := bucketOf(task.UpdatedAt.In(loc)).Format(DateLayout)
		if i, ok := index[key]; ok {
			buckets[i].Count++
		}
	}
	return buckets
}

// UpcomingTasks returns up to limit pending, not yet overdue tasks ordered
// by due instant.
func UpcomingTasks(tasks []Task, now time.Time, limit int) []Task {
	type dated struct {
		task Task
		due  time.Time
	}
	candidates := make([]dated, 0)
	for _, task := range tasks {
		if task.Completed {
			continue
		}
		due, ok := task.DueAt(now.Location())
		if !ok || due.Before(now) {
			continue
		}
		candidates = append(candidates, dated{task: task, due: due})
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].due.Equal(candidates[j].due) {
			return candidates[i].task.Priority < candidates[j].task.Priority
		}
		return candidates[i].due.Before(candidates[j].due)
	})

	if limit >= 0 && len(candidates) > limit {
		candidates = candidates[:limit]
	}
	out := make([]Task, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, c.task)
	}
	return out
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func startOfWeek(t time.Time) time.Time {
	day := startOfDay(t)
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}
