package mapper

import (
	"time"

	"taskhub/internal/adapter/http/dto"
	"taskhub/internal/core/domain"
)

func ToDashboardResponse(d domain.Dashboard, now time.Time) dto.DashboardResponse {
	resp := dto.DashboardResponse{
		Total:        d.Total,
		Pending:      d.Pending,
		Completed:    d.Completed,
		Overdue:      d.Overdue,
		ByDifficulty: make([]dto.DifficultyCount, 0, len(d.ByDifficulty)),
		BySubject:    make([]dto.SubjectStat, 0, len(d.BySubject)),
		ByPriority:   make([]dto.PriorityCount, 0, len(d.ByPriority)),
		Daily:        toBuckets(d.Daily),
		Weekly:       toBuckets(d.Weekly),
		Upcoming:     ToTaskItems(d.Upcoming, now),
	}

	for _, c := range d.ByDifficulty {
		resp.ByDifficulty = append(resp.ByDifficulty, dto.DifficultyCount{Difficulty: string(c.Difficulty), Count: c.Count})
	}
	for _, c := range d.ByPriority {
		resp.ByPriority = append(resp.ByPriority, dto.PriorityCount{Priority: int(c.Priority), Count: c.Count})
	}
	for _, s := range d.BySubject {
		resp.BySubject = append(resp.BySubject, dto.SubjectStat{
			SubjectID:       s.SubjectID,
			Total:           s.Total,
			Completed:       s.Completed,
			CompletionRatio: s.CompletionRatio,
		})
	}

	return resp
}

func toBuckets(buckets []domain.CompletionBucket) []dto.Bucket {
	out := make([]dto.Bucket, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, dto.Bucket{Start: b.Start.Format(domain.DateLayout), Count: b.Count})
	}
	return out
}
