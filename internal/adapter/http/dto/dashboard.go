package dto

type DashboardResponse struct {
	Total        int               `json:"total"`
	Pending      int               `json:"pending"`
	Completed    int               `json:"completed"`
	Overdue      int               `json:"overdue"`
	ByDifficulty []DifficultyCount `json:"by_difficulty"`
	BySubject    []SubjectStat     `json:"by_subject"`
	ByPriority   []PriorityCount   `json:"by_priority"`
	Daily        []Bucket          `json:"daily_completions"`
	Weekly       []Bucket          `json:"weekly_completions"`
	Upcoming     []TaskItem        `json:"upcoming"`
}

type DifficultyCount struct {
	Difficulty string `json:"difficulty"`
	Count      int    `json:"count"`
}

type PriorityCount struct {
	Priority int `json:"priority"`
	Count    int `json:"count"`
}

type SubjectStat struct {
	SubjectID       *string `json:"subject_id"`
	Total           int     `json:"total"`
	Completed       int     `json:"completed"`
	CompletionRatio float64 `json:"completion_ratio"`
}

type Bucket struct {
	Start string `json:"start"`
	Count int    `json:"count"`
}
