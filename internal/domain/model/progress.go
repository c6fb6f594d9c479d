package model

import "time"

// ProgressEntry is the durable record of one (user, problem) completion.
// At most one entry exists per (UserID, ProblemSlug) pair, enforced by a
// unique index in the store.
type ProgressEntry struct {
	ID           string     `json:"id"`
	UserID       string     `json:"userId"`
	ProblemSlug  string     `json:"problemSlug"`
	ProblemTitle string     `json:"problemTitle"`
	Topic        string     `json:"topic"`
	Difficulty   Difficulty `json:"difficulty"`
	Completed    bool       `json:"completed"`
	PointsEarned int        `json:"pointsEarned"`
	Language     string     `json:"language"`
	Solution     string     `json:"solution,omitempty"`
	CompletedAt  *time.Time `json:"completedAt,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}
