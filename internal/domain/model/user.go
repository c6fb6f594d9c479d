package model

import (
	"time"
)

const (
	RolePlayer    = "player"
	RoleOrganizer = "organizer"
	RoleAdmin     = "admin"
)

// Stats counts a user's completions per difficulty tier.
// Invariant: TotalCompleted == EasyCompleted + MediumCompleted + HardCompleted.
type Stats struct {
	EasyCompleted   int `json:"easyCompleted"`
	MediumCompleted int `json:"mediumCompleted"`
	HardCompleted   int `json:"hardCompleted"`
	TotalCompleted  int `json:"totalCompleted"`
}

type User struct {
	ID             string    `json:"id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	HashedPassword string    `json:"-"` // Not exposed
	Role           string    `json:"role"`
	Avatar         string    `json:"avatar"`
	Bio            string    `json:"bio"`
	Points         int       `json:"points"`
	Rank           int       `json:"rank"` // Recomputed projection, not authoritative between recomputes
	Stats          Stats     `json:"stats"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
