package domain

import "time"

// Preference represents a per-user reply preference
type Preference struct {
	UserID         string
	AIReplyEnabled bool
	UpdatedAt      time.Time
}
