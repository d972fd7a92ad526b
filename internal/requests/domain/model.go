package domain

import (
	"errors"
	"time"
)

var (
	ErrNotFound      = errors.New("project request not found")
	ErrInvalidStatus = errors.New("invalid project request status")
)

const (
	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusRejected   = "rejected"
)

// ProjectRequest is a work inquiry submitted through the public site.
// New requests always start out pending.
type ProjectRequest struct {
	ID                 int64     `json:"id"`
	Name               string    `json:"name"`
	Email              string    `json:"email"`
	ProjectDescription string    `json:"project_description"`
	Budget             *string   `json:"budget"`
	Timeline           *string   `json:"timeline"`
	ProjectType        *string   `json:"project_type"`
	Status             string    `json:"status"`
	CreatedAt          time.Time `json:"created_at"`
}

func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted, StatusRejected:
		return true
	}
	return false
}
