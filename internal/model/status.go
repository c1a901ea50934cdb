package model

import "time"

// Status represents a status post in the database. The owning user is set at
// creation and never reassigned.
type Status struct {
	ID            int64
	UserID        int64
	Content       string
	DatePublished time.Time
	UpdatedAt     time.Time
}

// StatusRequest represents the body of a create or update request.
type StatusRequest struct {
	Content string `json:"content"`
}

// StatusResponse represents a status post in API responses, with the owner
// rendered as a nested summary.
type StatusResponse struct {
	ID            int64        `json:"id"`
	Content       string       `json:"content"`
	DatePublished time.Time    `json:"date_published"`
	User          UserResponse `json:"user"`
}
