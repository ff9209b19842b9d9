package events

import (
	"time"

	"github.com/spec-kit/library-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventBookRegistered EventType = "book_registered"
	EventBookLoaned     EventType = "book_loaned"
	EventBookReturned   EventType = "book_returned"
	EventUserCreated    EventType = "user_created"
	EventUserDeleted    EventType = "user_deleted"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// BookRegisteredPayload payload.
type BookRegisteredPayload struct {
	BookID   int64               `json:"book_id"`
	Name     string              `json:"name"`
	Category domain.BookCategory `json:"category"`
}

// BookLoanedPayload payload.
type BookLoanedPayload struct {
	HistoryID int64  `json:"history_id"`
	UserID    int64  `json:"user_id"`
	UserName  string `json:"user_name"`
	BookName  string `json:"book_name"`
}

// BookReturnedPayload payload.
type BookReturnedPayload struct {
	HistoryID int64  `json:"history_id"`
	UserID    int64  `json:"user_id"`
	UserName  string `json:"user_name"`
	BookName  string `json:"book_name"`
}

// UserCreatedPayload payload.
type UserCreatedPayload struct {
	UserID int64  `json:"user_id"`
	Name   string `json:"name"`
}

// UserDeletedPayload payload.
type UserDeletedPayload struct {
	Name string `json:"name"`
}
