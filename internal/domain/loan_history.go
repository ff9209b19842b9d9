package domain

import (
	"fmt"
	"time"
)

// LoanStatus enumerates lifecycle states for a loan ledger entry.
type LoanStatus string

const (
	LoanStatusLoaned   LoanStatus = "LOANED"
	LoanStatusReturned LoanStatus = "RETURNED"
)

// LoanHistory is a ledger entry linking a member to a borrowed book.
// BookName is a snapshot of the book's name at loan time, not a foreign key;
// the catalog is only consulted for statistics. Entries start LOANED and make
// a single irreversible transition to RETURNED.
type LoanHistory struct {
	ID        int64
	UserID    int64
	BookName  string
	Status    LoanStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewLoanHistory opens a ledger entry in the LOANED state.
func NewLoanHistory(userID int64, bookName string) *LoanHistory {
	return &LoanHistory{
		UserID:   userID,
		BookName: bookName,
		Status:   LoanStatusLoaned,
	}
}

// Return transitions the entry to RETURNED. RETURNED is terminal.
func (h *LoanHistory) Return() error {
	if h.Status == LoanStatusReturned {
		return fmt.Errorf("loan history %d already returned", h.ID)
	}
	h.Status = LoanStatusReturned
	return nil
}

// IsReturned reports whether the entry reached its terminal state.
func (h *LoanHistory) IsReturned() bool {
	return h.Status == LoanStatusReturned
}
