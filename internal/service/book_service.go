package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/spec-kit/library-service/internal/domain"
	"github.com/spec-kit/library-service/internal/events"
	"github.com/spec-kit/library-service/internal/repository"
	apperrors "github.com/spec-kit/library-service/pkg/util/errorutil"
)

const pgUniqueViolation = "23505"

// BookService coordinates catalog and loan workflows.
type BookService struct {
	books      repository.BookRepository
	users      repository.UserRepository
	histories  repository.LoanHistoryRepository
	dispatcher events.Dispatcher
}

// BookDependencies bundles repositories for the book service.
type BookDependencies struct {
	BookRepo    repository.BookRepository
	UserRepo    repository.UserRepository
	HistoryRepo repository.LoanHistoryRepository
	Dispatcher  events.Dispatcher
}

// NewBookService constructs the service.
func NewBookService(deps BookDependencies) *BookService {
	return &BookService{
		books:      deps.BookRepo,
		users:      deps.UserRepo,
		histories:  deps.HistoryRepo,
		dispatcher: deps.Dispatcher,
	}
}

// SaveBook registers a new catalog entry. Duplicate names are allowed.
func (s *BookService) SaveBook(ctx context.Context, name string, category domain.BookCategory) (*domain.Book, error) {
	book, err := domain.NewBook(name, category)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error(), nil)
	}
	if err := s.books.Create(ctx, book); err != nil {
		return nil, apperrors.MapError(err)
	}
	s.publishEvent(ctx, events.Event{
		Type: events.EventBookRegistered,
		Payload: events.BookRegisteredPayload{
			BookID:   book.ID,
			Name:     book.Name,
			Category: book.Category,
		},
	})
	return book, nil
}

// LoanBook grants a loan of the named book to the named user. A book name
// with an outstanding LOANED ledger entry cannot be loaned again until it
// is returned.
func (s *BookService) LoanBook(ctx context.Context, userName, bookName string) (*domain.LoanHistory, error) {
	userName = strings.TrimSpace(userName)
	bookName = strings.TrimSpace(bookName)
	if userName == "" || bookName == "" {
		return nil, apperrors.NewValidationError("user name and book name are required", nil)
	}

	user, err := s.users.GetByName(ctx, userName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("user", map[string]any{"name": userName})
		}
		return nil, apperrors.MapError(err)
	}

	if _, err := s.histories.FindOutstandingByBookName(ctx, bookName); err == nil {
		return nil, apperrors.NewConflict("book already on loan", map[string]any{"book_name": bookName})
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.MapError(err)
	}

	history := domain.NewLoanHistory(user.ID, bookName)
	if err := s.histories.Create(ctx, history); err != nil {
		// The partial unique index catches the race where two loans for the
		// same book pass the outstanding-loan check concurrently.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, apperrors.NewConflict("book already on loan", map[string]any{"book_name": bookName})
		}
		return nil, apperrors.MapError(err)
	}

	s.publishEvent(ctx, events.Event{
		Type: events.EventBookLoaned,
		Payload: events.BookLoanedPayload{
			HistoryID: history.ID,
			UserID:    user.ID,
			UserName:  user.Name,
			BookName:  bookName,
		},
	})
	return history, nil
}

// ReturnBook closes the user's outstanding loan of the named book.
// Returning a book with no outstanding loan is a conflict, not a no-op.
func (s *BookService) ReturnBook(ctx context.Context, userName, bookName string) error {
	userName = strings.TrimSpace(userName)
	bookName = strings.TrimSpace(bookName)
	if userName == "" || bookName == "" {
		return apperrors.NewValidationError("user name and book name are required", nil)
	}

	user, err := s.users.GetByName(ctx, userName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("user", map[string]any{"name": userName})
		}
		return apperrors.MapError(err)
	}

	history, err := s.histories.FindOutstandingForUser(ctx, user.ID, bookName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewConflict("book is not on loan", map[string]any{"book_name": bookName})
		}
		return apperrors.MapError(err)
	}

	if err := history.Return(); err != nil {
		return apperrors.NewConflict(err.Error(), nil)
	}
	if err := s.histories.MarkReturned(ctx, history.ID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Lost a race against a concurrent return of the same entry.
			return apperrors.NewConflict("book is not on loan", map[string]any{"book_name": bookName})
		}
		return apperrors.MapError(err)
	}

	s.publishEvent(ctx, events.Event{
		Type: events.EventBookReturned,
		Payload: events.BookReturnedPayload{
			HistoryID: history.ID,
			UserID:    user.ID,
			UserName:  user.Name,
			BookName:  bookName,
		},
	})
	return nil
}

// CountLoanedBook returns the number of outstanding loans.
func (s *BookService) CountLoanedBook(ctx context.Context) (int64, error) {
	count, err := s.histories.CountByStatus(ctx, domain.LoanStatusLoaned)
	if err != nil {
		return 0, apperrors.MapError(err)
	}
	return count, nil
}

// GetBookStatistics reports the number of catalog entries per category.
// Categories with no books are omitted.
func (s *BookService) GetBookStatistics(ctx context.Context) ([]repository.CategoryCount, error) {
	stats, err := s.books.GetStatistics(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return stats, nil
}

func (s *BookService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}
