package service

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/library-service/internal/domain"
	"github.com/spec-kit/library-service/internal/events"
	"github.com/spec-kit/library-service/internal/repository"
	apperrors "github.com/spec-kit/library-service/pkg/util/errorutil"
)

// UserService manages library members and composes their loan history views.
type UserService struct {
	users      repository.UserRepository
	histories  repository.LoanHistoryRepository
	dispatcher events.Dispatcher
}

// UserDependencies bundles repositories for the user service.
type UserDependencies struct {
	UserRepo    repository.UserRepository
	HistoryRepo repository.LoanHistoryRepository
	Dispatcher  events.Dispatcher
}

// UserLoanHistoryView is one user's rendered loan history. Users with no
// loans are present with an empty Books slice.
type UserLoanHistoryView struct {
	UserID int64
	Name   string
	Books  []LoanedBookView
}

// LoanedBookView renders one ledger entry for history views.
type LoanedBookView struct {
	Name     string
	IsReturn bool
}

// NewUserService constructs the service.
func NewUserService(deps UserDependencies) *UserService {
	return &UserService{
		users:      deps.UserRepo,
		histories:  deps.HistoryRepo,
		dispatcher: deps.Dispatcher,
	}
}

// SaveUser registers a new member.
func (s *UserService) SaveUser(ctx context.Context, name string, age *int32) (*domain.User, error) {
	user, err := domain.NewUser(name, age)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error(), nil)
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, apperrors.MapError(err)
	}
	s.publishEvent(ctx, events.Event{
		Type: events.EventUserCreated,
		Payload: events.UserCreatedPayload{
			UserID: user.ID,
			Name:   user.Name,
		},
	})
	return user, nil
}

// GetUsers returns all members; order is not significant.
func (s *UserService) GetUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return users, nil
}

// UpdateUserName renames the member with the given id.
func (s *UserService) UpdateUserName(ctx context.Context, id int64, newName string) error {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("user", map[string]any{"id": strconv.FormatInt(id, 10)})
		}
		return apperrors.MapError(err)
	}
	if err := user.Rename(newName); err != nil {
		return apperrors.NewValidationError(err.Error(), nil)
	}
	if err := s.users.UpdateName(ctx, user.ID, user.Name); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("user", map[string]any{"id": strconv.FormatInt(id, 10)})
		}
		return apperrors.MapError(err)
	}
	return nil
}

// DeleteUser removes one member by name; duplicate names resolve to the
// earliest-created record. Ledger entries for the member are kept.
func (s *UserService) DeleteUser(ctx context.Context, name string) error {
	if err := s.users.DeleteByName(ctx, name); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("user", map[string]any{"name": name})
		}
		return apperrors.MapError(err)
	}
	s.publishEvent(ctx, events.Event{
		Type:    events.EventUserDeleted,
		Payload: events.UserDeletedPayload{Name: name},
	})
	return nil
}

// GetUserLoanHistories returns the loan history of every member, including
// members who never borrowed anything.
func (s *UserService) GetUserLoanHistories(ctx context.Context) ([]UserLoanHistoryView, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	histories, err := s.histories.ListAll(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	byUser := make(map[int64][]LoanedBookView, len(users))
	for _, history := range histories {
		byUser[history.UserID] = append(byUser[history.UserID], LoanedBookView{
			Name:     history.BookName,
			IsReturn: history.IsReturned(),
		})
	}

	result := make([]UserLoanHistoryView, 0, len(users))
	for _, user := range users {
		books := byUser[user.ID]
		if books == nil {
			books = []LoanedBookView{}
		}
		result = append(result, UserLoanHistoryView{
			UserID: user.ID,
			Name:   user.Name,
			Books:  books,
		})
	}
	return result, nil
}

func (s *UserService) publishEvent(ctx context.Context, event events.Event) {
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
