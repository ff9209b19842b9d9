package service_test

import (
	"context"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/spec-kit/library-service/internal/domain"
	"github.com/spec-kit/library-service/internal/events"
	"github.com/spec-kit/library-service/internal/repository"
)

// In-memory repository fakes. They mirror the Postgres implementations'
// contract: pgx.ErrNoRows for absent records, pgconn unique-violation for the
// outstanding-loan index, name ties resolved to the lowest id.

type fakeBookRepo struct {
	books  []domain.Book
	nextID int64
}

func newFakeBookRepo() *fakeBookRepo {
	return &fakeBookRepo{nextID: 1}
}

func (r *fakeBookRepo) Create(_ context.Context, book *domain.Book) error {
	book.ID = r.nextID
	book.CreatedAt = time.Now()
	book.UpdatedAt = book.CreatedAt
	r.nextID++
	r.books = append(r.books, *book)
	return nil
}

func (r *fakeBookRepo) GetStatistics(_ context.Context) ([]repository.CategoryCount, error) {
	counts := make(map[domain.BookCategory]int64)
	var order []domain.BookCategory
	for _, book := range r.books {
		if _, seen := counts[book.Category]; !seen {
			order = append(order, book.Category)
		}
		counts[book.Category]++
	}
	var result []repository.CategoryCount
	for _, category := range order {
		result = append(result, repository.CategoryCount{Category: category, Count: counts[category]})
	}
	return result, nil
}

type fakeUserRepo struct {
	users  []domain.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{nextID: 1}
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	user.ID = r.nextID
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	r.nextID++
	r.users = append(r.users, *user)
	return nil
}

func (r *fakeUserRepo) List(_ context.Context) ([]domain.User, error) {
	return append([]domain.User{}, r.users...), nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	for _, user := range r.users {
		if user.ID == id {
			found := user
			return &found, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeUserRepo) GetByName(_ context.Context, name string) (*domain.User, error) {
	idx := r.firstIndexByName(name)
	if idx < 0 {
		return nil, pgx.ErrNoRows
	}
	found := r.users[idx]
	return &found, nil
}

func (r *fakeUserRepo) UpdateName(_ context.Context, id int64, name string) error {
	for i := range r.users {
		if r.users[i].ID == id {
			r.users[i].Name = name
			r.users[i].UpdatedAt = time.Now()
			return nil
		}
	}
	return pgx.ErrNoRows
}

func (r *fakeUserRepo) DeleteByName(_ context.Context, name string) error {
	idx := r.firstIndexByName(name)
	if idx < 0 {
		return pgx.ErrNoRows
	}
	r.users = append(r.users[:idx], r.users[idx+1:]...)
	return nil
}

func (r *fakeUserRepo) firstIndexByName(name string) int {
	best := -1
	for i, user := range r.users {
		if user.Name != name {
			continue
		}
		if best < 0 || user.ID < r.users[best].ID {
			best = i
		}
	}
	return best
}

type fakeLoanHistoryRepo struct {
	histories []domain.LoanHistory
	nextID    int64
}

func newFakeLoanHistoryRepo() *fakeLoanHistoryRepo {
	return &fakeLoanHistoryRepo{nextID: 1}
}

func (r *fakeLoanHistoryRepo) Create(_ context.Context, history *domain.LoanHistory) error {
	if history.Status == domain.LoanStatusLoaned {
		for _, existing := range r.histories {
			if existing.BookName == history.BookName && existing.Status == domain.LoanStatusLoaned {
				return &pgconn.PgError{Code: "23505", ConstraintName: "uq_loan_history_outstanding"}
			}
		}
	}
	history.ID = r.nextID
	history.CreatedAt = time.Now()
	history.UpdatedAt = history.CreatedAt
	r.nextID++
	r.histories = append(r.histories, *history)
	return nil
}

func (r *fakeLoanHistoryRepo) FindOutstandingByBookName(_ context.Context, bookName string) (*domain.LoanHistory, error) {
	for _, history := range r.histories {
		if history.BookName == bookName && history.Status == domain.LoanStatusLoaned {
			found := history
			return &found, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeLoanHistoryRepo) FindOutstandingForUser(_ context.Context, userID int64, bookName string) (*domain.LoanHistory, error) {
	for _, history := range r.histories {
		if history.UserID == userID && history.BookName == bookName && history.Status == domain.LoanStatusLoaned {
			found := history
			return &found, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *fakeLoanHistoryRepo) MarkReturned(_ context.Context, id int64) error {
	for i := range r.histories {
		if r.histories[i].ID == id && r.histories[i].Status == domain.LoanStatusLoaned {
			r.histories[i].Status = domain.LoanStatusReturned
			r.histories[i].UpdatedAt = time.Now()
			return nil
		}
	}
	return pgx.ErrNoRows
}

func (r *fakeLoanHistoryRepo) CountByStatus(_ context.Context, status domain.LoanStatus) (int64, error) {
	var count int64
	for _, history := range r.histories {
		if history.Status == status {
			count++
		}
	}
	return count, nil
}

func (r *fakeLoanHistoryRepo) ListAll(_ context.Context) ([]domain.LoanHistory, error) {
	return append([]domain.LoanHistory{}, r.histories...), nil
}

// seed inserts a ledger entry directly, bypassing the outstanding-loan guard.
func (r *fakeLoanHistoryRepo) seed(userID int64, bookName string, status domain.LoanStatus) domain.LoanHistory {
	history := domain.LoanHistory{
		ID:       r.nextID,
		UserID:   userID,
		BookName: bookName,
		Status:   status,
	}
	r.nextID++
	r.histories = append(r.histories, history)
	return history
}

// recordingDispatcher captures published events for assertions.
type recordingDispatcher struct {
	mu        sync.Mutex
	published []events.Event
}

func (d *recordingDispatcher) Publish(_ context.Context, event events.Event) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.published = append(d.published, event)
	return nil
}

func (d *recordingDispatcher) Subscribe(events.EventType, events.EventHandler) {}

func (d *recordingDispatcher) eventsOfType(eventType events.EventType) []events.Event {
	d.mu.Lock()
	defer d.mu.Unlock()
	var matched []events.Event
	for _, event := range d.published {
		if event.Type == eventType {
			matched = append(matched, event)
		}
	}
	return matched
}
