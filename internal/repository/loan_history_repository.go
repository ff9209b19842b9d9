package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/library-service/internal/domain"
)

// LoanHistoryRepository encapsulates the loan ledger. A partial unique index
// on (book_name) WHERE status='LOANED' guarantees at most one outstanding
// loan per book name even under concurrent inserts.
type LoanHistoryRepository interface {
	Create(ctx context.Context, history *domain.LoanHistory) error
	FindOutstandingByBookName(ctx context.Context, bookName string) (*domain.LoanHistory, error)
	FindOutstandingForUser(ctx context.Context, userID int64, bookName string) (*domain.LoanHistory, error)
	MarkReturned(ctx context.Context, id int64) error
	CountByStatus(ctx context.Context, status domain.LoanStatus) (int64, error)
	ListAll(ctx context.Context) ([]domain.LoanHistory, error)
}

type loanHistoryRepository struct {
	pool *pgxpool.Pool
}

// NewLoanHistoryRepository returns a Postgres-backed implementation.
func NewLoanHistoryRepository(pool *pgxpool.Pool) LoanHistoryRepository {
	return &loanHistoryRepository{pool: pool}
}

func (r *loanHistoryRepository) Create(ctx context.Context, history *domain.LoanHistory) error {
	const query = `
        INSERT INTO loan_history (user_id, book_name, status)
        VALUES ($1, $2, $3)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		history.UserID,
		history.BookName,
		history.Status,
	).Scan(&history.ID, &history.CreatedAt, &history.UpdatedAt)
}

func (r *loanHistoryRepository) FindOutstandingByBookName(ctx context.Context, bookName string) (*domain.LoanHistory, error) {
	const query = `
        SELECT id, user_id, book_name, status, created_at, updated_at
        FROM loan_history WHERE book_name=$1 AND status=$2
        LIMIT 1`
	return r.fetchSingle(ctx, query, bookName, domain.LoanStatusLoaned)
}

func (r *loanHistoryRepository) FindOutstandingForUser(ctx context.Context, userID int64, bookName string) (*domain.LoanHistory, error) {
	const query = `
        SELECT id, user_id, book_name, status, created_at, updated_at
        FROM loan_history WHERE user_id=$1 AND book_name=$2 AND status=$3
        LIMIT 1`
	return r.fetchSingle(ctx, query, userID, bookName, domain.LoanStatusLoaned)
}

func (r *loanHistoryRepository) fetchSingle(ctx context.Context, query string, args ...any) (*domain.LoanHistory, error) {
	var history domain.LoanHistory
	if err := r.pool.QueryRow(ctx, query, args...).Scan(
		&history.ID,
		&history.UserID,
		&history.BookName,
		&history.Status,
		&history.CreatedAt,
		&history.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &history, nil
}

func (r *loanHistoryRepository) MarkReturned(ctx context.Context, id int64) error {
	const query = `
        UPDATE loan_history SET status=$1, updated_at=NOW()
        WHERE id=$2 AND status=$3`

	cmd, err := r.pool.Exec(ctx, query, domain.LoanStatusReturned, id, domain.LoanStatusLoaned)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *loanHistoryRepository) CountByStatus(ctx context.Context, status domain.LoanStatus) (int64, error) {
	const query = `SELECT COUNT(id) FROM loan_history WHERE status=$1`

	var count int64
	if err := r.pool.QueryRow(ctx, query, status).Scan(&count); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, err
	}
	return count, nil
}

func (r *loanHistoryRepository) ListAll(ctx context.Context) ([]domain.LoanHistory, error) {
	const query = `
        SELECT id, user_id, book_name, status, created_at, updated_at
        FROM loan_history ORDER BY id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.LoanHistory
	for rows.Next() {
		var history domain.LoanHistory
		if err := rows.Scan(
			&history.ID,
			&history.UserID,
			&history.BookName,
			&history.Status,
			&history.CreatedAt,
			&history.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, history)
	}
	return result, rows.Err()
}
