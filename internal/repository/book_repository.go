package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/library-service/internal/domain"
)

// CategoryCount is one row of the per-category statistics aggregation.
// Only categories that actually occur in the catalog are reported.
type CategoryCount struct {
	Category domain.BookCategory
	Count    int64
}

// BookRepository encapsulates catalog persistence.
type BookRepository interface {
	Create(ctx context.Context, book *domain.Book) error
	GetStatistics(ctx context.Context) ([]CategoryCount, error)
}

type bookRepository struct {
	pool *pgxpool.Pool
}

// NewBookRepository returns a Postgres-backed implementation.
func NewBookRepository(pool *pgxpool.Pool) BookRepository {
	return &bookRepository{pool: pool}
}

func (r *bookRepository) Create(ctx context.Context, book *domain.Book) error {
	const query = `
        INSERT INTO book (name, category)
        VALUES ($1, $2)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		book.Name,
		book.Category,
	).Scan(&book.ID, &book.CreatedAt, &book.UpdatedAt)
}

func (r *bookRepository) GetStatistics(ctx context.Context) ([]CategoryCount, error) {
	const query = `
        SELECT category, COUNT(id)
        FROM book GROUP BY category`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []CategoryCount
	for rows.Next() {
		var stat CategoryCount
		if err := rows.Scan(&stat.Category, &stat.Count); err != nil {
			return nil, err
		}
		result = append(result, stat)
	}
	return result, rows.Err()
}
