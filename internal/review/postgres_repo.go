package review

import (
	"context"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepo struct {
	db *pgxpool.Pool
}

func NewPostgresRepo(db *pgxpool.Pool) *PostgresRepo {
	return &PostgresRepo{db: db}
}

func (r *PostgresRepo) ListByBook(ctx context.Context, bookID int64) ([]Review, error) {
	const query = `
		SELECT id, name, rating, review
		FROM reviews
		WHERE book_id = $1
		ORDER BY id`

	rows, err := r.db.Query(ctx, query, bookID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Review{}
	for rows.Next() {
		var rv Review
		if err := rows.Scan(&rv.ID, &rv.Name, &rv.Rating, &rv.Review); err != nil {
			return nil, err
		}
		out = append(out, rv)
	}
	return out, rows.Err()
}

func (r *PostgresRepo) Create(ctx context.Context, nr NewReview) (int64, error) {
	const sql = `
		INSERT INTO reviews (book_id, name, rating, review, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id`

	var id int64
	err := r.db.QueryRow(ctx, sql, nr.BookID, nr.Name, nr.Rating, nr.Review).Scan(&id)
	if err != nil {
		return 0, mapCreateError(err)
	}
	return id, nil
}

// mapCreateError turns the book_id foreign key violation into
// ErrBookNotFound; everything else passes through unchanged.
func mapCreateError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
		return ErrBookNotFound
	}
	return err
}
