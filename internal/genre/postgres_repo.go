package genre

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

func (r *PostgresRepo) List(ctx context.Context) ([]Genre, error) {
	const query = `SELECT id, name FROM genres ORDER BY name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Genre{}
	for rows.Next() {
		var g Genre
		if err := rows.Scan(&g.ID, &g.Name); err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

func (r *PostgresRepo) Create(ctx context.Context, name string) (int64, error) {
	const sql = `INSERT INTO genres (name) VALUES ($1) RETURNING id`

	var id int64
	if err := r.db.QueryRow(ctx, sql, name).Scan(&id); err != nil {
		return 0, mapCreateError(err)
	}
	return id, nil
}

// mapCreateError turns the unique constraint on genres.name into
// ErrAlreadyExists; everything else passes through unchanged.
func mapCreateError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return ErrAlreadyExists
	}
	return err
}
