package book

import (
	"context"
	"errors"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect import
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const dialectPostgres = "postgres"

type PostgresRepo struct {
	db *pgxpool.Pool
}

func NewPostgresRepo(db *pgxpool.Pool) *PostgresRepo {
	return &PostgresRepo{db: db}
}

// buildListSQL translates the typed filters into one prepared SELECT over
// books joined with genres. Criteria compose with AND.
func buildListSQL(q ListQuery) (string, []interface{}, error) {
	ds := goqu.Dialect(dialectPostgres).
		From(goqu.T("books").As("b")).
		InnerJoin(
			goqu.T("genres").As("g"),
			goqu.On(goqu.I("g.id").Eq(goqu.I("b.genre_id"))),
		).
		Select(
			goqu.I("b.id"), goqu.I("b.title"), goqu.I("b.author"), goqu.I("b.image"),
			goqu.I("g.id"), goqu.I("g.name"),
		).
		Order(goqu.I("b.id").Asc())

	if q.Claimed != nil {
		if *q.Claimed {
			ds = ds.Where(goqu.I("b.claimed").IsTrue())
		} else {
			ds = ds.Where(goqu.I("b.claimed").IsFalse())
		}
	}
	if q.GenreID != nil {
		ds = ds.Where(goqu.I("b.genre_id").Eq(*q.GenreID))
	}
	if q.Search != "" {
		ds = ds.Where(goqu.I("b.title").ILike("%" + q.Search + "%"))
	}

	return ds.Prepared(true).ToSQL()
}

func (r *PostgresRepo) List(ctx context.Context, q ListQuery) ([]Summary, error) {
	sql, args, err := buildListSQL(q)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Summary
	for rows.Next() {
		var s Summary
		if err := rows.Scan(&s.ID, &s.Title, &s.Author, &s.Image, &s.Genre.ID, &s.Genre.Name); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *PostgresRepo) GetByID(ctx context.Context, id int64) (Detail, error) {
	const bookSQL = `
		SELECT b.id, b.title, b.author, b.blurb, b.image, b.claimed_by_name,
		       b.page_count, b.year, g.id, g.name, b.isbn10, b.isbn13, b.language
		FROM books b
		JOIN genres g ON g.id = b.genre_id
		WHERE b.id = $1`

	var d Detail
	err := r.db.QueryRow(ctx, bookSQL, id).Scan(
		&d.ID, &d.Title, &d.Author, &d.Blurb, &d.Image, &d.ClaimedByName,
		&d.PageCount, &d.Year, &d.Genre.ID, &d.Genre.Name, &d.ISBN10, &d.ISBN13, &d.Language,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Detail{}, ErrNotFound
		}
		return Detail{}, err
	}

	const reviewsSQL = `
		SELECT id, name, rating, review
		FROM reviews
		WHERE book_id = $1
		ORDER BY id`

	rows, err := r.db.Query(ctx, reviewsSQL, id)
	if err != nil {
		return Detail{}, err
	}
	defer rows.Close()

	d.Reviews = []Review{}
	for rows.Next() {
		var rv Review
		if err := rows.Scan(&rv.ID, &rv.Name, &rv.Rating, &rv.Review); err != nil {
			return Detail{}, err
		}
		d.Reviews = append(d.Reviews, rv)
	}
	return d, rows.Err()
}

func (r *PostgresRepo) GetClaim(ctx context.Context, id int64) (ClaimState, error) {
	const query = `
		SELECT claimed, claimed_by_name, claimed_by_email
		FROM books
		WHERE id = $1`

	var claimed bool
	var name, email *string
	err := r.db.QueryRow(ctx, query, id).Scan(&claimed, &name, &email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ClaimState{}, ErrNotFound
		}
		return ClaimState{}, err
	}

	if !claimed || name == nil || email == nil {
		return Unclaimed(), nil
	}
	return ClaimedBy(*name, *email), nil
}

func (r *PostgresRepo) Create(ctx context.Context, nb NewBook) (int64, error) {
	const sql = `
		INSERT INTO books (title, author, genre_id, blurb, image, page_count, year,
		                   isbn10, isbn13, language, claimed, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, FALSE, NOW(), NOW())
		RETURNING id`

	var id int64
	err := r.db.QueryRow(ctx, sql,
		nb.Title, nb.Author, nb.GenreID, nb.Blurb, nb.Image, nb.PageCount, nb.Year,
		nb.ISBN10, nb.ISBN13, nb.Language,
	).Scan(&id)
	if err != nil {
		return 0, mapCreateError(err)
	}
	return id, nil
}

// mapCreateError turns the genre_id foreign key violation into
// ErrGenreNotFound; everything else passes through unchanged.
func mapCreateError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
		return ErrGenreNotFound
	}
	return err
}

// Claim sets the holder only while the book is still unclaimed. The state
// check lives in the UPDATE itself, so concurrent claims cannot both apply.
func (r *PostgresRepo) Claim(ctx context.Context, id int64, name, email string) (bool, error) {
	const sql = `
		UPDATE books
		SET claimed = TRUE, claimed_by_name = $2, claimed_by_email = $3, updated_at = NOW()
		WHERE id = $1 AND NOT claimed`

	tag, err := r.db.Exec(ctx, sql, id, name, email)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// Release clears the holder only while the book is claimed by email.
func (r *PostgresRepo) Release(ctx context.Context, id int64, email string) (bool, error) {
	const sql = `
		UPDATE books
		SET claimed = FALSE, claimed_by_name = NULL, claimed_by_email = NULL, updated_at = NOW()
		WHERE id = $1 AND claimed AND claimed_by_email = $2`

	tag, err := r.db.Exec(ctx, sql, id, email)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
