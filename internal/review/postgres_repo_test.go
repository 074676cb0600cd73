package review

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestMapCreateError(t *testing.T) {
	t.Run("unknown book", func(t *testing.T) {
		err := mapCreateError(&pgconn.PgError{
			Code:           pgerrcode.ForeignKeyViolation,
			ConstraintName: "reviews_book_id_fkey",
		})

		assert.ErrorIs(t, err, ErrBookNotFound)
	})

	t.Run("wrapped constraint error", func(t *testing.T) {
		wrapped := fmt.Errorf("insert review: %w", &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation})

		assert.ErrorIs(t, mapCreateError(wrapped), ErrBookNotFound)
	})

	t.Run("other database errors pass through", func(t *testing.T) {
		pgErr := &pgconn.PgError{Code: pgerrcode.CheckViolation}

		assert.Equal(t, error(pgErr), mapCreateError(pgErr))

		plain := errors.New("connection reset")
		assert.Equal(t, plain, mapCreateError(plain))
	})
}
