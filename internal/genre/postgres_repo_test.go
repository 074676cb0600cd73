package genre

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestMapCreateError(t *testing.T) {
	t.Run("duplicate name", func(t *testing.T) {
		err := mapCreateError(&pgconn.PgError{
			Code:           pgerrcode.UniqueViolation,
			ConstraintName: "genres_name_key",
		})

		assert.ErrorIs(t, err, ErrAlreadyExists)
	})

	t.Run("wrapped constraint error", func(t *testing.T) {
		wrapped := fmt.Errorf("insert genre: %w", &pgconn.PgError{Code: pgerrcode.UniqueViolation})

		assert.ErrorIs(t, mapCreateError(wrapped), ErrAlreadyExists)
	})

	t.Run("other database errors pass through", func(t *testing.T) {
		pgErr := &pgconn.PgError{Code: pgerrcode.NotNullViolation}

		assert.Equal(t, error(pgErr), mapCreateError(pgErr))

		plain := errors.New("connection reset")
		assert.Equal(t, plain, mapCreateError(plain))
	})
}
