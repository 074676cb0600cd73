package httpx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type claimPayload struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

func TestValidateStruct(t *testing.T) {
	t.Run("valid struct has no errors", func(t *testing.T) {
		errs := ValidateStruct(claimPayload{Name: "test", Email: "test@test.com"})

		assert.Nil(t, errs)
	})

	t.Run("missing fields are reported under their json names", func(t *testing.T) {
		errs := ValidateStruct(claimPayload{})

		require.Len(t, errs, 2)
		assert.Equal(t, []string{"The name field is required."}, errs["name"])
		assert.Equal(t, []string{"The email field is required."}, errs["email"])
	})

	t.Run("malformed email", func(t *testing.T) {
		errs := ValidateStruct(claimPayload{Name: "test", Email: "test"})

		require.Len(t, errs, 1)
		assert.Equal(t, []string{"The email must be a valid email address."}, errs["email"])
	})
}
