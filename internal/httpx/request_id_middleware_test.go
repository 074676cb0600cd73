package httpx

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serveWithRequestID(t *testing.T, incoming string) (*httptest.ResponseRecorder, string) {
	t.Helper()

	var seenInContext string
	handler := RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenInContext = RequestIDFrom(r)
	}))

	r := httptest.NewRequest(http.MethodGet, "/books", nil)
	if incoming != "" {
		r.Header.Set(HeaderRequestID, incoming)
	}
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)
	return w, seenInContext
}

func TestRequestIDMiddleware(t *testing.T) {
	t.Run("generates an id when none is supplied", func(t *testing.T) {
		w, inContext := serveWithRequestID(t, "")

		echoed := w.Header().Get(HeaderRequestID)
		require.NotEmpty(t, echoed)
		_, err := uuid.Parse(echoed)
		assert.NoError(t, err)
		assert.Equal(t, echoed, inContext)
	})

	t.Run("echoes a well-formed caller id", func(t *testing.T) {
		supplied := uuid.NewString()

		w, inContext := serveWithRequestID(t, supplied)

		assert.Equal(t, supplied, w.Header().Get(HeaderRequestID))
		assert.Equal(t, supplied, inContext)
	})

	t.Run("replaces a malformed caller id", func(t *testing.T) {
		w, inContext := serveWithRequestID(t, "not-a-uuid")

		echoed := w.Header().Get(HeaderRequestID)
		require.NotEqual(t, "not-a-uuid", echoed)
		_, err := uuid.Parse(echoed)
		assert.NoError(t, err)
		assert.Equal(t, echoed, inContext)
	})
}
