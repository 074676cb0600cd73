package httpx

import (
	"net/http"

	"github.com/google/uuid"
)

// HeaderRequestID is the header under which every response carries the
// id that tags its log lines.
const HeaderRequestID = "X-Request-Id"

// RequestIDMiddleware assigns each request an id for correlation across
// log lines. A caller-supplied X-Request-Id is honored when it is a
// well-formed UUID; anything else is replaced with a fresh one.
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := incomingRequestID(r)
		if id == "" {
			id = uuid.NewString()
		}

		w.Header().Set(HeaderRequestID, id)
		r = r.WithContext(ContextWithRequestID(r.Context(), id))
		next.ServeHTTP(w, r)
	})
}

func incomingRequestID(r *http.Request) string {
	candidate := r.Header.Get(HeaderRequestID)
	if candidate == "" {
		return ""
	}
	if _, err := uuid.Parse(candidate); err != nil {
		return ""
	}
	return candidate
}
