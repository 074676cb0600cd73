package book

import (
	"net/url"
	"strconv"

	"bookdrop/internal/httpx"
)

// ListQuery holds the typed, already-validated listing filters. All criteria
// are optional and compose with AND semantics.
type ListQuery struct {
	Claimed *bool
	GenreID *int64
	Search  string
}

// ParseListQuery turns raw query parameters into a typed ListQuery. Loose
// strings never cross this boundary: an unparseable claimed or genre value
// is a field error, not a silently dropped filter.
func ParseListQuery(values url.Values) (ListQuery, httpx.FieldErrors) {
	var q ListQuery
	errs := httpx.FieldErrors{}

	if raw := values.Get("claimed"); raw != "" {
		claimed, err := strconv.ParseBool(raw)
		if err != nil {
			errs.Add("claimed", "The claimed field must be true or false.")
		} else {
			q.Claimed = &claimed
		}
	}

	if raw := values.Get("genre"); raw != "" {
		genreID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			errs.Add("genre", "The genre must be an integer.")
		} else {
			q.GenreID = &genreID
		}
	}

	q.Search = values.Get("search")

	if len(errs) > 0 {
		return ListQuery{}, errs
	}
	return q, nil
}
