package book

import "errors"

var (
	// ErrNotFound is returned when no book exists with the requested id.
	ErrNotFound = errors.New("book not found")

	// ErrNoBooks is returned when a listing matches no books at all.
	ErrNoBooks = errors.New("no books found")

	// ErrAlreadyClaimed rejects a claim on a book that already has a holder.
	ErrAlreadyClaimed = errors.New("book already claimed")

	// ErrNotClaimed rejects a return on a book nobody holds.
	ErrNotClaimed = errors.New("book not currently claimed")

	// ErrClaimerMismatch rejects a return by an email other than the claimer's.
	ErrClaimerMismatch = errors.New("email did not claim this book")

	// ErrGenreNotFound is returned when a new book references a missing genre.
	ErrGenreNotFound = errors.New("genre not found")
)

// Genre is the reference data projected into book views.
type Genre struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Review is a reader review attached to a book's detail view.
type Review struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Rating int    `json:"rating"`
	Review string `json:"review"`
}

// Summary is the reduced projection returned by the collection endpoint.
type Summary struct {
	ID     int64  `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
	Image  string `json:"image"`
	Genre  Genre  `json:"genre"`
}

// Detail is the full projection returned by the single-book endpoint.
type Detail struct {
	ID            int64    `json:"id"`
	Title         string   `json:"title"`
	Author        string   `json:"author"`
	Blurb         string   `json:"blurb"`
	Image         string   `json:"image"`
	ClaimedByName *string  `json:"claimed_by_name"`
	PageCount     int      `json:"page_count"`
	Year          int      `json:"year"`
	Genre         Genre    `json:"genre"`
	ISBN10        string   `json:"isbn10"`
	ISBN13        string   `json:"isbn13"`
	Language      string   `json:"language"`
	Reviews       []Review `json:"reviews"`
}

// NewBook carries the validated fields for creating a book. Books always
// start unclaimed.
type NewBook struct {
	Title     string
	Author    string
	GenreID   int64
	Blurb     string
	Image     string
	PageCount int
	Year      int
	ISBN10    string
	ISBN13    string
	Language  string
}

// ClaimState is the two-state variant of a book's lifecycle: either nobody
// holds the book, or exactly one person (name and email) does. Constructing
// it through Unclaimed/ClaimedBy makes a half-set holder unrepresentable.
type ClaimState struct {
	name    string
	email   string
	claimed bool
}

// Unclaimed is the state of a book with no holder.
func Unclaimed() ClaimState {
	return ClaimState{}
}

// ClaimedBy is the state of a book held by name/email.
func ClaimedBy(name, email string) ClaimState {
	return ClaimState{name: name, email: email, claimed: true}
}

// IsClaimed reports whether the book has a holder.
func (c ClaimState) IsClaimed() bool {
	return c.claimed
}

// Holder returns the claimer's name and email; ok is false when unclaimed.
func (c ClaimState) Holder() (name, email string, ok bool) {
	return c.name, c.email, c.claimed
}
