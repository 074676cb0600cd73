package book

import (
	"context"
)

// Service composes the listing engine and the claim lifecycle over a
// Repository.
type Service struct {
	repo Repository
}

// NewService creates a new book service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns the summaries matching q. An empty result is ErrNoBooks
// rather than an empty slice; the collection endpoint answers 404 for it.
func (s *Service) List(ctx context.Context, q ListQuery) ([]Summary, error) {
	books, err := s.repo.List(ctx, q)
	if err != nil {
		return nil, err
	}
	if len(books) == 0 {
		return nil, ErrNoBooks
	}
	return books, nil
}

// Get returns the full detail view of one book.
func (s *Service) Get(ctx context.Context, id int64) (Detail, error) {
	return s.repo.GetByID(ctx, id)
}

// Create inserts a new, unclaimed book.
func (s *Service) Create(ctx context.Context, nb NewBook) (int64, error) {
	return s.repo.Create(ctx, nb)
}

// Claim transitions a book from unclaimed to claimed by name/email.
// Guards run in order: existence, then state. The write itself re-checks
// the state, so a claim that loses a race also reports ErrAlreadyClaimed.
func (s *Service) Claim(ctx context.Context, id int64, name, email string) error {
	state, err := s.repo.GetClaim(ctx, id)
	if err != nil {
		return err
	}
	if state.IsClaimed() {
		return ErrAlreadyClaimed
	}

	applied, err := s.repo.Claim(ctx, id, name, email)
	if err != nil {
		return err
	}
	if !applied {
		return ErrAlreadyClaimed
	}
	return nil
}

// Return transitions a book from claimed back to unclaimed. Guards run in
// order: existence, then state, then ownership — only the email that claimed
// the book may release it, compared case-sensitively.
func (s *Service) Return(ctx context.Context, id int64, email string) error {
	state, err := s.repo.GetClaim(ctx, id)
	if err != nil {
		return err
	}
	if !state.IsClaimed() {
		return ErrNotClaimed
	}
	if _, holderEmail, _ := state.Holder(); holderEmail != email {
		return ErrClaimerMismatch
	}

	applied, err := s.repo.Release(ctx, id, email)
	if err != nil {
		return err
	}
	if !applied {
		return ErrNotClaimed
	}
	return nil
}
