package review

import (
	"context"
	"errors"
)

// ErrBookNotFound is returned when the reviewed book does not exist.
var ErrBookNotFound = errors.New("book not found")

// Review is a reader review of one book.
type Review struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Rating int    `json:"rating"`
	Review string `json:"review"`
}

// NewReview carries the validated fields for creating a review.
type NewReview struct {
	BookID int64
	Name   string
	Rating int
	Review string
}

type Repository interface {
	ListByBook(ctx context.Context, bookID int64) ([]Review, error)
	Create(ctx context.Context, nr NewReview) (int64, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListByBook(ctx context.Context, bookID int64) ([]Review, error) {
	return s.repo.ListByBook(ctx, bookID)
}

func (s *Service) Create(ctx context.Context, nr NewReview) (int64, error) {
	return s.repo.Create(ctx, nr)
}
