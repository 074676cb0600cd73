package genre

import (
	"context"
	"errors"
)

// ErrAlreadyExists is returned when a genre with the same name exists.
var ErrAlreadyExists = errors.New("genre already exists")

// Genre is immutable reference data; books point at it via genre_id.
type Genre struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Repository interface {
	List(ctx context.Context) ([]Genre, error)
	Create(ctx context.Context, name string) (int64, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]Genre, error) {
	return s.repo.List(ctx)
}

func (s *Service) Create(ctx context.Context, name string) (int64, error) {
	return s.repo.Create(ctx, name)
}
