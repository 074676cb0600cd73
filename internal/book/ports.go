package book

import (
	"context"
)

// Repository defines the contract for book storage.
//
// Claim and Release are compare-and-set writes: they only apply when the
// stored claim state still matches the expected one and report whether they
// did, so two concurrent claims on the same book cannot both succeed.
type Repository interface {
	List(ctx context.Context, q ListQuery) ([]Summary, error)
	GetByID(ctx context.Context, id int64) (Detail, error)
	GetClaim(ctx context.Context, id int64) (ClaimState, error)
	Create(ctx context.Context, nb NewBook) (int64, error)
	Claim(ctx context.Context, id int64, name, email string) (bool, error)
	Release(ctx context.Context, id int64, email string) (bool, error)
}
