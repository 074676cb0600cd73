package book_test

import (
	"context"
	"errors"
	"testing"

	"bookdrop/internal/book"
	"bookdrop/internal/book/mocks"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRepository(ctrl)
	svc := book.NewService(mockRepo)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		summaries := []book.Summary{
			{ID: 1, Title: "Vaseline", Author: "A. Author", Genre: book.Genre{ID: 1, Name: "Fiction"}},
		}
		mockRepo.EXPECT().List(ctx, book.ListQuery{}).Return(summaries, nil)

		got, err := svc.List(ctx, book.ListQuery{})

		assert.NoError(t, err)
		assert.Equal(t, summaries, got)
	})

	t.Run("empty result is ErrNoBooks, not an empty slice", func(t *testing.T) {
		mockRepo.EXPECT().List(ctx, gomock.Any()).Return(nil, nil)

		_, err := svc.List(ctx, book.ListQuery{})

		assert.True(t, errors.Is(err, book.ErrNoBooks))
	})

	t.Run("store error passes through", func(t *testing.T) {
		mockRepo.EXPECT().List(ctx, gomock.Any()).Return(nil, context.DeadlineExceeded)

		_, err := svc.List(ctx, book.ListQuery{})

		assert.True(t, errors.Is(err, context.DeadlineExceeded))
	})
}

func TestService_Claim(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRepository(ctrl)
	svc := book.NewService(mockRepo)
	ctx := context.Background()

	t.Run("missing book is checked before anything else", func(t *testing.T) {
		mockRepo.EXPECT().GetClaim(ctx, int64(99)).Return(book.ClaimState{}, book.ErrNotFound)

		err := svc.Claim(ctx, 99, "test", "test@test.com")

		assert.True(t, errors.Is(err, book.ErrNotFound))
	})

	t.Run("claimed book rejects a second claim", func(t *testing.T) {
		mockRepo.EXPECT().GetClaim(ctx, int64(1)).Return(book.ClaimedBy("first", "first@test.com"), nil)

		err := svc.Claim(ctx, 1, "test", "test@test.com")

		assert.True(t, errors.Is(err, book.ErrAlreadyClaimed))
	})

	t.Run("unclaimed book is claimed", func(t *testing.T) {
		mockRepo.EXPECT().GetClaim(ctx, int64(1)).Return(book.Unclaimed(), nil)
		mockRepo.EXPECT().Claim(ctx, int64(1), "test", "test@test.com").Return(true, nil)

		err := svc.Claim(ctx, 1, "test", "test@test.com")

		assert.NoError(t, err)
	})

	t.Run("losing the claim race reports already claimed", func(t *testing.T) {
		mockRepo.EXPECT().GetClaim(ctx, int64(1)).Return(book.Unclaimed(), nil)
		mockRepo.EXPECT().Claim(ctx, int64(1), "test", "test@test.com").Return(false, nil)

		err := svc.Claim(ctx, 1, "test", "test@test.com")

		assert.True(t, errors.Is(err, book.ErrAlreadyClaimed))
	})
}

func TestService_Return(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockRepository(ctrl)
	svc := book.NewService(mockRepo)
	ctx := context.Background()

	t.Run("missing book", func(t *testing.T) {
		mockRepo.EXPECT().GetClaim(ctx, int64(99)).Return(book.ClaimState{}, book.ErrNotFound)

		err := svc.Return(ctx, 99, "test@test.com")

		assert.True(t, errors.Is(err, book.ErrNotFound))
	})

	t.Run("state is checked before ownership", func(t *testing.T) {
		// Unclaimed with a non-matching email must yield not-claimed, not a
		// mismatch.
		mockRepo.EXPECT().GetClaim(ctx, int64(1)).Return(book.Unclaimed(), nil)

		err := svc.Return(ctx, 1, "test@test.com")

		assert.True(t, errors.Is(err, book.ErrNotClaimed))
	})

	t.Run("email comparison is case-sensitive", func(t *testing.T) {
		mockRepo.EXPECT().GetClaim(ctx, int64(1)).Return(book.ClaimedBy("test", "Test@test.com"), nil)

		err := svc.Return(ctx, 1, "test@test.com")

		assert.True(t, errors.Is(err, book.ErrClaimerMismatch))
	})

	t.Run("matching email releases the book", func(t *testing.T) {
		mockRepo.EXPECT().GetClaim(ctx, int64(1)).Return(book.ClaimedBy("test", "test@test.com"), nil)
		mockRepo.EXPECT().Release(ctx, int64(1), "test@test.com").Return(true, nil)

		err := svc.Return(ctx, 1, "test@test.com")

		assert.NoError(t, err)
	})

	t.Run("returning twice succeeds once then conflicts", func(t *testing.T) {
		gomock.InOrder(
			mockRepo.EXPECT().GetClaim(ctx, int64(1)).Return(book.ClaimedBy("test", "test@test.com"), nil),
			mockRepo.EXPECT().Release(ctx, int64(1), "test@test.com").Return(true, nil),
			mockRepo.EXPECT().GetClaim(ctx, int64(1)).Return(book.Unclaimed(), nil),
		)

		assert.NoError(t, svc.Return(ctx, 1, "test@test.com"))
		assert.True(t, errors.Is(svc.Return(ctx, 1, "test@test.com"), book.ErrNotClaimed))
	})
}

func TestClaimState(t *testing.T) {
	t.Run("unclaimed has no holder", func(t *testing.T) {
		state := book.Unclaimed()

		assert.False(t, state.IsClaimed())
		_, _, ok := state.Holder()
		assert.False(t, ok)
	})

	t.Run("claimed always has a full holder", func(t *testing.T) {
		state := book.ClaimedBy("test", "test@test.com")

		assert.True(t, state.IsClaimed())
		name, email, ok := state.Holder()
		assert.True(t, ok)
		assert.Equal(t, "test", name)
		assert.Equal(t, "test@test.com", email)
	})
}
