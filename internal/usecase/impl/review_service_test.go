package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestReviewService(store *memStore) usecase.ReviewUsecase {
	return NewReviewService(ReviewServiceParams{
		TxManager:   store,
		ReviewRepo:  store.ReviewRepo(),
		ProductRepo: store.ProductRepo(),
		UserRepo:    store.UserRepo(),
		Config:      newTestConfig(0),
		Logger:      newDiscardLogger(),
	})
}

func TestReviewService_CreateReview_UpdatesRating(t *testing.T) {
	store := newMemStore()
	asha := store.addUser("asha@example.com", "Asha")
	ravi := store.addUser("ravi@example.com", "Ravi")
	kettle := store.addProduct("Steel Kettle", "1299", 4)
	reviewService := newTestReviewService(store)
	ctx := context.Background()

	review, err := reviewService.CreateReview(ctx, asha.ID, &usecase.CreateReviewInput{
		ProductSlug: kettle.Slug, Rating: 5, Comment: "  Boils fast.  ",
	})
	require.NoError(t, err)
	assert.Equal(t, "Boils fast.", review.Comment)
	assert.Equal(t, entity.ReviewAuthor{ID: asha.ID, Name: "Asha"}, review.User)

	_, err = reviewService.CreateReview(ctx, ravi.ID, &usecase.CreateReviewInput{ProductSlug: kettle.Slug, Rating: 2})
	require.NoError(t, err)

	assert.Equal(t, entity.Rating{Average: 3.5, Count: 2}, store.product(kettle.ID).Rating)

	reviews, err := reviewService.ListProductReviews(ctx, kettle.Slug)
	require.NoError(t, err)
	assert.Len(t, reviews, 2)
}

func TestReviewService_CreateReview_Rejections(t *testing.T) {
	store := newMemStore()
	asha := store.addUser("asha@example.com", "Asha")
	kettle := store.addProduct("Steel Kettle", "1299", 4)
	reviewService := newTestReviewService(store)
	ctx := context.Background()

	for _, rating := range []int{0, 6} {
		_, err := reviewService.CreateReview(ctx, asha.ID, &usecase.CreateReviewInput{ProductSlug: kettle.Slug, Rating: rating})
		assertDomainError(t, err, domainerrors.ErrInvalidRating)
	}

	_, err := reviewService.CreateReview(ctx, asha.ID, &usecase.CreateReviewInput{ProductSlug: "missing", Rating: 4})
	assertDomainError(t, err, domainerrors.ErrProductNotFound)

	_, err = reviewService.CreateReview(ctx, asha.ID, &usecase.CreateReviewInput{ProductSlug: kettle.Slug, Rating: 4})
	require.NoError(t, err)
	_, err = reviewService.CreateReview(ctx, asha.ID, &usecase.CreateReviewInput{ProductSlug: kettle.Slug, Rating: 1})
	assertDomainError(t, err, domainerrors.ErrReviewAlreadyExists)

	assert.Equal(t, entity.Rating{Average: 4, Count: 1}, store.product(kettle.ID).Rating)
}

func TestReviewService_DeleteOwnReview(t *testing.T) {
	store := newMemStore()
	asha := store.addUser("asha@example.com", "Asha")
	ravi := store.addUser("ravi@example.com", "Ravi")
	kettle := store.addProduct("Steel Kettle", "1299", 4)
	reviewService := newTestReviewService(store)
	ctx := context.Background()

	review, err := reviewService.CreateReview(ctx, asha.ID, &usecase.CreateReviewInput{ProductSlug: kettle.Slug, Rating: 4})
	require.NoError(t, err)

	err = reviewService.DeleteOwnReview(ctx, ravi.ID, review.ID)
	assertDomainError(t, err, domainerrors.ErrReviewForbidden)
	assert.Equal(t, 1, store.product(kettle.ID).Rating.Count)

	require.NoError(t, reviewService.DeleteOwnReview(ctx, asha.ID, review.ID))
	assert.Equal(t, entity.Rating{}, store.product(kettle.ID).Rating)

	err = reviewService.DeleteOwnReview(ctx, asha.ID, review.ID)
	assertDomainError(t, err, domainerrors.ErrReviewNotFound)
}

func TestReviewService_AdminListAndDelete(t *testing.T) {
	store := newMemStore()
	kettle := store.addProduct("Steel Kettle", "1299", 4)
	reviewService := newTestReviewService(store)
	ctx := context.Background()

	var ids []uuid.UUID
	for i, email := range []string{"a@example.com", "b@example.com", "c@example.com"} {
		user := store.addUser(email, email)
		review, err := reviewService.CreateReview(ctx, user.ID, &usecase.CreateReviewInput{ProductSlug: kettle.Slug, Rating: i + 3})
		require.NoError(t, err)
		ids = append(ids, review.ID)
	}

	page, err := reviewService.ListReviews(ctx, entity.PageRequest{Page: 1, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, 3, page.Total)
	assert.Len(t, page.Items, 2)
	assert.Equal(t, 2, page.TotalPages)

	require.NoError(t, reviewService.DeleteReview(ctx, ids[2]))
	assert.Equal(t, entity.Rating{Average: 3.5, Count: 2}, store.product(kettle.ID).Rating)
}
