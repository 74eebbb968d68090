package handler

import (
	"log/slog"
	"net/http"
	"strings"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mockUsecase "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestReviewHandler(t *testing.T) (*ReviewHandler, *mockUsecase.MockReviewUsecase) {
	t.Helper()

	uc := mockUsecase.NewMockReviewUsecase(t)

	return NewReviewHandler(ReviewHandlerParams{ReviewUC: uc, Logger: slog.Default()}), uc
}

func TestReviewHandler_CreateReview(t *testing.T) {
	h, uc := newTestReviewHandler(t)
	userID := uuid.New()
	review := &entity.Review{ID: uuid.New(), Rating: 4, Comment: "Soft cotton"}

	uc.EXPECT().CreateReview(mock.Anything, userID, &usecase.CreateReviewInput{
		ProductSlug: "classic-tee",
		Rating:      4,
		Comment:     "Soft cotton",
	}).Return(review, nil).Once()

	c, rec := newTestContext(http.MethodPost, "/api/products/classic-tee/reviews",
		strings.NewReader(`{"rating":4,"comment":"Soft cotton"}`))
	c.SetParamNames("slug")
	c.SetParamValues("classic-tee")
	asUser(c, userID)

	require.NoError(t, h.CreateReview(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, string(decodeEnvelope(t, rec).Data), review.ID.String())
}

func TestReviewHandler_CreateReview_RatingBounds(t *testing.T) {
	for _, body := range []string{`{"rating":0}`, `{"rating":6}`, `{"rating":-1}`, `{}`} {
		t.Run(body, func(t *testing.T) {
			h, _ := newTestReviewHandler(t)

			c, rec := newTestContext(http.MethodPost, "/api/products/classic-tee/reviews", strings.NewReader(body))
			c.SetParamNames("slug")
			c.SetParamValues("classic-tee")
			asUser(c, uuid.New())

			require.NoError(t, h.CreateReview(c))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, "VALIDATION_FAILED", decodeEnvelope(t, rec).Error.Code)
		})
	}
}

func TestReviewHandler_CreateReview_Anonymous(t *testing.T) {
	h, _ := newTestReviewHandler(t)

	c, rec := newTestContext(http.MethodPost, "/api/products/classic-tee/reviews", strings.NewReader(`{"rating":5}`))
	c.SetParamNames("slug")
	c.SetParamValues("classic-tee")

	require.NoError(t, h.CreateReview(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestReviewHandler_DeleteOwnReview(t *testing.T) {
	h, uc := newTestReviewHandler(t)
	userID := uuid.New()
	ownID := uuid.New()
	otherID := uuid.New()

	uc.EXPECT().DeleteOwnReview(mock.Anything, userID, ownID).Return(nil).Once()
	uc.EXPECT().DeleteOwnReview(mock.Anything, userID, otherID).
		Return(errors.WithStack(domainerrors.ErrReviewForbidden)).Once()

	c, rec := newTestContext(http.MethodDelete, "/api/reviews/x", nil)
	c.SetParamNames("id")
	c.SetParamValues(ownID.String())
	asUser(c, userID)

	require.NoError(t, h.DeleteOwnReview(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	c, rec = newTestContext(http.MethodDelete, "/api/reviews/x", nil)
	c.SetParamNames("id")
	c.SetParamValues(otherID.String())
	asUser(c, userID)

	require.NoError(t, h.DeleteOwnReview(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "REVIEW_FORBIDDEN", decodeEnvelope(t, rec).Error.Code)
}

func TestReviewHandler_DeleteOwnReview_BadID(t *testing.T) {
	h, _ := newTestReviewHandler(t)

	c, rec := newTestContext(http.MethodDelete, "/api/reviews/nope", nil)
	c.SetParamNames("id")
	c.SetParamValues("nope")
	asUser(c, uuid.New())

	require.NoError(t, h.DeleteOwnReview(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestReviewHandler_AdminListReviews(t *testing.T) {
	h, uc := newTestReviewHandler(t)

	uc.EXPECT().ListReviews(mock.Anything, entity.PageRequest{Page: 2, Limit: 10}).
		Return(entity.Page[*entity.Review]{Total: 11}, nil).Once()

	c, rec := newTestContext(http.MethodGet, "/api/admin/reviews?page=2&limit=10", nil)

	require.NoError(t, h.AdminListReviews(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
