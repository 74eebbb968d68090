package handler

import (
	"bytes"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strings"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	mockUsecase "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type adminStoreMocks struct {
	store  *mockUsecase.MockStoreUsecase
	order  *mockUsecase.MockOrderUsecase
	upload *mockUsecase.MockUploadUsecase
}

func newTestAdminStoreHandler(t *testing.T) (*AdminStoreHandler, adminStoreMocks) {
	t.Helper()

	m := adminStoreMocks{
		store:  mockUsecase.NewMockStoreUsecase(t),
		order:  mockUsecase.NewMockOrderUsecase(t),
		upload: mockUsecase.NewMockUploadUsecase(t),
	}

	return NewAdminStoreHandler(AdminStoreHandlerParams{
		StoreUC:  m.store,
		OrderUC:  m.order,
		UploadUC: m.upload,
		Logger:   slog.Default(),
	}), m
}

func TestAdminStoreHandler_ListOrders_StatusFilter(t *testing.T) {
	h, m := newTestAdminStoreHandler(t)

	paid := entity.OrderStatusPaid
	m.order.EXPECT().ListOrders(mock.Anything, &paid, entity.PageRequest{Page: 1, Limit: 20}).
		Return(entity.Page[*entity.Order]{}, nil).Once()
	m.order.EXPECT().ListOrders(mock.Anything, (*entity.OrderStatus)(nil), entity.PageRequest{}).
		Return(entity.Page[*entity.Order]{}, nil).Once()

	c, rec := newTestContext(http.MethodGet, "/api/admin/orders?status=paid&page=1&limit=20", nil)
	require.NoError(t, h.ListOrders(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	c, rec = newTestContext(http.MethodGet, "/api/admin/orders", nil)
	require.NoError(t, h.ListOrders(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminStoreHandler_UpdateOrderStatus_InvalidTransition(t *testing.T) {
	h, m := newTestAdminStoreHandler(t)
	orderID := uuid.New()

	m.order.EXPECT().UpdateStatus(mock.Anything, orderID, entity.OrderStatusShipped).
		Return(nil, errors.WithStack(domainerrors.ErrInvalidOrderTransition.WithDetails("pending_payment -> shipped"))).Once()

	c, rec := newTestContext(http.MethodPatch, "/api/admin/orders/x/status", strings.NewReader(`{"status":"shipped"}`))
	c.SetParamNames("id")
	c.SetParamValues(orderID.String())

	require.NoError(t, h.UpdateOrderStatus(c))
	assert.Equal(t, domainerrors.ErrInvalidOrderTransition.HTTPCode(), rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, domainerrors.ErrInvalidOrderTransition.ErrorCode(), env.Error.Code)
	assert.JSONEq(t, `"pending_payment -> shipped"`, string(env.Error.Details))
}

func TestAdminStoreHandler_UploadImage(t *testing.T) {
	h, m := newTestAdminStoreHandler(t)
	content := []byte("\x89PNG\r\n\x1a\nfake")

	m.upload.EXPECT().UploadImage(mock.Anything, mock.MatchedBy(func(in *usecase.UploadImageInput) bool {
		if in.Filename != "mug.png" || in.Size != int64(len(content)) {
			return false
		}
		got, err := io.ReadAll(in.Body)

		return err == nil && bytes.Equal(got, content)
	})).Return(&service.UploadResult{Key: "images/abc.png", URL: "https://cdn.example/images/abc.png"}, nil).Once()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", "mug.png")
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	c, rec := newTestContext(http.MethodPost, "/api/admin/uploads", &body)
	c.Request().Header.Set(echo.HeaderContentType, mw.FormDataContentType())

	require.NoError(t, h.UploadImage(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"url":"https://cdn.example/images/abc.png"`)
}

func TestAdminStoreHandler_UploadImage_MissingFile(t *testing.T) {
	h, _ := newTestAdminStoreHandler(t)

	c, rec := newTestContext(http.MethodPost, "/api/admin/uploads", strings.NewReader(`{}`))

	require.NoError(t, h.UploadImage(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAdminStoreHandler_DeleteImage_UsesWildcardKey(t *testing.T) {
	h, m := newTestAdminStoreHandler(t)

	m.upload.EXPECT().DeleteImage(mock.Anything, "images/2026/abc.png").Return(nil).Once()

	c, rec := newTestContext(http.MethodDelete, "/api/admin/uploads/images/2026/abc.png", nil)
	c.SetParamNames("*")
	c.SetParamValues("images/2026/abc.png")

	require.NoError(t, h.DeleteImage(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
