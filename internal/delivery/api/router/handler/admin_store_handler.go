package handler

import (
	"log/slog"
	"strings"

	"storefront/internal/delivery/api/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// AdminStoreHandlerParams holds dependencies for AdminStoreHandler, injected by Fx.
type AdminStoreHandlerParams struct {
	fx.In

	StoreUC  usecase.StoreUsecase
	OrderUC  usecase.OrderUsecase
	UploadUC usecase.UploadUsecase
	Logger   *slog.Logger
}

// AdminStoreHandler serves shipping, settings, orders, the dashboard and image uploads
// for the back-office.
type AdminStoreHandler struct {
	storeUC  usecase.StoreUsecase
	orderUC  usecase.OrderUsecase
	uploadUC usecase.UploadUsecase
	logger   *slog.Logger
}

// NewAdminStoreHandler is the constructor for AdminStoreHandler
func NewAdminStoreHandler(params AdminStoreHandlerParams) *AdminStoreHandler {
	return &AdminStoreHandler{
		storeUC:  params.StoreUC,
		orderUC:  params.OrderUC,
		uploadUC: params.UploadUC,
		logger:   params.Logger,
	}
}

// ShippingMethodRequest is the editable part of a shipping method
type ShippingMethodRequest struct {
	Name        string          `json:"name" validate:"required,max=100"`
	Description string          `json:"description" validate:"max=500"`
	Rate        decimal.Decimal `json:"rate"`
	MinDays     int             `json:"minDays" validate:"min=0"`
	MaxDays     int             `json:"maxDays" validate:"min=0"`
	Active      bool            `json:"active"`
	SortOrder   int             `json:"sortOrder"`
}

// StoreSettingsRequest replaces the store settings
type StoreSettingsRequest struct {
	StoreName             string          `json:"storeName" validate:"required,max=100"`
	SupportEmail          string          `json:"supportEmail" validate:"omitempty,email"`
	Currency              string          `json:"currency" validate:"required,len=3"`
	TaxRate               decimal.Decimal `json:"taxRate"`
	FreeShippingThreshold decimal.Decimal `json:"freeShippingThreshold"`
	LowStockThreshold     int             `json:"lowStockThreshold" validate:"min=0"`
}

// UpdateOrderStatusRequest moves an order along its lifecycle
type UpdateOrderStatusRequest struct {
	Status entity.OrderStatus `json:"status" validate:"required"`
}

// ListShippingMethods returns every shipping method, inactive ones included
func (h *AdminStoreHandler) ListShippingMethods(c echo.Context) error {
	methods, err := h.storeUC.ListShippingMethods(c.Request().Context(), false)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, methods)
}

// CreateShippingMethod adds a shipping method
func (h *AdminStoreHandler) CreateShippingMethod(c echo.Context) error {
	var req ShippingMethodRequest
	if written, err := bindValid(c, &req, "Invalid shipping method input"); written {
		return err
	}

	method, err := h.storeUC.CreateShippingMethod(c.Request().Context(), req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, method)
}

// UpdateShippingMethod replaces a shipping method's editable fields
func (h *AdminStoreHandler) UpdateShippingMethod(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req ShippingMethodRequest
	if written, err := bindValid(c, &req, "Invalid shipping method input"); written {
		return err
	}

	method, err := h.storeUC.UpdateShippingMethod(c.Request().Context(), id, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, method)
}

// DeleteShippingMethod removes a shipping method
func (h *AdminStoreHandler) DeleteShippingMethod(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.storeUC.DeleteShippingMethod(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, map[string]string{"message": "Shipping method deleted"})
}

func (r *ShippingMethodRequest) toInput() *usecase.ShippingMethodInput {
	return &usecase.ShippingMethodInput{
		Name:        strings.TrimSpace(r.Name),
		Description: r.Description,
		Rate:        r.Rate,
		MinDays:     r.MinDays,
		MaxDays:     r.MaxDays,
		Active:      r.Active,
		SortOrder:   r.SortOrder,
	}
}

// GetSettings returns the full store settings
func (h *AdminStoreHandler) GetSettings(c echo.Context) error {
	settings, err := h.storeUC.GetSettings(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, settings)
}

// UpdateSettings replaces the store settings
func (h *AdminStoreHandler) UpdateSettings(c echo.Context) error {
	var req StoreSettingsRequest
	if written, err := bindValid(c, &req, "Invalid settings input"); written {
		return err
	}

	settings, err := h.storeUC.UpdateSettings(c.Request().Context(), &usecase.StoreSettingsInput{
		StoreName:             req.StoreName,
		SupportEmail:          req.SupportEmail,
		Currency:              req.Currency,
		TaxRate:               req.TaxRate,
		FreeShippingThreshold: req.FreeShippingThreshold,
		LowStockThreshold:     req.LowStockThreshold,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, settings)
}

// Dashboard returns the back-office counters
func (h *AdminStoreHandler) Dashboard(c echo.Context) error {
	stats, err := h.storeUC.Dashboard(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, stats)
}

// ListOrders returns one page of orders, optionally in one status
func (h *AdminStoreHandler) ListOrders(c echo.Context) error {
	page, err := pageRequest(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var status *entity.OrderStatus
	if raw := strings.TrimSpace(c.QueryParam("status")); raw != "" {
		s := entity.OrderStatus(raw)
		status = &s
	}

	orders, err := h.orderUC.ListOrders(c.Request().Context(), status, page)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, orders)
}

// GetOrder returns any order
func (h *AdminStoreHandler) GetOrder(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	order, err := h.orderUC.GetOrder(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, order)
}

// UpdateOrderStatus applies a lifecycle transition
func (h *AdminStoreHandler) UpdateOrderStatus(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateOrderStatusRequest
	if written, err := bindValid(c, &req, "Invalid order status input"); written {
		return err
	}

	order, err := h.orderUC.UpdateStatus(c.Request().Context(), id, req.Status)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, order)
}

// UploadImage stores the multipart "file" field and returns its public URL
func (h *AdminStoreHandler) UploadImage(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "A file field is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Unable to read the uploaded file")
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			h.logger.Warn("Failed to close upload", slog.Any("error", closeErr))
		}
	}()

	result, err := h.uploadUC.UploadImage(c.Request().Context(), &usecase.UploadImageInput{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get(echo.HeaderContentType),
		Size:        fileHeader.Size,
		Body:        file,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, result)
}

// DeleteImage removes an uploaded image by the key given in the wildcard path
func (h *AdminStoreHandler) DeleteImage(c echo.Context) error {
	if err := h.uploadUC.DeleteImage(c.Request().Context(), c.Param("*")); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, map[string]string{"message": "Image deleted"})
}
