package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// orderRepository implements the domain.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

func (repo *orderRepository) withItems(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("position ASC")
	})
}

// Create inserts the order together with its item snapshot.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("order already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	return repo.findOne(ctx, "id = ?", id)
}

// LockByID reads the order FOR UPDATE. Items are preloaded by a separate unlocked query;
// they never change after the order is placed.
func (repo *orderRepository) LockByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel
	err := repo.withItems(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&orderM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to lock order")
	}

	return toOrderDomain(&orderM), nil
}

func (repo *orderRepository) FindByPaymentReference(ctx context.Context, reference string) (*entity.Order, error) {
	return repo.findOne(ctx, "payment_reference = ?", reference)
}

// FindByIdempotencyKey returns nil, nil when the user has no order with the key.
func (repo *orderRepository) FindByIdempotencyKey(ctx context.Context, userID uuid.UUID, key string) (*entity.Order, error) {
	order, err := repo.findOne(ctx, "user_id = ? AND idempotency_key = ?", userID, key)
	if errors.Is(err, domainerrors.ErrOrderNotFound) {
		return nil, nil
	}

	return order, err
}

func (repo *orderRepository) findOne(ctx context.Context, cond string, args ...any) (*entity.Order, error) {
	var orderM model.OrderModel
	if err := repo.withItems(ctx).Where(cond, args...).First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find order")
	}

	return toOrderDomain(&orderM), nil
}

// List returns one page of orders, newest first.
func (repo *orderRepository) List(ctx context.Context, filter entity.OrderFilter) ([]*entity.Order, int, error) {
	scope := func(db *gorm.DB) *gorm.DB {
		if filter.UserID != nil {
			db = db.Where("user_id = ?", *filter.UserID)
		}
		if filter.Status != nil {
			db = db.Where("status = ?", string(*filter.Status))
		}

		return db
	}

	var total int64
	if err := repo.db.WithContext(ctx).Model(&model.OrderModel{}).Scopes(scope).Count(&total).Error; err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to count orders")
	}

	var orderModels []*model.OrderModel
	err := repo.withItems(ctx).
		Scopes(scope).
		Order("created_at DESC, id ASC").
		Offset(filter.Page.Offset()).
		Limit(filter.Page.Limit).
		Find(&orderModels).Error
	if err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to list orders")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, m := range orderModels {
		orders = append(orders, toOrderDomain(m))
	}

	return orders, int(total), nil
}

func (repo *orderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", id).
		Update("status", string(status))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update order status")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrOrderNotFound
	}

	return nil
}

func (repo *orderRepository) UpdatePayment(ctx context.Context, id uuid.UUID, payment entity.Payment) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"payment_provider":     payment.Provider,
			"payment_reference":    payment.Reference,
			"payment_id":           payment.PaymentID,
			"payment_redirect_url": payment.RedirectURL,
			"paid_at":              payment.PaidAt,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update order payment")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrOrderNotFound
	}

	return nil
}

func (repo *orderRepository) CountByStatus(ctx context.Context) (map[entity.OrderStatus]int, error) {
	var rows []struct {
		Status string
		Count  int
	}
	err := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to count orders by status")
	}

	counts := make(map[entity.OrderStatus]int, len(rows))
	for _, row := range rows {
		counts[entity.OrderStatus(row.Status)] = row.Count
	}

	return counts, nil
}

func (repo *orderRepository) SumRevenue(ctx context.Context) (decimal.Decimal, error) {
	var row struct {
		Revenue decimal.Decimal
	}
	err := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Select("COALESCE(SUM(total), 0) AS revenue").
		Where("paid_at IS NOT NULL AND status <> ?", string(entity.OrderStatusCancelled)).
		Scan(&row).Error
	if err != nil {
		return decimal.Zero, domainerrors.NewDatabaseExecuteError(err, "failed to sum revenue")
	}

	return row.Revenue, nil
}

// --- Mapper Functions ---

func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	items := make([]entity.OrderItem, 0, len(data.Items))
	for _, item := range data.Items {
		items = append(items, entity.OrderItem{
			ProductID: item.ProductID,
			Title:     item.Title,
			Slug:      item.Slug,
			Image:     item.Image,
			Price:     item.Price,
			Size:      item.Size,
			Color:     item.Color,
			Quantity:  item.Quantity,
			LineTotal: item.LineTotal,
		})
	}

	return &entity.Order{
		ID:              data.ID,
		Number:          data.Number,
		UserID:          data.UserID,
		Email:           data.Email,
		Items:           items,
		ShippingAddress: entity.Address(data.ShippingAddress),
		Shipping: entity.ShippingSnapshot{
			MethodID: data.ShippingMethodID,
			Name:     data.ShippingMethodName,
			Rate:     data.ShippingRate,
		},
		Subtotal:    data.Subtotal,
		ShippingFee: data.ShippingFee,
		Tax:         data.Tax,
		Total:       data.Total,
		Currency:    data.Currency,
		Status:      entity.OrderStatus(data.Status),
		Payment: entity.Payment{
			Provider:    data.PaymentProvider,
			Reference:   data.PaymentReference,
			PaymentID:   data.PaymentID,
			RedirectURL: data.PaymentRedirectURL,
			PaidAt:      data.PaidAt,
		},
		IdempotencyKey: data.IdempotencyKey,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	items := make([]model.OrderItemModel, 0, len(data.Items))
	for i, item := range data.Items {
		items = append(items, model.OrderItemModel{
			ProductID: item.ProductID,
			Title:     item.Title,
			Slug:      item.Slug,
			Image:     item.Image,
			Price:     item.Price,
			Size:      item.Size,
			Color:     item.Color,
			Quantity:  item.Quantity,
			LineTotal: item.LineTotal,
			Position:  i,
		})
	}

	return &model.OrderModel{
		ID:                 data.ID,
		Number:             data.Number,
		UserID:             data.UserID,
		Email:              data.Email,
		ShippingAddress:    model.AddressData(data.ShippingAddress),
		ShippingMethodID:   data.Shipping.MethodID,
		ShippingMethodName: data.Shipping.Name,
		ShippingRate:       data.Shipping.Rate,
		Subtotal:           data.Subtotal,
		ShippingFee:        data.ShippingFee,
		Tax:                data.Tax,
		Total:              data.Total,
		Currency:           data.Currency,
		Status:             string(data.Status),
		PaymentProvider:    data.Payment.Provider,
		PaymentReference:   data.Payment.Reference,
		PaymentID:          data.Payment.PaymentID,
		PaymentRedirectURL: data.Payment.RedirectURL,
		PaidAt:             data.Payment.PaidAt,
		IdempotencyKey:     data.IdempotencyKey,
		Items:              items,
	}
}
