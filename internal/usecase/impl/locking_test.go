package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// runInTx makes the transaction manager hand factory to the callback.
func runInTx(ctx context.Context, txManager *mockRepo.MockTransactionManager, factory *mockRepo.MockRepositoryFactory) {
	txManager.EXPECT().
		Execute(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func TestCartService_AddItem_LocksCartBeforeReading(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	product := &entity.Product{ID: uuid.New(), Title: "Clay Mug", Slug: "clay-mug", Price: decimal.RequireFromString("250"), Inventory: 5}

	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	cartRepo := mockRepo.NewMockCartRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)

	runInTx(ctx, txManager, factory)
	factory.EXPECT().CartRepo().Return(cartRepo)
	factory.EXPECT().ProductRepo().Return(productRepo)

	lock := cartRepo.EXPECT().Lock(ctx, userID).Return(nil)
	get := cartRepo.EXPECT().Get(ctx, userID).Return(entity.NewCart(userID, nil), nil)
	find := productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	save := cartRepo.EXPECT().
		Save(ctx, mock.MatchedBy(func(cart *entity.Cart) bool { return cart.ItemCount == 2 })).
		Return(nil)
	mock.InOrder(lock.Call, get.Call, find.Call, save.Call)

	cartService := NewCartService(CartServiceParams{TxManager: txManager, CartRepo: cartRepo, Logger: newDiscardLogger()})
	cart, err := cartService.AddItem(ctx, userID, &usecase.AddCartItemInput{ProductID: product.ID, Quantity: 2})

	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("500").Equal(cart.Total), cart.Total.String())
}

func TestCartService_LockFailureAbortsMutation(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	cartRepo := mockRepo.NewMockCartRepository(t)

	runInTx(ctx, txManager, factory)
	factory.EXPECT().CartRepo().Return(cartRepo)
	cartRepo.EXPECT().Lock(ctx, userID).Return(domainerrors.ErrUserNotFound)

	cartService := NewCartService(CartServiceParams{TxManager: txManager, CartRepo: cartRepo, Logger: newDiscardLogger()})
	_, err := cartService.ClearCart(ctx, userID)

	assertDomainError(t, err, domainerrors.ErrUserNotFound)
}

func TestWishlistService_MoveToCart_LocksCartFirst(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	product := &entity.Product{ID: uuid.New(), Title: "Wool Scarf", Slug: "wool-scarf", Price: decimal.RequireFromString("25"), Inventory: 1}

	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	cartRepo := mockRepo.NewMockCartRepository(t)
	wishlistRepo := mockRepo.NewMockWishlistRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)

	runInTx(ctx, txManager, factory)
	factory.EXPECT().CartRepo().Return(cartRepo)
	factory.EXPECT().WishlistRepo().Return(wishlistRepo)
	factory.EXPECT().ProductRepo().Return(productRepo)

	lock := cartRepo.EXPECT().Lock(ctx, userID).Return(nil)
	remove := wishlistRepo.EXPECT().Remove(ctx, userID, product.ID).Return(true, nil)
	get := cartRepo.EXPECT().Get(ctx, userID).Return(entity.NewCart(userID, nil), nil)
	productRepo.EXPECT().FindByID(ctx, product.ID).Return(product, nil)
	cartRepo.EXPECT().Save(ctx, mock.AnythingOfType("*entity.Cart")).Return(nil)
	mock.InOrder(lock.Call, remove.Call, get.Call)

	wishlistService := NewWishlistService(WishlistServiceParams{
		TxManager:    txManager,
		WishlistRepo: wishlistRepo,
		ProductRepo:  productRepo,
		Logger:       newDiscardLogger(),
	})
	cart, err := wishlistService.MoveToCart(ctx, userID, usecase.CartLineInput{ProductID: product.ID})

	require.NoError(t, err)
	assert.Equal(t, 1, cart.ItemCount)
}

func TestOrderService_UpdateStatus_ReadsOrderUnderLock(t *testing.T) {
	ctx := context.Background()
	productID := uuid.New()
	order := &entity.Order{
		ID:     uuid.New(),
		Number: "SF-1",
		Status: entity.OrderStatusPaid,
		Items:  []entity.OrderItem{{ProductID: productID, Quantity: 2}},
	}

	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	runInTx(ctx, txManager, factory)
	factory.EXPECT().OrderRepo().Return(orderRepo)
	factory.EXPECT().ProductRepo().Return(productRepo)

	lock := orderRepo.EXPECT().LockByID(ctx, order.ID).Return(order, nil)
	restock := productRepo.EXPECT().AdjustInventory(ctx, productID, 2).Return(nil).Once()
	update := orderRepo.EXPECT().UpdateStatus(ctx, order.ID, entity.OrderStatusCancelled).Return(nil)
	mock.InOrder(lock.Call, restock, update.Call)

	publisher.EXPECT().
		Publish(ctx, mock.MatchedBy(func(event *service.DomainEvent) bool {
			return event.Order != nil && event.Order.Status == string(entity.OrderStatusCancelled)
		})).
		Return(nil)

	orderService := NewOrderService(OrderServiceParams{
		TxManager:      txManager,
		OrderRepo:      orderRepo,
		EventPublisher: publisher,
		Logger:         newDiscardLogger(),
	})
	updated, err := orderService.UpdateStatus(ctx, order.ID, entity.OrderStatusCancelled)

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusCancelled, updated.Status)
}

func TestReviewService_CreateReview_LocksProductBeforeAggregating(t *testing.T) {
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Name: "Asha"}
	product := &entity.Product{ID: uuid.New(), Title: "Steel Kettle", Slug: "steel-kettle"}

	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	reviewRepo := mockRepo.NewMockReviewRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)

	productRepo.EXPECT().FindBySlug(ctx, product.Slug).Return(product, nil)
	userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)

	runInTx(ctx, txManager, factory)
	factory.EXPECT().ProductRepo().Return(productRepo)
	factory.EXPECT().ReviewRepo().Return(reviewRepo)

	rating := entity.Rating{Average: 4, Count: 1}
	lock := productRepo.EXPECT().LockByIDs(ctx, []uuid.UUID{product.ID}).Return([]*entity.Product{product}, nil)
	create := reviewRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Review")).Return(nil)
	aggregate := reviewRepo.EXPECT().Aggregate(ctx, product.ID).Return(rating, nil)
	store := productRepo.EXPECT().UpdateRating(ctx, product.ID, rating).Return(nil)
	mock.InOrder(lock.Call, create.Call, aggregate.Call, store.Call)

	reviewService := NewReviewService(ReviewServiceParams{
		TxManager:   txManager,
		ReviewRepo:  reviewRepo,
		ProductRepo: productRepo,
		UserRepo:    userRepo,
		Logger:      newDiscardLogger(),
	})
	review, err := reviewService.CreateReview(ctx, user.ID, &usecase.CreateReviewInput{ProductSlug: product.Slug, Rating: 4})

	require.NoError(t, err)
	assert.Equal(t, product.ID, review.ProductID)
}

func TestReviewService_DeleteReview_LocksProduct(t *testing.T) {
	ctx := context.Background()
	productID := uuid.New()
	review := &entity.Review{ID: uuid.New(), ProductID: productID, Rating: 2}

	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	reviewRepo := mockRepo.NewMockReviewRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)

	runInTx(ctx, txManager, factory)
	factory.EXPECT().ProductRepo().Return(productRepo)
	factory.EXPECT().ReviewRepo().Return(reviewRepo)

	reviewRepo.EXPECT().FindByID(ctx, review.ID).Return(review, nil)
	lock := productRepo.EXPECT().LockByIDs(ctx, []uuid.UUID{productID}).Return([]*entity.Product{{ID: productID}}, nil)
	del := reviewRepo.EXPECT().Delete(ctx, review.ID).Return(nil)
	reviewRepo.EXPECT().Aggregate(ctx, productID).Return(entity.Rating{}, nil)
	productRepo.EXPECT().UpdateRating(ctx, productID, entity.Rating{}).Return(nil)
	mock.InOrder(lock.Call, del.Call)

	reviewService := NewReviewService(ReviewServiceParams{
		TxManager:   txManager,
		ReviewRepo:  reviewRepo,
		ProductRepo: productRepo,
		Logger:      newDiscardLogger(),
	})

	require.NoError(t, reviewService.DeleteReview(ctx, review.ID))
}

func TestCheckoutService_VerifyPayment_ReloadsOrderUnderLock(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	order := &entity.Order{
		ID:      uuid.New(),
		UserID:  userID,
		Number:  "SF-2",
		Status:  entity.OrderStatusPendingPayment,
		Payment: entity.Payment{Provider: "razorpay", Reference: "order_abc"},
	}
	input := &usecase.VerifyPaymentInput{Reference: "order_abc", PaymentID: "pay_1", Signature: "sig"}

	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	txOrderRepo := mockRepo.NewMockOrderRepository(t)
	gateway := mockSvc.NewMockPaymentGateway(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	orderRepo.EXPECT().FindByPaymentReference(ctx, "order_abc").Return(order, nil)
	gateway.EXPECT().
		VerifySignature(service.PaymentConfirmation{Reference: "order_abc", PaymentID: "pay_1", Signature: "sig"}).
		Return(true)

	runInTx(ctx, txManager, factory)
	factory.EXPECT().OrderRepo().Return(txOrderRepo)
	current := *order
	lock := txOrderRepo.EXPECT().LockByID(ctx, order.ID).Return(&current, nil)
	pay := txOrderRepo.EXPECT().
		UpdatePayment(ctx, order.ID, mock.MatchedBy(func(p entity.Payment) bool { return p.PaymentID == "pay_1" && p.PaidAt != nil })).
		Return(nil)
	status := txOrderRepo.EXPECT().UpdateStatus(ctx, order.ID, entity.OrderStatusPaid).Return(nil)
	mock.InOrder(lock.Call, pay.Call, status.Call)

	publisher.EXPECT().Publish(ctx, mock.AnythingOfType("*service.DomainEvent")).Return(nil)

	checkoutService := NewCheckoutService(CheckoutServiceParams{
		TxManager:      txManager,
		OrderRepo:      orderRepo,
		Gateway:        gateway,
		EventPublisher: publisher,
		Config:         newTestConfig(0),
		Logger:         newDiscardLogger(),
	})
	paid, err := checkoutService.VerifyPayment(ctx, userID, input)

	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusPaid, paid.Status)
	assert.Equal(t, "pay_1", paid.Payment.PaymentID)
}

func TestCheckoutService_VerifyPayment_RejectsBadSignature(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	order := &entity.Order{ID: uuid.New(), UserID: userID, Status: entity.OrderStatusPendingPayment}

	orderRepo := mockRepo.NewMockOrderRepository(t)
	gateway := mockSvc.NewMockPaymentGateway(t)

	orderRepo.EXPECT().FindByPaymentReference(ctx, "order_x").Return(order, nil)
	gateway.EXPECT().VerifySignature(mock.AnythingOfType("service.PaymentConfirmation")).Return(false)

	checkoutService := NewCheckoutService(CheckoutServiceParams{
		TxManager: mockRepo.NewMockTransactionManager(t),
		OrderRepo: orderRepo,
		Gateway:   gateway,
		Config:    newTestConfig(0),
		Logger:    newDiscardLogger(),
	})
	_, err := checkoutService.VerifyPayment(ctx, userID, &usecase.VerifyPaymentInput{Reference: "order_x", PaymentID: "p", Signature: "forged"})

	assertDomainError(t, err, domainerrors.ErrPaymentSignatureInvalid)
}
