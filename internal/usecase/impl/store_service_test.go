package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestStoreService(store *memStore) usecase.StoreUsecase {
	return NewStoreService(StoreServiceParams{
		ShippingRepo:   store.ShippingMethodRepo(),
		SettingsRepo:   store.SettingsRepo(),
		ProductRepo:    store.ProductRepo(),
		CategoryRepo:   store.CategoryRepo(),
		CollectionRepo: store.CollectionRepo(),
		ReviewRepo:     store.ReviewRepo(),
		OrderRepo:      store.OrderRepo(),
		ContactRepo:    store.ContactRepo(),
		UserRepo:       store.UserRepo(),
		Config:         newTestConfig(0),
		Logger:         newDiscardLogger(),
	})
}

func TestStoreService_ShippingMethods(t *testing.T) {
	store := newMemStore()
	storeService := newTestStoreService(store)
	ctx := context.Background()

	standard, err := storeService.CreateShippingMethod(ctx, &usecase.ShippingMethodInput{
		Name: " Standard ", Rate: decimal.NewFromInt(99), MinDays: 3, MaxDays: 5, Active: true, SortOrder: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, "Standard", standard.Name)

	_, err = storeService.CreateShippingMethod(ctx, &usecase.ShippingMethodInput{
		Name: "Freight", Rate: decimal.NewFromInt(999), MinDays: 7, MaxDays: 14, SortOrder: 2,
	})
	require.NoError(t, err)

	active, err := storeService.ListShippingMethods(ctx, true)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, standard.ID, active[0].ID)

	all, err := storeService.ListShippingMethods(ctx, false)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	updated, err := storeService.UpdateShippingMethod(ctx, standard.ID, &usecase.ShippingMethodInput{
		Name: "Standard", Rate: decimal.NewFromInt(49), MinDays: 2, MaxDays: 4, Active: false,
	})
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(49).Equal(updated.Rate))
	assert.False(t, updated.Active)

	require.NoError(t, storeService.DeleteShippingMethod(ctx, standard.ID))
	err = storeService.DeleteShippingMethod(ctx, standard.ID)
	assertDomainError(t, err, domainerrors.ErrShippingMethodNotFound)
}

func TestStoreService_ShippingMethodValidation(t *testing.T) {
	storeService := newTestStoreService(newMemStore())
	ctx := context.Background()

	tests := []struct {
		name  string
		input usecase.ShippingMethodInput
	}{
		{name: "blank name", input: usecase.ShippingMethodInput{Name: "  ", Rate: decimal.NewFromInt(10)}},
		{name: "negative rate", input: usecase.ShippingMethodInput{Name: "Post", Rate: decimal.NewFromInt(-1)}},
		{name: "negative min days", input: usecase.ShippingMethodInput{Name: "Post", MinDays: -1, MaxDays: 2}},
		{name: "inverted window", input: usecase.ShippingMethodInput{Name: "Post", MinDays: 5, MaxDays: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := storeService.CreateShippingMethod(ctx, &tt.input)
			assertDomainError(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestStoreService_Settings(t *testing.T) {
	store := newMemStore()
	storeService := newTestStoreService(store)
	ctx := context.Background()

	defaults, err := storeService.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, "INR", defaults.Currency)
	assert.Equal(t, 5, defaults.LowStockThreshold)

	saved, err := storeService.UpdateSettings(ctx, &usecase.StoreSettingsInput{
		StoreName:             " Loom & Leaf ",
		SupportEmail:          "help@loom.test",
		Currency:              "usd",
		TaxRate:               decimal.RequireFromString("0.08"),
		FreeShippingThreshold: decimal.NewFromInt(100),
		LowStockThreshold:     3,
	})
	require.NoError(t, err)
	assert.Equal(t, "Loom & Leaf", saved.StoreName)
	assert.Equal(t, "USD", saved.Currency)
	assert.False(t, saved.UpdatedAt.IsZero())

	loaded, err := storeService.GetSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, "USD", loaded.Currency)
	assert.Equal(t, 3, loaded.LowStockThreshold)

	for _, input := range []usecase.StoreSettingsInput{
		{TaxRate: decimal.NewFromInt(1)},
		{TaxRate: decimal.RequireFromString("-0.1")},
		{FreeShippingThreshold: decimal.NewFromInt(-5)},
		{LowStockThreshold: -1},
	} {
		_, err := storeService.UpdateSettings(ctx, &input)
		assertDomainError(t, err, domainerrors.ErrValidationFailed)
	}
}

func TestStoreService_Dashboard(t *testing.T) {
	fx := newCheckoutFixture(t)
	storeService := newTestStoreService(fx.store)
	ctx := context.Background()

	paid := placeTestOrder(t, fx)
	verify := &usecase.VerifyPaymentInput{
		Reference: paid.Payment.Reference,
		PaymentID: "pay_1",
		Signature: "sig:" + paid.Payment.Reference + "|pay_1",
	}
	_, err := fx.checkout.VerifyPayment(ctx, fx.user.ID, verify)
	require.NoError(t, err)
	placeTestOrder(t, fx)

	stats, err := storeService.Dashboard(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, stats.Products)
	assert.Equal(t, 1, stats.Customers)
	assert.Equal(t, map[entity.OrderStatus]int{
		entity.OrderStatusPaid:           1,
		entity.OrderStatusPendingPayment: 1,
	}, stats.OrdersByStatus)
	assert.True(t, paid.Total.Equal(stats.Revenue), stats.Revenue.String())
	// Both products sit at or under the threshold of 2 after two orders.
	assert.Equal(t, 2, stats.LowStockProducts)
}

func TestStoreService_Dashboard_EmptyStore(t *testing.T) {
	stats, err := newTestStoreService(newMemStore()).Dashboard(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, stats.OrdersByStatus)
	assert.True(t, stats.Revenue.IsZero())
}

func TestStoreService_Dashboard_PropagatesErrors(t *testing.T) {
	store := newMemStore()
	orderRepo := mockRepo.NewMockOrderRepository(t)
	storeService := NewStoreService(StoreServiceParams{
		ShippingRepo:   store.ShippingMethodRepo(),
		SettingsRepo:   store.SettingsRepo(),
		ProductRepo:    store.ProductRepo(),
		CategoryRepo:   store.CategoryRepo(),
		CollectionRepo: store.CollectionRepo(),
		ReviewRepo:     store.ReviewRepo(),
		OrderRepo:      orderRepo,
		ContactRepo:    store.ContactRepo(),
		UserRepo:       store.UserRepo(),
		Logger:         newDiscardLogger(),
	})

	dbErr := domainerrors.NewDatabaseExecuteError(errors.New("connection reset"), "failed to count orders")
	orderRepo.EXPECT().CountByStatus(mock.Anything).Return(nil, dbErr)
	orderRepo.EXPECT().SumRevenue(mock.Anything).Return(decimal.Zero, nil).Maybe()

	stats, err := storeService.Dashboard(context.Background())

	assert.Nil(t, stats)
	var dbExecErr *domainerrors.DatabaseExecuteError
	assert.True(t, errors.As(err, &dbExecErr))
}

func TestStoreService_UpdateShippingMethod_NotFound(t *testing.T) {
	_, err := newTestStoreService(newMemStore()).UpdateShippingMethod(context.Background(), uuid.New(), &usecase.ShippingMethodInput{Name: "Post"})

	assertDomainError(t, err, domainerrors.ErrShippingMethodNotFound)
}

func newMockedStoreService(t *testing.T) (usecase.StoreUsecase, *mockRepo.MockSettingsRepository, *mockRepo.MockShippingMethodRepository) {
	t.Helper()

	store := newMemStore()
	settingsRepo := mockRepo.NewMockSettingsRepository(t)
	shippingRepo := mockRepo.NewMockShippingMethodRepository(t)

	return NewStoreService(StoreServiceParams{
		ShippingRepo:   shippingRepo,
		SettingsRepo:   settingsRepo,
		ProductRepo:    store.ProductRepo(),
		CategoryRepo:   mockRepo.NewMockCategoryRepository(t),
		CollectionRepo: mockRepo.NewMockCollectionRepository(t),
		ReviewRepo:     store.ReviewRepo(),
		OrderRepo:      store.OrderRepo(),
		ContactRepo:    mockRepo.NewMockContactRepository(t),
		UserRepo:       store.UserRepo(),
		Config:         newTestConfig(0),
		Logger:         newDiscardLogger(),
	}), settingsRepo, shippingRepo
}

func TestStoreService_GetSettings_DefaultsWhenUnset(t *testing.T) {
	storeService, settingsRepo, _ := newMockedStoreService(t)

	settingsRepo.EXPECT().Get(mock.Anything).Return(nil, nil).Once()

	settings, err := storeService.GetSettings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultStoreSettings("INR"), settings)
}

func TestStoreService_UpdateSettings_SaveFailure(t *testing.T) {
	storeService, settingsRepo, _ := newMockedStoreService(t)
	dbErr := domainerrors.NewDatabaseExecuteError(errors.New("disk full"), "failed to save settings")

	settingsRepo.EXPECT().Save(mock.Anything, mock.MatchedBy(func(s *entity.StoreSettings) bool {
		return s.Currency == "USD" && s.LowStockThreshold == 3
	})).Return(dbErr).Once()

	_, err := storeService.UpdateSettings(context.Background(), &usecase.StoreSettingsInput{
		Currency: " usd ", TaxRate: decimal.RequireFromString("0.18"), LowStockThreshold: 3,
	})

	var dbExecErr *domainerrors.DatabaseExecuteError
	assert.True(t, errors.As(err, &dbExecErr))
}

func TestStoreService_ShippingMethod_RejectsBeforeSaving(t *testing.T) {
	storeService, _, shippingRepo := newMockedStoreService(t)
	methodID := uuid.New()

	shippingRepo.EXPECT().FindByID(mock.Anything, methodID).
		Return(&entity.ShippingMethod{ID: methodID, Name: "Post"}, nil).Once()

	_, err := storeService.UpdateShippingMethod(context.Background(), methodID, &usecase.ShippingMethodInput{
		Name: "Post", MinDays: 5, MaxDays: 2,
	})

	assertDomainError(t, err, domainerrors.ErrValidationFailed)
	shippingRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
