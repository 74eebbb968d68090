package impl

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type cartService struct {
	txManager repository.TransactionManager
	cartRepo  repository.CartRepository
	logger    *slog.Logger
}

// CartServiceParams holds dependencies for CartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	CartRepo  repository.CartRepository
	Logger    *slog.Logger
}

// NewCartService creates the cart use case. Every mutation loads the cart, changes the
// entity and replaces the stored lines inside one transaction.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		txManager: params.TxManager,
		cartRepo:  params.CartRepo,
		logger:    params.Logger,
	}
}

func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *cartService) GetCart(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	cart, err := srv.cartRepo.Get(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart")
	}

	return cart, nil
}

func (srv *cartService) AddItem(ctx context.Context, userID uuid.UUID, input *usecase.AddCartItemInput) (*entity.Cart, error) {
	if input.Quantity <= 0 {
		return nil, errors.WithStack(domainerrors.ErrInvalidQuantity)
	}

	return srv.mutate(ctx, userID, "add", func(repoFactory repository.RepositoryFactory, cart *entity.Cart) error {
		return addToCart(ctx, repoFactory, cart, usecase.CartLineInput{
			ProductID: input.ProductID,
			Size:      input.Size,
			Color:     input.Color,
		}, input.Quantity)
	})
}

func (srv *cartService) UpdateQuantity(ctx context.Context, userID uuid.UUID, line usecase.CartLineInput, quantity int) (*entity.Cart, error) {
	return srv.mutate(ctx, userID, "update", func(repoFactory repository.RepositoryFactory, cart *entity.Cart) error {
		current := cart.Quantity(line.Key())
		if current == 0 {
			return errors.WithStack(domainerrors.ErrCartItemNotFound)
		}

		if quantity > current {
			product, err := repoFactory.ProductRepo().FindByID(ctx, line.ProductID)
			if err != nil {
				return errors.Wrap(err, "failed to find product")
			}
			if err := checkStock(product, cart.QuantityOfProduct(line.ProductID)-current+quantity); err != nil {
				return err
			}
		}

		cart.SetQuantity(line.Key(), quantity)

		return nil
	})
}

func (srv *cartService) DecrementItem(ctx context.Context, userID uuid.UUID, line usecase.CartLineInput) (*entity.Cart, error) {
	return srv.mutate(ctx, userID, "decrement", func(_ repository.RepositoryFactory, cart *entity.Cart) error {
		if !cart.Decrement(line.Key()) {
			return errors.WithStack(domainerrors.ErrCartItemNotFound)
		}

		return nil
	})
}

func (srv *cartService) RemoveItem(ctx context.Context, userID uuid.UUID, line usecase.CartLineInput) (*entity.Cart, error) {
	return srv.mutate(ctx, userID, "remove", func(_ repository.RepositoryFactory, cart *entity.Cart) error {
		if !cart.Remove(line.Key()) {
			return errors.WithStack(domainerrors.ErrCartItemNotFound)
		}

		return nil
	})
}

func (srv *cartService) ClearCart(ctx context.Context, userID uuid.UUID) (*entity.Cart, error) {
	return srv.mutate(ctx, userID, "clear", func(_ repository.RepositoryFactory, cart *entity.Cart) error {
		cart.Clear()

		return nil
	})
}

// mutate runs change against the stored cart and saves the result in the same transaction.
func (srv *cartService) mutate(
	ctx context.Context,
	userID uuid.UUID,
	op string,
	change func(repoFactory repository.RepositoryFactory, cart *entity.Cart) error,
) (*entity.Cart, error) {
	var result *entity.Cart
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.CartRepo()
		if err := cartRepo.Lock(ctx, userID); err != nil {
			return errors.Wrap(err, "failed to lock cart")
		}

		cart, err := cartRepo.Get(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to load cart")
		}

		if err := change(repoFactory, cart); err != nil {
			return err
		}

		if err := cartRepo.Save(ctx, cart); err != nil {
			return errors.Wrap(err, "failed to save cart")
		}
		result = cart

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Cart mutation failed", slog.String("op", op), slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrapf(err, "failed to %s cart item", op)
	}

	srv.log(ctx).Debug("Cart updated", slog.String("op", op), slog.Int("itemCount", result.ItemCount))

	return result, nil
}

// addToCart snapshots the product into the cart after checking the variant and the stock.
func addToCart(ctx context.Context, repoFactory repository.RepositoryFactory, cart *entity.Cart, line usecase.CartLineInput, quantity int) error {
	product, err := repoFactory.ProductRepo().FindByID(ctx, line.ProductID)
	if err != nil {
		return errors.Wrap(err, "failed to find product")
	}

	if err := checkVariant(product, line); err != nil {
		return err
	}
	if err := checkStock(product, cart.QuantityOfProduct(product.ID)+quantity); err != nil {
		return err
	}

	cart.Add(entity.CartItem{
		ProductID: product.ID,
		Title:     product.Title,
		Slug:      product.Slug,
		Image:     product.PrimaryImage(),
		Price:     product.Price,
		Size:      line.Size,
		Color:     line.Color,
		Quantity:  quantity,
	})

	return nil
}

func checkVariant(product *entity.Product, line usecase.CartLineInput) error {
	if line.Size != "" && !slices.Contains(product.Sizes, line.Size) {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("size %q is not offered", line.Size)))
	}
	if line.Color != "" && !slices.Contains(product.Colors, line.Color) {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("color %q is not offered", line.Color)))
	}

	return nil
}

// checkStock fails when wanted units of product exceed its inventory.
func checkStock(product *entity.Product, wanted int) error {
	if wanted > product.Inventory {
		return errors.WithStack(domainerrors.ErrOutOfStock.WithDetails(
			fmt.Sprintf("%s: %d requested, %d available", product.Title, wanted, product.Inventory),
		))
	}

	return nil
}
