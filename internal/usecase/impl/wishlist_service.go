package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type wishlistService struct {
	txManager    repository.TransactionManager
	wishlistRepo repository.WishlistRepository
	productRepo  repository.ProductRepository
	logger       *slog.Logger
}

// WishlistServiceParams holds dependencies for WishlistService, injected by Fx.
type WishlistServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	WishlistRepo repository.WishlistRepository
	ProductRepo  repository.ProductRepository
	Logger       *slog.Logger
}

// NewWishlistService creates the wishlist use case.
func NewWishlistService(params WishlistServiceParams) usecase.WishlistUsecase {
	return &wishlistService{
		txManager:    params.TxManager,
		wishlistRepo: params.WishlistRepo,
		productRepo:  params.ProductRepo,
		logger:       params.Logger,
	}
}

func (srv *wishlistService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetWishlist returns the saved ids with their products, loaded in one batched lookup.
func (srv *wishlistService) GetWishlist(ctx context.Context, userID uuid.UUID) (*entity.Wishlist, error) {
	ids, err := srv.wishlistRepo.List(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list wishlist")
	}

	wishlist := entity.NewWishlist(userID, ids)
	wishlist.Products = []*entity.Product{}
	if len(wishlist.ProductIDs) == 0 {
		return wishlist, nil
	}

	products, err := srv.productRepo.FindByIDs(ctx, wishlist.ProductIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load wishlist products")
	}

	byID := make(map[uuid.UUID]*entity.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	for _, id := range wishlist.ProductIDs {
		if p, ok := byID[id]; ok {
			wishlist.Products = append(wishlist.Products, p)
		}
	}

	return wishlist, nil
}

func (srv *wishlistService) AddItem(ctx context.Context, userID, productID uuid.UUID) (*entity.Wishlist, error) {
	added, err := srv.wishlistRepo.Add(ctx, userID, productID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to add wishlist item")
	}
	srv.log(ctx).Debug("Wishlist add", slog.Any("productID", productID), slog.Bool("added", added))

	return srv.GetWishlist(ctx, userID)
}

func (srv *wishlistService) RemoveItem(ctx context.Context, userID, productID uuid.UUID) (*entity.Wishlist, error) {
	removed, err := srv.wishlistRepo.Remove(ctx, userID, productID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to remove wishlist item")
	}
	if !removed {
		return nil, errors.WithStack(domainerrors.ErrWishlistItemNotFound)
	}

	return srv.GetWishlist(ctx, userID)
}

func (srv *wishlistService) ClearWishlist(ctx context.Context, userID uuid.UUID) error {
	if err := srv.wishlistRepo.Clear(ctx, userID); err != nil {
		return errors.Wrap(err, "failed to clear wishlist")
	}

	return nil
}

// MoveToCart adds one unit to the cart and removes the product from the wishlist atomically.
func (srv *wishlistService) MoveToCart(ctx context.Context, userID uuid.UUID, line usecase.CartLineInput) (*entity.Cart, error) {
	var result *entity.Cart
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.CartRepo()
		if err := cartRepo.Lock(ctx, userID); err != nil {
			return errors.Wrap(err, "failed to lock cart")
		}

		removed, err := repoFactory.WishlistRepo().Remove(ctx, userID, line.ProductID)
		if err != nil {
			return errors.Wrap(err, "failed to remove wishlist item")
		}
		if !removed {
			return errors.WithStack(domainerrors.ErrWishlistItemNotFound)
		}

		cart, err := cartRepo.Get(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to load cart")
		}
		if err := addToCart(ctx, repoFactory, cart, line, 1); err != nil {
			return err
		}
		if err := cartRepo.Save(ctx, cart); err != nil {
			return errors.Wrap(err, "failed to save cart")
		}
		result = cart

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Move to cart failed", slog.Any("productID", line.ProductID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to move wishlist item to cart")
	}

	return result, nil
}
