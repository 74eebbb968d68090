package impl

import (
	"cmp"
	"context"
	"maps"
	"math"
	"slices"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// memData is every table of the in-memory store. Stored values are never mutated in place,
// so a shallow copy of each map is a consistent snapshot.
type memData struct {
	users       map[uuid.UUID]entity.User
	auths       []entity.Authentication
	refresh     map[string]entity.RefreshToken
	products    map[uuid.UUID]entity.Product
	categories  map[uuid.UUID]entity.Category
	collections map[uuid.UUID]entity.Collection
	members     map[uuid.UUID][]uuid.UUID // collection id -> product ids
	reviews     map[uuid.UUID]entity.Review
	carts       map[uuid.UUID][]entity.CartItem
	wishlists   map[uuid.UUID][]uuid.UUID
	orders      map[uuid.UUID]entity.Order
	shipping    map[uuid.UUID]entity.ShippingMethod
	settings    *entity.StoreSettings
	contacts    []entity.ContactMessage
}

func (d memData) clone() memData {
	out := memData{
		users:       maps.Clone(d.users),
		auths:       slices.Clone(d.auths),
		refresh:     maps.Clone(d.refresh),
		products:    maps.Clone(d.products),
		categories:  maps.Clone(d.categories),
		collections: maps.Clone(d.collections),
		members:     maps.Clone(d.members),
		reviews:     maps.Clone(d.reviews),
		carts:       maps.Clone(d.carts),
		wishlists:   maps.Clone(d.wishlists),
		orders:      maps.Clone(d.orders),
		shipping:    maps.Clone(d.shipping),
		contacts:    slices.Clone(d.contacts),
	}
	if d.settings != nil {
		settings := *d.settings
		out.settings = &settings
	}

	return out
}

// memStore implements every repository plus the transaction manager. Transactions run one
// at a time and roll the data back when fn fails.
type memStore struct {
	txMu sync.Mutex
	mu   sync.Mutex
	data memData

	// txFailures are returned, in order, by the next Execute calls before fn runs.
	txFailures []error
	txCalls    atomic.Int64
	lockCalls  atomic.Int64

	// Row locks taken through repositories, counted per kind.
	cartLocks    atomic.Int64
	orderLocks   atomic.Int64
	productLocks atomic.Int64
}

func newMemStore() *memStore {
	return &memStore{
		data: memData{
			users:       map[uuid.UUID]entity.User{},
			refresh:     map[string]entity.RefreshToken{},
			products:    map[uuid.UUID]entity.Product{},
			categories:  map[uuid.UUID]entity.Category{},
			collections: map[uuid.UUID]entity.Collection{},
			members:     map[uuid.UUID][]uuid.UUID{},
			reviews:     map[uuid.UUID]entity.Review{},
			carts:       map[uuid.UUID][]entity.CartItem{},
			wishlists:   map[uuid.UUID][]uuid.UUID{},
			orders:      map[uuid.UUID]entity.Order{},
			shipping:    map[uuid.UUID]entity.ShippingMethod{},
		},
	}
}

func (s *memStore) Execute(_ context.Context, fn func(txRepoFactory repository.RepositoryFactory) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	s.txCalls.Add(1)

	s.mu.Lock()
	if len(s.txFailures) > 0 {
		err := s.txFailures[0]
		s.txFailures = s.txFailures[1:]
		s.mu.Unlock()

		return err
	}
	snapshot := s.data.clone()
	s.mu.Unlock()

	if err := fn(s); err != nil {
		s.mu.Lock()
		s.data = snapshot
		s.mu.Unlock()

		return err
	}

	return nil
}

func (s *memStore) UserRepo() repository.UserRepository                 { return memUserRepo{s} }
func (s *memStore) AuthRepo() repository.AuthRepository                 { return memAuthRepo{s} }
func (s *memStore) RefreshTokenRepo() repository.RefreshTokenRepository { return memRefreshRepo{s} }
func (s *memStore) ProductRepo() repository.ProductRepository           { return memProductRepo{s} }
func (s *memStore) CategoryRepo() repository.CategoryRepository         { return memCategoryRepo{s} }
func (s *memStore) CollectionRepo() repository.CollectionRepository     { return memCollectionRepo{s} }
func (s *memStore) ReviewRepo() repository.ReviewRepository             { return memReviewRepo{s} }
func (s *memStore) CartRepo() repository.CartRepository                 { return memCartRepo{s} }
func (s *memStore) WishlistRepo() repository.WishlistRepository         { return memWishlistRepo{s} }
func (s *memStore) OrderRepo() repository.OrderRepository               { return memOrderRepo{s} }
func (s *memStore) ShippingMethodRepo() repository.ShippingMethodRepository {
	return memShippingRepo{s}
}
func (s *memStore) SettingsRepo() repository.SettingsRepository { return memSettingsRepo{s} }
func (s *memStore) ContactRepo() repository.ContactRepository   { return memContactRepo{s} }

// Seed helpers.

func (s *memStore) addUser(email, name string, roles ...entity.Role) *entity.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(roles) == 0 {
		roles = entity.Roles{entity.RoleCustomer}
	}
	user := entity.User{ID: uuid.New(), Email: email, Name: name, Roles: roles, CreatedAt: time.Now()}
	s.data.users[user.ID] = user

	return &user
}

func (s *memStore) addProduct(title string, price string, inventory int, mutate ...func(*entity.Product)) *entity.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	product := entity.Product{
		ID:        uuid.New(),
		Title:     title,
		Slug:      strings.ReplaceAll(strings.ToLower(title), " ", "-"),
		Price:     decimal.RequireFromString(price),
		Inventory: inventory,
		Images:    []string{"/images/" + strings.ToLower(strings.ReplaceAll(title, " ", "-")) + ".png"},
		CreatedAt: time.Now().Add(time.Duration(len(s.data.products)) * time.Second),
	}
	for _, fn := range mutate {
		fn(&product)
	}
	s.data.products[product.ID] = product

	return &product
}

func (s *memStore) addShippingMethod(name, rate string, active bool) *entity.ShippingMethod {
	s.mu.Lock()
	defer s.mu.Unlock()

	method := entity.ShippingMethod{ID: uuid.New(), Name: name, Rate: decimal.RequireFromString(rate), Active: active}
	s.data.shipping[method.ID] = method

	return &method
}

func (s *memStore) setSettings(settings entity.StoreSettings) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data.settings = &settings
}

func (s *memStore) failNextTx(errs ...error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.txFailures = append(s.txFailures, errs...)
}

func (s *memStore) product(id uuid.UUID) entity.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.data.products[id]
}

func (s *memStore) cartItems(userID uuid.UUID) []entity.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.data.carts[userID])
}

func (s *memStore) orderCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.data.orders)
}

func (s *memStore) activeSessions(userID uuid.UUID) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, token := range s.data.refresh {
		if token.UserID == userID && token.ExpiresAt.After(time.Now()) {
			count++
		}
	}

	return count
}

// Users.

type memUserRepo struct{ s *memStore }

func (r memUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	user, ok := r.s.data.users[id]
	if !ok {
		return nil, domainerrors.ErrUserNotFound
	}

	return &user, nil
}

func (r memUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, user := range r.s.data.users {
		if strings.EqualFold(user.Email, strings.TrimSpace(email)) {
			return &user, nil
		}
	}

	return nil, domainerrors.ErrUserNotFound
}

func (r memUserRepo) Create(_ context.Context, user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, existing := range r.s.data.users {
		if strings.EqualFold(existing.Email, user.Email) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email already exists")
		}
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	r.s.data.users[user.ID] = *user

	return nil
}

func (r memUserRepo) Update(_ context.Context, user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.data.users[user.ID]; !ok {
		return domainerrors.ErrUserNotFound
	}
	user.UpdatedAt = time.Now()
	r.s.data.users[user.ID] = *user

	return nil
}

// AcquireSessionMutex only counts calls; transactions already run one at a time.
func (r memUserRepo) AcquireSessionMutex(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.data.users[id]; !ok {
		return domainerrors.ErrUserNotFound
	}
	r.s.lockCalls.Add(1)

	return nil
}

func (r memUserRepo) Count(_ context.Context) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	return len(r.s.data.users), nil
}

// Authentications.

type memAuthRepo struct{ s *memStore }

func (r memAuthRepo) CreateAuthentication(_ context.Context, auth *entity.Authentication) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, existing := range r.s.data.auths {
		if existing.Provider == auth.Provider && existing.ProviderUserID == auth.ProviderUserID {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("authentication already exists")
		}
	}
	if auth.ID == uuid.Nil {
		auth.ID = uuid.New()
	}
	auth.CreatedAt = time.Now()
	r.s.data.auths = append(r.s.data.auths, *auth)

	return nil
}

func (r memAuthRepo) FindAuthentication(_ context.Context, provider string, providerUserID string) (*entity.Authentication, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, auth := range r.s.data.auths {
		if auth.Provider == provider && auth.ProviderUserID == providerUserID {
			return &auth, nil
		}
	}

	return nil, repository.ErrAuthNotFound
}

// Refresh tokens.

type memRefreshRepo struct{ s *memStore }

func (r memRefreshRepo) CreateRefreshToken(_ context.Context, token *entity.RefreshToken) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if token.ID == uuid.Nil {
		token.ID = uuid.New()
	}
	token.CreatedAt = time.Now()
	r.s.data.refresh[token.TokenHash] = *token

	return nil
}

func (r memRefreshRepo) FindRefreshTokenByHash(_ context.Context, tokenHash string) (*entity.RefreshToken, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	token, ok := r.s.data.refresh[tokenHash]
	if !ok {
		return nil, repository.ErrRefreshTokenNotFound
	}

	return &token, nil
}

func (r memRefreshRepo) DeleteRefreshTokenByHash(_ context.Context, tokenHash string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	delete(r.s.data.refresh, tokenHash)

	return nil
}

func (r memRefreshRepo) DeleteRefreshTokensByUserID(_ context.Context, userID uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	maps.DeleteFunc(r.s.data.refresh, func(_ string, token entity.RefreshToken) bool {
		return token.UserID == userID
	})

	return nil
}

func (r memRefreshRepo) DeleteExpiredRefreshTokens(_ context.Context, userID uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	now := time.Now()
	maps.DeleteFunc(r.s.data.refresh, func(_ string, token entity.RefreshToken) bool {
		return token.UserID == userID && !token.ExpiresAt.After(now)
	})

	return nil
}

func (r memRefreshRepo) CountActiveSessionsByUserID(_ context.Context, userID uuid.UUID) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	count := 0
	now := time.Now()
	for _, token := range r.s.data.refresh {
		if token.UserID == userID && token.ExpiresAt.After(now) {
			count++
		}
	}

	return count, nil
}

// Products.

type memProductRepo struct{ s *memStore }

// hydrate attaches derived relations; callers hold mu.
func (r memProductRepo) hydrate(p entity.Product) *entity.Product {
	p.CollectionIDs = []uuid.UUID{}
	for id, members := range r.s.data.members {
		if slices.Contains(members, p.ID) {
			p.CollectionIDs = append(p.CollectionIDs, id)
		}
	}
	slices.SortFunc(p.CollectionIDs, func(a, b uuid.UUID) int { return strings.Compare(a.String(), b.String()) })
	p.Category = nil
	if p.CategoryID != nil {
		if category, ok := r.s.data.categories[*p.CategoryID]; ok {
			p.Category = category.Summary()
		}
	}

	return &p
}

func (r memProductRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p, ok := r.s.data.products[id]
	if !ok {
		return nil, domainerrors.ErrProductNotFound
	}

	return r.hydrate(p), nil
}

func (r memProductRepo) FindBySlug(_ context.Context, slug string) (*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, p := range r.s.data.products {
		if p.Slug == slug {
			return r.hydrate(p), nil
		}
	}

	return nil, domainerrors.ErrProductNotFound
}

func (r memProductRepo) FindByIDs(_ context.Context, ids []uuid.UUID) ([]*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := []*entity.Product{}
	for _, p := range r.s.data.products {
		if slices.Contains(ids, p.ID) {
			out = append(out, r.hydrate(p))
		}
	}

	return out, nil
}

func (r memProductRepo) List(_ context.Context, scope repository.ProductScope) ([]*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	search := strings.ToLower(strings.TrimSpace(scope.Search))
	out := []*entity.Product{}
	for _, p := range r.s.data.products {
		if scope.CategoryID != nil && (p.CategoryID == nil || *p.CategoryID != *scope.CategoryID) {
			continue
		}
		if scope.CollectionID != nil && !slices.Contains(r.s.data.members[*scope.CollectionID], p.ID) {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(p.Title), search) &&
			!strings.Contains(strings.ToLower(p.Description), search) {
			continue
		}
		out = append(out, r.hydrate(p))
	}
	sortNewest(out)

	return out, nil
}

func sortNewest(products []*entity.Product) {
	slices.SortFunc(products, func(a, b *entity.Product) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}

		return strings.Compare(a.ID.String(), b.ID.String())
	})
}

func (r memProductRepo) checkWrite(p *entity.Product) error {
	for _, existing := range r.s.data.products {
		if existing.ID != p.ID && existing.Slug == p.Slug {
			return domainerrors.ErrProductSlugExists
		}
	}
	if p.CategoryID != nil {
		if _, ok := r.s.data.categories[*p.CategoryID]; !ok {
			return domainerrors.ErrCategoryNotFound
		}
	}
	for _, id := range p.CollectionIDs {
		if _, ok := r.s.data.collections[id]; !ok {
			return domainerrors.ErrCollectionNotFound
		}
	}

	return nil
}

func (r memProductRepo) setMembership(productID uuid.UUID, collectionIDs []uuid.UUID) {
	for id, members := range r.s.data.members {
		if !slices.Contains(collectionIDs, id) && slices.Contains(members, productID) {
			r.s.data.members[id] = slices.DeleteFunc(slices.Clone(members), func(m uuid.UUID) bool { return m == productID })
		}
	}
	for _, id := range collectionIDs {
		if !slices.Contains(r.s.data.members[id], productID) {
			r.s.data.members[id] = append(slices.Clone(r.s.data.members[id]), productID)
		}
	}
}

func (r memProductRepo) Create(_ context.Context, product *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	if err := r.checkWrite(product); err != nil {
		return err
	}
	product.CreatedAt = time.Now()
	product.UpdatedAt = product.CreatedAt
	stored := *product
	stored.Category = nil
	r.s.data.products[product.ID] = stored
	r.setMembership(product.ID, product.CollectionIDs)

	return nil
}

func (r memProductRepo) Update(_ context.Context, product *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	existing, ok := r.s.data.products[product.ID]
	if !ok {
		return domainerrors.ErrProductNotFound
	}
	if err := r.checkWrite(product); err != nil {
		return err
	}
	stored := *product
	stored.Category = nil
	stored.Rating = existing.Rating
	stored.CreatedAt = existing.CreatedAt
	stored.UpdatedAt = time.Now()
	r.s.data.products[product.ID] = stored
	r.setMembership(product.ID, product.CollectionIDs)

	return nil
}

func (r memProductRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.data.products[id]; !ok {
		return domainerrors.ErrProductNotFound
	}
	for _, order := range r.s.data.orders {
		for _, item := range order.Items {
			if item.ProductID == id {
				return domainerrors.ErrConflict.WrapMessage("product is referenced by orders")
			}
		}
	}
	delete(r.s.data.products, id)
	r.setMembership(id, nil)
	maps.DeleteFunc(r.s.data.reviews, func(_ uuid.UUID, review entity.Review) bool { return review.ProductID == id })

	return nil
}

func (r memProductRepo) LockByIDs(_ context.Context, ids []uuid.UUID) ([]*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.productLocks.Add(1)

	out := []*entity.Product{}
	for _, p := range r.s.data.products {
		if slices.Contains(ids, p.ID) {
			copied := p
			out = append(out, &copied)
		}
	}
	slices.SortFunc(out, func(a, b *entity.Product) int { return strings.Compare(a.ID.String(), b.ID.String()) })

	return out, nil
}

func (r memProductRepo) AdjustInventory(_ context.Context, id uuid.UUID, delta int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p, ok := r.s.data.products[id]
	if !ok {
		return domainerrors.ErrProductNotFound
	}
	if p.Inventory+delta < 0 {
		return domainerrors.ErrOutOfStock
	}
	p.Inventory += delta
	r.s.data.products[id] = p

	return nil
}

func (r memProductRepo) UpdateRating(_ context.Context, id uuid.UUID, rating entity.Rating) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p, ok := r.s.data.products[id]
	if !ok {
		return domainerrors.ErrProductNotFound
	}
	p.Rating = rating
	r.s.data.products[id] = p

	return nil
}

func (r memProductRepo) FindLowStock(_ context.Context, threshold int, ids []uuid.UUID) ([]*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := []*entity.Product{}
	for _, p := range r.s.data.products {
		if p.Inventory <= threshold && (len(ids) == 0 || slices.Contains(ids, p.ID)) {
			copied := p
			out = append(out, &copied)
		}
	}
	slices.SortFunc(out, func(a, b *entity.Product) int {
		return cmp.Or(cmp.Compare(a.Inventory, b.Inventory), strings.Compare(a.ID.String(), b.ID.String()))
	})

	return out, nil
}

func (r memProductRepo) CountLowStock(ctx context.Context, threshold int) (int, error) {
	products, err := r.FindLowStock(ctx, threshold, nil)

	return len(products), err
}

func (r memProductRepo) Count(_ context.Context) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	return len(r.s.data.products), nil
}

// Categories.

type memCategoryRepo struct{ s *memStore }

func (r memCategoryRepo) List(_ context.Context) ([]*entity.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := []*entity.Category{}
	for _, c := range r.s.data.categories {
		out = append(out, &c)
	}
	slices.SortFunc(out, func(a, b *entity.Category) int { return strings.Compare(a.Title, b.Title) })

	return out, nil
}

func (r memCategoryRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	c, ok := r.s.data.categories[id]
	if !ok {
		return nil, domainerrors.ErrCategoryNotFound
	}

	return &c, nil
}

func (r memCategoryRepo) FindBySlug(_ context.Context, slug string) (*entity.Category, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, c := range r.s.data.categories {
		if c.Slug == slug {
			return &c, nil
		}
	}

	return nil, domainerrors.ErrCategoryNotFound
}

func (r memCategoryRepo) Create(_ context.Context, category *entity.Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, c := range r.s.data.categories {
		if c.Slug == category.Slug {
			return domainerrors.ErrCategorySlugExists
		}
	}
	if category.ID == uuid.Nil {
		category.ID = uuid.New()
	}
	category.CreatedAt = time.Now()
	r.s.data.categories[category.ID] = *category

	return nil
}

func (r memCategoryRepo) Update(_ context.Context, category *entity.Category) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.data.categories[category.ID]; !ok {
		return domainerrors.ErrCategoryNotFound
	}
	for _, c := range r.s.data.categories {
		if c.ID != category.ID && c.Slug == category.Slug {
			return domainerrors.ErrCategorySlugExists
		}
	}
	r.s.data.categories[category.ID] = *category

	return nil
}

func (r memCategoryRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.data.categories[id]; !ok {
		return domainerrors.ErrCategoryNotFound
	}
	delete(r.s.data.categories, id)
	for pid, p := range r.s.data.products {
		if p.CategoryID != nil && *p.CategoryID == id {
			p.CategoryID = nil
			r.s.data.products[pid] = p
		}
	}

	return nil
}

func (r memCategoryRepo) Count(_ context.Context) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	return len(r.s.data.categories), nil
}

// Collections.

type memCollectionRepo struct{ s *memStore }

func (r memCollectionRepo) withMembers(c entity.Collection) *entity.Collection {
	c.ProductIDs = slices.Clone(r.s.data.members[c.ID])
	if c.ProductIDs == nil {
		c.ProductIDs = []uuid.UUID{}
	}

	return &c
}

func (r memCollectionRepo) List(_ context.Context) ([]*entity.Collection, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := []*entity.Collection{}
	for _, c := range r.s.data.collections {
		out = append(out, r.withMembers(c))
	}
	slices.SortFunc(out, func(a, b *entity.Collection) int { return strings.Compare(a.Title, b.Title) })

	return out, nil
}

func (r memCollectionRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Collection, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	c, ok := r.s.data.collections[id]
	if !ok {
		return nil, domainerrors.ErrCollectionNotFound
	}

	return r.withMembers(c), nil
}

func (r memCollectionRepo) FindBySlug(_ context.Context, slug string) (*entity.Collection, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, c := range r.s.data.collections {
		if c.Slug == slug {
			return r.withMembers(c), nil
		}
	}

	return nil, domainerrors.ErrCollectionNotFound
}

func (r memCollectionRepo) Create(ctx context.Context, collection *entity.Collection) error {
	r.s.mu.Lock()
	for _, c := range r.s.data.collections {
		if c.Slug == collection.Slug {
			r.s.mu.Unlock()

			return domainerrors.ErrCollectionSlugExists
		}
	}
	if collection.ID == uuid.Nil {
		collection.ID = uuid.New()
	}
	collection.CreatedAt = time.Now()
	r.s.data.collections[collection.ID] = *collection
	r.s.mu.Unlock()

	return r.SetProducts(ctx, collection.ID, collection.ProductIDs)
}

func (r memCollectionRepo) Update(ctx context.Context, collection *entity.Collection) error {
	r.s.mu.Lock()
	if _, ok := r.s.data.collections[collection.ID]; !ok {
		r.s.mu.Unlock()

		return domainerrors.ErrCollectionNotFound
	}
	for _, c := range r.s.data.collections {
		if c.ID != collection.ID && c.Slug == collection.Slug {
			r.s.mu.Unlock()

			return domainerrors.ErrCollectionSlugExists
		}
	}
	r.s.data.collections[collection.ID] = *collection
	r.s.mu.Unlock()

	return r.SetProducts(ctx, collection.ID, collection.ProductIDs)
}

func (r memCollectionRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.data.collections[id]; !ok {
		return domainerrors.ErrCollectionNotFound
	}
	delete(r.s.data.collections, id)
	delete(r.s.data.members, id)

	return nil
}

func (r memCollectionRepo) SetProducts(_ context.Context, collectionID uuid.UUID, productIDs []uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, id := range productIDs {
		if _, ok := r.s.data.products[id]; !ok {
			return domainerrors.ErrProductNotFound
		}
	}
	r.s.data.members[collectionID] = slices.Clone(productIDs)

	return nil
}

func (r memCollectionRepo) Count(_ context.Context) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	return len(r.s.data.collections), nil
}

// Reviews.

type memReviewRepo struct{ s *memStore }

func newestReviewsFirst(a, b *entity.Review) int {
	if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
		return c
	}

	return strings.Compare(a.ID.String(), b.ID.String())
}

func (r memReviewRepo) ListByProduct(_ context.Context, productID uuid.UUID) ([]*entity.Review, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := []*entity.Review{}
	for _, review := range r.s.data.reviews {
		if review.ProductID == productID {
			out = append(out, &review)
		}
	}
	slices.SortFunc(out, newestReviewsFirst)

	return out, nil
}

func (r memReviewRepo) List(_ context.Context, page entity.PageRequest) ([]*entity.Review, int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	all := []*entity.Review{}
	for _, review := range r.s.data.reviews {
		all = append(all, &review)
	}
	slices.SortFunc(all, newestReviewsFirst)

	return pageOf(all, page), len(all), nil
}

func (r memReviewRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Review, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	review, ok := r.s.data.reviews[id]
	if !ok {
		return nil, domainerrors.ErrReviewNotFound
	}

	return &review, nil
}

func (r memReviewRepo) Create(_ context.Context, review *entity.Review) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, existing := range r.s.data.reviews {
		if existing.ProductID == review.ProductID && existing.User.ID == review.User.ID {
			return domainerrors.ErrReviewAlreadyExists
		}
	}
	if review.ID == uuid.Nil {
		review.ID = uuid.New()
	}
	review.CreatedAt = time.Now()
	r.s.data.reviews[review.ID] = *review

	return nil
}

func (r memReviewRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.data.reviews[id]; !ok {
		return domainerrors.ErrReviewNotFound
	}
	delete(r.s.data.reviews, id)

	return nil
}

func (r memReviewRepo) Aggregate(_ context.Context, productID uuid.UUID) (entity.Rating, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	sum, count := 0, 0
	for _, review := range r.s.data.reviews {
		if review.ProductID == productID {
			sum += review.Rating
			count++
		}
	}
	if count == 0 {
		return entity.Rating{}, nil
	}

	return entity.Rating{Average: math.Round(float64(sum)/float64(count)*100) / 100, Count: count}, nil
}

func (r memReviewRepo) Count(_ context.Context) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	return len(r.s.data.reviews), nil
}

// Carts.

type memCartRepo struct{ s *memStore }

func (r memCartRepo) Get(_ context.Context, userID uuid.UUID) (*entity.Cart, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	return entity.NewCart(userID, slices.Clone(r.s.data.carts[userID])), nil
}

// Lock only counts calls; transactions already run one at a time.
func (r memCartRepo) Lock(_ context.Context, userID uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.data.users[userID]; !ok {
		return domainerrors.ErrUserNotFound
	}
	r.s.cartLocks.Add(1)

	return nil
}

func (r memCartRepo) Save(_ context.Context, cart *entity.Cart) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, item := range cart.Items {
		if _, ok := r.s.data.products[item.ProductID]; !ok {
			return domainerrors.ErrProductNotFound
		}
		if item.Quantity <= 0 {
			return domainerrors.ErrInvalidQuantity
		}
	}
	if cart.IsEmpty() {
		delete(r.s.data.carts, cart.UserID)
	} else {
		r.s.data.carts[cart.UserID] = slices.Clone(cart.Items)
	}
	cart.UpdatedAt = time.Now()

	return nil
}

// Wishlists.

type memWishlistRepo struct{ s *memStore }

func (r memWishlistRepo) List(_ context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	return slices.Clone(r.s.data.wishlists[userID]), nil
}

func (r memWishlistRepo) Add(_ context.Context, userID, productID uuid.UUID) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.data.products[productID]; !ok {
		return false, domainerrors.ErrProductNotFound
	}
	if slices.Contains(r.s.data.wishlists[userID], productID) {
		return false, nil
	}
	r.s.data.wishlists[userID] = append(slices.Clone(r.s.data.wishlists[userID]), productID)

	return true, nil
}

func (r memWishlistRepo) Remove(_ context.Context, userID, productID uuid.UUID) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	ids := r.s.data.wishlists[userID]
	idx := slices.Index(ids, productID)
	if idx < 0 {
		return false, nil
	}
	r.s.data.wishlists[userID] = slices.Delete(slices.Clone(ids), idx, idx+1)

	return true, nil
}

func (r memWishlistRepo) Clear(_ context.Context, userID uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	delete(r.s.data.wishlists, userID)

	return nil
}

// Orders.

type memOrderRepo struct{ s *memStore }

func (r memOrderRepo) Create(_ context.Context, order *entity.Order) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if order.IdempotencyKey != "" {
		for _, existing := range r.s.data.orders {
			if existing.UserID == order.UserID && existing.IdempotencyKey == order.IdempotencyKey {
				return domainerrors.ErrConflict.WrapMessage("order already exists")
			}
		}
	}
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	order.CreatedAt = time.Now().Add(time.Duration(len(r.s.data.orders)) * time.Millisecond)
	order.UpdatedAt = order.CreatedAt
	stored := *order
	stored.Items = slices.Clone(order.Items)
	r.s.data.orders[order.ID] = stored

	return nil
}

func (r memOrderRepo) copyOf(o entity.Order) *entity.Order {
	o.Items = slices.Clone(o.Items)

	return &o
}

func (r memOrderRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	order, ok := r.s.data.orders[id]
	if !ok {
		return nil, domainerrors.ErrOrderNotFound
	}

	return r.copyOf(order), nil
}

func (r memOrderRepo) LockByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	r.s.orderLocks.Add(1)

	return r.FindByID(ctx, id)
}

func (r memOrderRepo) FindByIdempotencyKey(_ context.Context, userID uuid.UUID, key string) (*entity.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, order := range r.s.data.orders {
		if order.UserID == userID && order.IdempotencyKey == key {
			return r.copyOf(order), nil
		}
	}

	return nil, nil
}

func (r memOrderRepo) FindByPaymentReference(_ context.Context, reference string) (*entity.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, order := range r.s.data.orders {
		if reference != "" && order.Payment.Reference == reference {
			return r.copyOf(order), nil
		}
	}

	return nil, domainerrors.ErrOrderNotFound
}

func (r memOrderRepo) List(_ context.Context, filter entity.OrderFilter) ([]*entity.Order, int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	all := []*entity.Order{}
	for _, order := range r.s.data.orders {
		if filter.UserID != nil && order.UserID != *filter.UserID {
			continue
		}
		if filter.Status != nil && order.Status != *filter.Status {
			continue
		}
		all = append(all, r.copyOf(order))
	}
	slices.SortFunc(all, func(a, b *entity.Order) int {
		return cmp.Or(b.CreatedAt.Compare(a.CreatedAt), strings.Compare(a.ID.String(), b.ID.String()))
	})

	return pageOf(all, filter.Page), len(all), nil
}

func (r memOrderRepo) UpdateStatus(_ context.Context, id uuid.UUID, status entity.OrderStatus) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	order, ok := r.s.data.orders[id]
	if !ok {
		return domainerrors.ErrOrderNotFound
	}
	order.Status = status
	order.UpdatedAt = time.Now()
	r.s.data.orders[id] = order

	return nil
}

func (r memOrderRepo) UpdatePayment(_ context.Context, id uuid.UUID, payment entity.Payment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	order, ok := r.s.data.orders[id]
	if !ok {
		return domainerrors.ErrOrderNotFound
	}
	order.Payment = payment
	r.s.data.orders[id] = order

	return nil
}

func (r memOrderRepo) CountByStatus(_ context.Context) (map[entity.OrderStatus]int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := map[entity.OrderStatus]int{}
	for _, order := range r.s.data.orders {
		out[order.Status]++
	}

	return out, nil
}

func (r memOrderRepo) SumRevenue(_ context.Context) (decimal.Decimal, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	total := decimal.Zero
	for _, order := range r.s.data.orders {
		if order.Payment.PaidAt != nil && order.Status != entity.OrderStatusCancelled {
			total = total.Add(order.Total)
		}
	}

	return total, nil
}

// Shipping methods.

type memShippingRepo struct{ s *memStore }

func (r memShippingRepo) List(_ context.Context, activeOnly bool) ([]*entity.ShippingMethod, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := []*entity.ShippingMethod{}
	for _, method := range r.s.data.shipping {
		if activeOnly && !method.Active {
			continue
		}
		out = append(out, &method)
	}
	slices.SortFunc(out, func(a, b *entity.ShippingMethod) int {
		return cmp.Or(cmp.Compare(a.SortOrder, b.SortOrder), strings.Compare(a.Name, b.Name))
	})

	return out, nil
}

func (r memShippingRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.ShippingMethod, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	method, ok := r.s.data.shipping[id]
	if !ok {
		return nil, domainerrors.ErrShippingMethodNotFound
	}

	return &method, nil
}

func (r memShippingRepo) Create(_ context.Context, method *entity.ShippingMethod) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if method.ID == uuid.Nil {
		method.ID = uuid.New()
	}
	r.s.data.shipping[method.ID] = *method

	return nil
}

func (r memShippingRepo) Update(_ context.Context, method *entity.ShippingMethod) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.data.shipping[method.ID]; !ok {
		return domainerrors.ErrShippingMethodNotFound
	}
	r.s.data.shipping[method.ID] = *method

	return nil
}

func (r memShippingRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.data.shipping[id]; !ok {
		return domainerrors.ErrShippingMethodNotFound
	}
	delete(r.s.data.shipping, id)

	return nil
}

// Settings.

type memSettingsRepo struct{ s *memStore }

func (r memSettingsRepo) Get(_ context.Context) (*entity.StoreSettings, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if r.s.data.settings == nil {
		return nil, nil
	}
	settings := *r.s.data.settings

	return &settings, nil
}

func (r memSettingsRepo) Save(_ context.Context, settings *entity.StoreSettings) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stored := *settings
	r.s.data.settings = &stored

	return nil
}

// Contact messages.

type memContactRepo struct{ s *memStore }

func (r memContactRepo) Create(_ context.Context, message *entity.ContactMessage) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if message.ID == uuid.Nil {
		message.ID = uuid.New()
	}
	message.CreatedAt = time.Now()
	r.s.data.contacts = append(r.s.data.contacts, *message)

	return nil
}

func (r memContactRepo) List(_ context.Context, page entity.PageRequest) ([]*entity.ContactMessage, int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	all := make([]*entity.ContactMessage, 0, len(r.s.data.contacts))
	for i := len(r.s.data.contacts) - 1; i >= 0; i-- {
		message := r.s.data.contacts[i]
		all = append(all, &message)
	}

	return pageOf(all, page), len(all), nil
}

func (r memContactRepo) Count(_ context.Context) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	return len(r.s.data.contacts), nil
}

func pageOf[T any](items []T, page entity.PageRequest) []T {
	start := min(page.Offset(), len(items))
	end := len(items)
	if page.Limit > 0 {
		end = min(start+page.Limit, len(items))
	}

	return items[start:end]
}
