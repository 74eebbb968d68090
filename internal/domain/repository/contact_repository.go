package repository

import (
	"context"

	"storefront/internal/domain/entity"
)

// ContactRepository persists contact form submissions.
type ContactRepository interface {
	Create(ctx context.Context, message *entity.ContactMessage) error
	List(ctx context.Context, page entity.PageRequest) ([]*entity.ContactMessage, int, error)
	Count(ctx context.Context) (int, error)
}
