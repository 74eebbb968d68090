package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// ContactInput is a contact form submission.
type ContactInput struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// ContactUsecase receives contact form messages and lists them for the back-office.
type ContactUsecase interface {
	Submit(ctx context.Context, input *ContactInput) (*entity.ContactMessage, error)
	ListMessages(ctx context.Context, page entity.PageRequest) (entity.Page[*entity.ContactMessage], error)
}
