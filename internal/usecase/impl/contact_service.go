package impl

import (
	"context"
	"log/slog"
	"strings"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type contactService struct {
	contactRepo     repository.ContactRepository
	eventPublisher  service.EventPublisher
	defaultPageSize int
	maxPageSize     int
	logger          *slog.Logger
}

// ContactServiceParams holds dependencies for ContactService, injected by Fx.
type ContactServiceParams struct {
	fx.In

	ContactRepo    repository.ContactRepository
	EventPublisher service.EventPublisher
	Config         *config.Config
	Logger         *slog.Logger
}

// NewContactService creates the contact form use case.
func NewContactService(params ContactServiceParams) usecase.ContactUsecase {
	defaultPageSize, maxPageSize := pageLimits(params.Config)

	return &contactService{
		contactRepo:     params.ContactRepo,
		eventPublisher:  params.EventPublisher,
		defaultPageSize: defaultPageSize,
		maxPageSize:     maxPageSize,
		logger:          params.Logger,
	}
}

func (srv *contactService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Submit stores a contact message and notifies the back-office through the event stream.
func (srv *contactService) Submit(ctx context.Context, input *usecase.ContactInput) (*entity.ContactMessage, error) {
	message := &entity.ContactMessage{
		Name:    strings.TrimSpace(input.Name),
		Email:   strings.ToLower(strings.TrimSpace(input.Email)),
		Subject: strings.TrimSpace(input.Subject),
		Message: strings.TrimSpace(input.Message),
	}
	if message.Name == "" || message.Email == "" || message.Message == "" {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("name, email and message are required"))
	}

	if err := srv.contactRepo.Create(ctx, message); err != nil {
		return nil, errors.Wrap(err, "failed to save contact message")
	}

	srv.log(ctx).Info("Contact message received", slog.Any("messageID", message.ID))

	event := service.NewDomainEvent(constants.EventContactSubmitted, deliverycontext.GetRequestIDFromContext(ctx))
	event.Contact = &service.ContactEventPayload{
		MessageID: message.ID.String(),
		Name:      message.Name,
		Email:     message.Email,
		Subject:   message.Subject,
	}
	publishEvent(ctx, srv.eventPublisher, srv.log(ctx), event)

	return message, nil
}

func (srv *contactService) ListMessages(ctx context.Context, page entity.PageRequest) (entity.Page[*entity.ContactMessage], error) {
	page = page.Normalize(srv.defaultPageSize, srv.maxPageSize)

	messages, total, err := srv.contactRepo.List(ctx, page)
	if err != nil {
		return entity.Page[*entity.ContactMessage]{}, errors.Wrap(err, "failed to list contact messages")
	}

	return entity.NewPage(messages, total, page), nil
}
