package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// contactRepository implements the domain.ContactRepository interface.
type contactRepository struct {
	db *gorm.DB
}

// NewContactRepository is the constructor for contactRepository.
func NewContactRepository(db *gorm.DB) repository.ContactRepository {
	return &contactRepository{db: db}
}

func (repo *contactRepository) Create(ctx context.Context, message *entity.ContactMessage) error {
	messageM := &model.ContactMessageModel{
		ID:      message.ID,
		Name:    message.Name,
		Email:   message.Email,
		Subject: message.Subject,
		Message: message.Message,
	}
	if err := repo.db.WithContext(ctx).Create(messageM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to store contact message")
	}

	message.ID = messageM.ID
	message.CreatedAt = messageM.CreatedAt

	return nil
}

func (repo *contactRepository) List(ctx context.Context, page entity.PageRequest) ([]*entity.ContactMessage, int, error) {
	var total int64
	if err := repo.db.WithContext(ctx).Model(&model.ContactMessageModel{}).Count(&total).Error; err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to count contact messages")
	}

	var messageModels []*model.ContactMessageModel
	err := repo.db.WithContext(ctx).
		Order("created_at DESC, id ASC").
		Offset(page.Offset()).
		Limit(page.Limit).
		Find(&messageModels).Error
	if err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to list contact messages")
	}

	messages := make([]*entity.ContactMessage, 0, len(messageModels))
	for _, m := range messageModels {
		messages = append(messages, &entity.ContactMessage{
			ID:        m.ID,
			Name:      m.Name,
			Email:     m.Email,
			Subject:   m.Subject,
			Message:   m.Message,
			CreatedAt: m.CreatedAt,
		})
	}

	return messages, int(total), nil
}

func (repo *contactRepository) Count(ctx context.Context) (int, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.ContactMessageModel{}).Count(&count).Error; err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to count contact messages")
	}

	return int(count), nil
}
