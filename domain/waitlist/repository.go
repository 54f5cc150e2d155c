package waitlist

import (
	"context"

	"github.com/arrahmanlabs/waitlist-api/internal/models"
	apperrors "github.com/arrahmanlabs/waitlist-api/pkg/errors"
	"gorm.io/gorm"
)

type WaitlistRepository interface {
	// CreateResponse persists a new survey response.
	CreateResponse(ctx context.Context, response *models.WaitlistResponse) (*models.WaitlistResponse, error)
	// GetAllResponses returns every response, newest first.
	GetAllResponses(ctx context.Context) ([]*models.WaitlistResponse, error)
	// CountResponses returns the total number of responses.
	CountResponses(ctx context.Context) (int64, error)
	// DeleteResponse removes a response by ID. The boolean reports whether a
	// row was actually removed; deleting a missing ID is not an error.
	DeleteResponse(ctx context.Context, id uint) (bool, error)
}

type waitlistRepository struct {
	db *gorm.DB
}

func NewWaitlistRepository(db *gorm.DB) WaitlistRepository {
	return &waitlistRepository{db: db}
}

func (wr *waitlistRepository) CreateResponse(ctx context.Context, response *models.WaitlistResponse) (*models.WaitlistResponse, error) {
	if err := wr.db.WithContext(ctx).Create(response).Error; err != nil {
		return nil, apperrors.NewDatabaseError("unable to store survey response", err)
	}

	return response, nil
}

func (wr *waitlistRepository) GetAllResponses(ctx context.Context) ([]*models.WaitlistResponse, error) {
	var responses []*models.WaitlistResponse

	// id breaks ties between rows created in the same instant.
	err := wr.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Find(&responses).Error
	if err != nil {
		return nil, apperrors.NewDatabaseError("unable to fetch survey responses", err)
	}

	return responses, nil
}

func (wr *waitlistRepository) CountResponses(ctx context.Context) (int64, error) {
	var count int64

	err := wr.db.WithContext(ctx).
		Model(&models.WaitlistResponse{}).
		Count(&count).Error
	if err != nil {
		return 0, apperrors.NewDatabaseError("unable to count survey responses", err)
	}

	return count, nil
}

func (wr *waitlistRepository) DeleteResponse(ctx context.Context, id uint) (bool, error) {
	result := wr.db.WithContext(ctx).Delete(&models.WaitlistResponse{}, id)

	if result.Error != nil {
		return false, apperrors.NewDatabaseError("unable to delete survey response", result.Error)
	}

	return result.RowsAffected > 0, nil
}
