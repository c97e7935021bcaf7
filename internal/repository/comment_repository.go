package repository

import (
	"errors"

	"ratewave/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) CreateComment(comment *models.ProfileComment) error {
	return r.db.Create(comment).Error
}

func (r *CommentRepository) GetCommentByID(id uint) (*models.ProfileComment, error) {
	var comment models.ProfileComment
	err := r.db.Preload("Author").First(&comment, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &comment, nil
}

// GetCommentsForProfile returns a profile's comments oldest-first with the
// author preloaded for display.
func (r *CommentRepository) GetCommentsForProfile(profileUserID uuid.UUID) ([]models.ProfileComment, error) {
	var comments []models.ProfileComment
	err := r.db.
		Preload("Author").
		Where("profile_user_id = ?", profileUserID).
		Order("id ASC").
		Find(&comments).Error
	return comments, err
}

func (r *CommentRepository) UpdateCommentMessage(id uint, message string) error {
	return r.db.Model(&models.ProfileComment{}).
		Where("id = ?", id).
		Update("message", message).Error
}

func (r *CommentRepository) DeleteComment(id uint) error {
	return r.db.Delete(&models.ProfileComment{}, id).Error
}
