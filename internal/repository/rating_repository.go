package repository

import (
	"errors"

	"ratewave/internal/models"

	"gorm.io/gorm"
)

type RatingRepository struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) *RatingRepository {
	return &RatingRepository{db: db}
}

func (r *RatingRepository) CreateRating(rating *models.Rating) error {
	return r.db.Create(rating).Error
}

// GetRatingByID retrieves a rating with its owner preloaded.
func (r *RatingRepository) GetRatingByID(id uint) (*models.Rating, error) {
	var rating models.Rating
	err := r.db.Preload("Owner").First(&rating, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rating, nil
}

// GetAllRatings returns every rating in insertion order (ascending key),
// which is the order the browse pages display.
func (r *RatingRepository) GetAllRatings() ([]models.Rating, error) {
	var ratings []models.Rating
	err := r.db.
		Preload("Owner").
		Order("id ASC").
		Find(&ratings).Error
	return ratings, err
}

// UpdateRating overwrites all twelve editable fields of a rating.
func (r *RatingRepository) UpdateRating(rating *models.Rating) error {
	return r.db.Model(&models.Rating{}).
		Where("id = ?", rating.ID).
		Updates(map[string]interface{}{
			"type":            rating.Type,
			"name":            rating.Name,
			"lyrics_score":    rating.LyricsScore,
			"lyrics_reason":   rating.LyricsReason,
			"beat_score":      rating.BeatScore,
			"beat_reason":     rating.BeatReason,
			"flow_score":      rating.FlowScore,
			"flow_reason":     rating.FlowReason,
			"melody_score":    rating.MelodyScore,
			"melody_reason":   rating.MelodyReason,
			"cohesive_score":  rating.CohesiveScore,
			"cohesive_reason": rating.CohesiveReason,
		}).Error
}

// DeleteRating hard-deletes a rating. Returns the number of rows removed so
// callers can distinguish a repeat delete.
func (r *RatingRepository) DeleteRating(id uint) (int64, error) {
	res := r.db.Delete(&models.Rating{}, id)
	return res.RowsAffected, res.Error
}
