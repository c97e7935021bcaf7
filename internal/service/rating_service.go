package service

import (
	"errors"

	"ratewave/internal/models"
	"ratewave/internal/repository"
	"ratewave/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrTypeRequired   = errors.New("rating type is required")
	ErrRatingNotFound = errors.New("rating not found")
	ErrNotOwner       = errors.New("only the owner may modify this rating")
)

// RatingInput carries the twelve editable fields of a rating as submitted.
// Scores arrive as free text; only the type is mandatory, matching the
// behavior users already rely on.
type RatingInput struct {
	Type           string
	Name           string
	LyricsScore    string
	LyricsReason   string
	BeatScore      string
	BeatReason     string
	FlowScore      string
	FlowReason     string
	MelodyScore    string
	MelodyReason   string
	CohesiveScore  string
	CohesiveReason string
}

type RatingService struct {
	ratingRepo *repository.RatingRepository
}

func NewRatingService(ratingRepo *repository.RatingRepository) *RatingService {
	return &RatingService{ratingRepo: ratingRepo}
}

// Create persists a new rating owned by ownerID.
func (s *RatingService) Create(input RatingInput, ownerID uuid.UUID) (*models.Rating, error) {
	if input.Type == "" {
		return nil, ErrTypeRequired
	}

	rating := &models.Rating{
		Type:           input.Type,
		Name:           input.Name,
		LyricsScore:    input.LyricsScore,
		LyricsReason:   input.LyricsReason,
		BeatScore:      input.BeatScore,
		BeatReason:     input.BeatReason,
		FlowScore:      input.FlowScore,
		FlowReason:     input.FlowReason,
		MelodyScore:    input.MelodyScore,
		MelodyReason:   input.MelodyReason,
		CohesiveScore:  input.CohesiveScore,
		CohesiveReason: input.CohesiveReason,
		OwnerID:        ownerID,
	}

	if err := s.ratingRepo.CreateRating(rating); err != nil {
		logger.Log.Error("Failed to create rating",
			zap.String("owner_id", ownerID.String()),
			zap.Error(err),
		)
		return nil, err
	}

	logger.Log.Info("Rating created",
		zap.Uint("rating_id", rating.ID),
		zap.String("type", rating.Type),
		zap.String("owner_id", ownerID.String()),
	)

	return rating, nil
}

// List returns all ratings in insertion order.
func (s *RatingService) List() ([]models.Rating, error) {
	return s.ratingRepo.GetAllRatings()
}

// Get returns a single rating or ErrRatingNotFound.
func (s *RatingService) Get(id uint) (*models.Rating, error) {
	rating, err := s.ratingRepo.GetRatingByID(id)
	if err != nil {
		return nil, err
	}
	if rating == nil {
		return nil, ErrRatingNotFound
	}
	return rating, nil
}

// Update overwrites all editable fields of a rating. Only the owner may
// update; anyone else gets ErrNotOwner and storage is left unchanged.
func (s *RatingService) Update(id uint, input RatingInput, callerID uuid.UUID) error {
	rating, err := s.Get(id)
	if err != nil {
		return err
	}
	if rating.OwnerID != callerID {
		logger.Log.Warn("Rating update rejected: caller is not the owner",
			zap.Uint("rating_id", id),
			zap.String("caller_id", callerID.String()),
			zap.String("owner_id", rating.OwnerID.String()),
		)
		return ErrNotOwner
	}
	if input.Type == "" {
		return ErrTypeRequired
	}

	rating.Type = input.Type
	rating.Name = input.Name
	rating.LyricsScore = input.LyricsScore
	rating.LyricsReason = input.LyricsReason
	rating.BeatScore = input.BeatScore
	rating.BeatReason = input.BeatReason
	rating.FlowScore = input.FlowScore
	rating.FlowReason = input.FlowReason
	rating.MelodyScore = input.MelodyScore
	rating.MelodyReason = input.MelodyReason
	rating.CohesiveScore = input.CohesiveScore
	rating.CohesiveReason = input.CohesiveReason

	if err := s.ratingRepo.UpdateRating(rating); err != nil {
		logger.Log.Error("Failed to update rating",
			zap.Uint("rating_id", id),
			zap.Error(err),
		)
		return err
	}

	logger.Log.Info("Rating updated",
		zap.Uint("rating_id", id),
		zap.String("caller_id", callerID.String()),
	)

	return nil
}

// Delete hard-deletes a rating. Same ownership gate as Update; deleting an
// already-deleted rating yields ErrRatingNotFound.
func (s *RatingService) Delete(id uint, callerID uuid.UUID) error {
	rating, err := s.Get(id)
	if err != nil {
		return err
	}
	if rating.OwnerID != callerID {
		logger.Log.Warn("Rating delete rejected: caller is not the owner",
			zap.Uint("rating_id", id),
			zap.String("caller_id", callerID.String()),
		)
		return ErrNotOwner
	}

	rows, err := s.ratingRepo.DeleteRating(id)
	if err != nil {
		logger.Log.Error("Failed to delete rating",
			zap.Uint("rating_id", id),
			zap.Error(err),
		)
		return err
	}
	if rows == 0 {
		return ErrRatingNotFound
	}

	logger.Log.Info("Rating deleted",
		zap.Uint("rating_id", id),
		zap.String("caller_id", callerID.String()),
	)

	return nil
}
