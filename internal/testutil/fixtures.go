package testutil

import (
	"time"

	"ratewave/internal/models"
	"ratewave/internal/utils"

	"github.com/google/uuid"
)

// CreateTestUser builds a user with a real Argon2id password hash.
func CreateTestUser(username, email, password string) (*models.User, error) {
	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	return &models.User{
		ID:           uuid.New(),
		Username:     username,
		Email:        email,
		PasswordHash: hashedPassword,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}, nil
}

// DefaultTestUser returns a default test user
func DefaultTestUser() (*models.User, error) {
	return CreateTestUser("testuser", "test@example.com", "Test123456")
}

// CreateTestRating builds a rating owned by the given user.
func CreateTestRating(ownerID uuid.UUID, ratingType, name string) *models.Rating {
	return &models.Rating{
		Type:           ratingType,
		Name:           name,
		LyricsScore:    "8",
		LyricsReason:   "strong imagery",
		BeatScore:      "7",
		BeatReason:     "punchy drums",
		FlowScore:      "9",
		FlowReason:     "never stumbles",
		MelodyScore:    "6",
		MelodyReason:   "serviceable hooks",
		CohesiveScore:  "8",
		CohesiveReason: "consistent mood",
		OwnerID:        ownerID,
		CreatedAt:      time.Now(),
	}
}

// CreateTestComment builds a profile comment.
func CreateTestComment(profileUserID, authorID uuid.UUID, message string) *models.ProfileComment {
	return &models.ProfileComment{
		ProfileUserID: profileUserID,
		AuthorID:      authorID,
		Message:       message,
		CreatedAt:     time.Now(),
	}
}
