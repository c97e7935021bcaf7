package service_test

import (
	"testing"

	"ratewave/internal/models"
	"ratewave/internal/repository"
	"ratewave/internal/service"
	"ratewave/internal/testutil"
	"ratewave/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type RatingServiceTestSuite struct {
	suite.Suite
	testDB        *testutil.TestDatabase
	ratingService *service.RatingService
	alice         *models.User
	bob           *models.User
}

func (s *RatingServiceTestSuite) SetupSuite() {
	logger.Init(false)

	s.testDB = testutil.SetupTestDatabase(s.T())
	ratingRepo := repository.NewRatingRepository(s.testDB.DB)
	s.ratingService = service.NewRatingService(ratingRepo)
}

func (s *RatingServiceTestSuite) TearDownSuite() {
	s.testDB.Teardown(s.T())
}

func (s *RatingServiceTestSuite) SetupTest() {
	testutil.CleanDatabase(s.T(), s.testDB.DB)

	var err error
	s.alice, err = testutil.CreateTestUser("alice", "alice@example.com", "pw123456")
	require.NoError(s.T(), err)
	require.NoError(s.T(), s.testDB.DB.Create(s.alice).Error)

	s.bob, err = testutil.CreateTestUser("bob", "bob@example.com", "pw123456")
	require.NoError(s.T(), err)
	require.NoError(s.T(), s.testDB.DB.Create(s.bob).Error)
}

func (s *RatingServiceTestSuite) TestCreateAndListOrder() {
	names := []string{"Illmatic", "Aquemini", "Madvillainy"}
	for _, name := range names {
		_, err := s.ratingService.Create(service.RatingInput{Type: "Album", Name: name}, s.alice.ID)
		require.NoError(s.T(), err)
	}

	ratings, err := s.ratingService.List()

	require.NoError(s.T(), err)
	require.Len(s.T(), ratings, 3)
	for i, rating := range ratings {
		assert.Equal(s.T(), names[i], rating.Name, "List should preserve insertion order")
		assert.Equal(s.T(), "alice", rating.Owner.Username, "List should preload the owner")
	}
}

func (s *RatingServiceTestSuite) TestCreateRequiresType() {
	_, err := s.ratingService.Create(service.RatingInput{Name: "No Type"}, s.alice.ID)

	assert.ErrorIs(s.T(), err, service.ErrTypeRequired)

	ratings, listErr := s.ratingService.List()
	require.NoError(s.T(), listErr)
	assert.Empty(s.T(), ratings)
}

func (s *RatingServiceTestSuite) TestGetNotFound() {
	_, err := s.ratingService.Get(99999)
	assert.ErrorIs(s.T(), err, service.ErrRatingNotFound)
}

func (s *RatingServiceTestSuite) TestUpdateByOwner() {
	rating, err := s.ratingService.Create(service.RatingInput{Type: "Song", Name: "Old Name", LyricsScore: "5"}, s.alice.ID)
	require.NoError(s.T(), err)

	err = s.ratingService.Update(rating.ID, service.RatingInput{
		Type:        "Song",
		Name:        "New Name",
		LyricsScore: "9",
	}, s.alice.ID)

	require.NoError(s.T(), err)

	updated, err := s.ratingService.Get(rating.ID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "New Name", updated.Name)
	assert.Equal(s.T(), "9", updated.LyricsScore)
}

func (s *RatingServiceTestSuite) TestUpdateByNonOwnerRejected() {
	rating, err := s.ratingService.Create(service.RatingInput{Type: "Song", Name: "Alice's Pick"}, s.alice.ID)
	require.NoError(s.T(), err)

	err = s.ratingService.Update(rating.ID, service.RatingInput{Type: "Song", Name: "Hijacked"}, s.bob.ID)

	assert.ErrorIs(s.T(), err, service.ErrNotOwner)

	unchanged, getErr := s.ratingService.Get(rating.ID)
	require.NoError(s.T(), getErr)
	assert.Equal(s.T(), "Alice's Pick", unchanged.Name, "Rejected update must leave the record unchanged")
}

func (s *RatingServiceTestSuite) TestUpdateClearsOmittedFields() {
	rating, err := s.ratingService.Create(service.RatingInput{
		Type:         "Album",
		Name:         "Full Marks",
		LyricsScore:  "10",
		LyricsReason: "every bar lands",
		BeatScore:    "10",
	}, s.alice.ID)
	require.NoError(s.T(), err)

	// Resubmitting with fields blank overwrites them blank
	err = s.ratingService.Update(rating.ID, service.RatingInput{Type: "Album", Name: "Full Marks"}, s.alice.ID)
	require.NoError(s.T(), err)

	updated, err := s.ratingService.Get(rating.ID)
	require.NoError(s.T(), err)
	assert.Empty(s.T(), updated.LyricsScore)
	assert.Empty(s.T(), updated.LyricsReason)
	assert.Empty(s.T(), updated.BeatScore)
}

func (s *RatingServiceTestSuite) TestUpdateMissingRating() {
	err := s.ratingService.Update(424242, service.RatingInput{Type: "Song"}, s.alice.ID)
	assert.ErrorIs(s.T(), err, service.ErrRatingNotFound)
}

func (s *RatingServiceTestSuite) TestDeleteByOwner() {
	rating, err := s.ratingService.Create(service.RatingInput{Type: "Song", Name: "Ephemeral"}, s.alice.ID)
	require.NoError(s.T(), err)

	err = s.ratingService.Delete(rating.ID, s.alice.ID)
	require.NoError(s.T(), err)

	_, err = s.ratingService.Get(rating.ID)
	assert.ErrorIs(s.T(), err, service.ErrRatingNotFound)

	// Deleting again reports not found, not success
	err = s.ratingService.Delete(rating.ID, s.alice.ID)
	assert.ErrorIs(s.T(), err, service.ErrRatingNotFound)
}

func (s *RatingServiceTestSuite) TestDeleteByNonOwnerRejected() {
	rating, err := s.ratingService.Create(service.RatingInput{Type: "Song", Name: "Keeper"}, s.alice.ID)
	require.NoError(s.T(), err)

	err = s.ratingService.Delete(rating.ID, s.bob.ID)
	assert.ErrorIs(s.T(), err, service.ErrNotOwner)

	still, getErr := s.ratingService.Get(rating.ID)
	require.NoError(s.T(), getErr)
	assert.NotNil(s.T(), still)
}

func TestRatingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RatingServiceTestSuite))
}
