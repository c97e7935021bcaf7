package service_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"ratewave/internal/models"
	"ratewave/internal/repository"
	"ratewave/internal/service"
	"ratewave/internal/testutil"
	"ratewave/pkg/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type ProfileServiceTestSuite struct {
	suite.Suite
	testDB         *testutil.TestDatabase
	userRepo       *repository.UserRepository
	profileService *service.ProfileService
	staticDir      string
	uploadDir      string
	alice          *models.User
	bob            *models.User
}

func (s *ProfileServiceTestSuite) SetupSuite() {
	logger.Init(false)

	s.testDB = testutil.SetupTestDatabase(s.T())
	s.userRepo = repository.NewUserRepository(s.testDB.DB)
}

func (s *ProfileServiceTestSuite) TearDownSuite() {
	s.testDB.Teardown(s.T())
}

func (s *ProfileServiceTestSuite) SetupTest() {
	testutil.CleanDatabase(s.T(), s.testDB.DB)

	s.staticDir = s.T().TempDir()
	s.uploadDir = filepath.Join(s.staticDir, "uploads")
	commentRepo := repository.NewCommentRepository(s.testDB.DB)
	s.profileService = service.NewProfileService(s.userRepo, commentRepo, s.staticDir, s.uploadDir)

	var err error
	s.alice, err = testutil.CreateTestUser("alice", "alice@example.com", "pw123456")
	require.NoError(s.T(), err)
	require.NoError(s.T(), s.testDB.DB.Create(s.alice).Error)

	s.bob, err = testutil.CreateTestUser("bob", "bob@example.com", "pw123456")
	require.NoError(s.T(), err)
	require.NoError(s.T(), s.testDB.DB.Create(s.bob).Error)
}

func (s *ProfileServiceTestSuite) TestUpdateInfoBlankFieldsKeepCurrent() {
	require.NoError(s.T(), s.profileService.UpdateInfo(s.alice, "", "loves boom bap", ""))

	reloaded, err := s.userRepo.GetUserByID(s.alice.ID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "alice", reloaded.Username, "Blank username keeps the current one")
	assert.Equal(s.T(), "loves boom bap", reloaded.About)
}

func (s *ProfileServiceTestSuite) TestUpdateInfoUsernameConflict() {
	err := s.profileService.UpdateInfo(s.alice, "bob", "", "")

	assert.ErrorIs(s.T(), err, service.ErrUsernameTaken)

	reloaded, repoErr := s.userRepo.GetUserByID(s.alice.ID)
	require.NoError(s.T(), repoErr)
	assert.Equal(s.T(), "alice", reloaded.Username)
}

func (s *ProfileServiceTestSuite) TestUpdateInfoRename() {
	require.NoError(s.T(), s.profileService.UpdateInfo(s.alice, "alice2", "", "Madvillainy"))

	assert.Equal(s.T(), "alice2", s.alice.Username)
	reloaded, err := s.userRepo.GetUserByID(s.alice.ID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "alice2", reloaded.Username)
	assert.Equal(s.T(), "Madvillainy", reloaded.Favorite0)
}

func (s *ProfileServiceTestSuite) TestUploadPicture() {
	relPath, err := s.profileService.UploadPicture(s.alice, "avatar.PNG", strings.NewReader("fake image bytes"))

	require.NoError(s.T(), err)
	assert.Equal(s.T(), "/static/uploads/user_"+s.alice.ID.String()+".png", relPath)

	data, readErr := os.ReadFile(filepath.Join(s.uploadDir, "user_"+s.alice.ID.String()+".png"))
	require.NoError(s.T(), readErr)
	assert.Equal(s.T(), "fake image bytes", string(data))

	reloaded, err := s.userRepo.GetUserByID(s.alice.ID)
	require.NoError(s.T(), err)
	require.NotNil(s.T(), reloaded.ProfilePic)
	assert.Equal(s.T(), relPath, *reloaded.ProfilePic)

	assert.Equal(s.T(), relPath, s.profileService.ResolvePicture(relPath))
}

func (s *ProfileServiceTestSuite) TestUploadPictureRejectsBadExtension() {
	_, err := s.profileService.UploadPicture(s.alice, "malware.exe", strings.NewReader("MZ"))

	assert.ErrorIs(s.T(), err, service.ErrBadFileType)

	entries, _ := os.ReadDir(s.uploadDir)
	assert.Empty(s.T(), entries, "Rejected upload must not write a file")

	reloaded, repoErr := s.userRepo.GetUserByID(s.alice.ID)
	require.NoError(s.T(), repoErr)
	assert.Nil(s.T(), reloaded.ProfilePic, "Rejected upload must not change the stored reference")
}

func (s *ProfileServiceTestSuite) TestUploadPictureNoFilename() {
	_, err := s.profileService.UploadPicture(s.alice, "", strings.NewReader(""))
	assert.ErrorIs(s.T(), err, service.ErrNoFile)
}

func (s *ProfileServiceTestSuite) TestResolvePictureMissingFile() {
	stale := "/static/uploads/user_" + s.alice.ID.String() + ".png"
	require.NoError(s.T(), s.userRepo.UpdateProfilePic(s.alice.ID, &stale))

	assert.Equal(s.T(), "", s.profileService.ResolvePicture(stale))

	// The stored reference is left as-is
	reloaded, err := s.userRepo.GetUserByID(s.alice.ID)
	require.NoError(s.T(), err)
	require.NotNil(s.T(), reloaded.ProfilePic)
	assert.Equal(s.T(), stale, *reloaded.ProfilePic)
}

func (s *ProfileServiceTestSuite) TestRemovePictureKeepsFile() {
	relPath, err := s.profileService.UploadPicture(s.alice, "avatar.jpg", strings.NewReader("bytes"))
	require.NoError(s.T(), err)

	require.NoError(s.T(), s.profileService.RemovePicture(s.alice))

	reloaded, err := s.userRepo.GetUserByID(s.alice.ID)
	require.NoError(s.T(), err)
	assert.Nil(s.T(), reloaded.ProfilePic)

	_, statErr := os.Stat(filepath.Join(s.uploadDir, filepath.Base(relPath)))
	assert.NoError(s.T(), statErr, "Removing the reference keeps the file on disk")
}

func (s *ProfileServiceTestSuite) TestAddComment() {
	comment, err := s.profileService.AddComment(s.alice.ID, s.bob.ID, "  great taste  ")

	require.NoError(s.T(), err)
	assert.Equal(s.T(), "great taste", comment.Message)

	comments, err := s.profileService.ListComments(s.alice.ID)
	require.NoError(s.T(), err)
	require.Len(s.T(), comments, 1)
	assert.Equal(s.T(), "bob", comments[0].Author.Username)
}

func (s *ProfileServiceTestSuite) TestAddCommentEmptyMessage() {
	_, err := s.profileService.AddComment(s.alice.ID, s.bob.ID, "   ")
	assert.ErrorIs(s.T(), err, service.ErrEmptyMessage)
}

func (s *ProfileServiceTestSuite) TestAddCommentUnknownProfile() {
	_, err := s.profileService.AddComment(uuid.New(), s.bob.ID, "hello?")
	assert.ErrorIs(s.T(), err, service.ErrUserNotFound)
}

func (s *ProfileServiceTestSuite) TestEditCommentAuthorGate() {
	comment, err := s.profileService.AddComment(s.alice.ID, s.bob.ID, "original")
	require.NoError(s.T(), err)

	// The profile owner is not the author and may not edit
	err = s.profileService.EditComment(comment.ID, s.alice.ID, "vandalized")
	assert.ErrorIs(s.T(), err, service.ErrNotAuthor)

	require.NoError(s.T(), s.profileService.EditComment(comment.ID, s.bob.ID, "revised"))

	comments, err := s.profileService.ListComments(s.alice.ID)
	require.NoError(s.T(), err)
	require.Len(s.T(), comments, 1)
	assert.Equal(s.T(), "revised", comments[0].Message)
}

func (s *ProfileServiceTestSuite) TestDeleteCommentAuthorGate() {
	comment, err := s.profileService.AddComment(s.alice.ID, s.bob.ID, "to be removed")
	require.NoError(s.T(), err)

	err = s.profileService.DeleteComment(comment.ID, s.alice.ID)
	assert.ErrorIs(s.T(), err, service.ErrNotAuthor)

	require.NoError(s.T(), s.profileService.DeleteComment(comment.ID, s.bob.ID))

	comments, err := s.profileService.ListComments(s.alice.ID)
	require.NoError(s.T(), err)
	assert.Empty(s.T(), comments)

	err = s.profileService.DeleteComment(comment.ID, s.bob.ID)
	assert.ErrorIs(s.T(), err, service.ErrCommentNotFound)
}

func (s *ProfileServiceTestSuite) TestGetUserNotFound() {
	_, err := s.profileService.GetUser(uuid.New())
	assert.ErrorIs(s.T(), err, service.ErrUserNotFound)
}

func TestProfileServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ProfileServiceTestSuite))
}
