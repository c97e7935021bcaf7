package service

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"ratewave/internal/models"
	"ratewave/internal/repository"
	"ratewave/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrCommentNotFound = errors.New("comment not found")
	ErrNotAuthor       = errors.New("only the author may modify this comment")
	ErrEmptyMessage    = errors.New("comment message is empty")
	ErrNoFile          = errors.New("no file selected")
	ErrBadFileType     = errors.New("unsupported file type")
)

// allowedPicExtensions is the upload allow-list for profile pictures.
var allowedPicExtensions = map[string]bool{
	"png":  true,
	"jpg":  true,
	"jpeg": true,
	"gif":  true,
	"webp": true,
}

type ProfileService struct {
	userRepo    *repository.UserRepository
	commentRepo *repository.CommentRepository
	staticDir   string
	uploadDir   string
}

func NewProfileService(userRepo *repository.UserRepository, commentRepo *repository.CommentRepository, staticDir, uploadDir string) *ProfileService {
	return &ProfileService{
		userRepo:    userRepo,
		commentRepo: commentRepo,
		staticDir:   staticDir,
		uploadDir:   uploadDir,
	}
}

// UpdateInfo applies the profile-edit form. Blank fields keep their current
// values. A username change re-checks uniqueness; ratings stay attached
// because ownership is keyed by the user ID.
func (s *ProfileService) UpdateInfo(user *models.User, username, about, favorite0 string) error {
	updatedUsername := user.Username
	if username != "" {
		updatedUsername = username
	}
	updatedAbout := user.About
	if about != "" {
		updatedAbout = about
	}
	updatedFavorite0 := user.Favorite0
	if favorite0 != "" {
		updatedFavorite0 = favorite0
	}

	if updatedUsername == user.Username && updatedAbout == user.About && updatedFavorite0 == user.Favorite0 {
		return nil
	}

	if updatedUsername != user.Username {
		existing, err := s.userRepo.GetUserByUsername(updatedUsername)
		if err != nil {
			return err
		}
		if existing != nil && existing.ID != user.ID {
			return ErrUsernameTaken
		}
	}

	if err := s.userRepo.UpdateProfileInfo(user.ID, updatedUsername, updatedAbout, updatedFavorite0); err != nil {
		logger.Log.Error("Failed to update profile info",
			zap.String("user_id", user.ID.String()),
			zap.Error(err),
		)
		return err
	}

	user.Username = updatedUsername
	user.About = updatedAbout
	user.Favorite0 = updatedFavorite0

	logger.Log.Info("Profile info updated",
		zap.String("user_id", user.ID.String()),
	)

	return nil
}

// UploadPicture validates the file extension, stores the image at a path
// derived from the user ID (so a re-upload with the same extension
// overwrites the previous picture) and persists the relative reference.
func (s *ProfileService) UploadPicture(user *models.User, filename string, src io.Reader) (string, error) {
	if filename == "" {
		return "", ErrNoFile
	}

	dot := strings.LastIndex(filename, ".")
	if dot < 0 {
		return "", ErrBadFileType
	}
	ext := strings.ToLower(filename[dot+1:])
	if !allowedPicExtensions[ext] {
		logger.Log.Warn("Rejected profile picture upload",
			zap.String("user_id", user.ID.String()),
			zap.String("extension", ext),
		)
		return "", ErrBadFileType
	}

	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		return "", err
	}

	stored := fmt.Sprintf("user_%s.%s", user.ID, ext)
	dst, err := os.Create(filepath.Join(s.uploadDir, stored))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	relPath := "/static/uploads/" + stored
	if err := s.userRepo.UpdateProfilePic(user.ID, &relPath); err != nil {
		logger.Log.Error("Failed to persist profile picture reference",
			zap.String("user_id", user.ID.String()),
			zap.Error(err),
		)
		return "", err
	}
	user.ProfilePic = &relPath

	logger.Log.Info("Profile picture updated",
		zap.String("user_id", user.ID.String()),
		zap.String("path", relPath),
	)

	return relPath, nil
}

// RemovePicture clears the stored reference. The file itself stays on disk;
// ResolvePicture handles any later drift.
func (s *ProfileService) RemovePicture(user *models.User) error {
	if err := s.userRepo.UpdateProfilePic(user.ID, nil); err != nil {
		return err
	}
	user.ProfilePic = nil
	return nil
}

// ResolvePicture returns the relative path if its backing file still exists,
// or "" so templates fall back to the default avatar. The stored reference
// is never repaired here.
func (s *ProfileService) ResolvePicture(relPath string) string {
	if relPath == "" {
		return ""
	}
	var fsPath string
	if strings.HasPrefix(relPath, "/static/") {
		fsPath = filepath.Join(s.staticDir, strings.TrimPrefix(relPath, "/static/"))
	} else {
		fsPath = strings.TrimPrefix(relPath, "/")
	}
	if _, err := os.Stat(fsPath); err != nil {
		return ""
	}
	return relPath
}

// AddComment leaves a comment on a profile. Any authenticated user may
// comment on any profile.
func (s *ProfileService) AddComment(profileUserID, authorID uuid.UUID, message string) (*models.ProfileComment, error) {
	if strings.TrimSpace(message) == "" {
		return nil, ErrEmptyMessage
	}

	profileUser, err := s.userRepo.GetUserByID(profileUserID)
	if err != nil {
		return nil, err
	}
	if profileUser == nil {
		return nil, ErrUserNotFound
	}

	comment := &models.ProfileComment{
		ProfileUserID: profileUserID,
		AuthorID:      authorID,
		Message:       strings.TrimSpace(message),
		CreatedAt:     time.Now().UTC(),
	}
	if err := s.commentRepo.CreateComment(comment); err != nil {
		logger.Log.Error("Failed to create profile comment",
			zap.String("profile_user_id", profileUserID.String()),
			zap.String("author_id", authorID.String()),
			zap.Error(err),
		)
		return nil, err
	}

	return comment, nil
}

// EditComment rewrites a comment's message. Gated on author identity, not on
// the profile owner.
func (s *ProfileService) EditComment(commentID uint, authorID uuid.UUID, message string) error {
	if strings.TrimSpace(message) == "" {
		return ErrEmptyMessage
	}

	comment, err := s.commentRepo.GetCommentByID(commentID)
	if err != nil {
		return err
	}
	if comment == nil {
		return ErrCommentNotFound
	}
	if comment.AuthorID != authorID {
		logger.Log.Warn("Comment edit rejected: caller is not the author",
			zap.Uint("comment_id", commentID),
			zap.String("caller_id", authorID.String()),
		)
		return ErrNotAuthor
	}

	return s.commentRepo.UpdateCommentMessage(commentID, strings.TrimSpace(message))
}

// DeleteComment removes a comment, author-gated like EditComment.
func (s *ProfileService) DeleteComment(commentID uint, authorID uuid.UUID) error {
	comment, err := s.commentRepo.GetCommentByID(commentID)
	if err != nil {
		return err
	}
	if comment == nil {
		return ErrCommentNotFound
	}
	if comment.AuthorID != authorID {
		logger.Log.Warn("Comment delete rejected: caller is not the author",
			zap.Uint("comment_id", commentID),
			zap.String("caller_id", authorID.String()),
		)
		return ErrNotAuthor
	}

	return s.commentRepo.DeleteComment(commentID)
}

// ListComments returns a profile's comments oldest-first.
func (s *ProfileService) ListComments(profileUserID uuid.UUID) ([]models.ProfileComment, error) {
	return s.commentRepo.GetCommentsForProfile(profileUserID)
}

// GetUser loads a user by ID or returns ErrUserNotFound.
func (s *ProfileService) GetUser(id uuid.UUID) (*models.User, error) {
	user, err := s.userRepo.GetUserByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}
