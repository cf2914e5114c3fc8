package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"bookhub-backend/internal/domains/user"
	"bookhub-backend/internal/infrastructure/queue"
	"bookhub-backend/internal/infrastructure/storage"
	"bookhub-backend/internal/shared"
	"bookhub-backend/pkg/jwt"
	"bookhub-backend/pkg/logger"
)

const (
	bcryptCost    = 12
	maxAvatarSize = 5 << 20 // 5 MB
)

type userService struct {
	repo          user.Repository
	jwtManager    *jwt.Manager
	producer      *queue.Producer
	storage       *storage.MinIOStorage
	refreshExpiry time.Duration
}

// NewUserService creates a new user service
func NewUserService(
	repo user.Repository,
	jwtManager *jwt.Manager,
	producer *queue.Producer,
	storage *storage.MinIOStorage,
	refreshExpiry time.Duration,
) user.Service {
	return &userService{
		repo:          repo,
		jwtManager:    jwtManager,
		producer:      producer,
		storage:       storage,
		refreshExpiry: refreshExpiry,
	}
}

func (s *userService) Register(ctx context.Context, req *user.RegisterRequest) (*user.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	created, err := s.repo.Create(ctx, &user.User{
		Username:     req.Username,
		Email:        strings.ToLower(req.Email),
		PasswordHash: string(hash),
		Bio:          req.Bio,
	})
	if err != nil {
		return nil, err
	}

	logger.Info().
		Str("user_id", created.ID.String()).
		Str("username", created.Username).
		Msg("User registered")

	return s.issueTokens(ctx, created)
}

func (s *userService) Login(ctx context.Context, req *user.LoginRequest) (*user.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	u, err := s.repo.GetByUsername(ctx, req.Username)
	if err != nil {
		// Do not reveal whether the username exists
		return nil, user.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, user.ErrInvalidCredentials
	}

	return s.issueTokens(ctx, u)
}

func (s *userService) Refresh(ctx context.Context, req *user.RefreshRequest) (*user.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	claims, err := s.jwtManager.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		return nil, user.ErrInvalidRefreshToken
	}

	// Revoking the session first makes each refresh token single-use;
	// a replayed token finds no session and is rejected
	if err := s.repo.DeleteRefreshSession(ctx, hashToken(req.RefreshToken)); err != nil {
		return nil, err
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, user.ErrInvalidRefreshToken
	}

	u, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return s.issueTokens(ctx, u)
}

func (s *userService) Logout(ctx context.Context, req *user.RefreshRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	if _, err := s.jwtManager.ValidateRefreshToken(req.RefreshToken); err != nil {
		return user.ErrInvalidRefreshToken
	}

	if err := s.repo.DeleteRefreshSession(ctx, hashToken(req.RefreshToken)); err != nil {
		return err
	}

	logger.Info().Msg("Session revoked")
	return nil
}

// issueTokens generates the token pair and records the refresh session
func (s *userService) issueTokens(ctx context.Context, u *user.User) (*user.AuthResponse, error) {
	accessToken, err := s.jwtManager.GenerateAccessToken(u.ID.String(), u.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := s.jwtManager.GenerateRefreshToken(u.ID.String())
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	session := &user.RefreshSession{
		UserID:    u.ID,
		TokenHash: hashToken(refreshToken),
		ExpiresAt: time.Now().Add(s.refreshExpiry),
	}
	if err := s.repo.CreateRefreshSession(ctx, session); err != nil {
		return nil, err
	}

	return &user.AuthResponse{
		Token:        accessToken,
		RefreshToken: refreshToken,
		User:         u.ToResponse(),
	}, nil
}

// Only the SHA-256 of a refresh token ever touches the database
func hashToken(token string) string {
	hash := sha256.Sum256([]byte(token))
	return hex.EncodeToString(hash[:])
}

func (s *userService) GetProfile(ctx context.Context, id uuid.UUID) (*user.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *userService) UpdateProfile(ctx context.Context, id uuid.UUID, req *user.UpdateProfileRequest) (*user.User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Email != nil {
		existing.Email = strings.ToLower(*req.Email)
	}
	if req.Bio != nil {
		existing.Bio = *req.Bio
	}

	return s.repo.UpdateProfile(ctx, existing)
}

func (s *userService) Follow(ctx context.Context, followerID, followeeID uuid.UUID) error {
	if followerID == followeeID {
		return user.ErrSelfFollow
	}

	exists, err := s.repo.ExistsByID(ctx, followeeID)
	if err != nil {
		return err
	}
	if !exists {
		return user.ErrUserNotFound
	}

	if err := s.repo.Follow(ctx, followerID, followeeID); err != nil {
		return err
	}

	if err := s.producer.EnqueueNotification(shared.TypeNotifyFollow, shared.NotificationPayload{
		RecipientID: followeeID,
		ActorID:     followerID,
		Verb:        "started following you",
		TargetType:  "user",
		TargetID:    followerID,
	}); err != nil {
		logger.Warn().Err(err).Msg("Failed to enqueue follow notification")
	}

	return nil
}

func (s *userService) Unfollow(ctx context.Context, followerID, followeeID uuid.UUID) error {
	exists, err := s.repo.ExistsByID(ctx, followeeID)
	if err != nil {
		return err
	}
	if !exists {
		return user.ErrUserNotFound
	}

	return s.repo.Unfollow(ctx, followerID, followeeID)
}

func (s *userService) IsFollowing(ctx context.Context, followerID, followeeID uuid.UUID) (bool, error) {
	return s.repo.IsFollowing(ctx, followerID, followeeID)
}

func (s *userService) GetFollowers(ctx context.Context, id uuid.UUID) ([]user.FollowerResponse, error) {
	return s.repo.GetFollowers(ctx, id)
}

func (s *userService) GetFollowing(ctx context.Context, id uuid.UUID) ([]user.FollowerResponse, error) {
	return s.repo.GetFollowing(ctx, id)
}

func (s *userService) UploadAvatar(ctx context.Context, userID uuid.UUID, data []byte, contentType string) (string, error) {
	if !strings.HasPrefix(contentType, "image/") {
		return "", user.ErrInvalidAvatar
	}
	if len(data) > maxAvatarSize {
		return "", user.ErrAvatarTooLarge
	}

	ext := extensionFor(contentType)
	key := path.Join("avatars", userID.String(), "original"+ext)

	url, err := s.storage.Upload(ctx, key, data, contentType)
	if err != nil {
		return "", err
	}

	if err := s.repo.SetAvatarURL(ctx, userID, url); err != nil {
		return "", err
	}

	// Thumbnail generation happens in the worker; the original serves
	// until the job overwrites the avatar URL with the resized copy.
	if err := s.producer.EnqueueAvatarProcessing(shared.ProcessAvatarPayload{
		UserID: userID,
		Key:    key,
	}); err != nil {
		logger.Warn().Err(err).Str("user_id", userID.String()).Msg("Failed to enqueue avatar processing")
	}

	logger.Info().Str("user_id", userID.String()).Str("key", key).Msg("Avatar uploaded")

	return url, nil
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	default:
		return ".jpg"
	}
}
