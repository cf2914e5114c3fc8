package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"bookhub-backend/internal/domains/accesscontrol"
	"bookhub-backend/pkg/cache"
	"bookhub-backend/pkg/logger"
)

const (
	permCacheKeyPrefix = "perms:"
	permCacheTTL       = 5 * time.Minute
)

type accessControlService struct {
	repo  accesscontrol.Repository
	cache cache.Cache
}

// NewAccessControlService creates a new access control service.
// Permission lookups are cached per user for a few minutes.
func NewAccessControlService(repo accesscontrol.Repository, cache cache.Cache) accesscontrol.Service {
	return &accessControlService{
		repo:  repo,
		cache: cache,
	}
}

func (s *accessControlService) HasPermission(ctx context.Context, userID uuid.UUID, codename string) (bool, error) {
	perms, err := s.GetUserPermissions(ctx, userID)
	if err != nil {
		return false, err
	}

	for _, p := range perms {
		if p == codename {
			return true, nil
		}
	}
	return false, nil
}

func (s *accessControlService) GetUserPermissions(ctx context.Context, userID uuid.UUID) ([]string, error) {
	cacheKey := permCacheKeyPrefix + userID.String()

	var cached []string
	if found, err := s.cache.Get(ctx, cacheKey, &cached); err == nil && found {
		return cached, nil
	}

	perms, err := s.repo.GetUserPermissions(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, cacheKey, perms, permCacheTTL); err != nil {
		logger.Warn().Err(err).Str("user_id", userID.String()).Msg("Failed to cache permissions")
	}

	return perms, nil
}

func (s *accessControlService) ListGroups(ctx context.Context) ([]accesscontrol.Group, error) {
	return s.repo.ListGroups(ctx)
}

func (s *accessControlService) ListGroupMembers(ctx context.Context, groupName string) ([]uuid.UUID, error) {
	group, err := s.repo.GetGroupByName(ctx, groupName)
	if err != nil {
		return nil, err
	}

	return s.repo.ListMembers(ctx, group.ID)
}

func (s *accessControlService) AddUserToGroup(ctx context.Context, groupName string, userID uuid.UUID) error {
	group, err := s.repo.GetGroupByName(ctx, groupName)
	if err != nil {
		return err
	}

	if err := s.repo.AddMember(ctx, group.ID, userID); err != nil {
		return err
	}

	s.invalidatePermissions(ctx, userID)

	logger.Info().
		Str("user_id", userID.String()).
		Str("group", groupName).
		Msg("User added to group")

	return nil
}

func (s *accessControlService) RemoveUserFromGroup(ctx context.Context, groupName string, userID uuid.UUID) error {
	group, err := s.repo.GetGroupByName(ctx, groupName)
	if err != nil {
		return err
	}

	if err := s.repo.RemoveMember(ctx, group.ID, userID); err != nil {
		return err
	}

	s.invalidatePermissions(ctx, userID)

	logger.Info().
		Str("user_id", userID.String()).
		Str("group", groupName).
		Msg("User removed from group")

	return nil
}

func (s *accessControlService) invalidatePermissions(ctx context.Context, userID uuid.UUID) {
	if err := s.cache.Delete(ctx, permCacheKeyPrefix+userID.String()); err != nil {
		logger.Warn().Err(err).Str("user_id", userID.String()).Msg("Failed to invalidate permission cache")
	}
}
