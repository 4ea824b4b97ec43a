package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Chikimuras/ezlife/internal/core/domain"
	"github.com/Chikimuras/ezlife/internal/core/ports"
)

type GroupService struct {
	groups ports.GroupRepository
}

func NewGroupService(groups ports.GroupRepository) *GroupService {
	return &GroupService{groups: groups}
}

var _ ports.GroupService = (*GroupService)(nil)

func (s *GroupService) ListGroups(ctx context.Context, userID uuid.UUID) ([]domain.Group, error) {
	return s.groups.ListByUser(ctx, userID)
}

func (s *GroupService) GetGroup(ctx context.Context, id, userID uuid.UUID) (domain.Group, error) {
	return s.groups.Get(ctx, id, userID)
}

func (s *GroupService) CreateGroup(ctx context.Context, group domain.Group) (domain.Group, error) {
	group.Color = strings.ToUpper(group.Color)
	if err := s.groups.Create(ctx, &group); err != nil {
		return domain.Group{}, err
	}
	zap.L().Info("group created", zap.String("group_id", group.ID.String()))
	return group, nil
}

func (s *GroupService) UpdateGroup(ctx context.Context, id, userID uuid.UUID, patch domain.GroupPatch) (domain.Group, error) {
	group, err := s.groups.Get(ctx, id, userID)
	if err != nil {
		return domain.Group{}, err
	}
	if patch.Name != nil {
		group.Name = *patch.Name
	}
	if patch.Color != nil {
		group.Color = strings.ToUpper(*patch.Color)
	}
	if err := s.groups.Update(ctx, &group); err != nil {
		return domain.Group{}, err
	}
	return group, nil
}

// DeleteGroup cascades to the group's categories; the store refuses when one
// of them still has activities.
func (s *GroupService) DeleteGroup(ctx context.Context, id, userID uuid.UUID) error {
	err := s.groups.Delete(ctx, id, userID)
	if errors.Is(err, domain.ErrDependencyViolation) {
		return domain.ErrGroupHasActivities
	}
	return err
}
