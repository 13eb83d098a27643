package service

import (
	"context"

	"github.com/bilimtest/quizadmin-backend/internal/events"
	"github.com/bilimtest/quizadmin-backend/internal/model"
	"github.com/bilimtest/quizadmin-backend/internal/repository"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type GroupService struct {
	groupRepo *repository.GroupRepository
	feed      *events.Changefeed
	log       zerolog.Logger
}

func NewGroupService(groupRepo *repository.GroupRepository, feed *events.Changefeed, log zerolog.Logger) *GroupService {
	return &GroupService{
		groupRepo: groupRepo,
		feed:      feed,
		log:       log.With().Str("component", "group_service").Logger(),
	}
}

func (s *GroupService) GetAll(ctx context.Context) ([]model.Group, error) {
	return s.groupRepo.GetAll(ctx)
}

func (s *GroupService) GetByID(ctx context.Context, id uuid.UUID) (*model.Group, error) {
	return s.groupRepo.GetByID(ctx, id)
}

func (s *GroupService) Create(ctx context.Context, g *model.Group) error {
	if g.Subjects == nil {
		g.Subjects = []string{}
	}
	if err := s.groupRepo.Create(ctx, g); err != nil {
		return err
	}
	s.feed.Publish(ctx, "groups", events.ActionAdded, g.ID.String())
	return nil
}

func (s *GroupService) Update(ctx context.Context, g *model.Group) error {
	if g.Subjects == nil {
		g.Subjects = []string{}
	}
	if err := s.groupRepo.Update(ctx, g); err != nil {
		return err
	}
	s.feed.Publish(ctx, "groups", events.ActionUpdated, g.ID.String())
	return nil
}

func (s *GroupService) Delete(ctx context.Context, id uuid.UUID) (*model.Group, error) {
	g, err := s.groupRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.groupRepo.Delete(ctx, id); err != nil {
		return nil, err
	}
	s.feed.Publish(ctx, "groups", events.ActionDeleted, id.String())
	return g, nil
}
