package service

import (
	"context"

	"github.com/bilimtest/quizadmin-backend/internal/events"
	"github.com/bilimtest/quizadmin-backend/internal/model"
	"github.com/bilimtest/quizadmin-backend/internal/repository"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type SectionService struct {
	sectionRepo *repository.SectionRepository
	feed        *events.Changefeed
	log         zerolog.Logger
}

func NewSectionService(sectionRepo *repository.SectionRepository, feed *events.Changefeed, log zerolog.Logger) *SectionService {
	return &SectionService{
		sectionRepo: sectionRepo,
		feed:        feed,
		log:         log.With().Str("component", "section_service").Logger(),
	}
}

func (s *SectionService) GetAll(ctx context.Context) ([]model.Section, error) {
	return s.sectionRepo.GetAll(ctx)
}

func (s *SectionService) Create(ctx context.Context, sec *model.Section) error {
	if err := s.sectionRepo.Create(ctx, sec); err != nil {
		return err
	}
	s.feed.Publish(ctx, "sections", events.ActionAdded, sec.ID.String())
	return nil
}

func (s *SectionService) Delete(ctx context.Context, id uuid.UUID) (*model.Section, error) {
	sec, err := s.sectionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.sectionRepo.Delete(ctx, id); err != nil {
		return nil, err
	}
	s.feed.Publish(ctx, "sections", events.ActionDeleted, id.String())
	return sec, nil
}
