// Package service implements archive reads over the generic store.
package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/crowlands/grimoire/internal/archive/domain"
	"github.com/crowlands/grimoire/pkg/repository"
)

const contextNameLimit = 10

type Service struct {
	log      *zap.Logger
	deities  repository.Repository[domain.Deity]
	figures  repository.Repository[domain.HistoricalFigure]
	sites    repository.Repository[domain.SacredSite]
	rituals  repository.Repository[domain.Ritual]
	timeline repository.Repository[domain.TimelineEvent]
	samples  repository.Repository[domain.SampleSpell]
}

func New(
	log *zap.Logger,
	deities repository.Repository[domain.Deity],
	figures repository.Repository[domain.HistoricalFigure],
	sites repository.Repository[domain.SacredSite],
	rituals repository.Repository[domain.Ritual],
	timeline repository.Repository[domain.TimelineEvent],
	samples repository.Repository[domain.SampleSpell],
) domain.Service {
	return &Service{
		log:      log.Named("archive.service"),
		deities:  deities,
		figures:  figures,
		sites:    sites,
		rituals:  rituals,
		timeline: timeline,
		samples:  samples,
	}
}

func (s *Service) ListDeities(ctx context.Context) ([]*domain.Deity, error) {
	return s.deities.Find(ctx, &domain.Deity{}, repository.OrderBy("name ASC"))
}

func (s *Service) GetDeity(ctx context.Context, id string) (*domain.Deity, error) {
	deity, err := s.deities.FindOne(ctx, &domain.Deity{ID: id})
	if err != nil {
		return nil, err
	}
	if deity == nil {
		return nil, domain.ErrNotFound
	}
	return deity, nil
}

func (s *Service) ListFigures(ctx context.Context) ([]*domain.HistoricalFigure, error) {
	return s.figures.Find(ctx, &domain.HistoricalFigure{}, repository.OrderBy("name ASC"))
}

func (s *Service) GetFigure(ctx context.Context, id string) (*domain.HistoricalFigure, error) {
	figure, err := s.figures.FindOne(ctx, &domain.HistoricalFigure{ID: id})
	if err != nil {
		return nil, err
	}
	if figure == nil {
		return nil, domain.ErrNotFound
	}
	return figure, nil
}

func (s *Service) ListSites(ctx context.Context) ([]*domain.SacredSite, error) {
	return s.sites.Find(ctx, &domain.SacredSite{}, repository.OrderBy("name ASC"))
}

func (s *Service) GetSite(ctx context.Context, id string) (*domain.SacredSite, error) {
	site, err := s.sites.FindOne(ctx, &domain.SacredSite{ID: id})
	if err != nil {
		return nil, err
	}
	if site == nil {
		return nil, domain.ErrNotFound
	}
	return site, nil
}

func (s *Service) ListRituals(ctx context.Context, category string) ([]*domain.Ritual, error) {
	query := &domain.Ritual{}
	if category != "" {
		query.Category = category
	}
	return s.rituals.Find(ctx, query, repository.OrderBy("name ASC"))
}

func (s *Service) GetRitual(ctx context.Context, id string) (*domain.Ritual, error) {
	ritual, err := s.rituals.FindOne(ctx, &domain.Ritual{ID: id})
	if err != nil {
		return nil, err
	}
	if ritual == nil {
		return nil, domain.ErrNotFound
	}
	return ritual, nil
}

func (s *Service) Timeline(ctx context.Context) ([]*domain.TimelineEvent, error) {
	return s.timeline.Find(ctx, &domain.TimelineEvent{}, repository.OrderBy("year ASC"))
}

func (s *Service) ListSampleSpells(ctx context.Context, archetypeID string) ([]*domain.SampleSpell, error) {
	query := &domain.SampleSpell{}
	if archetypeID != "" {
		query.ArchetypeID = archetypeID
	}
	return s.samples.Find(ctx, query, repository.OrderBy("id ASC"))
}

func (s *Service) ContextNames(ctx context.Context) (deityNames, ritualNames, figureNames []string, err error) {
	deities, err := s.deities.Find(ctx, &domain.Deity{}, repository.Limit(contextNameLimit))
	if err != nil {
		return nil, nil, nil, err
	}
	rituals, err := s.rituals.Find(ctx, &domain.Ritual{}, repository.Limit(contextNameLimit))
	if err != nil {
		return nil, nil, nil, err
	}
	figures, err := s.figures.Find(ctx, &domain.HistoricalFigure{}, repository.Limit(contextNameLimit))
	if err != nil {
		return nil, nil, nil, err
	}

	for _, d := range deities {
		deityNames = append(deityNames, d.Name)
	}
	for _, r := range rituals {
		ritualNames = append(ritualNames, r.Name)
	}
	for _, f := range figures {
		figureNames = append(figureNames, f.Name)
	}
	return deityNames, ritualNames, figureNames, nil
}
