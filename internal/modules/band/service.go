package band

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"bandroom/internal/domain"
	"bandroom/internal/pkg/validator"
	"bandroom/internal/repository"
)

const EventBandDeleted = "band.deleted"

type Service struct {
	bands  BandRepository
	events EventPublisher
}

func NewService(bands BandRepository, events EventPublisher) *Service {
	return &Service{bands: bands, events: events}
}

func (s *Service) List(ctx context.Context) ([]domain.Band, error) {
	bands, err := s.bands.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list bands: %w", err)
	}
	if bands == nil {
		bands = []domain.Band{}
	}
	return bands, nil
}

func (s *Service) Create(ctx context.Context, req BandRequest) (*domain.Band, error) {
	b, err := fromRequest(req)
	if err != nil {
		return nil, err
	}
	if err := s.bands.Create(ctx, b); err != nil {
		return nil, fmt.Errorf("create band: %w", err)
	}
	return b, nil
}

// Update renames and recolors an existing band.
func (s *Service) Update(ctx context.Context, id int64, req BandRequest) (*domain.Band, error) {
	b, err := fromRequest(req)
	if err != nil {
		return nil, err
	}
	b.ID = id
	if err := s.bands.Update(ctx, b); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("update band %d: %w", id, err)
	}
	return b, nil
}

// Delete removes the band together with all of its reservations. Deleting an
// absent band is not an error.
func (s *Service) Delete(ctx context.Context, id int64) (*DeleteResult, error) {
	found, removed, err := s.bands.DeleteWithReservations(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("delete band %d: %w", id, err)
	}

	res := &DeleteResult{BandID: id, RemovedReservations: removed}
	if found && s.events != nil {
		s.events.Publish(EventBandDeleted, res)
	}
	return res, nil
}

func fromRequest(req BandRequest) (*domain.Band, error) {
	b := &domain.Band{
		Name:  strings.TrimSpace(req.Name),
		Color: strings.TrimSpace(req.Color),
	}
	if errs := validator.Validate(b); errs != nil {
		return nil, ErrValidation
	}
	return b, nil
}
