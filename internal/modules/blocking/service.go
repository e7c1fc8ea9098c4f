package blocking

import (
	"context"
	"fmt"
	"strings"

	"bandroom/internal/domain"
	"bandroom/internal/pkg/slots"
	"bandroom/internal/pkg/validator"
)

type Service struct {
	repo BlockedTimeRepository
}

func NewService(repo BlockedTimeRepository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]domain.BlockedTime, error) {
	out, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list blocked times: %w", err)
	}
	if out == nil {
		out = []domain.BlockedTime{}
	}
	return out, nil
}

// Create stores a blocked range. Times are kept in extended-hour form so the
// range test in the store compares as strings.
func (s *Service) Create(ctx context.Context, req BlockedTimeRequest) (*domain.BlockedTime, error) {
	if errs := validator.Validate(req); errs != nil {
		return nil, ErrValidation
	}

	d, _ := slots.ParseDate(req.Date)
	start, _ := slots.ParseClock(req.StartTime)
	end, _ := slots.ParseClock(req.EndTime)
	if !start.Before(end) {
		return nil, ErrValidation
	}

	b := &domain.BlockedTime{
		Date:      d.Format(slots.DateLayout),
		StartTime: start.String(),
		EndTime:   end.String(),
	}
	if req.Reason != nil {
		if r := strings.TrimSpace(*req.Reason); r != "" {
			b.Reason = &r
		}
	}

	if err := s.repo.Create(ctx, b); err != nil {
		return nil, fmt.Errorf("create blocked time: %w", err)
	}
	return b, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete blocked time %d: %w", id, err)
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}
