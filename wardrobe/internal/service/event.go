package service

import (
	"context"

	"github.com/Astemirdum/wardrobe-service/wardrobe/internal/errs"
	"github.com/Astemirdum/wardrobe-service/wardrobe/internal/model"
	"github.com/pkg/errors"
)

// RecordEvent appends a consumed loan event to the journal.
func (s *Service) RecordEvent(ctx context.Context, ev model.LoanEvent) error {
	if ev.EventUID == "" || ev.LoanID <= 0 {
		return errors.Wrap(errs.ErrValidation, "loan event without uid or loan id")
	}
	return s.repo.SaveLoanEvent(ctx, ev)
}

func (s *Service) ListLoanEvents(ctx context.Context, loanID int64) ([]model.LoanEvent, error) {
	if loanID <= 0 {
		return nil, errors.Wrap(errs.ErrValidation, "loan id is required")
	}
	if _, err := s.repo.GetLoanWithLines(ctx, loanID); err != nil {
		return nil, err
	}
	return s.repo.ListLoanEvents(ctx, loanID)
}
