package service

import (
	"context"

	"github.com/Astemirdum/wardrobe-service/wardrobe/internal/model"
	"golang.org/x/sync/errgroup"
)

func (s *Service) OutstandingByStudent(ctx context.Context, groupID int64) ([]model.OutstandingByStudent, error) {
	return s.repo.OutstandingByStudent(ctx, groupID)
}

// InventoryReport loads the per-group summary and the totals concurrently.
func (s *Service) InventoryReport(ctx context.Context) (model.InventoryReport, error) {
	var report model.InventoryReport
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := s.repo.InventoryByGroup(gCtx)
		report.Summary = rows
		return err
	})
	g.Go(func() error {
		totals, err := s.repo.InventoryTotals(gCtx)
		report.Totals = totals
		return err
	})
	if err := g.Wait(); err != nil {
		return model.InventoryReport{}, err
	}
	return report, nil
}
