package service

import (
	"time"

	"github.com/Astemirdum/wardrobe-service/pkg/auth"
	"github.com/Astemirdum/wardrobe-service/wardrobe/internal/errs"
	"github.com/Astemirdum/wardrobe-service/wardrobe/internal/metrics"
	"github.com/Astemirdum/wardrobe-service/wardrobe/internal/repository"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type Service struct {
	log     *zap.Logger
	repo    repository.Repository
	pub     Publisher
	metrics *metrics.Metrics
	auth    auth.Config
	now     func() time.Time
}

func NewService(
	repo repository.Repository,
	pub Publisher,
	m *metrics.Metrics,
	authCfg auth.Config,
	log *zap.Logger,
) *Service {
	if m == nil {
		m = metrics.New(nil)
	}
	return &Service{
		log:     log.Named("service"),
		repo:    repo,
		pub:     pub,
		metrics: m,
		auth:    authCfg,
		now:     time.Now,
	}
}

// reason is the metrics label for a failed operation.
func reason(err error) string {
	switch {
	case errors.Is(err, errs.ErrValidation):
		return "validation"
	case errors.Is(err, errs.ErrNotFound):
		return "not_found"
	case errors.Is(err, errs.ErrInsufficientStock):
		return "insufficient_stock"
	case errors.Is(err, errs.ErrOverReturn):
		return "over_return"
	case errors.Is(err, errs.ErrInvalidLineItem):
		return "invalid_line_item"
	}
	return "internal"
}
