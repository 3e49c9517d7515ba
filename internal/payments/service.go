package payments

import (
	"context"

	"banana-bank-go/internal/models"
	"banana-bank-go/internal/resolver"
)

// Service dispatches payment operations to the demo store or the real
// backend. The mode is re-resolved on every call, never cached, so a
// changed environment signal takes effect without a restart.
type Service struct {
	cfg  models.ResolverConfig
	demo *DemoStore
}

func NewService(cfg models.ResolverConfig, demo *DemoStore) *Service {
	return &Service{cfg: cfg, demo: demo}
}

// Resolution exposes the current verdict, for display and logging.
func (s *Service) Resolution() models.APIResolution {
	return resolver.Resolve(s.cfg)
}

func (s *Service) active() PaymentStore {
	res := resolver.Resolve(s.cfg)
	if res.Demo {
		return s.demo
	}
	return NewClient(res.BaseURL)
}

func (s *Service) CreatePayment(ctx context.Context, params models.CreatePaymentParams) (*models.Payment, error) {
	return s.active().Create(ctx, params)
}

func (s *Service) GetPayment(ctx context.Context, id int64) (*models.Payment, error) {
	return s.active().Get(ctx, id)
}

func (s *Service) ConfirmPayment(ctx context.Context, id int64, status models.PaymentStatus) (*models.Payment, error) {
	return s.active().Confirm(ctx, id, status)
}
