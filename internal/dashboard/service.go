package dashboard

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/quartermaster-erp/quartermaster/internal/money"
	"github.com/quartermaster-erp/quartermaster/internal/procurement"
)

// Service computes the dashboard read model.
type Service struct {
	repo Repository
}

// NewService constructs a dashboard service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Summary recomputes every metric from the store on each call. The queries
// are mutually independent and side-effect-free, so they fan out
// concurrently; the first error cancels the rest.
func (s *Service) Summary(ctx context.Context) (Summary, error) {
	var out Summary

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := s.repo.CountOrders(ctx)
		out.TotalPOs = n
		return err
	})
	g.Go(func() error {
		n, err := s.repo.CountOrdersByStatus(ctx, string(procurement.StatusPending))
		out.ActivePOs = n
		return err
	})
	g.Go(func() error {
		n, err := s.repo.CountProducts(ctx)
		out.TotalProducts = n
		return err
	})
	g.Go(func() error {
		n, err := s.repo.CountSuppliers(ctx)
		out.TotalSuppliers = n
		return err
	})
	g.Go(func() error {
		total, err := s.repo.SumOrderTotals(ctx)
		out.TotalValue = total
		return err
	})
	g.Go(func() error {
		recent, err := s.repo.RecentOrders(ctx, recentOrderLimit)
		out.RecentOrders = recent
		return err
	})
	if err := g.Wait(); err != nil {
		return Summary{}, err
	}

	out.TotalValueText = money.FormatUSD(out.TotalValue)
	return out, nil
}
