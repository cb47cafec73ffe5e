package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ecom-labs/order-total-service/internal/entities"
)

type RateLookup interface {
	FindRate(ctx context.Context, zip string) (float64, error)
}

type orderService struct {
	logger *slog.Logger
	rates  RateLookup
}

func NewOrderService(logger *slog.Logger, rates RateLookup) *orderService {
	return &orderService{
		logger: logger.With(slog.String("service", "order")),
		rates:  rates,
	}
}

// ComputeTotal fills in order.Total from the subtotal and the sales tax
// rate for the order's zip code. Whatever total the caller supplied is
// overwritten. The computation is stateless: the same order against the
// same rate always yields the same total.
func (s *orderService) ComputeTotal(ctx context.Context, order entities.Order) (entities.Order, error) {
	rate, err := s.rates.FindRate(ctx, order.ShippingZip)
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to look up rate: %w", err)
	}

	order.Total = order.Subtotal * (1.0 + rate)

	s.logger.DebugContext(ctx, "total computed",
		slog.Int("order_id", order.OrderID),
		slog.String("zip", order.ShippingZip),
		slog.Float64("rate", rate),
		slog.Float64("total", order.Total),
	)
	return order, nil
}
