package usecase

import (
	"context"
	"fmt"

	"cinema-checkout/internal/data/repository"
	"cinema-checkout/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type OrderService interface {
	GetOrderByID(ctx context.Context, orderID string) (*response.OrderResponse, error)
}

type orderService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewOrderService(repo *repository.Repository, log *zap.Logger) OrderService {
	return &orderService{
		repo: repo,
		log:  log.With(zap.String("service", "order")),
	}
}

func (s *orderService) GetOrderByID(ctx context.Context, orderID string) (*response.OrderResponse, error) {
	id, err := uuid.Parse(orderID)
	if err != nil {
		return nil, &NotFoundError{Resource: "order", ID: orderID}
	}

	order, err := s.repo.Order.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load order: %w", err)
	}
	if order == nil {
		return nil, &NotFoundError{Resource: "order", ID: orderID}
	}

	tickets, err := s.repo.Ticket.FindByOrderID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load order tickets: %w", err)
	}

	snackOrders, err := s.repo.SnackOrder.FindByOrderID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load order snacks: %w", err)
	}

	// Resolve snack names for display; missing ones just render without.
	snackNames := make(map[string]string)
	for _, so := range snackOrders {
		snack, _ := s.repo.Snack.FindByID(ctx, so.SnackID)
		if snack != nil {
			snackNames[so.SnackID.String()] = snack.Name
		}
	}

	return response.OrderToResponse(order, tickets, snackOrders, snackNames), nil
}
