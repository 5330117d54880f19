package usecase

import (
	"cinema-checkout/internal/data/draftstore"
	"cinema-checkout/internal/data/repository"

	"go.uber.org/zap"
)

type Service struct {
	Checkout CheckoutService
	Ticket   TicketService
	Catalog  CatalogService
	Order    OrderService
}

func NewService(repo *repository.Repository, drafts draftstore.Store, log *zap.Logger) *Service {
	return &Service{
		Checkout: NewCheckoutService(repo, drafts, log),
		Ticket:   NewTicketService(repo, log),
		Catalog:  NewCatalogService(repo, log),
		Order:    NewOrderService(repo, log),
	}
}
