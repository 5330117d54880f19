package usecase

import (
	"context"
	"fmt"
	"time"

	"cinema-checkout/internal/data/entity"
	"cinema-checkout/internal/data/repository"
	"cinema-checkout/internal/dto/request"
	"cinema-checkout/internal/dto/response"
	"cinema-checkout/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type TicketService interface {
	// Buy is the single-step sale path: one seat, implicit quantity 1,
	// committed through the same order writer as the wizard so the seat
	// uniqueness guarantee has a single enforcement point.
	Buy(ctx context.Context, req *request.BuyTicketRequest) (*response.OrderResponse, error)

	GetOccupiedSeats(ctx context.Context, showtimeID string) (*response.OccupiedSeatsResponse, error)
	GetPersonTickets(ctx context.Context, personID string) ([]response.TicketResponse, error)
	GetAllSales(ctx context.Context, req *request.PaginatedRequest) ([]response.TicketResponse, error)
}

type ticketService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewTicketService(repo *repository.Repository, log *zap.Logger) TicketService {
	return &ticketService{
		repo: repo,
		log:  log.With(zap.String("service", "ticket")),
	}
}

func (s *ticketService) Buy(ctx context.Context, req *request.BuyTicketRequest) (*response.OrderResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, &ValidationError{Message: "validation failed", Fields: errs}
	}

	showtimeID, err := uuid.Parse(req.ShowtimeID)
	if err != nil {
		return nil, validationErrorf("invalid showtime ID %s", req.ShowtimeID)
	}

	showtime, err := s.repo.Showtime.FindByID(ctx, showtimeID)
	if err != nil {
		return nil, fmt.Errorf("load showtime: %w", err)
	}
	if showtime == nil {
		return nil, &NotFoundError{Resource: "showtime", ID: req.ShowtimeID}
	}

	seat, err := entity.ParseSeat(req.Seat)
	if err != nil {
		return nil, &ValidationError{Message: err.Error()}
	}

	room, err := s.repo.Room.FindByID(ctx, showtime.RoomID)
	if err != nil {
		return nil, fmt.Errorf("load room: %w", err)
	}
	if room == nil {
		return nil, &NotFoundError{Resource: "room", ID: showtime.RoomID.String()}
	}
	if !seat.InLayout(room.Rows, room.Columns) {
		return nil, validationErrorf("seat %s does not exist in room %d", seat, room.RoomNumber)
	}

	// Advisory check for fast feedback; the order writer still decides.
	occupied, err := s.repo.Ticket.FindOccupiedSeats(ctx, showtimeID)
	if err != nil {
		return nil, fmt.Errorf("check seat availability: %w", err)
	}
	for _, taken := range occupied {
		if taken == seat {
			return nil, &repository.SeatConflictError{
				ShowtimeID: req.ShowtimeID,
				Seats:      []entity.Seat{seat},
			}
		}
	}

	// Person-flag discount override: a discount holder pays the reduced
	// price regardless of ticket type. Distinct from the wizard's
	// quantity-based policy.
	price := showtime.BasePrice
	var personID *uuid.UUID
	if req.PersonID != nil {
		id, err := uuid.Parse(*req.PersonID)
		if err != nil {
			return nil, validationErrorf("invalid person ID %s", *req.PersonID)
		}
		person, err := s.repo.Person.FindByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("load person: %w", err)
		}
		if person == nil {
			return nil, &NotFoundError{Resource: "person", ID: *req.PersonID}
		}
		personID = &id

		eligible, err := s.repo.Person.IsDiscountEligible(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("check discount eligibility: %w", err)
		}
		price = DiscountHolderPrice(showtime.BasePrice, eligible)
	}

	now := time.Now()
	order := &entity.Order{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: now,
		},
		OrderNumber: utils.GenerateOrderNumber(),
		OrderDate:   now,
		TotalAmount: price,
		PersonID:    personID,
	}

	ticket := &entity.Ticket{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: now,
		},
		ShowtimeID:   showtimeID,
		OrderID:      order.ID,
		PersonID:     personID,
		SeatRow:      seat.Row,
		SeatNumber:   seat.Number,
		Price:        price,
		PurchaseDate: now,
	}

	if err := s.repo.Order.CreateWithLines(ctx, order, []*entity.Ticket{ticket}, nil); err != nil {
		return nil, err
	}

	s.log.Info("Direct sale committed",
		zap.String("order_id", order.ID.String()),
		zap.String("showtime_id", req.ShowtimeID),
		zap.String("seat", seat.String()),
		zap.String("price", price.StringFixed(2)),
	)

	return response.OrderToResponse(order, []*entity.Ticket{ticket}, nil, nil), nil
}

func (s *ticketService) GetOccupiedSeats(ctx context.Context, showtimeID string) (*response.OccupiedSeatsResponse, error) {
	id, err := uuid.Parse(showtimeID)
	if err != nil {
		return nil, &NotFoundError{Resource: "showtime", ID: showtimeID}
	}

	showtime, err := s.repo.Showtime.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load showtime: %w", err)
	}
	if showtime == nil {
		return nil, &NotFoundError{Resource: "showtime", ID: showtimeID}
	}

	seats, err := s.repo.Ticket.FindOccupiedSeats(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find occupied seats: %w", err)
	}

	return &response.OccupiedSeatsResponse{
		ShowtimeID: showtimeID,
		Seats:      entity.SeatStrings(seats),
	}, nil
}

func (s *ticketService) GetPersonTickets(ctx context.Context, personID string) ([]response.TicketResponse, error) {
	id, err := uuid.Parse(personID)
	if err != nil {
		return nil, validationErrorf("invalid person ID %s", personID)
	}

	tickets, err := s.repo.Ticket.FindByPersonID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find tickets by person: %w", err)
	}

	responses := make([]response.TicketResponse, len(tickets))
	for i, ticket := range tickets {
		responses[i] = response.TicketToResponse(ticket)
	}

	return responses, nil
}

func (s *ticketService) GetAllSales(ctx context.Context, req *request.PaginatedRequest) ([]response.TicketResponse, error) {
	tickets, err := s.repo.Ticket.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		return nil, fmt.Errorf("find all tickets: %w", err)
	}

	responses := make([]response.TicketResponse, len(tickets))
	for i, ticket := range tickets {
		responses[i] = response.TicketToResponse(ticket)
	}

	return responses, nil
}
