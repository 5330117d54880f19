package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cinema-checkout/internal/data/draftstore"
	"cinema-checkout/internal/data/entity"
	"cinema-checkout/internal/data/repository"
	"cinema-checkout/internal/dto/request"
	"cinema-checkout/internal/dto/response"
	"cinema-checkout/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CheckoutService drives the wizard: Start -> Quantities -> Seats ->
// Snacks -> Review -> Confirm. Each call loads the caller's draft by
// session token, validates the step input against it, and writes the
// updated draft back. Draft.Step is the next step the caller has to
// complete.
type CheckoutService interface {
	Start(ctx context.Context, token, showtimeID string) (*response.DraftResponse, error)
	GetDraft(ctx context.Context, token string) (*response.DraftResponse, error)
	SetQuantities(ctx context.Context, token string, req *request.QuantitiesRequest) (*response.DraftResponse, error)
	SetSeats(ctx context.Context, token string, req *request.SeatsRequest) (*response.DraftResponse, error)
	SetSnacks(ctx context.Context, token string, req *request.SnacksRequest) (*response.DraftResponse, error)
	Review(ctx context.Context, token string) (*response.ReviewResponse, error)
	Confirm(ctx context.Context, token string, req *request.ConfirmRequest) (*response.ConfirmResponse, error)
}

type checkoutService struct {
	repo   *repository.Repository
	drafts draftstore.Store
	log    *zap.Logger
}

func NewCheckoutService(repo *repository.Repository, drafts draftstore.Store, log *zap.Logger) CheckoutService {
	return &checkoutService{
		repo:   repo,
		drafts: drafts,
		log:    log.With(zap.String("service", "checkout")),
	}
}

func (s *checkoutService) Start(ctx context.Context, token, showtimeID string) (*response.DraftResponse, error) {
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

	// A fresh start discards any prior draft for this session.
	now := time.Now()
	draft := &entity.CheckoutDraft{
		ShowtimeID:     showtime.ID,
		Step:           entity.StepQuantities,
		QtyNormal:      1, // default
		BasePrice:      showtime.BasePrice,
		TicketSubtotal: TicketSubtotal(showtime.BasePrice, 1, 0),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	draft.TotalPrice = draft.TicketSubtotal

	if err := s.drafts.Put(ctx, token, draft); err != nil {
		return nil, fmt.Errorf("store draft: %w", err)
	}

	s.log.Info("Checkout started",
		zap.String("showtime_id", showtimeID),
	)

	return response.DraftToResponse(draft), nil
}

func (s *checkoutService) GetDraft(ctx context.Context, token string) (*response.DraftResponse, error) {
	draft, err := s.loadDraft(ctx, token)
	if err != nil {
		return nil, err
	}
	return response.DraftToResponse(draft), nil
}

func (s *checkoutService) SetQuantities(ctx context.Context, token string, req *request.QuantitiesRequest) (*response.DraftResponse, error) {
	draft, err := s.loadDraft(ctx, token)
	if err != nil {
		return nil, err
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, &ValidationError{Message: "validation failed", Fields: errs}
	}

	if req.QtyNormal+req.QtyDiscounted <= 0 {
		return nil, validationErrorf("select at least one ticket")
	}

	// Re-read the base price so the draft follows the catalog, then keep
	// it snapshotted for the rest of the wizard.
	showtime, err := s.repo.Showtime.FindByID(ctx, draft.ShowtimeID)
	if err != nil {
		return nil, fmt.Errorf("load showtime: %w", err)
	}
	if showtime == nil {
		return nil, &NotFoundError{Resource: "showtime", ID: draft.ShowtimeID.String()}
	}

	draft.QtyNormal = req.QtyNormal
	draft.QtyDiscounted = req.QtyDiscounted
	draft.BasePrice = showtime.BasePrice
	draft.TicketSubtotal = TicketSubtotal(showtime.BasePrice, req.QtyNormal, req.QtyDiscounted)
	draft.TotalPrice = GrandTotal(draft.TicketSubtotal, SnackSubtotal(draft.Snacks))

	// Previously chosen seats no longer match the new count.
	if len(draft.Seats) != draft.TotalTickets() {
		draft.Seats = nil
	}
	draft.Step = entity.StepSeats
	draft.UpdatedAt = time.Now()

	if err := s.drafts.Put(ctx, token, draft); err != nil {
		return nil, fmt.Errorf("store draft: %w", err)
	}

	return response.DraftToResponse(draft), nil
}

func (s *checkoutService) SetSeats(ctx context.Context, token string, req *request.SeatsRequest) (*response.DraftResponse, error) {
	draft, err := s.loadDraft(ctx, token)
	if err != nil {
		return nil, err
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, &ValidationError{Message: "validation failed", Fields: errs}
	}

	if draft.Step == entity.StepQuantities {
		return nil, validationErrorf("choose ticket quantities before seats")
	}

	seats := make([]entity.Seat, 0, len(req.Seats))
	seen := make(map[entity.Seat]bool)
	for _, raw := range req.Seats {
		seat, err := entity.ParseSeat(raw)
		if err != nil {
			return nil, &ValidationError{Message: err.Error()}
		}
		if seen[seat] {
			return nil, validationErrorf("seat %s selected twice", seat)
		}
		seen[seat] = true
		seats = append(seats, seat)
	}

	// Every chosen-quantity ticket maps to exactly one seat.
	if len(seats) != draft.TotalTickets() {
		return nil, validationErrorf("selected %d seat(s) for %d ticket(s)", len(seats), draft.TotalTickets())
	}

	showtime, err := s.repo.Showtime.FindByID(ctx, draft.ShowtimeID)
	if err != nil {
		return nil, fmt.Errorf("load showtime: %w", err)
	}
	if showtime == nil {
		return nil, &NotFoundError{Resource: "showtime", ID: draft.ShowtimeID.String()}
	}

	room, err := s.repo.Room.FindByID(ctx, showtime.RoomID)
	if err != nil {
		return nil, fmt.Errorf("load room: %w", err)
	}
	if room == nil {
		return nil, &NotFoundError{Resource: "room", ID: showtime.RoomID.String()}
	}

	for _, seat := range seats {
		if !seat.InLayout(room.Rows, room.Columns) {
			return nil, validationErrorf("seat %s does not exist in room %d", seat, room.RoomNumber)
		}
	}

	// Advisory availability check: fast feedback only. A seat reported free
	// here can still be lost before confirm; the order writer's constraint
	// is what actually decides.
	occupied, err := s.repo.Ticket.FindOccupiedSeats(ctx, draft.ShowtimeID)
	if err != nil {
		return nil, fmt.Errorf("check seat availability: %w", err)
	}

	occupiedSet := make(map[entity.Seat]bool, len(occupied))
	for _, seat := range occupied {
		occupiedSet[seat] = true
	}

	var conflicting []entity.Seat
	for _, seat := range seats {
		if occupiedSet[seat] {
			conflicting = append(conflicting, seat)
		}
	}
	if len(conflicting) > 0 {
		return nil, &repository.SeatConflictError{
			ShowtimeID: draft.ShowtimeID.String(),
			Seats:      conflicting,
		}
	}

	draft.Seats = seats
	draft.Step = entity.StepSnacks
	draft.UpdatedAt = time.Now()

	if err := s.drafts.Put(ctx, token, draft); err != nil {
		return nil, fmt.Errorf("store draft: %w", err)
	}

	return response.DraftToResponse(draft), nil
}

func (s *checkoutService) SetSnacks(ctx context.Context, token string, req *request.SnacksRequest) (*response.DraftResponse, error) {
	draft, err := s.loadDraft(ctx, token)
	if err != nil {
		return nil, err
	}

	if draft.Step == entity.StepQuantities || draft.Step == entity.StepSeats {
		return nil, validationErrorf("choose seats before snacks")
	}

	// Unknown IDs and non-positive quantities are skipped, not rejected;
	// prices come from the catalog at selection time and are snapshotted
	// into the draft.
	var selections []entity.SnackSelection
	for rawID, quantity := range req.Selections {
		if quantity <= 0 {
			continue
		}

		snackID, err := uuid.Parse(rawID)
		if err != nil {
			continue
		}

		snack, err := s.repo.Snack.FindByID(ctx, snackID)
		if err != nil {
			return nil, fmt.Errorf("load snack: %w", err)
		}
		if snack == nil {
			continue
		}

		selections = append(selections, entity.SnackSelection{
			SnackID:   snack.ID,
			Name:      snack.Name,
			Quantity:  quantity,
			UnitPrice: snack.Price,
		})
	}

	draft.Snacks = selections
	draft.TotalPrice = GrandTotal(draft.TicketSubtotal, SnackSubtotal(selections))
	draft.Step = entity.StepReview
	draft.UpdatedAt = time.Now()

	if err := s.drafts.Put(ctx, token, draft); err != nil {
		return nil, fmt.Errorf("store draft: %w", err)
	}

	return response.DraftToResponse(draft), nil
}

func (s *checkoutService) Review(ctx context.Context, token string) (*response.ReviewResponse, error) {
	draft, err := s.loadDraft(ctx, token)
	if err != nil {
		return nil, err
	}

	if draft.Step != entity.StepReview {
		return nil, validationErrorf("checkout is not ready for review, current step is %s", draft.Step)
	}

	resp := &response.ReviewResponse{
		DraftResponse: *response.DraftToResponse(draft),
	}

	showtime, err := s.repo.Showtime.FindByID(ctx, draft.ShowtimeID)
	if err != nil {
		return nil, fmt.Errorf("load showtime: %w", err)
	}
	if showtime != nil {
		resp.StartTime = showtime.StartTime.Format(time.RFC3339)

		movie, _ := s.repo.Movie.FindByID(ctx, showtime.MovieID)
		if movie != nil {
			resp.MovieTitle = movie.Title
		}

		room, _ := s.repo.Room.FindByID(ctx, showtime.RoomID)
		if room != nil {
			resp.RoomNumber = room.RoomNumber
		}
	}

	return resp, nil
}

func (s *checkoutService) Confirm(ctx context.Context, token string, req *request.ConfirmRequest) (*response.ConfirmResponse, error) {
	draft, err := s.loadDraft(ctx, token)
	if err != nil {
		return nil, err
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, &ValidationError{Message: "validation failed", Fields: errs}
	}

	if draft.Step != entity.StepReview {
		return nil, validationErrorf("checkout is not ready to confirm, current step is %s", draft.Step)
	}

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
	}

	now := time.Now()
	order := &entity.Order{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: now,
		},
		OrderNumber: utils.GenerateOrderNumber(),
		OrderDate:   now,
		TotalAmount: draft.TotalPrice,
		PersonID:    personID,
	}

	prices := TicketPrices(draft.BasePrice, draft.QtyNormal, len(draft.Seats))
	tickets := make([]*entity.Ticket, len(draft.Seats))
	for i, seat := range draft.Seats {
		tickets[i] = &entity.Ticket{
			BaseSimple: entity.BaseSimple{
				ID:        uuid.New(),
				CreatedAt: now,
			},
			ShowtimeID:   draft.ShowtimeID,
			OrderID:      order.ID,
			PersonID:     personID,
			SeatRow:      seat.Row,
			SeatNumber:   seat.Number,
			Price:        prices[i],
			PurchaseDate: now,
		}
	}

	snackOrders := make([]*entity.SnackOrder, len(draft.Snacks))
	for i, line := range draft.Snacks {
		snackOrders[i] = &entity.SnackOrder{
			BaseSimple: entity.BaseSimple{
				ID:        uuid.New(),
				CreatedAt: now,
			},
			OrderID:         order.ID,
			SnackID:         line.SnackID,
			Quantity:        line.Quantity,
			PriceAtPurchase: line.UnitPrice,
		}
	}

	if err := s.repo.Order.CreateWithLines(ctx, order, tickets, snackOrders); err != nil {
		var conflict *repository.SeatConflictError
		if errors.As(err, &conflict) {
			// Somebody else committed one of our seats first. Keep the
			// draft, send the caller back to seat selection.
			draft.Step = entity.StepSeats
			draft.UpdatedAt = time.Now()
			if putErr := s.drafts.Put(ctx, token, draft); putErr != nil {
				s.log.Error("Failed to store draft after seat conflict", zap.Error(putErr))
			}
			return nil, err
		}
		return nil, fmt.Errorf("commit order: %w", err)
	}

	if err := s.drafts.Delete(ctx, token); err != nil {
		// The order is committed; a stale draft only lingers until TTL.
		s.log.Warn("Failed to delete committed draft", zap.Error(err))
	}

	s.log.Info("Checkout confirmed",
		zap.String("order_id", order.ID.String()),
		zap.String("order_number", order.OrderNumber),
		zap.Int("tickets", len(tickets)),
		zap.Int("snack_lines", len(snackOrders)),
		zap.String("total", order.TotalAmount.StringFixed(2)),
	)

	return &response.ConfirmResponse{
		OrderID:     order.ID.String(),
		OrderNumber: order.OrderNumber,
		TotalAmount: order.TotalAmount.StringFixed(2),
	}, nil
}

func (s *checkoutService) loadDraft(ctx context.Context, token string) (*entity.CheckoutDraft, error) {
	if token == "" {
		return nil, ErrNoActiveDraft
	}

	draft, err := s.drafts.Get(ctx, token)
	if err != nil {
		if errors.Is(err, draftstore.ErrDraftNotFound) {
			return nil, ErrNoActiveDraft
		}
		return nil, fmt.Errorf("load draft: %w", err)
	}

	return draft, nil
}
