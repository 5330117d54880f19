package repository

import (
	"context"
	"fmt"

	"cinema-checkout/internal/data/entity"
	"cinema-checkout/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type TicketRepository interface {
	// FindOccupiedSeats is the seat availability read: every seat already
	// bound to a committed ticket for the showtime. Deliberately uncached -
	// it must see the latest commit. It is NOT a lock; the authoritative
	// guarantee is the unique constraint enforced by the order writer.
	FindOccupiedSeats(ctx context.Context, showtimeID uuid.UUID) ([]entity.Seat, error)

	FindByShowtimeID(ctx context.Context, showtimeID uuid.UUID) ([]*entity.Ticket, error)
	FindByOrderID(ctx context.Context, orderID uuid.UUID) ([]*entity.Ticket, error)
	FindByPersonID(ctx context.Context, personID uuid.UUID) ([]*entity.Ticket, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Ticket, error)
}

type ticketRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTicketRepository(db database.PgxIface, log *zap.Logger) TicketRepository {
	return &ticketRepository{
		db:  db,
		log: log.With(zap.String("repository", "ticket")),
	}
}

func (r *ticketRepository) FindOccupiedSeats(ctx context.Context, showtimeID uuid.UUID) ([]entity.Seat, error) {
	query := `
		SELECT seat_row, seat_number
		FROM tickets
		WHERE showtime_id = $1
		ORDER BY seat_row, seat_number
	`

	rows, err := r.db.Query(ctx, query, showtimeID)
	if err != nil {
		r.log.Error("Failed to find occupied seats",
			zap.Error(err),
			zap.String("showtime_id", showtimeID.String()),
		)
		return nil, fmt.Errorf("find occupied seats for showtime %s: %w", showtimeID.String(), err)
	}
	defer rows.Close()

	var seats []entity.Seat
	for rows.Next() {
		var seat entity.Seat
		if err := rows.Scan(&seat.Row, &seat.Number); err != nil {
			r.log.Error("Failed to scan seat row", zap.Error(err))
			return nil, fmt.Errorf("scan seat row: %w", err)
		}
		seats = append(seats, seat)
	}

	return seats, nil
}

func (r *ticketRepository) FindByShowtimeID(ctx context.Context, showtimeID uuid.UUID) ([]*entity.Ticket, error) {
	query := `
		SELECT id, showtime_id, order_id, person_id, seat_row, seat_number, price, purchase_date, created_at
		FROM tickets
		WHERE showtime_id = $1
		ORDER BY seat_row, seat_number
	`

	return r.queryTickets(ctx, query, showtimeID)
}

func (r *ticketRepository) FindByOrderID(ctx context.Context, orderID uuid.UUID) ([]*entity.Ticket, error) {
	query := `
		SELECT id, showtime_id, order_id, person_id, seat_row, seat_number, price, purchase_date, created_at
		FROM tickets
		WHERE order_id = $1
		ORDER BY seat_row, seat_number
	`

	return r.queryTickets(ctx, query, orderID)
}

func (r *ticketRepository) FindByPersonID(ctx context.Context, personID uuid.UUID) ([]*entity.Ticket, error) {
	query := `
		SELECT id, showtime_id, order_id, person_id, seat_row, seat_number, price, purchase_date, created_at
		FROM tickets
		WHERE person_id = $1
		ORDER BY purchase_date DESC
	`

	return r.queryTickets(ctx, query, personID)
}

func (r *ticketRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Ticket, error) {
	query := `
		SELECT id, showtime_id, order_id, person_id, seat_row, seat_number, price, purchase_date, created_at
		FROM tickets
		ORDER BY purchase_date DESC
		LIMIT $1 OFFSET $2
	`

	return r.queryTickets(ctx, query, limit, offset)
}

func (r *ticketRepository) queryTickets(ctx context.Context, query string, args ...any) ([]*entity.Ticket, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to query tickets", zap.Error(err))
		return nil, fmt.Errorf("query tickets: %w", err)
	}
	defer rows.Close()

	var tickets []*entity.Ticket
	for rows.Next() {
		var ticket entity.Ticket
		err := rows.Scan(
			&ticket.ID,
			&ticket.ShowtimeID,
			&ticket.OrderID,
			&ticket.PersonID,
			&ticket.SeatRow,
			&ticket.SeatNumber,
			&ticket.Price,
			&ticket.PurchaseDate,
			&ticket.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan ticket row", zap.Error(err))
			return nil, fmt.Errorf("scan ticket row: %w", err)
		}
		tickets = append(tickets, &ticket)
	}

	return tickets, nil
}
