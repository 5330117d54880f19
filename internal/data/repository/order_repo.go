package repository

import (
	"context"
	"errors"
	"fmt"

	"cinema-checkout/internal/data/entity"
	"cinema-checkout/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

const pgUniqueViolation = "23505"

type OrderRepository interface {
	// CreateWithLines materializes a finalized draft: one order row, one
	// ticket row per seat, one snack_order row per snack line, all in a
	// single transaction. If any ticket insert hits the unique constraint
	// on (showtime_id, seat_row, seat_number), the whole transaction is
	// rolled back and a *SeatConflictError names the seats that lost the
	// race. This constraint is the authoritative guarantee; the advisory
	// check during the wizard is UX only.
	CreateWithLines(ctx context.Context, order *entity.Order, tickets []*entity.Ticket, snackOrders []*entity.SnackOrder) error

	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
}

type orderRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewOrderRepository(db database.PgxIface, log *zap.Logger) OrderRepository {
	return &orderRepository{
		db:  db,
		log: log.With(zap.String("repository", "order")),
	}
}

func (r *orderRepository) CreateWithLines(ctx context.Context, order *entity.Order, tickets []*entity.Ticket, snackOrders []*entity.SnackOrder) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.log.Error("Failed to begin order transaction", zap.Error(err))
		return fmt.Errorf("begin order transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	orderQuery := `
		INSERT INTO orders (id, order_number, order_date, total_amount, person_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err = tx.Exec(ctx, orderQuery,
		order.ID,
		order.OrderNumber,
		order.OrderDate,
		order.TotalAmount,
		order.PersonID,
		order.CreatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create order",
			zap.Error(err),
			zap.String("order_number", order.OrderNumber),
		)
		return fmt.Errorf("create order %s: %w", order.OrderNumber, err)
	}

	ticketQuery := `
		INSERT INTO tickets (id, showtime_id, order_id, person_id, seat_row, seat_number, price, purchase_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	for _, ticket := range tickets {
		_, err = tx.Exec(ctx, ticketQuery,
			ticket.ID,
			ticket.ShowtimeID,
			ticket.OrderID,
			ticket.PersonID,
			ticket.SeatRow,
			ticket.SeatNumber,
			ticket.Price,
			ticket.PurchaseDate,
			ticket.CreatedAt,
		)
		if err != nil {
			if isUniqueViolation(err) {
				// The rollback runs via defer; report every requested seat
				// that is now taken, not just the first collision.
				return r.seatConflict(ctx, ticket.ShowtimeID, tickets)
			}
			r.log.Error("Failed to create ticket",
				zap.Error(err),
				zap.String("order_number", order.OrderNumber),
				zap.String("seat", ticket.Seat().String()),
			)
			return fmt.Errorf("create ticket for seat %s: %w", ticket.Seat().String(), err)
		}
	}

	snackQuery := `
		INSERT INTO snack_orders (id, order_id, snack_id, quantity, price_at_purchase, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	for _, so := range snackOrders {
		_, err = tx.Exec(ctx, snackQuery,
			so.ID,
			so.OrderID,
			so.SnackID,
			so.Quantity,
			so.PriceAtPurchase,
			so.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to create snack order",
				zap.Error(err),
				zap.String("order_number", order.OrderNumber),
				zap.String("snack_id", so.SnackID.String()),
			)
			return fmt.Errorf("create snack order for snack %s: %w", so.SnackID.String(), err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		if isUniqueViolation(err) {
			return r.seatConflict(ctx, tickets[0].ShowtimeID, tickets)
		}
		r.log.Error("Failed to commit order transaction",
			zap.Error(err),
			zap.String("order_number", order.OrderNumber),
		)
		return fmt.Errorf("commit order %s: %w", order.OrderNumber, err)
	}

	r.log.Info("Order committed",
		zap.String("order_id", order.ID.String()),
		zap.String("order_number", order.OrderNumber),
		zap.Int("tickets", len(tickets)),
		zap.Int("snack_lines", len(snackOrders)),
		zap.String("total_amount", order.TotalAmount.StringFixed(2)),
	)

	return nil
}

func (r *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	query := `
		SELECT id, order_number, order_date, total_amount, person_id, created_at
		FROM orders
		WHERE id = $1
	`

	var order entity.Order
	err := r.db.QueryRow(ctx, query, id).Scan(
		&order.ID,
		&order.OrderNumber,
		&order.OrderDate,
		&order.TotalAmount,
		&order.PersonID,
		&order.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find order by ID",
			zap.Error(err),
			zap.String("order_id", id.String()),
		)
		return nil, fmt.Errorf("find order by ID %s: %w", id.String(), err)
	}

	return &order, nil
}

// seatConflict re-reads committed seats outside the failed transaction and
// intersects them with the requested set so the error can name every seat
// that lost the race.
func (r *orderRepository) seatConflict(ctx context.Context, showtimeID uuid.UUID, requested []*entity.Ticket) error {
	query := `
		SELECT seat_row, seat_number
		FROM tickets
		WHERE showtime_id = $1
	`

	occupied := make(map[entity.Seat]bool)
	rows, err := r.db.Query(ctx, query, showtimeID)
	if err == nil {
		defer rows.Close()
		for rows.Next() {
			var seat entity.Seat
			if rows.Scan(&seat.Row, &seat.Number) == nil {
				occupied[seat] = true
			}
		}
	}

	var conflicting []entity.Seat
	for _, ticket := range requested {
		if occupied[ticket.Seat()] {
			conflicting = append(conflicting, ticket.Seat())
		}
	}

	// The re-read can itself race with a delete; fall back to the first
	// requested seat so the error always names something.
	if len(conflicting) == 0 && len(requested) > 0 {
		conflicting = append(conflicting, requested[0].Seat())
	}

	r.log.Warn("Seat conflict on commit",
		zap.String("showtime_id", showtimeID.String()),
		zap.Strings("seats", entity.SeatStrings(conflicting)),
	)

	return &SeatConflictError{
		ShowtimeID: showtimeID.String(),
		Seats:      conflicting,
	}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
