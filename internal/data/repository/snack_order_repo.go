package repository

import (
	"context"
	"fmt"

	"cinema-checkout/internal/data/entity"
	"cinema-checkout/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type SnackOrderRepository interface {
	FindByOrderID(ctx context.Context, orderID uuid.UUID) ([]*entity.SnackOrder, error)
}

type snackOrderRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSnackOrderRepository(db database.PgxIface, log *zap.Logger) SnackOrderRepository {
	return &snackOrderRepository{
		db:  db,
		log: log.With(zap.String("repository", "snack_order")),
	}
}

func (r *snackOrderRepository) FindByOrderID(ctx context.Context, orderID uuid.UUID) ([]*entity.SnackOrder, error) {
	query := `
		SELECT id, order_id, snack_id, quantity, price_at_purchase, created_at
		FROM snack_orders
		WHERE order_id = $1
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query, orderID)
	if err != nil {
		r.log.Error("Failed to find snack orders by order ID",
			zap.Error(err),
			zap.String("order_id", orderID.String()),
		)
		return nil, fmt.Errorf("find snack orders by order ID %s: %w", orderID.String(), err)
	}
	defer rows.Close()

	var snackOrders []*entity.SnackOrder
	for rows.Next() {
		var so entity.SnackOrder
		err := rows.Scan(
			&so.ID,
			&so.OrderID,
			&so.SnackID,
			&so.Quantity,
			&so.PriceAtPurchase,
			&so.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan snack order row", zap.Error(err))
			return nil, fmt.Errorf("scan snack order row: %w", err)
		}
		snackOrders = append(snackOrders, &so)
	}

	return snackOrders, nil
}
