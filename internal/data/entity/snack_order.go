package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SnackOrder is one snack line on an order. PriceAtPurchase is a snapshot
// taken when the buyer picked the snack; later catalog price changes do
// not touch it.
type SnackOrder struct {
	BaseSimple
	OrderID         uuid.UUID       `db:"order_id"`
	SnackID         uuid.UUID       `db:"snack_id"`
	Quantity        int             `db:"quantity"`
	PriceAtPurchase decimal.Decimal `db:"price_at_purchase"`
}
