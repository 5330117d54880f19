package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order is created exactly once per successful commit and owns its
// tickets and snack lines (cascade delete at the schema level).
type Order struct {
	BaseSimple
	OrderNumber string          `db:"order_number"`
	OrderDate   time.Time       `db:"order_date"`
	TotalAmount decimal.Decimal `db:"total_amount"`
	PersonID    *uuid.UUID      `db:"person_id"`
}
