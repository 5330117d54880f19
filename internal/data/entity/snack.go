package entity

import "github.com/shopspring/decimal"

type Snack struct {
	Base
	Name        string          `db:"name"`
	Description string          `db:"description"`
	Price       decimal.Decimal `db:"price"`
}
