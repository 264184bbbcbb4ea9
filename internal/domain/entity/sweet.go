package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sweet representa un dulce del catálogo.
// Quantity nunca baja de cero: una compra que lo dejaría negativo se rechaza
// antes de mutar, con un decremento condicional en la DB.
type Sweet struct {
	ID        string
	Name      string
	Category  string
	Price     decimal.Decimal
	Quantity  int64
	CreatedAt time.Time
	UpdatedAt time.Time
}
