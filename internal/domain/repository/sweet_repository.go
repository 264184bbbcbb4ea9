package repository

import (
	"github.com/shopspring/decimal"

	"github.com/dulceria/sweets-api/internal/domain/entity"
)

// SweetFilter filtros opcionales para Search. Un campo nil es un no-op, no un
// "no coincide nada"; los filtros presentes se combinan con AND.
type SweetFilter struct {
	Name     *string          // substring, sin distinguir mayúsculas
	Category *string          // substring, sin distinguir mayúsculas
	MinPrice *decimal.Decimal // inclusivo
	MaxPrice *decimal.Decimal // inclusivo
}

// SweetRepository define el puerto de persistencia para Sweet (DIP).
// Las lecturas devuelven (nil, nil) cuando el registro no existe.
type SweetRepository interface {
	Create(sweet *entity.Sweet) error
	GetByID(id string) (*entity.Sweet, error)
	List(limit int) ([]*entity.Sweet, error)
	Search(filter SweetFilter, limit int) ([]*entity.Sweet, error)
	// Replace reemplaza name/category/price/quantity del registro completo.
	// Devuelve false si el id no existe.
	Replace(sweet *entity.Sweet) (bool, error)
	// Delete devuelve false si el id no existe.
	Delete(id string) (bool, error)
	// DecrementStock descuenta qty solo si el stock alcanza
	// (quantity >= qty); devuelve false si no afectó filas, sea porque el id
	// no existe o porque el stock es insuficiente.
	DecrementStock(id string, qty int64) (bool, error)
	// IncrementStock suma qty sin tope; devuelve false si el id no existe.
	IncrementStock(id string, qty int64) (bool, error)
}
