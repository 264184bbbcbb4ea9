package dto

import "github.com/shopspring/decimal"

// SweetRequest entrada para crear o reemplazar un dulce (PUT es reemplazo completo).
type SweetRequest struct {
	Name     string          `json:"name" validate:"required,min=1,max=200"`
	Category string          `json:"category" validate:"required,min=1,max=100"`
	Price    decimal.Decimal `json:"price" validate:"min=0"`
	Quantity int64           `json:"quantity" validate:"min=0"`
}

// SweetResponse salida de un dulce del catálogo.
type SweetResponse struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Price    decimal.Decimal `json:"price"`
	Quantity int64           `json:"quantity"`
}

// SearchSweetsQuery filtros opcionales de búsqueda (query params).
type SearchSweetsQuery struct {
	Name     *string          `query:"name"`
	Category *string          `query:"category"`
	MinPrice *decimal.Decimal `query:"min_price"`
	MaxPrice *decimal.Decimal `query:"max_price"`
}

// StockRequest cantidad para purchase/restock; por defecto 1 si no se envía.
type StockRequest struct {
	Quantity int64 `json:"quantity" validate:"omitempty,min=1"`
}
