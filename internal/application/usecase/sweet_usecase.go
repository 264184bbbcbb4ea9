package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/dulceria/sweets-api/internal/application/dto"
	"github.com/dulceria/sweets-api/internal/domain"
	"github.com/dulceria/sweets-api/internal/domain/entity"
	"github.com/dulceria/sweets-api/internal/domain/repository"
)

// listCap tope de registros devueltos por List y Search.
const listCap = 100

// SweetUseCase casos de uso del catálogo: CRUD, búsqueda y stock.
type SweetUseCase struct {
	repo repository.SweetRepository
}

// NewSweetUseCase construye el caso de uso.
func NewSweetUseCase(repo repository.SweetRepository) *SweetUseCase {
	return &SweetUseCase{repo: repo}
}

// Create crea un dulce. Price y Quantity negativos se rechazan aquí además de la
// validación del handler; el stock solo se mueve después vía Purchase/Restock.
func (uc *SweetUseCase) Create(in dto.SweetRequest) (*dto.SweetResponse, error) {
	if in.Price.IsNegative() || in.Quantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	sweet := &entity.Sweet{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Category:  in.Category,
		Price:     in.Price,
		Quantity:  in.Quantity,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(sweet); err != nil {
		return nil, err
	}
	return toSweetResponse(sweet), nil
}

// List devuelve hasta 100 dulces en el orden por defecto del almacén.
func (uc *SweetUseCase) List() ([]dto.SweetResponse, error) {
	list, err := uc.repo.List(listCap)
	if err != nil {
		return nil, err
	}
	return toSweetResponses(list), nil
}

// Search filtra por substring de nombre/categoría (sin mayúsculas) y rango de
// precio inclusivo; los filtros ausentes no restringen. Un rango invertido
// (min > max) no lo satisface ningún registro y devuelve lista vacía.
func (uc *SweetUseCase) Search(q dto.SearchSweetsQuery) ([]dto.SweetResponse, error) {
	filter := repository.SweetFilter{
		Name:     q.Name,
		Category: q.Category,
		MinPrice: q.MinPrice,
		MaxPrice: q.MaxPrice,
	}
	list, err := uc.repo.Search(filter, listCap)
	if err != nil {
		return nil, err
	}
	return toSweetResponses(list), nil
}

// Update reemplaza por completo name/category/price/quantity.
// ErrNotFound solo cuando el id no existe: en PostgreSQL un UPDATE cuenta la fila
// aunque los valores nuevos sean idénticos, así que el reemplazo sin cambios
// también responde 200.
func (uc *SweetUseCase) Update(id string, in dto.SweetRequest) (*dto.SweetResponse, error) {
	if in.Price.IsNegative() || in.Quantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	sweet := &entity.Sweet{
		ID:        id,
		Name:      in.Name,
		Category:  in.Category,
		Price:     in.Price,
		Quantity:  in.Quantity,
		UpdatedAt: time.Now(),
	}
	ok, err := uc.repo.Replace(sweet)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrNotFound
	}
	return toSweetResponse(sweet), nil
}

// Delete elimina un dulce; ErrNotFound si el id no existe.
func (uc *SweetUseCase) Delete(id string) error {
	ok, err := uc.repo.Delete(id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return nil
}

// Purchase descuenta qty del stock con un único UPDATE condicional
// (quantity >= qty), de modo que compras concurrentes nunca dejan el stock
// negativo. La lectura posterior solo distingue 404 de stock insuficiente para
// el mensaje; la corrección no depende de ella. Devuelve el nombre del dulce.
func (uc *SweetUseCase) Purchase(id string, qty int64) (string, error) {
	if qty < 1 {
		return "", domain.ErrInvalidInput
	}
	ok, err := uc.repo.DecrementStock(id, qty)
	if err != nil {
		return "", err
	}
	if !ok {
		sweet, err := uc.repo.GetByID(id)
		if err != nil {
			return "", err
		}
		if sweet == nil {
			return "", domain.ErrNotFound
		}
		return "", domain.ErrInsufficientStock
	}
	sweet, err := uc.repo.GetByID(id)
	if err != nil {
		return "", err
	}
	if sweet == nil {
		// Borrado concurrente después del decremento; la compra ya ocurrió.
		return "", nil
	}
	return sweet.Name, nil
}

// Restock suma qty al stock sin tope; ErrNotFound si el id no existe.
// Devuelve el nombre del dulce.
func (uc *SweetUseCase) Restock(id string, qty int64) (string, error) {
	if qty < 1 {
		return "", domain.ErrInvalidInput
	}
	ok, err := uc.repo.IncrementStock(id, qty)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", domain.ErrNotFound
	}
	sweet, err := uc.repo.GetByID(id)
	if err != nil {
		return "", err
	}
	if sweet == nil {
		return "", nil
	}
	return sweet.Name, nil
}

func toSweetResponse(s *entity.Sweet) *dto.SweetResponse {
	if s == nil {
		return nil
	}
	return &dto.SweetResponse{
		ID:       s.ID,
		Name:     s.Name,
		Category: s.Category,
		Price:    s.Price,
		Quantity: s.Quantity,
	}
}

func toSweetResponses(list []*entity.Sweet) []dto.SweetResponse {
	items := make([]dto.SweetResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSweetResponse(s))
	}
	return items
}
