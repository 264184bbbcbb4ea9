package http

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/dulceria/sweets-api/internal/application/dto"
	"github.com/dulceria/sweets-api/internal/application/usecase"
	"github.com/dulceria/sweets-api/internal/domain"
)

// SweetHandler maneja las peticiones HTTP del catálogo de dulces.
type SweetHandler struct {
	uc *usecase.SweetUseCase
}

// NewSweetHandler construye el handler.
func NewSweetHandler(uc *usecase.SweetUseCase) *SweetHandler {
	return &SweetHandler{uc: uc}
}

// parseSweetBody valida el cuerpo de create/update. Price y Quantity negativos
// se rechazan en la frontera de entrada.
func parseSweetBody(c *fiber.Ctx) (*dto.SweetRequest, error) {
	var in dto.SweetRequest
	if err := c.BodyParser(&in); err != nil {
		return nil, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" || in.Category == "" {
		return nil, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name y category son requeridos"})
	}
	if in.Price.IsNegative() {
		return nil, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "price no puede ser negativo"})
	}
	if in.Quantity < 0 {
		return nil, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "quantity no puede ser negativa"})
	}
	return &in, nil
}

// parseStockQuantity lee quantity de query o cuerpo JSON; por defecto 1.
// Cantidades menores a 1 se rechazan en la frontera; una qty devuelta de 0
// señala que la respuesta de error ya fue escrita.
func parseStockQuantity(c *fiber.Ctx) (int64, error) {
	qty := int64(1)
	if raw := c.Query("quantity"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return 0, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "quantity inválida"})
		}
		qty = n
	} else if len(c.Body()) > 0 {
		var in dto.StockRequest
		if err := c.BodyParser(&in); err != nil {
			return 0, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
		}
		if in.Quantity != 0 {
			qty = in.Quantity
		}
	}
	if qty < 1 {
		return 0, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "quantity debe ser al menos 1"})
	}
	return qty, nil
}

// Create godoc
// @Summary      Crear dulce
// @Tags         sweets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SweetRequest  true  "Datos del dulce"
// @Success      201   {object}  dto.SweetResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/sweets [post]
func (h *SweetHandler) Create(c *fiber.Ctx) error {
	in, err := parseSweetBody(c)
	if in == nil {
		return err
	}
	out, err := h.uc.Create(*in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "entrada inválida"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar dulces
// @Tags         sweets
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.SweetResponse
// @Router       /api/sweets [get]
func (h *SweetHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Search godoc
// @Summary      Buscar dulces
// @Tags         sweets
// @Security     Bearer
// @Produce      json
// @Param        name       query  string  false  "Substring del nombre"
// @Param        category   query  string  false  "Substring de la categoría"
// @Param        min_price  query  number  false  "Precio mínimo inclusivo"
// @Param        max_price  query  number  false  "Precio máximo inclusivo"
// @Success      200  {array}  dto.SweetResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/sweets/search [get]
func (h *SweetHandler) Search(c *fiber.Ctx) error {
	var q dto.SearchSweetsQuery
	if name := c.Query("name"); name != "" {
		q.Name = &name
	}
	if category := c.Query("category"); category != "" {
		q.Category = &category
	}
	if raw := c.Query("min_price"); raw != "" {
		min, err := decimal.NewFromString(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "min_price inválido"})
		}
		q.MinPrice = &min
	}
	if raw := c.Query("max_price"); raw != "" {
		max, err := decimal.NewFromString(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "max_price inválido"})
		}
		q.MaxPrice = &max
	}
	out, err := h.uc.Search(q)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Reemplazar dulce
// @Tags         sweets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del dulce"
// @Param        body  body  dto.SweetRequest  true  "Reemplazo completo"
// @Success      200   {object}  dto.SweetResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/sweets/{id} [put]
func (h *SweetHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	in, err := parseSweetBody(c)
	if in == nil {
		return err
	}
	out, err := h.uc.Update(id, *in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "dulce no encontrado"})
		}
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "entrada inválida"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar dulce
// @Tags         sweets
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del dulce"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sweets/{id} [delete]
func (h *SweetHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.uc.Delete(id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "dulce no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "dulce eliminado correctamente"})
}

// Purchase godoc
// @Summary      Comprar dulce
// @Tags         sweets
// @Security     Bearer
// @Produce      json
// @Param        id        path   string  true   "ID del dulce"
// @Param        quantity  query  int     false  "Cantidad (default 1)"
// @Success      200  {object}  dto.MessageResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sweets/{id}/purchase [post]
func (h *SweetHandler) Purchase(c *fiber.Ctx) error {
	id := c.Params("id")
	qty, err := parseStockQuantity(c)
	if qty == 0 {
		return err
	}
	name, err := h.uc.Purchase(id, qty)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "dulce no encontrado"})
		case errors.Is(err, domain.ErrInsufficientStock):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente"})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "quantity debe ser al menos 1"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.JSON(dto.MessageResponse{Message: fmt.Sprintf("compraste %d de %s", qty, name)})
}

// Restock godoc
// @Summary      Reabastecer dulce
// @Tags         sweets
// @Security     Bearer
// @Produce      json
// @Param        id        path   string  true   "ID del dulce"
// @Param        quantity  query  int     false  "Cantidad (default 1)"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sweets/{id}/restock [post]
func (h *SweetHandler) Restock(c *fiber.Ctx) error {
	id := c.Params("id")
	qty, err := parseStockQuantity(c)
	if qty == 0 {
		return err
	}
	name, err := h.uc.Restock(id, qty)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "dulce no encontrado"})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "quantity debe ser al menos 1"})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.JSON(dto.MessageResponse{Message: fmt.Sprintf("reabastecido %d de %s", qty, name)})
}
