package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/dulceria/sweets-api/internal/domain/entity"
	"github.com/dulceria/sweets-api/internal/domain/repository"
)

var _ repository.SweetRepository = (*SweetRepo)(nil)

// SweetRepo implementación del puerto SweetRepository sobre PostgreSQL (usable con pool o tx).
type SweetRepo struct {
	q Querier
}

// NewSweetRepository construye el adaptador de persistencia para el catálogo. Pasar pool o tx (Querier).
func NewSweetRepository(q Querier) *SweetRepo {
	return &SweetRepo{q: q}
}

// Create persiste un nuevo dulce.
func (r *SweetRepo) Create(sweet *entity.Sweet) error {
	query := `
		INSERT INTO sweets (id, name, category, price, quantity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		sweet.ID, sweet.Name, sweet.Category, sweet.Price, sweet.Quantity,
		sweet.CreatedAt, sweet.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert sweet: %w", err)
	}
	return nil
}

// GetByID obtiene un dulce por ID.
func (r *SweetRepo) GetByID(id string) (*entity.Sweet, error) {
	query := `
		SELECT id, name, category, price, quantity, created_at, updated_at
		FROM sweets WHERE id = $1`
	var s entity.Sweet
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.Name, &s.Category, &s.Price, &s.Quantity, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sweet: %w", err)
	}
	return &s, nil
}

// List devuelve hasta limit dulces en el orden por defecto del almacén.
func (r *SweetRepo) List(limit int) ([]*entity.Sweet, error) {
	query := `
		SELECT id, name, category, price, quantity, created_at, updated_at
		FROM sweets LIMIT $1`
	rows, err := r.q.Query(context.Background(), query, limit)
	if err != nil {
		return nil, fmt.Errorf("list sweets: %w", err)
	}
	defer rows.Close()
	return scanSweets(rows)
}

// Search arma el WHERE dinámicamente: ILIKE con substring escapado para
// name/category y rango inclusivo para price. Filtros ausentes no agregan
// condición; todos los presentes van en AND.
func (r *SweetRepo) Search(filter repository.SweetFilter, limit int) ([]*entity.Sweet, error) {
	query := `
		SELECT id, name, category, price, quantity, created_at, updated_at
		FROM sweets WHERE 1=1`
	args := []any{}
	n := 0
	next := func() string {
		n++
		return fmt.Sprintf("$%d", n)
	}
	if filter.Name != nil {
		query += " AND name ILIKE " + next()
		args = append(args, "%"+escapeLike(*filter.Name)+"%")
	}
	if filter.Category != nil {
		query += " AND category ILIKE " + next()
		args = append(args, "%"+escapeLike(*filter.Category)+"%")
	}
	if filter.MinPrice != nil {
		query += " AND price >= " + next()
		args = append(args, *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query += " AND price <= " + next()
		args = append(args, *filter.MaxPrice)
	}
	query += " LIMIT " + next()
	args = append(args, limit)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("search sweets: %w", err)
	}
	defer rows.Close()
	return scanSweets(rows)
}

// Replace reemplaza name/category/price/quantity. En PostgreSQL RowsAffected
// cuenta la fila aunque los valores no cambien, así que false significa que el
// id no existe, no que el reemplazo fue idéntico.
func (r *SweetRepo) Replace(sweet *entity.Sweet) (bool, error) {
	query := `
		UPDATE sweets SET name = $2, category = $3, price = $4, quantity = $5, updated_at = $6
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		sweet.ID, sweet.Name, sweet.Category, sweet.Price, sweet.Quantity, sweet.UpdatedAt,
	)
	if err != nil {
		return false, fmt.Errorf("replace sweet: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// Delete elimina un dulce por ID; false si no existía.
func (r *SweetRepo) Delete(id string) (bool, error) {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM sweets WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete sweet: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// DecrementStock descuenta qty en un único UPDATE condicional: la condición
// quantity >= qty serializa compras concurrentes en la DB y el stock nunca
// queda negativo. false = id inexistente o stock insuficiente.
func (r *SweetRepo) DecrementStock(id string, qty int64) (bool, error) {
	query := `
		UPDATE sweets SET quantity = quantity - $2, updated_at = now()
		WHERE id = $1 AND quantity >= $2`
	cmd, err := r.q.Exec(context.Background(), query, id, qty)
	if err != nil {
		return false, fmt.Errorf("decrement stock: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

// IncrementStock suma qty sin tope; false si el id no existe.
func (r *SweetRepo) IncrementStock(id string, qty int64) (bool, error) {
	query := `
		UPDATE sweets SET quantity = quantity + $2, updated_at = now()
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query, id, qty)
	if err != nil {
		return false, fmt.Errorf("increment stock: %w", err)
	}
	return cmd.RowsAffected() > 0, nil
}

func scanSweets(rows pgx.Rows) ([]*entity.Sweet, error) {
	var list []*entity.Sweet
	for rows.Next() {
		var s entity.Sweet
		if err := rows.Scan(&s.ID, &s.Name, &s.Category, &s.Price, &s.Quantity, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan sweet: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// escapeLike escapa los comodines de LIKE para que el filtro sea substring literal.
func escapeLike(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r == '%' || r == '_' || r == '\\' {
			out = append(out, '\\')
		}
		out = append(out, r)
	}
	return string(out)
}
