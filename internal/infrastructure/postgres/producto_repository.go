package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jcastrillo/restopos-api/internal/domain"
	"github.com/jcastrillo/restopos-api/internal/domain/entity"
	"github.com/jcastrillo/restopos-api/internal/domain/repository"
)

var _ repository.ProductoRepository = (*ProductoRepo)(nil)

// ProductoRepo implementación del puerto ProductoRepository sobre PostgreSQL (usable con pool o tx).
type ProductoRepo struct {
	q Querier
}

// NewProductoRepository construye el adaptador de persistencia para productos de venta.
func NewProductoRepository(q Querier) *ProductoRepo {
	return &ProductoRepo{q: q}
}

const productoColumns = `id, negocio_id, nombre, descripcion, categoria_id, tipo, insumo_id, receta_id, precio, costo, activo, created_at, updated_at`

// Create persiste un nuevo producto de venta.
func (r *ProductoRepo) Create(p *entity.ProductoVenta) error {
	query := `
		INSERT INTO productos (` + productoColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.NegocioID, p.Nombre, p.Descripcion, nullIfEmpty(p.CategoriaID),
		p.Tipo, nullIfEmpty(p.InsumoID), nullIfEmpty(p.RecetaID),
		p.Precio, p.Costo, p.Activo, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert producto: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID. Devuelve (nil, nil) si no existe.
func (r *ProductoRepo) GetByID(id string) (*entity.ProductoVenta, error) {
	query := `SELECT ` + productoColumns + ` FROM productos WHERE id = $1`
	p, err := scanProducto(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto: %w", err)
	}
	return p, nil
}

// ListByNegocio lista los productos del negocio con paginación.
func (r *ProductoRepo) ListByNegocio(negocioID string, limit, offset int) ([]*entity.ProductoVenta, error) {
	query := `SELECT ` + productoColumns + ` FROM productos WHERE negocio_id = $1 ORDER BY nombre LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, negocioID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list productos: %w", err)
	}
	defer rows.Close()
	var list []*entity.ProductoVenta
	for rows.Next() {
		p, err := scanProducto(rows)
		if err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Update actualiza un producto. Las referencias y el costo se escriben tal
// cual llegan: el caso de uso ya aplicó el cambio de tipo y derivó el costo.
func (r *ProductoRepo) Update(p *entity.ProductoVenta) error {
	query := `
		UPDATE productos SET nombre = $2, descripcion = $3, categoria_id = $4, tipo = $5,
			insumo_id = $6, receta_id = $7, precio = $8, costo = $9, activo = $10, updated_at = $11
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		p.ID, p.Nombre, p.Descripcion, nullIfEmpty(p.CategoriaID), p.Tipo,
		nullIfEmpty(p.InsumoID), nullIfEmpty(p.RecetaID),
		p.Precio, p.Costo, p.Activo, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update producto: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un producto por ID.
func (r *ProductoRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM productos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete producto: %w", err)
	}
	return nil
}

func scanProducto(row pgx.Row) (*entity.ProductoVenta, error) {
	var p entity.ProductoVenta
	var categoriaID, insumoID, recetaID *string
	err := row.Scan(
		&p.ID, &p.NegocioID, &p.Nombre, &p.Descripcion, &categoriaID, &p.Tipo,
		&insumoID, &recetaID, &p.Precio, &p.Costo, &p.Activo, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if categoriaID != nil {
		p.CategoriaID = *categoriaID
	}
	if insumoID != nil {
		p.InsumoID = *insumoID
	}
	if recetaID != nil {
		p.RecetaID = *recetaID
	}
	return &p, nil
}
