package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jcastrillo/restopos-api/internal/domain/entity"
	"github.com/jcastrillo/restopos-api/internal/domain/repository"
)

var _ repository.CompraRepository = (*CompraRepo)(nil)

// CompraRepo implementación del puerto CompraRepository sobre PostgreSQL (usable con pool o tx).
type CompraRepo struct {
	q Querier
}

// NewCompraRepository construye el adaptador de persistencia para compras. Pasar pool o tx (Querier).
func NewCompraRepository(q Querier) *CompraRepo {
	return &CompraRepo{q: q}
}

const compraColumns = `id, negocio_id, insumo_id, proveedor_id, proveedor, cantidad, costo_unitario, total, fecha, created_at, created_by`

// Create persiste una nueva compra.
func (r *CompraRepo) Create(c *entity.Compra) error {
	query := `
		INSERT INTO compras (` + compraColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.NegocioID, c.InsumoID, nullIfEmpty(c.ProveedorID), c.Proveedor,
		c.Cantidad, c.CostoUnitario, c.Total, c.Fecha, c.CreatedAt, c.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("insert compra: %w", err)
	}
	return nil
}

// GetByID obtiene una compra por ID. Devuelve (nil, nil) si no existe.
func (r *CompraRepo) GetByID(id string) (*entity.Compra, error) {
	query := `SELECT ` + compraColumns + ` FROM compras WHERE id = $1`
	c, err := scanCompra(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get compra: %w", err)
	}
	return c, nil
}

// UltimaCompra devuelve la compra más reciente del insumo, o (nil, nil) si
// nunca se compró: la ausencia no es un error para quien consulta.
func (r *CompraRepo) UltimaCompra(insumoID string) (*entity.Compra, error) {
	query := `SELECT ` + compraColumns + ` FROM compras WHERE insumo_id = $1 ORDER BY fecha DESC, created_at DESC LIMIT 1`
	c, err := scanCompra(r.q.QueryRow(context.Background(), query, insumoID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("ultima compra: %w", err)
	}
	return c, nil
}

// ListByInsumo lista el historial de compras de un insumo, más recientes primero.
func (r *CompraRepo) ListByInsumo(insumoID string, limit, offset int) ([]*entity.Compra, error) {
	query := `SELECT ` + compraColumns + ` FROM compras WHERE insumo_id = $1 ORDER BY fecha DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, insumoID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list compras insumo: %w", err)
	}
	defer rows.Close()
	return collectCompras(rows)
}

// ListByNegocio lista las compras del negocio, más recientes primero.
func (r *CompraRepo) ListByNegocio(negocioID string, limit, offset int) ([]*entity.Compra, error) {
	query := `SELECT ` + compraColumns + ` FROM compras WHERE negocio_id = $1 ORDER BY fecha DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, negocioID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list compras: %w", err)
	}
	defer rows.Close()
	return collectCompras(rows)
}

func scanCompra(row pgx.Row) (*entity.Compra, error) {
	var c entity.Compra
	var proveedorID *string
	err := row.Scan(
		&c.ID, &c.NegocioID, &c.InsumoID, &proveedorID, &c.Proveedor,
		&c.Cantidad, &c.CostoUnitario, &c.Total, &c.Fecha, &c.CreatedAt, &c.CreatedBy,
	)
	if err != nil {
		return nil, err
	}
	if proveedorID != nil {
		c.ProveedorID = *proveedorID
	}
	return &c, nil
}

func collectCompras(rows pgx.Rows) ([]*entity.Compra, error) {
	var list []*entity.Compra
	for rows.Next() {
		c, err := scanCompra(rows)
		if err != nil {
			return nil, fmt.Errorf("scan compra: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}
