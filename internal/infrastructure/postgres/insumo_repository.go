package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jcastrillo/restopos-api/internal/domain"
	"github.com/jcastrillo/restopos-api/internal/domain/entity"
	"github.com/jcastrillo/restopos-api/internal/domain/repository"
)

var _ repository.InsumoRepository = (*InsumoRepo)(nil)

// InsumoRepo implementación del puerto InsumoRepository sobre PostgreSQL (usable con pool o tx).
type InsumoRepo struct {
	q Querier
}

// NewInsumoRepository construye el adaptador de persistencia para insumos. Pasar pool o tx (Querier).
func NewInsumoRepository(q Querier) *InsumoRepo {
	return &InsumoRepo{q: q}
}

const insumoColumns = `id, negocio_id, nombre, unidad, costo_promedio, stock, stock_minimo, categoria_id, activo, inventariable, created_at, updated_at`

// Create persiste un nuevo insumo.
func (r *InsumoRepo) Create(insumo *entity.Insumo) error {
	query := `
		INSERT INTO insumos (` + insumoColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		insumo.ID, insumo.NegocioID, insumo.Nombre, insumo.Unidad,
		insumo.CostoPromedio, insumo.Stock, insumo.StockMinimo, nullIfEmpty(insumo.CategoriaID),
		insumo.Activo, insumo.Inventariable, insumo.CreatedAt, insumo.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert insumo: %w", err)
	}
	return nil
}

// GetByID obtiene un insumo por ID. Devuelve (nil, nil) si no existe.
func (r *InsumoRepo) GetByID(id string) (*entity.Insumo, error) {
	query := `SELECT ` + insumoColumns + ` FROM insumos WHERE id = $1`
	i, err := scanInsumo(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get insumo: %w", err)
	}
	return i, nil
}

// ListByNegocio lista insumos del negocio con paginación.
func (r *InsumoRepo) ListByNegocio(negocioID string, limit, offset int) ([]*entity.Insumo, error) {
	query := `
		SELECT ` + insumoColumns + ` FROM insumos
		WHERE negocio_id = $1 ORDER BY nombre LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, negocioID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list insumos: %w", err)
	}
	defer rows.Close()
	return collectInsumos(rows)
}

// ListCandidatos lista los insumos seleccionables en líneas de receta y
// movimiento: solo activos e inventariables.
func (r *InsumoRepo) ListCandidatos(negocioID string) ([]*entity.Insumo, error) {
	query := `
		SELECT ` + insumoColumns + ` FROM insumos
		WHERE negocio_id = $1 AND activo = true AND inventariable = true
		ORDER BY nombre`
	rows, err := r.q.Query(context.Background(), query, negocioID)
	if err != nil {
		return nil, fmt.Errorf("list candidatos: %w", err)
	}
	defer rows.Close()
	return collectInsumos(rows)
}

// Update actualiza los datos editables del insumo. CostoPromedio y Stock no
// se tocan aquí: los mantiene el registro de compras vía UpdateCostoYStock.
func (r *InsumoRepo) Update(insumo *entity.Insumo) error {
	query := `
		UPDATE insumos SET nombre = $2, unidad = $3, stock_minimo = $4, categoria_id = $5,
			activo = $6, inventariable = $7, updated_at = $8
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		insumo.ID, insumo.Nombre, insumo.Unidad, insumo.StockMinimo,
		nullIfEmpty(insumo.CategoriaID), insumo.Activo, insumo.Inventariable, insumo.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update insumo: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateCostoYStock aplica el resultado del promedio ponderado tras registrar una compra.
func (r *InsumoRepo) UpdateCostoYStock(insumoID string, costo, stock decimal.Decimal) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE insumos SET costo_promedio = $2, stock = $3, updated_at = now() WHERE id = $1`,
		insumoID, costo, stock,
	)
	if err != nil {
		return fmt.Errorf("update costo insumo: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un insumo por ID.
func (r *InsumoRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM insumos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete insumo: %w", err)
	}
	return nil
}

func scanInsumo(row pgx.Row) (*entity.Insumo, error) {
	var i entity.Insumo
	var categoriaID *string
	err := row.Scan(
		&i.ID, &i.NegocioID, &i.Nombre, &i.Unidad, &i.CostoPromedio, &i.Stock,
		&i.StockMinimo, &categoriaID, &i.Activo, &i.Inventariable, &i.CreatedAt, &i.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if categoriaID != nil {
		i.CategoriaID = *categoriaID
	}
	return &i, nil
}

func collectInsumos(rows pgx.Rows) ([]*entity.Insumo, error) {
	var list []*entity.Insumo
	for rows.Next() {
		i, err := scanInsumo(rows)
		if err != nil {
			return nil, fmt.Errorf("scan insumo: %w", err)
		}
		list = append(list, i)
	}
	return list, rows.Err()
}

// nullIfEmpty mapea "" a NULL para columnas con FK opcional.
func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
