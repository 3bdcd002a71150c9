package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jcastrillo/restopos-api/internal/domain"
	"github.com/jcastrillo/restopos-api/internal/domain/entity"
	"github.com/jcastrillo/restopos-api/internal/domain/repository"
)

var _ repository.GastoRepository = (*GastoRepo)(nil)

// GastoRepo implementación del puerto GastoRepository sobre PostgreSQL.
type GastoRepo struct {
	q Querier
}

// NewGastoRepository construye el adaptador de persistencia para gastos.
func NewGastoRepository(q Querier) *GastoRepo {
	return &GastoRepo{q: q}
}

const gastoColumns = `id, negocio_id, concepto, categoria, monto, fecha, observacion, created_at, created_by`

// Create persiste un nuevo gasto.
func (r *GastoRepo) Create(g *entity.Gasto) error {
	query := `
		INSERT INTO gastos (` + gastoColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		g.ID, g.NegocioID, g.Concepto, g.Categoria, g.Monto, g.Fecha,
		g.Observacion, g.CreatedAt, g.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("insert gasto: %w", err)
	}
	return nil
}

// GetByID obtiene un gasto por ID. Devuelve (nil, nil) si no existe.
func (r *GastoRepo) GetByID(id string) (*entity.Gasto, error) {
	query := `SELECT ` + gastoColumns + ` FROM gastos WHERE id = $1`
	var g entity.Gasto
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&g.ID, &g.NegocioID, &g.Concepto, &g.Categoria, &g.Monto, &g.Fecha,
		&g.Observacion, &g.CreatedAt, &g.CreatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get gasto: %w", err)
	}
	return &g, nil
}

// ListByNegocio lista los gastos del negocio, opcionalmente acotados por fecha.
func (r *GastoRepo) ListByNegocio(negocioID string, from, to *time.Time, limit, offset int) ([]*entity.Gasto, error) {
	query := `SELECT ` + gastoColumns + ` FROM gastos WHERE negocio_id = $1`
	args := []any{negocioID}
	if from != nil {
		args = append(args, *from)
		query += fmt.Sprintf(" AND fecha >= $%d", len(args))
	}
	if to != nil {
		args = append(args, *to)
		query += fmt.Sprintf(" AND fecha <= $%d", len(args))
	}
	args = append(args, limit, offset)
	query += fmt.Sprintf(" ORDER BY fecha DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list gastos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Gasto
	for rows.Next() {
		var g entity.Gasto
		if err := rows.Scan(&g.ID, &g.NegocioID, &g.Concepto, &g.Categoria, &g.Monto,
			&g.Fecha, &g.Observacion, &g.CreatedAt, &g.CreatedBy); err != nil {
			return nil, fmt.Errorf("scan gasto: %w", err)
		}
		list = append(list, &g)
	}
	return list, rows.Err()
}

// Update actualiza un gasto existente.
func (r *GastoRepo) Update(g *entity.Gasto) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE gastos SET concepto = $2, categoria = $3, monto = $4, fecha = $5, observacion = $6 WHERE id = $1`,
		g.ID, g.Concepto, g.Categoria, g.Monto, g.Fecha, g.Observacion,
	)
	if err != nil {
		return fmt.Errorf("update gasto: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un gasto por ID.
func (r *GastoRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM gastos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete gasto: %w", err)
	}
	return nil
}
