package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jcastrillo/restopos-api/internal/domain/entity"
	"github.com/jcastrillo/restopos-api/internal/domain/repository"
)

var _ repository.MovimientoRepository = (*MovimientoRepo)(nil)

// MovimientoRepo implementación del puerto MovimientoRepository sobre PostgreSQL.
// Las cantidades llegan ya firmadas desde la forma persistible del editor; el
// adaptador las guarda tal cual, sin volver a aplicar signo.
type MovimientoRepo struct {
	db DB
}

// NewMovimientoRepository construye el adaptador de persistencia para movimientos.
func NewMovimientoRepository(db DB) *MovimientoRepo {
	return &MovimientoRepo{db: db}
}

// Save persiste el documento completo (cabecera + líneas) en una transacción.
func (r *MovimientoRepo) Save(doc *entity.MovimientoDocumento) error {
	ctx := context.Background()
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin save movimiento: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	_, err = tx.Exec(ctx, `
		INSERT INTO movimientos (id, negocio_id, motivo, direccion, observaciones, estado, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		doc.ID, doc.NegocioID, doc.Motivo, doc.Direccion, doc.Observaciones,
		doc.Estado, doc.CreatedAt, doc.CreatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("insert movimiento: documento duplicado: %w", err)
		}
		return fmt.Errorf("insert movimiento: %w", err)
	}

	for orden, l := range doc.Lineas {
		_, err := tx.Exec(ctx, `
			INSERT INTO movimiento_lineas (id, movimiento_id, orden, insumo_id, nombre_insumo, unidad, cantidad, costo_unitario, proveedor)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			l.RowID, doc.ID, orden, l.InsumoID, l.NombreInsumo, l.Unidad,
			l.Cantidad, l.CostoUnitario, l.Proveedor,
		)
		if err != nil {
			return fmt.Errorf("insert linea movimiento: %w", err)
		}
	}

	// Impacto en stock: las cantidades ya vienen firmadas, sumar directo.
	for _, l := range doc.Lineas {
		_, err := tx.Exec(ctx,
			`UPDATE insumos SET stock = stock + $2, updated_at = now() WHERE id = $1`,
			l.InsumoID, l.Cantidad,
		)
		if err != nil {
			return fmt.Errorf("aplicar stock movimiento: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit save movimiento: %w", err)
	}
	return nil
}

// GetByID obtiene un documento con sus líneas. Devuelve (nil, nil) si no existe.
func (r *MovimientoRepo) GetByID(id string) (*entity.MovimientoDocumento, error) {
	var doc entity.MovimientoDocumento
	err := r.db.QueryRow(context.Background(), `
		SELECT id, negocio_id, motivo, direccion, observaciones, estado, created_at, created_by
		FROM movimientos WHERE id = $1`, id,
	).Scan(&doc.ID, &doc.NegocioID, &doc.Motivo, &doc.Direccion, &doc.Observaciones,
		&doc.Estado, &doc.CreatedAt, &doc.CreatedBy)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movimiento: %w", err)
	}

	rows, err := r.db.Query(context.Background(), `
		SELECT id, insumo_id, nombre_insumo, unidad, cantidad, costo_unitario, proveedor
		FROM movimiento_lineas WHERE movimiento_id = $1 ORDER BY orden`, id)
	if err != nil {
		return nil, fmt.Errorf("lineas movimiento: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var l entity.MovimientoLinea
		if err := rows.Scan(&l.RowID, &l.InsumoID, &l.NombreInsumo, &l.Unidad,
			&l.Cantidad, &l.CostoUnitario, &l.Proveedor); err != nil {
			return nil, fmt.Errorf("scan linea movimiento: %w", err)
		}
		doc.Lineas = append(doc.Lineas, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// ListByNegocio lista documentos del negocio, opcionalmente acotados por fecha.
func (r *MovimientoRepo) ListByNegocio(negocioID string, from, to *time.Time, limit, offset int) ([]*entity.MovimientoDocumento, error) {
	query := `
		SELECT id, negocio_id, motivo, direccion, observaciones, estado, created_at, created_by
		FROM movimientos WHERE negocio_id = $1`
	args := []any{negocioID}
	if from != nil {
		args = append(args, *from)
		query += fmt.Sprintf(" AND created_at >= $%d", len(args))
	}
	if to != nil {
		args = append(args, *to)
		query += fmt.Sprintf(" AND created_at <= $%d", len(args))
	}
	args = append(args, limit, offset)
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.db.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movimientos: %w", err)
	}
	defer rows.Close()
	var list []*entity.MovimientoDocumento
	for rows.Next() {
		var doc entity.MovimientoDocumento
		if err := rows.Scan(&doc.ID, &doc.NegocioID, &doc.Motivo, &doc.Direccion,
			&doc.Observaciones, &doc.Estado, &doc.CreatedAt, &doc.CreatedBy); err != nil {
			return nil, fmt.Errorf("scan movimiento: %w", err)
		}
		list = append(list, &doc)
	}
	return list, rows.Err()
}
