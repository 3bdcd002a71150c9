package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jcastrillo/restopos-api/internal/domain/entity"
	"github.com/jcastrillo/restopos-api/internal/domain/repository"
)

var _ repository.RecetaRepository = (*RecetaRepo)(nil)

// RecetaRepo implementación del puerto RecetaRepository sobre PostgreSQL.
type RecetaRepo struct {
	db DB
}

// NewRecetaRepository construye el adaptador de persistencia para recetas.
func NewRecetaRepository(db DB) *RecetaRepo {
	return &RecetaRepo{db: db}
}

// Save persiste cabecera y líneas en una transacción, con reemplazo total de líneas.
func (r *RecetaRepo) Save(rec *entity.Receta) error {
	ctx := context.Background()
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin save receta: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	_, err = tx.Exec(ctx, `
		INSERT INTO recetas (id, negocio_id, nombre, instrucciones, archivo_adjunto, costo, estado, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO UPDATE SET
			nombre = EXCLUDED.nombre, instrucciones = EXCLUDED.instrucciones,
			archivo_adjunto = EXCLUDED.archivo_adjunto, costo = EXCLUDED.costo,
			estado = EXCLUDED.estado, updated_at = EXCLUDED.updated_at`,
		rec.ID, rec.NegocioID, rec.Nombre, rec.Instrucciones, rec.ArchivoAdjunto,
		rec.Costo, rec.Estado, rec.CreatedAt, rec.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert receta: %w", err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM receta_lineas WHERE receta_id = $1`, rec.ID); err != nil {
		return fmt.Errorf("limpiar lineas receta: %w", err)
	}
	for orden, l := range rec.Lineas {
		_, err := tx.Exec(ctx, `
			INSERT INTO receta_lineas (id, receta_id, orden, insumo_id, nombre_insumo, unidad, cantidad, costo_unitario)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			l.PersistedID, rec.ID, orden, nullIfEmpty(l.InsumoID),
			l.NombreInsumo, l.Unidad, l.Cantidad, l.CostoUnitario,
		)
		if err != nil {
			return fmt.Errorf("insert linea receta: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit save receta: %w", err)
	}
	return nil
}

// GetByID obtiene una receta con sus líneas. Devuelve (nil, nil) si no existe.
func (r *RecetaRepo) GetByID(id string) (*entity.Receta, error) {
	var rec entity.Receta
	err := r.db.QueryRow(context.Background(), `
		SELECT id, negocio_id, nombre, instrucciones, archivo_adjunto, costo, estado, created_at, updated_at
		FROM recetas WHERE id = $1`, id,
	).Scan(&rec.ID, &rec.NegocioID, &rec.Nombre, &rec.Instrucciones, &rec.ArchivoAdjunto,
		&rec.Costo, &rec.Estado, &rec.CreatedAt, &rec.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get receta: %w", err)
	}

	lineas, err := cargarLineasUso(r.db, `
		SELECT id, insumo_id, nombre_insumo, unidad, cantidad, costo_unitario
		FROM receta_lineas WHERE receta_id = $1 ORDER BY orden`, id)
	if err != nil {
		return nil, fmt.Errorf("lineas receta: %w", err)
	}
	rec.Lineas = lineas
	return &rec, nil
}

// ListByNegocio lista las recetas del negocio (solo cabeceras).
func (r *RecetaRepo) ListByNegocio(negocioID string, limit, offset int) ([]*entity.Receta, error) {
	rows, err := r.db.Query(context.Background(), `
		SELECT id, negocio_id, nombre, instrucciones, archivo_adjunto, costo, estado, created_at, updated_at
		FROM recetas WHERE negocio_id = $1 ORDER BY nombre LIMIT $2 OFFSET $3`,
		negocioID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list recetas: %w", err)
	}
	defer rows.Close()
	var list []*entity.Receta
	for rows.Next() {
		var rec entity.Receta
		if err := rows.Scan(&rec.ID, &rec.NegocioID, &rec.Nombre, &rec.Instrucciones,
			&rec.ArchivoAdjunto, &rec.Costo, &rec.Estado, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan receta: %w", err)
		}
		list = append(list, &rec)
	}
	return list, rows.Err()
}

// Delete elimina la receta y sus líneas (ON DELETE CASCADE).
func (r *RecetaRepo) Delete(id string) error {
	_, err := r.db.Exec(context.Background(), `DELETE FROM recetas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete receta: %w", err)
	}
	return nil
}
