package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jcastrillo/restopos-api/internal/domain/entity"
	"github.com/jcastrillo/restopos-api/internal/domain/repository"
)

var _ repository.SubRecetaRepository = (*SubRecetaRepo)(nil)

// SubRecetaRepo implementación del puerto SubRecetaRepository sobre PostgreSQL.
// Save persiste el agregado completo en una transacción propia.
type SubRecetaRepo struct {
	db DB
}

// NewSubRecetaRepository construye el adaptador de persistencia para sub-recetas.
func NewSubRecetaRepository(db DB) *SubRecetaRepo {
	return &SubRecetaRepo{db: db}
}

// Save persiste cabecera y líneas. Upsert de la cabecera y reemplazo total de
// las líneas: el caso de uso ya reconcilió las líneas bloqueadas, aquí el
// estado entrante es la verdad completa del agregado.
func (r *SubRecetaRepo) Save(sr *entity.SubReceta) error {
	ctx := context.Background()
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin save subreceta: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	_, err = tx.Exec(ctx, `
		INSERT INTO sub_recetas (id, negocio_id, nombre, instrucciones, archivo_adjunto, costo, estado, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO UPDATE SET
			nombre = EXCLUDED.nombre, instrucciones = EXCLUDED.instrucciones,
			archivo_adjunto = EXCLUDED.archivo_adjunto, costo = EXCLUDED.costo,
			estado = EXCLUDED.estado, updated_at = EXCLUDED.updated_at`,
		sr.ID, sr.NegocioID, sr.Nombre, sr.Instrucciones, sr.ArchivoAdjunto,
		sr.Costo, sr.Estado, sr.CreatedAt, sr.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert subreceta: %w", err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM sub_receta_lineas WHERE sub_receta_id = $1`, sr.ID); err != nil {
		return fmt.Errorf("limpiar lineas subreceta: %w", err)
	}
	for orden, l := range sr.Lineas {
		_, err := tx.Exec(ctx, `
			INSERT INTO sub_receta_lineas (id, sub_receta_id, orden, insumo_id, nombre_insumo, unidad, cantidad, costo_unitario)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			l.PersistedID, sr.ID, orden, nullIfEmpty(l.InsumoID),
			l.NombreInsumo, l.Unidad, l.Cantidad, l.CostoUnitario,
		)
		if err != nil {
			return fmt.Errorf("insert linea subreceta: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit save subreceta: %w", err)
	}
	return nil
}

// GetByID obtiene una sub-receta con sus líneas. Devuelve (nil, nil) si no existe.
func (r *SubRecetaRepo) GetByID(id string) (*entity.SubReceta, error) {
	var sr entity.SubReceta
	err := r.db.QueryRow(context.Background(), `
		SELECT id, negocio_id, nombre, instrucciones, archivo_adjunto, costo, estado, created_at, updated_at
		FROM sub_recetas WHERE id = $1`, id,
	).Scan(&sr.ID, &sr.NegocioID, &sr.Nombre, &sr.Instrucciones, &sr.ArchivoAdjunto,
		&sr.Costo, &sr.Estado, &sr.CreatedAt, &sr.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get subreceta: %w", err)
	}

	lineas, err := cargarLineasUso(r.db, `
		SELECT id, insumo_id, nombre_insumo, unidad, cantidad, costo_unitario
		FROM sub_receta_lineas WHERE sub_receta_id = $1 ORDER BY orden`, id)
	if err != nil {
		return nil, fmt.Errorf("lineas subreceta: %w", err)
	}
	sr.Lineas = lineas
	return &sr, nil
}

// ListByNegocio lista las sub-recetas del negocio sin cargar líneas (para el
// listado del tablero basta la cabecera con su costo).
func (r *SubRecetaRepo) ListByNegocio(negocioID string, limit, offset int) ([]*entity.SubReceta, error) {
	rows, err := r.db.Query(context.Background(), `
		SELECT id, negocio_id, nombre, instrucciones, archivo_adjunto, costo, estado, created_at, updated_at
		FROM sub_recetas WHERE negocio_id = $1 ORDER BY nombre LIMIT $2 OFFSET $3`,
		negocioID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list subrecetas: %w", err)
	}
	defer rows.Close()
	var list []*entity.SubReceta
	for rows.Next() {
		var sr entity.SubReceta
		if err := rows.Scan(&sr.ID, &sr.NegocioID, &sr.Nombre, &sr.Instrucciones,
			&sr.ArchivoAdjunto, &sr.Costo, &sr.Estado, &sr.CreatedAt, &sr.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan subreceta: %w", err)
		}
		list = append(list, &sr)
	}
	return list, rows.Err()
}

// Delete elimina la sub-receta y sus líneas (ON DELETE CASCADE).
func (r *SubRecetaRepo) Delete(id string) error {
	_, err := r.db.Exec(context.Background(), `DELETE FROM sub_recetas WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete subreceta: %w", err)
	}
	return nil
}

// cargarLineasUso carga líneas de composición de sub-recetas o recetas; ambas
// tablas comparten la misma forma de fila.
func cargarLineasUso(q Querier, query, padreID string) ([]entity.LineaUso, error) {
	rows, err := q.Query(context.Background(), query, padreID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var lineas []entity.LineaUso
	for rows.Next() {
		var l entity.LineaUso
		var insumoID *string
		if err := rows.Scan(&l.PersistedID, &insumoID, &l.NombreInsumo, &l.Unidad, &l.Cantidad, &l.CostoUnitario); err != nil {
			return nil, err
		}
		if insumoID != nil {
			l.InsumoID = *insumoID
		}
		lineas = append(lineas, l)
	}
	return lineas, rows.Err()
}
