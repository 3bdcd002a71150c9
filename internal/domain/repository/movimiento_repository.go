package repository

import (
	"time"

	"github.com/jcastrillo/restopos-api/internal/domain/entity"
)

// MovimientoRepository define el puerto de persistencia para documentos de
// movimiento. Save recibe el documento ya validado y con cantidades firmadas
// (la conversión de signo ocurre en la frontera, no aquí) y lo persiste
// completo en una transacción.
type MovimientoRepository interface {
	Save(doc *entity.MovimientoDocumento) error
	GetByID(id string) (*entity.MovimientoDocumento, error)
	ListByNegocio(negocioID string, from, to *time.Time, limit, offset int) ([]*entity.MovimientoDocumento, error)
}
