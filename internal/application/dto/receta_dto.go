package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// LineaUsoRequest una fila de consumo dentro del payload de sub-receta o
// receta. PersistedID viaja para que el servidor respete el bloqueo de
// líneas ya guardadas.
type LineaUsoRequest struct {
	PersistedID  string          `json:"persisted_id"`
	InsumoID     string          `json:"insumo_id"`
	NombreInsumo string          `json:"nombre_insumo"`
	Cantidad     decimal.Decimal `json:"cantidad"`
}

// LineaUsoResponse salida de una línea; Importada marca las líneas que
// llegaron de una sub-receta (sin id de catálogo, se muestran como texto).
type LineaUsoResponse struct {
	PersistedID   string          `json:"persisted_id,omitempty"`
	InsumoID      string          `json:"insumo_id,omitempty"`
	NombreInsumo  string          `json:"nombre_insumo"`
	Unidad        string          `json:"unidad"`
	Cantidad      decimal.Decimal `json:"cantidad"`
	CostoUnitario decimal.Decimal `json:"costo_unitario"`
	Costo         decimal.Decimal `json:"costo"`
	Importada     bool            `json:"importada"`
}

// SaveSubRecetaRequest entrada para crear o actualizar una sub-receta con
// todas sus líneas (el agregado se guarda completo).
type SaveSubRecetaRequest struct {
	Nombre         string            `json:"nombre" validate:"required,min=1,max=200"`
	Instrucciones  string            `json:"instrucciones"`
	ArchivoAdjunto string            `json:"archivo_adjunto"`
	Estado         string            `json:"estado"`
	Lineas         []LineaUsoRequest `json:"lineas"`
}

// SubRecetaResponse salida de una sub-receta.
type SubRecetaResponse struct {
	ID             string             `json:"id"`
	Nombre         string             `json:"nombre"`
	Instrucciones  string             `json:"instrucciones,omitempty"`
	ArchivoAdjunto string             `json:"archivo_adjunto,omitempty"`
	Costo          decimal.Decimal    `json:"costo"`
	Estado         string             `json:"estado"`
	Lineas         []LineaUsoResponse `json:"lineas"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
}

// SubRecetaListResponse lista paginada de sub-recetas.
type SubRecetaListResponse struct {
	Items []SubRecetaResponse `json:"items"`
	Page  PageResponse        `json:"page"`
}

// SaveRecetaRequest entrada para crear o actualizar una receta.
// ImportarSubRecetaID, si viene, anexa las líneas de esa sub-receta al final.
type SaveRecetaRequest struct {
	Nombre              string            `json:"nombre" validate:"required,min=1,max=200"`
	Instrucciones       string            `json:"instrucciones"`
	ArchivoAdjunto      string            `json:"archivo_adjunto"`
	Estado              string            `json:"estado"`
	Lineas              []LineaUsoRequest `json:"lineas"`
	ImportarSubRecetaID string            `json:"importar_subreceta_id"`
}

// RecetaResponse salida de una receta.
type RecetaResponse struct {
	ID             string             `json:"id"`
	Nombre         string             `json:"nombre"`
	Instrucciones  string             `json:"instrucciones,omitempty"`
	ArchivoAdjunto string             `json:"archivo_adjunto,omitempty"`
	Costo          decimal.Decimal    `json:"costo"`
	Estado         string             `json:"estado"`
	Lineas         []LineaUsoResponse `json:"lineas"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
}

// RecetaListResponse lista paginada de recetas.
type RecetaListResponse struct {
	Items []RecetaResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}
