package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaveGastoRequest entrada para registrar o actualizar un gasto.
type SaveGastoRequest struct {
	Concepto    string          `json:"concepto" validate:"required,min=1,max=200"`
	Categoria   string          `json:"categoria"`
	Monto       decimal.Decimal `json:"monto"`
	Fecha       *time.Time      `json:"fecha"`
	Observacion string          `json:"observacion"`
}

// GastoResponse salida de un gasto.
type GastoResponse struct {
	ID          string          `json:"id"`
	Concepto    string          `json:"concepto"`
	Categoria   string          `json:"categoria,omitempty"`
	Monto       decimal.Decimal `json:"monto"`
	Fecha       time.Time       `json:"fecha"`
	Observacion string          `json:"observacion,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// GastoListResponse lista paginada de gastos.
type GastoListResponse struct {
	Items []GastoResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}
