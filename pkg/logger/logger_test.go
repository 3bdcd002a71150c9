package logger

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

// TestNewRespetaNivelConfigurado verifica que el nivel del Config se aplique
// al logger resultante.
func TestNewRespetaNivelConfigurado(t *testing.T) {
	l := New(Config{Env: "production", Level: "warn"})
	assert.Equal(t, zerolog.WarnLevel, l.Zerolog().GetLevel())
}

// TestNewNivelDesconocidoCaeEnInfo verifica el default cuando el nivel viene
// vacío o mal escrito.
func TestNewNivelDesconocidoCaeEnInfo(t *testing.T) {
	assert.Equal(t, zerolog.InfoLevel, New(Config{Level: ""}).Zerolog().GetLevel())
	assert.Equal(t, zerolog.InfoLevel, New(Config{Level: "verboso"}).Zerolog().GetLevel())
	assert.Equal(t, zerolog.DebugLevel, New(Config{Level: "DEBUG"}).Zerolog().GetLevel())
}
