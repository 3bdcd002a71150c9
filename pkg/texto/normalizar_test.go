package texto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jcastrillo/restopos-api/pkg/texto"
)

func TestNormalizar(t *testing.T) {
	casos := map[string]string{
		"Azúcar":        "azucar",
		"  JALAPEÑO  ":  "jalapeno",
		"Café en grano": "cafe en grano",
		"leche":         "leche",
		"":              "",
	}
	for entrada, esperado := range casos {
		assert.Equal(t, esperado, texto.Normalizar(entrada), "entrada %q", entrada)
	}
}
