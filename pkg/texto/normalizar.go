package texto

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var quitarTildes = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalizar deja el texto en minúsculas y sin tildes, para búsquedas
// insensibles a acentos ("azucar" encuentra "Azúcar").
func Normalizar(s string) string {
	limpio, _, err := transform.String(quitarTildes, s)
	if err != nil {
		limpio = s
	}
	return strings.ToLower(strings.TrimSpace(limpio))
}
