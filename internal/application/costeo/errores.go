package costeo

// ErroresCampo mapa campo→mensaje para errores de validación corregibles por
// el usuario. Bloquean el guardado pero nunca se propagan como error de Go:
// el formulario debe seguir respondiendo.
type ErroresCampo map[string]string

// OK indica que no hay errores de validación.
func (e ErroresCampo) OK() bool { return len(e) == 0 }

// Agregar registra un mensaje para el campo sin pisar uno anterior.
func (e ErroresCampo) Agregar(campo, mensaje string) {
	if _, existe := e[campo]; !existe {
		e[campo] = mensaje
	}
}
