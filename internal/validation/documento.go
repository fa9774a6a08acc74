// Package validation holds field-level validation rules that never reach
// the database: identity documents, product codes, emails. Failures are
// surfaced per field by the handlers.
package validation

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	emailRe  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	codigoRe = regexp.MustCompile(`^[a-zA-Z0-9_-]{2,}$`)
	digitRe  = regexp.MustCompile(`\D`)
)

// ResultadoDocumento carries the outcome of a document-number check.
type ResultadoDocumento struct {
	Valido  bool
	Mensaje string
}

// digit-count rules per document type; PP (passport) allows letters and is
// validated by raw length instead.
var rangosDocumento = map[string]struct {
	min, max int
	nombre   string
}{
	"CC":  {6, 10, "La cédula"},
	"TI":  {8, 11, "La tarjeta de identidad"},
	"CE":  {6, 10, "La cédula de extranjería"},
	"NIT": {9, 10, "El NIT"},
}

// ValidarDocumento validates an identity document number against its type.
// An empty number is valid — the field is optional.
func ValidarDocumento(numero, tipo string) ResultadoDocumento {
	numero = strings.TrimSpace(numero)
	if numero == "" {
		return ResultadoDocumento{Valido: true}
	}

	if tipo == "PP" {
		if len(numero) < 6 || len(numero) > 20 {
			return ResultadoDocumento{Mensaje: "El pasaporte debe tener entre 6 y 20 caracteres"}
		}
		return ResultadoDocumento{Valido: true}
	}

	soloDigitos := digitRe.ReplaceAllString(numero, "")
	if r, ok := rangosDocumento[tipo]; ok {
		if len(soloDigitos) < r.min || len(soloDigitos) > r.max {
			return ResultadoDocumento{
				Mensaje: fmt.Sprintf("%s debe tener entre %d y %d dígitos", r.nombre, r.min, r.max),
			}
		}
		return ResultadoDocumento{Valido: true}
	}

	// Unknown type: generic length rule
	if len(numero) < 6 || len(numero) > 20 {
		return ResultadoDocumento{Mensaje: "El documento debe tener entre 6 y 20 caracteres"}
	}
	return ResultadoDocumento{Valido: true}
}

// FormatearDocumento renders a document number for display: thousands
// separators for cedula-style documents, check-digit dash for NIT.
func FormatearDocumento(numero, tipo string) string {
	limpio := digitRe.ReplaceAllString(numero, "")
	switch tipo {
	case "CC", "TI", "CE":
		return agruparMiles(limpio)
	case "NIT":
		if len(limpio) >= 2 {
			return limpio[:len(limpio)-1] + "-" + limpio[len(limpio)-1:]
		}
		return limpio
	default:
		return strings.TrimSpace(numero)
	}
}

func agruparMiles(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	var b strings.Builder
	resto := n % 3
	if resto > 0 {
		b.WriteString(s[:resto])
	}
	for i := resto; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

// EsCorreoValido reports whether the email has a plausible shape.
// Empty is valid — the field is optional.
func EsCorreoValido(correo string) bool {
	correo = strings.TrimSpace(correo)
	if correo == "" {
		return true
	}
	return emailRe.MatchString(correo)
}

// EsCodigoValido reports whether a product code is acceptable: at least
// two characters, letters/digits/dashes/underscores only.
func EsCodigoValido(codigo string) bool {
	return codigoRe.MatchString(strings.TrimSpace(codigo))
}

// SanearTexto collapses repeated whitespace and trims the ends.
func SanearTexto(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
