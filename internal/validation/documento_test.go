package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidarDocumento(t *testing.T) {
	cases := []struct {
		nombre  string
		numero  string
		tipo    string
		valido  bool
		mensaje string
	}{
		{"vacío es válido", "", "CC", true, ""},
		{"cédula válida", "123456", "CC", true, ""},
		{"cédula corta", "12345", "CC", false, "La cédula debe tener entre 6 y 10 dígitos"},
		{"cédula larga", "12345678901", "CC", false, "La cédula debe tener entre 6 y 10 dígitos"},
		{"cédula con puntos", "1.234.567", "CC", true, ""},
		{"TI corta", "1234567", "TI", false, "La tarjeta de identidad debe tener entre 8 y 11 dígitos"},
		{"TI válida", "12345678", "TI", true, ""},
		{"CE válida", "987654", "CE", true, ""},
		{"NIT válido", "123456789", "NIT", true, ""},
		{"NIT corto", "12345678", "NIT", false, "El NIT debe tener entre 9 y 10 dígitos"},
		{"pasaporte válido", "AB1234", "PP", true, ""},
		{"pasaporte corto", "AB123", "PP", false, "El pasaporte debe tener entre 6 y 20 caracteres"},
		{"tipo desconocido usa regla genérica", "12345", "XX", false, "El documento debe tener entre 6 y 20 caracteres"},
	}

	for _, tc := range cases {
		t.Run(tc.nombre, func(t *testing.T) {
			res := ValidarDocumento(tc.numero, tc.tipo)
			assert.Equal(t, tc.valido, res.Valido)
			assert.Equal(t, tc.mensaje, res.Mensaje)
		})
	}
}

func TestFormatearDocumento(t *testing.T) {
	assert.Equal(t, "1.234.567", FormatearDocumento("1234567", "CC"))
	assert.Equal(t, "123.456", FormatearDocumento("123456", "TI"))
	assert.Equal(t, "12345678-9", FormatearDocumento("123456789", "NIT"))
	assert.Equal(t, "AB1234", FormatearDocumento("AB1234", "PP"))
}

func TestEsCorreoValido(t *testing.T) {
	assert.True(t, EsCorreoValido(""))
	assert.True(t, EsCorreoValido("ana@example.com"))
	assert.False(t, EsCorreoValido("ana@"))
	assert.False(t, EsCorreoValido("sin-arroba"))
}

func TestEsCodigoValido(t *testing.T) {
	assert.True(t, EsCodigoValido("P-001"))
	assert.True(t, EsCodigoValido("ab_2"))
	assert.False(t, EsCodigoValido("a"))
	assert.False(t, EsCodigoValido("con espacio"))
}

func TestSanearTexto(t *testing.T) {
	assert.Equal(t, "Ana María", SanearTexto("  Ana   María "))
	assert.Equal(t, "", SanearTexto("   "))
}
