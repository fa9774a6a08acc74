package service

import (
	"context"
	"testing"
	"time"

	"github.com/marco2712/POS-PROCESOS/internal/dto"
	"github.com/marco2712/POS-PROCESOS/internal/model"
	"github.com/marco2712/POS-PROCESOS/internal/tenant"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func strPtr(s string) *string { return &s }

func TestCrearCliente_SinOrganizacion(t *testing.T) {
	svc := NewClienteService(newStubClienteRepo())
	_, err := svc.Crear(context.Background(), tenant.Scope{}, dto.GuardarClienteRequest{Nombre: "Ana"})
	require.ErrorIs(t, err, tenant.ErrSinOrganizacion)
}

func TestCrearCliente_SoloNombre(t *testing.T) {
	repo := newStubClienteRepo()
	svc := NewClienteService(repo)
	scope := testScope()

	resp, err := svc.Crear(context.Background(), scope, dto.GuardarClienteRequest{Nombre: "  Ana   María "})

	require.NoError(t, err)
	assert.Equal(t, "Ana María", resp.Nombre, "whitespace is collapsed")
	assert.Nil(t, resp.TipoID)
	assert.Empty(t, resp.IDNumFormateado)
}

func TestCrearCliente_DocumentoSinTipo(t *testing.T) {
	svc := NewClienteService(newStubClienteRepo())

	_, err := svc.Crear(context.Background(), testScope(), dto.GuardarClienteRequest{
		Nombre: "Ana",
		IDNum:  strPtr("1234567"),
	})

	require.EqualError(t, err, "El tipo y el número de documento deben proporcionarse juntos")
}

func TestCrearCliente_CedulaCorta(t *testing.T) {
	svc := NewClienteService(newStubClienteRepo())

	_, err := svc.Crear(context.Background(), testScope(), dto.GuardarClienteRequest{
		Nombre: "Ana",
		TipoID: strPtr("CC"),
		IDNum:  strPtr("12345"),
	})

	require.EqualError(t, err, "La cédula debe tener entre 6 y 10 dígitos")
}

func TestCrearCliente_CorreoInvalido(t *testing.T) {
	svc := NewClienteService(newStubClienteRepo())

	_, err := svc.Crear(context.Background(), testScope(), dto.GuardarClienteRequest{
		Nombre: "Ana",
		Correo: strPtr("no-es-correo"),
	})

	require.EqualError(t, err, "El correo electrónico no es válido")
}

func TestCrearCliente_FormateaDocumento(t *testing.T) {
	svc := NewClienteService(newStubClienteRepo())

	resp, err := svc.Crear(context.Background(), testScope(), dto.GuardarClienteRequest{
		Nombre: "Ana",
		TipoID: strPtr("CC"),
		IDNum:  strPtr("1234567890"),
	})

	require.NoError(t, err)
	assert.Equal(t, "1.234.567.890", resp.IDNumFormateado)
}

func TestEliminarCliente_ConVentasAsociadas(t *testing.T) {
	repo := newStubClienteRepo()
	scope := testScope()
	cliente := &model.Cliente{ID: uuid.New(), OrgID: scope.OrgID, Nombre: "Ana"}
	repo.clientes[cliente.ID] = cliente
	repo.deleteErr = gorm.ErrForeignKeyViolated
	svc := NewClienteService(repo)

	err := svc.Eliminar(context.Background(), scope, cliente.ID)

	require.EqualError(t, err, "No se puede eliminar el cliente porque tiene ventas asociadas")
}

func TestActualizarCliente_NoExiste(t *testing.T) {
	svc := NewClienteService(newStubClienteRepo())

	_, err := svc.Actualizar(context.Background(), testScope(), uuid.New(), dto.GuardarClienteRequest{Nombre: "Ana"})

	require.EqualError(t, err, "Cliente no encontrado")
}

func TestClienteToResponse_FechaEnUTC(t *testing.T) {
	bogota := time.FixedZone("COT", -5*3600)
	cliente := &model.Cliente{
		ID:        uuid.New(),
		Nombre:    "Ana",
		CreatedAt: time.Date(2026, time.August, 27, 9, 30, 0, 0, bogota),
	}

	resp := clienteToResponse(cliente)

	assert.Equal(t, "2026-08-27T14:30:00Z", resp.CreatedAt)
}
