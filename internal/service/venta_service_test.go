package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/marco2712/POS-PROCESOS/internal/dto"
	"github.com/marco2712/POS-PROCESOS/internal/model"
	"github.com/marco2712/POS-PROCESOS/internal/tenant"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testScope() tenant.Scope {
	return tenant.Scope{OrgID: uuid.New(), UsuarioID: uuid.New(), Rol: tenant.RolCashier}
}

// seedProducto registers a product and, optionally, prior sale items so
// that derived availability is sellable.
func seedProducto(productoRepo *stubProductoRepo, ventaRepo *stubVentaRepo, orgID uuid.UUID, vendidos int) uuid.UUID {
	p := &model.Producto{
		ID:     uuid.New(),
		OrgID:  orgID,
		Codigo: "P-001",
		Nombre: "Café 500g",
		Precio: decimal.NewFromInt(12500),
	}
	productoRepo.productos[p.ID] = p
	if vendidos > 0 {
		ventaRepo.items = append(ventaRepo.items, model.VentaItem{
			VentaID:        uuid.New(),
			ProductoID:     p.ID,
			Cantidad:       vendidos,
			PrecioUnitario: p.Precio,
		})
	}
	return p.ID
}

func newVentaFixture() (*stubVentaRepo, *stubClienteRepo, *stubProductoRepo, VentaService) {
	ventaRepo := newStubVentaRepo()
	clienteRepo := newStubClienteRepo()
	productoRepo := newStubProductoRepo()
	inventario := NewInventarioService(productoRepo, ventaRepo)
	svc := NewVentaService(ventaRepo, clienteRepo, inventario, nil)
	return ventaRepo, clienteRepo, productoRepo, svc
}

func TestRegistrarVenta_SinOrganizacion(t *testing.T) {
	ventaRepo, _, _, svc := newVentaFixture()

	_, err := svc.RegistrarVenta(context.Background(), tenant.Scope{}, dto.RegistrarVentaRequest{
		Items: []dto.ItemVentaRequest{{ProductoID: uuid.NewString(), Cantidad: 1, PrecioUnitario: decimal.NewFromInt(100)}},
	})

	require.ErrorIs(t, err, tenant.ErrSinOrganizacion)
	assert.Zero(t, ventaRepo.createVentaCalls, "no write may happen without a resolved org")
	assert.Zero(t, ventaRepo.listItemsCalls)
}

func TestRegistrarVenta_SinItems(t *testing.T) {
	ventaRepo, _, _, svc := newVentaFixture()

	_, err := svc.RegistrarVenta(context.Background(), testScope(), dto.RegistrarVentaRequest{})

	require.EqualError(t, err, "La venta debe tener al menos un item")
	assert.Zero(t, ventaRepo.createVentaCalls)
}

func TestRegistrarVenta_StockInsuficiente(t *testing.T) {
	ventaRepo, _, productoRepo, svc := newVentaFixture()
	scope := testScope()
	productoID := seedProducto(productoRepo, ventaRepo, scope.OrgID, 0) // never sold → disponible 0

	_, err := svc.RegistrarVenta(context.Background(), scope, dto.RegistrarVentaRequest{
		Items: []dto.ItemVentaRequest{{ProductoID: productoID.String(), Cantidad: 2, PrecioUnitario: decimal.NewFromInt(100)}},
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Stock insuficiente")
	assert.Contains(t, err.Error(), "0")
	assert.Zero(t, ventaRepo.createVentaCalls, "rejected line must abort before any write")
}

func TestRegistrarVenta_ProductoDesconocido(t *testing.T) {
	ventaRepo, _, _, svc := newVentaFixture()

	_, err := svc.RegistrarVenta(context.Background(), testScope(), dto.RegistrarVentaRequest{
		Items: []dto.ItemVentaRequest{{ProductoID: uuid.NewString(), Cantidad: 1, PrecioUnitario: decimal.NewFromInt(100)}},
	})

	require.EqualError(t, err, "Producto no encontrado en el inventario")
	assert.Zero(t, ventaRepo.createVentaCalls)
}

func TestRegistrarVenta_CantidadNoPositiva(t *testing.T) {
	ventaRepo, _, productoRepo, svc := newVentaFixture()
	scope := testScope()
	productoID := seedProducto(productoRepo, ventaRepo, scope.OrgID, 5)

	for _, cantidad := range []int{0, -3} {
		_, err := svc.RegistrarVenta(context.Background(), scope, dto.RegistrarVentaRequest{
			Items: []dto.ItemVentaRequest{{ProductoID: productoID.String(), Cantidad: cantidad, PrecioUnitario: decimal.NewFromInt(100)}},
		})

		require.EqualError(t, err, "La cantidad debe ser mayor que cero")
	}
	assert.Zero(t, ventaRepo.createVentaCalls, "a non-positive line would deflate derived stock")
}

func TestRegistrarVenta_Exitosa(t *testing.T) {
	ventaRepo, _, productoRepo, svc := newVentaFixture()
	scope := testScope()
	productoID := seedProducto(productoRepo, ventaRepo, scope.OrgID, 5) // disponible 5

	resp, err := svc.RegistrarVenta(context.Background(), scope, dto.RegistrarVentaRequest{
		Items: []dto.ItemVentaRequest{{ProductoID: productoID.String(), Cantidad: 2, PrecioUnitario: decimal.NewFromInt(12500)}},
	})

	require.NoError(t, err)
	assert.Len(t, resp.Numero, 11)
	assert.Equal(t, "V", resp.Numero[:1])
	assert.True(t, resp.Total.Equal(decimal.NewFromInt(25000)))
	assert.Equal(t, 1, ventaRepo.createVentaCalls)
	assert.Equal(t, 1, ventaRepo.createItemsCalls)
	assert.Zero(t, ventaRepo.deleteCalls)

	// Header persisted with the org of the caller
	venta, err := ventaRepo.FindByID(context.Background(), scope.OrgID, mustParse(t, resp.ID))
	require.NoError(t, err)
	assert.Equal(t, scope.OrgID, venta.OrgID)
}

func TestRegistrarVenta_ClienteDeOtraOrg(t *testing.T) {
	ventaRepo, _, productoRepo, svc := newVentaFixture()
	scope := testScope()
	productoID := seedProducto(productoRepo, ventaRepo, scope.OrgID, 5)

	// The referenced customer does not exist in the caller's org
	otro := uuid.NewString()

	_, err := svc.RegistrarVenta(context.Background(), scope, dto.RegistrarVentaRequest{
		ClienteID: &otro,
		Items:     []dto.ItemVentaRequest{{ProductoID: productoID.String(), Cantidad: 1, PrecioUnitario: decimal.NewFromInt(100)}},
	})

	require.EqualError(t, err, "Cliente no encontrado")
	assert.Zero(t, ventaRepo.createVentaCalls)
}

func TestRegistrarVenta_CompensaCabeceraAlFallarItems(t *testing.T) {
	ventaRepo, _, productoRepo, svc := newVentaFixture()
	scope := testScope()
	productoID := seedProducto(productoRepo, ventaRepo, scope.OrgID, 5)
	ventaRepo.failCreateItems = true

	_, err := svc.RegistrarVenta(context.Background(), scope, dto.RegistrarVentaRequest{
		Items: []dto.ItemVentaRequest{{ProductoID: productoID.String(), Cantidad: 1, PrecioUnitario: decimal.NewFromInt(100)}},
	})

	require.Error(t, err)
	assert.Equal(t, 1, ventaRepo.createVentaCalls)
	assert.Equal(t, 1, ventaRepo.deleteCalls, "failed item insert must delete the header")
	assert.Empty(t, ventaRepo.ventas, "compensated header must be gone")
}

func TestRegistrarVenta_FalloDeCompensacionSeTraga(t *testing.T) {
	ventaRepo, _, productoRepo, svc := newVentaFixture()
	scope := testScope()
	productoID := seedProducto(productoRepo, ventaRepo, scope.OrgID, 5)
	ventaRepo.failCreateItems = true
	ventaRepo.failDelete = true

	_, err := svc.RegistrarVenta(context.Background(), scope, dto.RegistrarVentaRequest{
		Items: []dto.ItemVentaRequest{{ProductoID: productoID.String(), Cantidad: 1, PrecioUnitario: decimal.NewFromInt(100)}},
	})

	// The surfaced error is about the items, not the failed rollback
	require.Error(t, err)
	assert.Contains(t, err.Error(), "items")
	assert.Equal(t, 1, ventaRepo.deleteCalls)
	assert.Len(t, ventaRepo.ventas, 1, "orphan header stays when rollback fails")
}

func TestGenerarNumeroVenta_Formato(t *testing.T) {
	ts := time.Date(2026, time.August, 27, 14, 30, 0, 0, time.UTC)
	numero := GenerarNumeroVenta(ts)

	require.Len(t, numero, 11)
	assert.Equal(t, "V260827", numero[:7])
	assert.Equal(t, fmt.Sprintf("%04d", ts.UnixMilli()%10000), numero[7:])
}

func TestListarVentas_SinOrganizacion(t *testing.T) {
	_, _, _, svc := newVentaFixture()
	_, err := svc.ListarVentas(context.Background(), tenant.Scope{}, dto.VentaFilter{})
	require.ErrorIs(t, err, tenant.ErrSinOrganizacion)
}

func TestVentaToResponse_FechaEnUTC(t *testing.T) {
	bogota := time.FixedZone("COT", -5*3600)
	venta := &model.Venta{
		ID:        uuid.New(),
		Numero:    "V2608271234",
		CreatedAt: time.Date(2026, time.August, 27, 9, 30, 0, 0, bogota),
	}

	resp := ventaToResponse(venta)

	assert.Equal(t, "2026-08-27T14:30:00Z", resp.CreatedAt)
}

func mustParse(t *testing.T, s string) uuid.UUID {
	t.Helper()
	id, err := uuid.Parse(s)
	require.NoError(t, err)
	return id
}
