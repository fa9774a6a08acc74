package service

import (
	"context"
	"testing"

	"github.com/marco2712/POS-PROCESOS/internal/model"
	"github.com/marco2712/POS-PROCESOS/internal/tenant"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDerivarStock_SinVentas(t *testing.T) {
	p := model.Producto{ID: uuid.New()}
	stocks := DerivarStock([]model.Producto{p}, nil)

	assert.Equal(t, 0, stocks[p.ID], "a product never sold holds 0")
}

func TestDerivarStock_AcumulaNegativo(t *testing.T) {
	p := model.Producto{ID: uuid.New()}
	items := []model.VentaItem{
		{ProductoID: p.ID, Cantidad: 3},
		{ProductoID: p.ID, Cantidad: 2},
	}

	stocks := DerivarStock([]model.Producto{p}, items)

	assert.Equal(t, -5, stocks[p.ID], "stock is the negative of cumulative sales")
}

func TestDerivarStock_IgnoraItemsDeProductosDesconocidos(t *testing.T) {
	p := model.Producto{ID: uuid.New()}
	items := []model.VentaItem{
		{ProductoID: p.ID, Cantidad: 1},
		{ProductoID: uuid.New(), Cantidad: 99}, // product deleted or foreign
	}

	stocks := DerivarStock([]model.Producto{p}, items)

	require.Len(t, stocks, 1)
	assert.Equal(t, -1, stocks[p.ID])
}

func TestSnapshot_SinOrganizacion(t *testing.T) {
	svc := NewInventarioService(newStubProductoRepo(), newStubVentaRepo())
	_, err := svc.Snapshot(context.Background(), tenant.Scope{})
	require.ErrorIs(t, err, tenant.ErrSinOrganizacion)
}

func TestListar_DisponibleEsValorAbsoluto(t *testing.T) {
	ventaRepo := newStubVentaRepo()
	productoRepo := newStubProductoRepo()
	scope := testScope()
	productoID := seedProducto(productoRepo, ventaRepo, scope.OrgID, 4)
	svc := NewInventarioService(productoRepo, ventaRepo)

	resp, err := svc.Listar(context.Background(), scope)

	require.NoError(t, err)
	require.Len(t, resp, 1)
	assert.Equal(t, productoID.String(), resp[0].ProductoID)
	assert.Equal(t, -4, resp[0].Stock)
	assert.Equal(t, 4, resp[0].Disponible)
}

func TestValidarStock_SnapshotNulo(t *testing.T) {
	svc := NewInventarioService(newStubProductoRepo(), newStubVentaRepo())

	res := svc.ValidarStock(nil, uuid.New(), 1)

	assert.False(t, res.EsValido)
	assert.Equal(t, "No se puede validar el stock en este momento", res.Mensaje)
}

func TestValidarStock_ProductoDesconocido(t *testing.T) {
	svc := NewInventarioService(newStubProductoRepo(), newStubVentaRepo())
	snap := &StockSnapshot{stocks: map[uuid.UUID]int{}}

	res := svc.ValidarStock(snap, uuid.New(), 1)

	assert.False(t, res.EsValido)
	assert.Equal(t, "Producto no encontrado en el inventario", res.Mensaje)
}

func TestValidarStock_Insuficiente(t *testing.T) {
	svc := NewInventarioService(newStubProductoRepo(), newStubVentaRepo())
	productoID := uuid.New()
	snap := &StockSnapshot{stocks: map[uuid.UUID]int{productoID: -3}}

	res := svc.ValidarStock(snap, productoID, 4)

	assert.False(t, res.EsValido)
	assert.Equal(t, "Stock insuficiente. Stock disponible: 3", res.Mensaje)
	assert.Equal(t, 3, res.StockDisponible)
}

func TestValidarStock_Acepta(t *testing.T) {
	svc := NewInventarioService(newStubProductoRepo(), newStubVentaRepo())
	productoID := uuid.New()
	snap := &StockSnapshot{stocks: map[uuid.UUID]int{productoID: -3}}

	res := svc.ValidarStock(snap, productoID, 3)

	assert.True(t, res.EsValido)
	assert.Equal(t, "Stock disponible", res.Mensaje)
}

func TestSnapshot_AisladoPorOrganizacion(t *testing.T) {
	ventaRepo := newStubVentaRepo()
	productoRepo := newStubProductoRepo()
	scope := testScope()
	seedProducto(productoRepo, ventaRepo, scope.OrgID, 2)

	// Another org's catalog must not appear in this snapshot
	otraOrg := model.Producto{ID: uuid.New(), OrgID: uuid.New(), Codigo: "X", Nombre: "Ajeno", Precio: decimal.NewFromInt(1)}
	productoRepo.productos[otraOrg.ID] = &otraOrg

	svc := NewInventarioService(productoRepo, ventaRepo)
	snap, err := svc.Snapshot(context.Background(), scope)

	require.NoError(t, err)
	_, ok := snap.Stock(otraOrg.ID)
	assert.False(t, ok)
}
