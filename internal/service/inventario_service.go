package service

import (
	"context"
	"fmt"

	"github.com/marco2712/POS-PROCESOS/internal/dto"
	"github.com/marco2712/POS-PROCESOS/internal/model"
	"github.com/marco2712/POS-PROCESOS/internal/repository"
	"github.com/marco2712/POS-PROCESOS/internal/tenant"

	"github.com/google/uuid"
)

// StockSnapshot is a point-in-time view of derived stock for one
// organization. Values are non-positive accumulators: the negative of the
// quantity sold to date. A product that was never sold holds 0.
//
// The snapshot provides no guarantee against concurrent sales — two
// callers can validate against the same snapshot and both pass. Accepted
// risk at small scale.
type StockSnapshot struct {
	stocks map[uuid.UUID]int
}

// Stock returns the raw accumulator for a product and whether the product
// exists in the snapshot.
func (s *StockSnapshot) Stock(productoID uuid.UUID) (int, bool) {
	v, ok := s.stocks[productoID]
	return v, ok
}

// Disponible returns the displayed availability: abs(stock).
func (s *StockSnapshot) Disponible(productoID uuid.UUID) (int, bool) {
	v, ok := s.stocks[productoID]
	if v < 0 {
		v = -v
	}
	return v, ok
}

// DerivarStock folds products and line items into the per-product stock
// map. Pure and deterministic: O(productos + items), no side effects.
func DerivarStock(productos []model.Producto, items []model.VentaItem) map[uuid.UUID]int {
	stocks := make(map[uuid.UUID]int, len(productos))
	for _, p := range productos {
		stocks[p.ID] = 0
	}
	for _, it := range items {
		if _, ok := stocks[it.ProductoID]; ok {
			stocks[it.ProductoID] -= it.Cantidad
		}
	}
	return stocks
}

// InventarioService derives stock from sale history and validates
// requested quantities against it. Nothing here is cached: every call to
// Snapshot/Listar recomputes from the full product and line-item sets — a
// deliberate simplicity tradeoff at small data volumes.
type InventarioService interface {
	Snapshot(ctx context.Context, scope tenant.Scope) (*StockSnapshot, error)
	Listar(ctx context.Context, scope tenant.Scope) ([]dto.InventarioItemResponse, error)
	ValidarStock(snap *StockSnapshot, productoID uuid.UUID, cantidad int) dto.ValidacionStockResponse
}

type inventarioService struct {
	productoRepo repository.ProductoRepository
	ventaRepo    repository.VentaRepository
}

func NewInventarioService(productoRepo repository.ProductoRepository, ventaRepo repository.VentaRepository) InventarioService {
	return &inventarioService{productoRepo: productoRepo, ventaRepo: ventaRepo}
}

func (s *inventarioService) Snapshot(ctx context.Context, scope tenant.Scope) (*StockSnapshot, error) {
	if err := scope.Valida(); err != nil {
		return nil, err
	}
	productos, err := s.productoRepo.List(ctx, scope.OrgID, dto.ProductoFilter{})
	if err != nil {
		return nil, err
	}
	// Line items carry no org_id; the repository joins through productos
	// to re-apply the tenant filter.
	items, err := s.ventaRepo.ListItems(ctx, scope.OrgID)
	if err != nil {
		return nil, err
	}
	return &StockSnapshot{stocks: DerivarStock(productos, items)}, nil
}

func (s *inventarioService) Listar(ctx context.Context, scope tenant.Scope) ([]dto.InventarioItemResponse, error) {
	if err := scope.Valida(); err != nil {
		return nil, err
	}
	productos, err := s.productoRepo.List(ctx, scope.OrgID, dto.ProductoFilter{})
	if err != nil {
		return nil, err
	}
	items, err := s.ventaRepo.ListItems(ctx, scope.OrgID)
	if err != nil {
		return nil, err
	}
	stocks := DerivarStock(productos, items)

	resp := make([]dto.InventarioItemResponse, 0, len(productos))
	for _, p := range productos {
		stock := stocks[p.ID]
		disponible := stock
		if disponible < 0 {
			disponible = -disponible
		}
		resp = append(resp, dto.InventarioItemResponse{
			ProductoID: p.ID.String(),
			Codigo:     p.Codigo,
			Nombre:     p.Nombre,
			Precio:     p.Precio,
			Stock:      stock,
			Disponible: disponible,
		})
	}
	return resp, nil
}

// ValidarStock checks a requested quantity against the snapshot.
// Rule order: unusable snapshot, unknown product, insufficient stock.
func (s *inventarioService) ValidarStock(snap *StockSnapshot, productoID uuid.UUID, cantidad int) dto.ValidacionStockResponse {
	if snap == nil {
		return dto.ValidacionStockResponse{
			Mensaje: "No se puede validar el stock en este momento",
		}
	}

	disponible, ok := snap.Disponible(productoID)
	if !ok {
		return dto.ValidacionStockResponse{
			Mensaje: "Producto no encontrado en el inventario",
		}
	}

	if cantidad > disponible {
		return dto.ValidacionStockResponse{
			Mensaje:         fmt.Sprintf("Stock insuficiente. Stock disponible: %d", disponible),
			StockDisponible: disponible,
		}
	}

	return dto.ValidacionStockResponse{
		EsValido:        true,
		Mensaje:         "Stock disponible",
		StockDisponible: disponible,
	}
}
