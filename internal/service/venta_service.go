package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/marco2712/POS-PROCESOS/internal/dto"
	"github.com/marco2712/POS-PROCESOS/internal/model"
	"github.com/marco2712/POS-PROCESOS/internal/repository"
	"github.com/marco2712/POS-PROCESOS/internal/tenant"
	"github.com/marco2712/POS-PROCESOS/internal/worker"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

type VentaService interface {
	RegistrarVenta(ctx context.Context, scope tenant.Scope, req dto.RegistrarVentaRequest) (*dto.VentaResponse, error)
	ObtenerPorID(ctx context.Context, scope tenant.Scope, id uuid.UUID) (*dto.VentaResponse, error)
	ListarVentas(ctx context.Context, scope tenant.Scope, filter dto.VentaFilter) (*dto.VentaListResponse, error)
}

type ventaService struct {
	repo        repository.VentaRepository
	clienteRepo repository.ClienteRepository
	inventario  InventarioService
	dispatcher  *worker.Dispatcher
}

func NewVentaService(
	repo repository.VentaRepository,
	clienteRepo repository.ClienteRepository,
	inventario InventarioService,
	dispatcher *worker.Dispatcher,
) VentaService {
	return &ventaService{
		repo:        repo,
		clienteRepo: clienteRepo,
		inventario:  inventario,
		dispatcher:  dispatcher,
	}
}

// GenerarNumeroVenta builds a sale number from the clock:
// "V" + YY + MM + DD + last 4 digits of epoch millis — 11 characters.
// Not guaranteed unique, only practically unlikely to collide within an
// organization; there is no server-side uniqueness constraint.
func GenerarNumeroVenta(t time.Time) string {
	return fmt.Sprintf("V%02d%02d%02d%04d",
		t.Year()%100, int(t.Month()), t.Day(), t.UnixMilli()%10000)
}

// ── RegistrarVenta ────────────────────────────────────────────────────────────
// Two-step write with compensating rollback:
//   1. Preconditions: resolved org, non-empty item list — no gateway call
//      before these pass.
//   2. Validate every line against a fresh stock snapshot; the first
//      failure aborts before any write.
//   3. Insert the sale header with a freshly generated numero.
//   4. Batch-insert the line items. On failure, delete the header
//      (best-effort: a failed delete is logged and swallowed, which can
//      leave an orphan header) and surface the item error.
//   5. On success, enqueue the receipt email when the customer has one.
//
// The validation in step 2 runs against a point-in-time snapshot: two
// concurrent sales of the same product can both pass and drive derived
// stock past what was ever available. Accepted risk at this scale.

func (s *ventaService) RegistrarVenta(ctx context.Context, scope tenant.Scope, req dto.RegistrarVentaRequest) (*dto.VentaResponse, error) {
	if err := scope.Valida(); err != nil {
		return nil, err
	}
	if len(req.Items) == 0 {
		return nil, errors.New("La venta debe tener al menos un item")
	}

	// Resolve the optional customer up front — also confirms it belongs
	// to the caller's organization.
	var cliente *model.Cliente
	var clienteID *uuid.UUID
	if req.ClienteID != nil {
		cid, err := uuid.Parse(*req.ClienteID)
		if err != nil {
			return nil, fmt.Errorf("cliente_id inválido: %w", err)
		}
		cliente, err = s.clienteRepo.FindByID(ctx, scope.OrgID, cid)
		if err != nil {
			return nil, errors.New("Cliente no encontrado")
		}
		clienteID = &cid
	}

	snap, err := s.inventario.Snapshot(ctx, scope)
	if err != nil {
		return nil, errors.New("No se puede validar el stock en este momento")
	}

	type lineaResuelta struct {
		productoID uuid.UUID
		cantidad   int
		precio     decimal.Decimal
	}
	resueltas := make([]lineaResuelta, 0, len(req.Items))
	for _, item := range req.Items {
		pid, err := uuid.Parse(item.ProductoID)
		if err != nil {
			return nil, fmt.Errorf("producto_id inválido: %w", err)
		}
		if item.Cantidad < 1 {
			return nil, errors.New("La cantidad debe ser mayor que cero")
		}
		if res := s.inventario.ValidarStock(snap, pid, item.Cantidad); !res.EsValido {
			return nil, errors.New(res.Mensaje)
		}
		resueltas = append(resueltas, lineaResuelta{
			productoID: pid,
			cantidad:   item.Cantidad,
			precio:     item.PrecioUnitario,
		})
	}

	venta := model.Venta{
		OrgID:     scope.OrgID,
		ClienteID: clienteID,
		Numero:    GenerarNumeroVenta(time.Now()),
	}
	if err := s.repo.CreateVenta(ctx, &venta); err != nil {
		return nil, traducirErrorDB(err, "Error al crear la venta", "Error al crear la venta",
			"Error inesperado al crear la venta")
	}

	items := make([]model.VentaItem, 0, len(resueltas))
	for _, r := range resueltas {
		items = append(items, model.VentaItem{
			VentaID:        venta.ID,
			ProductoID:     r.productoID,
			Cantidad:       r.cantidad,
			PrecioUnitario: r.precio,
		})
	}
	if err := s.repo.CreateItems(ctx, items); err != nil {
		// Compensate: remove the just-created header. Best-effort — if the
		// delete also fails the orphan header stays behind.
		if delErr := s.repo.DeleteVenta(ctx, scope.OrgID, venta.ID); delErr != nil {
			log.Warn().Err(delErr).
				Str("venta_id", venta.ID.String()).
				Msg("rollback de venta fallido — posible cabecera huérfana")
		}
		return nil, traducirErrorDB(err, "Error al crear los items de la venta",
			"Error al crear los items de la venta", "Error inesperado al crear la venta")
	}
	venta.Items = items

	// Receipt email — fire & forget
	if s.dispatcher != nil && cliente != nil && cliente.Correo != nil && *cliente.Correo != "" {
		_ = s.dispatcher.EnqueueRecibo(ctx, worker.ReciboJobPayload{
			VentaID: venta.ID.String(),
			OrgID:   scope.OrgID.String(),
			ToEmail: *cliente.Correo,
		})
	}

	return ventaToResponse(&venta), nil
}

func (s *ventaService) ObtenerPorID(ctx context.Context, scope tenant.Scope, id uuid.UUID) (*dto.VentaResponse, error) {
	if err := scope.Valida(); err != nil {
		return nil, err
	}
	venta, err := s.repo.FindByID(ctx, scope.OrgID, id)
	if err != nil {
		return nil, errors.New("Venta no encontrada")
	}
	return ventaToResponse(venta), nil
}

func (s *ventaService) ListarVentas(ctx context.Context, scope tenant.Scope, filter dto.VentaFilter) (*dto.VentaListResponse, error) {
	if err := scope.Valida(); err != nil {
		return nil, err
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 50
	}
	ventas, total, err := s.repo.List(ctx, scope.OrgID, filter)
	if err != nil {
		return nil, errors.New("Error al listar ventas")
	}
	data := make([]dto.VentaResponse, 0, len(ventas))
	for i := range ventas {
		data = append(data, *ventaToResponse(&ventas[i]))
	}
	return &dto.VentaListResponse{
		Data:  data,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}

func ventaToResponse(v *model.Venta) *dto.VentaResponse {
	items := make([]dto.ItemVentaResponse, 0, len(v.Items))
	total := decimal.Zero
	for _, item := range v.Items {
		nombre := ""
		if item.Producto != nil {
			nombre = item.Producto.Nombre
		}
		subtotal := item.PrecioUnitario.Mul(decimal.NewFromInt(int64(item.Cantidad)))
		total = total.Add(subtotal)
		items = append(items, dto.ItemVentaResponse{
			ProductoID:     item.ProductoID.String(),
			Producto:       nombre,
			Cantidad:       item.Cantidad,
			PrecioUnitario: item.PrecioUnitario,
			Subtotal:       subtotal,
		})
	}
	var clienteID *string
	if v.ClienteID != nil {
		s := v.ClienteID.String()
		clienteID = &s
	}
	return &dto.VentaResponse{
		ID:        v.ID.String(),
		Numero:    v.Numero,
		ClienteID: clienteID,
		Items:     items,
		Total:     total,
		CreatedAt: v.CreatedAt.UTC().Format(time.RFC3339),
	}
}
