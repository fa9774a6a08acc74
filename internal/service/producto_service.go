package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/marco2712/POS-PROCESOS/internal/dto"
	"github.com/marco2712/POS-PROCESOS/internal/model"
	"github.com/marco2712/POS-PROCESOS/internal/repository"
	"github.com/marco2712/POS-PROCESOS/internal/tenant"
	"github.com/marco2712/POS-PROCESOS/internal/validation"

	"github.com/google/uuid"
)

type ProductoService interface {
	Crear(ctx context.Context, scope tenant.Scope, req dto.GuardarProductoRequest) (*dto.ProductoResponse, error)
	ObtenerPorID(ctx context.Context, scope tenant.Scope, id uuid.UUID) (*dto.ProductoResponse, error)
	Listar(ctx context.Context, scope tenant.Scope, filter dto.ProductoFilter) ([]dto.ProductoResponse, error)
	Actualizar(ctx context.Context, scope tenant.Scope, id uuid.UUID, req dto.GuardarProductoRequest) (*dto.ProductoResponse, error)
	Eliminar(ctx context.Context, scope tenant.Scope, id uuid.UUID) error
}

type productoService struct {
	repo repository.ProductoRepository
}

func NewProductoService(repo repository.ProductoRepository) ProductoService {
	return &productoService{repo: repo}
}

func validarProducto(req *dto.GuardarProductoRequest) error {
	req.Codigo = strings.TrimSpace(req.Codigo)
	req.Nombre = validation.SanearTexto(req.Nombre)
	if !validation.EsCodigoValido(req.Codigo) {
		return errors.New("El código debe tener al menos 2 caracteres (letras, números, guiones)")
	}
	if req.Nombre == "" {
		return errors.New("El nombre es requerido")
	}
	if !req.Precio.IsPositive() {
		return errors.New("El precio debe ser mayor que cero")
	}
	return nil
}

func (s *productoService) Crear(ctx context.Context, scope tenant.Scope, req dto.GuardarProductoRequest) (*dto.ProductoResponse, error) {
	if err := scope.Valida(); err != nil {
		return nil, err
	}
	if err := validarProducto(&req); err != nil {
		return nil, err
	}

	producto := model.Producto{
		OrgID:  scope.OrgID,
		Codigo: req.Codigo,
		Nombre: req.Nombre,
		Precio: req.Precio,
	}
	if err := s.repo.Create(ctx, &producto); err != nil {
		return nil, traducirErrorDB(err, "Ya existe un producto con este código",
			"Error al crear el producto", "Error inesperado al crear el producto")
	}
	return productoToResponse(&producto), nil
}

func (s *productoService) ObtenerPorID(ctx context.Context, scope tenant.Scope, id uuid.UUID) (*dto.ProductoResponse, error) {
	if err := scope.Valida(); err != nil {
		return nil, err
	}
	producto, err := s.repo.FindByID(ctx, scope.OrgID, id)
	if err != nil {
		return nil, errors.New("Producto no encontrado")
	}
	return productoToResponse(producto), nil
}

func (s *productoService) Listar(ctx context.Context, scope tenant.Scope, filter dto.ProductoFilter) ([]dto.ProductoResponse, error) {
	if err := scope.Valida(); err != nil {
		return nil, err
	}
	productos, err := s.repo.List(ctx, scope.OrgID, filter)
	if err != nil {
		return nil, errors.New("Error al listar productos")
	}
	resp := make([]dto.ProductoResponse, 0, len(productos))
	for i := range productos {
		resp = append(resp, *productoToResponse(&productos[i]))
	}
	return resp, nil
}

func (s *productoService) Actualizar(ctx context.Context, scope tenant.Scope, id uuid.UUID, req dto.GuardarProductoRequest) (*dto.ProductoResponse, error) {
	if err := scope.Valida(); err != nil {
		return nil, err
	}
	if err := validarProducto(&req); err != nil {
		return nil, err
	}

	producto, err := s.repo.FindByID(ctx, scope.OrgID, id)
	if err != nil {
		return nil, errors.New("Producto no encontrado")
	}

	producto.Codigo = req.Codigo
	producto.Nombre = req.Nombre
	producto.Precio = req.Precio
	if err := s.repo.Update(ctx, producto); err != nil {
		return nil, traducirErrorDB(err, "Ya existe un producto con este código",
			"Error al actualizar el producto", "Error inesperado al actualizar el producto")
	}
	return productoToResponse(producto), nil
}

func (s *productoService) Eliminar(ctx context.Context, scope tenant.Scope, id uuid.UUID) error {
	if err := scope.Valida(); err != nil {
		return err
	}
	if _, err := s.repo.FindByID(ctx, scope.OrgID, id); err != nil {
		return errors.New("Producto no encontrado")
	}
	if err := s.repo.Delete(ctx, scope.OrgID, id); err != nil {
		return traducirErrorDB(err, "Error al eliminar el producto",
			"No se puede eliminar el producto porque tiene ventas asociadas",
			"Error inesperado al eliminar el producto")
	}
	return nil
}

func productoToResponse(p *model.Producto) *dto.ProductoResponse {
	return &dto.ProductoResponse{
		ID:        p.ID.String(),
		Codigo:    p.Codigo,
		Nombre:    p.Nombre,
		Precio:    p.Precio,
		CreatedAt: p.CreatedAt.UTC().Format(time.RFC3339),
	}
}
