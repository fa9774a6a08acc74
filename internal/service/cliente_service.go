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

type ClienteService interface {
	Crear(ctx context.Context, scope tenant.Scope, req dto.GuardarClienteRequest) (*dto.ClienteResponse, error)
	ObtenerPorID(ctx context.Context, scope tenant.Scope, id uuid.UUID) (*dto.ClienteResponse, error)
	Listar(ctx context.Context, scope tenant.Scope, filter dto.ClienteFilter) ([]dto.ClienteResponse, error)
	Actualizar(ctx context.Context, scope tenant.Scope, id uuid.UUID, req dto.GuardarClienteRequest) (*dto.ClienteResponse, error)
	Eliminar(ctx context.Context, scope tenant.Scope, id uuid.UUID) error
}

type clienteService struct {
	repo repository.ClienteRepository
}

func NewClienteService(repo repository.ClienteRepository) ClienteService {
	return &clienteService{repo: repo}
}

// validarCliente applies the field rules shared by create and update:
// tipo_id and idnum go together or not at all, the document number must
// fit its type, and a present email must be well-formed.
func validarCliente(req *dto.GuardarClienteRequest) error {
	req.Nombre = validation.SanearTexto(req.Nombre)
	if req.Nombre == "" {
		return errors.New("El nombre es requerido")
	}

	tieneTipo := req.TipoID != nil && *req.TipoID != ""
	tieneNum := req.IDNum != nil && strings.TrimSpace(*req.IDNum) != ""
	if tieneTipo != tieneNum {
		return errors.New("El tipo y el número de documento deben proporcionarse juntos")
	}
	if tieneNum {
		num := strings.TrimSpace(*req.IDNum)
		req.IDNum = &num
		if res := validation.ValidarDocumento(num, *req.TipoID); !res.Valido {
			return errors.New(res.Mensaje)
		}
	}

	if req.Correo != nil && !validation.EsCorreoValido(*req.Correo) {
		return errors.New("El correo electrónico no es válido")
	}
	return nil
}

func (s *clienteService) Crear(ctx context.Context, scope tenant.Scope, req dto.GuardarClienteRequest) (*dto.ClienteResponse, error) {
	if err := scope.Valida(); err != nil {
		return nil, err
	}
	if err := validarCliente(&req); err != nil {
		return nil, err
	}

	cliente := model.Cliente{
		OrgID:  scope.OrgID,
		Nombre: req.Nombre,
		TipoID: req.TipoID,
		IDNum:  req.IDNum,
		Correo: req.Correo,
	}
	if err := s.repo.Create(ctx, &cliente); err != nil {
		return nil, traducirErrorDB(err, "Ya existe un cliente con este documento",
			"Error al crear el cliente", "Error inesperado al crear el cliente")
	}
	return clienteToResponse(&cliente), nil
}

func (s *clienteService) ObtenerPorID(ctx context.Context, scope tenant.Scope, id uuid.UUID) (*dto.ClienteResponse, error) {
	if err := scope.Valida(); err != nil {
		return nil, err
	}
	cliente, err := s.repo.FindByID(ctx, scope.OrgID, id)
	if err != nil {
		return nil, errors.New("Cliente no encontrado")
	}
	return clienteToResponse(cliente), nil
}

func (s *clienteService) Listar(ctx context.Context, scope tenant.Scope, filter dto.ClienteFilter) ([]dto.ClienteResponse, error) {
	if err := scope.Valida(); err != nil {
		return nil, err
	}
	clientes, err := s.repo.List(ctx, scope.OrgID, filter)
	if err != nil {
		return nil, errors.New("Error al listar clientes")
	}
	resp := make([]dto.ClienteResponse, 0, len(clientes))
	for i := range clientes {
		resp = append(resp, *clienteToResponse(&clientes[i]))
	}
	return resp, nil
}

func (s *clienteService) Actualizar(ctx context.Context, scope tenant.Scope, id uuid.UUID, req dto.GuardarClienteRequest) (*dto.ClienteResponse, error) {
	if err := scope.Valida(); err != nil {
		return nil, err
	}
	if err := validarCliente(&req); err != nil {
		return nil, err
	}

	cliente, err := s.repo.FindByID(ctx, scope.OrgID, id)
	if err != nil {
		return nil, errors.New("Cliente no encontrado")
	}

	cliente.Nombre = req.Nombre
	cliente.TipoID = req.TipoID
	cliente.IDNum = req.IDNum
	cliente.Correo = req.Correo
	if err := s.repo.Update(ctx, cliente); err != nil {
		return nil, traducirErrorDB(err, "Ya existe un cliente con este documento",
			"Error al actualizar el cliente", "Error inesperado al actualizar el cliente")
	}
	return clienteToResponse(cliente), nil
}

func (s *clienteService) Eliminar(ctx context.Context, scope tenant.Scope, id uuid.UUID) error {
	if err := scope.Valida(); err != nil {
		return err
	}
	if _, err := s.repo.FindByID(ctx, scope.OrgID, id); err != nil {
		return errors.New("Cliente no encontrado")
	}
	if err := s.repo.Delete(ctx, scope.OrgID, id); err != nil {
		return traducirErrorDB(err, "Error al eliminar el cliente",
			"No se puede eliminar el cliente porque tiene ventas asociadas",
			"Error inesperado al eliminar el cliente")
	}
	return nil
}

func clienteToResponse(c *model.Cliente) *dto.ClienteResponse {
	resp := &dto.ClienteResponse{
		ID:        c.ID.String(),
		Nombre:    c.Nombre,
		TipoID:    c.TipoID,
		IDNum:     c.IDNum,
		Correo:    c.Correo,
		CreatedAt: c.CreatedAt.UTC().Format(time.RFC3339),
	}
	if c.TipoID != nil && c.IDNum != nil {
		resp.IDNumFormateado = validation.FormatearDocumento(*c.IDNum, *c.TipoID)
	}
	return resp
}
