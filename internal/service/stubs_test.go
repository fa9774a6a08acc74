package service

import (
	"context"
	"errors"

	"github.com/marco2712/POS-PROCESOS/internal/dto"
	"github.com/marco2712/POS-PROCESOS/internal/model"
	"github.com/marco2712/POS-PROCESOS/internal/repository"

	"github.com/google/uuid"
)

// ── Stubs ─────────────────────────────────────────────────────────────────────

// stubVentaRepo is an in-memory VentaRepository that records call counts
// and can be told to fail specific operations.
type stubVentaRepo struct {
	ventas map[uuid.UUID]*model.Venta
	items  []model.VentaItem

	failCreateVenta bool
	failCreateItems bool
	failDelete      bool

	createVentaCalls int
	createItemsCalls int
	deleteCalls      int
	listItemsCalls   int
}

func newStubVentaRepo() *stubVentaRepo {
	return &stubVentaRepo{ventas: make(map[uuid.UUID]*model.Venta)}
}

func (r *stubVentaRepo) CreateVenta(_ context.Context, v *model.Venta) error {
	r.createVentaCalls++
	if r.failCreateVenta {
		return errors.New("insert failed")
	}
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	r.ventas[v.ID] = v
	return nil
}

func (r *stubVentaRepo) CreateItems(_ context.Context, items []model.VentaItem) error {
	r.createItemsCalls++
	if r.failCreateItems {
		return errors.New("insert failed")
	}
	r.items = append(r.items, items...)
	return nil
}

func (r *stubVentaRepo) DeleteVenta(_ context.Context, _, id uuid.UUID) error {
	r.deleteCalls++
	if r.failDelete {
		return errors.New("delete failed")
	}
	delete(r.ventas, id)
	return nil
}

func (r *stubVentaRepo) FindByID(_ context.Context, _, id uuid.UUID) (*model.Venta, error) {
	v, ok := r.ventas[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return v, nil
}

func (r *stubVentaRepo) List(_ context.Context, orgID uuid.UUID, _ dto.VentaFilter) ([]model.Venta, int64, error) {
	var out []model.Venta
	for _, v := range r.ventas {
		if v.OrgID == orgID {
			out = append(out, *v)
		}
	}
	return out, int64(len(out)), nil
}

func (r *stubVentaRepo) ListItems(_ context.Context, _ uuid.UUID) ([]model.VentaItem, error) {
	r.listItemsCalls++
	return r.items, nil
}

var _ repository.VentaRepository = (*stubVentaRepo)(nil)

// stubProductoRepo holds a fixed catalog.
type stubProductoRepo struct {
	productos map[uuid.UUID]*model.Producto
	failOn    error // returned by every method when set
	listCalls int
}

func newStubProductoRepo() *stubProductoRepo {
	return &stubProductoRepo{productos: make(map[uuid.UUID]*model.Producto)}
}

func (r *stubProductoRepo) Create(_ context.Context, p *model.Producto) error {
	if r.failOn != nil {
		return r.failOn
	}
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	r.productos[p.ID] = p
	return nil
}

func (r *stubProductoRepo) FindByID(_ context.Context, _, id uuid.UUID) (*model.Producto, error) {
	if r.failOn != nil {
		return nil, r.failOn
	}
	p, ok := r.productos[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return p, nil
}

func (r *stubProductoRepo) List(_ context.Context, orgID uuid.UUID, _ dto.ProductoFilter) ([]model.Producto, error) {
	r.listCalls++
	if r.failOn != nil {
		return nil, r.failOn
	}
	var out []model.Producto
	for _, p := range r.productos {
		if p.OrgID == orgID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubProductoRepo) Update(_ context.Context, p *model.Producto) error {
	if r.failOn != nil {
		return r.failOn
	}
	r.productos[p.ID] = p
	return nil
}

func (r *stubProductoRepo) Delete(_ context.Context, _, id uuid.UUID) error {
	if r.failOn != nil {
		return r.failOn
	}
	delete(r.productos, id)
	return nil
}

var _ repository.ProductoRepository = (*stubProductoRepo)(nil)

// stubClienteRepo holds customers and can fail deletes with a chosen error.
type stubClienteRepo struct {
	clientes  map[uuid.UUID]*model.Cliente
	deleteErr error
}

func newStubClienteRepo() *stubClienteRepo {
	return &stubClienteRepo{clientes: make(map[uuid.UUID]*model.Cliente)}
}

func (r *stubClienteRepo) Create(_ context.Context, c *model.Cliente) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	r.clientes[c.ID] = c
	return nil
}

func (r *stubClienteRepo) FindByID(_ context.Context, _, id uuid.UUID) (*model.Cliente, error) {
	c, ok := r.clientes[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return c, nil
}

func (r *stubClienteRepo) List(_ context.Context, orgID uuid.UUID, _ dto.ClienteFilter) ([]model.Cliente, error) {
	var out []model.Cliente
	for _, c := range r.clientes {
		if c.OrgID == orgID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *stubClienteRepo) Update(_ context.Context, c *model.Cliente) error {
	r.clientes[c.ID] = c
	return nil
}

func (r *stubClienteRepo) Delete(_ context.Context, _, id uuid.UUID) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	delete(r.clientes, id)
	return nil
}

var _ repository.ClienteRepository = (*stubClienteRepo)(nil)
